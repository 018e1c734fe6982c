package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vodhub/vodhub/color"
	"github.com/vodhub/vodhub/config"
	"github.com/vodhub/vodhub/constant"
	"github.com/vodhub/vodhub/filesystem"
	"github.com/vodhub/vodhub/icon"
	"github.com/vodhub/vodhub/style"
	"github.com/vodhub/vodhub/where"
	"golang.org/x/exp/slices"
)

func configFilePath() string {
	return filepath.Join(where.Config(), constant.App+".toml")
}

func configKeys() []string {
	keys := lo.Keys(config.Default)
	slices.Sort(keys)
	return keys
}

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return configKeys(), cobra.ShellCompDirectiveNoFileComp
}

// lookupField returns the registered field, suggesting the closest key for a typo.
func lookupField(key string) (config.Field, error) {
	if f, ok := config.Default[key]; ok {
		return f, nil
	}

	closest := lo.MinBy(configKeys(), func(a, b string) bool {
		return levenshtein.Distance(key, a) < levenshtein.Distance(key, b)
	})

	return config.Field{}, fmt.Errorf(
		"unknown key %s, did you mean %s?",
		style.Fg(color.Red)(key),
		style.Fg(color.Yellow)(closest),
	)
}

// parseValue converts command line values to the type of the field's default.
// Durations are stored as strings but validated on the way in.
func parseValue(f config.Field, values []string) (any, error) {
	if len(values) == 0 {
		return nil, errors.New("a value is required")
	}

	switch def := f.Value.(type) {
	case []string:
		return values, nil
	case bool:
		return strconv.ParseBool(values[0])
	case int:
		return strconv.Atoi(values[0])
	case string:
		if _, err := time.ParseDuration(def); err == nil {
			if _, err := time.ParseDuration(values[0]); err != nil {
				return nil, fmt.Errorf("%s expects a duration such as %s", f.Key, def)
			}
		}
		return values[0], nil
	default:
		return nil, fmt.Errorf("%s is a table, edit it in %s", f.Key, configFilePath())
	}
}

// persist writes the in-memory configuration, creating the file on first use.
func persist() error {
	err := viper.WriteConfig()
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return viper.SafeWriteConfig()
	}
	return err
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(
		configInfoCmd,
		configGetCmd,
		configSetCmd,
		configResetCmd,
		configWriteCmd,
		configDeleteCmd,
	)

	configInfoCmd.SetOut(os.Stdout)
	configGetCmd.SetOut(os.Stdout)

	configResetCmd.Flags().BoolP("all", "a", false, "Reset every key")
	configWriteCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
	addYesFlag(configResetCmd)
	addYesFlag(configDeleteCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change configuration",
	Long:  "Inspect and change configuration. Values are read from the config file, VODHUB_ environment variables and flags, in increasing priority.",
}

var configInfoCmd = &cobra.Command{
	Use:               "info [key...]",
	Short:             "Describe configuration keys, or all of them",
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		keys := args
		if len(keys) == 0 {
			keys = configKeys()
		}

		fields := make([]config.Field, 0, len(keys))
		for _, k := range keys {
			f, err := lookupField(k)
			handleErr(err)
			fields = append(fields, f)
		}

		if asJson(cmd) {
			lo.Must0(json.NewEncoder(cmd.OutOrStdout()).Encode(fields))
			return
		}

		for i := range fields {
			if i > 0 {
				cmd.Println()
			}
			cmd.Println(fields[i].Pretty())
		}
	},
}

var configGetCmd = &cobra.Command{
	Use:               "get <key>",
	Short:             "Print the current value of a key",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		_, err := lookupField(args[0])
		handleErr(err)

		cmd.Println(viper.Get(args[0]))
	},
}

var configSetCmd = &cobra.Command{
	Use:               "set <key> <value...>",
	Short:             "Set a key and save it to the config file",
	Example:           "  vodhub config set sources.default feifan\n  vodhub config set sources.order feifan moyu",
	Args:              cobra.MinimumNArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		f, err := lookupField(args[0])
		handleErr(err)

		value, err := parseValue(f, args[1:])
		handleErr(err)

		viper.Set(f.Key, value)
		handleErr(persist())

		fmt.Printf(
			"%s %s = %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(f.Key),
			style.Fg(color.Yellow)(fmt.Sprint(value)),
		)
	},
}

var configResetCmd = &cobra.Command{
	Use:               "reset [key...]",
	Short:             "Restore keys to their defaults",
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		all := lo.Must(cmd.Flags().GetBool("all"))
		if all == (len(args) > 0) {
			handleErr(errors.New("name the keys to reset or pass --all"))
		}

		keys := args
		if all {
			if !confirm(cmd, "Reset every configuration key?") {
				return
			}
			keys = configKeys()
		}

		for _, k := range keys {
			f, err := lookupField(k)
			handleErr(err)
			viper.Set(f.Key, f.Value)
		}
		handleErr(persist())

		fmt.Printf("%s reset %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Fg(color.Purple)(fmt.Sprint(keys)))
	},
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the current configuration to the config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		path := configFilePath()
		if lo.Must(cmd.Flags().GetBool("force")) {
			if err := filesystem.API().Remove(path); err != nil && !os.IsNotExist(err) {
				handleErr(err)
			}
		}

		handleErr(viper.SafeWriteConfig())
		fmt.Printf("%s wrote %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), path)
	},
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Delete the config file",
	Aliases: []string{"remove"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		path := configFilePath()
		if !confirm(cmd, fmt.Sprintf("Delete %s?", path)) {
			return
		}

		handleErr(filesystem.API().Remove(path))
		fmt.Printf("%s deleted %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), path)
	},
}
