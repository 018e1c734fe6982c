package cmd

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vodhub/vodhub/color"
	"github.com/vodhub/vodhub/config"
	"github.com/vodhub/vodhub/constant"
	"github.com/vodhub/vodhub/style"
	"github.com/vodhub/vodhub/where"
	"golang.org/x/exp/slices"
)

// envNames lists every environment variable vodhub reads, sorted.
func envNames() []string {
	names := lo.Map(config.EnvExposed, func(k string, _ int) string {
		return strings.ToUpper(constant.App + "_" + config.EnvKeyReplacer.Replace(k))
	})
	names = append(names, where.EnvConfigPath)
	slices.Sort(names)
	return names
}

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only show variables that are set")
	envCmd.SetOut(os.Stdout)
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables vodhub reads",
	Long:  "List the environment variables vodhub reads. Variables from " + constant.App + "'s .env file are included once loaded.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))

		values := make(map[string]string)
		for _, name := range envNames() {
			if v, ok := os.LookupEnv(name); ok || !setOnly {
				values[name] = v
			}
		}

		if asJson(cmd) {
			lo.Must0(json.NewEncoder(cmd.OutOrStdout()).Encode(values))
			return
		}

		for _, name := range envNames() {
			v, ok := values[name]
			if !ok {
				continue
			}

			if v == "" {
				v = style.Fg(color.Red)("unset")
			} else {
				v = style.Fg(color.Green)(v)
			}
			cmd.Printf("%s=%s\n", style.New().Bold(true).Foreground(color.Purple).Render(name), v)
		}
	},
}
