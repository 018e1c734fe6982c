package cmd

import (
	"encoding/json"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vodhub/vodhub/color"
	"github.com/vodhub/vodhub/key"
	"github.com/vodhub/vodhub/style"
	"github.com/vodhub/vodhub/where"
)

type location struct {
	name string
	path func() string
}

var locations = []location{
	{"config", where.Config},
	{"storage", func() string { return storagePath(viper.GetString(key.StorageBackend)) }},
	{"logs", where.Logs},
	{"env", where.Env},
	{"cache", where.Cache},
	{"temp", where.Temp},
}

func init() {
	rootCmd.AddCommand(whereCmd)
	whereCmd.SetOut(os.Stdout)
}

// whereCmd prints where vodhub keeps its files. With a name it prints that path alone, for scripts.
var whereCmd = &cobra.Command{
	Use:       "where [name]",
	Short:     "Show where configuration, storage and logs are kept",
	Example:   "  vodhub where\n  cat \"$(vodhub where storage)\"",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: lo.Map(locations, func(l location, _ int) string { return l.name }),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 1 {
			l, _ := lo.Find(locations, func(l location) bool { return l.name == args[0] })
			cmd.Println(l.path())
			return
		}

		if asJson(cmd) {
			paths := lo.SliceToMap(locations, func(l location) (string, string) { return l.name, l.path() })
			lo.Must0(json.NewEncoder(cmd.OutOrStdout()).Encode(paths))
			return
		}

		name := style.New().Bold(true).Foreground(color.HiPurple).Width(8).Render
		for _, l := range locations {
			cmd.Printf("%s %s\n", name(l.name), l.path())
		}
	},
}
