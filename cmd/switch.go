package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vodhub/vodhub/icon"
	"github.com/vodhub/vodhub/inline"
	"github.com/vodhub/vodhub/source"
	"github.com/vodhub/vodhub/style"
)

func init() {
	rootCmd.AddCommand(switchCmd)

	switchCmd.Flags().StringP("to", "t", "", "Key of the source to switch to")
	lo.Must0(switchCmd.MarkFlagRequired("to"))
	lo.Must0(switchCmd.RegisterFlagCompletionFunc("to", completionSources))
	switchCmd.Flags().StringP("episodes", "e", "", "Episodes to print: first, last, all, [number], [from]-[to], @[substring]@")
}

// switchCmd re-resolves a title on another source.
var switchCmd = &cobra.Command{
	Use:   "switch <id>",
	Short: "Find the title shown under an id on another source",
	Long: `Find the title shown under an id on another source.
The id is resolved on the current source, then the target source is searched by title,
since ids differ between sources.`,
	Example: "  vodhub switch 52937 -S feifan --to moyu",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			a    = mustApp()
			from = currentSource()
			to   = lo.Must(cmd.Flags().GetString("to"))
		)

		displayed, err := withRetry(cmd, func(ctx context.Context) (*source.Record, error) {
			return a.registry.ResolveByID(ctx, from, args[0])
		})
		handleErr(err)

		switched, err := withRetry(cmd, func(ctx context.Context) (*source.Record, error) {
			return a.registry.Switch(ctx, to, displayed)
		})
		handleErr(err)

		if !asJson(cmd) {
			fmt.Fprintf(
				os.Stderr,
				"%s %s %s -> %s %s\n",
				icon.Get(icon.Source),
				style.Fg(style.FaintColor)(from+"/"+displayed.ID),
				style.Bold(displayed.Title),
				style.Fg(style.AccentColor)(to+"/"+switched.ID),
				style.Bold(switched.Title),
			)
		}

		handleErr(inline.Record(switched, &inline.Options{
			Out:      output(cmd),
			Json:     asJson(cmd),
			Source:   to,
			Episodes: parseEpisodes(lo.Must(cmd.Flags().GetString("episodes"))),
		}))
	},
}
