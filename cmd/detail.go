package cmd

import (
	"context"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vodhub/vodhub/inline"
	"github.com/vodhub/vodhub/source"
)

func init() {
	rootCmd.AddCommand(detailCmd)
	detailCmd.Flags().StringP("episodes", "e", "", "Episodes to print: first, last, all, [number], [from]-[to], @[substring]@")
}

// detailCmd prints one record resolved by its id on the current source.
var detailCmd = &cobra.Command{
	Use:     "detail <id>",
	Short:   "Show a title and its episodes by id",
	Long:    "Show a title and its episodes by id. Ids are only valid on the source that issued them.",
	Example: "  vodhub detail 52937 -S feifan",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			a   = mustApp()
			src = currentSource()
		)

		record, err := withRetry(cmd, func(ctx context.Context) (*source.Record, error) {
			return a.registry.ResolveByID(ctx, src, args[0])
		})
		handleErr(err)

		handleErr(inline.Record(record, &inline.Options{
			Out:      output(cmd),
			Json:     asJson(cmd),
			Source:   src,
			Episodes: parseEpisodes(lo.Must(cmd.Flags().GetString("episodes"))),
		}))
	},
}
