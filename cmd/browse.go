package cmd

import (
	"context"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vodhub/vodhub/config"
	"github.com/vodhub/vodhub/inline"
	"github.com/vodhub/vodhub/key"
	"github.com/vodhub/vodhub/registry"
	"github.com/vodhub/vodhub/source"
)

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().IntP("page", "p", 1, "Page of the category listing")
	browseCmd.Flags().Int("page-size", 0, "Items per page (defaults to browse.page_size)")
}

func completionCategories(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	categories, err := config.Categories()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	return lo.Map(categories, func(c source.Category, _ int) string { return c.Slug }), cobra.ShellCompDirectiveNoFileComp
}

// browseCmd lists a category, or every landing section when no category is given.
var browseCmd = &cobra.Command{
	Use:   "browse [category]",
	Short: "List a category, or the landing sections when no category is given",
	Long: `List one page of a category listing. Listings are cached for cache.ttl (one hour by default).
Without a category, the first page of every configured category is fetched concurrently.`,
	Example:           "  vodhub browse\n  vodhub browse anime --page 2 -S moyu",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionCategories,
	Run: func(cmd *cobra.Command, args []string) {
		a := mustApp()

		if len(args) == 0 {
			runLanding(cmd, a)
			return
		}

		category, err := config.Category(args[0])
		handleErr(err)

		var (
			page     = lo.Must(cmd.Flags().GetInt("page"))
			pageSize = lo.Must(cmd.Flags().GetInt("page-size"))
			src      = currentSource()
		)

		listing, err := withRetry(cmd, func(ctx context.Context) (*source.Listing, error) {
			return a.registry.ListByCategory(ctx, src, category, page, pageSize)
		})
		handleErr(err)

		handleErr(inline.Listing(listing, &inline.Options{
			Out:    output(cmd),
			Json:   asJson(cmd),
			Source: src,
		}))
	},
}

// runLanding prints the first page of every configured category.
// Sections fail independently; the command only fails when every section did.
func runLanding(cmd *cobra.Command, a *app) {
	categories, err := config.Categories()
	handleErr(err)

	src := currentSource()
	results := a.registry.Landing(cmd.Context(), src, categories, viper.GetInt(key.CategoryPageSize))

	handleErr(inline.Landing(results, &inline.Options{
		Out:    output(cmd),
		Json:   asJson(cmd),
		Source: src,
	}))

	failed := lo.CountBy(results, func(r registry.SectionResult) bool { return r.Err != nil })
	if len(results) > 0 && failed == len(results) {
		handleErr(results[0].Err)
	}
}
