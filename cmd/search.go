package cmd

import (
	"context"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vodhub/vodhub/inline"
	"github.com/vodhub/vodhub/key"
	"github.com/vodhub/vodhub/log"
	"github.com/vodhub/vodhub/query"
	"github.com/vodhub/vodhub/source"
)

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntP("page", "p", 1, "Page of the search results")
	searchCmd.Flags().Int("page-size", 0, "Results per page (defaults to search.page_size)")
	searchCmd.Flags().StringP("pick", "P", "", "Print only one result in detail: first, last, exact or index:<n>")
	searchCmd.Flags().StringP("episodes", "e", "", "Episodes of the picked result to print")
	searchCmd.Flags().Bool("no-save", false, "Do not remember this query")
}

// completionQueries suggests remembered queries.
func completionQueries(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	store, err := openStore()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer store.Close()

	return query.NewHistory(store, nil).SuggestMany(toComplete, 0), cobra.ShellCompDirectiveNoFileComp
}

// searchCmd searches the current source and remembers the query.
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the current source by title",
	Long: `Search the current source by title. Submitted queries are remembered in the search history.

Pickers:
  first - first result
  last - last result
  exact - result whose title equals the query
  index:<n> - result by position (starting from 0)

Episode selectors:
  first, last, all, [number], [from]-[to], @[substring]@
Episode numbers start from 1.`,
	Example:           "  vodhub search 斗破苍穹\n  vodhub search 斗破苍穹 --pick first --episodes 1-3 --json",
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completionQueries,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			a        = mustApp()
			q        = strings.Join(args, " ")
			page     = lo.Must(cmd.Flags().GetInt("page"))
			pageSize = lo.Must(cmd.Flags().GetInt("page-size"))
			src      = currentSource()
		)

		if pageSize <= 0 {
			pageSize = viper.GetInt(key.SearchPageSize)
		}

		options := &inline.Options{
			Out:    output(cmd),
			Json:   asJson(cmd),
			Query:  q,
			Source: src,
		}

		options.Picker = parsePicker(lo.Must(cmd.Flags().GetString("pick")), q)
		options.Episodes = parseEpisodes(lo.Must(cmd.Flags().GetString("episodes")))

		if viper.GetBool(key.SearchSaveQueries) && !lo.Must(cmd.Flags().GetBool("no-save")) {
			rememberQuery(a.queries, q)
		}

		listing, err := withRetry(cmd, func(ctx context.Context) (*source.Listing, error) {
			return a.registry.Search(ctx, src, q, page, pageSize)
		})
		handleErr(err)

		handleErr(inline.Listing(listing, options))
	},
}

func rememberQuery(h *query.History, q string) {
	if err := h.Add(q); err != nil {
		log.Warnf("remembering query %q: %s", q, err)
	}
}

func parsePicker(flag, q string) mo.Option[inline.RecordPicker] {
	if flag == "" {
		return mo.None[inline.RecordPicker]()
	}

	kind, value, ok := strings.Cut(flag, ":")
	if !ok {
		value = q
	}

	picker, err := inline.ParseRecordPicker(kind, value)
	handleErr(err)
	return mo.Some(picker)
}

func parseEpisodes(flag string) mo.Option[inline.EpisodesFilter] {
	if flag == "" {
		return mo.None[inline.EpisodesFilter]()
	}

	filter, err := inline.ParseEpisodesFilter(flag)
	handleErr(err)
	return mo.Some(filter)
}
