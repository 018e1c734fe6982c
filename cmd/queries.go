package cmd

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vodhub/vodhub/color"
	"github.com/vodhub/vodhub/icon"
	"github.com/vodhub/vodhub/inline"
	"github.com/vodhub/vodhub/query"
	"github.com/vodhub/vodhub/style"
)

func init() {
	rootCmd.AddCommand(queriesCmd)
}

// queriesCmd groups the search history commands.
var queriesCmd = &cobra.Command{
	Use:   "queries",
	Short: "Manage the search history",
}

func init() {
	queriesCmd.AddCommand(queriesListCmd)
	queriesListCmd.Flags().IntP("limit", "l", 0, "Show only the most recent queries")
}

var queriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List remembered queries, most recent first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		a := mustApp()

		entries := a.queries.All()
		if limit := lo.Must(cmd.Flags().GetInt("limit")); limit > 0 {
			entries = a.queries.Recent(limit)
		}

		handleErr(inline.Queries(entries, &inline.Options{Out: output(cmd), Json: asJson(cmd)}))
	},
}

func init() {
	queriesCmd.AddCommand(queriesRemoveCmd)
}

var queriesRemoveCmd = &cobra.Command{
	Use:     "remove <index>",
	Short:   "Remove a query by its position in the list",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a := mustApp()

		index, err := strconv.Atoi(args[0])
		if err != nil {
			handleErr(fmt.Errorf("invalid index: %s", args[0]))
		}

		entries := a.queries.All()
		removed, err := a.queries.RemoveAt(index)
		handleErr(err)

		if !removed {
			handleErr(fmt.Errorf("no query at index %d", index))
		}

		fmt.Printf("%s removed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(entries[index].Query))
	},
}

func init() {
	queriesCmd.AddCommand(queriesClearCmd)
	addYesFlag(queriesClearCmd)
}

var queriesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget every remembered query",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		a := mustApp()

		if !confirm(cmd, fmt.Sprintf("Forget %d queries?", a.queries.Len())) {
			return
		}

		handleErr(a.queries.Clear())
		fmt.Printf("%s search history cleared\n", icon.Get(icon.Success))
	},
}

// suggestQueries returns the single best suggestion for a limit of 1, up to limit otherwise.
func suggestQueries(h *query.History, q string, limit int) []string {
	if limit == 1 {
		if s, ok := h.Suggest(q).Get(); ok {
			return []string{s}
		}
		return []string{}
	}
	return h.SuggestMany(q, limit)
}

func init() {
	queriesCmd.AddCommand(queriesSuggestCmd)
	queriesSuggestCmd.Flags().IntP("limit", "l", 1, "Maximum number of suggestions, 0 for all")
}

var queriesSuggestCmd = &cobra.Command{
	Use:   "suggest <partial query>",
	Short: "Suggest remembered queries matching a partial input",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			a     = mustApp()
			out   = output(cmd)
			limit = lo.Must(cmd.Flags().GetInt("limit"))
		)

		for _, s := range suggestQueries(a.queries, args[0], limit) {
			fmt.Fprintln(out, s)
		}
	},
}
