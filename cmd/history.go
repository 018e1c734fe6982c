package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vodhub/vodhub/color"
	"github.com/vodhub/vodhub/icon"
	"github.com/vodhub/vodhub/inline"
	"github.com/vodhub/vodhub/key"
	"github.com/vodhub/vodhub/style"
)

func init() {
	rootCmd.AddCommand(historyCmd)
}

// historyCmd groups the watch history commands.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the watch history",
}

func init() {
	historyCmd.AddCommand(historyListCmd)
	historyListCmd.Flags().IntP("limit", "l", 0, "Show only the most recent entries (defaults to all, or history.preview_size with --preview)")
	historyListCmd.Flags().Bool("preview", false, "Show only history.preview_size entries")
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List watched titles, most recent first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		a := mustApp()

		limit := lo.Must(cmd.Flags().GetInt("limit"))
		if limit <= 0 && lo.Must(cmd.Flags().GetBool("preview")) {
			limit = viper.GetInt(key.HistoryPreviewSize)
		}

		entries := a.watch.All()
		if limit > 0 {
			entries = a.watch.Recent(limit)
		}

		handleErr(inline.WatchHistory(entries, &inline.Options{Out: output(cmd), Json: asJson(cmd)}))
	},
}

func init() {
	historyCmd.AddCommand(historyRemoveCmd)
}

var historyRemoveCmd = &cobra.Command{
	Use:     "remove <id>...",
	Short:   "Remove titles from the watch history",
	Aliases: []string{"rm"},
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a := mustApp()

		for _, id := range args {
			removed, err := a.watch.Remove(id)
			handleErr(err)

			if !removed {
				fmt.Printf("%s %s is not in the history\n", icon.Get(icon.Warn), style.Fg(style.WarningColor)(id))
				continue
			}
			fmt.Printf("%s removed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(id))
		}
	},
}

func init() {
	historyCmd.AddCommand(historyClearCmd)
	addYesFlag(historyClearCmd)
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every entry from the watch history",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		a := mustApp()

		if !confirm(cmd, fmt.Sprintf("Clear %d watch history entries?", a.watch.Len())) {
			return
		}

		handleErr(a.watch.Clear())
		fmt.Printf("%s watch history cleared\n", icon.Get(icon.Success))
	},
}
