package cmd

import (
	"encoding/json"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vodhub/vodhub/color"
	"github.com/vodhub/vodhub/config"
	"github.com/vodhub/vodhub/icon"
	"github.com/vodhub/vodhub/style"
)

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Inspect the configured video sources",
}

func init() {
	sourcesCmd.AddCommand(sourcesListCmd)

	sourcesListCmd.Flags().BoolP("raw", "r", false, "Print only source keys, one per line")
	sourcesListCmd.SetOut(os.Stdout)
}

// sourcesListCmd prints the catalog in lookup order, marking the default source.
var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the configured sources in lookup order",
	Run: func(cmd *cobra.Command, args []string) {
		catalog, err := config.Catalog()
		handleErr(err)

		if asJson(cmd) {
			lo.Must0(json.NewEncoder(cmd.OutOrStdout()).Encode(catalog.All()))
			return
		}

		if lo.Must(cmd.Flags().GetBool("raw")) {
			for _, k := range catalog.Keys() {
				cmd.Println(k)
			}
			return
		}

		current := currentSource()
		keyStyle := style.New().Foreground(color.HiBlue).Bold(true).Render
		for _, s := range catalog.All() {
			mark := "  "
			if s.Key == current {
				mark = style.Fg(color.Green)(icon.Get(icon.Star)) + " "
			}

			cmd.Printf("%s%s %s\n", mark, keyStyle(s.Key), s.Name)
			cmd.Printf("  %s\n", style.Faint(s.Endpoint))
		}
	},
}
