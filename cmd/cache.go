package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vodhub/vodhub/icon"
	"github.com/vodhub/vodhub/util"
)

func init() {
	rootCmd.AddCommand(cacheCmd)
}

// cacheCmd groups the listing cache commands.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage cached category listings",
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop every cached category listing",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		a := mustApp()

		n, err := a.listings.Clear()
		handleErr(err)

		fmt.Printf("%s %s dropped\n", icon.Get(icon.Success), util.Quantify(n, "cached listing", "cached listings"))
	},
}
