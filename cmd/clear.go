package cmd

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/vodhub/vodhub/icon"
	"github.com/vodhub/vodhub/util"
	"github.com/vodhub/vodhub/where"
)

// clearTarget defines an artifact eligible for cleanup.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	clear    func(a *app) error
}

// clearTargets registry of all application artifacts that can be selectively cleared.
var clearTargets = []clearTarget{
	{"cached listings", "cache", mo.Some("c"), func(a *app) error {
		_, err := a.listings.Clear()
		return err
	}},
	{"watch history", "history", mo.Some("s"), func(a *app) error {
		return a.watch.Clear()
	}},
	{"search history", "queries", mo.Some("q"), func(a *app) error {
		return a.queries.Clear()
	}},
	{"cache directory", "cache-dir", mo.None[string](), func(*app) error {
		return util.Delete(where.Cache())
	}},
	{"logs", "logs", mo.Some("l"), func(*app) error {
		return util.Delete(where.Logs())
	}},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}

	clearCmd.Flags().BoolP("all", "a", false, "clear everything")
	addYesFlag(clearCmd)
}

// clearCmd manages the cleanup of cached and remembered application artifacts.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear cached listings, histories and other application artifacts",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		all := lo.Must(cmd.Flags().GetBool("all"))
		selected := lo.Filter(clearTargets, func(t clearTarget, _ int) bool {
			return all || lo.Must(cmd.Flags().GetBool(t.argLong))
		})

		if len(selected) == 0 {
			handleErr(cmd.Help())
			return
		}

		names := lo.Map(selected, func(t clearTarget, _ int) string { return t.name })
		if !confirm(cmd, fmt.Sprintf("Clear %s?", strings.Join(names, ", "))) {
			return
		}

		a := mustApp()
		for _, target := range selected {
			e := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			err := target.clear(a)
			e()
			handleErr(err)
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}
	},
}
