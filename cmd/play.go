package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vodhub/vodhub/history"
	"github.com/vodhub/vodhub/icon"
	"github.com/vodhub/vodhub/key"
	"github.com/vodhub/vodhub/log"
	"github.com/vodhub/vodhub/open"
	"github.com/vodhub/vodhub/playlist"
	"github.com/vodhub/vodhub/source"
	"github.com/vodhub/vodhub/style"
)

var errNoStream = errors.New("no stream available")

// selectEpisode picks the episode to play. An explicit 1-based number wins.
// Otherwise next and prev move from the last watched episode, or the last watched
// one is resumed. Without history the first episode is the current one.
func selectEpisode(p playlist.Playlist, last mo.Option[history.WatchEntry], arg string, next, prev bool) (playlist.Episode, error) {
	current := 1
	if entry, ok := last.Get(); ok {
		if e, ok := p.Find(entry.Episode); ok {
			current = e.Index
		}
	}

	var (
		episode playlist.Episode
		ok      bool
	)

	switch {
	case arg != "":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return playlist.Episode{}, fmt.Errorf("invalid episode number: %s", arg)
		}
		episode, ok = p.At(n)
	case next:
		episode, ok = p.Next(current)
	case prev:
		episode, ok = p.Previous(current)
	default:
		episode, ok = p.At(current)
	}

	if !ok {
		return playlist.Episode{}, fmt.Errorf("no such episode, the playlist has %d", p.Count())
	}

	if !episode.Playable() {
		return playlist.Episode{}, fmt.Errorf("%s: %w", episode.Label, errNoStream)
	}

	return episode, nil
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().BoolP("next", "n", false, "Play the episode after the last watched one")
	playCmd.Flags().BoolP("prev", "p", false, "Play the episode before the last watched one")
	playCmd.MarkFlagsMutuallyExclusive("next", "prev")

	playCmd.Flags().Bool("open", true, "Open the player url in the browser instead of printing it")
	lo.Must0(viper.BindPFlag(key.PlayerOpen, playCmd.Flags().Lookup("open")))

	playCmd.Flags().BoolP("write-history", "H", true, "Record the episode in the watch history")
	lo.Must0(viper.BindPFlag(key.HistorySaveOnPlay, playCmd.Flags().Lookup("write-history")))
}

// playCmd hands an episode stream to the external web player.
var playCmd = &cobra.Command{
	Use:   "play <id> [episode]",
	Short: "Play an episode in the web player",
	Long: `Play an episode in the web player.
Without an episode number the last watched episode of the title is resumed, or the first one.`,
	Example: "  vodhub play 52937 5\n  vodhub play 52937 --next",
	Args:    cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			a   = mustApp()
			id  = args[0]
			src = currentSource()
		)

		record, err := withRetry(cmd, func(ctx context.Context) (*source.Record, error) {
			return a.registry.ResolveByID(ctx, src, id)
		})
		handleErr(err)

		var number string
		if len(args) == 2 {
			number = args[1]
		}

		episode, err := selectEpisode(
			record.Episodes(),
			mo.TupleToOption(a.watch.Find(id)),
			number,
			lo.Must(cmd.Flags().GetBool("next")),
			lo.Must(cmd.Flags().GetBool("prev")),
		)
		if err != nil {
			handleErr(fmt.Errorf("%s: %w", record.Title, err))
		}

		if viper.GetBool(key.HistorySaveOnPlay) {
			err := a.watch.Add(history.WatchEntry{
				ID:      record.ID,
				Title:   record.Title,
				Image:   record.Cover,
				Episode: episode.Label,
				Source:  record.Source,
			})
			if err != nil {
				log.Warnf("saving history: %s", err)
			}
		}

		url, err := open.PlayerURL(viper.GetString(key.PlayerURLTemplate), episode.URL)
		handleErr(err)

		fmt.Fprintf(os.Stderr, "%s %s %s\n", icon.Get(icon.Play), style.Bold(record.Title), style.Fg(style.SuccessColor)(episode.Label))

		if viper.GetBool(key.PlayerOpen) {
			err := open.Start(url)
			if err == nil {
				return
			}
			log.Warn(err)
		}

		fmt.Fprintln(output(cmd), url)
	},
}
