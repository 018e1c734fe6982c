// Package inline renders registry results non-interactively, as plain text or JSON.
package inline

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/vodhub/vodhub/color"
	"github.com/vodhub/vodhub/history"
	"github.com/vodhub/vodhub/icon"
	"github.com/vodhub/vodhub/playlist"
	"github.com/vodhub/vodhub/query"
	"github.com/vodhub/vodhub/registry"
	"github.com/vodhub/vodhub/source"
	"github.com/vodhub/vodhub/style"
	"github.com/vodhub/vodhub/util"
)

const defaultWidth = 80

func (o *Options) out() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}
	return o.Out
}

func (o *Options) width() int {
	if o.Width > 0 {
		return o.Width
	}
	return util.Min(util.TerminalWidth(defaultWidth), 120)
}

// Listing prints a page of records. With a picker set, only the picked record is printed in detail.
func Listing(listing *source.Listing, options *Options) error {
	if options.Picker.IsPresent() {
		picked, ok := options.Picker.MustGet()(listing.Items)
		if !ok {
			if options.Json {
				return writeJson(options.out(), &Output{Query: options.Query, Source: options.Source, Result: []source.Record{}})
			}
			return nil
		}
		return Record(&picked, options)
	}

	if options.Json {
		return writeJson(options.out(), &Output{
			Query:      options.Query,
			Source:     options.Source,
			Page:       listing.Page,
			TotalPages: listing.TotalPages,
			Total:      listing.Total,
			Result:     listing.Items,
		})
	}

	out := options.out()
	for _, r := range listing.Items {
		fmt.Fprintln(out, recordLine(&r))
	}

	fmt.Fprintln(out, style.Faint(fmt.Sprintf(
		"page %d/%d, %s",
		listing.Page,
		util.Max(listing.TotalPages, listing.Page),
		util.Quantify(listing.Total, "title", "titles"),
	)))
	return nil
}

func recordLine(r *source.Record) string {
	meta := lo.Compact([]string{r.Year, r.Region, r.Genre})
	episodes := r.Episodes().Count()

	line := fmt.Sprintf("%s %s", style.Fg(color.Purple)(r.ID), style.Bold(r.Title))
	if len(meta) > 0 {
		line += " " + style.Faint(strings.Join(meta, " / "))
	}
	if episodes > 0 {
		line += " " + style.Fg(color.Cyan)(util.Quantify(episodes, "episode", "episodes"))
	}
	return line
}

// Record prints one record with its synopsis and the episodes selected by the filter.
func Record(record *source.Record, options *Options) error {
	selected := *record
	episodes := record.Episodes().Episodes
	if options.Episodes.IsPresent() {
		episodes = options.Episodes.MustGet()(episodes)
	}
	selected.Playlist = playlist.Playlist{Episodes: episodes}

	if options.Json {
		return writeJson(options.out(), &Output{
			Query:  options.Query,
			Source: options.Source,
			Result: []source.Record{selected},
		})
	}

	out := options.out()
	fmt.Fprintln(out, recordLine(record))

	if selected.Score > 0 {
		fmt.Fprintf(out, "%s %.1f\n", icon.Get(icon.Star), selected.Score)
	}
	if selected.Director != "" {
		fmt.Fprintf(out, "%s %s\n", style.Fg(color.Blue)("Director:"), selected.Director)
	}
	if selected.Actors != "" {
		fmt.Fprintf(out, "%s %s\n", style.Fg(color.Blue)("Actors:"), util.Truncate(selected.Actors, options.width()))
	}
	if selected.Synopsis != "" {
		fmt.Fprintf(out, "\n%s\n\n", util.Wrap(selected.Synopsis, options.width()))
	}

	for _, e := range episodes {
		url := e.URL
		if !e.Playable() {
			url = style.Faint("no stream available")
		}
		fmt.Fprintf(out, "%s %s %s\n", style.Fg(color.Yellow)(fmt.Sprintf("%3d", e.Index)), e.Label, url)
	}

	return nil
}

// Landing prints every landing section, failed sections included.
func Landing(results []registry.SectionResult, options *Options) error {
	if options.Json {
		return writeJson(options.out(), &LandingOutput{
			Source: options.Source,
			Sections: lo.Map(results, func(r registry.SectionResult, _ int) Section {
				section := Section{Category: r.Category, Listing: r.Listing}
				if r.Err != nil {
					section.Error = r.Err.Error()
				}
				return section
			}),
		})
	}

	out := options.out()
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(out)
		}

		if r.Err != nil {
			fmt.Fprintln(out, style.ErrorTitle(r.Category.String()))
			fmt.Fprintf(out, "%s %s\n", icon.Get(icon.Fail), style.Fg(color.Red)(r.Err.Error()))
			continue
		}

		fmt.Fprintln(out, style.Title(r.Category.String()))

		for _, item := range r.Listing.Items {
			fmt.Fprintln(out, recordLine(&item))
		}
	}

	return nil
}

// WatchHistory prints watch entries, most recent first.
func WatchHistory(entries []history.WatchEntry, options *Options) error {
	if options.Json {
		return writeJson(options.out(), &HistoryOutput{Entries: entries})
	}

	out := options.out()
	for i, e := range entries {
		line := fmt.Sprintf("%s %s %s", style.Fg(color.Yellow)(fmt.Sprintf("%2d", i)), style.Fg(color.Purple)(e.ID), style.Bold(e.String()))
		if e.Source != "" {
			line += " " + style.Fg(color.Cyan)("@"+e.Source)
		}
		line += " " + style.Faint(e.Watched().Format(time.DateTime))
		fmt.Fprintln(out, line)
	}

	return nil
}

// Queries prints search history entries, most recent first.
func Queries(entries []query.Entry, options *Options) error {
	if options.Json {
		return writeJson(options.out(), &QueriesOutput{Entries: entries})
	}

	out := options.out()
	for i, e := range entries {
		fmt.Fprintf(
			out,
			"%s %s %s\n",
			style.Fg(color.Yellow)(fmt.Sprintf("%2d", i)),
			e.Query,
			style.Faint(time.UnixMilli(e.Timestamp).Format(time.DateTime)),
		)
	}

	return nil
}
