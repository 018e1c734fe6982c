package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/vodhub/vodhub/playlist"
	"github.com/vodhub/vodhub/source"
	"github.com/vodhub/vodhub/util"
)

type (
	RecordPicker   func([]source.Record) (source.Record, bool)
	EpisodesFilter func([]playlist.Episode) []playlist.Episode
)

type Options struct {
	Out      io.Writer
	Json     bool
	Query    string
	Source   string
	Picker   mo.Option[RecordPicker]
	Episodes mo.Option[EpisodesFilter]
	// Width wraps the synopsis. Zero uses the terminal width.
	Width int
}

// ParseRecordPicker builds a picker from its kind: first, last, exact (by title) or index (0-based, clamped).
func ParseRecordPicker(kind, value string) (RecordPicker, error) {
	switch kind {
	case "first":
		return func(records []source.Record) (source.Record, bool) {
			return lo.First(records)
		}, nil
	case "last":
		return func(records []source.Record) (source.Record, bool) {
			return lo.Last(records)
		}, nil
	case "exact":
		return func(records []source.Record) (source.Record, bool) {
			return lo.Find(records, func(r source.Record) bool { return r.Title == value })
		}, nil
	case "index":
		idx, err := strconv.ParseUint(value, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid index: %s", value)
		}
		return func(records []source.Record) (source.Record, bool) {
			if len(records) == 0 {
				return source.Record{}, false
			}
			return records[util.Min(idx, uint64(len(records)-1))], true
		}, nil
	default:
		return nil, fmt.Errorf("unknown picker type: %s", kind)
	}
}

// ParseEpisodesFilter parses an episode selection.
// Format: "first", "last", "all", "3-5" (inclusive), "@text@" (label substring) or a single episode number.
// Episode numbers are 1-based.
func ParseEpisodesFilter(description string) (EpisodesFilter, error) {
	switch description {
	case "first":
		return func(episodes []playlist.Episode) []playlist.Episode {
			if len(episodes) == 0 {
				return episodes
			}
			return episodes[:1]
		}, nil
	case "last":
		return func(episodes []playlist.Episode) []playlist.Episode {
			if len(episodes) == 0 {
				return episodes
			}
			return episodes[len(episodes)-1:]
		}, nil
	case "", "all":
		return func(episodes []playlist.Episode) []playlist.Episode {
			return episodes
		}, nil
	}

	if from, to, ok := strings.Cut(description, "-"); ok {
		start, err1 := strconv.Atoi(from)
		end, err2 := strconv.Atoi(to)
		if err1 == nil && err2 == nil {
			return func(episodes []playlist.Episode) []playlist.Episode {
				return lo.Filter(episodes, func(e playlist.Episode, _ int) bool {
					return e.Index >= start && e.Index <= end
				})
			}, nil
		}
	}

	if len(description) > 1 && strings.HasPrefix(description, "@") && strings.HasSuffix(description, "@") {
		sub := strings.ToLower(description[1 : len(description)-1])
		return func(episodes []playlist.Episode) []playlist.Episode {
			return lo.Filter(episodes, func(e playlist.Episode, _ int) bool {
				return strings.Contains(strings.ToLower(e.Label), sub)
			})
		}, nil
	}

	if n, err := strconv.Atoi(description); err == nil {
		return func(episodes []playlist.Episode) []playlist.Episode {
			return lo.Filter(episodes, func(e playlist.Episode, _ int) bool { return e.Index == n })
		}, nil
	}

	return nil, fmt.Errorf("invalid episode filter: %s", description)
}
