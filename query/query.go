// Package query manages the persistence and retrieval of search query history and suggestions.
package query

import (
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/vodhub/vodhub/constant"
	"github.com/vodhub/vodhub/history"
	"github.com/vodhub/vodhub/key"
	"github.com/vodhub/vodhub/storage"
)

// Entry is a submitted search query.
type Entry struct {
	Query     string `json:"query"`
	Timestamp int64  `json:"timestamp"`
}

func (e Entry) String() string {
	return e.Query
}

// History is the search history, keyed by exact query string.
type History struct {
	*history.Log[Entry]
	now func() time.Time
}

// NewHistory rehydrates the search history from store.
func NewHistory(store storage.Store, now func() time.Time) *History {
	if now == nil {
		now = time.Now
	}

	return &History{
		Log: history.NewLog(store, constant.SearchHistoryKey, func(e Entry) string { return e.Query }),
		now: now,
	}
}

// Add records q as the most recent query. Blank queries are ignored.
// An identical earlier query is removed, so q always ends up at position 0.
func (h *History) Add(q string) error {
	if strings.TrimSpace(q) == "" {
		return nil
	}

	return h.Put(Entry{Query: q, Timestamp: h.now().UnixMilli()})
}

// Suggest returns the most recent historical query fuzzily matching the partial input.
func (h *History) Suggest(q string) mo.Option[string] {
	suggestions := h.SuggestMany(q, 1)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns up to limit historical queries fuzzily matching the partial input,
// most recent first. A non-positive limit returns every match.
func (h *History) SuggestMany(q string, limit int) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	q = sanitize(q)
	matches := lo.FilterMap(h.All(), func(e Entry, _ int) (string, bool) {
		return e.Query, fuzzy.MatchFold(q, sanitize(e.Query))
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
