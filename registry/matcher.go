package registry

import (
	"fmt"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/vodhub/vodhub/source"
)

// Matcher decides how a displayed title is looked up on another source.
type Matcher interface {
	// Query derives the search query sent to the provider.
	Query(title string) string

	// Pick selects the record that represents title among non-empty candidates.
	Pick(title string, candidates []source.Record) source.Record
}

// Matcher names accepted by sources.matcher.
const (
	MatcherPrefix = "prefix"
	MatcherFuzzy  = "fuzzy"
)

// MatcherByName returns the matcher registered under name.
func MatcherByName(name string) (Matcher, error) {
	switch strings.ToLower(name) {
	case "", MatcherPrefix:
		return PrefixMatcher{}, nil
	case MatcherFuzzy:
		return FuzzyMatcher{}, nil
	default:
		return nil, fmt.Errorf("unknown matcher %q, expected one of %v", name, Matchers())
	}
}

// Matchers lists the available matcher names.
func Matchers() []string {
	return []string{MatcherPrefix, MatcherFuzzy}
}

// normalizeTitle keeps the part of title before the first ASCII or full-width space.
// Quality and season suffixes ("HD", "第二季") are usually separated that way.
// Leading whitespace is skipped so a padded title still yields a query.
func normalizeTitle(title string) string {
	title = strings.TrimSpace(title)
	if i := strings.IndexAny(title, " 　"); i >= 0 {
		return title[:i]
	}
	return title
}

// PrefixMatcher searches the normalized title and trusts the provider's first result.
type PrefixMatcher struct{}

func (PrefixMatcher) Query(title string) string {
	return normalizeTitle(title)
}

func (PrefixMatcher) Pick(_ string, candidates []source.Record) source.Record {
	return candidates[0]
}

// FuzzyMatcher searches the normalized title and ranks candidates against the full title.
// Candidates must fuzzily contain the normalized title. Among those an exact title wins,
// then the smallest edit distance to the full title, then the best fuzzy score.
type FuzzyMatcher struct{}

func (FuzzyMatcher) Query(title string) string {
	return normalizeTitle(title)
}

func (FuzzyMatcher) Pick(title string, candidates []source.Record) source.Record {
	if exact, ok := lo.Find(candidates, func(r source.Record) bool {
		return r.Title == title
	}); ok {
		return exact
	}

	titles := lo.Map(candidates, func(r source.Record, _ int) string { return r.Title })

	matches := fuzzy.Find(normalizeTitle(title), titles)
	if len(matches) == 0 {
		return candidates[0]
	}

	best := matches[0]
	bestDistance := levenshtein.Distance(title, best.Str)
	for _, m := range matches[1:] {
		d := levenshtein.Distance(title, m.Str)
		if d < bestDistance || (d == bestDistance && m.Score > best.Score) {
			best, bestDistance = m, d
		}
	}

	return candidates[best.Index]
}
