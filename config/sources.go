package config

import (
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vodhub/vodhub/key"
	"github.com/vodhub/vodhub/log"
	"github.com/vodhub/vodhub/source"
)

// Catalog decodes the configured sources and applies sources.order.
func Catalog() (source.Catalog, error) {
	var sources []source.Source
	if err := viper.UnmarshalKey(key.SourcesCatalog, &sources); err != nil {
		return source.Catalog{}, fmt.Errorf("%s: %w", key.SourcesCatalog, err)
	}

	return source.NewCatalog(reorder(sources, viper.GetStringSlice(key.SourcesOrder))...)
}

// reorder moves the sources named in order to the front, keeping the rest in catalog order.
func reorder(sources []source.Source, order []string) []source.Source {
	if len(order) == 0 {
		return sources
	}

	byKey := lo.KeyBy(sources, func(s source.Source) string { return s.Key })
	ordered := make([]source.Source, 0, len(sources))
	for _, k := range lo.Uniq(order) {
		s, ok := byKey[k]
		if !ok {
			log.Warnf("%s: unknown source %q", key.SourcesOrder, k)
			continue
		}
		ordered = append(ordered, s)
	}

	listed := lo.SliceToMap(ordered, func(s source.Source) (string, bool) { return s.Key, true })
	rest := lo.Reject(sources, func(s source.Source, _ int) bool { return listed[s.Key] })
	return append(ordered, rest...)
}

// Categories decodes the configured browsable categories.
func Categories() ([]source.Category, error) {
	var categories []source.Category
	if err := viper.UnmarshalKey(key.Categories, &categories); err != nil {
		return nil, fmt.Errorf("%s: %w", key.Categories, err)
	}

	for i, c := range categories {
		if c.Slug == "" {
			return nil, fmt.Errorf("%s: category #%d has no slug", key.Categories, i)
		}
	}

	return categories, nil
}

// Category finds a configured category by slug.
func Category(slug string) (source.Category, error) {
	categories, err := Categories()
	if err != nil {
		return source.Category{}, err
	}

	category, ok := lo.Find(categories, func(c source.Category) bool { return c.Slug == slug })
	if !ok {
		slugs := lo.Map(categories, func(c source.Category, _ int) string { return c.Slug })
		return source.Category{}, fmt.Errorf("unknown category %q, expected one of %v", slug, slugs)
	}

	return category, nil
}

// CacheTTL returns the configured freshness window of category listings.
func CacheTTL() time.Duration {
	return viper.GetDuration(key.CacheTTL)
}
