// Package registry resolves content records across interchangeable sources.
//
// A record ID is only meaningful on the source that issued it. Switching
// sources therefore always goes through a title search on the target source.
package registry

import (
	"context"
	"fmt"

	"github.com/vodhub/vodhub/constant"
	"github.com/vodhub/vodhub/internal/cache"
	"github.com/vodhub/vodhub/log"
	"github.com/vodhub/vodhub/source"
)

// DefaultPageSize is used when a listing asks for a non-positive page size.
const DefaultPageSize = 24

// Registry is the single entry point for record lookups.
// It is safe for concurrent use when its client and cache are.
type Registry struct {
	catalog  source.Catalog
	client   source.Client
	matcher  Matcher
	listings *cache.TTL[source.Listing]
	pageSize int
}

// Option configures a Registry.
type Option func(*Registry)

// WithMatcher sets the title matching strategy. Defaults to PrefixMatcher.
func WithMatcher(m Matcher) Option {
	return func(r *Registry) {
		if m != nil {
			r.matcher = m
		}
	}
}

// WithListingCache fronts ListByCategory with c.
func WithListingCache(c *cache.TTL[source.Listing]) Option {
	return func(r *Registry) { r.listings = c }
}

// WithPageSize sets the page size used when a call passes zero.
func WithPageSize(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.pageSize = n
		}
	}
}

// New creates a registry over an immutable catalog.
func New(catalog source.Catalog, client source.Client, opts ...Option) *Registry {
	r := &Registry{
		catalog:  catalog,
		client:   client,
		matcher:  PrefixMatcher{},
		pageSize: DefaultPageSize,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Catalog returns the sources this registry resolves against.
func (r *Registry) Catalog() source.Catalog {
	return r.catalog
}

// ResolveByID fetches the detail record for id on sourceKey.
func (r *Registry) ResolveByID(ctx context.Context, sourceKey, id string) (*source.Record, error) {
	src, err := r.catalog.Get(sourceKey)
	if err != nil {
		return nil, err
	}

	log.Infof("resolving %s on %s", id, src.Key)
	payload, err := r.client.Detail(ctx, src.Endpoint, id)
	if err != nil {
		return nil, err
	}

	records := payload.Records(src.Key)
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: id %s on %s", source.ErrNotFound, id, src.Key)
	}

	record := records[0]
	record.Normalize()
	return &record, nil
}

// ResolveByTitle searches sourceKey for title and returns the matcher's pick.
func (r *Registry) ResolveByTitle(ctx context.Context, sourceKey, title string) (*source.Record, error) {
	src, err := r.catalog.Get(sourceKey)
	if err != nil {
		return nil, err
	}

	query := r.matcher.Query(title)
	log.Infof("resolving %q on %s with query %q", title, src.Key, query)

	payload, err := r.client.Search(ctx, src.Endpoint, query, 1, r.pageSize)
	if err != nil {
		return nil, err
	}

	records := payload.Records(src.Key)
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %q on %s", source.ErrNotFound, query, src.Key)
	}

	record := r.matcher.Pick(title, records)
	record.Normalize()
	return &record, nil
}

// Switch re-resolves the displayed record on another source.
// The displayed ID is never reused since IDs are source-scoped.
func (r *Registry) Switch(ctx context.Context, sourceKey string, displayed *source.Record) (*source.Record, error) {
	if displayed == nil {
		return nil, fmt.Errorf("%w: nothing to switch", source.ErrNotFound)
	}

	return r.ResolveByTitle(ctx, sourceKey, displayed.Title)
}

// ListingKey is the cache key of one category page.
func ListingKey(sourceKey string, category source.Category, page, pageSize int) string {
	return fmt.Sprintf("%s%s:%s:%d:%d", category.Slug, constant.CacheKeySuffix, sourceKey, page, pageSize)
}

// ListByCategory returns one page of a category listing, served from the cache while fresh.
func (r *Registry) ListByCategory(ctx context.Context, sourceKey string, category source.Category, page, pageSize int) (*source.Listing, error) {
	src, err := r.catalog.Get(sourceKey)
	if err != nil {
		return nil, err
	}

	page = max(page, 1)
	if pageSize <= 0 {
		pageSize = r.pageSize
	}

	cacheKey := ListingKey(src.Key, category, page, pageSize)
	if r.listings != nil {
		if cached, ok := r.listings.Get(cacheKey).Get(); ok {
			log.Debugf("listing %s served from cache", cacheKey)
			return &cached, nil
		}
	}

	payload, err := r.client.List(ctx, src.Endpoint, category.ID, page, pageSize)
	if err != nil {
		return nil, err
	}

	listing := payload.Listing(src.Key)
	if len(listing.Items) == 0 {
		return nil, fmt.Errorf("%w: %s page %d on %s", source.ErrNotFound, category.Slug, page, src.Key)
	}

	if r.listings != nil {
		if err := r.listings.Set(cacheKey, *listing); err != nil {
			log.Warnf("caching %s: %s", cacheKey, err)
		}
	}

	return listing, nil
}

// Search returns one page of search results for query. Results are not cached.
func (r *Registry) Search(ctx context.Context, sourceKey, query string, page, pageSize int) (*source.Listing, error) {
	src, err := r.catalog.Get(sourceKey)
	if err != nil {
		return nil, err
	}

	page = max(page, 1)
	if pageSize <= 0 {
		pageSize = r.pageSize
	}

	payload, err := r.client.Search(ctx, src.Endpoint, query, page, pageSize)
	if err != nil {
		return nil, err
	}

	listing := payload.Listing(src.Key)
	if len(listing.Items) == 0 {
		return nil, fmt.Errorf("%w: %q on %s", source.ErrNotFound, query, src.Key)
	}

	return listing, nil
}
