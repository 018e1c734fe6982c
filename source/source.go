// Package source defines the domain models and interfaces for media discovery and retrieval.
package source

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Source is an independently hosted provider exposing the shared videolist/detail query shape.
type Source struct {
	// Key is the unique identifier used in configuration and on the command line.
	Key string `json:"key" mapstructure:"key"`
	// Name is the display name.
	Name string `json:"name" mapstructure:"name"`
	// Endpoint is the base url every query is issued against.
	Endpoint string `json:"endpoint" mapstructure:"endpoint"`
}

func (s Source) String() string {
	if s.Name == "" {
		return s.Key
	}
	return s.Name
}

// Catalog is the immutable, ordered set of providers available to the process.
type Catalog struct {
	sources []Source
	byKey   map[string]int
}

// NewCatalog validates and indexes the given sources. Keys must be unique and non-empty.
func NewCatalog(sources ...Source) (Catalog, error) {
	byKey := make(map[string]int, len(sources))
	for i, s := range sources {
		if strings.TrimSpace(s.Key) == "" {
			return Catalog{}, fmt.Errorf("source #%d: empty key", i)
		}
		if s.Endpoint == "" {
			return Catalog{}, fmt.Errorf("source %s: empty endpoint", s.Key)
		}
		if _, exists := byKey[s.Key]; exists {
			return Catalog{}, fmt.Errorf("source %s: duplicate key", s.Key)
		}
		byKey[s.Key] = i
	}

	return Catalog{
		sources: append([]Source(nil), sources...),
		byKey:   byKey,
	}, nil
}

// Get returns the source registered under key.
func (c Catalog) Get(key string) (Source, error) {
	i, ok := c.byKey[key]
	if !ok {
		return Source{}, fmt.Errorf("%w: %s", ErrUnknownSource, key)
	}
	return c.sources[i], nil
}

// All returns a copy of the sources in catalog order.
func (c Catalog) All() []Source {
	return append([]Source(nil), c.sources...)
}

// Keys returns the source keys in catalog order.
func (c Catalog) Keys() []string {
	return lo.Map(c.sources, func(s Source, _ int) string { return s.Key })
}

// Len returns the number of sources.
func (c Catalog) Len() int {
	return len(c.sources)
}
