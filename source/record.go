package source

import (
	"fmt"

	"github.com/vodhub/vodhub/playlist"
)

// Record is the normalized content record of a title under one source.
// ID is source-scoped: the same title has a different ID on every provider.
type Record struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Cover       string  `json:"cover"`
	Year        string  `json:"year"`
	Region      string  `json:"region"`
	Genre       string  `json:"genre"`
	Synopsis    string  `json:"synopsis"`
	Actors      string  `json:"actors,omitempty"`
	Director    string  `json:"director,omitempty"`
	Score       float64 `json:"score,omitempty"`
	PlaylistRaw string  `json:"playlist_raw"`

	// Source is the key of the provider the record was resolved through.
	Source string `json:"source"`

	Playlist playlist.Playlist `json:"playlist"`
}

func (r *Record) String() string {
	return r.Title
}

// Normalize decodes PlaylistRaw into Playlist.
func (r *Record) Normalize() {
	r.Playlist = playlist.Decode(r.PlaylistRaw)
}

// Episodes returns the decoded playlist, normalizing the record first if needed.
func (r *Record) Episodes() playlist.Playlist {
	if r.Playlist.Episodes == nil {
		r.Normalize()
	}
	return r.Playlist
}

// Listing is one page of records.
type Listing struct {
	Items      []Record `json:"items"`
	Page       int      `json:"page"`
	TotalPages int      `json:"total_pages"`
	Total      int      `json:"total"`
}

// Category is a browsable provider category.
type Category struct {
	// Slug is the stable name used on the command line and in cache keys (e.g. "movies").
	Slug string `json:"slug" mapstructure:"slug"`
	// ID is the provider type id passed as the "t" parameter.
	ID int `json:"id" mapstructure:"id"`
	// Title is the display title.
	Title string `json:"title" mapstructure:"title"`
}

func (c Category) String() string {
	if c.Title == "" {
		return c.Slug
	}
	return fmt.Sprintf("%s (%s)", c.Title, c.Slug)
}
