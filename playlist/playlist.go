// Package playlist decodes the provider playlist encoding into an ordered episode list.
//
// A playlist is a single string of the form
//
//	label$url#label$url#...
//
// Providers may leave out the "$url" part of an episode, or leave the label empty.
// Decoding never fails. Labels and urls are kept verbatim; only an empty label is generated.
package playlist

import (
	"fmt"
	"strings"
)

const (
	episodeSeparator = "#"
	urlSeparator     = "$"
)

// Episode is a single entry of a decoded playlist.
type Episode struct {
	// Index is the 1-based position in the playlist.
	Index int `json:"index"`
	// Label is the provider label, or a generated "第NN集" when the provider left it empty.
	Label string `json:"label"`
	// URL is the stream address. Empty means no stream is available for this episode.
	URL string `json:"url"`
}

// Playable reports whether the episode carries a stream url.
func (e Episode) Playable() bool {
	return e.URL != ""
}

func (e Episode) String() string {
	return e.Label
}

// Playlist is the decoded form of a raw playlist string.
type Playlist struct {
	Episodes []Episode `json:"episodes"`
}

// Count returns the number of episodes.
func (p Playlist) Count() int {
	return len(p.Episodes)
}

// Names returns the episode labels in order.
func (p Playlist) Names() []string {
	names := make([]string, len(p.Episodes))
	for i, e := range p.Episodes {
		names[i] = e.Label
	}
	return names
}

// At returns the episode with the given 1-based index.
func (p Playlist) At(index int) (Episode, bool) {
	if index < 1 || index > len(p.Episodes) {
		return Episode{}, false
	}
	return p.Episodes[index-1], true
}

// Find returns the first episode carrying label.
func (p Playlist) Find(label string) (Episode, bool) {
	for _, e := range p.Episodes {
		if e.Label == label {
			return e, true
		}
	}
	return Episode{}, false
}

// Next returns the episode after index, if any.
func (p Playlist) Next(index int) (Episode, bool) {
	return p.At(index + 1)
}

// Previous returns the episode before index, if any.
func (p Playlist) Previous(index int) (Episode, bool) {
	return p.At(index - 1)
}

// DefaultLabel generates the label used when a provider supplies an empty one.
func DefaultLabel(index int) string {
	return fmt.Sprintf("第%02d集", index)
}

// Decode parses a raw playlist string. An empty string yields an empty playlist.
func Decode(raw string) Playlist {
	if raw == "" {
		return Playlist{Episodes: []Episode{}}
	}

	segments := strings.Split(raw, episodeSeparator)
	episodes := make([]Episode, len(segments))

	for i, segment := range segments {
		label, url, _ := strings.Cut(segment, urlSeparator)
		if label == "" {
			label = DefaultLabel(i + 1)
		}

		episodes[i] = Episode{
			Index: i + 1,
			Label: label,
			URL:   url,
		}
	}

	return Playlist{Episodes: episodes}
}

// Encode is the inverse of Decode. Episodes without a url are written without the "$" part.
func Encode(episodes []Episode) string {
	var b strings.Builder
	for i, e := range episodes {
		if i > 0 {
			b.WriteString(episodeSeparator)
		}
		b.WriteString(e.Label)
		if e.URL != "" {
			b.WriteString(urlSeparator)
			b.WriteString(e.URL)
		}
	}
	return b.String()
}
