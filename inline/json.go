package inline

import (
	"encoding/json"
	"io"

	"github.com/vodhub/vodhub/history"
	"github.com/vodhub/vodhub/query"
	"github.com/vodhub/vodhub/source"
)

// Output is the JSON document printed for listings, searches and detail lookups.
type Output struct {
	// Query is the search query, if any.
	Query string `json:"query,omitempty"`
	// Source is the key of the source the records were resolved through.
	Source     string          `json:"source"`
	Page       int             `json:"page,omitempty"`
	TotalPages int             `json:"total_pages,omitempty"`
	Total      int             `json:"total,omitempty"`
	Result     []source.Record `json:"result"`
}

// Section is one landing section. Error is set instead of Listing when the section failed.
type Section struct {
	Category source.Category `json:"category"`
	Listing  *source.Listing `json:"listing,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// LandingOutput is the JSON document printed for the landing view.
type LandingOutput struct {
	Source   string    `json:"source"`
	Sections []Section `json:"sections"`
}

// HistoryOutput is the JSON document printed for the watch history.
type HistoryOutput struct {
	Entries []history.WatchEntry `json:"entries"`
}

// QueriesOutput is the JSON document printed for the search history.
type QueriesOutput struct {
	Entries []query.Entry `json:"entries"`
}

func writeJson(out io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	data = append(data, '\n')
	_, err = out.Write(data)
	return err
}
