package history

import (
	"fmt"
	"time"

	"github.com/vodhub/vodhub/constant"
	"github.com/vodhub/vodhub/storage"
)

// WatchEntry records the last time a title was opened in the player.
// Entries are keyed by ID only: watching the same id through another source replaces the entry.
type WatchEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Image       string `json:"imageUrl"`
	LastWatched int64  `json:"lastWatched"`
	Episode     string `json:"episode,omitempty"`
	Source      string `json:"source,omitempty"`
}

// Watched returns LastWatched as a time.
func (e WatchEntry) Watched() time.Time {
	return time.UnixMilli(e.LastWatched)
}

func (e WatchEntry) String() string {
	if e.Episode == "" {
		return e.Title
	}
	return fmt.Sprintf("%s : %s", e.Title, e.Episode)
}

// Watch is the watch history.
type Watch struct {
	*Log[WatchEntry]
	now func() time.Time
}

// NewWatch rehydrates the watch history from store.
func NewWatch(store storage.Store, now func() time.Time) *Watch {
	if now == nil {
		now = time.Now
	}

	return &Watch{
		Log: NewLog(store, constant.WatchHistoryKey, func(e WatchEntry) string { return e.ID }),
		now: now,
	}
}

// Add records entry as the most recently watched title. An existing entry with the same
// id is replaced and moved to the front; LastWatched is always refreshed.
func (w *Watch) Add(entry WatchEntry) error {
	entry.LastWatched = w.now().UnixMilli()
	return w.Put(entry)
}
