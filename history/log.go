// Package history provides bounded, deduplicated, most-recent-first logs persisted in the durable store.
package history

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/samber/lo"
	"github.com/vodhub/vodhub/log"
	"github.com/vodhub/vodhub/storage"
)

// DefaultPreviewSize is the front window shown by recency previews.
const DefaultPreviewSize = 5

// ErrInvalidEntry is returned when an entry has an empty dedup key.
var ErrInvalidEntry = errors.New("history entry has no identity")

// Log is a most-recent-first list of entries, unique by the key returned from identify.
//
// Every mutation serializes the full list to the store before the in-memory list is
// replaced, so a failed write leaves both sides unchanged. There is no size cap.
type Log[T any] struct {
	store    storage.Store
	key      string
	identify func(T) string

	mu      sync.RWMutex
	entries []T
}

// NewLog rehydrates the log stored under key. A missing or unparsable value yields an empty log.
func NewLog[T any](store storage.Store, key string, identify func(T) string) *Log[T] {
	l := &Log[T]{
		store:    store,
		key:      key,
		identify: identify,
		entries:  []T{},
	}

	raw, ok, err := store.Get(key)
	switch {
	case err != nil:
		log.Warnf("history %s: read failed, starting empty: %v", key, err)
	case !ok:
	default:
		var entries []T
		if err := json.Unmarshal([]byte(raw), &entries); err != nil {
			log.Warnf("history %s: stored value is corrupt, starting empty: %v", key, err)
		} else if entries != nil {
			l.entries = entries
		}
	}

	return l
}

// Put removes any entry sharing the identity of entry and prepends entry.
func (l *Log[T]) Put(entry T) error {
	id := l.identify(entry)
	if id == "" {
		return ErrInvalidEntry
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	next := make([]T, 0, len(l.entries)+1)
	next = append(next, entry)
	next = append(next, lo.Reject(l.entries, func(e T, _ int) bool {
		return l.identify(e) == id
	})...)

	return l.commit(next)
}

// Remove drops the entry with the given identity. It reports whether anything was removed.
func (l *Log[T]) Remove(id string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := lo.Reject(l.entries, func(e T, _ int) bool {
		return l.identify(e) == id
	})
	if len(next) == len(l.entries) {
		return false, nil
	}

	return true, l.commit(next)
}

// RemoveAt drops the entry at position i (0 is the most recent).
func (l *Log[T]) RemoveAt(i int) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if i < 0 || i >= len(l.entries) {
		return false, nil
	}

	next := make([]T, 0, len(l.entries)-1)
	next = append(next, l.entries[:i]...)
	next = append(next, l.entries[i+1:]...)

	return true, l.commit(next)
}

// Clear empties the log.
func (l *Log[T]) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.commit([]T{})
}

// Find returns the entry with the given identity.
func (l *Log[T]) Find(id string) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return lo.Find(l.entries, func(e T) bool {
		return l.identify(e) == id
	})
}

// All returns a copy of every entry, most recent first.
func (l *Log[T]) All() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return append([]T{}, l.entries...)
}

// Recent returns at most n entries from the front of the log.
func (l *Log[T]) Recent(n int) []T {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if n < 0 {
		n = 0
	}
	return append([]T{}, l.entries[:min(n, len(l.entries))]...)
}

// Len returns the number of entries.
func (l *Log[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.entries)
}

// commit must be called with the write lock held.
func (l *Log[T]) commit(next []T) error {
	data, err := json.Marshal(next)
	if err != nil {
		return err
	}

	if err := l.store.Set(l.key, string(data)); err != nil {
		return err
	}

	l.entries = next
	return nil
}
