// Package storage provides the durable key-value port every persistent store is written against.
//
// Values are opaque strings (serialized JSON documents in practice). Backends:
//   - memory: volatile, for tests
//   - file: one JSON document on disk written through gache and afero
//   - bolt: a bbolt database bucket
package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Store is a durable string key-value store.
type Store interface {
	// Get returns the value stored under key. ok is false for a missing key.
	Get(key string) (value string, ok bool, err error)

	// Set stores value under key, overwriting any previous value, and persists immediately.
	Set(key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error

	// Keys lists every stored key.
	Keys() ([]string, error)

	// Close releases the underlying resources.
	Close() error
}

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendBolt   = "bolt"
)

// Backends returns the supported backend names.
func Backends() []string {
	return []string{BackendFile, BackendBolt, BackendMemory}
}

// Open creates the named backend. path is ignored by the memory backend.
func Open(backend, path string) (Store, error) {
	switch strings.ToLower(backend) {
	case BackendMemory:
		return NewMemory(), nil
	case BackendFile, "":
		return NewFile(path), nil
	case BackendBolt:
		return NewBolt(path)
	default:
		return nil, fmt.Errorf("%w: %s (available: %s)", ErrUnknownBackend, backend, strings.Join(Backends(), ", "))
	}
}

// DeletePrefix removes every key starting with prefix and returns how many were removed.
func DeletePrefix(s Store, prefix string) (int, error) {
	keys, err := s.Keys()
	if err != nil {
		return 0, err
	}

	matching := lo.Filter(keys, func(k string, _ int) bool {
		return strings.HasPrefix(k, prefix)
	})

	for _, k := range matching {
		if err := s.Delete(k); err != nil {
			return 0, err
		}
	}

	return len(matching), nil
}
