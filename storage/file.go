package storage

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/vodhub/vodhub/filesystem"
	"github.com/vodhub/vodhub/log"
	"golang.org/x/exp/slices"
)

// File keeps the whole store as a single JSON object on disk, the way a browser keeps local storage.
type File struct {
	mu     sync.Mutex
	cacher *gache.Cache[map[string]string]
}

// NewFile returns a file-backed store persisted at path through the active filesystem backend.
func NewFile(path string) *File {
	_ = filesystem.API().MkdirAll(filepath.Dir(path), os.ModePerm)

	return &File{
		cacher: gache.New[map[string]string](&gache.Options{
			Path:       path,
			FileSystem: &filesystem.GacheFs{},
		}),
	}
}

// load never fails: an unreadable document is treated as an empty store and rewritten on the next Set.
func (f *File) load() map[string]string {
	values, expired, err := f.cacher.Get()
	if err != nil {
		log.Warnf("storage file is unreadable, starting empty: %v", err)
		return make(map[string]string)
	}

	if expired || values == nil {
		return make(map[string]string)
	}

	return values
}

func (f *File) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, ok := f.load()[key]
	return v, ok, nil
}

func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values := lo.Assign(f.load())
	values[key] = value
	return f.cacher.Set(values)
}

func (f *File) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values := lo.Assign(f.load())
	if _, ok := values[key]; !ok {
		return nil
	}

	delete(values, key)
	return f.cacher.Set(values)
}

func (f *File) Keys() ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	keys := lo.Keys(f.load())
	slices.Sort(keys)
	return keys, nil
}

func (f *File) Close() error {
	return nil
}
