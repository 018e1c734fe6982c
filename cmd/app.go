package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/avast/retry-go/v4"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vodhub/vodhub/config"
	"github.com/vodhub/vodhub/filesystem"
	"github.com/vodhub/vodhub/history"
	"github.com/vodhub/vodhub/internal/cache"
	"github.com/vodhub/vodhub/key"
	"github.com/vodhub/vodhub/log"
	"github.com/vodhub/vodhub/network"
	"github.com/vodhub/vodhub/provider"
	"github.com/vodhub/vodhub/query"
	"github.com/vodhub/vodhub/registry"
	"github.com/vodhub/vodhub/source"
	"github.com/vodhub/vodhub/storage"
	"github.com/vodhub/vodhub/where"
)

// app holds the services a command works with. It is built once per invocation.
type app struct {
	store    storage.Store
	registry *registry.Registry
	listings *cache.TTL[source.Listing]
	watch    *history.Watch
	queries  *query.History
}

func storagePath(backend string) string {
	if strings.EqualFold(backend, storage.BackendBolt) {
		return where.Bolt()
	}
	return where.Storage()
}

// openStore opens the configured durable store.
func openStore() (storage.Store, error) {
	backend := viper.GetString(key.StorageBackend)
	return storage.Open(backend, storagePath(backend))
}

// newApp wires the durable store, the histories and the registry from configuration.
func newApp() (*app, error) {
	store, err := openStore()
	if err != nil {
		return nil, err
	}

	catalog, err := config.Catalog()
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	matcher, err := registry.MatcherByName(viper.GetString(key.SourcesMatcher))
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	listings := cache.New[source.Listing](store, config.CacheTTL())
	reg := registry.New(
		catalog,
		provider.New(network.New()),
		registry.WithMatcher(matcher),
		registry.WithListingCache(listings),
		registry.WithPageSize(viper.GetInt(key.CategoryPageSize)),
	)

	return &app{
		store:    store,
		registry: reg,
		listings: listings,
		watch:    history.NewWatch(store, nil),
		queries:  query.NewHistory(store, nil),
	}, nil
}

// mustApp builds the app or exits. The store is closed when the command finishes.
func mustApp() *app {
	a, err := newApp()
	handleErr(err)

	cobra.OnFinalize(func() {
		if err := a.store.Close(); err != nil {
			log.Warn(err)
		}
	})

	return a
}

// currentSource returns the key of the source selected with --source or sources.default.
func currentSource() string {
	return viper.GetString(key.SourcesDefault)
}

// withRetry runs fn, retrying transport failures as many times as --retries allows.
func withRetry[T any](cmd *cobra.Command, fn func(ctx context.Context) (T, error)) (T, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	retries := lo.Must(cmd.Flags().GetUint("retries"))
	if retries == 0 {
		return fn(ctx)
	}

	return retry.DoWithData(
		func() (T, error) { return fn(ctx) },
		retry.Context(ctx),
		retry.Attempts(retries+1),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, source.ErrTransport)
		}),
		retry.OnRetry(func(n uint, err error) {
			log.Warnf("attempt %d failed: %s", n+1, err)
		}),
	)
}

// output returns the writer selected with --output, stdout by default.
func output(cmd *cobra.Command) io.Writer {
	path := lo.Must(cmd.Flags().GetString("output"))
	if path == "" {
		return os.Stdout
	}

	file, err := filesystem.API().Create(path)
	handleErr(err)

	cobra.OnFinalize(func() {
		_ = file.Close()
	})

	return file
}

func asJson(cmd *cobra.Command) bool {
	return lo.Must(cmd.Flags().GetBool("json"))
}
