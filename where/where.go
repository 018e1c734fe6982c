// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/vodhub/vodhub/constant"
	"github.com/vodhub/vodhub/filesystem"
)

// EnvConfigPath is the environment variable used to override the default configuration directory.
const EnvConfigPath = "VODHUB_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the configuration directory.
// It honours XDG_CONFIG_HOME on Linux and the platform equivalent elsewhere,
// and can be overridden with VODHUB_CONFIG_PATH.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// Cache resolves the cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// Data resolves the directory holding the durable store.
func Data() string {
	return ensureDir(filepath.Join(Config(), "data"))
}

// Logs resolves the directory used for diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Storage resolves the single-file durable store used by the file backend.
func Storage() string {
	return filepath.Join(Data(), "storage.json")
}

// Bolt resolves the database file used by the bolt backend.
func Bolt() string {
	return filepath.Join(Data(), "storage.db")
}

// Env resolves the optional dotenv file loaded before configuration.
func Env() string {
	return filepath.Join(Config(), ".env")
}

// Temp resolves a volatile path for transient artifacts.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.App))
}
