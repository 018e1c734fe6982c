// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vodhub/vodhub/color"
	"github.com/vodhub/vodhub/constant"
	"github.com/vodhub/vodhub/key"
	"github.com/vodhub/vodhub/style"
)

// Field is a registered configuration key with its default and description.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env returns the environment variable bound to the field.
func (f *Field) Env() string {
	return strings.ToUpper(constant.App + "_" + EnvKeyReplacer.Replace(f.Key))
}

// typeName describes the default's type the way a user edits it.
func (f *Field) typeName() string {
	switch v := f.Value.(type) {
	case string:
		if _, err := time.ParseDuration(v); err == nil {
			return "duration"
		}
		return "string"
	case []map[string]any:
		return "[]table"
	case map[string]any:
		return "table"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// Pretty renders the field for config info.
func (f *Field) Pretty() string {
	label := style.Fg(color.Blue)
	rows := []string{
		style.Faint(f.Description),
		label("Key:     ") + style.Fg(color.Purple)(f.Key),
	}

	if lo.Contains(EnvExposed, f.Key) {
		rows = append(rows, label("Env:     ")+f.Env())
	}

	rows = append(rows,
		label("Value:   ")+highlight(viper.Get(f.Key)),
		label("Default: ")+highlight(f.Value),
		label("Type:    ")+f.typeName(),
	)

	return strings.Join(rows, "\n")
}

func highlight(v any) string {
	switch value := v.(type) {
	case bool:
		if value {
			return style.Fg(color.Green)(strconv.FormatBool(value))
		}
		return style.Fg(color.Red)(strconv.FormatBool(value))
	case string:
		return style.Fg(color.Yellow)(value)
	case []map[string]any, map[string]any, []any:
		b, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprint(value)
		}
		return string(b)
	default:
		return fmt.Sprint(value)
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
// Tables and lists of tables are file-only.
var EnvExposed []string

// defaultCatalog lists the built-in sources in their default order.
var defaultCatalog = []map[string]any{
	{"key": "moyu", "name": "摸鱼云", "endpoint": "http://localhost:8080/heimuer/api.php/provide/vod/"},
	{"key": "feifan", "name": "非凡云", "endpoint": "http://localhost:8080/ikun/api.php/provide/vod/"},
	{"key": "modu", "name": "魔都云", "endpoint": "http://localhost:8080/modu/api.php/provide/vod/"},
	{"key": "youzhi", "name": "优质云", "endpoint": "http://localhost:8080/youzhi/inc/apijson.php/provide/vod/"},
	{"key": "subocaiji", "name": "速播云", "endpoint": "http://localhost:8080/subocaiji/api.php/provide/vod/"},
}

// defaultCategories lists the landing sections.
var defaultCategories = []map[string]any{
	{"slug": "movies", "id": 6, "title": "电影"},
	{"slug": "tv", "id": 13, "title": "电视剧"},
	{"slug": "anime", "id": 60, "title": "动漫"},
	{"slug": "variety", "id": 38, "title": "综艺"},
}

func init() {
	// register validates and adds a new configuration field to the global registry.
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		f := Field{Key: k, Value: v, Description: desc}
		Default[k] = f

		switch v.(type) {
		case []map[string]any, map[string]any:
		default:
			EnvExposed = append(EnvExposed, k)
		}
	}

	register(key.SourcesDefault, "feifan", "Source used when --source is not given.\nType \"vodhub sources list\" to show available sources")
	register(key.SourcesOrder, []string{}, "Preferred order of sources in listings and switch suggestions.\nSources not listed keep their catalog order")
	register(key.SourcesCatalog, defaultCatalog, "Available sources. Each entry needs a unique key, a display name and an endpoint")
	register(key.SourcesMatcher, "prefix", "How a title is matched when switching sources.\nAvailable options are: prefix, fuzzy")
	register(key.Categories, defaultCategories, "Browsable categories shown on the landing page. Each entry needs a slug, a provider type id and a title")
	register(key.CategoryPageSize, 24, "Number of items per category page")
	register(key.CacheTTL, "1h", "How long category listings stay fresh")
	register(key.StorageBackend, "file", "Where histories and cached listings are kept.\nAvailable options are: file, bolt, memory")
	register(key.HistorySaveOnPlay, true, "Save watch history when an episode is played")
	register(key.HistoryPreviewSize, 5, "Number of entries shown in history previews")
	register(key.SearchShowQuerySuggestions, true, "Show query suggestions when searching")
	register(key.SearchSaveQueries, true, "Remember submitted search queries")
	register(key.SearchPageSize, 24, "Number of search results per page")
	register(key.NetworkTimeout, "10s", "Timeout of a single provider request")
	register(key.NetworkTLSFingerprint, false, "Present a browser TLS fingerprint to https sources")
	register(key.PlayerURLTemplate, constant.DefaultPlayerTemplate, "Web player url. The single %s receives the escaped stream url")
	register(key.PlayerOpen, true, "Open the player url in the browser instead of printing it")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.LogsMaxSize, 10, "Maximum size in megabytes of a log file before it is rotated")
	register(key.LogsMaxBackups, 3, "Number of rotated log files to keep")
	register(key.LogsMaxAge, 28, "Days to keep rotated log files")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Enable automatic version check")
}
