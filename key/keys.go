// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 26

// Provider Catalog - these keys manage the set of content providers and how titles are matched across them.
const (
	SourcesDefault = "sources.default"
	SourcesOrder   = "sources.order"
	SourcesCatalog = "sources.catalog"
	SourcesMatcher = "sources.matcher"
)

// Browsing - these keys define the category listings and their freshness window.
const (
	Categories       = "browse.categories"
	CategoryPageSize = "browse.page_size"
	CacheTTL         = "cache.ttl"
)

// Durable Storage - these keys select where histories and cached listings are persisted.
const (
	StorageBackend = "storage.backend"
)

// History Tracking - these keys configure the persistence of watch state.
const (
	HistorySaveOnPlay  = "history.save_on_play"
	HistoryPreviewSize = "history.preview_size"
)

// Search Interaction - these keys define the UI/UX parameters for search discovery.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
	SearchSaveQueries          = "search.save_queries"
	SearchPageSize             = "search.page_size"
)

// Networking - these keys tune the shared HTTP client.
const (
	NetworkTimeout        = "network.timeout"
	NetworkTLSFingerprint = "network.tls_fingerprint"
)

// Media Playback - these keys configure the hand-off to the external embeddable player.
const (
	PlayerURLTemplate = "player.url_template"
	PlayerOpen        = "player.open"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite      = "logs.write"
	LogsLevel      = "logs.level"
	LogsJson       = "logs.json"
	LogsMaxSize    = "logs.max_size"
	LogsMaxBackups = "logs.max_backups"
	LogsMaxAge     = "logs.max_age"
)

// CLI Execution Environment - these flags and settings govern general command behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
