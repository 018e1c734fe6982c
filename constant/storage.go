package constant

// Durable store keys. Category listings are cached under "<category>_cache" prefixed keys.
const (
	WatchHistoryKey  = "watchHistory"
	SearchHistoryKey = "searchHistory"
	CacheKeySuffix   = "_cache"
)

// DefaultPlayerTemplate is the embeddable web player used for playback hand-off.
// The single %s verb receives the query-escaped stream URL.
const DefaultPlayerTemplate = "https://hoplayer.com/index.html?url=%s&autoplay=true"
