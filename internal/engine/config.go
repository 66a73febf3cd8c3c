package engine

import (
	"net/http"
	"time"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	YouTubeAPIKey         string
	YouTubeAPIKeyFallback string
	DefaultRegion         string
	PageFetchInterval     time.Duration // delay between consecutive page fetches
	TranscriptLangs       []string
	WatchlistPath         string // empty = default under $HOME
	CacheMaxEntries       int
	CacheCleanupInterval  time.Duration
	HTTPClient            *http.Client // transcript endpoints; Data API builds its own
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (sources, watchlist).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}
