package engine

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	ChannelInfoRequests    atomic.Int64
	ChannelSearchRequests  atomic.Int64
	PlaylistSearchRequests atomic.Int64
	VideoSearchRequests    atomic.Int64
	VideoDetailsRequests   atomic.Int64
	ChannelVideosRequests  atomic.Int64
	TranscriptRequests     atomic.Int64
	PagesFetched           atomic.Int64
	WatchlistOps           atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"channel_info_requests":    metrics.ChannelInfoRequests.Load(),
		"channel_search_requests":  metrics.ChannelSearchRequests.Load(),
		"playlist_search_requests": metrics.PlaylistSearchRequests.Load(),
		"video_search_requests":    metrics.VideoSearchRequests.Load(),
		"video_details_requests":   metrics.VideoDetailsRequests.Load(),
		"channel_videos_requests":  metrics.ChannelVideosRequests.Load(),
		"transcript_requests":      metrics.TranscriptRequests.Load(),
		"pages_fetched":            metrics.PagesFetched.Load(),
		"watchlist_ops":            metrics.WatchlistOps.Load(),
		"cache_hits":               hits,
		"cache_misses":             misses,
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP
// metrics endpoint.
func FormatMetrics() string {
	snapshot := GetMetrics()
	keys := make([]string, 0, len(snapshot))
	for k := range snapshot {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, snapshot[k])
	}
	return sb.String()
}

// Incrementors for the sources/ and watchlist/ sub-packages.
func IncrChannelInfo()    { metrics.ChannelInfoRequests.Add(1) }
func IncrChannelSearch()  { metrics.ChannelSearchRequests.Add(1) }
func IncrPlaylistSearch() { metrics.PlaylistSearchRequests.Add(1) }
func IncrVideoSearch()    { metrics.VideoSearchRequests.Add(1) }
func IncrVideoDetails()   { metrics.VideoDetailsRequests.Add(1) }
func IncrChannelVideos()  { metrics.ChannelVideosRequests.Add(1) }
func IncrTranscript()     { metrics.TranscriptRequests.Add(1) }
func IncrPagesFetched()   { metrics.PagesFetched.Add(1) }
func IncrWatchlistOps()   { metrics.WatchlistOps.Add(1) }
