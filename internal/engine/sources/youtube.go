// Package sources implements the YouTube-facing operations behind the
// go_tube tools. Responsibilities are split by file:
//
//	youtube_client.go     — Data API service construction, key fallback,
//	                        error classification, page pacing
//	youtube_channels.go   — channel lookup, channel search, channel uploads
//	youtube_playlists.go  — playlist search
//	youtube_videos.go     — video search and video details
//	youtube_links.go      — resource hyperlinks and video-ID extraction
//	youtube_innertube.go  — Innertube types, constants, low-level HTTP
//	youtube_transcript.go — transcript fetching (watch page scrape,
//	                        engagement panel, ANDROID player fallback)
//
// All listing operations drive the engine's paginated aggregator; this
// package only supplies page fetchers and normalization.
package sources
