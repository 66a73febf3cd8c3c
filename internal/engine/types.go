package engine

import (
	"fmt"
	"regexp"
	"time"
)

// ChannelInfo is the normalized channel record. Statistics fields are
// populated only by the channels.list endpoint; search results carry just
// the snippet fields.
type ChannelInfo struct {
	ChannelID       string `json:"channel_id"`
	ChannelTitle    string `json:"channel_title"`
	Description     string `json:"description"`
	PublishedAt     string `json:"published_at"`
	Country         string `json:"country,omitempty"`
	ViewCount       int64  `json:"view_count,omitempty"`
	SubscriberCount int64  `json:"subscriber_count,omitempty"`
	VideoCount      int64  `json:"video_count,omitempty"`
	URL             string `json:"url"`
}

// ChannelResults is a channel listing with the source-reported total.
type ChannelResults struct {
	TotalResults int64         `json:"total_results"`
	Channels     []ChannelInfo `json:"channels"`
}

// PlaylistInfo is the normalized playlist record.
type PlaylistInfo struct {
	PlaylistID    string `json:"playlist_id"`
	PlaylistTitle string `json:"playlist_title"`
	ChannelID     string `json:"channel_id"`
	Description   string `json:"description"`
	PublishedAt   string `json:"published_at"`
	URL           string `json:"url"`
}

// PlaylistResults is a playlist listing with the source-reported total.
type PlaylistResults struct {
	TotalResults int64          `json:"total_results"`
	Playlists    []PlaylistInfo `json:"playlists"`
}

// VideoInfo is the normalized video record. The optional block is populated
// only by the videos.list endpoint; search and playlist listings carry just
// the snippet fields.
type VideoInfo struct {
	ChannelID    string `json:"channel_id"`
	ChannelTitle string `json:"channel_title"`
	VideoID      string `json:"video_id"`
	VideoTitle   string `json:"video_title"`
	Description  string `json:"description"`
	PublishedAt  string `json:"published_at"`
	URL          string `json:"url"`

	Tags                    []string `json:"tags,omitempty"`
	Duration                string   `json:"duration,omitempty"`
	Dimension               string   `json:"dimension,omitempty"`
	ViewCount               int64    `json:"view_count,omitempty"`
	LikeCount               int64    `json:"like_count,omitempty"`
	CommentCount            int64    `json:"comment_count,omitempty"`
	TopicCategories         []string `json:"topic_categories,omitempty"`
	HasPaidProductPlacement bool     `json:"has_paid_product_placement,omitempty"`
}

// VideoResults is a video listing with the source-reported total.
type VideoResults struct {
	TotalResults int64       `json:"total_results"`
	Videos       []VideoInfo `json:"videos"`
}

// Orders accepted by the Data API search.list endpoint.
var validOrders = map[string]bool{
	"": true, "date": true, "rating": true, "relevance": true,
	"title": true, "videoCount": true, "viewCount": true,
}

// Duration filters accepted by search.list for videos.
var validDurations = map[string]bool{
	"": true, "any": true, "long": true, "medium": true, "short": true,
}

var regionCodeRe = regexp.MustCompile(`^[A-Z]{2}$`)

// SearchQuery is the immutable per-call query record. It is constructed
// once per tool call, validated before any fetch, and consumed by a single
// aggregation.
type SearchQuery struct {
	Query           string
	IDs             []string
	PublishedAfter  string // RFC 3339
	PublishedBefore string // RFC 3339
	RegionCode      string
	Order           string
	Duration        string
	Limit           int64
}

// Validate rejects malformed queries with ErrInvalidQuery before any
// network call is made.
func (q SearchQuery) Validate() error {
	if q.Limit <= 0 {
		return fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidQuery, q.Limit)
	}
	if !validOrders[q.Order] {
		return fmt.Errorf("%w: unknown order %q", ErrInvalidQuery, q.Order)
	}
	if !validDurations[q.Duration] {
		return fmt.Errorf("%w: unknown duration filter %q", ErrInvalidQuery, q.Duration)
	}
	if q.RegionCode != "" && !regionCodeRe.MatchString(q.RegionCode) {
		return fmt.Errorf("%w: region code %q is not ISO 3166-1 alpha-2", ErrInvalidQuery, q.RegionCode)
	}

	var after, before time.Time
	var err error
	if q.PublishedAfter != "" {
		if after, err = time.Parse(time.RFC3339, q.PublishedAfter); err != nil {
			return fmt.Errorf("%w: published_after %q is not RFC 3339", ErrInvalidQuery, q.PublishedAfter)
		}
	}
	if q.PublishedBefore != "" {
		if before, err = time.Parse(time.RFC3339, q.PublishedBefore); err != nil {
			return fmt.Errorf("%w: published_before %q is not RFC 3339", ErrInvalidQuery, q.PublishedBefore)
		}
	}
	if !after.IsZero() && !before.IsZero() && after.After(before) {
		return fmt.Errorf("%w: published_after is later than published_before", ErrInvalidQuery)
	}
	return nil
}
