package sources

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anatolykoptev/go_tube/internal/engine"
	"google.golang.org/api/youtube/v3"
)

// SearchVideos searches videos by query, draining pages up to q.Limit.
// Search results carry snippet fields only; use GetVideoDetails for
// statistics, duration, and topic data.
func SearchVideos(ctx context.Context, q engine.SearchQuery) (engine.VideoResults, error) {
	engine.IncrVideoSearch()
	if err := q.Validate(); err != nil {
		return engine.VideoResults{}, err
	}

	fetch := searchFetcher(q, "video")
	agg, err := engine.Aggregate(ctx, fetch, normalizeVideoResult, q.Limit)
	if err != nil {
		return engine.VideoResults{}, err
	}

	slog.Info("youtube: video search complete",
		slog.String("query", q.Query),
		slog.Int64("total", agg.TotalResults),
		slog.Int("returned", len(agg.Records)))
	return engine.VideoResults{TotalResults: agg.TotalResults, Videos: agg.Records}, nil
}

// normalizeVideoResult maps a search.list result of type video.
func normalizeVideoResult(item *youtube.SearchResult) (engine.VideoInfo, error) {
	if item.Id == nil || item.Id.VideoId == "" {
		return engine.VideoInfo{}, &engine.MalformedRecordError{Field: "id.videoId", Fatal: true}
	}
	if item.Snippet == nil {
		return engine.VideoInfo{}, &engine.MalformedRecordError{Field: "snippet"}
	}
	return engine.VideoInfo{
		ChannelID:    item.Snippet.ChannelId,
		ChannelTitle: item.Snippet.ChannelTitle,
		VideoID:      item.Id.VideoId,
		VideoTitle:   item.Snippet.Title,
		Description:  item.Snippet.Description,
		PublishedAt:  item.Snippet.PublishedAt,
		URL:          VideoLink(item.Id.VideoId),
	}, nil
}

// videoDetailParts covers everything the detail schema needs.
var videoDetailParts = []string{
	"id", "snippet", "contentDetails", "statistics",
	"topicDetails", "paidProductPlacementDetails",
}

// GetVideoDetails retrieves full metadata for the given video IDs,
// paginated like any listing. IDs beyond limit are not fetched.
func GetVideoDetails(ctx context.Context, videoIDs []string, limit int64) (engine.VideoResults, error) {
	engine.IncrVideoDetails()
	if len(videoIDs) == 0 {
		return engine.VideoResults{}, fmt.Errorf("%w: at least one video ID is required", engine.ErrInvalidQuery)
	}
	if limit <= 0 {
		return engine.VideoResults{}, fmt.Errorf("%w: limit must be positive, got %d", engine.ErrInvalidQuery, limit)
	}

	fetch := func(ctx context.Context, pageSize int64, pageToken string) (engine.Page[*youtube.Video], error) {
		if err := waitPageTurn(ctx); err != nil {
			return engine.Page[*youtube.Video]{}, err
		}
		engine.IncrPagesFetched()

		resp, err := withKeyFallback(ctx, func(svc *youtube.Service) (*youtube.VideoListResponse, error) {
			call := svc.Videos.List(videoDetailParts).
				Id(videoIDs...).
				MaxResults(pageSize).
				Context(ctx)
			if pageToken != "" {
				call = call.PageToken(pageToken)
			}
			return call.Do()
		})
		if err != nil {
			return engine.Page[*youtube.Video]{}, err
		}
		return engine.Page[*youtube.Video]{
			Items:         resp.Items,
			TotalResults:  pageTotal(resp.PageInfo),
			NextPageToken: resp.NextPageToken,
		}, nil
	}

	agg, err := engine.Aggregate(ctx, fetch, normalizeVideo, limit)
	if err != nil {
		return engine.VideoResults{}, err
	}

	slog.Info("youtube: video details retrieved",
		slog.Int("requested", len(videoIDs)),
		slog.Int("returned", len(agg.Records)))
	return engine.VideoResults{TotalResults: agg.TotalResults, Videos: agg.Records}, nil
}

// normalizeVideo maps a videos.list item onto the full VideoInfo schema.
// Absent optional blocks (contentDetails, statistics, topicDetails) leave
// their fields empty rather than failing.
func normalizeVideo(item *youtube.Video) (engine.VideoInfo, error) {
	if item.Id == "" {
		return engine.VideoInfo{}, &engine.MalformedRecordError{Field: "id", Fatal: true}
	}
	if item.Snippet == nil {
		return engine.VideoInfo{}, &engine.MalformedRecordError{Field: "snippet"}
	}

	info := engine.VideoInfo{
		ChannelID:    item.Snippet.ChannelId,
		ChannelTitle: item.Snippet.ChannelTitle,
		VideoID:      item.Id,
		VideoTitle:   item.Snippet.Title,
		Description:  item.Snippet.Description,
		PublishedAt:  item.Snippet.PublishedAt,
		Tags:         item.Snippet.Tags,
		URL:          VideoLink(item.Id),
	}
	if cd := item.ContentDetails; cd != nil {
		info.Duration = cd.Duration
		info.Dimension = cd.Dimension
	}
	if st := item.Statistics; st != nil {
		info.ViewCount = int64(st.ViewCount)
		info.LikeCount = int64(st.LikeCount)
		info.CommentCount = int64(st.CommentCount)
	}
	if td := item.TopicDetails; td != nil {
		info.TopicCategories = td.TopicCategories
	}
	if pp := item.PaidProductPlacementDetails; pp != nil {
		info.HasPaidProductPlacement = pp.HasPaidProductPlacement
	}
	return info, nil
}

// SplitVideoIDs parses the comma-separated ID list accepted by the
// video-details tool, dropping empty segments.
func SplitVideoIDs(s string) []string {
	parts := strings.Split(s, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}
