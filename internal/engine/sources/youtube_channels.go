package sources

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anatolykoptev/go_tube/internal/engine"
	"google.golang.org/api/youtube/v3"
)

// GetChannelInfo looks up a single channel by ID (snippet + statistics).
func GetChannelInfo(ctx context.Context, channelID string) (engine.ChannelInfo, error) {
	engine.IncrChannelInfo()
	if channelID == "" {
		return engine.ChannelInfo{}, fmt.Errorf("%w: channel ID is required", engine.ErrInvalidQuery)
	}

	resp, err := withKeyFallback(ctx, func(svc *youtube.Service) (*youtube.ChannelListResponse, error) {
		return svc.Channels.List([]string{"snippet", "statistics"}).
			Id(channelID).
			Context(ctx).
			Do()
	})
	if err != nil {
		return engine.ChannelInfo{}, err
	}
	if len(resp.Items) == 0 {
		return engine.ChannelInfo{}, fmt.Errorf("channel %q not found", channelID)
	}

	info := normalizeChannel(resp.Items[0])
	slog.Info("youtube: channel info retrieved", slog.String("channel", info.ChannelTitle))
	return info, nil
}

// normalizeChannel maps a channels.list item (snippet + statistics) onto
// the stable schema.
func normalizeChannel(ch *youtube.Channel) engine.ChannelInfo {
	info := engine.ChannelInfo{
		ChannelID: ch.Id,
		URL:       ChannelLink(ch.Id),
	}
	if ch.Snippet != nil {
		info.ChannelTitle = ch.Snippet.Title
		info.Description = ch.Snippet.Description
		info.PublishedAt = ch.Snippet.PublishedAt
		info.Country = ch.Snippet.Country
	}
	if ch.Statistics != nil {
		info.ViewCount = int64(ch.Statistics.ViewCount)
		info.SubscriberCount = int64(ch.Statistics.SubscriberCount)
		info.VideoCount = int64(ch.Statistics.VideoCount)
	}
	return info
}

// SearchChannels searches channels by name, draining pages up to q.Limit.
func SearchChannels(ctx context.Context, q engine.SearchQuery) (engine.ChannelResults, error) {
	engine.IncrChannelSearch()
	if err := q.Validate(); err != nil {
		return engine.ChannelResults{}, err
	}

	fetch := searchFetcher(q, "channel")
	agg, err := engine.Aggregate(ctx, fetch, normalizeChannelResult, q.Limit)
	if err != nil {
		return engine.ChannelResults{}, err
	}

	slog.Info("youtube: channel search complete",
		slog.String("query", q.Query),
		slog.Int64("total", agg.TotalResults),
		slog.Int("returned", len(agg.Records)))
	return engine.ChannelResults{TotalResults: agg.TotalResults, Channels: agg.Records}, nil
}

// normalizeChannelResult maps a search.list result of type channel.
// A result without a channel ID poisons the page; one without a snippet
// is skipped.
func normalizeChannelResult(item *youtube.SearchResult) (engine.ChannelInfo, error) {
	if item.Id == nil || item.Id.ChannelId == "" {
		return engine.ChannelInfo{}, &engine.MalformedRecordError{Field: "id.channelId", Fatal: true}
	}
	if item.Snippet == nil {
		return engine.ChannelInfo{}, &engine.MalformedRecordError{Field: "snippet"}
	}
	return engine.ChannelInfo{
		ChannelID:    item.Id.ChannelId,
		ChannelTitle: item.Snippet.Title,
		Description:  item.Snippet.Description,
		PublishedAt:  item.Snippet.PublishedAt,
		URL:          ChannelLink(item.Id.ChannelId),
	}, nil
}

// searchFetcher binds a search.list call to a query and entity type,
// leaving page size and token as the per-call arguments.
func searchFetcher(q engine.SearchQuery, entityType string) engine.PageFetcher[*youtube.SearchResult] {
	return func(ctx context.Context, pageSize int64, pageToken string) (engine.Page[*youtube.SearchResult], error) {
		if err := waitPageTurn(ctx); err != nil {
			return engine.Page[*youtube.SearchResult]{}, err
		}
		engine.IncrPagesFetched()

		resp, err := withKeyFallback(ctx, func(svc *youtube.Service) (*youtube.SearchListResponse, error) {
			call := svc.Search.List([]string{"snippet"}).
				Q(q.Query).
				Type(entityType).
				MaxResults(pageSize).
				Context(ctx)
			if q.Order != "" {
				call = call.Order(q.Order)
			}
			if q.PublishedAfter != "" {
				call = call.PublishedAfter(q.PublishedAfter)
			}
			if q.PublishedBefore != "" {
				call = call.PublishedBefore(q.PublishedBefore)
			}
			if q.RegionCode != "" {
				call = call.RegionCode(q.RegionCode)
			}
			if entityType == "video" && q.Duration != "" {
				call = call.VideoDuration(q.Duration)
			}
			if pageToken != "" {
				call = call.PageToken(pageToken)
			}
			return call.Do()
		})
		if err != nil {
			return engine.Page[*youtube.SearchResult]{}, err
		}
		return engine.Page[*youtube.SearchResult]{
			Items:         resp.Items,
			TotalResults:  pageTotal(resp.PageInfo),
			NextPageToken: resp.NextPageToken,
		}, nil
	}
}

// GetChannelVideos lists a channel's uploads, newest first, up to limit.
// The uploads playlist is resolved once, then paged like any listing.
func GetChannelVideos(ctx context.Context, channelID string, limit int64) (engine.VideoResults, error) {
	engine.IncrChannelVideos()
	if channelID == "" {
		return engine.VideoResults{}, fmt.Errorf("%w: channel ID is required", engine.ErrInvalidQuery)
	}
	if limit <= 0 {
		return engine.VideoResults{}, fmt.Errorf("%w: limit must be positive, got %d", engine.ErrInvalidQuery, limit)
	}

	uploadsID, err := uploadsPlaylistID(ctx, channelID)
	if err != nil {
		return engine.VideoResults{}, err
	}

	fetch := func(ctx context.Context, pageSize int64, pageToken string) (engine.Page[*youtube.PlaylistItem], error) {
		if err := waitPageTurn(ctx); err != nil {
			return engine.Page[*youtube.PlaylistItem]{}, err
		}
		engine.IncrPagesFetched()

		resp, err := withKeyFallback(ctx, func(svc *youtube.Service) (*youtube.PlaylistItemListResponse, error) {
			call := svc.PlaylistItems.List([]string{"snippet"}).
				PlaylistId(uploadsID).
				MaxResults(pageSize).
				Context(ctx)
			if pageToken != "" {
				call = call.PageToken(pageToken)
			}
			return call.Do()
		})
		if err != nil {
			return engine.Page[*youtube.PlaylistItem]{}, err
		}
		return engine.Page[*youtube.PlaylistItem]{
			Items:         resp.Items,
			TotalResults:  pageTotal(resp.PageInfo),
			NextPageToken: resp.NextPageToken,
		}, nil
	}

	agg, err := engine.Aggregate(ctx, fetch, normalizePlaylistItem, limit)
	if err != nil {
		return engine.VideoResults{}, err
	}

	slog.Info("youtube: channel videos retrieved",
		slog.String("channel_id", channelID),
		slog.Int64("total", agg.TotalResults),
		slog.Int("returned", len(agg.Records)))
	return engine.VideoResults{TotalResults: agg.TotalResults, Videos: agg.Records}, nil
}

// uploadsPlaylistID resolves the channel's uploads playlist from
// contentDetails.relatedPlaylists.
func uploadsPlaylistID(ctx context.Context, channelID string) (string, error) {
	resp, err := withKeyFallback(ctx, func(svc *youtube.Service) (*youtube.ChannelListResponse, error) {
		return svc.Channels.List([]string{"contentDetails"}).
			Id(channelID).
			Context(ctx).
			Do()
	})
	if err != nil {
		return "", err
	}
	if len(resp.Items) == 0 {
		return "", fmt.Errorf("channel %q not found", channelID)
	}
	cd := resp.Items[0].ContentDetails
	if cd == nil || cd.RelatedPlaylists == nil || cd.RelatedPlaylists.Uploads == "" {
		return "", fmt.Errorf("channel %q has no uploads playlist", channelID)
	}
	return cd.RelatedPlaylists.Uploads, nil
}

// normalizePlaylistItem maps a playlistItems.list item onto VideoInfo.
func normalizePlaylistItem(item *youtube.PlaylistItem) (engine.VideoInfo, error) {
	if item.Snippet == nil {
		return engine.VideoInfo{}, &engine.MalformedRecordError{Field: "snippet"}
	}
	sn := item.Snippet
	if sn.ResourceId == nil || sn.ResourceId.VideoId == "" {
		return engine.VideoInfo{}, &engine.MalformedRecordError{Field: "snippet.resourceId.videoId", Fatal: true}
	}
	return engine.VideoInfo{
		ChannelID:    sn.ChannelId,
		ChannelTitle: sn.ChannelTitle,
		VideoID:      sn.ResourceId.VideoId,
		VideoTitle:   sn.Title,
		Description:  sn.Description,
		PublishedAt:  sn.PublishedAt,
		URL:          VideoLink(sn.ResourceId.VideoId),
	}, nil
}
