package sources

import (
	"context"
	"log/slog"

	"github.com/anatolykoptev/go_tube/internal/engine"
	"google.golang.org/api/youtube/v3"
)

// SearchPlaylists searches playlists by query, draining pages up to q.Limit.
func SearchPlaylists(ctx context.Context, q engine.SearchQuery) (engine.PlaylistResults, error) {
	engine.IncrPlaylistSearch()
	if err := q.Validate(); err != nil {
		return engine.PlaylistResults{}, err
	}

	fetch := searchFetcher(q, "playlist")
	agg, err := engine.Aggregate(ctx, fetch, normalizePlaylistResult, q.Limit)
	if err != nil {
		return engine.PlaylistResults{}, err
	}

	slog.Info("youtube: playlist search complete",
		slog.String("query", q.Query),
		slog.Int64("total", agg.TotalResults),
		slog.Int("returned", len(agg.Records)))
	return engine.PlaylistResults{TotalResults: agg.TotalResults, Playlists: agg.Records}, nil
}

// normalizePlaylistResult maps a search.list result of type playlist.
func normalizePlaylistResult(item *youtube.SearchResult) (engine.PlaylistInfo, error) {
	if item.Id == nil || item.Id.PlaylistId == "" {
		return engine.PlaylistInfo{}, &engine.MalformedRecordError{Field: "id.playlistId", Fatal: true}
	}
	if item.Snippet == nil {
		return engine.PlaylistInfo{}, &engine.MalformedRecordError{Field: "snippet"}
	}
	return engine.PlaylistInfo{
		PlaylistID:    item.Id.PlaylistId,
		PlaylistTitle: item.Snippet.Title,
		ChannelID:     item.Snippet.ChannelId,
		Description:   item.Snippet.Description,
		PublishedAt:   item.Snippet.PublishedAt,
		URL:           PlaylistLink(item.Id.PlaylistId),
	}, nil
}
