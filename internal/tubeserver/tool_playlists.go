package tubeserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_tube/internal/engine"
	"github.com/anatolykoptev/go_tube/internal/engine/sources"
	"github.com/anatolykoptev/go_tube/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type PlaylistSearchInput struct {
	Query           string `json:"query" jsonschema:"Playlist search keywords (e.g. golang tutorial series)"`
	MaxResults      int64  `json:"max_results,omitempty" jsonschema:"Max playlists to return (default 50, max 500)"`
	Order           string `json:"order,omitempty" jsonschema:"Sort order: date (default), relevance, rating, title, viewCount"`
	Region          string `json:"region,omitempty" jsonschema:"ISO 3166-1 alpha-2 region code (default: US)"`
	PublishedAfter  string `json:"published_after,omitempty" jsonschema:"Only playlists published after this RFC 3339 timestamp"`
	PublishedBefore string `json:"published_before,omitempty" jsonschema:"Only playlists published before this RFC 3339 timestamp"`
}

func registerPlaylistSearch(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube_playlist_search",
		Description: "Search YouTube playlists by keyword. Returns playlist IDs, titles, owning channel IDs, descriptions, and URLs, plus the source-reported total.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input PlaylistSearchInput) (*mcp.CallToolResult, engine.PlaylistResults, error) {
		if strings.TrimSpace(input.Query) == "" {
			return nil, engine.PlaylistResults{}, fmt.Errorf("%w: query is required", engine.ErrInvalidQuery)
		}

		q := engine.SearchQuery{
			Query:           input.Query,
			PublishedAfter:  input.PublishedAfter,
			PublishedBefore: input.PublishedBefore,
			RegionCode:      toolutil.NormRegion(input.Region),
			Order:           toolutil.NormOrder(input.Order, "date"),
			Limit:           toolutil.ClampLimit(input.MaxResults, 50, 500),
		}

		cacheKey := engine.CacheKey("playlist_search", q.Query, q.Order, q.RegionCode,
			q.PublishedAfter, q.PublishedBefore, fmt.Sprint(q.Limit))
		if out, ok := engine.CacheLoadJSON[engine.PlaylistResults](ctx, cacheKey); ok {
			return nil, out, nil
		}

		results, err := sources.SearchPlaylists(ctx, q)
		if err != nil {
			return nil, engine.PlaylistResults{}, err
		}

		engine.CacheStoreJSON(ctx, cacheKey, results)
		return nil, results, nil
	})
}
