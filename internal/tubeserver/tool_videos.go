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

type VideoSearchInput struct {
	Query           string `json:"query" jsonschema:"Video search keywords (e.g. kubernetes deep dive)"`
	MaxResults      int64  `json:"max_results,omitempty" jsonschema:"Max videos to return (default 50, max 500)"`
	Order           string `json:"order,omitempty" jsonschema:"Sort order: date (default), relevance, rating, title, viewCount"`
	Duration        string `json:"duration,omitempty" jsonschema:"Video length filter: any (default), short (<4 min), medium (4-20 min), long (>20 min)"`
	Region          string `json:"region,omitempty" jsonschema:"ISO 3166-1 alpha-2 region code (default: US)"`
	PublishedAfter  string `json:"published_after,omitempty" jsonschema:"Only videos published after this RFC 3339 timestamp"`
	PublishedBefore string `json:"published_before,omitempty" jsonschema:"Only videos published before this RFC 3339 timestamp"`
}

type VideoDetailsInput struct {
	VideoIDs string `json:"video_ids" jsonschema:"Comma-separated YouTube video IDs or URLs (e.g. dQw4w9WgXcQ,https://youtu.be/jNQXAC9IVRw)"`
}

func registerVideoSearch(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube_video_search",
		Description: "Search YouTube videos by keyword. Returns video IDs, titles, channel info, publish dates, and URLs, plus the source-reported total. Supports sort order, duration filter, region, and publish-date window.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input VideoSearchInput) (*mcp.CallToolResult, engine.VideoResults, error) {
		if strings.TrimSpace(input.Query) == "" {
			return nil, engine.VideoResults{}, fmt.Errorf("%w: query is required", engine.ErrInvalidQuery)
		}

		q := engine.SearchQuery{
			Query:           input.Query,
			PublishedAfter:  input.PublishedAfter,
			PublishedBefore: input.PublishedBefore,
			RegionCode:      toolutil.NormRegion(input.Region),
			Order:           toolutil.NormOrder(input.Order, "date"),
			Duration:        strings.ToLower(strings.TrimSpace(input.Duration)),
			Limit:           toolutil.ClampLimit(input.MaxResults, 50, 500),
		}

		cacheKey := engine.CacheKey("video_search", q.Query, q.Order, q.Duration, q.RegionCode,
			q.PublishedAfter, q.PublishedBefore, fmt.Sprint(q.Limit))
		if out, ok := engine.CacheLoadJSON[engine.VideoResults](ctx, cacheKey); ok {
			return nil, out, nil
		}

		results, err := sources.SearchVideos(ctx, q)
		if err != nil {
			return nil, engine.VideoResults{}, err
		}

		engine.CacheStoreJSON(ctx, cacheKey, results)
		return nil, results, nil
	})
}

func registerVideoDetails(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube_video_details",
		Description: "Get full metadata for one or more videos: title, description, tags, duration, view/like/comment counts, topic categories, and paid product placement flag. Accepts video IDs or URLs.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input VideoDetailsInput) (*mcp.CallToolResult, engine.VideoResults, error) {
		raw := sources.SplitVideoIDs(input.VideoIDs)
		if len(raw) == 0 {
			return nil, engine.VideoResults{}, fmt.Errorf("%w: video_ids is required", engine.ErrInvalidQuery)
		}

		ids := make([]string, 0, len(raw))
		for _, r := range raw {
			id := sources.ExtractVideoID(r)
			if id == "" {
				return nil, engine.VideoResults{}, fmt.Errorf("%w: %q is not a video ID or URL", engine.ErrInvalidQuery, r)
			}
			ids = append(ids, id)
		}

		cacheKey := engine.CacheKey(append([]string{"video_details"}, ids...)...)
		if out, ok := engine.CacheLoadJSON[engine.VideoResults](ctx, cacheKey); ok {
			return nil, out, nil
		}

		results, err := sources.GetVideoDetails(ctx, ids, int64(len(ids)))
		if err != nil {
			return nil, engine.VideoResults{}, err
		}

		engine.CacheStoreJSON(ctx, cacheKey, results)
		return nil, results, nil
	})
}
