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

type ChannelInfoInput struct {
	ChannelID string `json:"channel_id" jsonschema:"YouTube channel ID (e.g. UC_x5XG1OV2P6uZZ5FSM9Ttw)"`
}

type ChannelSearchInput struct {
	Query           string `json:"query" jsonschema:"Channel search keywords (e.g. machine learning lectures)"`
	MaxResults      int64  `json:"max_results,omitempty" jsonschema:"Max channels to return (default 50, max 500)"`
	Order           string `json:"order,omitempty" jsonschema:"Sort order: relevance (default), date, rating, title, videoCount, viewCount"`
	Region          string `json:"region,omitempty" jsonschema:"ISO 3166-1 alpha-2 region code (default: US)"`
	PublishedAfter  string `json:"published_after,omitempty" jsonschema:"Only channels created after this RFC 3339 timestamp"`
	PublishedBefore string `json:"published_before,omitempty" jsonschema:"Only channels created before this RFC 3339 timestamp"`
}

type ChannelVideosInput struct {
	ChannelID  string `json:"channel_id" jsonschema:"YouTube channel ID whose uploads to list"`
	MaxResults int64  `json:"max_results,omitempty" jsonschema:"Max videos to return, newest first (default 10, max 500)"`
}

func registerChannelInfo(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube_channel_info",
		Description: "Get metadata for a YouTube channel by ID: title, description, country, view/subscriber/video counts, and URL.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input ChannelInfoInput) (*mcp.CallToolResult, engine.ChannelInfo, error) {
		channelID := strings.TrimSpace(input.ChannelID)
		if channelID == "" {
			return nil, engine.ChannelInfo{}, fmt.Errorf("%w: channel_id is required", engine.ErrInvalidQuery)
		}

		cacheKey := engine.CacheKey("channel_info", channelID)
		if out, ok := engine.CacheLoadJSON[engine.ChannelInfo](ctx, cacheKey); ok {
			return nil, out, nil
		}

		info, err := sources.GetChannelInfo(ctx, channelID)
		if err != nil {
			return nil, engine.ChannelInfo{}, err
		}

		engine.CacheStoreJSON(ctx, cacheKey, info)
		return nil, info, nil
	})
}

func registerChannelSearch(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube_channel_search",
		Description: "Search YouTube channels by keyword. Returns channel IDs, titles, descriptions, and URLs, plus the source-reported total. Supports sort order, region, and publish-date window.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input ChannelSearchInput) (*mcp.CallToolResult, engine.ChannelResults, error) {
		if strings.TrimSpace(input.Query) == "" {
			return nil, engine.ChannelResults{}, fmt.Errorf("%w: query is required", engine.ErrInvalidQuery)
		}

		q := engine.SearchQuery{
			Query:           input.Query,
			PublishedAfter:  input.PublishedAfter,
			PublishedBefore: input.PublishedBefore,
			RegionCode:      toolutil.NormRegion(input.Region),
			Order:           toolutil.NormOrder(input.Order, "relevance"),
			Limit:           toolutil.ClampLimit(input.MaxResults, 50, 500),
		}

		cacheKey := engine.CacheKey("channel_search", q.Query, q.Order, q.RegionCode,
			q.PublishedAfter, q.PublishedBefore, fmt.Sprint(q.Limit))
		if out, ok := engine.CacheLoadJSON[engine.ChannelResults](ctx, cacheKey); ok {
			return nil, out, nil
		}

		results, err := sources.SearchChannels(ctx, q)
		if err != nil {
			return nil, engine.ChannelResults{}, err
		}

		engine.CacheStoreJSON(ctx, cacheKey, results)
		return nil, results, nil
	})
}

func registerChannelVideos(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube_channel_videos",
		Description: "List a channel's uploaded videos, newest first. Returns video IDs, titles, descriptions, publish dates, and URLs.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input ChannelVideosInput) (*mcp.CallToolResult, engine.VideoResults, error) {
		channelID := strings.TrimSpace(input.ChannelID)
		if channelID == "" {
			return nil, engine.VideoResults{}, fmt.Errorf("%w: channel_id is required", engine.ErrInvalidQuery)
		}
		limit := toolutil.ClampLimit(input.MaxResults, 10, 500)

		cacheKey := engine.CacheKey("channel_videos", channelID, fmt.Sprint(limit))
		if out, ok := engine.CacheLoadJSON[engine.VideoResults](ctx, cacheKey); ok {
			return nil, out, nil
		}

		results, err := sources.GetChannelVideos(ctx, channelID, limit)
		if err != nil {
			return nil, engine.VideoResults{}, err
		}

		engine.CacheStoreJSON(ctx, cacheKey, results)
		return nil, results, nil
	})
}
