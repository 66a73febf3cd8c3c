package tubeserver

import (
	"context"

	"github.com/anatolykoptev/go_tube/internal/engine/watchlist"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type WatchlistRemoveInput struct {
	ID int64 `json:"id" jsonschema:"Watchlist entry ID to remove"`
}

// registerWatchlist wires the four watchlist tools. These operate on the
// local SQLite database and never touch the YouTube API.
func registerWatchlist(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "watchlist_add",
		Description: "Save a YouTube video to the local watchlist. Status: queued (default), watched, referenced, dropped.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input watchlist.AddInput) (*mcp.CallToolResult, watchlist.Result, error) {
		res, err := watchlist.Add(ctx, input)
		if err != nil {
			return nil, watchlist.Result{}, err
		}
		return nil, *res, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "watchlist_list",
		Description: "List watchlist entries, newest first, optionally filtered by status (queued, watched, referenced, dropped).",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input watchlist.ListInput) (*mcp.CallToolResult, watchlist.ListResult, error) {
		res, err := watchlist.List(ctx, input)
		if err != nil {
			return nil, watchlist.ListResult{}, err
		}
		return nil, *res, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "watchlist_update",
		Description: "Update the status and/or notes of a watchlist entry by ID.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input watchlist.UpdateInput) (*mcp.CallToolResult, watchlist.Result, error) {
		res, err := watchlist.Update(ctx, input)
		if err != nil {
			return nil, watchlist.Result{}, err
		}
		return nil, *res, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "watchlist_remove",
		Description: "Remove a watchlist entry by ID.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input WatchlistRemoveInput) (*mcp.CallToolResult, watchlist.Result, error) {
		res, err := watchlist.Remove(ctx, input.ID)
		if err != nil {
			return nil, watchlist.Result{}, err
		}
		return nil, *res, nil
	})
}
