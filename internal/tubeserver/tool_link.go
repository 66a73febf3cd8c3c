package tubeserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_tube/internal/engine"
	"github.com/anatolykoptev/go_tube/internal/engine/sources"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type LinkInput struct {
	ID   string `json:"id" jsonschema:"YouTube resource ID (channel, playlist, or video)"`
	Kind string `json:"kind" jsonschema:"Resource kind: channel, playlist, or video"`
}

type LinkOutput struct {
	URL string `json:"url"`
}

func registerLink(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube_link",
		Description: "Build a canonical youtube.com URL for a channel, playlist, or video ID. No network calls.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input LinkInput) (*mcp.CallToolResult, LinkOutput, error) {
		id := strings.TrimSpace(input.ID)
		if id == "" {
			return nil, LinkOutput{}, fmt.Errorf("%w: id is required", engine.ErrInvalidQuery)
		}

		url, err := sources.BuildLink(id, strings.ToLower(strings.TrimSpace(input.Kind)))
		if err != nil {
			return nil, LinkOutput{}, err
		}
		return nil, LinkOutput{URL: url}, nil
	})
}
