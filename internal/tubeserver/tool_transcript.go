package tubeserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_tube/internal/engine"
	"github.com/anatolykoptev/go_tube/internal/engine/sources"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type TranscriptInput struct {
	Video      string `json:"video" jsonschema:"YouTube video ID or URL"`
	Languages  string `json:"languages,omitempty" jsonschema:"Comma-separated language codes in preference order (default: en)"`
	Timestamps bool   `json:"timestamps,omitempty" jsonschema:"Prefix each line with its [mm:ss] start time"`
}

type TranscriptOutput struct {
	VideoID    string `json:"video_id"`
	LineCount  int    `json:"line_count"`
	Transcript string `json:"transcript"`
}

func registerTranscript(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube_transcript",
		Description: "Download the caption transcript of a YouTube video. Prefers manual captions in the requested languages, falls back to auto-generated ones. Accepts a video ID or URL.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input TranscriptInput) (*mcp.CallToolResult, TranscriptOutput, error) {
		videoID := sources.ExtractVideoID(strings.TrimSpace(input.Video))
		if videoID == "" {
			return nil, TranscriptOutput{}, fmt.Errorf("%w: video must be a YouTube video ID or URL", engine.ErrInvalidQuery)
		}

		var langs []string
		for _, l := range strings.Split(input.Languages, ",") {
			if l = strings.TrimSpace(l); l != "" {
				langs = append(langs, l)
			}
		}

		cacheKey := engine.CacheKey("transcript", videoID, input.Languages, fmt.Sprint(input.Timestamps))
		if out, ok := engine.CacheLoadJSON[TranscriptOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		lines, err := sources.FetchTranscript(ctx, videoID, langs)
		if err != nil {
			return nil, TranscriptOutput{}, err
		}

		out := TranscriptOutput{
			VideoID:    videoID,
			LineCount:  len(lines),
			Transcript: sources.FormatTranscript(lines, input.Timestamps),
		}
		engine.CacheStoreJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}
