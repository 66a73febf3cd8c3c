package sources

import (
	"errors"
	"testing"

	"github.com/anatolykoptev/go_tube/internal/engine"
	"google.golang.org/api/youtube/v3"
)

func TestNormalizeChannelResult(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		got, err := normalizeChannelResult(&youtube.SearchResult{
			Id: &youtube.ResourceId{ChannelId: "UC123"},
			Snippet: &youtube.SearchResultSnippet{
				Title:       "Test Channel",
				Description: "desc",
				PublishedAt: "2020-01-01T00:00:00Z",
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ChannelID != "UC123" || got.ChannelTitle != "Test Channel" {
			t.Errorf("unexpected record: %+v", got)
		}
		if got.URL != "https://www.youtube.com/channel/UC123" {
			t.Errorf("URL = %q", got.URL)
		}
	})

	t.Run("missing id is fatal", func(t *testing.T) {
		_, err := normalizeChannelResult(&youtube.SearchResult{
			Snippet: &youtube.SearchResultSnippet{Title: "x"},
		})
		var mr *engine.MalformedRecordError
		if !errors.As(err, &mr) || !mr.Fatal {
			t.Fatalf("got %v, want fatal MalformedRecordError", err)
		}
	})

	t.Run("missing snippet is skippable", func(t *testing.T) {
		_, err := normalizeChannelResult(&youtube.SearchResult{
			Id: &youtube.ResourceId{ChannelId: "UC123"},
		})
		var mr *engine.MalformedRecordError
		if !errors.As(err, &mr) || mr.Fatal {
			t.Fatalf("got %v, want non-fatal MalformedRecordError", err)
		}
	})
}

func TestNormalizePlaylistResult(t *testing.T) {
	got, err := normalizePlaylistResult(&youtube.SearchResult{
		Id: &youtube.ResourceId{PlaylistId: "PL456"},
		Snippet: &youtube.SearchResultSnippet{
			Title:     "Series",
			ChannelId: "UC123",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.PlaylistID != "PL456" || got.ChannelID != "UC123" {
		t.Errorf("unexpected record: %+v", got)
	}
	if got.URL != "https://www.youtube.com/playlist?list=PL456" {
		t.Errorf("URL = %q", got.URL)
	}

	_, err = normalizePlaylistResult(&youtube.SearchResult{
		Id:      &youtube.ResourceId{},
		Snippet: &youtube.SearchResultSnippet{Title: "x"},
	})
	var mr *engine.MalformedRecordError
	if !errors.As(err, &mr) || !mr.Fatal {
		t.Fatalf("got %v, want fatal MalformedRecordError", err)
	}
}

func TestNormalizeVideoResult(t *testing.T) {
	got, err := normalizeVideoResult(&youtube.SearchResult{
		Id: &youtube.ResourceId{VideoId: "dQw4w9WgXcQ"},
		Snippet: &youtube.SearchResultSnippet{
			Title:        "Video",
			ChannelId:    "UC123",
			ChannelTitle: "Channel",
			PublishedAt:  "2023-05-01T00:00:00Z",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.VideoID != "dQw4w9WgXcQ" || got.ChannelTitle != "Channel" {
		t.Errorf("unexpected record: %+v", got)
	}
	if got.Duration != "" || got.ViewCount != 0 {
		t.Errorf("search result must not carry detail fields: %+v", got)
	}
}

func TestNormalizeVideo(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		got, err := normalizeVideo(&youtube.Video{
			Id: "dQw4w9WgXcQ",
			Snippet: &youtube.VideoSnippet{
				Title:        "Video",
				ChannelId:    "UC123",
				ChannelTitle: "Channel",
				Tags:         []string{"music"},
			},
			ContentDetails: &youtube.VideoContentDetails{
				Duration:  "PT3M33S",
				Dimension: "2d",
			},
			Statistics: &youtube.VideoStatistics{
				ViewCount:    1000,
				LikeCount:    50,
				CommentCount: 7,
			},
			TopicDetails: &youtube.VideoTopicDetails{
				TopicCategories: []string{"https://en.wikipedia.org/wiki/Music"},
			},
			PaidProductPlacementDetails: &youtube.VideoPaidProductPlacementDetails{
				HasPaidProductPlacement: true,
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Duration != "PT3M33S" || got.ViewCount != 1000 || got.LikeCount != 50 {
			t.Errorf("detail fields not mapped: %+v", got)
		}
		if !got.HasPaidProductPlacement {
			t.Error("HasPaidProductPlacement not mapped")
		}
		if len(got.Tags) != 1 || len(got.TopicCategories) != 1 {
			t.Errorf("slices not mapped: %+v", got)
		}
	})

	t.Run("optional blocks absent", func(t *testing.T) {
		got, err := normalizeVideo(&youtube.Video{
			Id:      "dQw4w9WgXcQ",
			Snippet: &youtube.VideoSnippet{Title: "Video"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Duration != "" || got.ViewCount != 0 {
			t.Errorf("expected zero detail fields: %+v", got)
		}
	})

	t.Run("missing id is fatal", func(t *testing.T) {
		_, err := normalizeVideo(&youtube.Video{Snippet: &youtube.VideoSnippet{}})
		var mr *engine.MalformedRecordError
		if !errors.As(err, &mr) || !mr.Fatal {
			t.Fatalf("got %v, want fatal MalformedRecordError", err)
		}
	})
}

func TestNormalizePlaylistItem(t *testing.T) {
	got, err := normalizePlaylistItem(&youtube.PlaylistItem{
		Snippet: &youtube.PlaylistItemSnippet{
			Title:      "Upload",
			ChannelId:  "UC123",
			ResourceId: &youtube.ResourceId{VideoId: "jNQXAC9IVRw"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.VideoID != "jNQXAC9IVRw" {
		t.Errorf("VideoID = %q", got.VideoID)
	}

	_, err = normalizePlaylistItem(&youtube.PlaylistItem{
		Snippet: &youtube.PlaylistItemSnippet{Title: "no resource"},
	})
	var mr *engine.MalformedRecordError
	if !errors.As(err, &mr) || !mr.Fatal {
		t.Fatalf("got %v, want fatal MalformedRecordError", err)
	}
}

func TestSplitVideoIDs(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"a,b,c", 3},
		{"a, b , c", 3},
		{"a,,c", 2},
		{"", 0},
		{" , ", 0},
	}
	for _, tt := range tests {
		if got := SplitVideoIDs(tt.input); len(got) != tt.want {
			t.Errorf("SplitVideoIDs(%q) = %v, want %d ids", tt.input, got, tt.want)
		}
	}
}
