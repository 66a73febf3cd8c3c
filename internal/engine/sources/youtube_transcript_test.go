package sources

import (
	"testing"
)

func TestParseTimedText(t *testing.T) {
	xmlBody := []byte(`<?xml version="1.0" encoding="utf-8"?>
<transcript>
  <text start="0.5" dur="2.1">hello <i>world</i></text>
  <text start="2.6" dur="1.0"></text>
  <text start="3.6" dur="4.2">second line</text>
</transcript>`)

	lines, err := parseTimedText(xmlBody)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2 (empty line dropped)", len(lines))
	}
	if lines[0].Start != 0.5 || lines[0].Text != "hello world" {
		t.Errorf("line 0 = %+v", lines[0])
	}
	if lines[1].Start != 3.6 || lines[1].Text != "second line" {
		t.Errorf("line 1 = %+v", lines[1])
	}
}

func TestParseTimedTextInvalid(t *testing.T) {
	if _, err := parseTimedText([]byte("not xml at all <")); err == nil {
		t.Error("expected error for invalid XML")
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", `{"a":1};rest`, `{"a":1}`},
		{"nested", `{"a":{"b":2}} trailing`, `{"a":{"b":2}}`},
		{"braces in strings", `{"a":"}{"}suffix`, `{"a":"}{"}`},
		{"escaped quote", `{"a":"\"}"} x`, `{"a":"\"}"}`},
		{"unbalanced", `{"a":1`, ""},
		{"not json", `var x = 1`, ""},
		{"empty", ``, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractJSON([]byte(tt.input))
			if string(got) != tt.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractTranscriptToken(t *testing.T) {
	data := []byte(`{"engagementPanels":[{"getTranscriptEndpoint":{"params":"CgtkUXc0dzlXZ1hjUQ%3D%3D"}}]}`)
	token, err := extractTranscriptToken(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "CgtkUXc0dzlXZ1hjUQ==" {
		t.Errorf("token = %q, want URL-decoded form", token)
	}

	if _, err := extractTranscriptToken([]byte(`{"no":"panels"}`)); err == nil {
		t.Error("expected error when endpoint missing")
	}
}

func TestNeedsPoToken(t *testing.T) {
	if !needsPoToken("https://www.youtube.com/api/timedtext?v=x&exp=xpe") {
		t.Error("exp=xpe track should need PoToken")
	}
	if needsPoToken("https://www.youtube.com/api/timedtext?v=x&lang=en") {
		t.Error("plain track should not need PoToken")
	}
}

func TestPickBestTrack(t *testing.T) {
	manual := func(lang string) captionTrack {
		return captionTrack{BaseURL: "https://yt/tt?lang=" + lang, LanguageCode: lang}
	}
	auto := func(lang string) captionTrack {
		return captionTrack{BaseURL: "https://yt/tt?lang=" + lang + "&kind=asr", LanguageCode: lang, Kind: "asr"}
	}
	blocked := captionTrack{BaseURL: "https://yt/tt?lang=en&exp=xpe", LanguageCode: "en"}

	t.Run("manual beats auto in preferred language", func(t *testing.T) {
		got, ok := pickBestTrack([]captionTrack{auto("en"), manual("en")}, []string{"en"})
		if !ok || got.Kind == "asr" {
			t.Errorf("got %+v, want manual en track", got)
		}
	})

	t.Run("auto accepted when no manual", func(t *testing.T) {
		got, ok := pickBestTrack([]captionTrack{auto("de"), auto("en")}, []string{"de"})
		if !ok || got.LanguageCode != "de" {
			t.Errorf("got %+v, want auto de track", got)
		}
	})

	t.Run("english fallback", func(t *testing.T) {
		got, ok := pickBestTrack([]captionTrack{manual("fr"), manual("en-US")}, []string{"ja"})
		if !ok || got.LanguageCode != "en-US" {
			t.Errorf("got %+v, want en-US track", got)
		}
	})

	t.Run("first usable as last resort", func(t *testing.T) {
		got, ok := pickBestTrack([]captionTrack{manual("fr"), manual("de")}, []string{"ja"})
		if !ok || got.LanguageCode != "fr" {
			t.Errorf("got %+v, want first usable track", got)
		}
	})

	t.Run("all blocked", func(t *testing.T) {
		if _, ok := pickBestTrack([]captionTrack{blocked}, []string{"en"}); ok {
			t.Error("expected ok=false when every track needs PoToken")
		}
	})

	t.Run("blocked skipped in favor of usable", func(t *testing.T) {
		got, ok := pickBestTrack([]captionTrack{blocked, manual("de")}, []string{"en"})
		if !ok || got.LanguageCode != "de" {
			t.Errorf("got %+v, want usable de track", got)
		}
	})
}

func TestFormatTranscript(t *testing.T) {
	lines := []TranscriptLine{
		{Start: 0, Text: "hello"},
		{Start: 65.4, Text: "one minute in"},
		{Start: 3600, Text: "one hour in"},
	}

	t.Run("plain", func(t *testing.T) {
		got := FormatTranscript(lines, false)
		want := "hello\none minute in\none hour in"
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("with timestamps", func(t *testing.T) {
		got := FormatTranscript(lines, true)
		want := "[00:00] hello\n[01:05] one minute in\n[60:00] one hour in"
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if got := FormatTranscript(nil, true); got != "" {
			t.Errorf("got %q, want empty", got)
		}
	})
}

func TestGenerateVisitorData(t *testing.T) {
	v := generateVisitorData()
	if len(v) != 11 {
		t.Errorf("visitor data length = %d, want 11", len(v))
	}
}
