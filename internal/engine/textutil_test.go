package engine

import (
	"strings"
	"testing"
)

func TestCleanHTML(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain text", "plain text"},
		{"  padded  ", "padded"},
		{"<b>bold</b> move", "bold move"},
		{"a <a href=\"x\">link</a>", "a link"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CleanHTML(tt.input); got != tt.want {
			t.Errorf("CleanHTML(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 10); got != "hello" {
		t.Errorf("got %q", got)
	}
	if got := Truncate("hello world", 5); got != "hello" {
		t.Errorf("got %q", got)
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := TruncateRunes("short", 10, "…"); got != "short" {
		t.Errorf("short string changed: %q", got)
	}
	got := TruncateRunes("привет мир как дела", 6, "…")
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncated string lacks suffix: %q", got)
	}
	if len([]rune(got)) >= len([]rune("привет мир как дела")) {
		t.Errorf("not truncated: %q", got)
	}
}

func TestRandomUserAgent(t *testing.T) {
	ua := RandomUserAgent()
	if !strings.Contains(ua, "Mozilla/5.0") {
		t.Errorf("unexpected user agent %q", ua)
	}
}
