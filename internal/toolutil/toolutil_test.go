package toolutil

import (
	"testing"

	"github.com/anatolykoptev/go_tube/internal/engine"
)

func TestClampLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int64
		want  int64
	}{
		{"zero uses default", 0, 50},
		{"negative uses default", -3, 50},
		{"in range kept", 120, 120},
		{"above max clamped", 9000, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampLimit(tt.limit, 50, 500); got != tt.want {
				t.Errorf("ClampLimit(%d) = %d, want %d", tt.limit, got, tt.want)
			}
		})
	}
}

func TestNormRegion(t *testing.T) {
	engine.Init(engine.Config{DefaultRegion: "US"})

	if got := NormRegion(""); got != "US" {
		t.Errorf("empty region = %q, want configured default", got)
	}
	if got := NormRegion(" de "); got != "DE" {
		t.Errorf("got %q, want DE", got)
	}
}

func TestNormOrder(t *testing.T) {
	if got := NormOrder("", "date"); got != "date" {
		t.Errorf("empty order = %q, want default", got)
	}
	if got := NormOrder(" viewCount ", "date"); got != "viewCount" {
		t.Errorf("got %q, want viewCount", got)
	}
}
