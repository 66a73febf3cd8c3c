package sources

import (
	"fmt"
	"regexp"

	"github.com/anatolykoptev/go_tube/internal/engine"
)

var (
	watchURLRe = regexp.MustCompile(`(?:https?://)?(?:www\.)?(?:youtube\.com/watch\?(?:.*&)?v=|youtu\.be/)([a-zA-Z0-9_-]{11})`)
	bareIDRe   = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
)

// ExtractVideoID pulls the 11-char video ID from a watch URL, a youtu.be
// short link, or a bare ID. Returns "" when input matches none of them.
func ExtractVideoID(input string) string {
	if m := watchURLRe.FindStringSubmatch(input); len(m) >= 2 {
		return m[1]
	}
	if bareIDRe.MatchString(input) {
		return input
	}
	return ""
}

func ChannelLink(id string) string  { return "https://www.youtube.com/channel/" + id }
func PlaylistLink(id string) string { return "https://www.youtube.com/playlist?list=" + id }
func VideoLink(id string) string    { return "https://www.youtube.com/watch?v=" + id }

// BuildLink constructs the public URL for a YouTube resource.
// kind is one of "channel", "playlist", "video".
func BuildLink(id, kind string) (string, error) {
	switch kind {
	case "channel":
		return ChannelLink(id), nil
	case "playlist":
		return PlaylistLink(id), nil
	case "video":
		return VideoLink(id), nil
	}
	return "", fmt.Errorf("%w: unknown resource type %q", engine.ErrInvalidQuery, kind)
}
