// Package tubeserver registers the YouTube MCP tools onto an mcp.Server.
package tubeserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ToolCount is the number of tools RegisterTools adds.
const ToolCount = 12

// RegisterTools registers all YouTube tools on the given MCP server:
// channel info/search/videos, playlist search, video search/details,
// transcript, link building, and the local watchlist.
func RegisterTools(server *mcp.Server) {
	registerChannelInfo(server)
	registerChannelSearch(server)
	registerChannelVideos(server)
	registerPlaylistSearch(server)
	registerVideoSearch(server)
	registerVideoDetails(server)
	registerTranscript(server)
	registerLink(server)
	registerWatchlist(server)
}
