// Package transcriptserver registers the YouTube transcript MCP tools:
// get_transcript, get_timed_transcript, get_video_info.
package transcriptserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers all transcript tools on the given MCP server.
func RegisterTools(server *mcp.Server) {
	registerGetTranscript(server)
	registerGetTimedTranscript(server)
	registerGetVideoInfo(server)
}

// textResult wraps a plain string as a tool result. Handlers are total:
// business failures come back as formatted text, never as tool errors.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
