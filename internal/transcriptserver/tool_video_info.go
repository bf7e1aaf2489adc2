package transcriptserver

import (
	"context"
	"fmt"

	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerGetVideoInfo(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_video_info",
		Description: "Get available transcript languages for a YouTube video. Returns the list of caption languages, split into manual and auto-generated.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.VideoInfoInput) (*mcp.CallToolResult, any, error) {
		if input.VideoURL == "" {
			return nil, nil, fmt.Errorf("video_url is required")
		}
		return textResult(engine.GetVideoInfo(ctx, input.VideoURL)), nil, nil
	})
}
