package transcriptserver

import (
	"context"
	"fmt"

	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerGetTimedTranscript(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_timed_transcript",
		Description: "Get the transcript of a YouTube video with timestamps. Returns each segment with its start time in [MM:SS] format. Useful when you need to reference specific parts of the video.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.TranscriptInput) (*mcp.CallToolResult, any, error) {
		if input.VideoURL == "" {
			return nil, nil, fmt.Errorf("video_url is required")
		}
		return textResult(engine.GetTimedTranscript(ctx, input.VideoURL, input.Language)), nil, nil
	})
}
