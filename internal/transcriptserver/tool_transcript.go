package transcriptserver

import (
	"context"
	"fmt"

	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerGetTranscript(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_transcript",
		Description: "Get the plain text transcript of a YouTube video. Returns the full transcript as continuous text without timestamps. Useful for summarization, analysis, or when timing isn't needed.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.TranscriptInput) (*mcp.CallToolResult, any, error) {
		if input.VideoURL == "" {
			return nil, nil, fmt.Errorf("video_url is required")
		}
		return textResult(engine.GetTranscript(ctx, input.VideoURL, input.Language)), nil, nil
	})
}
