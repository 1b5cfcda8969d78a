package toolserver

import (
	"context"

	"github.com/anatolykoptev/go_ytnotion/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerFetchTranscript(server *mcp.Server, f TranscriptFetcher) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolFetchTranscript,
		Description: "Fetch transcripts of a youtube video. Returns the full transcript text joined into one string plus the video title, or an error message.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.TranscriptInput) (*mcp.CallToolResult, engine.TranscriptResult, error) {
		out := engine.TrackOperation(ctx, ToolFetchTranscript, func(ctx context.Context) engine.TranscriptResult {
			return f.FetchTranscript(ctx, input.URL)
		})
		return nil, out, nil
	})
}
