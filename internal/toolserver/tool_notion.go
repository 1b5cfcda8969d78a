package toolserver

import (
	"context"

	"github.com/anatolykoptev/go_ytnotion/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerSaveToNotion(server *mcp.Server, s RecordSaver) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolSaveToNotion,
		Description: "Save a link, title, and summary of a youtube video to Notion database.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.SaveRequest) (*mcp.CallToolResult, engine.SaveResult, error) {
		out := engine.TrackOperation(ctx, ToolSaveToNotion, func(ctx context.Context) engine.SaveResult {
			return s.SaveRecord(ctx, input)
		})
		return nil, out, nil
	})
}
