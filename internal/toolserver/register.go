// Package toolserver registers the MCP tools and runs the stdio and HTTP
// transports.
package toolserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool names as seen by MCP clients.
const (
	ToolFetchTranscript = "fetch_youtube_transcript"
	ToolSaveToNotion    = "save_to_notion"
)

// ToolNames lists every registered tool, in registration order.
var ToolNames = []string{ToolFetchTranscript, ToolSaveToNotion}

// Deps are the components behind the tools.
type Deps struct {
	Transcripts TranscriptFetcher
	Records     RecordSaver
}

// RegisterTools registers fetch_youtube_transcript and save_to_notion on server.
func RegisterTools(server *mcp.Server, d Deps) {
	registerFetchTranscript(server, d.Transcripts)
	registerSaveToNotion(server, d.Records)
}
