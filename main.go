// go_ytnotion is a YouTube & Notion MCP server.
//
// Exposes two MCP tools: fetch_youtube_transcript, save_to_notion.
// Runs over stdio (no auth) or as a stateless streamable HTTP server that
// requires the MCP_API_KEY bearer token.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/anatolykoptev/go_ytnotion/internal/auth"
	"github.com/anatolykoptev/go_ytnotion/internal/engine"
	"github.com/anatolykoptev/go_ytnotion/internal/engine/sources"
	"github.com/anatolykoptev/go_ytnotion/internal/toolserver"
)

const serverName = "YouTube & Notion MCP Server"

var version = "dev"

var (
	transport string
	host      string
	port      int
)

var rootCmd = &cobra.Command{
	Use:   "go_ytnotion",
	Short: "YouTube & Notion MCP server",
	Long: `MCP server exposing fetch_youtube_transcript and save_to_notion.

Examples:
  go_ytnotion                                         # stdio, no auth
  go_ytnotion --transport http --host 0.0.0.0 --port 8000`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&transport, "transport", "stdio", "Transport type (stdio|http)")
	rootCmd.Flags().StringVar(&host, "host", "localhost", "Host for HTTP transport")
	rootCmd.Flags().IntVar(&port, "port", 8000, "Port for HTTP transport")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	if transport != "stdio" && transport != "http" {
		return fmt.Errorf("invalid transport %q: want stdio or http", transport)
	}

	cfg := engine.Load()
	setupLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: version,
	}, nil)

	toolserver.RegisterTools(server, toolserver.Deps{
		Transcripts: sources.NewTranscriptFetcher(sources.NewYouTubeProvider(cfg), sources.NewTitleScraper(cfg)),
		Records:     sources.NewNotionSaver(cfg),
	})

	tools := slog.String("tools", strings.Join(toolserver.ToolNames, ", "))

	if transport == "http" {
		addr := toolserver.Addr(host, port)
		slog.Info("starting HTTP server",
			slog.String("addr", addr),
			slog.String("path", toolserver.MCPPath),
			slog.String("auth", "bearer token required"),
			slog.String("scopes", strings.Join(auth.Scopes(), ", ")),
			tools,
		)
		handler := toolserver.NewHTTPHandler(server, auth.NewVerifier(cfg))
		return toolserver.RunHTTP(ctx, addr, handler)
	}

	slog.Info("starting stdio server (no auth required)", tools)
	if err := toolserver.RunStdio(ctx, server); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// setupLogger installs a text handler on stderr; stdout carries the stdio transport.
func setupLogger(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
