package engine

import (
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/joho/godotenv"
)

// Defaults for the Notion pages API.
const (
	DefaultNotionAPIURL  = "https://api.notion.com/v1/pages"
	DefaultNotionVersion = "2022-06-28"
)

// Config holds all process configuration. It is built once in main and passed
// by pointer to every component; nothing mutates it afterwards.
type Config struct {
	MCPAPIKey        string // bearer secret for the HTTP transport; empty = every token rejected
	NotionDatabaseID string
	NotionAPIToken   string
	NotionAPIURL     string
	NotionVersion    string
	TranscriptLangs  []string      // caption language preference, most preferred first
	HTTPTimeout      time.Duration // 0 = no client timeout
	LogLevel         string
	HTTPClient       *http.Client
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	_ = godotenv.Load()

	c := &Config{
		MCPAPIKey:        env.Str("MCP_API_KEY", ""),
		NotionDatabaseID: env.Str("NOTION_DATABASE_ID", ""),
		NotionAPIToken:   env.Str("NOTION_API_TOKEN", ""),
		NotionAPIURL:     env.Str("NOTION_API_URL", DefaultNotionAPIURL),
		NotionVersion:    env.Str("NOTION_VERSION", DefaultNotionVersion),
		TranscriptLangs:  env.List("YOUTUBE_TRANSCRIPT_LANGS", "en"),
		HTTPTimeout:      env.Duration("HTTP_TIMEOUT", 0),
		LogLevel:         env.Str("LOG_LEVEL", "info"),
	}
	c.HTTPClient = &http.Client{
		Timeout: c.HTTPTimeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        20,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     60 * time.Second,
		},
	}
	return c
}

// Client returns the shared HTTP client, falling back to http.DefaultClient.
func (c *Config) Client() *http.Client {
	if c == nil || c.HTTPClient == nil {
		return http.DefaultClient
	}
	return c.HTTPClient
}
