package engine

import (
	"net/http"
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"MCP_API_KEY", "NOTION_DATABASE_ID", "NOTION_API_TOKEN", "NOTION_API_URL", "NOTION_VERSION", "YOUTUBE_TRANSCRIPT_LANGS", "HTTP_TIMEOUT", "LOG_LEVEL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	c := Load()

	if c.MCPAPIKey != "" || c.NotionDatabaseID != "" || c.NotionAPIToken != "" {
		t.Errorf("secrets should be empty by default, got %+v", c)
	}
	if c.NotionAPIURL != DefaultNotionAPIURL {
		t.Errorf("NotionAPIURL = %q, want %q", c.NotionAPIURL, DefaultNotionAPIURL)
	}
	if c.NotionVersion != "2022-06-28" {
		t.Errorf("NotionVersion = %q, want 2022-06-28", c.NotionVersion)
	}
	if c.HTTPTimeout != 0 {
		t.Errorf("HTTPTimeout = %v, want 0", c.HTTPTimeout)
	}
	if c.HTTPClient == nil {
		t.Fatal("HTTPClient is nil")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MCP_API_KEY", "secret")
	t.Setenv("NOTION_DATABASE_ID", "db-123")
	t.Setenv("NOTION_API_TOKEN", "ntn_abc")
	t.Setenv("HTTP_TIMEOUT", "30s")
	t.Setenv("YOUTUBE_TRANSCRIPT_LANGS", "de,en")

	c := Load()
	if c.MCPAPIKey != "secret" {
		t.Errorf("MCPAPIKey = %q", c.MCPAPIKey)
	}
	if c.NotionDatabaseID != "db-123" {
		t.Errorf("NotionDatabaseID = %q", c.NotionDatabaseID)
	}
	if c.NotionAPIToken != "ntn_abc" {
		t.Errorf("NotionAPIToken = %q", c.NotionAPIToken)
	}
	if c.HTTPTimeout != 30*time.Second || c.HTTPClient.Timeout != 30*time.Second {
		t.Errorf("timeout = %v / %v, want 30s", c.HTTPTimeout, c.HTTPClient.Timeout)
	}
	if len(c.TranscriptLangs) != 2 || c.TranscriptLangs[0] != "de" {
		t.Errorf("TranscriptLangs = %v, want [de en]", c.TranscriptLangs)
	}
}

func TestConfigClientFallback(t *testing.T) {
	var c *Config
	if c.Client() != http.DefaultClient {
		t.Error("nil config should fall back to http.DefaultClient")
	}
	if (&Config{}).Client() != http.DefaultClient {
		t.Error("config without client should fall back to http.DefaultClient")
	}
	own := &http.Client{}
	if (&Config{HTTPClient: own}).Client() != own {
		t.Error("configured client not returned")
	}
}
