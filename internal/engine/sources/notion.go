package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/anatolykoptev/go_ytnotion/internal/engine"
)

// Notion page payload. The property types are dictated by the target
// database: Link is its title column, Title and Summary are rich text.
type notionPage struct {
	Parent     notionParent              `json:"parent"`
	Properties map[string]notionProperty `json:"properties"`
}

type notionParent struct {
	DatabaseID string `json:"database_id"`
}

type notionProperty struct {
	Title    []notionRichText `json:"title,omitempty"`
	RichText []notionRichText `json:"rich_text,omitempty"`
}

type notionRichText struct {
	Text notionText `json:"text"`
}

type notionText struct {
	Content string `json:"content"`
}

func richText(s string) []notionRichText {
	return []notionRichText{{Text: notionText{Content: s}}}
}

// buildNotionPage maps a SaveRequest onto the database schema.
func buildNotionPage(databaseID string, r engine.SaveRequest) notionPage {
	return notionPage{
		Parent: notionParent{DatabaseID: databaseID},
		Properties: map[string]notionProperty{
			"Title":   {RichText: richText(r.Title)},
			"Link":    {Title: richText(r.Link)},
			"Summary": {RichText: richText(r.Summary)},
		},
	}
}

// NotionSaver implements save_to_notion.
type NotionSaver struct {
	cfg    *engine.Config
	client *http.Client
}

func NewNotionSaver(cfg *engine.Config) *NotionSaver {
	return &NotionSaver{cfg: cfg, client: cfg.Client()}
}

// SaveRecord creates one page in the configured database. Only HTTP 200
// counts as success.
func (s *NotionSaver) SaveRecord(ctx context.Context, r engine.SaveRequest) engine.SaveResult {
	if missing := s.missingConfig(); missing != "" {
		slog.Error("notion save skipped", slog.String("missing", missing))
		return engine.SaveError(missing + " environment variable not set")
	}

	engine.IncrNotionSaves()

	status, body, err := s.post(ctx, buildNotionPage(s.cfg.NotionDatabaseID, r))
	if err != nil {
		engine.IncrNotionErrors()
		slog.Error("notion save failed", slog.Any("error", err))
		return engine.SaveError(fmt.Sprintf("Error saving to Notion: %v", err))
	}
	if status != http.StatusOK {
		engine.IncrNotionErrors()
		slog.Error("notion API error", slog.Int("status", status), slog.String("body", body))
		return engine.SaveError(fmt.Sprintf("Failed to save to Notion: %d - %s", status, body))
	}

	slog.Info("notion page created", slog.String("title", r.Title))
	return engine.SaveResult{
		Success: true,
		Message: fmt.Sprintf("Successfully saved '%s' to Notion database", r.Title),
	}
}

// missingConfig names the first required setting that is empty.
func (s *NotionSaver) missingConfig() string {
	switch {
	case s.cfg.NotionDatabaseID == "":
		return "NOTION_DATABASE_ID"
	case s.cfg.NotionAPIToken == "":
		return "NOTION_API_TOKEN"
	}
	return ""
}

func (s *NotionSaver) post(ctx context.Context, page notionPage) (int, string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(page); err != nil {
		return 0, "", fmt.Errorf("encode page: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.NotionAPIURL, &buf)
	if err != nil {
		return 0, "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.NotionAPIToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Notion-Version", s.cfg.NotionVersion)

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, "", fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, string(body), nil
}
