package sources

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/PuerkitoBio/goquery"

	"github.com/anatolykoptev/go_ytnotion/internal/engine"
)

// Sentinels returned by TitleScraper.FetchTitle. A page whose real title is
// one of these strings is indistinguishable from the failure case.
const (
	TitleNotFound   = "Title not found"
	TitleFetchError = "Error fetching video title"
)

// TitleScraper reads the og:title meta tag of a page.
type TitleScraper struct {
	client *http.Client
}

func NewTitleScraper(cfg *engine.Config) *TitleScraper {
	return &TitleScraper{client: cfg.Client()}
}

// FetchTitle GETs rawURL and returns its og:title content, TitleNotFound when
// the tag is missing, or TitleFetchError on any fetch or parse failure.
func (s *TitleScraper) FetchTitle(ctx context.Context, rawURL string) string {
	engine.IncrTitleFetches()

	title, found, err := s.ogTitle(ctx, rawURL)
	if err != nil {
		engine.IncrTitleErrors()
		slog.Error("title fetch failed", slog.String("url", rawURL), slog.Any("error", err))
		return TitleFetchError
	}
	if !found {
		return TitleNotFound
	}
	return title
}

func (s *TitleScraper) ogTitle(ctx context.Context, rawURL string) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", false, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return "", false, err
	}
	defer resp.Body.Close()

	// Status is not checked; error pages may still carry og:title.
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", false, fmt.Errorf("parse html: %w", err)
	}

	sel := doc.Find(`meta[property="og:title"]`).First()
	if sel.Length() == 0 {
		return "", false, nil
	}
	content, ok := sel.Attr("content")
	if !ok {
		return "", false, errors.New("og:title meta tag has no content attribute")
	}
	return content, true, nil
}
