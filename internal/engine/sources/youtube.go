package sources

// YouTube implementation is split across three files by responsibility:
//   youtube_innertube.go:  Innertube API types, constants and low-level HTTP primitives
//   youtube_transcript.go: caption track selection and timedtext download
//   youtube.go:            the fetch_youtube_transcript operation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anatolykoptev/go_ytnotion/internal/engine"
)

// TitleFetcher resolves a page title. Implementations never fail; they
// report problems through sentinel strings instead.
type TitleFetcher interface {
	FetchTitle(ctx context.Context, rawURL string) string
}

// VideoID returns everything after the last "v=" in rawURL, or rawURL
// itself when it has no "v=".
func VideoID(rawURL string) string {
	if i := strings.LastIndex(rawURL, "v="); i >= 0 {
		return rawURL[i+len("v="):]
	}
	return rawURL
}

// JoinSegments joins segment texts with single spaces, in order.
func JoinSegments(segs []Segment) string {
	texts := make([]string, len(segs))
	for i, s := range segs {
		texts[i] = s.Text
	}
	return strings.Join(texts, " ")
}

// TranscriptFetcher implements fetch_youtube_transcript.
type TranscriptFetcher struct {
	provider TranscriptProvider
	titles   TitleFetcher
}

func NewTranscriptFetcher(provider TranscriptProvider, titles TitleFetcher) *TranscriptFetcher {
	return &TranscriptFetcher{provider: provider, titles: titles}
}

// FetchTranscript returns the full transcript and page title for rawURL.
// Provider failures come back as the error variant; a failed title lookup
// only degrades the title.
func (f *TranscriptFetcher) FetchTranscript(ctx context.Context, rawURL string) engine.TranscriptResult {
	engine.IncrTranscriptRequests()

	segs, err := f.provider.Fetch(ctx, VideoID(rawURL))
	if err != nil {
		engine.IncrTranscriptErrors()
		msg := fmt.Sprintf("Error fetching transcript for url %s, %v", rawURL, err)
		slog.Error("transcript fetch failed", slog.String("url", rawURL), slog.Any("error", err))
		return engine.TranscriptError(msg)
	}

	return engine.TranscriptResult{
		Transcript: JoinSegments(segs),
		Title:      f.titles.FetchTitle(ctx, rawURL),
	}
}
