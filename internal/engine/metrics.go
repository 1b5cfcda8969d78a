package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// metrics tracks operational counters across the server.
var metrics struct {
	TranscriptRequests atomic.Int64
	TranscriptErrors   atomic.Int64
	TitleFetches       atomic.Int64
	TitleErrors        atomic.Int64
	NotionSaves        atomic.Int64
	NotionErrors       atomic.Int64
	AuthRejections     atomic.Int64
}

// metricKeys fixes the output order of FormatMetrics.
var metricKeys = []string{
	"transcript_requests", "transcript_errors",
	"title_fetches", "title_errors",
	"notion_saves", "notion_errors",
	"auth_rejections",
}

// GetMetrics returns a snapshot of all counters.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"transcript_requests": metrics.TranscriptRequests.Load(),
		"transcript_errors":   metrics.TranscriptErrors.Load(),
		"title_fetches":       metrics.TitleFetches.Load(),
		"title_errors":        metrics.TitleErrors.Load(),
		"notion_saves":        metrics.NotionSaves.Load(),
		"notion_errors":       metrics.NotionErrors.Load(),
		"auth_rejections":     metrics.AuthRejections.Load(),
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	for _, k := range metricKeys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for sources/ and auth/.
func IncrTranscriptRequests() { metrics.TranscriptRequests.Add(1) }
func IncrTranscriptErrors()   { metrics.TranscriptErrors.Add(1) }
func IncrTitleFetches()       { metrics.TitleFetches.Add(1) }
func IncrTitleErrors()        { metrics.TitleErrors.Add(1) }
func IncrNotionSaves()        { metrics.NotionSaves.Add(1) }
func IncrNotionErrors()       { metrics.NotionErrors.Add(1) }
func IncrAuthRejections()     { metrics.AuthRejections.Add(1) }

// SlowOperationThreshold is the duration after which TrackOperation warns.
var SlowOperationThreshold = 5 * time.Second

// TrackOperation runs fn and returns its result, logging a warning if it
// takes longer than SlowOperationThreshold.
func TrackOperation[T any](ctx context.Context, name string, fn func(context.Context) T) T {
	start := time.Now()
	out := fn(ctx)
	if elapsed := time.Since(start); elapsed > SlowOperationThreshold {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return out
}
