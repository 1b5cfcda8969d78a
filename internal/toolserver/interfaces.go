package toolserver

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/anatolykoptev/go_ytnotion/internal/engine"
)

type TranscriptFetcher interface {
	FetchTranscript(ctx context.Context, rawURL string) engine.TranscriptResult
}

type RecordSaver interface {
	SaveRecord(ctx context.Context, r engine.SaveRequest) engine.SaveResult
}
