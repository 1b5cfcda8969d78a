package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/anatolykoptev/go_ytnotion/internal/engine"
)

// YouTube transcript fetching.
// Primary:  scrape watch page ytInitialPlayerResponse → caption track → timedtext XML
// Fallback: ANDROID Innertube /player → captionTracks

var (
	ErrVideoUnavailable    = errors.New("video unavailable")
	ErrTranscriptsDisabled = errors.New("transcripts are disabled for this video")
	ErrNoTranscript        = errors.New("no transcript found")
)

// Segment is one timed caption line, in playback order.
type Segment struct {
	Text     string
	Start    float64 // seconds
	Duration float64 // seconds
}

// TranscriptProvider returns the caption segments of a video.
type TranscriptProvider interface {
	Fetch(ctx context.Context, videoID string) ([]Segment, error)
}

// YouTubeProvider fetches captions straight from youtube.com.
type YouTubeProvider struct {
	client  *http.Client
	langs   []string
	baseURL string
}

// NewYouTubeProvider builds a provider from cfg. The language preference
// defaults to English.
func NewYouTubeProvider(cfg *engine.Config) *YouTubeProvider {
	langs := cfg.TranscriptLangs
	if len(langs) == 0 {
		langs = []string{"en"}
	}
	return &YouTubeProvider{client: cfg.Client(), langs: langs, baseURL: ytBaseURL}
}

// Fetch returns the transcript segments for videoID.
func (p *YouTubeProvider) Fetch(ctx context.Context, videoID string) ([]Segment, error) {
	segs, err := p.fetchViaWatchPage(ctx, videoID)
	if err == nil {
		return segs, nil
	}
	slog.Warn("youtube: watch page failed, trying player",
		slog.String("id", videoID), slog.Any("error", err))

	pr, perr := p.postPlayer(ctx, videoID)
	if perr != nil {
		// The watch page error is usually the more specific one.
		return nil, fmt.Errorf("%w; %v", err, perr)
	}
	return p.segmentsFromPlayer(ctx, pr)
}

// ytInitialPlayerResponseMarker marks the start of the player response JSON in watch page HTML.
const ytInitialPlayerResponseMarker = "ytInitialPlayerResponse = "

func (p *YouTubeProvider) fetchViaWatchPage(ctx context.Context, videoID string) ([]Segment, error) {
	watchURL := p.baseURL + "/watch?v=" + url.QueryEscape(videoID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, watchURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", engine.UserAgentChrome)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("watch page: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("watch page: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 6*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("read watch page: %w", err)
	}

	idx := bytes.Index(body, []byte(ytInitialPlayerResponseMarker))
	if idx < 0 {
		return nil, errors.New("ytInitialPlayerResponse not found in watch page")
	}
	raw := extractJSON(body[idx+len(ytInitialPlayerResponseMarker):])
	if raw == nil {
		return nil, errors.New("failed to extract ytInitialPlayerResponse JSON")
	}

	var pr playerResp
	if err := json.Unmarshal(raw, &pr); err != nil {
		return nil, fmt.Errorf("decode ytInitialPlayerResponse: %w", err)
	}
	return p.segmentsFromPlayer(ctx, &pr)
}

// segmentsFromPlayer picks a caption track from a player response and downloads it.
func (p *YouTubeProvider) segmentsFromPlayer(ctx context.Context, pr *playerResp) ([]Segment, error) {
	if ps := pr.PlayabilityStatus; ps != nil && ps.Status != "" && ps.Status != "OK" {
		if ps.Reason != "" {
			return nil, fmt.Errorf("%w: %s", ErrVideoUnavailable, ps.Reason)
		}
		return nil, fmt.Errorf("%w: status %s", ErrVideoUnavailable, ps.Status)
	}
	if pr.Captions == nil {
		return nil, ErrTranscriptsDisabled
	}
	tracks := pr.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(tracks) == 0 {
		return nil, ErrTranscriptsDisabled
	}
	track, ok := pickBestTrack(tracks, p.langs)
	if !ok {
		return nil, fmt.Errorf("%w: all caption tracks require PoToken", ErrNoTranscript)
	}
	return p.fetchTimedText(ctx, track.BaseURL)
}

// needsPoToken reports whether a caption track URL requires a PoToken (browser-only).
// Tracks with &exp=xpe cannot be fetched server-side.
func needsPoToken(baseURL string) bool {
	return strings.Contains(baseURL, "&exp=xpe")
}

// pickBestTrack selects the best usable caption track for the given language preferences.
func pickBestTrack(tracks []captionTrack, langs []string) (captionTrack, bool) {
	usable := make([]captionTrack, 0, len(tracks))
	for _, t := range tracks {
		if !needsPoToken(t.BaseURL) {
			usable = append(usable, t)
		}
	}
	if len(usable) == 0 {
		return captionTrack{}, false
	}
	// 1. Manual track in preferred language
	for _, lang := range langs {
		for _, t := range usable {
			if t.LanguageCode == lang && t.Kind != "asr" {
				return t, true
			}
		}
	}
	// 2. Auto-generated track in preferred language
	for _, lang := range langs {
		for _, t := range usable {
			if t.LanguageCode == lang {
				return t, true
			}
		}
	}
	// 3. Any English track
	for _, t := range usable {
		if strings.HasPrefix(t.LanguageCode, "en") {
			return t, true
		}
	}
	return usable[0], true
}

// fetchTimedText fetches and parses a YouTube timedtext XML caption URL.
func (p *YouTubeProvider) fetchTimedText(ctx context.Context, baseURL string) ([]Segment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", engine.UserAgentChrome)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch timedtext: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch timedtext: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 2*1024*1024))
	if err != nil {
		return nil, err
	}
	return parseTimedText(body)
}

// parseTimedText converts timedtext XML into segments, dropping empty lines.
func parseTimedText(body []byte) ([]Segment, error) {
	var tt ytTimedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, fmt.Errorf("parse timedtext XML: %w", err)
	}

	segs := make([]Segment, 0, len(tt.Lines))
	for _, line := range tt.Lines {
		text := engine.CleanHTML(line.Text)
		if text == "" {
			continue
		}
		segs = append(segs, Segment{Text: text, Start: line.Start, Duration: line.Dur})
	}
	if len(segs) == 0 {
		return nil, fmt.Errorf("%w: empty caption track", ErrNoTranscript)
	}
	return segs, nil
}
