package sources

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const timedTextXML = `<?xml version="1.0" encoding="utf-8" ?><transcript>` +
	`<text start="0.5" dur="1.2">Hello</text>` +
	`<text start="1.7" dur="0.4">  </text>` +
	`<text start="2.1" dur="2">rock &amp;amp; roll</text>` +
	`</transcript>`

func TestParseTimedText(t *testing.T) {
	segs, err := parseTimedText([]byte(timedTextXML))
	if err != nil {
		t.Fatalf("parseTimedText() error = %v", err)
	}
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2 (empty line dropped): %+v", len(segs), segs)
	}
	if segs[0].Text != "Hello" || segs[0].Start != 0.5 || segs[0].Duration != 1.2 {
		t.Errorf("segs[0] = %+v", segs[0])
	}
	if segs[1].Text != "rock & roll" {
		t.Errorf("segs[1].Text = %q", segs[1].Text)
	}
}

func TestParseTimedTextEmpty(t *testing.T) {
	_, err := parseTimedText([]byte(`<transcript></transcript>`))
	if !errors.Is(err, ErrNoTranscript) {
		t.Errorf("err = %v, want ErrNoTranscript", err)
	}
	if _, err := parseTimedText([]byte(`not xml <`)); err == nil {
		t.Error("expected parse error")
	}
}

func TestPickBestTrack(t *testing.T) {
	tracks := []captionTrack{
		{BaseURL: "u1", LanguageCode: "de"},
		{BaseURL: "u2", LanguageCode: "en", Kind: "asr"},
		{BaseURL: "u3", LanguageCode: "en"},
		{BaseURL: "u4&exp=xpe", LanguageCode: "fr"},
	}
	tests := []struct {
		name   string
		tracks []captionTrack
		langs  []string
		want   string
		wantOK bool
	}{
		{"manual preferred", tracks, []string{"en"}, "u3", true},
		{"language order", tracks, []string{"de", "en"}, "u1", true},
		{"auto when no manual", tracks[:2], []string{"en"}, "u2", true},
		{"english fallback", []captionTrack{{BaseURL: "a", LanguageCode: "ja"}, {BaseURL: "b", LanguageCode: "en-GB"}}, []string{"fr"}, "b", true},
		{"first usable", []captionTrack{{BaseURL: "a", LanguageCode: "ja"}}, []string{"fr"}, "a", true},
		{"skip potoken", tracks[3:], []string{"fr"}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := pickBestTrack(tt.tracks, tt.langs)
			if ok != tt.wantOK || got.BaseURL != tt.want {
				t.Errorf("pickBestTrack() = (%q, %v), want (%q, %v)", got.BaseURL, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", `{"a":1};var x`, `{"a":1}`},
		{"nested", `{"a":{"b":[1,2]}} trailing`, `{"a":{"b":[1,2]}}`},
		{"brace in string", `{"a":"}"}x`, `{"a":"}"}`},
		{"escaped quote", `{"a":"\"}"}x`, `{"a":"\"}"}`},
		{"escaped backslash", `{"a":"\\"}x`, `{"a":"\\"}`},
		{"unbalanced", `{"a":1`, ``},
		{"not object", `[1]`, ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(extractJSON([]byte(tt.in))); got != tt.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// newFakeYouTube serves a watch page, an Innertube /player endpoint and a
// timedtext endpoint. Handlers left nil respond 500.
func newFakeYouTube(t *testing.T, watch, player func(w http.ResponseWriter, srvURL string)) *httptest.Server {
	t.Helper()
	var srv *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/watch", func(w http.ResponseWriter, _ *http.Request) {
		if watch == nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		watch(w, srv.URL)
	})
	mux.HandleFunc("/youtubei/v1/player", func(w http.ResponseWriter, r *http.Request) {
		if player == nil || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		player(w, srv.URL)
	})
	mux.HandleFunc("/api/timedtext", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/xml")
		fmt.Fprint(w, timedTextXML)
	})
	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func playerJSON(srvURL string) string {
	return `{"playabilityStatus":{"status":"OK"},"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[` +
		`{"baseUrl":"` + srvURL + `/api/timedtext?v=abc123&lang=en","languageCode":"en"}]}}}`
}

func testProvider(srv *httptest.Server) *YouTubeProvider {
	return &YouTubeProvider{client: srv.Client(), langs: []string{"en"}, baseURL: srv.URL}
}

func TestYouTubeProviderWatchPage(t *testing.T) {
	srv := newFakeYouTube(t, func(w http.ResponseWriter, srvURL string) {
		fmt.Fprintf(w, `<html><script>var ytInitialPlayerResponse = %s;var meta = {};</script></html>`, playerJSON(srvURL))
	}, nil)

	segs, err := testProvider(srv).Fetch(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if got := JoinSegments(segs); got != "Hello rock & roll" {
		t.Errorf("transcript = %q", got)
	}
}

func TestYouTubeProviderPlayerFallback(t *testing.T) {
	srv := newFakeYouTube(t, nil, func(w http.ResponseWriter, srvURL string) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, playerJSON(srvURL))
	})

	segs, err := testProvider(srv).Fetch(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(segs) != 2 {
		t.Errorf("got %d segments, want 2", len(segs))
	}
}

func TestYouTubeProviderUnavailable(t *testing.T) {
	srv := newFakeYouTube(t, func(w http.ResponseWriter, _ string) {
		fmt.Fprint(w, `<script>var ytInitialPlayerResponse = {"playabilityStatus":{"status":"ERROR","reason":"Video unavailable"}};</script>`)
	}, nil)

	_, err := testProvider(srv).Fetch(context.Background(), "missing")
	if !errors.Is(err, ErrVideoUnavailable) {
		t.Fatalf("err = %v, want ErrVideoUnavailable", err)
	}
	if !strings.Contains(err.Error(), "Video unavailable") {
		t.Errorf("err = %q, want reason", err)
	}
}

func TestYouTubeProviderNoCaptions(t *testing.T) {
	srv := newFakeYouTube(t, func(w http.ResponseWriter, _ string) {
		fmt.Fprint(w, `<script>var ytInitialPlayerResponse = {"playabilityStatus":{"status":"OK"}};</script>`)
	}, nil)

	_, err := testProvider(srv).Fetch(context.Background(), "nocc")
	if !errors.Is(err, ErrTranscriptsDisabled) {
		t.Errorf("err = %v, want ErrTranscriptsDisabled", err)
	}
}
