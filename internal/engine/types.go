package engine

import "encoding/json"

// --- Tool inputs ---

type TranscriptInput struct {
	URL string `json:"url" jsonschema:"YouTube watch URL containing v=<video id>"`
}

// SaveRequest is the caller-supplied record for save_to_notion. Field
// constraints are enforced by Notion, not here.
type SaveRequest struct {
	Link    string `json:"link" jsonschema:"Link to the video"`
	Title   string `json:"title" jsonschema:"Video title"`
	Summary string `json:"summary" jsonschema:"Summary of the video"`
}

// --- Tool outputs ---

// TranscriptResult carries either Transcript+Title or Error, never both.
// The struct tags describe the tool's output schema; MarshalJSON writes
// exactly one variant.
type TranscriptResult struct {
	Transcript string `json:"transcript,omitempty"`
	Title      string `json:"title,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Failed reports whether r is the error variant.
func (r TranscriptResult) Failed() bool { return r.Error != "" }

// MarshalJSON emits {transcript, title} on success, even when either is
// empty, and {error} on failure.
func (r TranscriptResult) MarshalJSON() ([]byte, error) {
	if r.Failed() {
		return json.Marshal(errorResult{Error: r.Error})
	}
	return json.Marshal(struct {
		Transcript string `json:"transcript"`
		Title      string `json:"title"`
	}{r.Transcript, r.Title})
}

// SaveResult carries either Success+Message or Error.
type SaveResult struct {
	Success bool   `json:"success,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Failed reports whether r is the error variant.
func (r SaveResult) Failed() bool { return !r.Success }

// MarshalJSON emits {success: true, message} on success and {error} on failure.
func (r SaveResult) MarshalJSON() ([]byte, error) {
	if r.Failed() {
		return json.Marshal(errorResult{Error: r.Error})
	}
	return json.Marshal(struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{true, r.Message})
}

type errorResult struct {
	Error string `json:"error"`
}

// TranscriptError builds the error variant of TranscriptResult.
func TranscriptError(msg string) TranscriptResult { return TranscriptResult{Error: msg} }

// SaveError builds the error variant of SaveResult.
func SaveError(msg string) SaveResult { return SaveResult{Error: msg} }
