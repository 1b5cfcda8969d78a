// Package auth checks bearer tokens presented to the HTTP transport against
// the single configured MCP_API_KEY.
package auth

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	mcpauth "github.com/modelcontextprotocol/go-sdk/auth"

	"github.com/anatolykoptev/go_ytnotion/internal/engine"
)

// Scopes granted to the single user and required by the HTTP transport.
const (
	ScopeYouTubeRead = "youtube:read"
	ScopeNotionWrite = "notion:write"
)

// ClientID identifies the only client this server knows about.
const ClientID = "single_user"

// grantTTL is the expiration reported to the SDK for grants without one;
// the middleware refuses tokens with a zero expiration.
const grantTTL = time.Hour

// Scopes returns the full scope set, in a fresh slice.
func Scopes() []string {
	return []string{ScopeYouTubeRead, ScopeNotionWrite}
}

// AccessGrant is the result of a successful verification. It lives for a
// single request.
type AccessGrant struct {
	Token    string
	ClientID string
	Scopes   []string
	Expiry   *time.Time // nil = never expires
}

// Verifier compares presented tokens against one static secret.
type Verifier struct {
	secret string
}

// NewVerifier builds a Verifier from cfg.MCPAPIKey. Without a secret every
// token is rejected.
func NewVerifier(cfg *engine.Config) *Verifier {
	if cfg.MCPAPIKey == "" {
		slog.Warn("MCP_API_KEY not set, authentication will fail")
	}
	return &Verifier{secret: cfg.MCPAPIKey}
}

// Verify returns a grant when token equals the secret exactly, nil otherwise.
func (v *Verifier) Verify(token string) *AccessGrant {
	if v.secret == "" || token == "" {
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(v.secret)) != 1 {
		return nil
	}
	return &AccessGrant{
		Token:    token,
		ClientID: ClientID,
		Scopes:   Scopes(),
	}
}

// TokenVerifier adapts Verify to the MCP SDK bearer middleware.
func (v *Verifier) TokenVerifier() mcpauth.TokenVerifier {
	return func(_ context.Context, token string, _ *http.Request) (*mcpauth.TokenInfo, error) {
		grant := v.Verify(token)
		if grant == nil {
			engine.IncrAuthRejections()
			return nil, mcpauth.ErrInvalidToken
		}
		expires := time.Now().Add(grantTTL)
		if grant.Expiry != nil {
			expires = *grant.Expiry
		}
		return &mcpauth.TokenInfo{
			Scopes:     grant.Scopes,
			Expiration: expires,
		}, nil
	}
}
