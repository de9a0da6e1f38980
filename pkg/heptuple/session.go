package heptuple

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
)

// Session owns the authentication state: the bearer token and the user
// profile, set and cleared together. It persists both through a
// CredentialStore and gates every authenticated request.
//
// A Session starts "tentatively logged in" when the store holds previously
// saved credentials; their validity is only confirmed lazily by
// ValidateToken or by the first authenticated call.
type Session struct {
	cfg        Config
	store      CredentialStore
	httpClient *http.Client
	logger     *slog.Logger

	mu    sync.Mutex
	token string
	user  *UserProfile
}

// NewSession creates a session backed by the given credential store,
// restoring any persisted credentials. A nil logger discards all output.
func NewSession(cfg Config, store CredentialStore, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Session{
		cfg:        cfg,
		store:      store,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger.With("component", "session"),
	}

	creds, err := store.Load()
	if err != nil {
		s.logger.Warn("load stored credentials", "error", err)
	} else if creds != nil {
		s.token = creds.Token
		s.user = creds.User
	}
	return s
}

// IsAuthenticated reports whether both a token and a user profile are
// present. It has no side effects.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != "" && s.user != nil
}

// Token returns the current bearer token, or empty when logged out.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// User returns a copy of the current user profile, or nil when logged out.
func (s *Session) User() *UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	copied := *s.user
	return &copied
}

// Login exchanges credentials for a bearer token, fetches the profile with
// it, and commits both to memory and the credential store. On any failure
// of either call the prior session state is left untouched and an
// *AuthError carrying the backend's message is returned.
func (s *Session) Login(ctx context.Context, username, password string) (*UserProfile, error) {
	const op = "login"

	payload, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, &AuthError{Op: op, Err: err}
	}

	resp, err := s.send(ctx, http.MethodPost, "/v2/auth/login", payload, "")
	if err != nil {
		return nil, &AuthError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &AuthError{Op: op, Message: errorDetail(resp, "login failed")}
	}

	var tok struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return nil, &AuthError{Op: op, Err: fmt.Errorf("decode token: %w", err)}
	}
	if tok.AccessToken == "" {
		return nil, &AuthError{Op: op, Message: "backend returned no token"}
	}

	user, err := s.fetchProfile(ctx, tok.AccessToken)
	if err != nil {
		return nil, &AuthError{Op: op, Err: err}
	}

	s.mu.Lock()
	s.token = tok.AccessToken
	s.user = user
	s.mu.Unlock()
	s.persist(tok.AccessToken, user)

	s.logger.Debug("logged in", "username", user.Username)
	return user, nil
}

// Register creates a new account. It does not log the caller in and never
// mutates the session.
func (s *Session) Register(ctx context.Context, req RegisterRequest) (*UserProfile, error) {
	const op = "register"

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, &AuthError{Op: op, Err: err}
	}

	resp, err := s.send(ctx, http.MethodPost, "/v2/auth/register", payload, "")
	if err != nil {
		return nil, &AuthError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &AuthError{Op: op, Message: errorDetail(resp, "registration failed")}
	}

	var user UserProfile
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, &AuthError{Op: op, Err: fmt.Errorf("decode profile: %w", err)}
	}
	return &user, nil
}

// Logout clears the session. The backend logout call is best effort: its
// failure is swallowed because local teardown must always succeed. Logout
// is idempotent.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	if token != "" {
		resp, err := s.send(ctx, http.MethodPost, "/v2/auth/logout", nil, token)
		if err != nil {
			s.logger.Debug("logout request failed", "error", err)
		} else {
			resp.Body.Close()
		}
	}

	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.store.Clear(); err != nil {
		s.logger.Warn("clear stored credentials", "error", err)
	}
}

// ValidateToken confirms the stored token against the profile endpoint.
// On success the stored profile is refreshed; on any failure the session
// is fully logged out.
func (s *Session) ValidateToken(ctx context.Context) bool {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	if token == "" {
		return false
	}

	user, err := s.fetchProfile(ctx, token)
	if err != nil {
		s.logger.Debug("token validation failed", "error", err)
		s.Logout(ctx)
		return false
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	s.persist(token, user)
	return true
}

// Do issues an authenticated request to the given API path. It fails fast
// with ErrNotAuthenticated, without any network call, when the session is
// logged out. A 401 response logs the session out before the failure is
// surfaced; every other status is returned to the caller unmodified.
func (s *Session) Do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	s.mu.Lock()
	token := s.token
	authed := s.token != "" && s.user != nil
	s.mu.Unlock()

	if !authed {
		return nil, &AuthError{Op: "request", Message: "not authenticated", Err: ErrNotAuthenticated}
	}

	resp, err := s.send(ctx, method, path, body, token)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		s.Logout(ctx)
		return nil, &AuthError{Op: "request", Message: "session expired", Err: ErrSessionExpired}
	}

	return resp, nil
}

// send performs a single HTTP request against the API base URL. An empty
// token sends no Authorization header.
func (s *Session) send(ctx context.Context, method, path string, body []byte, token string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.cfg.apiURL()+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	requestID := "req_" + uuid.New().String()[:8]
	req.Header.Set("X-Request-ID", requestID)
	s.logger.Debug("HTTP request", "method", method, "path", path, "request_id", requestID)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	s.logger.Debug("HTTP response", "status", resp.StatusCode, "request_id", requestID)
	return resp, nil
}

// fetchProfile retrieves the user profile with an explicit token, used
// both during login (before the token is committed) and for validation.
func (s *Session) fetchProfile(ctx context.Context, token string) (*UserProfile, error) {
	resp, err := s.send(ctx, http.MethodGet, "/v2/auth/me", nil, token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch profile: %s", errorDetail(resp, fmt.Sprintf("error %d", resp.StatusCode)))
	}

	var user UserProfile
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &user, nil
}

// persist writes the current credentials to the store. Persistence
// failures are logged, not fatal: the in-memory session stays valid.
func (s *Session) persist(token string, user *UserProfile) {
	if err := s.store.Save(&Credentials{Token: token, User: user}); err != nil {
		s.logger.Warn("persist credentials", "error", err)
	}
}

// errorDetail extracts the backend's "detail" message from an error
// response body, falling back to the given message when the body cannot
// be parsed.
func errorDetail(resp *http.Response, fallback string) string {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return fallback
	}

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &body); err != nil || body.Detail == "" {
		return fallback
	}
	return body.Detail
}
