package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lecolegal/intake/internal/client/models"
	"github.com/lecolegal/intake/internal/client/session"
)

// HTTPClient is the Client implementation over plain HTTP/JSON.
type HTTPClient struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
	tokens  *session.Store
}

// NewHTTPClient builds a client for the backend at baseURL. Every request
// gets its own deadline of timeout; tokens is consulted for the bearer
// header and updated by Login and Register.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens *session.Store) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		http:    &http.Client{},
		tokens:  tokens,
	}
}

// request performs one HTTP exchange and normalizes the response:
//
//   - Content-Type defaults to application/json unless the body is raw bytes.
//   - Authorization: Bearer <token> is attached when a token is stored.
//   - 204 yields a nil body and no error.
//   - Non-2xx yields a *RequestError (see newRequestError).
//   - Transport failures wrap ErrUnavailable.
//   - A 2xx body is returned as-is, JSON or not.
func (c *HTTPClient) request(ctx context.Context, method, path string, body any) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	rawBody := false
	switch b := body.(type) {
	case nil:
	case []byte:
		reader = bytes.NewReader(b)
		rawBody = true
	default:
		buf, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if !rawBody {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	if token, err := c.tokens.Token(ctx); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newRequestError(resp.StatusCode, http.StatusText(resp.StatusCode), text)
	}
	return text, nil
}

// extractToken applies the ordered extraction rule shared by Login and
// Register: object field "token", then "jwt", then "accessToken", then a
// JSON-encoded string body, then the trimmed raw text of a non-JSON body.
// A JSON body of any other shape carries no token.
func extractToken(body []byte) string {
	if len(bytes.TrimSpace(body)) == 0 {
		return ""
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err == nil {
		for _, field := range []string{"token", "jwt", "accessToken"} {
			raw, ok := obj[field]
			if !ok {
				continue
			}
			var v string
			if err := json.Unmarshal(raw, &v); err == nil && v != "" {
				return v
			}
		}
		return ""
	}
	var s string
	if err := json.Unmarshal(body, &s); err == nil {
		return s
	}
	if !json.Valid(body) {
		return strings.TrimSpace(string(body))
	}
	return ""
}

func (c *HTTPClient) tokenRequest(ctx context.Context, path string, payload any) (*TokenResponse, error) {
	body, err := c.request(ctx, http.MethodPost, path, payload)
	if err != nil {
		return nil, err
	}
	res := &TokenResponse{Raw: body, Token: extractToken(body)}
	if res.Token != "" {
		if err := c.tokens.Save(ctx, res.Token); err != nil {
			return nil, fmt.Errorf("save token: %w", err)
		}
	}
	return res, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	payload := map[string]string{"email": email, "password": password}
	return c.tokenRequest(ctx, "/auth/login", payload)
}

func (c *HTTPClient) Register(ctx context.Context, reg *models.Registration) (*TokenResponse, error) {
	return c.tokenRequest(ctx, "/auth/register", reg)
}

func (c *HTTPClient) RequestPasswordReset(ctx context.Context, email string) error {
	q := url.Values{"email": {email}}
	_, err := c.request(ctx, http.MethodPost, "/auth/request-reset?"+q.Encode(), nil)
	return err
}

func (c *HTTPClient) ConfirmPasswordReset(ctx context.Context, resetToken, newPassword string) error {
	q := url.Values{"token": {resetToken}, "newPassword": {newPassword}}
	_, err := c.request(ctx, http.MethodPost, "/auth/reset-password?"+q.Encode(), nil)
	return err
}

func (c *HTTPClient) VerifyEmail(ctx context.Context, verificationToken string) error {
	q := url.Values{"token": {verificationToken}}
	_, err := c.request(ctx, http.MethodPost, "/auth/verify-email?"+q.Encode(), nil)
	return err
}

func (c *HTTPClient) VerifyCaptcha(ctx context.Context, captchaToken string) error {
	q := url.Values{"captchaToken": {captchaToken}}
	_, err := c.request(ctx, http.MethodPost, "/auth/verify-captcha?"+q.Encode(), nil)
	return err
}

func (c *HTTPClient) GetCurrentUser(ctx context.Context) (*models.User, error) {
	body, err := c.request(ctx, http.MethodGet, "/api/me", nil)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &user, nil
}
