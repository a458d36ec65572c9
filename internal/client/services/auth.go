// Package services contains the application services of the intake client.
// The auth service owns the session lifecycle: it decides what happens to
// the persisted token around each backend call, while the api package only
// moves bytes.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lecolegal/intake/internal/client/api"
	"github.com/lecolegal/intake/internal/client/models"
	"github.com/lecolegal/intake/internal/client/session"
)

// ErrNoSession reports that no usable session exists: either no token is
// stored or the stored one was rejected by the backend. It is a silent
// condition, never shown to the user.
var ErrNoSession = errors.New("no active session")

// PlaceholderCaptchaToken is sent with registration in place of a real
// captcha solution; the backend's /auth/verify-captcha endpoint is reserved
// and not part of the current flow.
const PlaceholderCaptchaToken = "demo"

// AuthService drives the authentication flows on top of the API client and
// the token store.
//
// Contract:
//   - Login: authenticate, persist the token, return the fetched profile.
//   - Register: create the account; never leaves a stored token behind.
//   - Restore: silently resume a previous session from the stored token.
//   - SignOut: drop the session; touches nothing but the token.
//
// All methods honor context cancellation.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, reg *models.Registration) error
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, resetToken, newPassword string) error
	VerifyEmail(ctx context.Context, verificationToken string) error
	Restore(ctx context.Context) (*models.User, error)
	SignOut(ctx context.Context) error
	SessionExpiresAt(ctx context.Context) (time.Time, bool)
}

type authService struct {
	client api.Client
	tokens *session.Store
}

// NewAuthService constructs an AuthService bound to the given API client and
// token store. The store must be the same one the client injects bearer
// tokens from.
func NewAuthService(client api.Client, tokens *session.Store) AuthService {
	return &authService{client: client, tokens: tokens}
}

// Login authenticates and returns the current profile. The extracted token
// is persisted by the API client; an empty extraction is an error because
// nothing can be authorized with it. Failures leave the stored token as it
// was — a token persisted just before a failing profile fetch stays, and
// the next startup restore clears it if it turns out stale.
func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	res, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if res.Token == "" {
		return nil, errors.New("no token returned")
	}
	user, err := a.client.GetCurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	return user, nil
}

// Register creates the account and then unconditionally clears the stored
// token: a token handed out by registration must not become a session until
// the email is verified and the user signs in explicitly.
func (a *authService) Register(ctx context.Context, reg *models.Registration) error {
	_, err := a.client.Register(ctx, reg)
	if clearErr := a.tokens.Clear(ctx); clearErr != nil && err == nil {
		err = fmt.Errorf("clear registration token: %w", clearErr)
	}
	return err
}

func (a *authService) RequestPasswordReset(ctx context.Context, email string) error {
	return a.client.RequestPasswordReset(ctx, email)
}

func (a *authService) ConfirmPasswordReset(ctx context.Context, resetToken, newPassword string) error {
	return a.client.ConfirmPasswordReset(ctx, resetToken, newPassword)
}

func (a *authService) VerifyEmail(ctx context.Context, verificationToken string) error {
	return a.client.VerifyEmail(ctx, verificationToken)
}

// Restore resumes the previous session, if any. A missing token or a
// backend rejection both come back as ErrNoSession; a rejected token is
// cleared so the next start does not retry it.
func (a *authService) Restore(ctx context.Context) (*models.User, error) {
	token, err := a.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("read token: %w", err)
	}
	if token == "" {
		return nil, ErrNoSession
	}
	user, err := a.client.GetCurrentUser(ctx)
	if err != nil {
		_ = a.tokens.Clear(ctx)
		return nil, fmt.Errorf("%w: %v", ErrNoSession, err)
	}
	return user, nil
}

// SignOut removes the stored token. Non-auth data cached locally is kept.
func (a *authService) SignOut(ctx context.Context) error {
	return a.tokens.Clear(ctx)
}

func (a *authService) SessionExpiresAt(ctx context.Context) (time.Time, bool) {
	return a.tokens.ExpiresAt(ctx)
}
