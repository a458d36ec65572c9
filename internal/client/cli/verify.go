package cli

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/lecolegal/intake/internal/client/services"
)

// verifyPath is the path of the verification deep link sent by the backend.
const verifyPath = "/verify-email"

// parseVerifyToken accepts either a full verification link
// (https://host/verify-email?token=...) or a bare token pasted by the user.
func parseVerifyToken(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if u, err := url.Parse(raw); err == nil && strings.HasSuffix(u.Path, verifyPath) {
		token := u.Query().Get("token")
		return token, token != ""
	}
	if strings.ContainsAny(raw, "/?&= ") {
		return "", false
	}
	return raw, true
}

// startup runs the one-time mount steps: silently restore a previous
// session from the stored token, then apply a pending verification link.
func (a *App) startup(ctx context.Context) {
	a.restoreSession(ctx)
	a.applyVerifyLink(ctx)
}

// restoreSession promotes a stored token to an authenticated session. Any
// failure is silent: the stale token is already cleared by the service and
// the user simply lands on the sign-in form.
func (a *App) restoreSession(ctx context.Context) {
	user, err := a.auth.Restore(ctx)
	if err != nil {
		if !errors.Is(err, services.ErrNoSession) {
			a.log.Warn(ctx, "session restore failed", "error", err)
		}
		return
	}
	a.user = user
	a.state = stateAuthed
	a.view = viewDashboard
	a.log.Info(ctx, "session restored", "email", user.Email)
}

// applyVerifyLink consumes the configured verification link exactly once,
// the CLI analogue of stripping the token from the browser URL.
func (a *App) applyVerifyLink(ctx context.Context) {
	raw := a.config.VerifyLink
	a.config.VerifyLink = ""
	if raw == "" {
		return
	}
	token, ok := parseVerifyToken(raw)
	if !ok {
		return
	}
	a.verifyEmailToken(ctx, token)
}

// VerifyLink verifies an email from a link or token pasted at the prompt.
func (a *App) VerifyLink(ctx context.Context, raw string) error {
	if a.isAuthenticated() {
		a.msg = "Already signed in."
		return nil
	}
	token, ok := parseVerifyToken(raw)
	if !ok {
		a.msg = "Unrecognized verification link."
		return nil
	}
	a.verifyEmailToken(ctx, token)
	return nil
}

func (a *App) verifyEmailToken(ctx context.Context, token string) {
	if err := a.auth.VerifyEmail(ctx, token); err != nil {
		a.msg = messageFor(err, "Email verification failed or link expired.")
		a.log.Warn(ctx, "email verification failed", "error", err)
		return
	}
	a.msg = "Email verified successfully. You can now sign in."
	if a.state != stateAuthed {
		a.state = stateSignIn
	}
	a.log.Info(ctx, "email verified")
}
