package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/lecolegal/intake/internal/client/config"
	"github.com/lecolegal/intake/internal/client/models"
	"github.com/lecolegal/intake/internal/logging"
)

// inputScript feeds canned answers to the prompt seams. Text prompts
// (simple and default-carrying) consume from texts in call order; password
// prompts consume from passwords; yes/no prompts answer yes.
type inputScript struct {
	texts     []string
	passwords []string
	yes       bool
}

func stubInputs(t *testing.T, script inputScript) {
	t.Helper()
	origST, origTD, origGP, origYN := getSimpleText, getTextDefault, getPassword, getYesNo
	t.Cleanup(func() {
		getSimpleText, getTextDefault, getPassword, getYesNo = origST, origTD, origGP, origYN
	})

	ti, pi := 0, 0
	nextText := func() string {
		if ti >= len(script.texts) {
			t.Fatalf("prompt asked for text input #%d, script has %d", ti+1, len(script.texts))
		}
		s := script.texts[ti]
		ti++
		return s
	}

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		return nextText(), nil
	}
	getTextDefault = func(_ *bufio.Reader, _, def string, _ io.Writer) (string, error) {
		if v := nextText(); v != "" {
			return v, nil
		}
		return def, nil
	}
	getPassword = func(_ string, _ io.Writer) ([]byte, error) {
		if pi >= len(script.passwords) {
			t.Fatalf("prompt asked for password #%d, script has %d", pi+1, len(script.passwords))
		}
		p := script.passwords[pi]
		pi++
		return []byte(p), nil
	}
	getYesNo = func(_ *bufio.Reader, _ string, _ io.Writer) (bool, error) {
		return script.yes, nil
	}
}

// fakeAuth implements services.AuthService for controller tests.
type fakeAuth struct {
	loginUser         *models.User
	loginErr          error
	loginCalls        int
	lastLoginEmail    string
	lastLoginPassword string

	regErr   error
	regCalls int
	lastReg  *models.Registration

	resetReqErr    error
	resetReqCalls  int
	lastResetEmail string

	confirmErr          error
	lastConfirmToken    string
	lastConfirmPassword string

	verifyErr       error
	verifyCalls     int
	lastVerifyToken string

	restoreUser *models.User
	restoreErr  error

	signOutErr   error
	signOutCalls int

	expiresAt time.Time
	expiresOK bool
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (*models.User, error) {
	f.loginCalls++
	f.lastLoginEmail, f.lastLoginPassword = email, password
	return f.loginUser, f.loginErr
}

func (f *fakeAuth) Register(_ context.Context, reg *models.Registration) error {
	f.regCalls++
	f.lastReg = reg
	return f.regErr
}

func (f *fakeAuth) RequestPasswordReset(_ context.Context, email string) error {
	f.resetReqCalls++
	f.lastResetEmail = email
	return f.resetReqErr
}

func (f *fakeAuth) ConfirmPasswordReset(_ context.Context, token, newPassword string) error {
	f.lastConfirmToken, f.lastConfirmPassword = token, newPassword
	return f.confirmErr
}

func (f *fakeAuth) VerifyEmail(_ context.Context, token string) error {
	f.verifyCalls++
	f.lastVerifyToken = token
	return f.verifyErr
}

func (f *fakeAuth) Restore(context.Context) (*models.User, error) {
	return f.restoreUser, f.restoreErr
}

func (f *fakeAuth) SignOut(context.Context) error {
	f.signOutCalls++
	return f.signOutErr
}

func (f *fakeAuth) SessionExpiresAt(context.Context) (time.Time, bool) {
	return f.expiresAt, f.expiresOK
}

func newTestApp(t *testing.T, f *fakeAuth) (*App, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return &App{
		config: cfg,
		auth:   f,
		log:    logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		out:    out,
		state:  stateSignIn,
	}, out
}
