package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lecolegal/intake/internal/client/api"
	"github.com/lecolegal/intake/internal/client/config"
	"github.com/lecolegal/intake/internal/client/models"
	"github.com/lecolegal/intake/internal/client/services"
	"github.com/lecolegal/intake/internal/client/session"
	"github.com/lecolegal/intake/internal/client/storage"
	"github.com/lecolegal/intake/internal/logging"
)

// viewState selects which form the client renders. The states are mutually
// exclusive: either one of the unauthenticated forms is active, or the
// dashboard is.
type viewState int

const (
	stateSignIn viewState = iota
	stateSignUp
	stateForgot
	stateAuthed
)

// forgotStep is the sub-state of the forgot-password flow.
type forgotStep int

const (
	stepRequest forgotStep = iota
	stepConfirm
)

// appView selects overlay visibility while authenticated. viewCreate renders
// the requisition form above the dashboard, never instead of it.
type appView int

const (
	viewDashboard appView = iota
	viewCreate
)

// signupForm keeps the sign-up fields between attempts. Passwords are never
// stored here; they are prompted fresh and wiped after each attempt.
type signupForm struct {
	firstName      string
	lastName       string
	email          string
	lawFirm        string
	captchaChecked bool
}

// forgotForm keeps the forgot-password flow position and the entered email
// until the flow completes.
type forgotForm struct {
	email string
	step  forgotStep
}

// App is the auth flow controller.
type App struct {
	config *config.Config
	auth   services.AuthService
	log    logging.Logger
	store  storage.Store
	reader *bufio.Reader
	out    io.Writer

	state  viewState
	view   appView
	user   *models.User
	msg    string
	signup signupForm
	forgot forgotForm
}

// NewApp builds the application: local store (SQLite, or in-memory when the
// configured path is ":memory:"), session token store, HTTP client and auth
// service.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	var (
		kv  storage.Store
		err error
	)
	if cfg.StorePath == ":memory:" {
		kv = storage.NewMemory()
	} else {
		kv, err = storage.OpenSQLite(ctx, cfg.StorePath)
		if err != nil {
			return nil, err
		}
	}

	tokens := session.NewStore(kv)
	client := api.NewHTTPClient(cfg.BaseURL, cfg.RequestTimeout, tokens)

	return &App{
		config: cfg,
		auth:   services.NewAuthService(client, tokens),
		log:    log,
		store:  kv,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		state:  stateSignIn,
	}, nil
}

// Close releases the local store.
func (a *App) Close() error {
	return a.store.Close()
}

// Run applies the one-time startup steps (silent session restore, pending
// email verification link) and enters the REPL. Blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	a.startup(ctx)
	a.renderState()
	if m := a.message(); m != "" {
		fmt.Fprintln(a.out, m)
	}
	runREPL(ctx, a, a.statusLine, a.reader)
}

func (a *App) isAuthenticated() bool {
	return a.state == stateAuthed
}

// message returns the current user-facing message line.
func (a *App) message() string {
	return a.msg
}

// stateKey identifies the rendered state, including sub-states, so the REPL
// can re-render only when something actually changed.
func (a *App) stateKey() string {
	return fmt.Sprintf("%d/%d/%d", a.state, a.forgot.step, a.view)
}

func (a *App) statusLine() string {
	switch a.state {
	case stateSignUp:
		return "sign up"
	case stateForgot:
		if a.forgot.step == stepConfirm {
			return "reset password"
		}
		return "forgot password"
	case stateAuthed:
		if a.user != nil {
			return a.user.Email
		}
		return "signed in"
	default:
		return "sign in"
	}
}

// Back returns from the sign-up or forgot-password form to sign-in.
func (a *App) Back() {
	if a.state == stateAuthed {
		return
	}
	a.state = stateSignIn
	a.msg = ""
}

// messageFor converts an operation error into the message line shown to the
// user: a generic line for transport failures, the server-provided message
// for rejected requests, the error text otherwise.
func messageFor(err error, fallback string) string {
	if errors.Is(err, api.ErrUnavailable) {
		return "Could not reach the server. Please try again."
	}
	var reqErr *api.RequestError
	if errors.As(err, &reqErr) && reqErr.Message != "" {
		return reqErr.Message
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}
