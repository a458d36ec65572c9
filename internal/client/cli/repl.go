package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
)

// printlnFn is a test seam for user-facing REPL output.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs. The real App type
// satisfies it; tests can provide a lightweight stub.
type execIface interface {
	isAuthenticated() bool
	message() string
	stateKey() string
	renderState()
	SignIn(ctx context.Context) error
	SignUp(ctx context.Context) error
	Forgot(ctx context.Context) error
	Back()
	VerifyLink(ctx context.Context, raw string) error
	Dashboard(args []string)
	CreateRequisition(ctx context.Context) error
	WhoAmI(ctx context.Context)
	SignOut(ctx context.Context) error
}

// runREPL reads commands line by line and dispatches to a. It exits on EOF
// or when the user types exit/quit. After every command the form of the new
// state is rendered (only when the state changed) followed by the current
// message line, mirroring how the web UI re-renders after each action.
//
// Errors returned by command handlers are ignored here; handlers convert
// every failure into the message line themselves and only report input I/O
// problems, which the next read will hit anyway.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("intake (%s) > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]
		before := a.stateKey()

		switch cmd {
		case "help":
			if a.isAuthenticated() {
				printlnFn("Available commands: cases, new, whoami, signout, exit")
			} else {
				printlnFn("Available commands: signin, signup, forgot, back, verify <link>, exit")
			}

		case "signin", "login":
			_ = a.SignIn(ctx)

		case "signup", "register":
			_ = a.SignUp(ctx)

		case "forgot":
			_ = a.Forgot(ctx)

		case "back":
			a.Back()

		case "verify":
			if len(args) == 0 {
				printlnFn("Usage: verify <link or token>")
				continue
			}
			_ = a.VerifyLink(ctx, args[0])

		case "cases", "list":
			a.Dashboard(args)

		case "new":
			_ = a.CreateRequisition(ctx)

		case "whoami":
			a.WhoAmI(ctx)

		case "signout", "logout":
			_ = a.SignOut(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if a.stateKey() != before {
			a.renderState()
		}
		if m := a.message(); m != "" {
			printlnFn(m)
		}
	}
}

// WhoAmI prints the current profile and, when the stored token carries a
// readable expiry, when the session ends.
func (a *App) WhoAmI(ctx context.Context) {
	if !a.isAuthenticated() || a.user == nil {
		a.msg = "Please sign in first."
		return
	}
	a.msg = ""
	bold := color.New(color.Bold)
	fmt.Fprintf(a.out, "%s <%s>\n", bold.Sprint(a.user.FullName()), a.user.Email)
	if a.user.LawFirm != "" {
		fmt.Fprintf(a.out, "Law firm: %s\n", a.user.LawFirm)
	}
	if a.user.Role != "" {
		fmt.Fprintf(a.out, "Role: %s\n", a.user.Role)
	}
	if exp, ok := a.auth.SessionExpiresAt(ctx); ok {
		fmt.Fprintf(a.out, "Session expires: %s\n", exp.Local().Format(time.RFC1123))
	}
}
