package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// renderState prints the form belonging to the current state. Exactly one
// branch exists per state so the machine stays exhaustive.
func (a *App) renderState() {
	switch a.state {
	case stateSignIn:
		renderSignIn(a.out)
	case stateSignUp:
		renderSignUp(a.out)
	case stateForgot:
		renderForgot(a.out, a.forgot.step)
	case stateAuthed:
		a.renderDashboard(a.out, "", "")
	}
}

func renderSignIn(w io.Writer) {
	fmt.Fprintln(w, color.New(color.Bold).Sprint("Sign In"))
	fmt.Fprintln(w, "Enter your credentials to access your account")
	fmt.Fprintln(w, "Commands: signin, signup, forgot, verify <link>, exit")
}

func renderSignUp(w io.Writer) {
	fmt.Fprintln(w, color.New(color.Bold).Sprint("Create Account"))
	fmt.Fprintln(w, "Sign up to start creating professional demand letters")
	fmt.Fprintln(w, "Commands: signup, back, exit")
}

func renderForgot(w io.Writer, step forgotStep) {
	fmt.Fprintln(w, color.New(color.Bold).Sprint("Reset Password"))
	if step == stepConfirm {
		fmt.Fprintln(w, "Paste the reset token from your mailbox and choose a new password")
	} else {
		fmt.Fprintln(w, "Enter your account email to reset your password")
	}
	fmt.Fprintln(w, "Commands: forgot, back, exit")
}
