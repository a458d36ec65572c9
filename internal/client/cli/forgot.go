package cli

import (
	"bytes"
	"context"

	"github.com/lecolegal/intake/internal/client/validate"
)

// Forgot runs the current step of the two-step forgot-password flow:
// request a reset token by email, then confirm with the token and a new
// password. Entering the flow from another form restarts at the email step,
// so a mistyped address or a token that never arrived can be retried.
func (a *App) Forgot(ctx context.Context) error {
	if a.isAuthenticated() {
		a.msg = "Already signed in."
		return nil
	}
	if a.state != stateForgot {
		a.forgot.step = stepRequest
	}
	a.state = stateForgot
	if a.forgot.step == stepConfirm {
		return a.forgotConfirm(ctx)
	}
	return a.forgotRequest(ctx)
}

func (a *App) forgotRequest(ctx context.Context) error {
	a.msg = ""

	email, err := getTextDefault(a.reader, "Email", a.forgot.email, a.out)
	if err != nil {
		return err
	}
	a.forgot.email = email

	if email == "" {
		a.msg = "Please enter your email."
		return nil
	}
	if msg := validate.Email(email, a.config.EmailDomain); msg != "" {
		a.msg = msg
		return nil
	}

	if err := a.auth.RequestPasswordReset(ctx, email); err != nil {
		a.msg = messageFor(err, "Request reset failed")
		return nil
	}

	a.forgot.step = stepConfirm
	// generic on purpose: the reply must not reveal whether the address is
	// registered
	a.msg = "If that email exists, a reset token was sent (check mailbox). Paste token here to continue."
	return nil
}

func (a *App) forgotConfirm(ctx context.Context) error {
	a.msg = ""

	resetToken, err := getSimpleText(a.reader, "Reset Token", a.out)
	if err != nil {
		return err
	}
	newPassword, err := getPassword("New password: ", a.out)
	if err != nil {
		return err
	}
	defer wipeBytes(newPassword)
	confirm, err := getPassword("Confirm password: ", a.out)
	if err != nil {
		return err
	}
	defer wipeBytes(confirm)

	if resetToken == "" {
		a.msg = "Please paste the reset token sent to your email."
		return nil
	}
	if len(newPassword) == 0 || len(confirm) == 0 {
		a.msg = "Please provide and confirm your new password."
		return nil
	}
	if msg := validate.Password(string(newPassword)); msg != "" {
		a.msg = msg
		return nil
	}
	if !bytes.Equal(newPassword, confirm) {
		a.msg = "Passwords do not match."
		return nil
	}

	if err := a.auth.ConfirmPasswordReset(ctx, resetToken, string(newPassword)); err != nil {
		a.msg = messageFor(err, "Failed updating password.")
		return nil
	}

	a.forgot = forgotForm{}
	a.state = stateSignIn
	a.msg = "Password updated. You may sign in now."
	a.log.Info(ctx, "password reset completed")
	return nil
}
