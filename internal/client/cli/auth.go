package cli

import (
	"bytes"
	"context"

	"github.com/lecolegal/intake/internal/client/models"
	"github.com/lecolegal/intake/internal/client/services"
	"github.com/lecolegal/intake/internal/client/validate"
)

// SignIn prompts for credentials and attempts to authenticate. Validation
// failures and backend rejections stay on the sign-in form with a message;
// success stores the token (inside the service), fetches the profile, and
// switches to the authenticated view.
func (a *App) SignIn(ctx context.Context) error {
	if a.isAuthenticated() {
		a.msg = "Already signed in."
		return nil
	}
	a.state = stateSignIn
	a.msg = ""

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password: ", a.out)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	if email == "" || len(password) == 0 {
		a.msg = "Please enter email and password."
		return nil
	}
	if msg := validate.Email(email, a.config.EmailDomain); msg != "" {
		a.msg = msg
		return nil
	}

	user, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		a.msg = messageFor(err, "Sign in failed")
		a.log.Warn(ctx, "sign in failed", "email", email, "error", err)
		return nil
	}

	a.user = user
	a.state = stateAuthed
	a.view = viewDashboard
	a.msg = "Signed in"
	a.log.Info(ctx, "signed in", "email", email)
	return nil
}

// SignUp prompts for the registration fields and creates the account.
// A successful registration never leaves a session behind: the user is sent
// back to sign-in with a "verify your email" message. The entered email and
// firm stay filled so the user sees what they registered with; names,
// passwords and the captcha acknowledgment reset.
func (a *App) SignUp(ctx context.Context) error {
	if a.isAuthenticated() {
		a.msg = "Already signed in."
		return nil
	}
	a.state = stateSignUp
	a.msg = ""
	f := &a.signup

	var err error
	if f.firstName, err = getTextDefault(a.reader, "First Name", f.firstName, a.out); err != nil {
		return err
	}
	if f.lastName, err = getTextDefault(a.reader, "Last Name", f.lastName, a.out); err != nil {
		return err
	}
	if f.email, err = getTextDefault(a.reader, "Email", f.email, a.out); err != nil {
		return err
	}
	if f.lawFirm, err = getTextDefault(a.reader, "Law Firm Name", f.lawFirm, a.out); err != nil {
		return err
	}
	password, err := getPassword("Enter password: ", a.out)
	if err != nil {
		return err
	}
	defer wipeBytes(password)
	confirm, err := getPassword("Confirm password: ", a.out)
	if err != nil {
		return err
	}
	defer wipeBytes(confirm)
	if f.captchaChecked, err = getYesNo(a.reader, "I'm not a robot", a.out); err != nil {
		return err
	}

	if f.firstName == "" || f.lastName == "" || f.email == "" || len(password) == 0 || len(confirm) == 0 {
		a.msg = "Please fill all fields."
		return nil
	}
	if msg := validate.Email(f.email, a.config.EmailDomain); msg != "" {
		a.msg = msg
		return nil
	}
	if msg := validate.Password(string(password)); msg != "" {
		a.msg = msg
		return nil
	}
	if !bytes.Equal(password, confirm) {
		a.msg = "Passwords do not match."
		return nil
	}
	if !f.captchaChecked {
		a.msg = "Please verify the CAPTCHA."
		return nil
	}

	reg := &models.Registration{
		FirstName:    f.firstName,
		LastName:     f.lastName,
		Email:        f.email,
		Password:     string(password),
		LawFirm:      f.lawFirm,
		CaptchaToken: services.PlaceholderCaptchaToken,
		Role:         "attorney",
	}
	if err := a.auth.Register(ctx, reg); err != nil {
		a.msg = messageFor(err, "Registration failed")
		a.log.Warn(ctx, "registration failed", "email", f.email, "error", err)
		return nil
	}

	a.msg = "Account created. Please check your email to verify, then sign in."
	a.state = stateSignIn
	f.firstName, f.lastName, f.captchaChecked = "", "", false
	a.log.Info(ctx, "account registered", "email", f.email)
	return nil
}

// SignOut drops the session and returns to the sign-in form. Locally cached
// non-auth data is kept.
func (a *App) SignOut(ctx context.Context) error {
	if !a.isAuthenticated() {
		a.msg = "Please sign in first."
		return nil
	}
	if err := a.auth.SignOut(ctx); err != nil {
		a.msg = messageFor(err, "Sign out failed")
		return nil
	}
	a.user = nil
	a.state = stateSignIn
	a.view = viewDashboard
	a.msg = "Signed out."
	a.log.Info(ctx, "signed out")
	return nil
}
