package cli

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lecolegal/intake/internal/client/api"
	"github.com/lecolegal/intake/internal/client/models"
	"github.com/lecolegal/intake/internal/client/services"
)

func TestSignInSuccess(t *testing.T) {
	f := &fakeAuth{loginUser: &models.User{ID: "u1", FirstName: "Ann", Email: "ann@gmail.com"}}
	a, _ := newTestApp(t, f)
	stubInputs(t, inputScript{texts: []string{"ann@gmail.com"}, passwords: []string{"Str0ng!pass"}})

	require.NoError(t, a.SignIn(context.Background()))

	assert.Equal(t, stateAuthed, a.state)
	assert.Equal(t, viewDashboard, a.view)
	assert.Equal(t, "Signed in", a.msg)
	require.NotNil(t, a.user)
	assert.Equal(t, "ann@gmail.com", a.user.Email)
	assert.Equal(t, 1, f.loginCalls)
	assert.Equal(t, "ann@gmail.com", f.lastLoginEmail)
	assert.Equal(t, "Str0ng!pass", f.lastLoginPassword)
}

func TestSignInEmptyFields(t *testing.T) {
	f := &fakeAuth{}
	a, _ := newTestApp(t, f)
	stubInputs(t, inputScript{texts: []string{""}, passwords: []string{""}})

	require.NoError(t, a.SignIn(context.Background()))

	assert.Equal(t, "Please enter email and password.", a.msg)
	assert.Equal(t, stateSignIn, a.state)
	assert.Zero(t, f.loginCalls)
}

func TestSignInWrongDomain(t *testing.T) {
	f := &fakeAuth{}
	a, _ := newTestApp(t, f)
	stubInputs(t, inputScript{texts: []string{"ann@yahoo.com"}, passwords: []string{"Str0ng!pass"}})

	require.NoError(t, a.SignIn(context.Background()))

	assert.Equal(t, "Email must end with @gmail.com", a.msg)
	assert.Zero(t, f.loginCalls)
}

func TestSignInRejected(t *testing.T) {
	f := &fakeAuth{loginErr: &api.RequestError{Status: 401, Message: "Invalid credentials"}}
	a, _ := newTestApp(t, f)
	stubInputs(t, inputScript{texts: []string{"ann@gmail.com"}, passwords: []string{"Str0ng!pass"}})

	require.NoError(t, a.SignIn(context.Background()))

	assert.Equal(t, "Invalid credentials", a.msg)
	assert.Equal(t, stateSignIn, a.state)
	assert.Nil(t, a.user)
}

func TestSignInServerUnreachable(t *testing.T) {
	f := &fakeAuth{loginErr: fmt.Errorf("%w: connection refused", api.ErrUnavailable)}
	a, _ := newTestApp(t, f)
	stubInputs(t, inputScript{texts: []string{"ann@gmail.com"}, passwords: []string{"Str0ng!pass"}})

	require.NoError(t, a.SignIn(context.Background()))

	assert.Equal(t, "Could not reach the server. Please try again.", a.msg)
	assert.Equal(t, stateSignIn, a.state)
}

func TestSignInWhileAuthenticated(t *testing.T) {
	f := &fakeAuth{}
	a, _ := newTestApp(t, f)
	a.state = stateAuthed

	require.NoError(t, a.SignIn(context.Background()))

	assert.Equal(t, "Already signed in.", a.msg)
	assert.Zero(t, f.loginCalls)
}

func signupScript(pw, confirm string, captcha bool) inputScript {
	return inputScript{
		texts:     []string{"Ann", "Lee", "ann@gmail.com", "Lee & Partners"},
		passwords: []string{pw, confirm},
		yes:       captcha,
	}
}

func TestSignUpSuccess(t *testing.T) {
	f := &fakeAuth{}
	a, _ := newTestApp(t, f)
	stubInputs(t, signupScript("Str0ng!pass", "Str0ng!pass", true))

	require.NoError(t, a.SignUp(context.Background()))

	require.NotNil(t, f.lastReg)
	assert.Equal(t, "Ann", f.lastReg.FirstName)
	assert.Equal(t, "Lee", f.lastReg.LastName)
	assert.Equal(t, "ann@gmail.com", f.lastReg.Email)
	assert.Equal(t, "Lee & Partners", f.lastReg.LawFirm)
	assert.Equal(t, "Str0ng!pass", f.lastReg.Password)
	assert.Equal(t, services.PlaceholderCaptchaToken, f.lastReg.CaptchaToken)
	assert.Equal(t, "attorney", f.lastReg.Role)

	assert.Equal(t, "Account created. Please check your email to verify, then sign in.", a.msg)
	assert.Equal(t, stateSignIn, a.state)

	// email and firm stay filled, names and captcha reset
	assert.Equal(t, "ann@gmail.com", a.signup.email)
	assert.Equal(t, "Lee & Partners", a.signup.lawFirm)
	assert.Empty(t, a.signup.firstName)
	assert.Empty(t, a.signup.lastName)
	assert.False(t, a.signup.captchaChecked)
}

func TestSignUpWeakPassword(t *testing.T) {
	f := &fakeAuth{}
	a, _ := newTestApp(t, f)
	stubInputs(t, signupScript("weak", "weak", true))

	require.NoError(t, a.SignUp(context.Background()))

	assert.Equal(t, "Password must be at least 8 characters long.", a.msg)
	assert.Equal(t, stateSignUp, a.state)
	assert.Zero(t, f.regCalls)
}

func TestSignUpPasswordMismatch(t *testing.T) {
	f := &fakeAuth{}
	a, _ := newTestApp(t, f)
	stubInputs(t, signupScript("Str0ng!pass", "Str0ng!pazz", true))

	require.NoError(t, a.SignUp(context.Background()))

	assert.Equal(t, "Passwords do not match.", a.msg)
	assert.Zero(t, f.regCalls)
}

func TestSignUpCaptchaUnchecked(t *testing.T) {
	f := &fakeAuth{}
	a, _ := newTestApp(t, f)
	stubInputs(t, signupScript("Str0ng!pass", "Str0ng!pass", false))

	require.NoError(t, a.SignUp(context.Background()))

	assert.Equal(t, "Please verify the CAPTCHA.", a.msg)
	assert.Zero(t, f.regCalls)
}

func TestSignUpMissingFields(t *testing.T) {
	f := &fakeAuth{}
	a, _ := newTestApp(t, f)
	stubInputs(t, inputScript{
		texts:     []string{"", "Lee", "ann@gmail.com", ""},
		passwords: []string{"Str0ng!pass", "Str0ng!pass"},
		yes:       true,
	})

	require.NoError(t, a.SignUp(context.Background()))

	assert.Equal(t, "Please fill all fields.", a.msg)
	assert.Zero(t, f.regCalls)
}

func TestSignUpRejected(t *testing.T) {
	f := &fakeAuth{regErr: &api.RequestError{Status: 409, Message: "Email already registered"}}
	a, _ := newTestApp(t, f)
	stubInputs(t, signupScript("Str0ng!pass", "Str0ng!pass", true))

	require.NoError(t, a.SignUp(context.Background()))

	assert.Equal(t, "Email already registered", a.msg)
	assert.Equal(t, stateSignUp, a.state)
}

func TestSignOut(t *testing.T) {
	f := &fakeAuth{}
	a, _ := newTestApp(t, f)
	a.state = stateAuthed
	a.user = &models.User{Email: "ann@gmail.com"}

	require.NoError(t, a.SignOut(context.Background()))

	assert.Equal(t, 1, f.signOutCalls)
	assert.Nil(t, a.user)
	assert.Equal(t, stateSignIn, a.state)
	assert.Equal(t, "Signed out.", a.msg)
}

func TestSignOutNotSignedIn(t *testing.T) {
	f := &fakeAuth{}
	a, _ := newTestApp(t, f)

	require.NoError(t, a.SignOut(context.Background()))

	assert.Equal(t, "Please sign in first.", a.msg)
	assert.Zero(t, f.signOutCalls)
}
