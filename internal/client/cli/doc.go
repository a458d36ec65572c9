// Package cli provides the interactive case-intake client.
//
// It wires configuration, the local store, the auth service, and a REPL that
// drives the authentication flows: sign-in, sign-up, the two-step
// forgot-password flow, email verification from a pasted link, and sign-out.
// Once authenticated it renders the cases dashboard and the
// create-requisition overlay form.
//
// The controller is an explicit state machine: exactly one of the
// unauthenticated forms or the dashboard (with an optional overlay) is
// active at any time, and every failure becomes the message line of the
// current form rather than an error returned to the caller.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
