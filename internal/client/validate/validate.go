// Package validate holds the client-side field validators used by the auth
// forms. Each validator returns a user-facing reason string, or "" when the
// value is acceptable; nothing here ever reaches the network.
package validate

import "strings"

const (
	lowercase = "abcdefghijklmnopqrstuvwxyz"
	uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits    = "0123456789"

	// Symbols accepted by the password policy. Must stay in sync with the
	// backend's registration policy.
	symbols = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?"
)

// Email checks addr against the deployment's domain policy: the address must
// be non-empty and end with domainSuffix, case-insensitively. The suffix is
// configuration, not a constant; the deployed policy is "@gmail.com".
func Email(addr, domainSuffix string) string {
	if addr == "" {
		return "Email is required."
	}
	if !strings.HasSuffix(strings.ToLower(addr), strings.ToLower(domainSuffix)) {
		return "Email must end with " + domainSuffix
	}
	return ""
}

// Password checks the complexity policy: at least 8 characters with at least
// one lowercase letter, one uppercase letter, one digit and one symbol.
func Password(pw string) string {
	if pw == "" {
		return "Password is required."
	}
	if len(pw) < 8 {
		return "Password must be at least 8 characters long."
	}
	if !strings.ContainsAny(pw, lowercase) {
		return "Password must contain at least one lowercase letter."
	}
	if !strings.ContainsAny(pw, uppercase) {
		return "Password must contain at least one uppercase letter."
	}
	if !strings.ContainsAny(pw, digits) {
		return "Password must contain at least one number."
	}
	if !strings.ContainsAny(pw, symbols) {
		return "Password must contain at least one symbol."
	}
	return ""
}
