// Package models holds the data shapes exchanged with the intake backend.
package models

// User is the profile returned by GET /api/me. It is replaced wholesale on
// each successful fetch and never mutated locally.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	LawFirm   string `json:"lawFirm"`
	Role      string `json:"role"`
}

// FullName returns "First Last" with either part omitted when empty.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// Registration is the POST /auth/register payload. Role is always
// "attorney"; the backend does not accept self-service signup for other
// roles.
type Registration struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	LawFirm      string `json:"lawFirm"`
	CaptchaToken string `json:"captchaToken"`
	Role         string `json:"role"`
}
