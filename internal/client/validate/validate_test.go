package validate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name   string
		addr   string
		suffix string
		want   string
	}{
		{"empty", "", "@gmail.com", "Email is required."},
		{"wrong domain", "a@example.com", "@gmail.com", "Email must end with @gmail.com"},
		{"matching", "a@gmail.com", "@gmail.com", ""},
		{"matching uppercase", "A@GMAIL.COM", "@gmail.com", ""},
		{"suffix itself mixed case", "a@Gmail.Com", "@gmail.com", ""},
		{"other policy", "a@lawfirm.example", "@lawfirm.example", ""},
		{"other policy mismatch", "a@gmail.com", "@lawfirm.example", "Email must end with @lawfirm.example"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Email(tt.addr, tt.suffix))
		})
	}
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name string
		pw   string
		want string
	}{
		{"empty", "", "Password is required."},
		{"too short", "Aa1!a", "Password must be at least 8 characters long."},
		{"weak", "weak", "Password must be at least 8 characters long."},
		{"no lowercase", "AAAA1!AA", "Password must contain at least one lowercase letter."},
		{"no uppercase", "aaaa1!aa", "Password must contain at least one uppercase letter."},
		{"no digit", "Aaaa!aaa", "Password must contain at least one number."},
		{"no symbol", "Aaaa1aaa", "Password must contain at least one symbol."},
		{"valid", "Aa1!aaaa", ""},
		{"valid other symbol", "Aa1,aaaa", ""},
		{"valid brackets", "Aa1[aaaa", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Password(tt.pw))
		})
	}
}
