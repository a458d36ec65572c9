package flagx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-a", "http://x", "-v", "-t", "20"},
			allowed: []string{"-a", "-t"},
			want:    []string{"-a", "http://x", "-t", "20"},
		},
		{
			name:    "equals form",
			args:    []string{"--config=conf.json", "-a=http://x", "--other=1"},
			allowed: []string{"--config", "-a"},
			want:    []string{"--config=conf.json", "-a=http://x"},
		},
		{
			name:    "no matches",
			args:    []string{"-x", "1"},
			allowed: []string{"-a"},
			want:    []string{},
		},
		{
			name:    "flag followed by another flag",
			args:    []string{"-a", "-t", "20"},
			allowed: []string{"-a"},
			want:    []string{"-a"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}
