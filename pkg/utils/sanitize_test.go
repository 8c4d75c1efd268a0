package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text unchanged", input: "alice", want: "alice"},
		{name: "whitespace trimmed", input: "  alice  ", want: "alice"},
		{name: "html escaped", input: `<script>alert("x")</script>`, want: "&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeString(tt.input))
		})
	}
}

func TestSanitizeEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercased", input: "Alice@Example.COM", want: "alice@example.com"},
		{name: "trimmed", input: "  alice@example.com ", want: "alice@example.com"},
		{name: "tags stripped", input: "<b>alice</b>@example.com", want: "alice@example.com"},
		{name: "control chars removed", input: "alice\x00@example.com", want: "alice@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeEmail(tt.input))
		})
	}
}
