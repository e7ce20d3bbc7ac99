package handlers

import (
	"testing"
)

func TestRedactEmail(t *testing.T) {
	cases := []struct {
		email string
		want  string
	}{
		{"steve@example.com", "s***e@example.com"},
		{"ab@example.com", "**@example.com"},
		{"a@example.com", "*@example.com"},
		{"not-an-email", ""},
		{"two@at@signs", ""},
	}

	for _, tt := range cases {
		if got := RedactEmail(tt.email); got != tt.want {
			t.Errorf("RedactEmail(%q) = %q, want %q", tt.email, got, tt.want)
		}
	}
}
