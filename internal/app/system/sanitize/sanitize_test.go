package sanitize_test

import (
	"testing"

	"github.com/dalemusser/devlink/internal/app/system/sanitize"
)

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain text", "Hello, World!", "Hello, World!"},
		{"strips tags", "<p>Hello</p>", "Hello"},
		{"removes script", "Hello<script>alert('xss')</script>", "Hello"},
		{"trims whitespace", "  spaced out  ", "spaced out"},
		{"strips anchor keeps text", `<a href="javascript:alert(1)">Click</a>`, "Click"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitize.Text(tt.input); got != tt.want {
				t.Errorf("Text(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
