package util

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"shorter than max", "hello", 10, "hello"},
		{"exactly max", "hello", 5, "hello"},
		{"longer than max", "hello world", 8, "hello..."},
		{"tiny max", "hello", 3, "..."},
		{"empty", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateString(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestTruncateANSI(t *testing.T) {
	styled := "\x1b[31m" + strings.Repeat("x", 40) + "\x1b[0m"

	if got := TruncateANSI(styled, 50); got != styled {
		t.Errorf("TruncateANSI within width = %q, want input unchanged", got)
	}

	got := TruncateANSI(styled, 10)
	if w := lipgloss.Width(got); w != 10 {
		t.Errorf("truncated width = %d, want 10", w)
	}
	if !strings.Contains(got, "...") {
		t.Errorf("truncated string %q missing tail", got)
	}
	if !strings.Contains(got, "\x1b[31m") {
		t.Errorf("truncated string %q lost its escape sequence", got)
	}

	if got := TruncateANSI("hello world", 3); got != "..." {
		t.Errorf("TruncateANSI(hello world, 3) = %q, want ...", got)
	}
}

func TestTitleWords(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"understand_requirements", "Understand Requirements"},
		{"analyze", "Analyze"},
		{"", ""},
		{"a_b_c", "A B C"},
	}

	for _, tt := range tests {
		if got := TitleWords(tt.input); got != tt.want {
			t.Errorf("TitleWords(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
