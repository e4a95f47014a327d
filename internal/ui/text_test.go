package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestFormatterWithColor(t *testing.T) {
	os.Unsetenv("NO_COLOR")
	color.NoColor = false

	result := Code.Sprint("ppc push text")
	if strings.Contains(result, "`") {
		t.Errorf("Code.Sprint should not contain backticks when color is enabled, got: %s", result)
	}
	if !strings.Contains(result, "\x1b[") {
		t.Errorf("Code.Sprint should contain ANSI escape codes when color is enabled, got: %s", result)
	}
}

func TestFormatterWithNoColor(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	tests := []struct {
		name      string
		formatter Formatter
		input     string
		want      string
	}{
		{"Code adds backticks", Code, "ppc push text", "`ppc push text`"},
		{"Link adds angle brackets", Link, "https://pwpush.com", "<https://pwpush.com>"},
		{"Flag has no decoration", Flag, "--json", "--json"},
		{"Success has no decoration", Success, "✓", "✓"},
		{"Error has no decoration", Error, "✗", "✗"},
		{"Highlight adds quotes", Highlight, "user@example.com", "'user@example.com'"},
		{"Muted adds parentheses", Muted, "masked", "(masked)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.formatter.Sprint(tt.input)
			if got != tt.want {
				t.Errorf("%s.Sprint(%q) = %q, want %q", tt.name, tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatterSprintf(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	result := Code.Sprintf("ppc push %s", "text")
	if result != "`ppc push text`" {
		t.Errorf("Code.Sprintf() = %q, want %q", result, "`ppc push text`")
	}
}

func TestHTTPStatus(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	tests := []struct {
		code int
		want string
	}{
		{201, "201 Created"},
		{404, "404 Not Found"},
		{599, "599"},
	}
	for _, tt := range tests {
		if got := HTTPStatus(tt.code); got != tt.want {
			t.Errorf("HTTPStatus(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestEnsureNewline(t *testing.T) {
	if got := EnsureNewline("done"); got != "done\n" {
		t.Errorf("EnsureNewline(%q) = %q", "done", got)
	}
	if got := EnsureNewline("done\n"); got != "done\n" {
		t.Errorf("EnsureNewline should not add a second newline, got %q", got)
	}
	if got := EnsureNewline(""); got != "\n" {
		t.Errorf("EnsureNewline(\"\") = %q", got)
	}
}
