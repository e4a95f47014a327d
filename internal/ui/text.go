package ui

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...interface{}) string {
	return f.apply(fmt.Sprint(a...))
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...interface{}) string {
	return f.apply(fmt.Sprintf(format, a...))
}

func (f Formatter) apply(text string) string {
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// EnsureNewline ensures the string ends with a newline character.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

// noColor returns true if color output should be disabled.
func noColor() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

var (
	// Code formats runnable commands. Yellow, or `backticks` without color.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Link formats URLs and hosts. Underlined blue, or <angle brackets> without color.
	Link = Formatter{color.New(color.FgBlue, color.Underline), "<", ">"}

	// Flag formats CLI flags like --json.
	Flag = Formatter{color.New(color.FgYellow), "", ""}

	Success = Formatter{color.New(color.FgGreen), "", ""}
	Error   = Formatter{color.New(color.FgRed), "", ""}
	Warning = Formatter{color.New(color.FgYellow), "", ""}
	Info    = Formatter{color.New(color.FgCyan), "", ""}

	// Highlight formats user values like emails and notes. 'Quoted' without color.
	Highlight = Formatter{color.New(color.FgCyan), "'", "'"}

	// Muted formats secondary text. (Parenthesized) without color.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)

// HTTPStatus renders a status code and its reason phrase, e.g. "201 Created",
// colored green for 2xx, yellow for 3xx and red otherwise.
func HTTPStatus(code int) string {
	text := strconv.Itoa(code)
	if reason := http.StatusText(code); reason != "" {
		text += " " + reason
	}

	switch {
	case code >= 200 && code < 300:
		return Success.Sprint(text)
	case code >= 300 && code < 400:
		return Warning.Sprint(text)
	default:
		return Error.Sprint(text)
	}
}
