package utils

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminal returns true if r is a file attached to a terminal.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// readHidden prompts on out and reads a line from the terminal f without echoing it.
func readHidden(f *os.File, prompt string, out io.Writer) (string, error) {
	fmt.Fprint(out, prompt)
	secret, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(out) // Add newline after hidden input

	if err != nil {
		return "", fmt.Errorf("failed to read from terminal: %w", err)
	}
	return string(secret), nil
}
