package utils

import (
	"fmt"
	"io"
	"os"
	"strings"

	kerrors "github.com/ppc-cli/ppc/internal/errors"
)

// ReadPayload obtains a secret from in. A terminal is prompted without
// echo, with the prompt written to promptOut. Anything else is read to
// the end and a single trailing line break is dropped.
//
// Returns ErrNoPayload if piped input is empty.
func ReadPayload(in io.Reader, prompt string, promptOut io.Writer) (string, error) {
	if IsTerminal(in) {
		return readHidden(in.(*os.File), prompt, promptOut)
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read from stdin: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: stdin is empty", kerrors.ErrNoPayload)
	}

	payload := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(payload, "\r"), nil
}
