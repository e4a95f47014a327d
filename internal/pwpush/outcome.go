package pwpush

import (
	"errors"
	"fmt"

	kerrors "github.com/ppc-cli/ppc/internal/errors"
)

// Outcome is the result of one API call. Either Err is nil and Status and
// Body carry the response, or Err describes why no response was obtained.
type Outcome struct {
	Status int
	Body   string
	Err    error
}

// Succeeded wraps a response that was fully received.
func Succeeded(status int, body string) Outcome {
	return Outcome{Status: status, Body: body}
}

// Failed wraps a transport or response-read error.
func Failed(err error) Outcome {
	return Outcome{Err: err}
}

// Unsupported is the outcome of an operation that has no implementation yet.
func Unsupported(operation string) Outcome {
	return Outcome{Err: fmt.Errorf("%s: %w", operation, kerrors.ErrNotSupported)}
}

// OK reports whether a response was received, whatever its status.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// IsUnsupported reports whether the outcome came from Unsupported.
func (o Outcome) IsUnsupported() bool {
	return errors.Is(o.Err, kerrors.ErrNotSupported)
}

// Message is the failure description, unmodified from the underlying error.
// It is empty for successful outcomes.
func (o Outcome) Message() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}
