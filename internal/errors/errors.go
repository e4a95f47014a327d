package errors

import "errors"

// Configuration errors indicate the target instance cannot be described.
var (
	// ErrInvalidProtocol indicates a protocol other than http or https.
	ErrInvalidProtocol = errors.New("protocol must be http or https")

	// ErrEmptyHost indicates no instance host was configured.
	ErrEmptyHost = errors.New("instance host is empty")

	// ErrIncompleteCredentials indicates only one of email and token was given.
	ErrIncompleteCredentials = errors.New("email and token must be given together")

	// ErrInvalidConfig indicates the settings file is malformed.
	ErrInvalidConfig = errors.New("settings file is invalid")
)

// Input errors indicate the push intent could not be assembled.
var (
	// ErrNoPayload indicates no payload was given and none could be read.
	ErrNoPayload = errors.New("no payload provided")

	// ErrInvalidLevel indicates an unknown log verbosity.
	ErrInvalidLevel = errors.New("log level must be one of error, warn, info, debug, trace")
)

// ErrNotSupported indicates the requested operation is not implemented yet.
var ErrNotSupported = errors.New("not yet supported")

// ErrReported indicates a command failed and the failure was already shown
// to the user. The process should exit non-zero without printing it again.
var ErrReported = errors.New("command failed")
