// Package errors provides typed error values for the ppc application.
//
// Sentinel errors let callers branch on specific conditions with errors.Is()
// instead of matching on message text.
//
// # Error Categories
//
//   - Configuration errors: the instance cannot be described (ErrInvalidProtocol,
//     ErrEmptyHost, ErrIncompleteCredentials, ErrInvalidConfig)
//   - Input errors: the push intent cannot be assembled (ErrNoPayload)
//   - Dispatch errors: the requested operation has no implementation yet
//     (ErrNotSupported)
//   - Command errors: a failure has already been reported to the user
//     (ErrReported)
//
// # Usage
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("expire %s: %w", kind, errors.ErrNotSupported)
//
// Handle them in the CLI layer:
//
//	if errors.Is(outcome.Err, kerrors.ErrNotSupported) {
//	    // tell the user the command is planned but not available
//	}
package errors
