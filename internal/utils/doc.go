// Package utils provides shared helpers for the ppc command layer.
//
// # Input
//
//   - ReadPayload: reads a secret from piped input, or prompts for it
//     without echo when the input is a terminal
//   - IsTerminal: reports whether a reader is an interactive terminal
//
// # Strings
//
//   - MaskToken: hides all but the start of an API token for display
//   - IsValidEmail: checks the shape of an account email
package utils
