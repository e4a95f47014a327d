// Package history keeps a local journal of operations sent by ppc.
//
// Every push attempt is appended to a JSON Lines file so users can see
// what they published, where, and what the server answered, long after
// the terminal scrollback is gone.
//
// # Log Format
//
// The journal lives at $XDG_DATA_HOME/ppc/history.jsonl (falling back to
// ~/.local/share/ppc/history.jsonl). Each entry holds:
//   - Timestamp (RFC3339 with microseconds, UTC)
//   - Operation and object kind
//   - Instance URL and the authenticated email, if any
//   - The names of the fields sent, never their values
//   - The response status, or the error message
//
// # Failure Handling
//
// Recording is best-effort. A push never fails because the journal could
// not be written.
//
// # Reading Logs
//
// ReadEntries parses the journal. Malformed lines are skipped to tolerate
// partial writes.
package history
