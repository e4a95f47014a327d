// Package logger provides leveled diagnostic logging for ppc.
//
// Diagnostics always go to the Logger's sink (stderr in the CLI), never to
// stdout, so command output stays machine-readable. Prefixes are colored
// with fatih/color and respect NO_COLOR.
//
// # Verbosity Levels
//
// The --log flag selects the most verbose level that is printed:
//
//   - error: only failures the command cannot recover from
//   - warn:  unexpected states and responses (default)
//   - info:  general progress, kept low-volume
//   - debug: program flow and internal data
//   - trace: everything, including request construction details
//
// # Usage
//
//	log := logger.New(os.Stderr, logger.LevelDebug)
//	log.Debugf("sending request to %s", endpoint)
//
// The zero value Logger discards everything. Library code accepts a Logger
// value so tests can run without touching process-wide state.
package logger
