// Package workflows maps ppc commands onto API operations.
//
// The cmd/ package parses flags into an already validated intent and
// instance, then calls one workflow. Workflows pick the operation for the
// requested object kind and return a pwpush.Outcome; rendering it and
// choosing an exit code stays in cmd/.
//
// # Available Workflows
//
//   - Push: publishes a new secret (text is implemented)
//   - Expire: expires an existing push
//   - Preview: resolves the shareable URL of a push
//   - Audit: fetches the view log of a push
//   - List: lists active or expired pushes of the account
//
// Operations without an implementation return pwpush.Unsupported rather
// than failing hard, so the command surface can be exercised today:
//
//	outcome := workflows.Expire(ctx, opts)
//	if outcome.IsUnsupported() {
//	    // tell the user the command is planned
//	}
//
// All workflow functions accept a context.Context as their first parameter.
package workflows
