package workflows

import (
	"context"

	"github.com/ppc-cli/ppc/internal/configs"
	logger "github.com/ppc-cli/ppc/internal/logging"
	"github.com/ppc-cli/ppc/internal/pwpush"
)

// TokenOptions identifies one existing push.
type TokenOptions struct {
	Instance configs.Instance
	Kind     pwpush.Kind

	// URLToken is the push identifier from its secret URL.
	URLToken string

	Logger logger.Logger
}

// Expire expires a push before its limits are reached.
func Expire(ctx context.Context, opts TokenOptions) pwpush.Outcome {
	opts.Logger.Debugf("expire requested for %s push %s", opts.Kind, opts.URLToken)
	return unsupported(opts.Logger, "expire", opts.Kind)
}

// Preview resolves the shareable URL of a push without viewing it.
func Preview(ctx context.Context, opts TokenOptions) pwpush.Outcome {
	opts.Logger.Debugf("preview requested for %s push %s", opts.Kind, opts.URLToken)
	return unsupported(opts.Logger, "preview", opts.Kind)
}

// Audit fetches the view log of a push. It requires credentials.
func Audit(ctx context.Context, opts TokenOptions) pwpush.Outcome {
	opts.Logger.Debugf("audit requested for %s push %s", opts.Kind, opts.URLToken)
	return unsupported(opts.Logger, "audit", opts.Kind)
}

// ListState selects which pushes List returns.
type ListState string

const (
	ListActive  ListState = "active"
	ListExpired ListState = "expired"
)

// ListOptions configures the list workflow.
type ListOptions struct {
	Instance configs.Instance
	Kind     pwpush.Kind
	State    ListState
	Logger   logger.Logger
}

// List returns the account's pushes of one kind and state.
func List(ctx context.Context, opts ListOptions) pwpush.Outcome {
	opts.Logger.Debugf("list %s requested for %s pushes", opts.State, opts.Kind)
	return unsupported(opts.Logger, "list "+string(opts.State), opts.Kind)
}
