package workflows

import (
	"context"

	"github.com/ppc-cli/ppc/internal/configs"
	"github.com/ppc-cli/ppc/internal/history"
	logger "github.com/ppc-cli/ppc/internal/logging"
	"github.com/ppc-cli/ppc/internal/pwpush"
)

// PushOptions configures the push workflow.
type PushOptions struct {
	// Instance is the target. Its invariants are already enforced.
	Instance configs.Instance

	// Kind selects the object type to publish.
	Kind pwpush.Kind

	// Text is the intent for KindText.
	Text pwpush.TextPush

	// Client sends the request. Nil uses a default client logging to Logger.
	Client *pwpush.Client

	// HistoryPath is the journal to record the attempt in. Empty disables it.
	HistoryPath string

	Logger logger.Logger
}

// Push publishes a new secret of the requested kind.
func Push(ctx context.Context, opts PushOptions) pwpush.Outcome {
	opts.Logger.Infof("pushing %s secret to %s", opts.Kind, opts.Instance.Host)

	switch opts.Kind {
	case pwpush.KindText:
		outcome := clientFor(opts.Client, opts.Logger).PublishText(ctx, opts.Instance, opts.Text)
		recordPush(opts, pwpush.TextFields(opts.Text), outcome)
		return outcome
	default:
		return unsupported(opts.Logger, "push", opts.Kind)
	}
}

// recordPush journals a push attempt. Values are never recorded.
func recordPush(opts PushOptions, fields []string, outcome pwpush.Outcome) {
	entry := history.Entry{
		Operation: "push",
		Kind:      string(opts.Kind),
		Instance:  opts.Instance.BaseURL(),
		Fields:    fields,
		Status:    outcome.Status,
		Error:     outcome.Message(),
	}
	if opts.Instance.Credentials != nil {
		entry.User = opts.Instance.Credentials.Email
	}

	if opts.HistoryPath != "" && !history.Record(opts.HistoryPath, entry) {
		opts.Logger.Warnf("could not record push in %s", opts.HistoryPath)
	}
}

func clientFor(c *pwpush.Client, log logger.Logger) *pwpush.Client {
	if c != nil {
		return c
	}
	return pwpush.NewClient(pwpush.WithLogger(log))
}

func unsupported(log logger.Logger, action string, kind pwpush.Kind) pwpush.Outcome {
	operation := action + " " + string(kind)
	log.Debugf("%s has no implementation", operation)
	return pwpush.Unsupported(operation)
}
