package cli

import (
	"context"
	"os"
	"time"

	"github.com/briandowns/spinner"

	"github.com/sathariels/Grok-CLI/internal/grok"
)

// spinnerCompleter decorates a Completer with a transient terminal spinner
// while a remote call is in flight. Only installed when stderr is a TTY.
type spinnerCompleter struct {
	next grok.Completer
}

func withSpinner(next grok.Completer) grok.Completer {
	return &spinnerCompleter{next: next}
}

func (s *spinnerCompleter) Complete(ctx context.Context, prompt, model string) (string, error) {
	sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	sp.Suffix = " waiting for " + model
	sp.Start()
	defer sp.Stop()

	return s.next.Complete(ctx, prompt, model)
}
