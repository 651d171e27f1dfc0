package workflow

import (
	"context"
	"fmt"

	"github.com/sathariels/Grok-CLI/internal/fsutil"
	"github.com/sathariels/Grok-CLI/internal/grok"
	vlog "github.com/sathariels/Grok-CLI/internal/log"
)

// Step outcome statuses.
const (
	StatusCompleted = "completed"
	StatusSkipped   = "skipped"
	StatusFailed    = "failed"
)

// StepResult records the outcome of a single step.
type StepResult struct {
	Index  int
	Status string // StatusCompleted | StatusSkipped | StatusFailed
	Detail string
	Err    error
}

// Runner executes workflow steps in order.
type Runner struct {
	Client  grok.Completer
	Model   string // default model for steps without an override
	Display *Display
}

// Run executes all steps sequentially. One malformed or failing step does
// not abort the remaining steps; the only error return is context
// cancellation.
func (r *Runner) Run(ctx context.Context, wf *Workflow) ([]StepResult, error) {
	results := make([]StepResult, 0, len(wf.Steps))

	for i, step := range wf.Steps {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}
		results = append(results, r.runStep(ctx, i, step))
	}

	r.Display.Summary(results)
	return results, nil
}

func (r *Runner) runStep(ctx context.Context, i int, step Step) StepResult {
	if step.Prompt == "" || step.Action == "" {
		r.Display.StepSkipped(i, "missing prompt or action")
		return StepResult{Index: i, Status: StatusSkipped, Detail: "missing prompt or action"}
	}

	switch step.Action {
	case ActionPrint, ActionSave:
	default:
		err := fmt.Errorf("unsupported action %q", step.Action)
		r.Display.StepFailed(i, err)
		return StepResult{Index: i, Status: StatusFailed, Detail: "unsupported action", Err: err}
	}

	// Reject a misconfigured save step before spending an API call on it.
	if step.Action == ActionSave && step.OutputFile == "" {
		err := fmt.Errorf("save step missing output_file")
		r.Display.StepFailed(i, err)
		return StepResult{Index: i, Status: StatusFailed, Detail: "missing output_file", Err: err}
	}

	model := step.Model
	if model == "" {
		model = r.Model
	}

	response, err := r.Client.Complete(ctx, step.Prompt, model)
	if err != nil {
		r.Display.StepFailed(i, err)
		return StepResult{Index: i, Status: StatusFailed, Detail: "remote call failed", Err: err}
	}

	switch step.Action {
	case ActionSave:
		if err := fsutil.WriteText(step.OutputFile, response); err != nil {
			vlog.Warn("could not write step output", "step", i+1, "file", step.OutputFile, "err", err)
			r.Display.StepFailed(i, err)
			return StepResult{Index: i, Status: StatusFailed, Detail: "write failed", Err: err}
		}
		r.Display.StepDone(i, "saved to "+step.OutputFile)
		return StepResult{Index: i, Status: StatusCompleted, Detail: step.OutputFile}
	case ActionPrint:
		r.Display.Response(response)
		r.Display.StepDone(i, "printed")
		return StepResult{Index: i, Status: StatusCompleted, Detail: "printed"}
	}

	// Unreachable: actions are validated above.
	return StepResult{Index: i, Status: StatusFailed, Detail: "unsupported action"}
}
