package workflow

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Display handles terminal output for a workflow run. Model responses go to
// Out (stdout); step status lines go to Err (stderr) so piped output stays
// clean.
type Display struct {
	Out io.Writer
	Err io.Writer
}

// NewDisplay creates a display writing responses to stdout and status to
// stderr.
func NewDisplay() *Display {
	return &Display{Out: os.Stdout, Err: os.Stderr}
}

// Response emits a model response for a print step.
func (d *Display) Response(text string) {
	fmt.Fprintln(d.Out, text)
}

// StepDone prints a completed step line.
func (d *Display) StepDone(i int, detail string) {
	fmt.Fprintf(d.Err, "✅ step %d: %s\n", i+1, detail)
}

// StepSkipped prints a warning for a step that failed validation.
func (d *Display) StepSkipped(i int, reason string) {
	fmt.Fprintf(d.Err, "⚠️ step %d skipped: %s\n", i+1, reason)
}

// StepFailed prints a failed step line.
func (d *Display) StepFailed(i int, err error) {
	fmt.Fprintf(d.Err, "❌ step %d: %s\n", i+1, err.Error())
}

// Summary prints the final run summary.
func (d *Display) Summary(results []StepResult) {
	var completed, skipped, failed int
	for _, sr := range results {
		switch sr.Status {
		case StatusCompleted:
			completed++
		case StatusSkipped:
			skipped++
		case StatusFailed:
			failed++
		}
	}
	fmt.Fprintln(d.Err, strings.Repeat("─", 40))
	fmt.Fprintf(d.Err, "Done  %d completed, %d skipped, %d failed\n", completed, skipped, failed)
}
