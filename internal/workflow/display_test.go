package workflow

import (
	"bytes"
	"strings"
	"testing"
)

func TestDisplaySummary(t *testing.T) {
	var out, errw bytes.Buffer
	d := &Display{Out: &out, Err: &errw}

	d.Summary([]StepResult{
		{Status: StatusCompleted},
		{Status: StatusCompleted},
		{Status: StatusSkipped},
		{Status: StatusFailed},
	})

	if !strings.Contains(errw.String(), "2 completed, 1 skipped, 1 failed") {
		t.Errorf("unexpected summary: %q", errw.String())
	}
	if out.Len() != 0 {
		t.Errorf("summary must not write to stdout: %q", out.String())
	}
}

func TestDisplayResponseGoesToStdout(t *testing.T) {
	var out, errw bytes.Buffer
	d := &Display{Out: &out, Err: &errw}

	d.Response("the answer")
	d.StepDone(0, "printed")

	if !strings.Contains(out.String(), "the answer") {
		t.Errorf("response missing from stdout: %q", out.String())
	}
	if strings.Contains(out.String(), "step 1") {
		t.Error("status line leaked into stdout")
	}
	if !strings.Contains(errw.String(), "step 1") {
		t.Errorf("status line missing from stderr: %q", errw.String())
	}
}
