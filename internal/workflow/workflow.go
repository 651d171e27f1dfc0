// Package workflow executes declarative multi-step prompt runs.
package workflow

import (
	"encoding/json"
	"fmt"
	"os"
)

// Action selects how a step's response is routed.
type Action string

const (
	// ActionPrint emits the response to standard output.
	ActionPrint Action = "print"
	// ActionSave writes the response to the step's output file.
	ActionSave Action = "save"
)

// Step is a single unit of a workflow.
type Step struct {
	Prompt     string `json:"prompt"`
	Action     Action `json:"action"`
	OutputFile string `json:"output_file,omitempty"`
	Model      string `json:"model,omitempty"`
}

// Workflow is an ordered sequence of steps, executed sequentially.
type Workflow struct {
	Steps []Step `json:"steps"`
}

// Parse decodes a workflow from JSON bytes.
func Parse(data []byte) (*Workflow, error) {
	var wf Workflow
	if err := json.Unmarshal(data, &wf); err != nil {
		return nil, fmt.Errorf("parsing workflow: %w", err)
	}
	return &wf, nil
}

// ParseFile reads and parses a workflow JSON file.
func ParseFile(path string) (*Workflow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workflow file %s: %w", path, err)
	}
	return Parse(data)
}
