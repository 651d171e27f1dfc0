package workflow

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"prompt": "summarize the report", "action": "save", "output_file": "summary.txt"},
			{"prompt": "list key risks", "action": "print"}
		]
	}`)

	wf, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(wf.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(wf.Steps))
	}
	if wf.Steps[0].Action != ActionSave || wf.Steps[0].OutputFile != "summary.txt" {
		t.Errorf("unexpected first step: %+v", wf.Steps[0])
	}
	if wf.Steps[1].Action != ActionPrint {
		t.Errorf("unexpected second step: %+v", wf.Steps[1])
	}
}

func TestParseInvalidJSON(t *testing.T) {
	if _, err := Parse([]byte("{not json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestParseNoSteps(t *testing.T) {
	wf, err := Parse([]byte(`{}`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(wf.Steps) != 0 {
		t.Errorf("expected empty step list, got %d", len(wf.Steps))
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wf.json")
	content := `{"steps": [{"prompt": "p", "action": "print"}]}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	wf, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if len(wf.Steps) != 1 {
		t.Errorf("expected 1 step, got %d", len(wf.Steps))
	}
}

func TestParseFileNotExist(t *testing.T) {
	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing workflow file")
	}
}
