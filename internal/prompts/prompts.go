// Package prompts provides the embedded prompt templates used by the
// commands, with filesystem override lookup.
package prompts

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Edit composes the prompt for the edit-file command.
func Edit(instruction, content string) (string, error) {
	return render("edit", struct{ Instruction, Content string }{instruction, content})
}

// Analyze composes the prompt for the analyze-data command.
func Analyze(instruction, data string) (string, error) {
	return render("analyze", struct{ Instruction, Data string }{instruction, data})
}

// NLP composes the prompt for the nlp command.
func NLP(task, text string) (string, error) {
	return render("nlp", struct{ Task, Text string }{task, text})
}

func render(name string, data any) (string, error) {
	text, err := load(name)
	if err != nil {
		return "", err
	}
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing template %q: %w", name, err)
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("rendering template %q: %w", name, err)
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

// load returns the template content by name.
// Override lookup order: project .grok-cli/templates/ > user ~/.grok-cli/templates/ > embedded.
func load(name string) (string, error) {
	filename := name + ".tmpl"

	// 1. project-level override
	projectPath := filepath.Join(".grok-cli", "templates", filename)
	if data, err := os.ReadFile(projectPath); err == nil {
		return string(data), nil
	}

	// 2. user-level override
	if home, err := os.UserHomeDir(); err == nil {
		userPath := filepath.Join(home, ".grok-cli", "templates", filename)
		if data, err := os.ReadFile(userPath); err == nil {
			return string(data), nil
		}
	}

	// 3. embedded default
	data, err := templatesFS.ReadFile("templates/" + filename)
	if err != nil {
		return "", fmt.Errorf("template %q not found", name)
	}
	return string(data), nil
}
