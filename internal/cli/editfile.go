package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sathariels/Grok-CLI/internal/fsutil"
	"github.com/sathariels/Grok-CLI/internal/prompts"
)

var editOutput string

var editFileCmd = &cobra.Command{
	Use:          "edit-file <filename> <prompt>",
	Short:        "Rewrite a file according to an instruction",
	Example:      `  grok-cli edit-file main.go "add error handling" --output main_fixed.go`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		return a.editFile(cmd.Context(), args[0], args[1], editOutput)
	},
}

func init() {
	rootCmd.AddCommand(editFileCmd)
	editFileCmd.Flags().StringVarP(&editOutput, "output", "o", "", "Destination file (defaults to overwriting the input)")
}

func (a *app) editFile(ctx context.Context, path, instruction, output string) error {
	// Checked before the remote call so a missing file costs no API request.
	if !fsutil.Exists(path) {
		return fmt.Errorf("file %s does not exist", path)
	}
	content, err := fsutil.ReadText(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	prompt, err := prompts.Edit(instruction, content)
	if err != nil {
		return err
	}
	response, err := a.client.Complete(ctx, prompt, a.cfg.DefaultModel)
	if err != nil {
		return err
	}

	dest := output
	if dest == "" {
		dest = path
	}
	if err := fsutil.WriteText(dest, response); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	fmt.Fprintf(a.stdout, "Edited content saved to %s\n", dest)
	return nil
}
