package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sathariels/Grok-CLI/internal/dataset"
	"github.com/sathariels/Grok-CLI/internal/fsutil"
	"github.com/sathariels/Grok-CLI/internal/prompts"
)

var analyzeOutput string

var analyzeDataCmd = &cobra.Command{
	Use:          "analyze-data <data-file> <prompt>",
	Short:        "Run an analysis prompt over a CSV file",
	Example:      `  grok-cli analyze-data sales.csv "find the top three regions by revenue"`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		return a.analyzeData(cmd.Context(), args[0], args[1], analyzeOutput)
	},
}

func init() {
	rootCmd.AddCommand(analyzeDataCmd)
	// The default filename is historical; the written content is free-form
	// model text, not CSV.
	analyzeDataCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "output.csv", "Output file for analysis results")
}

func (a *app) analyzeData(ctx context.Context, path, instruction, output string) error {
	if !fsutil.Exists(path) {
		return fmt.Errorf("file %s does not exist", path)
	}
	table, err := dataset.Load(path)
	if err != nil {
		return err
	}

	prompt, err := prompts.Analyze(instruction, table.Render())
	if err != nil {
		return err
	}
	response, err := a.client.Complete(ctx, prompt, a.cfg.DefaultModel)
	if err != nil {
		return err
	}

	if err := fsutil.WriteText(output, response); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	fmt.Fprintf(a.stdout, "Analysis saved to %s\n", output)
	return nil
}
