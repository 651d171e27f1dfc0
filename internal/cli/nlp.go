package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sathariels/Grok-CLI/internal/prompts"
)

var nlpCmd = &cobra.Command{
	Use:          "nlp <text> <task>",
	Short:        "Run an NLP task over a piece of text",
	Example:      `  grok-cli nlp "great product, shipping was slow" "sentiment analysis"`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		return a.nlp(cmd.Context(), args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(nlpCmd)
}

func (a *app) nlp(ctx context.Context, text, task string) error {
	prompt, err := prompts.NLP(task, text)
	if err != nil {
		return err
	}
	response, err := a.client.Complete(ctx, prompt, a.cfg.DefaultModel)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, response)
	return nil
}
