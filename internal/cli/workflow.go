package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sathariels/Grok-CLI/internal/fsutil"
	"github.com/sathariels/Grok-CLI/internal/workflow"
)

var workflowCmd = &cobra.Command{
	Use:          "automate-workflow <workflow-file>",
	Short:        "Execute a JSON workflow of prompt steps",
	Long:         "Execute the steps of a JSON workflow file in order.\nEach step sends a prompt to the model and either prints the response or saves it to a file. A malformed or failing step is reported and the run continues with the next step.",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		return a.automateWorkflow(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(workflowCmd)
}

func (a *app) automateWorkflow(ctx context.Context, path string) error {
	if !fsutil.Exists(path) {
		return fmt.Errorf("workflow file %s does not exist", path)
	}
	wf, err := workflow.ParseFile(path)
	if err != nil {
		return err
	}

	runner := &workflow.Runner{
		Client:  a.client,
		Model:   a.cfg.DefaultModel,
		Display: &workflow.Display{Out: a.stdout, Err: os.Stderr},
	}
	_, err = runner.Run(ctx, wf)
	return err
}
