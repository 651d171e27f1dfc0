package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sathariels/Grok-CLI/internal/fsutil"
)

var createFileCmd = &cobra.Command{
	Use:          "create-file <filename> <content>",
	Short:        "Create a file with the given content",
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		return a.createFile(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(createFileCmd)
}

// createFile writes content verbatim. It never touches the remote client.
func (a *app) createFile(path, content string) error {
	if err := fsutil.WriteText(path, content); err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	fmt.Fprintf(a.stdout, "File %s created\n", path)
	return nil
}
