package cli

import (
	"fmt"

	"github.com/sathariels/Grok-CLI/pkg/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "grok-cli",
	Short: "Command-line front-end for the xAI Grok API",
	Long:  `grok-cli sends prompts to the Grok model API and writes the response to stdout or a file. It covers one-shot chat, file editing, data analysis, NLP tasks and declarative multi-step workflows.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("grok-cli %s\n", version.Version)
	},
}
