package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var chatModel string

var chatCmd = &cobra.Command{
	Use:          "chat [prompt]",
	Short:        "Send a prompt to the model, or start an interactive session",
	Long:         "Send a one-shot prompt and print the response.\nWithout a prompt argument, an interactive session is started; type \"exit\" to quit.",
	Example:      `  grok-cli chat "Explain goroutines in one paragraph"`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if len(args) == 0 {
			return a.chatInteractive(cmd.Context(), a.model(chatModel))
		}
		return a.chat(cmd.Context(), strings.Join(args, " "), a.model(chatModel))
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().StringVarP(&chatModel, "model", "m", "", "Model to use (defaults to config)")
}

func (a *app) chat(ctx context.Context, prompt, model string) error {
	response, err := a.client.Complete(ctx, prompt, model)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, response)
	return nil
}

func (a *app) chatInteractive(ctx context.Context, model string) error {
	fmt.Fprintln(a.stdout, "Interactive chat. Type a message and press Enter; type \"exit\" to quit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(a.stdout, "you> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "exit") {
			break
		}
		response, err := a.client.Complete(ctx, line, model)
		if err != nil {
			fmt.Fprintln(a.stdout, "error:", err)
			continue
		}
		fmt.Fprintf(a.stdout, "grok> %s\n", response)
	}
	return scanner.Err()
}
