package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"daoxue-backend/internal/client"
	"daoxue-backend/internal/models"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		endpoint string
		mode     string
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with the Taoist culture tutor from the terminal",
		Long: `Starts an interactive session against a running chat endpoint.

Commands inside the session:
  /mode beginner|advanced   switch learning mode
  /exit                     quit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), endpoint, models.Mode(mode))
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", "http://localhost:8080/api/chat", "chat endpoint URL")
	cmd.Flags().StringVar(&mode, "mode", string(models.ModeBeginner), "learning mode: beginner or advanced")

	return cmd
}

func run(ctx context.Context, in io.Reader, out io.Writer, endpoint string, mode models.Mode) error {
	if ctx == nil {
		ctx = context.Background()
	}
	session := client.NewSession(client.NewAPI(endpoint), client.NewTerminalRenderer(out), mode)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\n> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "/exit":
			return nil
		case strings.HasPrefix(line, "/mode"):
			next := models.ParseMode(strings.TrimSpace(strings.TrimPrefix(line, "/mode")))
			session.SetMode(next)
			fmt.Fprintf(out, "mode: %s\n", next)
			continue
		}

		// Failures are already rendered into the conversation.
		_ = session.Submit(ctx, line)
	}
}
