package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"shopassist/internal/service"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	userColor = color.New(color.FgCyan, color.Bold)
	botColor  = color.New(color.FgMagenta)
	infoColor = color.New(color.Faint)
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive shopping conversation",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := loadApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		return runChat(ctx, a.Assistant, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

// runChat reads one utterance per line until EOF or "/quit".
// "/clear" starts a fresh session.
func runChat(ctx context.Context, assistant *service.Assistant, in io.Reader, out io.Writer) error {
	s, err := assistant.StartSession(ctx)
	if err != nil {
		return err
	}

	infoColor.Fprintln(out, "Type a message, /clear to start over, /quit to leave.")
	scanner := bufio.NewScanner(in)
	for {
		userColor.Fprint(out, "You: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		text := strings.TrimSpace(scanner.Text())
		switch text {
		case "":
			continue
		case "/quit", "/exit":
			return nil
		case "/clear":
			if err := assistant.ClearSession(ctx, s.ID); err != nil {
				return err
			}
			if s, err = assistant.StartSession(ctx); err != nil {
				return err
			}
			infoColor.Fprintln(out, "🧹 Chat history cleared.")
			continue
		}

		resp, err := assistant.GenerateReply(ctx, s.ID, text)
		if err != nil {
			return err
		}
		botColor.Fprintf(out, "Bot: %s\n", resp.Reply)
	}
}
