package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"ippt-coach/internal/answers"
	"ippt-coach/internal/dialog"
	"ippt-coach/internal/repository"
	"ippt-coach/internal/scoring"
	"ippt-coach/internal/usecase"
)

// prompter reads one line of user input.
type prompter interface {
	Prompt(prompt string) (string, error)
}

type chatter interface {
	Post(ctx context.Context, in usecase.PostInput) (usecase.PostOutput, error)
}

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Talk to the coach in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := newLocalChat()
			if err != nil {
				return err
			}

			line := liner.NewLiner()
			defer line.Close()
			line.SetCtrlCAborts(true)

			return runChat(cmd.Context(), svc, historyPrompter{line}, cmd.OutOrStdout())
		},
	}
}

func newLocalChat() (*usecase.ChatService, error) {
	machine, err := dialog.New(answers.Default(), scoring.NewEngine(nil))
	if err != nil {
		return nil, err
	}
	return usecase.NewChatService(repository.NewMemoryStore(0), machine, nil, 0)
}

// historyPrompter records non-empty answers so the arrow keys recall them.
type historyPrompter struct {
	line *liner.State
}

func (h historyPrompter) Prompt(p string) (string, error) {
	s, err := h.line.Prompt(p)
	if err == nil && strings.TrimSpace(s) != "" {
		h.line.AppendHistory(s)
	}
	return s, err
}

// runChat loops until the coach ends the chat or input ends.
func runChat(ctx context.Context, svc chatter, in prompter, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	sessionID := uuid.NewString()
	fmt.Fprintln(out, "IPPT coach. Type 'bye' to leave.")
	for {
		msg, err := in.Prompt("you> ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return nil
		}
		if err != nil {
			return err
		}
		res, err := svc.Post(ctx, usecase.PostInput{Message: msg, SessionID: sessionID})
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		fmt.Fprintf(out, "coach> %s\n", res.Response)
		if res.EndChat {
			return nil
		}
	}
}
