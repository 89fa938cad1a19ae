package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/a-h/lawbuddy/app"
)

var errActionFailed = errors.New("action failed")

type AskCommand struct {
	ClientFlags  `embed:""`
	Question     string  `help:"The legal question to ask." short:"q" required:""`
	Instructions string  `help:"Custom instructions appended to the question." default:""`
	TopK         int     `name:"top-k" help:"Number of sources to retrieve (1-10)." default:"5"`
	MinScore     float64 `help:"Minimum similarity score for sources (0.0-1.0)." default:"0.2"`
	Context      bool    `help:"Show the full text of retrieved documents." default:"false"`
	Width        int     `help:"The width to wrap output to." default:"100"`
}

func (c AskCommand) Run(ctx context.Context) (err error) {
	log := getLogger(c.LogLevel)
	s := c.state()
	s.Question = c.Question
	s.Instructions = c.Instructions
	s.Settings.TopK = c.TopK
	s.Settings.MinScore = c.MinScore
	s.Settings.ReturnContext = c.Context

	return printPanel(os.Stdout, c.newApp(log).Submit(ctx, s), c.Width)
}

// printPanel writes the panel, and returns an error if the panel
// contains one, so that the exit code reflects the outcome.
func printPanel(w io.Writer, p app.Panel, width int) error {
	if _, err := fmt.Fprint(w, renderPanel(p, width)); err != nil {
		return err
	}
	if p.HasError() {
		return errActionFailed
	}
	return nil
}
