package app

import (
	"fmt"

	"github.com/a-h/lawbuddy/models"
)

type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

type Notice struct {
	Level Level
	Text  string
}

// Panel is what the UI shows after an action completes.
type Panel struct {
	Notices    []Notice
	Answer     *AnswerView
	SystemInfo string
}

// HasError returns true if any notice is an error.
func (p Panel) HasError() bool {
	for _, n := range p.Notices {
		if n.Level == LevelError {
			return true
		}
	}
	return false
}

func errorPanel(text string) Panel {
	return Panel{Notices: []Notice{{Level: LevelError, Text: text}}}
}

type AnswerView struct {
	Answer     string
	Confidence string
	Sources    []SourceView
	// Placeholder is set instead of Sources when none were returned.
	Placeholder string
	Context     string
}

type SourceView struct {
	Title   string
	Preview string
	// Page is empty when the service did not report one.
	Page  string
	Score string
}

const NoSourcesPlaceholder = "No specific sources retrieved for this query"

// FormatConfidence formats a 0-1 confidence as a percentage to 2 decimal places.
func FormatConfidence(c float64) string {
	return fmt.Sprintf("%.2f%%", c*100)
}

func NewAnswerView(resp models.AskPostResponse, returnContext bool) *AnswerView {
	av := &AnswerView{
		Answer:     resp.Answer,
		Confidence: FormatConfidence(resp.Confidence),
	}
	if len(resp.Sources) == 0 {
		av.Placeholder = NoSourcesPlaceholder
	}
	for i, s := range resp.Sources {
		av.Sources = append(av.Sources, SourceView{
			Title:   fmt.Sprintf("Source %d: %s (Score: %.2f)", i+1, s.Source, s.Score),
			Preview: s.Preview,
			Page:    s.PageString(),
			Score:   fmt.Sprintf("%.3f", s.Score),
		})
	}
	if returnContext {
		av.Context = resp.Context
	}
	return av
}
