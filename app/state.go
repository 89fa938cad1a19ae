package app

import (
	"fmt"
	"math"
	"strings"

	"github.com/a-h/lawbuddy/models"
)

const (
	DefaultAPIURL   = "http://localhost:8000"
	DefaultTopK     = 5
	DefaultMinScore = 0.2

	MinTopK      = 1
	MaxTopK      = 10
	MinScoreStep = 0.1
)

type Settings struct {
	APIURL        string
	TopK          int
	MinScore      float64
	ReturnContext bool
}

func DefaultSettings() Settings {
	return Settings{
		APIURL:   DefaultAPIURL,
		TopK:     DefaultTopK,
		MinScore: DefaultMinScore,
	}
}

// State is everything the user has entered. It is owned by the UI and
// replaced, never shared, on each update.
type State struct {
	Settings     Settings
	Question     string
	Instructions string
	// LastExample is the example question most recently selected.
	LastExample string
}

func NewState(settings Settings) State {
	return State{Settings: settings}
}

func (s State) WithTopK(delta int) State {
	s.Settings.TopK = min(max(s.Settings.TopK+delta, MinTopK), MaxTopK)
	return s
}

func (s State) WithMinScore(steps int) State {
	v := s.Settings.MinScore + float64(steps)*MinScoreStep
	v = math.Round(v*10) / 10
	s.Settings.MinScore = min(max(v, 0), 1)
	return s
}

func (s State) WithReturnContextToggled() State {
	s.Settings.ReturnContext = !s.Settings.ReturnContext
	return s
}

// AskRequest builds the request for the current question, or returns a
// ValidationError.
func (s State) AskRequest() (req models.AskPostRequest, err error) {
	if strings.TrimSpace(s.Question) == "" {
		return req, ValidationError{Message: "Please enter a legal question"}
	}
	if s.Settings.TopK < MinTopK || s.Settings.TopK > MaxTopK {
		return req, ValidationError{Message: fmt.Sprintf("Number of sources must be between %d and %d", MinTopK, MaxTopK)}
	}
	if s.Settings.MinScore < 0 || s.Settings.MinScore > 1 || math.IsNaN(s.Settings.MinScore) {
		return req, ValidationError{Message: "Minimum confidence must be between 0.0 and 1.0"}
	}
	req = models.AskPostRequest{
		Query:         s.Question,
		TopK:          s.Settings.TopK,
		MinScore:      s.Settings.MinScore,
		ReturnContext: s.Settings.ReturnContext,
	}
	if strings.TrimSpace(s.Instructions) != "" {
		req.Query = fmt.Sprintf("%s\n\nAdditional instructions: %s", s.Question, s.Instructions)
	}
	return req, nil
}
