package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

type AskPostRequest struct {
	// Query is the question text, including any additional instructions.
	Query string `json:"query"`
	// TopK is the maximum number of sources to return, 1-10.
	TopK int `json:"top_k"`
	// MinScore is the minimum relevance score a source must have, 0-1.
	MinScore float64 `json:"min_score"`
	// ReturnContext asks the service to include the retrieved text.
	ReturnContext bool `json:"return_context"`
}

type AskPostResponse struct {
	Answer     string   `json:"answer"`
	Confidence float64  `json:"confidence"`
	Sources    []Source `json:"sources"`
	Context    string   `json:"context,omitempty"`
}

type Source struct {
	Source  string  `json:"source"`
	Score   float64 `json:"score"`
	Preview string  `json:"preview"`
	// Page is a number or a string, depending on the document type.
	Page any `json:"page,omitempty"`
}

// HasPage returns true if the service reported a page for the source.
func (s Source) HasPage() bool {
	switch p := s.Page.(type) {
	case nil:
		return false
	case string:
		return p != ""
	default:
		return true
	}
}

// PageString returns the page formatted for display.
func (s Source) PageString() string {
	switch p := s.Page.(type) {
	case nil:
		return ""
	case float64:
		if p == float64(int64(p)) {
			return fmt.Sprintf("%d", int64(p))
		}
		return fmt.Sprintf("%g", p)
	default:
		return fmt.Sprintf("%v", p)
	}
}

// ErrMissingField is returned when a required response field is absent.
var ErrMissingField = errors.New("missing required field")

type askPostResponseWire struct {
	Answer     *string       `json:"answer"`
	Confidence *float64      `json:"confidence"`
	Sources    *[]sourceWire `json:"sources"`
	Context    *string       `json:"context"`
}

type sourceWire struct {
	Source  *string  `json:"source"`
	Score   *float64 `json:"score"`
	Preview *string  `json:"preview"`
	Page    any      `json:"page"`
}

func (r *AskPostResponse) UnmarshalJSON(data []byte) (err error) {
	var w askPostResponseWire
	if err = json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Answer == nil {
		return fmt.Errorf("answer: %w", ErrMissingField)
	}
	if w.Confidence == nil {
		return fmt.Errorf("confidence: %w", ErrMissingField)
	}
	if *w.Confidence < 0 || *w.Confidence > 1 {
		return fmt.Errorf("confidence: %v is outside the range 0-1", *w.Confidence)
	}
	if w.Sources == nil {
		return fmt.Errorf("sources: %w", ErrMissingField)
	}
	sources := make([]Source, len(*w.Sources))
	for i, sw := range *w.Sources {
		if sources[i], err = sw.toSource(); err != nil {
			return fmt.Errorf("sources[%d]: %w", i, err)
		}
	}
	*r = AskPostResponse{
		Answer:     *w.Answer,
		Confidence: *w.Confidence,
		Sources:    sources,
	}
	if w.Context != nil {
		r.Context = *w.Context
	}
	return nil
}

func (sw sourceWire) toSource() (s Source, err error) {
	if sw.Source == nil {
		return s, fmt.Errorf("source: %w", ErrMissingField)
	}
	if sw.Score == nil {
		return s, fmt.Errorf("score: %w", ErrMissingField)
	}
	if sw.Preview == nil {
		return s, fmt.Errorf("preview: %w", ErrMissingField)
	}
	return Source{
		Source:  *sw.Source,
		Score:   *sw.Score,
		Preview: *sw.Preview,
		Page:    sw.Page,
	}, nil
}
