package fixtures

import (
	"strings"
	"testing"

	"github.com/a-h/lawbuddy/models"
	"github.com/google/go-cmp/cmp"
)

const testYAML = `fixtures:
  - keywords: [murder]
    answer: murder answer
    confidence: 0.8
    context: murder context
    sources:
      - source: a.pdf
        score: 0.9
        preview: a
        page: 1
      - source: b.pdf
        score: 0.5
        preview: b
      - source: c.pdf
        score: 0.1
        preview: c
  - keywords: [contract, offer]
    answer: contract answer
    confidence: 0.6
    sources: []
`

func TestMatch(t *testing.T) {
	s, err := Load(strings.NewReader(testYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tests := []struct {
		query    string
		expected string
	}{
		{query: "What is MURDER?", expected: "murder answer"},
		{query: "Is an offer a contract?", expected: "contract answer"},
		{query: "What is the weather?", expected: "murder answer"},
	}
	for _, test := range tests {
		t.Run(test.query, func(t *testing.T) {
			if actual := s.Match(test.query).Answer; actual != test.expected {
				t.Errorf("expected %q, got %q", test.expected, actual)
			}
		})
	}
}

func TestResponse(t *testing.T) {
	s, err := Load(strings.NewReader(testYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f := s.Fixtures[0]
	tests := []struct {
		name     string
		req      models.AskPostRequest
		expected models.AskPostResponse
	}{
		{
			name: "sources below the minimum score are dropped",
			req:  models.AskPostRequest{TopK: 10, MinScore: 0.2},
			expected: models.AskPostResponse{
				Answer:     "murder answer",
				Confidence: 0.8,
				Sources: []models.Source{
					{Source: "a.pdf", Score: 0.9, Preview: "a", Page: 1},
					{Source: "b.pdf", Score: 0.5, Preview: "b"},
				},
			},
		},
		{
			name: "sources are limited to top k",
			req:  models.AskPostRequest{TopK: 1, MinScore: 0, ReturnContext: true},
			expected: models.AskPostResponse{
				Answer:     "murder answer",
				Confidence: 0.8,
				Sources: []models.Source{
					{Source: "a.pdf", Score: 0.9, Preview: "a", Page: 1},
				},
				Context: "murder context",
			},
		},
		{
			name: "no sources may remain",
			req:  models.AskPostRequest{TopK: 5, MinScore: 1},
			expected: models.AskPostResponse{
				Answer:     "murder answer",
				Confidence: 0.8,
				Sources:    []models.Source{},
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if diff := cmp.Diff(test.expected, f.Response(test.req)); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: "fixtures: []"},
		{name: "unknown fields", input: "fixtures:\n  - answer: x\n    colour: red\n"},
		{name: "confidence out of range", input: "fixtures:\n  - answer: x\n    confidence: 2\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := Load(strings.NewReader(test.input)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDefault(t *testing.T) {
	s := Default()
	if len(s.Fixtures) == 0 {
		t.Fatal("expected default fixtures")
	}
	if s.SourceCount() == 0 {
		t.Error("expected default sources")
	}
}

func TestStore(t *testing.T) {
	s := NewStore(Default())
	if s.DocumentCount() != 0 {
		t.Errorf("expected no documents before initialization, got %d", s.DocumentCount())
	}
	n := s.Initialize()
	if n != s.Set.SourceCount() {
		t.Errorf("expected %d documents, got %d", s.Set.SourceCount(), n)
	}
	if !s.Initialized() {
		t.Error("expected store to be initialized")
	}
	if s.DocumentCount() != n {
		t.Errorf("expected %d documents, got %d", n, s.DocumentCount())
	}
}
