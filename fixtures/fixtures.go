package fixtures

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/a-h/lawbuddy/models"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML string

type Set struct {
	Fixtures []Fixture `yaml:"fixtures"`
}

type Fixture struct {
	// Keywords select the fixture for a query.
	Keywords   []string `yaml:"keywords"`
	Answer     string   `yaml:"answer"`
	Confidence float64  `yaml:"confidence"`
	Context    string   `yaml:"context"`
	Sources    []Source `yaml:"sources"`
}

type Source struct {
	Source  string  `yaml:"source"`
	Score   float64 `yaml:"score"`
	Preview string  `yaml:"preview"`
	Page    any     `yaml:"page"`
}

func Default() Set {
	s, err := Load(strings.NewReader(defaultYAML))
	if err != nil {
		panic(fmt.Sprintf("fixtures: invalid default fixtures: %v", err))
	}
	return s
}

func LoadFile(name string) (s Set, err error) {
	f, err := os.Open(name)
	if err != nil {
		return s, fmt.Errorf("fixtures: failed to open %q: %w", name, err)
	}
	defer f.Close()
	return Load(f)
}

func Load(r io.Reader) (s Set, err error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err = dec.Decode(&s); err != nil {
		return s, fmt.Errorf("fixtures: failed to decode: %w", err)
	}
	if len(s.Fixtures) == 0 {
		return s, fmt.Errorf("fixtures: at least one fixture is required")
	}
	for i, f := range s.Fixtures {
		if f.Confidence < 0 || f.Confidence > 1 {
			return s, fmt.Errorf("fixtures: fixture %d: confidence %v is outside the range 0-1", i, f.Confidence)
		}
	}
	return s, nil
}

// SourceCount is the number of sources across all fixtures.
func (s Set) SourceCount() (n int) {
	for _, f := range s.Fixtures {
		n += len(f.Sources)
	}
	return n
}

// Match returns the fixture with the most keywords found in the query, or
// the first fixture if none match.
func (s Set) Match(query string) Fixture {
	query = strings.ToLower(query)
	var best, bestScore int
	for i, f := range s.Fixtures {
		var score int
		for _, k := range f.Keywords {
			if strings.Contains(query, strings.ToLower(k)) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return s.Fixtures[best]
}

// Response answers the request, keeping at most req.TopK sources with a
// score of at least req.MinScore.
func (f Fixture) Response(req models.AskPostRequest) (resp models.AskPostResponse) {
	resp.Answer = f.Answer
	resp.Confidence = f.Confidence
	resp.Sources = []models.Source{}
	for _, s := range f.Sources {
		if len(resp.Sources) >= req.TopK {
			break
		}
		if s.Score < req.MinScore {
			continue
		}
		resp.Sources = append(resp.Sources, models.Source{
			Source:  s.Source,
			Score:   s.Score,
			Preview: s.Preview,
			Page:    s.Page,
		})
	}
	if req.ReturnContext {
		resp.Context = f.Context
	}
	return resp
}
