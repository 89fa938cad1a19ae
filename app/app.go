package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/a-h/lawbuddy/client"
	"github.com/a-h/lawbuddy/models"
	"gopkg.in/yaml.v3"
)

// Backend is the external question-answering service.
type Backend interface {
	Health(ctx context.Context) (models.HealthGetResponse, error)
	Ask(ctx context.Context, req models.AskPostRequest) (models.AskPostResponse, error)
	DocumentsInitialize(ctx context.Context) error
	SystemInfo(ctx context.Context) (json.RawMessage, error)
}

// BackendFactory creates a Backend for the API URL currently in the settings.
type BackendFactory func(apiURL string) Backend

func ClientFactory(apiKey string, opts ...client.Option) BackendFactory {
	return func(apiURL string) Backend {
		return client.New(apiURL, apiKey, opts...)
	}
}

func New(log *slog.Logger, newBackend BackendFactory) App {
	return App{
		log:        log,
		newBackend: newBackend,
	}
}

// App implements the user actions. Each action makes at most one request,
// and never retries.
type App struct {
	log        *slog.Logger
	newBackend BackendFactory
}

func (a App) CheckStatus(ctx context.Context, s State) Panel {
	resp, err := a.newBackend(s.Settings.APIURL).Health(ctx)
	if err != nil {
		a.log.Warn("health check failed", slog.String("apiURL", s.Settings.APIURL), slog.Any("error", err))
		if Classify(err) == KindApplication {
			return errorPanel("Cannot connect to API")
		}
		return errorPanel(fmt.Sprintf("Connection error: %v", err))
	}
	return Panel{
		Notices: []Notice{
			{Level: LevelSuccess, Text: fmt.Sprintf("System Status: %s", resp.Status)},
			{Level: LevelInfo, Text: fmt.Sprintf("Documents in database: %d", resp.DocumentCount())},
		},
	}
}

func (a App) Submit(ctx context.Context, s State) Panel {
	req, err := s.AskRequest()
	if err != nil {
		return errorPanel(Message(err))
	}
	a.log.Info("asking question", slog.Int("topK", req.TopK), slog.Float64("minScore", req.MinScore), slog.Bool("returnContext", req.ReturnContext))
	resp, err := a.newBackend(s.Settings.APIURL).Ask(ctx, req)
	if err != nil {
		a.log.Warn("ask failed", slog.String("kind", Classify(err).String()), slog.Any("error", err))
		return errorPanel(Message(err))
	}
	return Panel{
		Answer: NewAnswerView(resp, req.ReturnContext),
	}
}

// SelectExample sets the question to the example at index i.
func (a App) SelectExample(s State, i int) (State, error) {
	if i < 0 || i >= len(Examples) {
		return s, ValidationError{Message: fmt.Sprintf("There is no example question %d", i+1)}
	}
	s.Question = Examples[i]
	s.LastExample = Examples[i]
	return s, nil
}

func (a App) InitializeDocuments(ctx context.Context, s State) Panel {
	err := a.newBackend(s.Settings.APIURL).DocumentsInitialize(ctx)
	if err != nil {
		a.log.Warn("document initialization failed", slog.Any("error", err))
		if Classify(err) == KindApplication {
			return errorPanel("Failed to initialize documents")
		}
		return errorPanel(fmt.Sprintf("Error: %v", err))
	}
	return Panel{
		Notices: []Notice{{Level: LevelSuccess, Text: "Documents initialized successfully!"}},
	}
}

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// SystemInfo shows the service's diagnostic information without
// interpreting it.
func (a App) SystemInfo(ctx context.Context, s State, format Format) Panel {
	info, err := a.newBackend(s.Settings.APIURL).SystemInfo(ctx)
	if err != nil {
		a.log.Warn("system info failed", slog.Any("error", err))
		return errorPanel(fmt.Sprintf("Error: %v", err))
	}
	text, err := formatSystemInfo(info, format)
	if err != nil {
		return errorPanel(fmt.Sprintf("Error: %v", err))
	}
	return Panel{
		SystemInfo: text,
	}
}

func formatSystemInfo(info json.RawMessage, format Format) (string, error) {
	switch format {
	case FormatYAML:
		var v any
		if err := json.Unmarshal(info, &v); err != nil {
			return "", fmt.Errorf("failed to parse system info: %w", err)
		}
		sb := new(strings.Builder)
		enc := yaml.NewEncoder(sb)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return "", fmt.Errorf("failed to encode system info: %w", err)
		}
		return strings.TrimSuffix(sb.String(), "\n"), nil
	default:
		var buf bytes.Buffer
		if err := json.Indent(&buf, info, "", "  "); err != nil {
			return "", fmt.Errorf("failed to format system info: %w", err)
		}
		return buf.String(), nil
	}
}
