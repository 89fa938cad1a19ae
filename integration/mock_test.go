package integration

import (
	"context"
	"testing"

	"github.com/a-h/lawbuddy/app"
	"github.com/a-h/lawbuddy/client"
	"github.com/a-h/lawbuddy/models"
)

// These tests expect `lawbuddy mock` to be listening on the default API URL.

func TestHealth(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	c := client.New(app.DefaultAPIURL, "")
	resp, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("failed to check health: %v", err)
	}
	if resp.Status == "" {
		t.Error("expected a status")
	}
}

func TestAsk(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	c := client.New(app.DefaultAPIURL, "")
	if err := c.DocumentsInitialize(context.Background()); err != nil {
		t.Fatalf("failed to initialize documents: %v", err)
	}
	resp, err := c.Ask(context.Background(), models.AskPostRequest{
		Query:    "What constitutes murder under the Criminal Code?",
		TopK:     app.DefaultTopK,
		MinScore: app.DefaultMinScore,
	})
	if err != nil {
		t.Fatalf("failed to ask: %v", err)
	}
	if resp.Answer == "" {
		t.Error("expected an answer")
	}
	if len(resp.Sources) > app.DefaultTopK {
		t.Errorf("expected at most %d sources, got %d", app.DefaultTopK, len(resp.Sources))
	}
}

func TestSystemInfo(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	c := client.New(app.DefaultAPIURL, "")
	if _, err := c.SystemInfo(context.Background()); err != nil {
		t.Fatalf("failed to get system info: %v", err)
	}
}
