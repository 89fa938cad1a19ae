package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/a-h/lawbuddy/app"
	"github.com/a-h/lawbuddy/client"
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

type CLI struct {
	UI            UICommand            `cmd:"ui" default:"1" help:"Start the interactive legal research assistant."`
	Ask           AskCommand           `cmd:"ask" help:"Ask a legal question."`
	Health        HealthCommand        `cmd:"health" help:"Check the status of the legal Q&A API."`
	InitDocuments InitDocumentsCommand `cmd:"init-documents" help:"Ask the legal Q&A API to load its documents."`
	SystemInfo    SystemInfoCommand    `cmd:"system-info" help:"Print diagnostic information from the legal Q&A API."`
	Examples      ExamplesCommand      `cmd:"examples" help:"List example questions."`
	Mock          MockCommand          `cmd:"mock" help:"Start a mock legal Q&A API for demos and testing."`
	Version       VersionCommand       `cmd:"version" help:"Print the version of lawbuddy."`
}

func main() {
	loadEnvFile(getLogger("warn"))

	var cli CLI
	ctx := context.Background()
	kctx := kong.Parse(&cli,
		kong.Name("lawbuddy"),
		kong.Description("Law Study Buddy: an AI-powered legal research assistant."),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)))
	if err := kctx.Run(); err != nil {
		log := getLogger("error")
		log.Error("error", slog.Any("error", err))
		os.Exit(1)
	}
}

// loadEnvFile loads .env, or the named files, into the environment. Values
// already in the environment are not overridden. Missing files are ignored.
func loadEnvFile(log *slog.Logger, filenames ...string) {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn("failed to load .env file", slog.Any("error", err))
	}
}

func getLogger(level string) *slog.Logger {
	return getLoggerTo(os.Stderr, level)
}

func getLoggerTo(w io.Writer, level string) *slog.Logger {
	ll := slog.LevelInfo
	switch level {
	case "debug":
		ll = slog.LevelDebug
	case "info":
		ll = slog.LevelInfo
	case "warn":
		ll = slog.LevelWarn
	case "error":
		ll = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ll,
	}))
}

// ClientFlags are shared by every command that calls the legal Q&A API.
type ClientFlags struct {
	APIURL   string        `name:"api-url" help:"The URL of the legal Q&A API." env:"LAW_BUDDY_API_URL" default:"http://localhost:8000"`
	APIKey   string        `name:"api-key" help:"The API key for the legal Q&A API." env:"LAW_BUDDY_API_KEY" default:""`
	Timeout  time.Duration `help:"How long to wait for each API call." env:"LAW_BUDDY_TIMEOUT" default:"60s"`
	LogLevel string        `help:"The log level to use." env:"LOG_LEVEL" default:"info"`
}

func (f ClientFlags) newApp(log *slog.Logger) app.App {
	return app.New(log, app.ClientFactory(f.APIKey, client.WithTimeout(f.Timeout), client.WithLogger(log)))
}

func (f ClientFlags) state() app.State {
	settings := app.DefaultSettings()
	settings.APIURL = f.APIURL
	return app.NewState(settings)
}
