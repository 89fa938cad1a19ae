package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/lawbuddy"
	"github.com/a-h/lawbuddy/auth"
	"github.com/a-h/lawbuddy/fixtures"
	askpost "github.com/a-h/lawbuddy/handlers/ask/post"
	documentsinitializepost "github.com/a-h/lawbuddy/handlers/documents/initialize/post"
	healthget "github.com/a-h/lawbuddy/handlers/health/get"
	systeminfoget "github.com/a-h/lawbuddy/handlers/system/info/get"
	"github.com/rs/cors"
)

type MockCommand struct {
	ListenAddr  string `help:"The address to listen on." env:"LISTEN_ADDR" default:"localhost:8000"`
	Fixtures    string `help:"YAML file of canned answers. Uses the built-in answers if empty." env:"FIXTURES" default:""`
	TLSCertFile string `help:"The TLS certificate file." env:"TLS_CERT_FILE" default:""`
	TLSKeyFile  string `help:"The TLS key file." env:"TLS_KEY_FILE" default:""`
	APIKeysFile string `help:"The file containing a JSON map of API keys to usernames. Auth is disabled if empty." env:"API_KEYS_FILE" default:""`
	LogLevel    string `help:"The log level to use." env:"LOG_LEVEL" default:"info"`
}

func (c MockCommand) Run(ctx context.Context) (err error) {
	log := getLogger(c.LogLevel)

	set := fixtures.Default()
	if c.Fixtures != "" {
		log.Info("loading fixtures", slog.String("file", c.Fixtures))
		if set, err = fixtures.LoadFile(c.Fixtures); err != nil {
			return fmt.Errorf("failed to load fixtures: %w", err)
		}
	}

	apiKeyToUserName, err := auth.LoadFromFile(c.APIKeysFile)
	if err != nil {
		return fmt.Errorf("failed to load API keys: %w", err)
	}
	if len(apiKeyToUserName) == 0 {
		log.Warn("API key authentication is disabled")
	}

	h := newMockHandler(log, fixtures.NewStore(set), apiKeyToUserName)

	log.Info("Listening", slog.String("addr", c.ListenAddr), slog.Int("fixtures", len(set.Fixtures)))
	s := &http.Server{
		Addr:              c.ListenAddr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if c.TLSCertFile != "" && c.TLSKeyFile != "" {
		log.Info("Enabling TLS mode")
		var cert tls.Certificate
		cert, err = tls.LoadX509KeyPair(c.TLSCertFile, c.TLSKeyFile)
		if err != nil {
			return fmt.Errorf("failed to load cert: %w", err)
		}
		s.TLSConfig = &tls.Config{
			MinVersion:   tls.VersionTLS12,
			Certificates: []tls.Certificate{cert},
		}
		err = s.ListenAndServeTLS(c.TLSCertFile, c.TLSKeyFile)
	} else {
		err = s.ListenAndServe()
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func newMockHandler(log *slog.Logger, store *fixtures.Store, apiKeyToUserName map[string]string) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /health", healthget.New(log, store))
	mux.Handle("POST /ask", askpost.New(log, store))
	mux.Handle("POST /documents/initialize", documentsinitializepost.New(log, store))
	mux.Handle("GET /system/info", systeminfoget.New(log, store, lawbuddy.Version))

	authenticatedMux := auth.New(apiKeyToUserName, mux)
	return cors.AllowAll().Handler(authenticatedMux)
}
