package main

import (
	"context"
	"log/slog"
	"os"
)

type InitDocumentsCommand struct {
	ClientFlags `embed:""`
}

func (c InitDocumentsCommand) Run(ctx context.Context) (err error) {
	log := getLogger(c.LogLevel)
	log.Info("initializing document database", slog.String("url", c.APIURL))
	return printPanel(os.Stdout, c.newApp(log).InitializeDocuments(ctx, c.state()), 80)
}
