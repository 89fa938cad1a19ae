package main

import (
	"context"
	"os"
)

type HealthCommand struct {
	ClientFlags `embed:""`
}

func (c HealthCommand) Run(ctx context.Context) (err error) {
	log := getLogger(c.LogLevel)
	return printPanel(os.Stdout, c.newApp(log).CheckStatus(ctx, c.state()), 80)
}
