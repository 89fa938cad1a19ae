package main

import (
	"context"
	"os"

	"github.com/a-h/lawbuddy/app"
)

type SystemInfoCommand struct {
	ClientFlags `embed:""`
	Format      string `help:"The output format." enum:"json,yaml" default:"json"`
}

func (c SystemInfoCommand) Run(ctx context.Context) (err error) {
	log := getLogger(c.LogLevel)
	p := c.newApp(log).SystemInfo(ctx, c.state(), app.Format(c.Format))
	if p.HasError() {
		return printPanel(os.Stderr, p, 80)
	}
	// Print without styling, so the output can be piped to other tools.
	_, err = os.Stdout.WriteString(p.SystemInfo + "\n")
	return err
}
