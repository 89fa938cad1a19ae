package main

import (
	"context"
	"fmt"

	"github.com/a-h/lawbuddy"
)

type VersionCommand struct {
}

func (c VersionCommand) Run(ctx context.Context) (err error) {
	fmt.Println(lawbuddy.Version)
	return nil
}
