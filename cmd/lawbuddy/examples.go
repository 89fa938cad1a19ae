package main

import (
	"context"
	"fmt"

	"github.com/a-h/lawbuddy/app"
)

type ExamplesCommand struct {
}

func (c ExamplesCommand) Run(ctx context.Context) (err error) {
	for i, e := range app.Examples {
		fmt.Printf("%d. %s\n", i+1, e)
	}
	return nil
}
