package main

import (
	"context"
	"os"

	"github.com/agbru/drills/internal/app"
)

func main() {
	application := app.New(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	os.Exit(application.Run(context.Background()))
}
