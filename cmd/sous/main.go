// Sous is a recipe cookbook browser and shopping-list builder.
//
// Usage:
//
//	sous [--cookbook DIR] [--categories FILE] [--verbose] [--quiet]
//	sous list | show <recipe> | shop [recipe...] | summarize <file> | categories [item...]
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
)

// Version is set via -ldflags.
var Version = "dev"

func main() {
	_ = godotenv.Load()

	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
