package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/zyarat-mobile/zyarat/cmd"
)

const version = "0.1.0"

func main() {
	// fang wraps the command tree with styled help, completions and --version.
	if err := fang.Execute(
		context.Background(),
		cmd.NewRootCmd(),
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	); err != nil {
		os.Exit(1)
	}
}
