package main

import (
	"fmt"
	"os"

	"github.com/de-tools/instance-isolator/pkg/runtime/terminal"
	"github.com/de-tools/instance-isolator/pkg/services/responder"
	"github.com/joho/godotenv"
)

func main() {
	// A local .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cli := terminal.NewCLI(terminal.Options{
		Factory:   responder.New,
		Output:    os.Stdout,
		LogOutput: os.Stderr,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
