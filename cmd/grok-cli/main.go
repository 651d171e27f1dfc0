package main

import (
	"os"

	"github.com/sathariels/Grok-CLI/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
