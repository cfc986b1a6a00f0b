package main

import (
	"os"

	"github.com/scaledint/decimal/cmd/decround/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
