package main

import (
	"os"

	"insightagent/cmd/insightagent/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
