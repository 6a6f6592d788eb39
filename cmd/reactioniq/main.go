// Command reactioniq is the command-line interface to the ReactionIQ engine.
package main

import (
	"os"

	"github.com/turtacn/ReactionIQ/internal/interfaces/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
