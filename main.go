// ABOUTME: Entry point for the agent-roi CLI
// ABOUTME: Prints the AI coding assistant ROI projection to stdout

package main

import (
	"fmt"
	"os"

	"github.com/markalston/agent-roi-calculator/cmd"
	"github.com/markalston/agent-roi-calculator/internal/logger"
)

func main() {
	logger.Init()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
