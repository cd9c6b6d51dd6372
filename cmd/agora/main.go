package main

import (
	"fmt"
	"os"

	"github.com/agora-dao/agora-cli/internal/cli"
	"github.com/agora-dao/agora-cli/internal/config"
)

// Populated at build time via -ldflags
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	config.SetBuildFlags(version, commit, date)

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
