package main

import (
	"fmt"
	"os"

	"github.com/asapSAGNIK/Data-Alchemist/internal/cli"
)

func main() {
	app := &cli.App{}
	rootCmd := cli.NewRootCmd(app)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
