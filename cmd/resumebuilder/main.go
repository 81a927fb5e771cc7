// Package main provides the resumebuilder CLI, a thin presentation layer
// over the resume builder core library.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resumebuilder",
	Short: "Resume builder and PDF exporter",
	Long:  "resumebuilder loads a resume from its persistence collaborator, renders it through one of the built-in templates, and exports it as an A4 PDF.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
