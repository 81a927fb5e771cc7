package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/render"
)

var previewOpts struct {
	configPath string
	output     string
	template   string
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the stored resume to HTML",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := resolveConfig(previewOpts.configPath)
		if err != nil {
			return err
		}
		if previewOpts.template != "" {
			cfg.Template = previewOpts.template
		}

		store, cleanup, err := openStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		html, err := render.Render(store.Document())
		if err != nil {
			return err
		}

		if previewOpts.output == "" || previewOpts.output == "-" {
			fmt.Fprintln(os.Stdout, html)
			return nil
		}
		return os.WriteFile(previewOpts.output, []byte(html), 0o644)
	},
}

func init() {
	previewCmd.Flags().StringVarP(&previewOpts.configPath, "config", "c", "", "Path to JSON config file")
	previewCmd.Flags().StringVarP(&previewOpts.output, "output", "o", "-", "Output file (- for stdout)")
	previewCmd.Flags().StringVarP(&previewOpts.template, "template", "t", "", "Template name (modern|classic|minimal|compact)")
	rootCmd.AddCommand(previewCmd)
}
