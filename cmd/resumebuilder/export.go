package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/render"
)

var exportOpts struct {
	configPath string
	output     string
	template   string
	nameHint   string
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the stored resume as an A4 PDF",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := resolveConfig(exportOpts.configPath)
		if err != nil {
			return err
		}
		if exportOpts.template != "" {
			cfg.Template = exportOpts.template
		}

		store, cleanup, err := openStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		doc := store.Document()
		html, err := render.Render(doc)
		if err != nil {
			return err
		}

		exporter := export.NewExporter(
			export.WithChromePath(cfg.ChromePath),
			export.WithTimeout(cfg.ExportTimeoutDuration()),
		)
		artifact, err := exporter.Export(cmd.Context(), doc, html, exportOpts.nameHint)
		if err != nil {
			return err
		}

		out := exportOpts.output
		if out == "" {
			out = artifact.Filename
		}
		if err := os.WriteFile(out, artifact.PDF, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "wrote %s (%d pages, %d bytes)\n", out, artifact.Pages, len(artifact.PDF))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOpts.configPath, "config", "c", "", "Path to JSON config file")
	exportCmd.Flags().StringVarP(&exportOpts.output, "output", "o", "", "Output file (defaults to the derived artifact name)")
	exportCmd.Flags().StringVarP(&exportOpts.template, "template", "t", "", "Template name (modern|classic|minimal|compact)")
	exportCmd.Flags().StringVar(&exportOpts.nameHint, "name", "", "File name hint overriding the derived artifact name")
	rootCmd.AddCommand(exportCmd)
}
