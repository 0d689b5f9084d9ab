package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/typeset"
)

var (
	outputPath    string
	watermarkPath string
)

var renderCmd = &cobra.Command{
	Use:   "render <input>",
	Short: "Render a markup file to PDF",
	Long: `Render reads a markup file (.docx archives are unwrapped, anything
else is treated as a raw markup buffer) and writes a paginated,
watermarked PDF.

Watermark settings come from a YAML file, for example:

  text: CONFIDENTIAL
  template: draft
  opacity: 30
  fontSize: medium
  color: "#1e40af"
  position:
    type: multiple
  transparency:
    type: fade
    value: 50
  pages:
    range: odd`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]
		out := outputPath
		if out == "" {
			out = replaceExt(input, ".pdf")
		}

		job := typeset.FromFile(input).Progress(func(stage string, percent int) {
			slog.Debug("progress", "stage", stage, "percent", percent)
		})

		if watermarkPath != "" {
			settings, err := loadWatermarkConfig(watermarkPath)
			if err != nil {
				return fmt.Errorf("load watermark config: %w", err)
			}
			job = job.Watermark(settings)
		}

		pdf, err := job.Render()
		if err != nil {
			return fmt.Errorf("render %s: %w", input, err)
		}

		if err := os.WriteFile(out, pdf, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		slog.Info("rendered", "input", input, "output", out, "bytes", len(pdf))
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output PDF path (default: input with .pdf extension)")
	renderCmd.Flags().StringVarP(&watermarkPath, "watermark", "w", "", "watermark settings YAML file")
}

func replaceExt(path, ext string) string {
	if old := filepath.Ext(path); old != "" {
		return strings.TrimSuffix(path, old) + ext
	}
	return path + ext
}
