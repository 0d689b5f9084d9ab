package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "typeset",
	Short: "Turn structured markup into paginated, watermarked PDFs",
	Long: `Typeset renders structured markup (WordprocessingML, HTML or plain
text) into a paginated PDF with configurable watermarks.

The pipeline builds a content model from the markup, estimates element
footprints, paginates with scored break points, and composites a
watermark onto each finished page. Faulty input never aborts a run: the
output degrades to a one-page processing notice that still carries the
configured watermark.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	}

	rootCmd.AddCommand(renderCmd)
}
