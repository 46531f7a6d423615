// Package cli implements the docparse command-line tree: run a single
// document through the core parser, batch a directory, or serve the HTTP
// API.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/docparse/internal/config"
)

var logger *slog.Logger
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "docparse",
	Short: "Parse OCR text from business documents into structured records",
}

func init() {
	cobra.OnInitialize(func() {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
		slog.SetDefault(logger)
		cfg = config.LoadConfig()
	})
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
