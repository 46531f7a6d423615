package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/docparse/internal/export"
	"github.com/joseph-ayodele/docparse/internal/repository"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recent extractions to an XLSX workbook",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output path (default: export dir with a timestamped name)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	store, err := repository.OpenSQLite(cfg.Extraction.SQLiteHistoryPath, logger)
	if err != nil {
		return fmt.Errorf("open local history store: %w", err)
	}

	svc := export.NewService(store, logger)
	data, err := svc.ExportXLSX(cmd.Context(), cfg.Export.DefaultRowLimit)
	if err != nil {
		return fmt.Errorf("export xlsx: %w", err)
	}

	out := exportOut
	if out == "" {
		if err := os.MkdirAll(cfg.Export.OutputDir, 0o755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
		out = filepath.Join(cfg.Export.OutputDir, fmt.Sprintf("docparse-export-%s.xlsx", time.Now().UTC().Format("20060102T150405Z")))
	}

	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}

	logger.Info("export complete", "file", out)
	return nil
}
