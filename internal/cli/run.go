package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/docparse/internal/core/confidence"
	"github.com/joseph-ayodele/docparse/internal/core/extract"
	"github.com/joseph-ayodele/docparse/internal/entity"
	"github.com/joseph-ayodele/docparse/internal/repository"
)

var (
	runDocType  string
	runLanguage string
	runOCRConf  float64
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Parse a single OCR text file into a Record",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&runDocType, "type", "", "document type hint")
	runCmd.Flags().StringVar(&runLanguage, "language", "", "language hint (BCP-47)")
	runCmd.Flags().Float64Var(&runOCRConf, "ocr-confidence", 1.0, "OCR provider confidence in [0,1]")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read input file: %w", err)
	}

	record := extract.Parse(string(raw), extract.Options{
		DocumentType: extract.DocumentType(runDocType),
		Language:     runLanguage,
	})
	score := confidence.Compute(record, string(raw), runOCRConf, record.Metadata.DocumentType)
	record.Metadata.ConfidenceScore = score.Overall
	if err := extract.ValidateRecord(record); err != nil {
		logger.Warn("assembled record failed schema validation", "error", err)
	}

	store, err := repository.OpenSQLite(cfg.Extraction.SQLiteHistoryPath, logger)
	if err != nil {
		logger.Warn("could not open local history store, skipping persistence", "error", err)
	} else {
		e := &entity.Extraction{
			ID:        uuid.New(),
			RawText:   string(raw),
			Record:    record,
			Score:     score,
			CreatedAt: time.Now().UTC(),
		}
		if err := store.Save(context.Background(), e); err != nil {
			logger.Warn("failed to persist extraction to history store", "error", err)
		}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{"record": record, "confidence": score})
}
