package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/joseph-ayodele/docparse/constants"
	"github.com/joseph-ayodele/docparse/internal/core/confidence"
	"github.com/joseph-ayodele/docparse/internal/core/extract"
	"github.com/joseph-ayodele/docparse/internal/entity"
	"github.com/joseph-ayodele/docparse/internal/repository"
)

var (
	batchConcurrency int
	batchDocType     string
)

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Parse every document in a directory concurrently",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "number of documents to parse concurrently")
	batchCmd.Flags().StringVar(&batchDocType, "type", "", "document type hint applied to every file")
	rootCmd.AddCommand(batchCmd)
}

type batchResult struct {
	File       string           `json:"file"`
	Record     extract.Record   `json:"record,omitempty"`
	Confidence confidence.Score `json:"confidence,omitempty"`
	Error      string           `json:"error,omitempty"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	dir := args[0]
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read directory: %w", err)
	}

	var files []string
	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}
		ext := constants.NormalizeExt(filepath.Ext(ent.Name()))
		if _, ok := constants.AllowedExtensions[ext]; !ok && ext != "txt" {
			logger.Warn("skipping unsupported file extension", "file", ent.Name(), "ext", ext)
			continue
		}
		files = append(files, filepath.Join(dir, ent.Name()))
	}

	store, err := repository.OpenSQLite(cfg.Extraction.SQLiteHistoryPath, logger)
	if err != nil {
		logger.Warn("could not open local history store, skipping persistence", "error", err)
	}

	results := make([]batchResult, len(files))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(batchConcurrency)

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			raw, err := os.ReadFile(file)
			if err != nil {
				mu.Lock()
				results[i] = batchResult{File: file, Error: err.Error()}
				mu.Unlock()
				return nil
			}

			record := extract.Parse(string(raw), extract.Options{DocumentType: extract.DocumentType(batchDocType)})
			score := confidence.Compute(record, string(raw), 1.0, record.Metadata.DocumentType)
			record.Metadata.ConfidenceScore = score.Overall

			if store != nil {
				e := &entity.Extraction{
					ID:        uuid.New(),
					RawText:   string(raw),
					Record:    record,
					Score:     score,
					CreatedAt: time.Now().UTC(),
				}
				if err := store.Save(ctx, e); err != nil {
					logger.Warn("failed to persist batch extraction", "file", file, "error", err)
				}
			}

			mu.Lock()
			results[i] = batchResult{File: file, Record: record, Confidence: score}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var ok, failed int
	for _, r := range results {
		if r.Error != "" {
			failed++
		} else {
			ok++
		}
	}
	logger.Info("batch run complete", "total", len(results), "ok", ok, "failed", failed, "dir", strings.TrimSpace(dir))

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
