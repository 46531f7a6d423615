package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/docparse/internal/repository"
)

// Service is a tiny façade over the extraction store that produces XLSX
// bytes for exports.
type Service struct {
	store  repository.ExtractionStore
	logger *slog.Logger
}

func NewService(store repository.ExtractionStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// ExportXLSX returns an XLSX workbook (as bytes) covering the most recent
// limit extractions: one "Documents" row per record and one "LineItems" row
// per part.
func (s *Service) ExportXLSX(ctx context.Context, limit int) ([]byte, error) {
	start := time.Now()

	extractions, err := s.store.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list extractions: %w", err)
	}

	f := excelize.NewFile()
	const docSheet = "Documents"
	const itemSheet = "LineItems"
	f.SetSheetName(f.GetSheetName(0), docSheet)
	if _, err := f.NewSheet(itemSheet); err != nil {
		return nil, err
	}

	docHeaders := []string{
		"ID", "Document Type", "Supplier", "Invoice Number", "Invoice Date",
		"Currency", "Grand Total", "Confidence", "Created At",
	}
	for i, h := range docHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(docSheet, cell, h)
	}

	itemHeaders := []string{"Document ID", "Item", "Quantity", "Unit Price", "Total Amount"}
	for i, h := range itemHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(itemSheet, cell, h)
	}

	docRow, itemRow := 2, 2
	for _, e := range extractions {
		rec := e.Record

		invoiceNumber := ""
		if rec.Transaction.InvoiceNumber != nil {
			invoiceNumber = *rec.Transaction.InvoiceNumber
		}
		invoiceDate := ""
		if rec.Transaction.InvoiceDate != nil {
			invoiceDate = *rec.Transaction.InvoiceDate
		}

		writeDoc := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, docRow)
			_ = f.SetCellValue(docSheet, cell, v)
		}
		writeDoc(1, e.ID.String())
		writeDoc(2, string(rec.Metadata.DocumentType))
		writeDoc(3, truncate(rec.Supplier.Name, 60))
		writeDoc(4, invoiceNumber)
		writeDoc(5, invoiceDate)
		writeDoc(6, rec.Transaction.Currency)
		writeDoc(7, rec.Totals.GrandTotal)
		writeDoc(8, e.Score.Overall)
		writeDoc(9, e.CreatedAt.Format("2006-01-02 15:04:05"))
		docRow++

		for _, p := range rec.Parts {
			writeItem := func(col int, v any) {
				cell, _ := excelize.CoordinatesToCellName(col, itemRow)
				_ = f.SetCellValue(itemSheet, cell, v)
			}
			writeItem(1, e.ID.String())
			writeItem(2, truncate(p.ItemName, 60))
			writeItem(3, p.Quantity)
			if p.UnitPrice != nil {
				writeItem(4, *p.UnitPrice)
			}
			writeItem(5, p.TotalAmount)
			itemRow++
		}
	}

	_ = f.SetColWidth(docSheet, "A", "A", 38)
	_ = f.SetColWidth(docSheet, "C", "C", 30)
	_ = f.SetColWidth(itemSheet, "A", "A", 38)
	_ = f.SetColWidth(itemSheet, "B", "B", 40)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"documents", len(extractions),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
