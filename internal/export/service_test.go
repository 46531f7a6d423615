package export

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/docparse/internal/core/confidence"
	"github.com/joseph-ayodele/docparse/internal/core/extract"
	"github.com/joseph-ayodele/docparse/internal/entity"
	"github.com/joseph-ayodele/docparse/internal/repository"
)

type fakeStore struct {
	extractions []*entity.Extraction
}

func (f *fakeStore) Save(ctx context.Context, e *entity.Extraction) error { return nil }
func (f *fakeStore) Get(ctx context.Context, id uuid.UUID) (*entity.Extraction, error) {
	return nil, nil
}
func (f *fakeStore) List(ctx context.Context, limit int) ([]*entity.Extraction, error) {
	if limit < len(f.extractions) {
		return f.extractions[:limit], nil
	}
	return f.extractions, nil
}

var _ repository.ExtractionStore = (*fakeStore)(nil)

func TestExportXLSX_WritesOneDocumentRowPerExtraction(t *testing.T) {
	unitPrice := 5.00
	store := &fakeStore{extractions: []*entity.Extraction{
		{
			ID: uuid.New(),
			Record: extract.Record{
				Supplier:    extract.Supplier{Name: "ACME Corp"},
				Transaction: extract.Transaction{InvoiceNumber: ptr("INV-1"), Currency: "USD"},
				Totals:      extract.Totals{GrandTotal: 10.00},
				Parts: []extract.Part{
					{ItemName: "Widget", Quantity: 2, UnitPrice: &unitPrice, TotalAmount: 10.00},
				},
			},
			Score: confidence.Score{Overall: 0.9},
		},
	}}

	svc := NewService(store, nil)
	data, err := svc.ExportXLSX(context.Background(), 10)
	if err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty XLSX bytes")
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to reopen generated workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 {
		t.Fatalf("got %d sheets, want 2", len(sheets))
	}

	supplierCell, err := f.GetCellValue("Documents", "C2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if supplierCell != "ACME Corp" {
		t.Errorf("Documents!C2 = %q, want ACME Corp", supplierCell)
	}

	itemCell, err := f.GetCellValue("LineItems", "B2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if itemCell != "Widget" {
		t.Errorf("LineItems!B2 = %q, want Widget", itemCell)
	}
}

func TestExportXLSX_EmptyStoreProducesHeaderOnlySheets(t *testing.T) {
	svc := NewService(&fakeStore{}, nil)
	data, err := svc.ExportXLSX(context.Background(), 10)
	if err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to reopen generated workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Documents")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("got %d rows, want 1 (header only)", len(rows))
	}
}

func TestTruncate_ShortStringUnchanged(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q, want short", got)
	}
}

func TestTruncate_LongStringGetsEllipsis(t *testing.T) {
	got := truncate("this is a very long item name indeed", 10)
	if len([]rune(got)) != 10 {
		t.Errorf("truncate result length = %d, want 10", len([]rune(got)))
	}
	if got[len(got)-3:] != "…" {
		t.Errorf("truncate = %q, want a trailing ellipsis", got)
	}
}

func ptr(s string) *string { return &s }
