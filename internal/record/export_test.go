package record

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExportXLSX(t *testing.T) {
	out, err := ExportXLSX(sampleRecord(), nil)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer func() {
		_ = f.Close()
	}()

	if v, _ := f.GetCellValue("Tender", "A1"); v != "Section" {
		t.Errorf("A1: got %q", v)
	}
	if v, _ := f.GetCellValue("Tender", "B2"); v != "reference_number" {
		t.Errorf("B2: got %q", v)
	}
	if v, _ := f.GetCellValue("Tender", "C2"); v != "IITD/2025/ET/042" {
		t.Errorf("C2: got %q", v)
	}

	rows, err := f.GetRows("Tender")
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	// Header plus one row per record field.
	if len(rows) != 15 {
		t.Errorf("expected 15 rows, got %d", len(rows))
	}
}
