package sheets

import (
	"strings"
	"testing"

	"github.com/shuhna/bulktemplate/pkg/bulktemplate/schema"
	"github.com/xuri/excelize/v2"
)

func newWorkbook(t *testing.T) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	t.Cleanup(func() { f.Close() })
	for _, name := range []string{Shipments, Choices, Instructions} {
		if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("NewSheet(%q) failed: %v", name, err)
		}
	}
	return f
}

func TestWriteShipments(t *testing.T) {
	f := newWorkbook(t)

	if err := WriteShipments(f, true); err != nil {
		t.Fatalf("WriteShipments failed: %v", err)
	}

	value, err := f.GetCellValue(Shipments, "A1")
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	if value != "Client Email" {
		t.Errorf("Expected A1 'Client Email', got %q", value)
	}

	// Sample rows land at rows 2-3.
	value, err = f.GetCellValue(Shipments, "N2")
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	if value != "COD" {
		t.Errorf("Expected N2 'COD', got %q", value)
	}

	width, err := f.GetColWidth(Shipments, "S")
	if err != nil {
		t.Fatalf("GetColWidth failed: %v", err)
	}
	if width != 30 {
		t.Errorf("Expected Notes column width 30, got %v", width)
	}
}

func TestWriteShipmentsWithoutSamples(t *testing.T) {
	f := newWorkbook(t)

	if err := WriteShipments(f, false); err != nil {
		t.Fatalf("WriteShipments failed: %v", err)
	}

	rows, err := f.GetRows(Shipments)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("Expected headers only, got %d rows", len(rows))
	}
}

func TestWriteChoices(t *testing.T) {
	f := newWorkbook(t)

	if err := WriteChoices(f); err != nil {
		t.Fatalf("WriteChoices failed: %v", err)
	}

	rows, err := f.GetRows(Choices)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}

	categories := schema.Categories()
	if len(rows[0]) != len(categories) {
		t.Fatalf("Expected %d category headers, got %d", len(categories), len(rows[0]))
	}
	// Longest category bounds the populated height.
	if len(rows) != 26 {
		t.Errorf("Expected 26 populated rows, got %d", len(rows))
	}

	value, err := f.GetCellValue(Choices, "C11")
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	if value != "Ismailia" {
		t.Errorf("Expected C11 'Ismailia', got %q", value)
	}
}

func TestWriteDropdowns(t *testing.T) {
	f := newWorkbook(t)

	if err := WriteChoices(f); err != nil {
		t.Fatalf("WriteChoices failed: %v", err)
	}
	if err := WriteDropdowns(f, 1000); err != nil {
		t.Fatalf("WriteDropdowns failed: %v", err)
	}

	validations, err := f.GetDataValidations(Shipments)
	if err != nil {
		t.Fatalf("GetDataValidations failed: %v", err)
	}
	if len(validations) != 7 {
		t.Fatalf("Expected 7 validations, got %d", len(validations))
	}

	for _, dv := range validations {
		col := strings.TrimRight(strings.SplitN(dv.Sqref, ":", 2)[0], "0123456789")
		if dv.Sqref != col+"2:"+col+"1000" {
			t.Errorf("Expected sqref covering rows 2-1000, got %q", dv.Sqref)
		}
		if dv.Error == nil || *dv.Error != "Please select a value from the dropdown list" {
			t.Errorf("Unexpected rejection message %v for %q", dv.Error, dv.Sqref)
		}
	}
}

func TestWriteInstructions(t *testing.T) {
	f := newWorkbook(t)

	if err := WriteInstructions(f); err != nil {
		t.Fatalf("WriteInstructions failed: %v", err)
	}

	value, err := f.GetCellValue(Instructions, "A1")
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	if value != "FLASH EXPRESS BULK SHIPMENTS TEMPLATE" {
		t.Errorf("Expected title in A1, got %q", value)
	}

	width, err := f.GetColWidth(Instructions, "A")
	if err != nil {
		t.Fatalf("GetColWidth failed: %v", err)
	}
	if width != 80 {
		t.Errorf("Expected column width 80, got %v", width)
	}

	rows, err := f.GetRows(Instructions)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != len(instructionLines()) {
		t.Errorf("Expected %d instruction rows, got %d", len(instructionLines()), len(rows))
	}
}
