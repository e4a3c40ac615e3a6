package bulktemplate

import (
	"fmt"

	"github.com/shuhna/bulktemplate/pkg/bulktemplate/sheets"
	"github.com/xuri/excelize/v2"
)

// DefaultFilename is the artifact name written when no output path is
// given.
const DefaultFilename = "Flash_Express_Bulk_Shipments_Template.xlsx"

// defaultSheet is the sheet excelize seeds into a new workbook.
const defaultSheet = "Sheet1"

// Build assembles the template workbook in memory: the Shipments,
// Choices, and Instructions sheets, dropdown wiring between the first
// two, and Shipments left as the active sheet. The caller owns the
// returned file and is responsible for closing it.
func Build(opts Options) (*excelize.File, error) {
	f := excelize.NewFile()

	names := []string{sheets.Shipments, sheets.Choices}
	if opts.ShouldIncludeInstructions() {
		names = append(names, sheets.Instructions)
	}
	for _, name := range names {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, NewBuildError(name, "create", err)
		}
	}

	if err := sheets.WriteShipments(f, opts.ShouldIncludeSamples()); err != nil {
		f.Close()
		return nil, NewBuildError(sheets.Shipments, "headers", err)
	}
	if err := sheets.WriteChoices(f); err != nil {
		f.Close()
		return nil, NewBuildError(sheets.Choices, "choices", err)
	}
	if err := sheets.WriteDropdowns(f, opts.LastEntryRow()); err != nil {
		f.Close()
		return nil, NewBuildError(sheets.Shipments, "dropdowns", err)
	}
	if opts.ShouldIncludeInstructions() {
		if err := sheets.WriteInstructions(f); err != nil {
			f.Close()
			return nil, NewBuildError(sheets.Instructions, "instructions", err)
		}
	}

	if err := f.DeleteSheet(defaultSheet); err != nil {
		f.Close()
		return nil, NewBuildError(defaultSheet, "finalize", err)
	}
	index, err := f.GetSheetIndex(sheets.Shipments)
	if err != nil {
		f.Close()
		return nil, NewBuildError(sheets.Shipments, "finalize", err)
	}
	f.SetActiveSheet(index)

	return f, nil
}

// Save serializes the workbook to path.
func Save(f *excelize.File, path string) error {
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}
	return nil
}
