// Package sheets writes the individual worksheets of the bulk shipment
// template into an excelize workbook.
package sheets

import (
	"github.com/shuhna/bulktemplate/pkg/bulktemplate/schema"
	"github.com/xuri/excelize/v2"
)

// Template sheet names.
const (
	Shipments    = "Shipments"
	Choices      = "Choices"
	Instructions = "Instructions"
)

// Fill and font colors shared across the template.
const (
	headerFill = "366092"
	choiceFill = "70AD47"
	fontWhite  = "FFFFFF"
)

// WriteShipments writes the data-entry sheet: styled column headers in
// row 1, per-column display widths, and, when includeSamples is true,
// the example records in rows 2-3.
func WriteShipments(f *excelize.File, includeSamples bool) error {
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: fontWhite},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFill}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	for i, field := range schema.Fields() {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		cell := col + "1"
		if err := f.SetCellValue(Shipments, cell, field.Name); err != nil {
			return err
		}
		if err := f.SetCellStyle(Shipments, cell, cell, style); err != nil {
			return err
		}
		if err := f.SetColWidth(Shipments, col, col, field.Width); err != nil {
			return err
		}
	}

	if !includeSamples {
		return nil
	}
	for r, record := range schema.SampleRows() {
		for c, value := range record {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(Shipments, cell, value); err != nil {
				return err
			}
		}
	}
	return nil
}
