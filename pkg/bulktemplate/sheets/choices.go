package sheets

import (
	"github.com/shuhna/bulktemplate/pkg/bulktemplate/schema"
	"github.com/xuri/excelize/v2"
)

// choiceColWidth is the display width shared by every category column.
const choiceColWidth = 25

// WriteChoices writes the choice-lists sheet: one column per category in
// schema order, styled header in row 1, values filling rows 2..N+1 with
// no gaps.
func WriteChoices(f *excelize.File) error {
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: fontWhite},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{choiceFill}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}

	for i, category := range schema.Categories() {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		cell := col + "1"
		if err := f.SetCellValue(Choices, cell, category.Header()); err != nil {
			return err
		}
		if err := f.SetCellStyle(Choices, cell, cell, style); err != nil {
			return err
		}

		for j, value := range category.Values {
			cell, err := excelize.CoordinatesToCellName(i+1, j+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(Choices, cell, value); err != nil {
				return err
			}
		}

		if err := f.SetColWidth(Choices, col, col, choiceColWidth); err != nil {
			return err
		}
	}
	return nil
}
