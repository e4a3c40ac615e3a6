package sheets

import (
	"fmt"

	"github.com/shuhna/bulktemplate/pkg/bulktemplate/schema"
	"github.com/xuri/excelize/v2"
)

// FirstEntryRow is the first data-entry row on the Shipments sheet.
const FirstEntryRow = 2

// Rejection message shown when a manual entry is not in the list.
const (
	validationErrorTitle = "Invalid Entry"
	validationErrorBody  = "Please select a value from the dropdown list"
)

// WriteDropdowns applies a list validation to every constrained Shipments
// column, covering rows FirstEntryRow..lastRow inclusive. Each rule's
// source range is computed from the bound category's position and value
// count on the Choices sheet. Rows past lastRow stay unconstrained; the
// template is sized for expected bulk-entry volume.
func WriteDropdowns(f *excelize.File, lastRow int) error {
	for i, field := range schema.Fields() {
		if field.Choices == "" {
			continue
		}
		category, categoryCol, ok := schema.CategoryByKey(field.Choices)
		if !ok {
			return fmt.Errorf("field %q: unknown choice category %q", field.Name, field.Choices)
		}
		source, err := category.SourceRange(categoryCol)
		if err != nil {
			return err
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}

		dv := excelize.NewDataValidation(true)
		dv.Sqref = fmt.Sprintf("%s%d:%s%d", col, FirstEntryRow, col, lastRow)
		dv.SetSqrefDropList(Choices + "!" + source)
		dv.SetError(excelize.DataValidationErrorStyleStop, validationErrorTitle, validationErrorBody)
		if err := f.AddDataValidation(Shipments, dv); err != nil {
			return err
		}
	}
	return nil
}
