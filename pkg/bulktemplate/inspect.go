package bulktemplate

import (
	"fmt"
	"os"

	"github.com/shuhna/bulktemplate/pkg/bulktemplate/sheets"
	"github.com/xuri/excelize/v2"
)

// Summary describes the observable structure of a template workbook.
type Summary struct {
	// Sheets lists the sheet names in tab order.
	Sheets []string
	// ActiveSheet is the sheet selected when the workbook opens.
	ActiveSheet string
	// Headers holds the Shipments row 1 values.
	Headers []string
	// DataRows is the number of populated Shipments rows below the
	// headers.
	DataRows int
	// ChoiceRows maps each Choices column header to its populated value
	// count.
	ChoiceRows map[string]int
	// Validations is the number of validation rules on the Shipments
	// sheet.
	Validations int
}

// Inspect reopens a generated template and summarizes its structure.
func Inspect(path string) (*Summary, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s := &Summary{
		Sheets:      f.GetSheetList(),
		ActiveSheet: f.GetSheetName(f.GetActiveSheetIndex()),
		ChoiceRows:  make(map[string]int),
	}

	rows, err := f.GetRows(sheets.Shipments)
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 {
		s.Headers = rows[0]
		s.DataRows = len(rows) - 1
	}

	choiceRows, err := f.GetRows(sheets.Choices)
	if err != nil {
		return nil, err
	}
	if len(choiceRows) > 0 {
		for col, header := range choiceRows[0] {
			if header == "" {
				continue
			}
			count := 0
			for _, row := range choiceRows[1:] {
				if col < len(row) && row[col] != "" {
					count++
				}
			}
			s.ChoiceRows[header] = count
		}
	}

	validations, err := f.GetDataValidations(sheets.Shipments)
	if err != nil {
		return nil, err
	}
	s.Validations = len(validations)

	return s, nil
}
