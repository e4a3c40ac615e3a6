package sheets

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// instructionsColWidth fits the longest instruction line without clipping.
const instructionsColWidth = 80

// WriteInstructions writes the human-readable instructions sheet into
// column A, one line per row. The title row and section headings carry
// the template's header colors; all cells wrap text.
func WriteInstructions(f *excelize.File) error {
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16, Color: headerFill},
		Alignment: &excelize.Alignment{WrapText: true},
	})
	if err != nil {
		return err
	}
	sectionStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: choiceFill},
		Alignment: &excelize.Alignment{WrapText: true},
	})
	if err != nil {
		return err
	}
	bodyStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true},
	})
	if err != nil {
		return err
	}

	if err := f.SetColWidth(Instructions, "A", "A", instructionsColWidth); err != nil {
		return err
	}

	for i, line := range instructionLines() {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(Instructions, cell, line); err != nil {
			return err
		}
		style := bodyStyle
		switch {
		case i == 0:
			style = titleStyle
		case strings.HasSuffix(line, ":") && !strings.HasPrefix(line, "•"):
			style = sectionStyle
		}
		if err := f.SetCellStyle(Instructions, cell, cell, style); err != nil {
			return err
		}
	}
	return nil
}

func instructionLines() []string {
	return []string{
		"FLASH EXPRESS BULK SHIPMENTS TEMPLATE",
		"",
		"INSTRUCTIONS:",
		"1. Use the 'Shipments' sheet to enter your bulk shipment data",
		"2. Most columns have dropdown menus - click the arrow to select from predefined options",
		"3. The 'Choices' sheet contains all the dropdown options - you can modify these as needed",
		"",
		"REQUIRED FIELDS:",
		"• Client Email - Must be a valid registered client email",
		"• Recipient Name - Full name of the person receiving the package",
		"• Recipient Phone - Phone number in format +201234567890",
		"• Package Description - Brief description of package contents",
		"• Package Value - Monetary value of the package in EGP",
		"• From/To Address Fields - Complete address information",
		"• Payment Method - COD, Transfer, or Wallet",
		"",
		"NOTES:",
		"• For COD shipments, 'Amount to Collect' = Package Value + Shipping Fee",
		"• For Transfer shipments, 'Amount to Collect' can be 0 if no additional amount needed",
		"• For Wallet shipments, 'Amount to Collect' should typically be 0",
		"• Is Large Order: TRUE for packages requiring special handling",
		"• Package Weight in kilograms (e.g., 0.5, 1.2, 2.0)",
		"• Package Dimensions in LxWxH format in centimeters (e.g., 15x10x5)",
		"",
		"AFTER COMPLETING:",
		"1. Save this file",
		"2. Upload it to the Flash Express bulk shipment import feature",
		"3. Review the preview before confirming the import",
		"",
		"For support, contact: admin@shuhna.net",
	}
}
