// Package schema defines the data model of the bulk shipment template:
// the Shipments column table, the choice categories backing the
// dropdowns, and the sample records.
package schema

// Field describes one column on the Shipments sheet.
type Field struct {
	// Name is the header text in row 1.
	Name string
	// Width is the display width of the column in characters.
	Width float64
	// Choices is the key of the choice category constraining the column,
	// or empty for free-entry columns.
	Choices string
}

// Fields returns the Shipments columns in template order.
// Order is significant: dropdown wiring and the sample rows address
// columns by position.
func Fields() []Field {
	return []Field{
		{Name: "Client Email", Width: 20, Choices: CategoryClientEmails},
		{Name: "Recipient Name", Width: 20},
		{Name: "Recipient Phone", Width: 15},
		{Name: "Package Description", Width: 25, Choices: CategoryPackageDescriptions},
		{Name: "Package Value (EGP)", Width: 15, Choices: CategoryPackageValues},
		{Name: "From Street", Width: 20},
		{Name: "From Details", Width: 15},
		{Name: "From City", Width: 15, Choices: CategoryCities},
		{Name: "From Zone", Width: 15},
		{Name: "To Street", Width: 20},
		{Name: "To Details", Width: 15},
		{Name: "To City", Width: 15, Choices: CategoryCities},
		{Name: "To Zone", Width: 15},
		{Name: "Payment Method", Width: 15, Choices: CategoryPaymentMethods},
		{Name: "Amount to Collect", Width: 15},
		{Name: "Is Large Order", Width: 12, Choices: CategoryLargeOrderOptions},
		{Name: "Package Weight (kg)", Width: 15},
		{Name: "Package Dimensions (LxWxH cm)", Width: 25},
		{Name: "Notes", Width: 30},
	}
}
