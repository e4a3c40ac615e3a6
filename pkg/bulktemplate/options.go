// Package bulktemplate builds the Flash Express bulk shipment entry
// workbook: a data-entry sheet with dropdown-constrained columns, the
// choice lists backing those dropdowns, and a usage instructions sheet.
package bulktemplate

// DefaultEntryRows is the last Shipments row covered by dropdown
// validation when no override is given.
const DefaultEntryRows = 1000

// Options configures template construction.
type Options struct {
	// EntryRows is the last Shipments row covered by dropdown validation.
	// Zero means DefaultEntryRows. Rows past it are unconstrained.
	EntryRows int
	// IncludeSamples controls the example rows on the Shipments sheet.
	// If nil, defaults to true.
	IncludeSamples *bool
	// IncludeInstructions controls the Instructions sheet.
	// If nil, defaults to true.
	IncludeInstructions *bool
}

// DefaultOptions returns default construction options.
func DefaultOptions() Options {
	return Options{
		EntryRows: DefaultEntryRows,
	}
}

// LastEntryRow returns the last Shipments row covered by dropdown
// validation.
func (o Options) LastEntryRow() int {
	if o.EntryRows > 0 {
		return o.EntryRows
	}
	return DefaultEntryRows
}

// ShouldIncludeSamples returns whether to write the example rows.
func (o Options) ShouldIncludeSamples() bool {
	if o.IncludeSamples != nil {
		return *o.IncludeSamples
	}
	return true
}

// ShouldIncludeInstructions returns whether to write the Instructions
// sheet.
func (o Options) ShouldIncludeInstructions() bool {
	if o.IncludeInstructions != nil {
		return *o.IncludeInstructions
	}
	return true
}
