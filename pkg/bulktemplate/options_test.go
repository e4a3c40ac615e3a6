package bulktemplate

import (
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.LastEntryRow() != DefaultEntryRows {
		t.Errorf("Expected last entry row %d, got %d", DefaultEntryRows, opts.LastEntryRow())
	}
	if !opts.ShouldIncludeSamples() {
		t.Error("Expected samples included by default")
	}
	if !opts.ShouldIncludeInstructions() {
		t.Error("Expected instructions included by default")
	}
}

func TestOptionsOverrides(t *testing.T) {
	include := false

	opts := Options{
		EntryRows:           500,
		IncludeSamples:      &include,
		IncludeInstructions: &include,
	}

	if opts.LastEntryRow() != 500 {
		t.Errorf("Expected last entry row 500, got %d", opts.LastEntryRow())
	}
	if opts.ShouldIncludeSamples() {
		t.Error("Expected samples excluded")
	}
	if opts.ShouldIncludeInstructions() {
		t.Error("Expected instructions excluded")
	}
}

func TestOptionsZeroEntryRows(t *testing.T) {
	var opts Options

	if opts.LastEntryRow() != DefaultEntryRows {
		t.Errorf("Expected zero EntryRows to fall back to %d, got %d", DefaultEntryRows, opts.LastEntryRow())
	}
}
