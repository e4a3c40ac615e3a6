package bulktemplate

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the workbook to inspect does not exist.
var ErrFileNotFound = errors.New("file not found")

// BuildError represents a failure while assembling one sheet of the
// template.
type BuildError struct {
	SheetName string
	Component string // "create", "headers", "choices", "dropdowns", "instructions", "finalize"
	Err       error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// NewBuildError creates a new BuildError.
func NewBuildError(sheetName, component string, err error) *BuildError {
	return &BuildError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
