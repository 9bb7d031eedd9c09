package exdash

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist or cannot be read.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid spreadsheet.
var ErrInvalidFormat = errors.New("invalid spreadsheet format")

// ErrColumnNotFound indicates a selected column is absent from the table.
var ErrColumnNotFound = errors.New("column not found")

// ErrColumnType indicates a selected column has the wrong type class.
var ErrColumnType = errors.New("unexpected column type")

// LoadError represents an error while loading a spreadsheet.
type LoadError struct {
	Path  string
	Stage string // "open", "sheet", "range", "cells", "table"
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(path, stage string, err error) *LoadError {
	return &LoadError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}

// ColumnError represents a column selection that does not match the table.
type ColumnError struct {
	Column string
	Role   string // "numeric", "categorical", "datetime"
	Err    error
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("%s column %q: %v", e.Role, e.Column, e.Err)
}

func (e *ColumnError) Unwrap() error {
	return e.Err
}

// NewColumnError creates a new ColumnError.
func NewColumnError(column, role string, err error) *ColumnError {
	return &ColumnError{
		Column: column,
		Role:   role,
		Err:    err,
	}
}
