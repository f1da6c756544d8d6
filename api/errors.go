package api

import (
	"errors"
	"fmt"
)

var (
	// ErrPageTooSmall is returned when not even one content row fits below the column header.
	ErrPageTooSmall = errors.New("page too small")
	// ErrRowColumnMismatch is returned when a row's cell count differs from the column count.
	ErrRowColumnMismatch = errors.New("row/column mismatch")
	// ErrInvalidTable is returned for any other table configuration that cannot be laid out.
	ErrInvalidTable = errors.New("invalid table")
)

// ConfigError describes an invalid table setting.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid table: %s %s", e.Field, e.Reason)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidTable
}

// RowError reports the first row whose cell count does not match the columns.
type RowError struct {
	Row     int
	Cells   int
	Columns int
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d has %d cells, expected %d", e.Row, e.Cells, e.Columns)
}

func (e *RowError) Is(target error) bool {
	return target == ErrRowColumnMismatch
}

// DocumentError wraps a failure from the underlying document library.
type DocumentError struct {
	Op   string
	Path string
	Err  error
}

func (e *DocumentError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("document %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("document %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}
