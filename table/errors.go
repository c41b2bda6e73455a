package table

import "errors"

// Sentinel errors. Call sites add context (file, row, column) via %w.
var (
	// ErrTooFewColumns indicates fewer than three columns (label + two criteria).
	ErrTooFewColumns = errors.New("table: input must have at least 3 columns")

	// ErrNoRows indicates a missing header or a header without data rows.
	ErrNoRows = errors.New("table: input has no data rows")

	// ErrNonNumeric indicates a criteria cell that is not a finite number.
	ErrNonNumeric = errors.New("table: criteria cell is not a finite number")

	// ErrRaggedRow indicates a record whose field count differs from the header.
	ErrRaggedRow = errors.New("table: record length differs from header")

	// ErrUnknownEncoding indicates an input encoding name that is not supported.
	ErrUnknownEncoding = errors.New("table: unsupported input encoding")

	// ErrSheetNotFound indicates a configured XLSX sheet that does not exist.
	ErrSheetNotFound = errors.New("table: sheet not found")

	// ErrResultMismatch indicates a score/rank vector whose length differs from the record count.
	ErrResultMismatch = errors.New("table: result length does not match record count")
)
