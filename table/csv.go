package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// LoadCSV opens path and reads it with ReadCSV.
func LoadCSV(path string, opts ReadOptions) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open CSV file: %w", err)
	}
	defer file.Close()

	t, err := ReadCSV(file, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// ReadCSV decodes r, reads the header and every record, and validates the table.
// Blank lines are skipped; quoted fields follow RFC 4180.
func ReadCSV(r io.Reader, opts ReadOptions) (*Table, error) {
	opts = opts.withDefaults()
	dec, err := decodeReader(r, opts.Encoding)
	if err != nil {
		return nil, err
	}

	csvReader := csv.NewReader(dec)
	csvReader.Comma = opts.Delimiter
	csvReader.FieldsPerRecord = -1 // width is checked by build with a row number

	header, err := csvReader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("missing header: %w", ErrNoRows)
	}
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	var rows [][]string
	for {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV row: %w", err)
		}
		rows = append(rows, record)
	}

	return build(header, rows)
}
