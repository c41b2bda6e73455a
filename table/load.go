package table

import (
	"path/filepath"
	"strings"
)

// Load picks the reader by file extension: .xlsx and .xlsm go to LoadXLSX,
// everything else is treated as delimited text.
func Load(path string, opts ReadOptions) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return LoadXLSX(path, opts)
	default:
		return LoadCSV(path, opts)
	}
}
