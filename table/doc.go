// Package table loads decision tables from CSV or XLSX files and writes
// scored tables back as delimited text.
//
// A decision table has a header row followed by one record per alternative.
// The first column labels the alternative (kept verbatim, never parsed); every
// remaining column is a numeric criterion:
//
//	Model,Price,Storage,Camera,Looks
//	M1,250,16,12,5
//	M2,200,16,8,3
//
// Loading converts the criteria block once into a *matrix.Dense; the raw cells
// are kept so that writing reproduces the input unchanged plus two appended
// columns (score and rank).
//
// Input decoding: utf-8 (BOM stripped), iso-8859-1/latin1 and windows-1252.
// Output is always UTF-8.
//
// Writes are atomic: SaveCSV writes a temporary file next to the destination
// and renames it, so a failure never leaves a partial output file.
package table
