// Command topsis scores the alternatives of a CSV or XLSX decision table with
// TOPSIS and writes the table back with score and rank columns appended.
//
// Usage:
//
//	topsis <input_file> <weights> <impacts> <output_file> [flags]
//	topsis data.csv "1,1,1,2" "+,+,-,+" result.csv
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
