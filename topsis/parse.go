package topsis

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CLI symbols for the two directions.
const (
	SymbolBeneficial  = "+"
	SymbolDetrimental = "-"
)

// listSep separates values in the CLI's weight and impact arguments.
const listSep = ","

// ParseImpact converts a single symbol ('+' or '-', surrounding spaces ignored).
// Errors: ErrInvalidDirection.
func ParseImpact(s string) (Impact, error) {
	switch strings.TrimSpace(s) {
	case SymbolBeneficial:
		return Beneficial, nil
	case SymbolDetrimental:
		return Detrimental, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidDirection)
	}
}

// ParseImpacts converts a comma-separated list such as "+,-,+".
// The first invalid symbol aborts the whole parse (no partial result).
func ParseImpacts(s string) ([]Impact, error) {
	parts := strings.Split(s, listSep)
	out := make([]Impact, len(parts))
	for i, p := range parts {
		imp, err := ParseImpact(p)
		if err != nil {
			return nil, fmt.Errorf("impact %d: %w", i+1, err)
		}
		out[i] = imp
	}

	return out, nil
}

// MustParseImpacts is like ParseImpacts but panics on error.
// Intended for literals in tests and examples.
func MustParseImpacts(s string) []Impact {
	out, err := ParseImpacts(s)
	if err != nil {
		panic(err)
	}

	return out
}

// ParseWeights converts a comma-separated list such as "1,0.5,2".
// Every weight must parse as a finite positive float.
// Errors: ErrInvalidWeight (with the 1-based position).
func ParseWeights(s string) ([]float64, error) {
	parts := strings.Split(s, listSep)
	out := make([]float64, len(parts))
	for i, p := range parts {
		w, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("weight %d (%q): %w", i+1, p, ErrInvalidWeight)
		}
		if err = validateWeight(w); err != nil {
			return nil, fmt.Errorf("weight %d (%q): %w", i+1, p, err)
		}
		out[i] = w
	}

	return out, nil
}

// validateWeight enforces finite and > 0.
func validateWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
		return ErrInvalidWeight
	}

	return nil
}
