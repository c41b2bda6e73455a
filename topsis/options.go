package topsis

import "github.com/katalvlaran/lvtopsis/matrix"

// Policy selects how numerical degeneracies are handled.
//
//   - Strict     — reject an all-zero column (ErrDegenerateColumn) before dividing
//     and a zero distance-sum row (ErrDegenerateRow); reject NaN/Inf input and
//     norms or distances beyond the float64 range (ErrOverflow).
//   - Permissive — compute through: zero norms and zero distance-sums surface as
//     NaN scores, exactly as a vectorised numpy implementation would.
type Policy int

const (
	// Strict fails fast on the first degenerate column or row. Default.
	Strict Policy = iota

	// Permissive propagates NaN instead of failing.
	Permissive
)

// String returns the configuration name of the policy.
func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Permissive:
		return "permissive"
	default:
		return "unknown"
	}
}

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the resolved configuration of one scoring call.
type Options struct {
	Policy Policy
}

// DefaultOptions returns the documented defaults (Strict).
func DefaultOptions() Options { return Options{Policy: Strict} }

// WithStrict selects the Strict policy.
func WithStrict() Option { return func(o *Options) { o.Policy = Strict } }

// WithPermissive selects the Permissive policy.
func WithPermissive() Option { return func(o *Options) { o.Policy = Permissive } }

// WithPolicy selects p directly; handy when the policy comes from configuration.
func WithPolicy(p Policy) Option { return func(o *Options) { o.Policy = p } }

// gatherOptions applies setters over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// matrixPolicy maps the scoring policy onto the matrix numeric policy.
func (o Options) matrixPolicy() matrix.Option {
	if o.Policy == Permissive {
		return matrix.WithNoValidateNaNInf()
	}

	return matrix.WithValidateNaNInf()
}
