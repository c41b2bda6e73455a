// Package app wires the loader, the scorer and the writer into one run.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvtopsis/config"
	"github.com/katalvlaran/lvtopsis/table"
	"github.com/katalvlaran/lvtopsis/topsis"
)

// previewRows is how many input records are logged at debug level.
const previewRows = 5

// Request carries the four positional CLI arguments.
type Request struct {
	InputPath  string
	Weights    string // comma-separated, e.g. "1,1,2"
	Impacts    string // comma-separated '+'/'-', e.g. "+,-,+"
	OutputPath string
}

// Summary describes a completed run.
type Summary struct {
	RunID      string
	Rows       int
	Criteria   int
	Best       string // label of the rank-1 alternative
	BestScore  float64
	OutputPath string
	Elapsed    time.Duration
}

// Run parses the request, scores the input table and writes the output file.
//
// The logger is taken from ctx (zerolog.Ctx); every event carries a fresh
// run_id. ctx is checked between stages; a cancelled or failed run never
// leaves an output file behind.
func Run(ctx context.Context, cfg *config.Config, req Request) (*Summary, error) {
	start := time.Now()
	runID := uuid.NewString()
	log := zerolog.Ctx(ctx).With().Str("run_id", runID).Logger()

	policy, err := cfg.Policy()
	if err != nil {
		return nil, err
	}
	weights, err := topsis.ParseWeights(req.Weights)
	if err != nil {
		return nil, fmt.Errorf("weights: %w", err)
	}
	impacts, err := topsis.ParseImpacts(req.Impacts)
	if err != nil {
		return nil, fmt.Errorf("impacts: %w", err)
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	log.Info().Str("file", req.InputPath).Msg("reading input")
	t, err := table.Load(req.InputPath, cfg.ReadOptions())
	if err != nil {
		return nil, fmt.Errorf("load input: %w", err)
	}
	log.Info().Strs("columns", t.Header).Int("rows", t.Rows()).Msg("input loaded")
	for i, rec := range t.Preview(previewRows) {
		log.Debug().Int("row", i+1).Strs("cells", rec).Msg("preview")
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	log.Info().
		Floats64("weights", weights).
		Str("impacts", req.Impacts).
		Stringer("policy", policy).
		Msg("calculating scores")
	res, err := topsis.Evaluate(t.Criteria, weights, impacts, topsis.WithPolicy(policy))
	if err != nil {
		return nil, fmt.Errorf("score %d criteria %v: %w", len(t.CriteriaNames()), t.CriteriaNames(), err)
	}
	log.Debug().
		Floats64("ideal_best", res.IdealBest).
		Floats64("ideal_worst", res.IdealWorst).
		Stringer("weighted", res.Weighted).
		Msg("weighted matrix")
	labels := t.Labels()
	for i := range labels {
		log.Debug().
			Str("alternative", labels[i]).
			Float64("score", res.Scores[i]).
			Int("rank", res.Ranks[i]).
			Msg("scored")
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	log.Info().Str("file", req.OutputPath).Msg("saving results")
	if err = table.SaveCSV(req.OutputPath, t, res, cfg.WriteOptions()); err != nil {
		return nil, fmt.Errorf("save output: %w", err)
	}

	sum := &Summary{
		RunID:      runID,
		Rows:       t.Rows(),
		Criteria:   len(t.CriteriaNames()),
		OutputPath: req.OutputPath,
		Elapsed:    time.Since(start),
	}
	if best := res.Best(); best >= 0 {
		sum.Best, sum.BestScore = labels[best], res.Scores[best]
	}
	log.Info().
		Str("file", req.OutputPath).
		Str("best", sum.Best).
		Dur("elapsed", sum.Elapsed).
		Msg("results saved")

	return sum, nil
}
