package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopsis/config"
	"github.com/katalvlaran/lvtopsis/internal/app"
	"github.com/katalvlaran/lvtopsis/table"
	"github.com/katalvlaran/lvtopsis/topsis"
)

const phonesCSV = `Model,Price,Storage,Camera,Looks
M1,250,16,12,5
M2,200,16,8,3
M3,300,32,16,4
M4,275,32,8,4
M5,225,16,16,2
`

// setup writes the input file and returns (ctx with JSON logger, log buffer, input, output).
func setup(t *testing.T, content string) (context.Context, *bytes.Buffer, string, string) {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(in, []byte(content), 0o644))

	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	return log.WithContext(context.Background()), &buf, in, filepath.Join(dir, "result.csv")
}

func TestRun_Phones(t *testing.T) {
	ctx, logs, in, out := setup(t, phonesCSV)

	sum, err := app.Run(ctx, config.Default(), app.Request{
		InputPath: in, Weights: "1,1,1,1", Impacts: "-,+,+,+", OutputPath: out,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, sum.Rows)
	assert.Equal(t, 4, sum.Criteria)
	assert.Equal(t, "M3", sum.Best)
	assert.InDelta(t, 0.6916322312675315, sum.BestScore, 1e-12)
	assert.NotEmpty(t, sum.RunID)

	// the written file reloads and carries the two extra columns
	reloaded, err := table.LoadCSV(out, table.DefaultReadOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"Model", "Price", "Storage", "Camera", "Looks", "TOPSIS Score", "Rank"}, reloaded.Header)
	ranks := make([]string, reloaded.Rows())
	for i, rec := range reloaded.Records {
		ranks[i] = rec[6]
	}
	assert.Equal(t, []string{"3", "5", "1", "2", "4"}, ranks)

	for _, msg := range []string{"reading input", "input loaded", "preview", "calculating scores", "weighted matrix", "saving results", "results saved"} {
		assert.Contains(t, logs.String(), `"message":"`+msg+`"`)
	}
	assert.Contains(t, logs.String(), `"weighted":"[`, "weighted matrix is dumped row by row")
	assert.Equal(t, strings.Count(logs.String(), "\n"), strings.Count(logs.String(), `"run_id":"`+sum.RunID+`"`),
		"every event is tagged with the run id")
}

func TestRun_PrecisionAndPolicyFromConfig(t *testing.T) {
	ctx, _, in, out := setup(t, "N,A,B\nx,0,1\ny,0,2\n")
	cfg := config.Default()

	_, err := app.Run(ctx, cfg, app.Request{InputPath: in, Weights: "1,1", Impacts: "+,+", OutputPath: out})
	require.ErrorIs(t, err, topsis.ErrDegenerateColumn)
	assert.NoFileExists(t, out)

	cfg.Scoring.Policy = "permissive"
	cfg.Output.Precision = 2
	_, err = app.Run(ctx, cfg, app.Request{InputPath: in, Weights: "1,1", Impacts: "+,+", OutputPath: out})
	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "N,A,B,TOPSIS Score,Rank\nx,0,1,,1\ny,0,2,,2\n", string(data))
}

func TestRun_Failures(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		weights string
		impacts string
		wantErr error
	}{
		{"bad weight", phonesCSV, "1,x,1,1", "-,+,+,+", topsis.ErrInvalidWeight},
		{"bad impact", phonesCSV, "1,1,1,1", "-,+,*,+", topsis.ErrInvalidDirection},
		{"too few weights", phonesCSV, "1,1,1", "-,+,+", topsis.ErrShapeMismatch},
		{"impacts mismatch", phonesCSV, "1,1,1,1", "-,+,+", topsis.ErrShapeMismatch},
		{"non-numeric", "A,B,C\nx,1,two\n", "1,1", "+,+", table.ErrNonNumeric},
		{"too few columns", "A,B\nx,1\n", "1", "+", table.ErrTooFewColumns},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, _, in, out := setup(t, tc.input)
			_, err := app.Run(ctx, config.Default(), app.Request{
				InputPath: in, Weights: tc.weights, Impacts: tc.impacts, OutputPath: out,
			})
			require.ErrorIs(t, err, tc.wantErr)
			assert.NoFileExists(t, out)
		})
	}
}

func TestRun_MissingInput(t *testing.T) {
	ctx, _, _, out := setup(t, phonesCSV)
	_, err := app.Run(ctx, config.Default(), app.Request{
		InputPath: filepath.Join(t.TempDir(), "nope.csv"), Weights: "1,1,1,1", Impacts: "-,+,+,+", OutputPath: out,
	})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, _, in, out := setup(t, phonesCSV)
	ctx, cancel := context.WithCancel(ctx)
	cancel()

	_, err := app.Run(ctx, config.Default(), app.Request{
		InputPath: in, Weights: "1,1,1,1", Impacts: "-,+,+,+", OutputPath: out,
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, out)
}
