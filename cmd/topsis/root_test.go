package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const phonesCSV = `Model,Price,Storage,Camera,Looks
M1,250,16,12,5
M2,200,16,8,3
M3,300,32,16,4
M4,275,32,8,4
M5,225,16,16,2
`

func writeInput(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "phones.csv")
	require.NoError(t, os.WriteFile(in, []byte(phonesCSV), 0o644))

	return in, filepath.Join(dir, "out.csv")
}

func TestExecute_EndToEnd(t *testing.T) {
	in, out := writeInput(t)
	var stdout, stderr bytes.Buffer

	code := execute(context.Background(),
		[]string{in, "1,1,1,1", "-,+,+,+", out, "--precision", "4", "--log-format", "json"},
		&stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "best: M3")
	assert.Contains(t, stderr.String(), `"message":"results saved"`)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	want := "Model,Price,Storage,Camera,Looks,TOPSIS Score,Rank\n" +
		"M1,250,16,12,5,0.5343,3\n" +
		"M2,200,16,8,3,0.3084,5\n" +
		"M3,300,32,16,4,0.6916,1\n" +
		"M4,275,32,8,4,0.5347,2\n" +
		"M5,225,16,16,2,0.4010,4\n"
	assert.Equal(t, want, string(data))
}

func TestExecute_ConfigFile(t *testing.T) {
	in, out := writeInput(t)
	cfgPath := filepath.Join(t.TempDir(), "topsis.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output:\n  score_column: Score\n  delimiter: ';'\nlog:\n  level: error\n"), 0o644))
	var stdout, stderr bytes.Buffer

	code := execute(context.Background(), []string{in, "1,1,1,1", "-,+,+,+", out, "--config", cfgPath}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Empty(t, stderr.String(), "error level hides progress events")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Model;Price;Storage;Camera;Looks;Score;Rank\n")
}

func TestExecute_Failures(t *testing.T) {
	in, out := writeInput(t)
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"missing args", []string{in, "1,1,1,1", "-,+,+,+"}, "accepts 4 arg(s)"},
		{"bad impact", []string{in, "1,1,1,1", "-,+,0,+", out}, "impact"},
		{"wrong count", []string{in, "1,1", "+,+", out}, "does not match"},
		{"missing file", []string{in + ".nope", "1,1,1,1", "-,+,+,+", out}, "no such file"},
		{"bad policy", []string{in, "1,1,1,1", "-,+,+,+", out, "--policy", "loose"}, "scoring.policy"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := execute(context.Background(), tc.args, &stdout, &stderr)
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr.String(), tc.want)
			assert.NoFileExists(t, out)
		})
	}
}
