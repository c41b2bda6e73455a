package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtopsis/table"
	"github.com/katalvlaran/lvtopsis/topsis"
)

// ErrInvalid marks every validation failure; the message names the key.
var ErrInvalid = errors.New("config: invalid value")

// Log output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config is the full settings tree.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Scoring ScoringConfig `yaml:"scoring"`
	Log     LogConfig     `yaml:"log"`
}

// InputConfig describes how the decision table is read.
type InputConfig struct {
	Delimiter string `yaml:"delimiter"`
	Encoding  string `yaml:"encoding"`
	Sheet     string `yaml:"sheet"`
}

// OutputConfig describes the scored CSV.
type OutputConfig struct {
	Delimiter   string `yaml:"delimiter"`
	ScoreColumn string `yaml:"score_column"`
	RankColumn  string `yaml:"rank_column"`
	Precision   int    `yaml:"precision"`
}

// ScoringConfig selects the degeneracy policy.
type ScoringConfig struct {
	Policy string `yaml:"policy"`
}

// LogConfig selects level and output format.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Delimiter: string(table.DefaultDelimiter),
			Encoding:  table.DefaultEncoding,
		},
		Output: OutputConfig{
			Delimiter:   string(table.DefaultDelimiter),
			ScoreColumn: table.DefaultScoreColumn,
			RankColumn:  table.DefaultRankColumn,
			Precision:   table.DefaultPrecision,
		},
		Scoring: ScoringConfig{Policy: topsis.Strict.String()},
		Log:     LogConfig{Level: zerolog.LevelInfoValue, Format: FormatConsole},
	}
}

// Load reads path over the defaults and validates the result.
// An empty path yields the validated defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		cfg := Default()
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML over the defaults. Unknown keys are rejected so typos
// do not silently fall back to a default.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field and returns the first problem found.
func (c *Config) Validate() error {
	if _, err := parseDelimiter(c.Input.Delimiter); err != nil {
		return fmt.Errorf("input.delimiter: %w", err)
	}
	if !table.SupportedEncoding(c.Input.Encoding) {
		return fmt.Errorf("input.encoding %q (want one of %s): %w",
			c.Input.Encoding, strings.Join(table.Encodings(), ", "), ErrInvalid)
	}
	if _, err := parseDelimiter(c.Output.Delimiter); err != nil {
		return fmt.Errorf("output.delimiter: %w", err)
	}
	if strings.TrimSpace(c.Output.ScoreColumn) == "" {
		return fmt.Errorf("output.score_column is empty: %w", ErrInvalid)
	}
	if strings.TrimSpace(c.Output.RankColumn) == "" {
		return fmt.Errorf("output.rank_column is empty: %w", ErrInvalid)
	}
	if c.Output.ScoreColumn == c.Output.RankColumn {
		return fmt.Errorf("output.score_column equals output.rank_column: %w", ErrInvalid)
	}
	if c.Output.Precision < -1 {
		return fmt.Errorf("output.precision %d (want >= -1): %w", c.Output.Precision, ErrInvalid)
	}
	if _, err := c.Policy(); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil || c.Log.Level == "" {
		return fmt.Errorf("log.level %q: %w", c.Log.Level, ErrInvalid)
	}
	switch c.Log.Format {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("log.format %q (want console or json): %w", c.Log.Format, ErrInvalid)
	}

	return nil
}

// Policy maps scoring.policy onto topsis.Policy.
func (c *Config) Policy() (topsis.Policy, error) {
	switch strings.ToLower(c.Scoring.Policy) {
	case topsis.Strict.String():
		return topsis.Strict, nil
	case topsis.Permissive.String():
		return topsis.Permissive, nil
	default:
		return 0, fmt.Errorf("scoring.policy %q (want strict or permissive): %w", c.Scoring.Policy, ErrInvalid)
	}
}

// ReadOptions converts the input section. Call after Validate.
func (c *Config) ReadOptions() table.ReadOptions {
	d, _ := parseDelimiter(c.Input.Delimiter)
	return table.ReadOptions{Delimiter: d, Encoding: c.Input.Encoding, Sheet: c.Input.Sheet}
}

// WriteOptions converts the output section. Call after Validate.
func (c *Config) WriteOptions() table.WriteOptions {
	d, _ := parseDelimiter(c.Output.Delimiter)
	return table.WriteOptions{
		Delimiter:   d,
		ScoreColumn: c.Output.ScoreColumn,
		RankColumn:  c.Output.RankColumn,
		Precision:   c.Output.Precision,
	}
}

// parseDelimiter accepts a single rune, or the spellings `\t` and "tab".
// Quotes and line breaks cannot separate CSV fields.
func parseDelimiter(s string) (rune, error) {
	switch s {
	case `\t`, "tab":
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%q must be a single character: %w", s, ErrInvalid)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, fmt.Errorf("%q cannot separate fields: %w", s, ErrInvalid)
	}

	return r, nil
}
