package config

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"
)

// Flag names shared by BindFlags and ApplyFlags.
const (
	FlagConfig          = "config"
	FlagPolicy          = "policy"
	FlagSheet           = "sheet"
	FlagEncoding        = "encoding"
	FlagDelimiter       = "delimiter"
	FlagOutputDelimiter = "output-delimiter"
	FlagScoreColumn     = "score-column"
	FlagRankColumn      = "rank-column"
	FlagPrecision       = "precision"
	FlagLogLevel        = "log-level"
	FlagLogFormat       = "log-format"
)

// BindFlags registers every override flag on fs with the built-in defaults as
// help text values. Values are only applied by ApplyFlags.
func BindFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String(FlagConfig, "", "path to a YAML config file")
	fs.String(FlagPolicy, d.Scoring.Policy, "degeneracy policy: strict or permissive")
	fs.String(FlagSheet, d.Input.Sheet, "XLSX sheet to read (default: first sheet)")
	fs.String(FlagEncoding, d.Input.Encoding, "input text encoding (utf-8, iso-8859-1, windows-1252)")
	fs.String(FlagDelimiter, d.Input.Delimiter, `input field delimiter (single character or \t)`)
	fs.String(FlagOutputDelimiter, d.Output.Delimiter, "output field delimiter")
	fs.String(FlagScoreColumn, d.Output.ScoreColumn, "name of the appended score column")
	fs.String(FlagRankColumn, d.Output.RankColumn, "name of the appended rank column")
	fs.Int(FlagPrecision, d.Output.Precision, "score decimals (-1 = shortest exact form)")
	fs.String(FlagLogLevel, d.Log.Level, "log level: trace, debug, info, warn, error")
	fs.String(FlagLogFormat, d.Log.Format, "log format: console or json")
}

// ApplyFlags copies every flag the user set on fs into c, then validates.
// Flags left at their defaults never override values from the file.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	targets := map[string]*string{
		FlagPolicy:          &c.Scoring.Policy,
		FlagSheet:           &c.Input.Sheet,
		FlagEncoding:        &c.Input.Encoding,
		FlagDelimiter:       &c.Input.Delimiter,
		FlagOutputDelimiter: &c.Output.Delimiter,
		FlagScoreColumn:     &c.Output.ScoreColumn,
		FlagRankColumn:      &c.Output.RankColumn,
		FlagLogLevel:        &c.Log.Level,
		FlagLogFormat:       &c.Log.Format,
	}

	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		if dst, ok := targets[f.Name]; ok {
			*dst = f.Value.String()
			return
		}
		if f.Name == FlagPrecision {
			var p int
			if p, err = strconv.Atoi(f.Value.String()); err != nil {
				err = fmt.Errorf("--%s: %w", FlagPrecision, err)
				return
			}
			c.Output.Precision = p
		}
	})
	if err != nil {
		return err
	}

	return c.Validate()
}

// Path returns the --config value, or "" when unset.
func Path(fs *pflag.FlagSet) string {
	v, err := fs.GetString(FlagConfig)
	if err != nil {
		return ""
	}

	return v
}
