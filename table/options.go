package table

// Defaults shared by the loader, the writer and the config package.
const (
	DefaultDelimiter   = ','
	DefaultEncoding    = "utf-8"
	DefaultScoreColumn = "TOPSIS Score"
	DefaultRankColumn  = "Rank"

	// DefaultPrecision formats scores with the shortest representation that round-trips.
	DefaultPrecision = -1
)

// ReadOptions control how an input file is decoded.
type ReadOptions struct {
	Delimiter rune   // CSV field separator
	Encoding  string // see Encodings
	Sheet     string // XLSX sheet; empty selects the first sheet
}

// DefaultReadOptions returns comma-separated UTF-8 input, first sheet.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{Delimiter: DefaultDelimiter, Encoding: DefaultEncoding}
}

// WriteOptions control the layout of the scored output.
type WriteOptions struct {
	Delimiter   rune
	ScoreColumn string
	RankColumn  string
	Precision   int // digits after the decimal point; -1 = shortest round-trip
}

// DefaultWriteOptions returns the documented output defaults.
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{
		Delimiter:   DefaultDelimiter,
		ScoreColumn: DefaultScoreColumn,
		RankColumn:  DefaultRankColumn,
		Precision:   DefaultPrecision,
	}
}

// withDefaults fills zero fields so a partially built ReadOptions still works.
func (o ReadOptions) withDefaults() ReadOptions {
	if o.Delimiter == 0 {
		o.Delimiter = DefaultDelimiter
	}
	if o.Encoding == "" {
		o.Encoding = DefaultEncoding
	}

	return o
}

func (o WriteOptions) withDefaults() WriteOptions {
	if o.Delimiter == 0 {
		o.Delimiter = DefaultDelimiter
	}
	if o.ScoreColumn == "" {
		o.ScoreColumn = DefaultScoreColumn
	}
	if o.RankColumn == "" {
		o.RankColumn = DefaultRankColumn
	}

	return o
}
