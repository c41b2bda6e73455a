package table

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decoders maps lower-cased encoding names to their UTF-8 transformers.
var decoders = map[string]func() transform.Transformer{
	"utf-8": utf8Decoder,
	"utf8":  utf8Decoder,

	"iso-8859-1": func() transform.Transformer { return charmap.ISO8859_1.NewDecoder() },
	"latin1":     func() transform.Transformer { return charmap.ISO8859_1.NewDecoder() },

	"windows-1252": func() transform.Transformer { return charmap.Windows1252.NewDecoder() },
	"cp1252":       func() transform.Transformer { return charmap.Windows1252.NewDecoder() },
}

// utf8Decoder strips a leading BOM and validates UTF-8.
func utf8Decoder() transform.Transformer {
	return unicode.BOMOverride(unicode.UTF8.NewDecoder())
}

// Encodings lists the accepted input encoding names, sorted.
func Encodings() []string {
	names := make([]string, 0, len(decoders))
	for k := range decoders {
		names = append(names, k)
	}
	sort.Strings(names)

	return names
}

// SupportedEncoding reports whether name (case-insensitive) can be decoded.
func SupportedEncoding(name string) bool {
	_, ok := decoders[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// decodeReader wraps r so that reads yield UTF-8.
func decodeReader(r io.Reader, name string) (io.Reader, error) {
	mk, ok := decoders[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownEncoding)
	}

	return transform.NewReader(r, mk()), nil
}
