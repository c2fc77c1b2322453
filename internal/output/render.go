package output

import (
	"fmt"
	"strings"

	"jsonpolish/internal/jsonvalue"
)

// Format represents the output format type
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists the supported formats in help order.
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML}

// ParseFormat maps a flag value onto a Format. Matching ignores case.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported format: %q", s)
}

// Options controls Render.
type Options struct {
	// Indent is the number of spaces per nesting level. 0 means compact.
	Indent   int
	SortKeys bool
	Format   Format
}

// Render turns a decoded tree into the final output bytes, always ending in
// exactly one newline.
func Render(v jsonvalue.Value, opts Options) ([]byte, error) {
	if opts.SortKeys {
		sorted, err := SortKeys(v)
		if err != nil {
			return nil, err
		}
		v = sorted
	}

	var (
		out []byte
		err error
	)
	switch opts.Format {
	case FormatJSON, "":
		out, err = EncodeJSON(v, opts.Indent)
	case FormatYAML:
		out, err = EncodeYAML(v, opts.Indent, opts.Indent == 0)
	case FormatTOML:
		out, err = EncodeTOML(v, opts.Indent, opts.Indent == 0)
	default:
		return nil, fmt.Errorf("unsupported format: %q", opts.Format)
	}
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
