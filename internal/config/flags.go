package config

import (
	"math"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"jsonpolish/internal/errors"
	"jsonpolish/internal/output"
)

// NewFlagSet returns the json-polish options in help order. Parse fills a
// fresh set on every call. The help text lists them with FlagUsages.
func NewFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("json-polish", pflag.ContinueOnError)
	fs.SortFlags = false

	indent := indentValue(DefaultConfig().Indent)
	fs.Var(&indent, "indent", "spaces per nesting level, `N` from 0 to 16")
	fs.Bool("sort-keys", false, "sort object keys recursively (arrays keep their order)")
	fs.Bool("compact", false, "print everything on one line, same as --indent 0")
	var out outValue
	fs.Var(&out, "out", "write the result to `FILE` instead of stdout (.gz compresses)")
	format := formatValue(output.FormatJSON)
	fs.Var(&format, "to", "output `FORMAT`: "+formatList())
	fs.Count("verbose", "log progress to stderr, repeat for debug detail")
	fs.Bool("version", false, "print the version and exit")
	fs.BoolP("help", "h", false, "show this help")
	return fs
}

// scan walks args in order and stops at the first problem. It does not use
// pflag's own parser: value flags always consume the next token, switches
// never take a value, and every error has a fixed message.
func scan(fs *pflag.FlagSet, args []string) ([]string, error) {
	var positionals []string
	for i := 0; i < len(args); i++ {
		tok := args[i]
		switch {
		case tok == "-h" || tok == "--help":
			return nil, errors.ErrUsage
		case !strings.HasPrefix(tok, "-"):
			positionals = append(positionals, tok)
			continue
		case !strings.HasPrefix(tok, "--"):
			return nil, unknownOption(tok)
		}

		name, value, hasValue := strings.Cut(tok[2:], "=")
		f := fs.Lookup(name)
		if f == nil {
			return nil, unknownOption(tok)
		}

		if f.NoOptDefVal != "" {
			if hasValue {
				return nil, unknownOption(tok)
			}
			if name == "version" {
				return nil, errors.ErrVersion
			}
			if err := f.Value.Set(f.NoOptDefVal); err != nil {
				return nil, errors.NewPolishError(errors.InvalidOption, err.Error(), err)
			}
			f.Changed = true
			continue
		}

		if !hasValue {
			// A missing value is rejected like an empty one.
			if i+1 < len(args) {
				i++
				value = args[i]
			}
		}
		if err := f.Value.Set(value); err != nil {
			return nil, err
		}
		f.Changed = true
	}
	return positionals, nil
}

func unknownOption(tok string) error {
	return errors.Newf(errors.InvalidOption, "unknown option %s. Use --help.", tok)
}

func formatList() string {
	names := make([]string, len(output.Formats))
	for i, f := range output.Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// ParseIndent reads an --indent value. Any finite decimal in [0,16] is
// accepted, with surrounding spaces, and fractions are truncated. Unsigned
// 0x, 0o and 0b integers are accepted too.
func ParseIndent(s string) (int, error) {
	f, err := parseNumber(strings.TrimSpace(s))
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f > MaxIndent {
		return 0, errors.Newf(errors.InvalidOption, "--indent must be a number between 0 and %d", MaxIndent)
	}
	return int(f), nil
}

var integerPrefixes = map[string]int{"0x": 16, "0o": 8, "0b": 2}

func parseNumber(s string) (float64, error) {
	if len(s) > 2 {
		if base, ok := integerPrefixes[strings.ToLower(s[:2])]; ok {
			n, err := strconv.ParseUint(s[2:], base, 64)
			return float64(n), err
		}
	}
	// hex floats such as 0x1p4 never reach ParseFloat
	return strconv.ParseFloat(s, 64)
}

type indentValue int

func (v *indentValue) String() string { return strconv.Itoa(int(*v)) }
func (v *indentValue) Type() string   { return "int" }

func (v *indentValue) Set(s string) error {
	n, err := ParseIndent(s)
	if err != nil {
		return err
	}
	*v = indentValue(n)
	return nil
}

type outValue string

func (v *outValue) String() string { return string(*v) }
func (v *outValue) Type() string   { return "string" }

func (v *outValue) Set(s string) error {
	if s == "" {
		return errors.Newf(errors.InvalidOption, "--out requires a file path")
	}
	*v = outValue(s)
	return nil
}

type formatValue output.Format

func (v *formatValue) String() string { return string(*v) }
func (v *formatValue) Type() string   { return "string" }

func (v *formatValue) Set(s string) error {
	f, err := output.ParseFormat(s)
	if err != nil {
		return errors.NewPolishError(errors.InvalidOption, "--to must be one of "+formatList(), err)
	}
	*v = formatValue(f)
	return nil
}
