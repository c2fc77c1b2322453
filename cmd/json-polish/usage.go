package main

import (
	"strings"

	"jsonpolish/internal/config"
)

const usageHeader = `json-polish - pretty-print JSON

Usage:
  json-polish [--indent N] [--sort-keys] [--compact] [--out FILE] [JSON|FILE]

Examples:
  json-polish '{"a":1,"b":[2,3]}'
  cat input.json | json-polish --sort-keys
  json-polish input.json --indent 4 --out pretty.json
  json-polish --to yaml input.json.gz

Options:
`

const usageNotes = `
Notes:
  - If JSON|FILE is omitted, reads from stdin.
  - If the argument points to an existing file, reads JSON from that file.
  - Gzip-compressed input is detected and decompressed.
`

// usageText is printed for --help and for empty input.
func usageText() string {
	var b strings.Builder
	b.WriteString(usageHeader)
	b.WriteString(config.NewFlagSet().FlagUsages())
	b.WriteString(usageNotes)
	return b.String()
}
