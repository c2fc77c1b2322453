// Package output turns a decoded JSON tree into formatted text.
//
// # Pipeline
//
// Render runs two steps:
//
//  1. Optional key sorting (SortKeys). Every object is rebuilt with its keys
//     in ascending code-point order, recursively. Arrays are never reordered.
//  2. Serialization in the requested Format. JSON is written by EncodeJSON,
//     YAML by EncodeYAML (gopkg.in/yaml.v3) and TOML by EncodeTOML
//     (github.com/pelletier/go-toml/v2).
//
// The result always ends in a single newline.
//
// # JSON Encoding Rules
//
//  1. Indent n puts each member and element on its own line, indented by n
//     spaces per level, with ": " between key and value.
//  2. Indent 0 is compact: no whitespace at all, separators kept.
//  3. Empty containers are written as {} and [] at any indent.
//  4. Strings use encoding/json escaping without HTML escaping.
//  5. Numbers use encoding/json float64 formatting (see FormatNumber).
//
// # Cycles
//
// Trees built by hand may contain themselves. Every walker in this package
// keeps the chain of ancestor containers and fails with a CircularStructure
// error instead of recursing forever. A container referenced twice from
// different branches is fine.
//
// # Usage Example
//
//	v, err := jsonvalue.Decode([]byte(`{"b":1,"a":[2,3]}`))
//	if err != nil {
//	    return err
//	}
//	out, err := output.Render(v, output.Options{Indent: 2, SortKeys: true})
//	// out == "{\n  \"a\": [\n    2,\n    3\n  ],\n  \"b\": 1\n}\n"
//
// WriteFile stores the bytes, gzip-compressing them when the path ends in .gz.
package output
