package output

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"jsonpolish/internal/errors"
	"jsonpolish/internal/jsonvalue"
)

// EncodeTOML serializes v as a TOML document. TOML has no null and needs a
// table at the top, so other shapes fail with an Unrepresentable error.
// go-toml orders keys itself, so object order is not kept. Inline puts
// nested tables on one line, and a non-zero indent indents sub-tables.
func EncodeTOML(v jsonvalue.Value, indent int, inline bool) ([]byte, error) {
	if _, ok := v.(*jsonvalue.Object); !ok {
		return nil, errors.Newf(errors.Unrepresentable,
			"TOML output requires a top-level object, got %s", typeName(v))
	}
	doc, err := tomlValue(v, "", newAncestry())
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetTablesInline(inline)
	enc.SetIndentTables(indent > 0)
	if indent > 0 {
		enc.SetIndentSymbol(strings.Repeat(" ", indent))
	}
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("toml encode: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// tomlValue converts v into the map, slice and scalar shapes go-toml
// marshals. keyPath names the value in error messages.
func tomlValue(v jsonvalue.Value, keyPath string, path *ancestry) (interface{}, error) {
	switch t := v.(type) {
	case nil, jsonvalue.Null:
		return nil, errors.Newf(errors.Unrepresentable, "TOML cannot represent null at %s", displayPath(keyPath))
	case jsonvalue.Bool:
		return bool(t), nil
	case jsonvalue.Number:
		if i, err := t.Int64(); err == nil {
			return i, nil
		}
		f, _ := t.Float64()
		if math.IsInf(f, 0) {
			return nil, errors.Newf(errors.Unrepresentable, "number %s at %s is out of range", string(t), displayPath(keyPath))
		}
		return f, nil
	case jsonvalue.String:
		return string(t), nil

	case *jsonvalue.Array:
		if t == nil {
			return nil, errors.Newf(errors.Unrepresentable, "TOML cannot represent null at %s", displayPath(keyPath))
		}
		if err := path.enter(t); err != nil {
			return nil, err
		}
		defer path.leave(t)

		out := make([]interface{}, 0, len(t.Elems))
		for i, e := range t.Elems {
			child, err := tomlValue(e, fmt.Sprintf("%s[%d]", keyPath, i), path)
			if err != nil {
				return nil, err
			}
			out = append(out, child)
		}
		return out, nil

	case *jsonvalue.Object:
		if t == nil {
			return nil, errors.Newf(errors.Unrepresentable, "TOML cannot represent null at %s", displayPath(keyPath))
		}
		if err := path.enter(t); err != nil {
			return nil, err
		}
		defer path.leave(t)

		out := make(map[string]interface{}, t.Len())
		var err error
		t.Range(func(k string, e jsonvalue.Value) bool {
			var child interface{}
			child, err = tomlValue(e, joinKey(keyPath, k), path)
			if err != nil {
				return false
			}
			out[k] = child
			return true
		})
		if err != nil {
			return nil, err
		}
		return out, nil
	}
	return nil, fmt.Errorf("cannot encode value of type %T", v)
}

func joinKey(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

func displayPath(p string) string {
	if p == "" {
		return "the top level"
	}
	return p
}

func typeName(v jsonvalue.Value) string {
	if v == nil {
		return "null"
	}
	return v.Type().String()
}
