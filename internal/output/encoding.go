package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"jsonpolish/internal/jsonvalue"
)

// EncodeJSON serializes v with indent spaces per nesting level. Indent 0
// produces compact output with no whitespace between tokens. Object members
// and array elements are written in tree order. The result has no trailing
// newline.
func EncodeJSON(v jsonvalue.Value, indent int) ([]byte, error) {
	e := newJSONEncoder(indent)
	if err := e.value(v, 0); err != nil {
		return nil, err
	}
	return e.buf.Bytes(), nil
}

type jsonEncoder struct {
	buf    bytes.Buffer
	indent string
	path   *ancestry

	// scratch and enc encode strings with encoding/json escaping
	scratch bytes.Buffer
	enc     *json.Encoder
}

func newJSONEncoder(indent int) *jsonEncoder {
	e := &jsonEncoder{
		indent: strings.Repeat(" ", indent),
		path:   newAncestry(),
	}
	e.enc = json.NewEncoder(&e.scratch)
	e.enc.SetEscapeHTML(false)
	return e
}

func (e *jsonEncoder) value(v jsonvalue.Value, depth int) error {
	switch t := v.(type) {
	case nil, jsonvalue.Null:
		e.buf.WriteString("null")
	case jsonvalue.Bool:
		e.buf.WriteString(strconv.FormatBool(bool(t)))
	case jsonvalue.Number:
		s, err := FormatNumber(t)
		if err != nil {
			return err
		}
		e.buf.WriteString(s)
	case jsonvalue.String:
		return e.string(string(t))
	case *jsonvalue.Array:
		if t == nil {
			e.buf.WriteString("null")
			return nil
		}
		return e.array(t, depth)
	case *jsonvalue.Object:
		if t == nil {
			e.buf.WriteString("null")
			return nil
		}
		return e.object(t, depth)
	default:
		return fmt.Errorf("cannot encode value of type %T", v)
	}
	return nil
}

func (e *jsonEncoder) array(a *jsonvalue.Array, depth int) error {
	if len(a.Elems) == 0 {
		e.buf.WriteString("[]")
		return nil
	}
	if err := e.path.enter(a); err != nil {
		return err
	}
	defer e.path.leave(a)

	e.buf.WriteByte('[')
	for i, elem := range a.Elems {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		e.newline(depth + 1)
		if err := e.value(elem, depth+1); err != nil {
			return err
		}
	}
	e.newline(depth)
	e.buf.WriteByte(']')
	return nil
}

func (e *jsonEncoder) object(o *jsonvalue.Object, depth int) error {
	if o.Len() == 0 {
		e.buf.WriteString("{}")
		return nil
	}
	if err := e.path.enter(o); err != nil {
		return err
	}
	defer e.path.leave(o)

	e.buf.WriteByte('{')
	var err error
	first := true
	o.Range(func(k string, v jsonvalue.Value) bool {
		if !first {
			e.buf.WriteByte(',')
		}
		first = false

		e.newline(depth + 1)
		if err = e.string(k); err != nil {
			return false
		}
		e.buf.WriteByte(':')
		if e.indent != "" {
			e.buf.WriteByte(' ')
		}
		err = e.value(v, depth+1)
		return err == nil
	})
	if err != nil {
		return err
	}
	e.newline(depth)
	e.buf.WriteByte('}')
	return nil
}

func (e *jsonEncoder) string(s string) error {
	e.scratch.Reset()
	if err := e.enc.Encode(s); err != nil {
		return err
	}
	// Remove the trailing newline added by Encode
	b := e.scratch.Bytes()
	writeUnescapedSeparators(&e.buf, b[:len(b)-1])
	return nil
}

// writeUnescapedSeparators copies a quoted string, turning the \u2028 and
// \u2029 escapes encoding/json always emits back into the raw characters.
// Escape pairs are copied whole so an escaped backslash followed by "u2028"
// stays as it is.
func writeUnescapedSeparators(buf *bytes.Buffer, quoted []byte) {
	for i := 0; i < len(quoted); i++ {
		c := quoted[i]
		if c != '\\' || i+1 == len(quoted) {
			buf.WriteByte(c)
			continue
		}
		switch seq := quoted[i+1:]; {
		case bytes.HasPrefix(seq, []byte("u2028")):
			buf.WriteRune('\u2028')
			i += 5
		case bytes.HasPrefix(seq, []byte("u2029")):
			buf.WriteRune('\u2029')
			i += 5
		default:
			buf.WriteByte(c)
			buf.WriteByte(quoted[i+1])
			i++
		}
	}
}

func (e *jsonEncoder) newline(depth int) {
	if e.indent == "" {
		return
	}
	e.buf.WriteByte('\n')
	for i := 0; i < depth; i++ {
		e.buf.WriteString(e.indent)
	}
}
