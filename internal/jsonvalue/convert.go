package jsonvalue

import "fmt"

// ToInterface converts v into the shapes encoding/json produces when
// unmarshaling into an interface{}: nil, bool, float64, string, []interface{}
// and map[string]interface{}. Key order is lost. v must not contain cycles.
func ToInterface(v Value) interface{} {
	switch t := v.(type) {
	case nil, Null:
		return nil
	case Bool:
		return bool(t)
	case Number:
		f, _ := t.Float64()
		return f
	case String:
		return string(t)
	case *Array:
		if t == nil {
			return nil
		}
		out := make([]interface{}, len(t.Elems))
		for i, e := range t.Elems {
			out[i] = ToInterface(e)
		}
		return out
	case *Object:
		if t == nil {
			return nil
		}
		out := make(map[string]interface{}, t.Len())
		t.Range(func(k string, e Value) bool {
			out[k] = ToInterface(e)
			return true
		})
		return out
	}
	panic(fmt.Sprintf("jsonvalue: unknown value type %T", v))
}
