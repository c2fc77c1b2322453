// Package jsonvalue holds the in-memory tree for a decoded JSON document.
//
// Unlike map[string]interface{}, an Object remembers the order in which its
// keys were first seen, so a document can be re-emitted exactly as written.
// Arrays and objects are pointers, which lets programmatic callers build
// graphs that share or even contain themselves; the decoder never does.
package jsonvalue

import (
	"strconv"
)

type Type int8

const (
	TypeNull Type = iota
	TypeBool
	TypeNumber
	TypeString
	TypeArray
	TypeObject
)

func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBool:
		return "bool"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	}
	return ""
}

type (
	// Value describes a json value. It is only implemented by types in this package.
	Value interface {
		Type() Type
	}

	// Null represents a null json value.
	Null struct{}
	// Bool represents a boolean json value.
	Bool bool
	// Number represents a numeric json value by its literal text.
	Number string
	// String represents a string json value.
	String string
	// Array represents an array json value.
	Array struct {
		Elems []Value
	}
	// Object represents an object json value with insertion-ordered keys.
	Object struct {
		keys []string
		vals map[string]Value
	}
)

func (Null) Type() Type    { return TypeNull }
func (Bool) Type() Type    { return TypeBool }
func (Number) Type() Type  { return TypeNumber }
func (String) Type() Type  { return TypeString }
func (*Array) Type() Type  { return TypeArray }
func (*Object) Type() Type { return TypeObject }

var (
	_ Value = Null{}
	_ Value = Bool(false)
	_ Value = Number("0")
	_ Value = String("")
	_ Value = (*Array)(nil)
	_ Value = (*Object)(nil)
)

// Float64 parses the literal. Literals beyond float64 range return ±Inf with
// a strconv.ErrRange error.
func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

// Int64 parses the literal as an integer. It fails for fractions and exponents.
func (n Number) Int64() (int64, error) {
	return strconv.ParseInt(string(n), 10, 64)
}

// NewArray returns an array holding elems.
func NewArray(elems ...Value) *Array {
	return &Array{Elems: elems}
}

// Append adds v to the end of the array.
func (a *Array) Append(v Value) {
	a.Elems = append(a.Elems, v)
}

// Len returns the number of elements.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Elems)
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{vals: make(map[string]Value)}
}

// Set stores value under key. A key that is already present keeps its
// original position and takes the new value.
func (o *Object) Set(key string, value Value) {
	if o.vals == nil {
		o.vals = make(map[string]Value)
	}
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = value
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.vals[key]
	return v, ok
}

// Keys returns a copy of the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Range calls fn for each member in insertion order until fn returns false.
func (o *Object) Range(fn func(key string, value Value) bool) {
	if o == nil {
		return
	}
	for _, k := range o.keys {
		if !fn(k, o.vals[k]) {
			return
		}
	}
}
