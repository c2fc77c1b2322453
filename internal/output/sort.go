package output

import (
	"sort"

	"jsonpolish/internal/jsonvalue"
)

// SortKeys returns a copy of v where every object lists its keys in
// ascending byte order, which for UTF-8 is code-point order. Arrays keep
// their element order. Scalars are shared with v, containers are new.
//
// A container that contains itself fails with a CircularStructure error.
func SortKeys(v jsonvalue.Value) (jsonvalue.Value, error) {
	return sortValue(v, newAncestry())
}

func sortValue(v jsonvalue.Value, path *ancestry) (jsonvalue.Value, error) {
	switch t := v.(type) {
	case *jsonvalue.Array:
		if t == nil {
			return jsonvalue.Null{}, nil
		}
		if err := path.enter(t); err != nil {
			return nil, err
		}
		defer path.leave(t)

		out := &jsonvalue.Array{Elems: make([]jsonvalue.Value, 0, len(t.Elems))}
		for _, e := range t.Elems {
			se, err := sortValue(e, path)
			if err != nil {
				return nil, err
			}
			out.Append(se)
		}
		return out, nil

	case *jsonvalue.Object:
		if t == nil {
			return jsonvalue.Null{}, nil
		}
		if err := path.enter(t); err != nil {
			return nil, err
		}
		defer path.leave(t)

		keys := t.Keys()
		sort.Strings(keys)

		out := jsonvalue.NewObject()
		for _, k := range keys {
			child, _ := t.Get(k)
			sv, err := sortValue(child, path)
			if err != nil {
				return nil, err
			}
			out.Set(k, sv)
		}
		return out, nil

	default:
		return v, nil
	}
}
