package output

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"jsonpolish/internal/jsonvalue"
)

// EncodeYAML serializes v as a YAML document. Object order is kept by
// building yaml.Node trees rather than maps. Flow style puts the whole
// document on one line, the YAML reading of compact mode. yaml.v3 does not
// indent by less than 2 spaces.
func EncodeYAML(v jsonvalue.Value, indent int, flow bool) ([]byte, error) {
	node, err := yamlNode(v, newAncestry())
	if err != nil {
		return nil, err
	}
	if flow && node.Kind != yaml.ScalarNode {
		node.Style = yaml.FlowStyle
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent(indent))
	if err := enc.Encode(node); err != nil {
		return nil, fmt.Errorf("yaml encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("yaml encode: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func yamlIndent(indent int) int {
	if indent < 2 {
		return 2
	}
	return indent
}

func yamlNode(v jsonvalue.Value, path *ancestry) (*yaml.Node, error) {
	switch t := v.(type) {
	case nil, jsonvalue.Null:
		return yamlScalar("!!null", "null"), nil
	case jsonvalue.Bool:
		if t {
			return yamlScalar("!!bool", "true"), nil
		}
		return yamlScalar("!!bool", "false"), nil
	case jsonvalue.Number:
		s, err := FormatNumber(t)
		if err != nil {
			return nil, err
		}
		switch {
		case s == "null":
			return yamlScalar("!!null", "null"), nil
		case isIntegerText(s):
			return yamlScalar("!!int", s), nil
		default:
			return yamlScalar("!!float", s), nil
		}
	case jsonvalue.String:
		return yamlScalar("!!str", string(t)), nil

	case *jsonvalue.Array:
		if t == nil {
			return yamlScalar("!!null", "null"), nil
		}
		if err := path.enter(t); err != nil {
			return nil, err
		}
		defer path.leave(t)

		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range t.Elems {
			child, err := yamlNode(e, path)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil

	case *jsonvalue.Object:
		if t == nil {
			return yamlScalar("!!null", "null"), nil
		}
		if err := path.enter(t); err != nil {
			return nil, err
		}
		defer path.leave(t)

		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		var err error
		t.Range(func(k string, e jsonvalue.Value) bool {
			var child *yaml.Node
			child, err = yamlNode(e, path)
			if err != nil {
				return false
			}
			node.Content = append(node.Content, yamlScalar("!!str", k), child)
			return true
		})
		if err != nil {
			return nil, err
		}
		return node, nil
	}
	return nil, fmt.Errorf("cannot encode value of type %T", v)
}

func yamlScalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}
