package value

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a single YAML document, keeping mapping key order.
// Aliases are resolved and merge keys ("<<") are applied. An empty document
// decodes to Null.
func ParseYAML(data []byte) (Value, error) {
	var doc yaml.Node

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if doc.Kind == 0 {
		return Null{}, nil
	}

	return fromYAMLNode(&doc)
}

func fromYAMLNode(node *yaml.Node) (Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null{}, nil
		}

		return fromYAMLNode(node.Content[0])

	case yaml.AliasNode:
		return fromYAMLNode(node.Alias)

	case yaml.SequenceNode:
		out := make(Array, 0, len(node.Content))

		for _, item := range node.Content {
			v, err := fromYAMLNode(item)
			if err != nil {
				return nil, err
			}

			out = append(out, v)
		}

		return out, nil

	case yaml.MappingNode:
		return fromYAMLMapping(node)

	case yaml.ScalarNode:
		var raw any

		err := node.Decode(&raw)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}

		return FromGo(raw)

	default:
		return nil, fmt.Errorf("line %d: unexpected YAML node kind %v", node.Line, node.Kind)
	}
}

func fromYAMLMapping(node *yaml.Node) (*Object, error) {
	o := NewObject()

	var merged []*Object

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]

		if keyNode.ShortTag() == "!!merge" {
			sources, err := mergeSources(valNode)
			if err != nil {
				return nil, err
			}

			merged = append(merged, sources...)

			continue
		}

		var key string

		err := keyNode.Decode(&key)
		if err != nil {
			return nil, fmt.Errorf("line %d: mapping key must be a string: %w", keyNode.Line, err)
		}

		v, err := fromYAMLNode(valNode)
		if err != nil {
			return nil, err
		}

		o.Set(key, v)
	}

	// explicit keys win over merged ones
	for _, src := range merged {
		src.Range(func(k string, v Value) bool {
			if !o.Has(k) {
				o.Set(k, v)
			}

			return true
		})
	}

	return o, nil
}

func mergeSources(node *yaml.Node) ([]*Object, error) {
	v, err := fromYAMLNode(node)
	if err != nil {
		return nil, err
	}

	switch x := v.(type) {
	case *Object:
		return []*Object{x}, nil
	case Array:
		out := make([]*Object, 0, len(x))

		for _, item := range x {
			o, ok := item.(*Object)
			if !ok {
				return nil, fmt.Errorf("line %d: merge sequence must contain mappings", node.Line)
			}

			out = append(out, o)
		}

		return out, nil
	default:
		return nil, fmt.Errorf("line %d: merge value must be a mapping", node.Line)
	}
}

// MarshalYAML encodes the object as an ordered YAML mapping.
func (o *Object) MarshalYAML() (any, error) {
	return toYAMLNode(o)
}

func toYAMLNode(v Value) (*yaml.Node, error) {
	switch x := v.(type) {
	case nil, Null:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil

	case *Object:
		if x == nil {
			return toYAMLNode(nil)
		}

		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

		for _, m := range x.Members() {
			if m.Value == nil {
				continue
			}

			child, err := toYAMLNode(m.Value)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", m.Key, err)
			}

			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.Key},
				child,
			)
		}

		return node, nil

	case Array:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}

		for _, item := range x {
			child, err := toYAMLNode(item)
			if err != nil {
				return nil, err
			}

			node.Content = append(node.Content, child)
		}

		return node, nil

	case Error:
		if x.Err == nil {
			return toYAMLNode(nil)
		}

		return toYAMLNode(String(x.Err.Error()))

	case Regexp:
		if x.Regexp == nil {
			return toYAMLNode(nil)
		}

		return toYAMLNode(String(x.String()))

	case Func:
		return toYAMLNode(nil)

	default:
		node := &yaml.Node{}

		err := node.Encode(ToGo(x))
		if err != nil {
			return nil, err
		}

		return node, nil
	}
}
