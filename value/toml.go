package value

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

const tomlKeySep = "\x00"

// ParseTOML decodes a TOML document. Tables keep the key order in which they
// appear in the document; keys the decoder metadata does not report are
// appended in sorted order.
func ParseTOML(data []byte) (*Object, error) {
	var raw map[string]any

	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	order := tomlKeyOrder(md.Keys())

	return tomlTable(raw, "", order)
}

// tomlKeyOrder groups the metadata keys by parent path, in document order.
func tomlKeyOrder(keys []toml.Key) map[string][]string {
	order := make(map[string][]string)
	seen := make(map[string]bool)

	for _, k := range keys {
		if len(k) == 0 {
			continue
		}

		parent := strings.Join(k[:len(k)-1], tomlKeySep)
		name := k[len(k)-1]

		id := parent + tomlKeySep + tomlKeySep + name
		if seen[id] {
			continue
		}

		seen[id] = true
		order[parent] = append(order[parent], name)
	}

	return order
}

func tomlTable(table map[string]any, prefix string, order map[string][]string) (*Object, error) {
	o := NewObject()

	keys := make([]string, 0, len(table))
	placed := make(map[string]bool, len(table))

	for _, k := range order[prefix] {
		if _, ok := table[k]; ok && !placed[k] {
			keys = append(keys, k)
			placed[k] = true
		}
	}

	var rest []string

	for k := range table {
		if !placed[k] {
			rest = append(rest, k)
		}
	}

	sort.Strings(rest)

	keys = append(keys, rest...)

	for _, k := range keys {
		child := k
		if prefix != "" {
			child = prefix + tomlKeySep + k
		}

		v, err := tomlValue(table[k], child, order)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}

		o.Set(k, v)
	}

	return o, nil
}

func tomlValue(raw any, prefix string, order map[string][]string) (Value, error) {
	switch x := raw.(type) {
	case map[string]any:
		return tomlTable(x, prefix, order)
	case []map[string]any:
		out := make(Array, len(x))

		for i, item := range x {
			v, err := tomlTable(item, prefix, order)
			if err != nil {
				return nil, err
			}

			out[i] = v
		}

		return out, nil
	case []any:
		out := make(Array, len(x))

		for i, item := range x {
			v, err := tomlValue(item, prefix, order)
			if err != nil {
				return nil, err
			}

			out[i] = v
		}

		return out, nil
	default:
		return FromGo(raw)
	}
}
