package value

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// ParseJSON decodes a single JSON document, keeping object key order.
func ParseJSON(data []byte) (Value, error) {
	return ReadJSON(bytes.NewReader(data))
}

// ReadJSON decodes a single JSON document from r, keeping object key order.
// Trailing data after the document is an error.
func ReadJSON(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := readJSONValue(dec)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("invalid JSON after document: %w", err)
		}

		return nil, errors.New("invalid JSON: trailing data after document")
	}

	return v, nil
}

func readJSONValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}

		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return readJSONObject(dec)
		case '[':
			return readJSONArray(dec)
		default:
			return nil, fmt.Errorf("invalid JSON: unexpected delimiter %q", rune(t))
		}
	case string:
		return String(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid JSON number %q: %w", t, err)
		}

		return Number(f), nil
	case float64:
		return Number(t), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null{}, nil
	default:
		return nil, fmt.Errorf("invalid JSON: unexpected token %v", tok)
	}
}

func readJSONObject(dec *json.Decoder) (*Object, error) {
	o := NewObject()

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("invalid JSON: object key must be a string, got %v", tok)
		}

		v, err := readJSONValue(dec)
		if err != nil {
			return nil, err
		}

		o.Set(key, v)
	}

	// closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return o, nil
}

func readJSONArray(dec *json.Decoder) (Array, error) {
	out := Array{}

	for dec.More() {
		v, err := readJSONValue(dec)
		if err != nil {
			return nil, err
		}

		out = append(out, v)
	}

	// closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return out, nil
}

// MarshalJSON encodes the object with its members in order. Undefined
// members are omitted.
func (o *Object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer

	buf.WriteByte('{')

	first := true

	for _, k := range o.keys {
		v := o.values[k]
		if v == nil {
			continue
		}

		if !first {
			buf.WriteByte(',')
		}

		first = false

		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}

		vb, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}

		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalJSON encodes a nil array as [] and undefined elements as null.
func (a Array) MarshalJSON() ([]byte, error) {
	items := make([]any, len(a))
	for i, v := range a {
		if v == nil {
			items[i] = Null{}
			continue
		}

		items[i] = v
	}

	return json.Marshal(items)
}

// MarshalJSON encodes null.
func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// MarshalJSON encodes the error message as a string.
func (e Error) MarshalJSON() ([]byte, error) {
	if e.Err == nil {
		return []byte("null"), nil
	}

	return json.Marshal(e.Err.Error())
}

// MarshalJSON encodes null: functions have no data representation.
func (Func) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// MarshalJSON encodes the pattern source as a string.
func (r Regexp) MarshalJSON() ([]byte, error) {
	if r.Regexp == nil {
		return []byte("null"), nil
	}

	return json.Marshal(r.String())
}
