package mapping

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"json-mapper/internal/common"
	"json-mapper/value"
)

// ErrNotObject is returned when a spec or source document is not an object.
var ErrNotObject = errors.New("document is not an object")

// Format is a document encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
	FormatTOML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return common.UnknownStr
	}
}

// ParseFormat parses a format name as accepted on the command line.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("unknown format %q (want json, yaml or toml)", s)
	}
}

// FormatFromPath picks the format from the file extension. Anything that is
// not YAML or TOML is read as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// Parse decodes data in the given format.
func Parse(data []byte, f Format) (value.Value, error) {
	switch f {
	case FormatYAML:
		return value.ParseYAML(data)
	case FormatTOML:
		obj, err := value.ParseTOML(data)
		if err != nil {
			return nil, err
		}

		return obj, nil
	default:
		return value.ParseJSON(data)
	}
}

// Read decodes a whole document from r.
func Read(r io.Reader, f Format) (value.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	return Parse(data, f)
}

// LoadFile reads and decodes the document at path, choosing the format by
// extension.
func LoadFile(path string) (value.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	v, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return v, nil
}

// LoadObjectFile is LoadFile for documents that must be objects.
func LoadObjectFile(path string) (*value.Object, error) {
	v, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	obj, ok := v.(*value.Object)
	if !ok || obj == nil {
		return nil, fmt.Errorf("%s: %w, got %s", path, ErrNotObject, value.TypeOf(v))
	}

	return obj, nil
}

// Marshal encodes obj in the given format. TOML cannot hold nulls, so null
// members are left out of TOML output.
func Marshal(obj *value.Object, f Format) ([]byte, error) {
	switch f {
	case FormatYAML:
		return yaml.Marshal(obj)
	case FormatTOML:
		var buf bytes.Buffer

		err := toml.NewEncoder(&buf).Encode(value.ToGo(obj))
		if err != nil {
			return nil, err
		}

		return buf.Bytes(), nil
	default:
		data, err := json.MarshalIndent(obj, "", "  ")
		if err != nil {
			return nil, err
		}

		return append(data, '\n'), nil
	}
}

// Write encodes obj to w.
func Write(w io.Writer, obj *value.Object, f Format) error {
	data, err := Marshal(obj, f)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", f, err)
	}

	_, err = w.Write(data)

	return err
}

// WriteFile writes obj to path, choosing the format by extension.
func WriteFile(obj *value.Object, path string) error {
	f := FormatFromPath(path)

	data, err := Marshal(obj, f)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", f, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
