package adapter

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies a serialisation format.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat accepts a format name such as "json" or "yml".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want json, yaml or toml)", name)
	}
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("cannot infer format of %q: no extension", path)
	}

	return ParseFormat(ext)
}

// Encode writes v to w in the given format.
func Encode(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
	case FormatTOML:
		// TOML integers are signed, values above math.MaxInt64 are rejected here.
		if err := toml.NewEncoder(w).Encode(v); err != nil {
			return fmt.Errorf("failed to encode TOML: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format %q", format)
	}

	return nil
}

// Decode reads v from r in the given format.
func Decode(r io.Reader, format Format, v any) error {
	var err error

	switch format {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(v)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(v)
	case FormatTOML:
		err = toml.NewDecoder(r).Decode(v)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}

	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", strings.ToUpper(string(format)), err)
	}

	return nil
}
