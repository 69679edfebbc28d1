// SPDX-License-Identifier: MIT

package circuit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects a program encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor maps a file extension to a Format.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrFormat, filepath.Ext(path))
	}
}

// Decode parses and validates a program. Unknown fields are rejected.
func Decode(data []byte, f Format) (Program, error) {
	var p Program
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return Program{}, fmt.Errorf("circuit: decode json: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil {
			return Program{}, fmt.Errorf("circuit: decode yaml: %w", err)
		}
	default:
		return Program{}, fmt.Errorf("%w: %q", ErrFormat, f)
	}
	if err := Validate(p); err != nil {
		return Program{}, err
	}

	return p, nil
}

// LoadFile reads a program, choosing the format by extension.
func LoadFile(path string) (Program, error) {
	f, err := FormatFor(path)
	if err != nil {
		return Program{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Program{}, fmt.Errorf("circuit: %w", err)
	}

	return Decode(data, f)
}

// Encode renders p in the given format.
func Encode(p Program, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return json.MarshalIndent(p, "", "  ")
	case FormatYAML:
		return yaml.Marshal(p)
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, f)
	}
}
