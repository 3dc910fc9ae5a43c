// Package document decodes JSON and YAML input into plain Go values:
// map[string]any, []any, string, float64, bool and nil. DecodeOrdered keeps
// object member order by decoding objects as *Object instead.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// Format names an input encoding.
type Format string

const (
	FormatAuto Format = ""
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	ErrUnknownFormat = errors.New("document: unknown format")
	ErrEmptyInput    = errors.New("document: empty input")
)

// ParseFormat accepts "json", "yaml", "yml" or "" (auto).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// DetectFormat guesses the format from a file name. Unknown extensions are
// left to content sniffing.
func DetectFormat(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatAuto
}

// Decode reads all of r and decodes it. With FormatAuto, input whose first
// non-space byte is '{' or '[' is treated as JSON and anything else as YAML.
func Decode(r io.Reader, format Format) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return DecodeBytes(data, format)
}

// DecodeBytes is [Decode] over an in-memory buffer.
func DecodeBytes(data []byte, format Format) (any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrEmptyInput
	}
	if format == FormatAuto {
		format = sniff(trimmed)
	}

	var v any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return nil, fmt.Errorf("decode JSON: %w", err)
		}
		return v, nil
	case FormatYAML:
		if err := yaml.Unmarshal(trimmed, &v); err != nil {
			return nil, fmt.Errorf("decode YAML: %w", err)
		}
		return normalize(v), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func sniff(data []byte) Format {
	switch data[0] {
	case '{', '[':
		return FormatJSON
	}
	return FormatYAML
}

// normalize rewrites YAML-specific shapes into the JSON value model so both
// formats are looked up the same way.
func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, e := range val {
			out[k] = normalize(e)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, e := range val {
			out[fmt.Sprint(k)] = normalize(e)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = normalize(e)
		}
		return out
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case uint64:
		return float64(val)
	case float32:
		return float64(val)
	default:
		return val
	}
}
