package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/hasbyte1/go-fn-utils/collections"
)

// Object is a decoded object whose members iterate in document order.
type Object = collections.Map[string, any]

var errTrailingData = errors.New("unexpected data after top-level value")

// DecodeOrdered is [Decode] except that objects become *Object instead of
// map[string]any, keeping member order as written.
func DecodeOrdered(r io.Reader, format Format) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return DecodeBytesOrdered(data, format)
}

// DecodeBytesOrdered is [DecodeOrdered] over an in-memory buffer.
func DecodeBytesOrdered(data []byte, format Format) (any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrEmptyInput
	}
	if format == FormatAuto {
		format = sniff(trimmed)
	}

	switch format {
	case FormatJSON:
		if !json.Valid(trimmed) {
			// Unmarshal reports the syntax error with its position.
			var v any
			err := json.Unmarshal(trimmed, &v)
			if err == nil {
				err = errTrailingData
			}
			return nil, fmt.Errorf("decode JSON: %w", err)
		}
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		v, err := decodeToken(dec)
		if err != nil {
			return nil, fmt.Errorf("decode JSON: %w", err)
		}
		return v, nil
	case FormatYAML:
		var v any
		if err := yaml.UnmarshalWithOptions(trimmed, &v, yaml.UseOrderedMap()); err != nil {
			return nil, fmt.Errorf("decode YAML: %w", err)
		}
		return orderedYAML(v), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// decodeToken reads one JSON value from dec. The input has already been
// validated, so only the shape of the token stream is checked here.
func decodeToken(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch delim {
	case '{':
		obj := collections.NewMap[string, any]()
		for dec.More() {
			kt, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := kt.(string)
			if !ok {
				return nil, fmt.Errorf("object key is %T, want string", kt)
			}
			v, err := decodeToken(dec)
			if err != nil {
				return nil, err
			}
			obj.Set(key, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil
	case '[':
		list := make([]any, 0)
		for dec.More() {
			v, err := decodeToken(dec)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return list, nil
	}
	return nil, fmt.Errorf("unexpected delimiter %q", delim)
}

// orderedYAML is the ordered counterpart of normalize.
func orderedYAML(v any) any {
	switch val := v.(type) {
	case yaml.MapSlice:
		obj := collections.NewMap[string, any](len(val))
		for _, item := range val {
			obj.Set(fmt.Sprint(item.Key), orderedYAML(item.Value))
		}
		return obj
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = orderedYAML(e)
		}
		return out
	default:
		return normalize(val)
	}
}

// Plain converts an ordered tree back into the map[string]any value model.
func Plain(v any) any {
	switch val := v.(type) {
	case *Object:
		out := make(map[string]any, val.Len())
		for k, e := range val.All() {
			out[k] = Plain(e)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = Plain(e)
		}
		return out
	default:
		return val
	}
}
