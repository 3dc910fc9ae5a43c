package collections

import "errors"

// Sentinel errors returned by collections operations.
var (
	// ErrUnsupportedKey is returned by [Map.MarshalJSON] when a key cannot be
	// rendered as a JSON object member name.
	ErrUnsupportedKey = errors.New("collections: key type cannot be encoded as a JSON member name")
)
