package collections

import (
	"bytes"
	"encoding"
	"fmt"
	"iter"
	"reflect"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Map is a mapping that remembers the order in which keys were first
// inserted. Iteration (Keys, Values, Entries, Each, All) always follows that
// order, which makes it suitable for grouping results where the position of
// a group reflects where its first member was seen.
//
// Overwriting an existing key with [Map.Set] replaces the value in place and
// keeps the key's original position.
//
// The zero value is not usable; construct with [NewMap].
type Map[K comparable, V any] struct {
	keys  []K
	index map[K]int
	vals  []V
}

// NewMap returns an empty Map with room for capacity entries.
func NewMap[K comparable, V any](capacity ...int) *Map[K, V] {
	n := 0
	if len(capacity) > 0 && capacity[0] > 0 {
		n = capacity[0]
	}
	return &Map[K, V]{
		keys:  make([]K, 0, n),
		index: make(map[K]int, n),
		vals:  make([]V, 0, n),
	}
}

// FromEntries builds a Map from entries, applying them in order.
func FromEntries[K comparable, V any](entries ...Entry[K, V]) *Map[K, V] {
	m := NewMap[K, V](len(entries))
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// Set stores value under key. A new key is appended; an existing key keeps
// its position.
func (m *Map[K, V]) Set(key K, value V) {
	if i, ok := m.index[key]; ok {
		m.vals[i] = value
		return
	}
	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, value)
}

// Get returns the value stored under key and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if i, ok := m.index[key]; ok {
		return m.vals[i], true
	}
	var zero V
	return zero, false
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.index[key]
	return ok
}

// Delete removes key, preserving the relative order of the remaining keys.
// It reports whether the key was present.
func (m *Map[K, V]) Delete(key K) bool {
	i, ok := m.index[key]
	if !ok {
		return false
	}
	delete(m.index, key)
	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	m.vals = append(m.vals[:i], m.vals[i+1:]...)
	for j := i; j < len(m.keys); j++ {
		m.index[m.keys[j]] = j
	}
	return true
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return len(m.keys) }

// Keys returns a copy of the keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// Values returns a copy of the values in key insertion order.
func (m *Map[K, V]) Values() []V {
	out := make([]V, len(m.vals))
	copy(out, m.vals)
	return out
}

// Entries returns the key/value pairs in insertion order.
func (m *Map[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], len(m.keys))
	for i, k := range m.keys {
		out[i] = Entry[K, V]{Key: k, Value: m.vals[i]}
	}
	return out
}

// Each calls fn(key, value) for every entry in insertion order. Returning
// false from fn stops the iteration.
func (m *Map[K, V]) Each(fn func(K, V) bool) {
	for i, k := range m.keys {
		if !fn(k, m.vals[i]) {
			return
		}
	}
}

// All returns an iterator over the entries in insertion order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.Each(yield)
	}
}

// Clone returns a shallow copy of m.
func (m *Map[K, V]) Clone() *Map[K, V] {
	out := NewMap[K, V](len(m.keys))
	for i, k := range m.keys {
		out.Set(k, m.vals[i])
	}
	return out
}

// ToMap returns the entries as a plain Go map. Ordering is lost.
func (m *Map[K, V]) ToMap() map[K]V {
	out := make(map[K]V, len(m.keys))
	for i, k := range m.keys {
		out[k] = m.vals[i]
	}
	return out
}

// String returns a human-readable representation: "{k1: v1, k2: v2}".
func (m *Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v: %v", k, m.vals[i])
	}
	sb.WriteByte('}')
	return sb.String()
}

// Index resolves a path segment against a string-keyed Map, so nested
// ordered documents can be walked by path. Maps with other key types never
// match.
func (m *Map[K, V]) Index(seg string) (any, bool) {
	key, ok := any(seg).(K)
	if !ok {
		return nil, false
	}
	v, ok := m.Get(key)
	if !ok {
		return nil, false
	}
	return v, true
}

// MarshalJSON encodes m as a JSON object whose members appear in insertion
// order. Keys must have a string, integer, float or bool kind, or implement
// encoding.TextMarshaler or fmt.Stringer; otherwise [ErrUnsupportedKey] is
// returned.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := keyString(k)
		if err != nil {
			return nil, err
		}
		kb, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(m.vals[i])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// keyString resolves a member name for k. String kinds are used as they
// are, then TextMarshaler and Stringer implementations, then the integer,
// float and bool kinds, so named types such as `type Make string` work.
func keyString(k any) (string, error) {
	rv := reflect.ValueOf(k)
	if rv.Kind() == reflect.String {
		return rv.String(), nil
	}
	switch v := k.(type) {
	case encoding.TextMarshaler:
		b, err := v.MarshalText()
		if err != nil {
			return "", err
		}
		return string(b), nil
	case fmt.Stringer:
		return v.String(), nil
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	}
	return "", fmt.Errorf("%w: %T", ErrUnsupportedKey, k)
}
