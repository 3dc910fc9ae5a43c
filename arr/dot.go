package arr

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Path lookup for arbitrarily nested values
//
// A path is a string of member names separated by "." where any segment may
// also be written in brackets. "a.b[1]", "a.b.1" and "a[b][1]" are the same
// path. Empty segments are discarded, so "a..b", ".a.b" and "a.b." all mean
// "a.b", and "" means the root itself.
//
//	doc := map[string]any{
//	    "a": map[string]any{"b": map[string]any{"c": []any{1, 2}}},
//	}
//
//	Value(doc, "a.b.c[1]")  → 2, true
//	Value(doc, "a.x.c")     → nil, false
//	Get(doc, "a.x", "none") → "none"
// ─────────────────────────────────────────────────────────────────────────────

var bracketSegment = regexp.MustCompile(`\[([^\[\]]*)\]`)

// Indexer is implemented by values that resolve path segments themselves.
// Index reports false when seg does not name a member.
type Indexer interface {
	Index(seg string) (any, bool)
}

// Path is a parsed path expression: a list of non-empty segments.
type Path []string

// ParsePath normalises expr into its segments. Every "[x]" becomes ".x."
// before splitting on ".", and empty segments are dropped.
func ParsePath(expr string) Path {
	normalised := bracketSegment.ReplaceAllString(expr, ".${1}.")
	parts := strings.Split(normalised, ".")
	out := make(Path, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// String renders p in dotted form.
func (p Path) String() string { return strings.Join(p, ".") }

// Lookup walks root segment by segment. It reports false as soon as the
// current value cannot be indexed or the segment is missing. An empty path
// returns root.
func (p Path) Lookup(root any) (any, bool) {
	current := root
	for _, seg := range p {
		next, ok := step(current, seg)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// Value resolves path against root. The second result distinguishes a
// stored nil (nil, true) from a missing member (nil, false).
//
//	Value(m, "user.address.city")  // "London", true
//	Value(m, "users[0].name")      // "Alice", true
func Value(root any, path string) (any, bool) {
	return ParsePath(path).Lookup(root)
}

// ValueOf is a typed [Value]. A value found at path whose dynamic type is not
// T reports false.
func ValueOf[T any](root any, path string) (T, bool) {
	var zero T
	v, ok := Value(root, path)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// Get resolves path against root. Returns def[0] (or nil) when the path does
// not resolve.
//
//	Get(m, "user.address.city")        // "London"
//	Get(m, "user.missing", "default")  // "default"
func Get(root any, path string, def ...any) any {
	if v, ok := Value(root, path); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Has reports whether path resolves against root.
func Has(root any, path string) bool {
	_, ok := Value(root, path)
	return ok
}

// Dot flattens nested map[string]any and []any values into a single-level
// map keyed by path. Slice positions are written as "[i]".
//
//	Dot(map[string]any{"a": map[string]any{"b": []any{1, 2}}})
//	// → map[string]any{"a.b[0]": 1, "a.b[1]": 2}
//
// Every key of the result resolves back to its value with [Value], provided
// no member name itself contains "." or brackets.
func Dot(root any) map[string]any {
	out := make(map[string]any)
	dotFlatten("", root, out)
	return out
}

func dotFlatten(prefix string, v any, out map[string]any) {
	switch val := v.(type) {
	case map[string]any:
		for k, nested := range val {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			dotFlatten(key, nested, out)
		}
	case []any:
		for i, nested := range val {
			dotFlatten(prefix+"["+strconv.Itoa(i)+"]", nested, out)
		}
	default:
		if prefix != "" {
			out[prefix] = val
		}
	}
}

// step resolves one segment against current.
func step(current any, seg string) (any, bool) {
	switch v := current.(type) {
	case nil:
		return nil, false
	case map[string]any:
		val, ok := v[seg]
		return val, ok
	case []any:
		i, ok := sliceIndex(seg, len(v))
		if !ok {
			return nil, false
		}
		return v[i], true
	case Indexer:
		return v.Index(seg)
	}
	return reflectStep(reflect.ValueOf(current), seg)
}

func reflectStep(rv reflect.Value, seg string) (any, bool) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		key, ok := mapKey(rv.Type().Key(), seg)
		if !ok {
			return nil, false
		}
		val := rv.MapIndex(key)
		if !val.IsValid() {
			return nil, false
		}
		return val.Interface(), true
	case reflect.Slice, reflect.Array:
		i, ok := sliceIndex(seg, rv.Len())
		if !ok {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	case reflect.Struct:
		return structField(rv, seg)
	default:
		return nil, false
	}
}

// mapKey converts seg into a key of type kt. Only string and integer keyed
// maps are addressable by path.
func mapKey(kt reflect.Type, seg string) (reflect.Value, bool) {
	key := reflect.New(kt).Elem()
	switch kt.Kind() {
	case reflect.String:
		key.SetString(seg)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(seg, 10, kt.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		key.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(seg, 10, kt.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		key.SetUint(n)
	default:
		return reflect.Value{}, false
	}
	return key, true
}

// structField matches seg against exported field names first, then against
// the name part of their json tags.
func structField(rv reflect.Value, seg string) (any, bool) {
	rt := rv.Type()
	if f, ok := rt.FieldByName(seg); ok && f.IsExported() {
		fv, err := rv.FieldByIndexErr(f.Index)
		if err != nil {
			return nil, false
		}
		return fv.Interface(), true
	}
	for i := range rt.NumField() {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name != "" && name != "-" && name == seg {
			return rv.Field(i).Interface(), true
		}
	}
	return nil, false
}

// sliceIndex accepts canonical non-negative decimal indices only: no sign,
// no leading zeros, and within [0, n).
func sliceIndex(seg string, n int) (int, bool) {
	if seg == "" || (len(seg) > 1 && seg[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			return 0, false
		}
	}
	i, err := strconv.Atoi(seg)
	if err != nil || i >= n {
		return 0, false
	}
	return i, true
}
