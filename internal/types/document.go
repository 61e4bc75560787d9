package types

import (
	"encoding/json"
	"slices"
	"strconv"
)

// Document is a decoded glTF JSON chunk: a generic tree of maps, slices,
// strings, json.Number, bools and nil. It is treated as read-only.
type Document map[string]any

// Get walks keys from the document root. See Lookup.
func (d Document) Get(keys ...string) (any, bool) {
	return Lookup(map[string]any(d), keys...)
}

// Projection extracts one logical section from a document.
type Projection func(Document) (any, bool)

// Resolver resolves a logical section name for a fixed document.
type Resolver func(name string) (any, bool)

// Path returns a Projection that walks keys from the document root.
func Path(keys ...string) Projection {
	return func(d Document) (any, bool) {
		return d.Get(keys...)
	}
}

// Lookup walks nested objects by key. A missing key or a non-object
// intermediate is treated as an empty mapping, so the walk never fails; it
// reports false instead. A JSON null at the end of the walk is absent too.
func Lookup(v any, keys ...string) (any, bool) {
	cur := v
	for _, key := range keys {
		next, ok := Object(cur)[key]
		if !ok {
			return nil, false
		}
		cur = next
	}
	if cur == nil {
		return nil, false
	}
	return cur, true
}

// Object returns v as a map, or nil if v is not a JSON object.
// Reading from the nil map is safe and yields nothing.
func Object(v any) map[string]any {
	switch m := v.(type) {
	case map[string]any:
		return m
	case Document:
		return m
	default:
		return nil
	}
}

// Array returns v as a slice, or nil if v is not a JSON array.
func Array(v any) []any {
	a, _ := v.([]any)
	return a
}

// Len returns the element count of an array or object, the byte length of
// a string, and 0 for anything else.
func Len(v any) int {
	switch t := v.(type) {
	case []any:
		return len(t)
	case map[string]any:
		return len(t)
	case Document:
		return len(t)
	case string:
		return len(t)
	default:
		return 0
	}
}

// Truthy reports whether v counts as a present, non-empty value: nil,
// false, zero, "" and empty arrays or objects do not.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case json.Number:
		f, err := strconv.ParseFloat(string(t), 64)
		return err != nil || f != 0
	case float64:
		return t != 0
	case string:
		return t != ""
	case []any, map[string]any, Document:
		return Len(t) > 0
	default:
		return true
	}
}

// Keys returns the keys of a JSON object in sorted order, or an empty
// slice if v is not an object.
func Keys(v any) []string {
	m := Object(v)
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Text returns v if it is a string, and "" otherwise.
func Text(v any) string {
	s, _ := v.(string)
	return s
}

// Field returns m[key] as-is, including a JSON null, or nil when the key
// is missing or m is not an object.
func Field(m any, key string) any {
	return Object(m)[key]
}

// First returns the first truthy value of m[keys...]. If none is truthy
// the value of the last key is returned unchanged, which may be nil.
func First(m any, keys ...string) any {
	var last any
	for _, key := range keys {
		last = Field(m, key)
		if Truthy(last) {
			return last
		}
	}
	return last
}
