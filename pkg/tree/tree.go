// Package tree is the generic, JSON-compatible tree that records convert to
// and from. Objects keep insertion order; sequences are []any; leaves are
// string, bool, decimal.Decimal or nil.
package tree

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Object is an insertion-ordered string-keyed map.
type Object struct {
	keys []string
	vals map[string]any
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{vals: make(map[string]any)}
}

// Set stores v under key, keeping the original position when key exists.
func (o *Object) Set(key string, v any) {
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = v
}

// Get returns the value under key.
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.vals[key]
	return v, ok
}

// GetString returns the string stored under key.
func (o *Object) GetString(key string) (string, bool) {
	v, ok := o.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Delete removes key.
func (o *Object) Delete(key string) {
	if _, ok := o.vals[key]; !ok {
		return
	}
	delete(o.vals, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Range calls fn for every entry in order until fn returns false.
func (o *Object) Range(fn func(key string, v any) bool) {
	if o == nil {
		return
	}
	for _, k := range o.keys {
		if !fn(k, o.vals[k]) {
			return
		}
	}
}

// Clone returns a deep copy.
func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}
	c := &Object{keys: make([]string, len(o.keys)), vals: make(map[string]any, len(o.vals))}
	copy(c.keys, o.keys)
	for k, v := range o.vals {
		c.vals[k] = Clone(v)
	}
	return c
}

// MarshalJSON encodes the object in key order.
func (o *Object) MarshalJSON() ([]byte, error) {
	return MarshalJSON(o)
}

// Clone deep-copies any tree value.
func Clone(v any) any {
	switch t := v.(type) {
	case *Object:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Clone(e)
		}
		return out
	default:
		return v
	}
}

// Equal reports whether two tree values are structurally equal. Object key
// order is ignored; sequence order is significant; numbers compare by
// their canonical text so that precision is part of the value.
func Equal(a, b any) bool {
	switch x := a.(type) {
	case *Object:
		y, ok := b.(*Object)
		if !ok || x.Len() != y.Len() {
			return false
		}
		if x == nil || y == nil {
			return x == y
		}
		for k, xv := range x.vals {
			yv, ok := y.vals[k]
			if !ok || !Equal(xv, yv) {
				return false
			}
		}
		return true
	case []any:
		y, ok := b.([]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case decimal.Decimal:
		y, ok := b.(decimal.Decimal)
		return ok && FormatNumber(x) == FormatNumber(y)
	case string, bool:
		return a == b
	case nil:
		return b == nil
	default:
		return false
	}
}

// FormatNumber renders a decimal keeping its scale, so "1.50" stays "1.50".
func FormatNumber(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

// Kind names the JSON kind of a tree value for diagnostics.
func Kind(v any) string {
	switch v.(type) {
	case *Object:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case decimal.Decimal:
		return "number"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// SortedKeys returns the keys of o in lexical order.
func SortedKeys(o *Object) []string {
	keys := o.Keys()
	sort.Strings(keys)
	return keys
}
