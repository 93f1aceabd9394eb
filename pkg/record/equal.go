package record

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/gofhir/models/pkg/tree"
)

// Equal reports whether two records have the same type and the same
// field-by-field content, including list order.
func Equal(a, b Composite) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.FHIRType() != b.FHIRType() {
		return false
	}
	return tree.Equal(ToTree(a), ToTree(b))
}

// Hash returns a content hash consistent with Equal.
func Hash(c Composite) uint64 {
	if c == nil {
		return 0
	}
	data, err := tree.MarshalJSON(canonical(ToTree(c)))
	if err != nil {
		return 0
	}
	return xxhash.Sum64(data)
}

// canonical rebuilds objects with sorted keys so the encoding does not
// depend on key order.
func canonical(v any) any {
	switch x := v.(type) {
	case *tree.Object:
		out := tree.NewObject()
		for _, k := range tree.SortedKeys(x) {
			e, _ := x.Get(k)
			out.Set(k, canonical(e))
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = canonical(e)
		}
		return out
	default:
		return v
	}
}

// Clone returns a deep copy of c, preserving extra keys. Fields assigned
// directly are not format-checked, so the copy fails with the decode error
// of any value that does not survive a round trip.
func Clone[T any, PT interface {
	*T
	Composite
}](c PT) (PT, error) {
	out := PT(new(T))
	if c == nil {
		return out, nil
	}
	if err := FromTree(ToTree(c), out, Unknown(PreserveUnknown)); err != nil {
		return nil, fmt.Errorf("clone %s: %w", c.FHIRType(), err)
	}
	return out, nil
}
