package record

import (
	"github.com/gofhir/models/pkg/tree"
)

// ToTree converts a record into its generic tree form: resourceType first
// for resources, then populated fields in declaration order with choice
// groups under their concrete names, then preserved extra keys. A
// primitive's "_name" sibling is emitted right after the primitive.
// Explicitly empty lists are emitted as [].
func ToTree(c Composite) *tree.Object {
	obj := tree.NewObject()
	if c == nil {
		return obj
	}
	if r, ok := c.(Resource); ok {
		obj.Set("resourceType", r.ResourceType())
	}
	var extras *tree.Object
	if h, ok := c.(ExtrasHolder); ok {
		extras = h.UnknownElements()
	}
	emitted := make(map[string]bool)
	sibling := func(key string) {
		if extras == nil {
			return
		}
		if v, ok := extras.Get("_" + key); ok {
			obj.Set("_"+key, tree.Clone(v))
			emitted["_"+key] = true
		}
	}

	fs := c.Fields()
	for i := 0; i < fs.Len(); i++ {
		s := fs.Slot(i)
		if !s.Present() {
			continue
		}
		f := s.Field()
		vals := s.Values()
		switch {
		case f.IsList():
			arr := make([]any, 0, len(vals))
			for _, v := range vals {
				arr = append(arr, valueTree(v))
			}
			obj.Set(f.Name, arr)
			sibling(f.Name)
		case f.IsChoice():
			key := f.ConcreteName(vals[0].FHIRType())
			obj.Set(key, valueTree(vals[0]))
			sibling(key)
		default:
			obj.Set(f.Name, valueTree(vals[0]))
			sibling(f.Name)
		}
	}
	if extras != nil {
		extras.Range(func(k string, v any) bool {
			if _, taken := obj.Get(k); !taken && !emitted[k] {
				obj.Set(k, tree.Clone(v))
			}
			return true
		})
	}
	return obj
}

func valueTree(v Value) any {
	switch x := v.(type) {
	case Primitive:
		return x.MarshalTree()
	case Embedded:
		if r := x.Resource(); r != nil {
			return ToTree(r)
		}
		if o := x.Opaque(); o != nil {
			return o.Clone()
		}
		return tree.NewObject()
	case Composite:
		return ToTree(x)
	default:
		return nil
	}
}

// MarshalJSON encodes a record as JSON in field order.
func MarshalJSON(c Composite) ([]byte, error) {
	return tree.MarshalJSON(ToTree(c))
}
