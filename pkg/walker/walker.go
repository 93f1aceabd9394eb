// Package walker traverses the tree form of a record, element by element,
// resolving each element's schema type. Contained resources are visited
// with their own types.
package walker

import (
	"fmt"
	"strings"

	"github.com/gofhir/models/pkg/schema"
	"github.com/gofhir/models/pkg/tree"
)

// Context describes the element being visited.
type Context struct {
	// Object is the element's tree.
	Object *tree.Object

	// Type is the element's registered type.
	Type *schema.Type

	// FHIRPath is the path to the element, e.g. "Claim.item[0].detail[1]".
	FHIRPath string

	// Resource is the nearest enclosing resource, the element itself for a
	// resource.
	Resource *tree.Object

	// IsContained reports whether the element sits inside a contained
	// resource.
	IsContained bool
}

// Visitor is called for each element. Returning false skips the element's
// children.
type Visitor func(ctx *Context) bool

// Walker traverses trees against a type registry.
type Walker struct {
	registry *schema.Registry
}

// New creates a Walker. A nil registry means schema.Default().
func New(reg *schema.Registry) *Walker {
	if reg == nil {
		reg = schema.Default()
	}
	return &Walker{registry: reg}
}

// Walk visits obj, a resource or element of type typeName, then every
// nested element of a registered type in document order. Elements of
// unregistered types, opaque contained resources included, are skipped.
func (w *Walker) Walk(obj *tree.Object, typeName string, visitor Visitor) {
	t, err := w.registry.Lookup(typeName)
	if err != nil {
		return
	}
	ctx := &Context{Object: obj, Type: t, FHIRPath: typeName}
	if t.IsResource() {
		ctx.Resource = obj
	}
	w.walk(ctx, visitor)
}

func (w *Walker) walk(ctx *Context, visitor Visitor) {
	if !visitor(ctx) {
		return
	}
	ctx.Object.Range(func(key string, val any) bool {
		if key == "resourceType" || strings.HasPrefix(key, "_") {
			return true
		}
		f, alt, ok := ctx.Type.Resolve(key)
		if !ok {
			return true
		}
		childType := f.Type
		if alt != "" {
			childType = alt
		}
		switch x := val.(type) {
		case *tree.Object:
			w.child(ctx, x, f, childType, ctx.FHIRPath+"."+key, visitor)
		case []any:
			for i, item := range x {
				if o, ok := item.(*tree.Object); ok {
					w.child(ctx, o, f, childType, fmt.Sprintf("%s.%s[%d]", ctx.FHIRPath, key, i), visitor)
				}
			}
		}
		return true
	})
}

func (w *Walker) child(parent *Context, obj *tree.Object, f schema.Field, typeName, fhirPath string, visitor Visitor) {
	ctx := &Context{
		Object:      obj,
		FHIRPath:    fhirPath,
		Resource:    parent.Resource,
		IsContained: parent.IsContained,
	}
	if f.Kind == schema.KindResource {
		typeName, _ = obj.GetString("resourceType")
		ctx.Resource = obj
		ctx.IsContained = true
	}
	t, err := w.registry.Lookup(typeName)
	if err != nil {
		return
	}
	ctx.Type = t
	w.walk(ctx, visitor)
}
