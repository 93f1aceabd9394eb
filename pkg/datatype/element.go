// Package datatype holds the FHIR R4 primitive and complex datatypes shared
// by the resource packages, and the base tables every element, backbone
// element and resource table starts from.
package datatype

import (
	"github.com/gofhir/models/pkg/primitive"
	"github.com/gofhir/models/pkg/record"
	"github.com/gofhir/models/pkg/schema"
	"github.com/gofhir/models/pkg/terminology"
	"github.com/gofhir/models/pkg/tree"
)

// Binding strength shorthands used in the field tables.
const (
	Required   = schema.StrengthRequired
	Extensible = schema.StrengthExtensible
	Preferred  = schema.StrengthPreferred
	Example    = schema.StrengthExample
)

func init() {
	for _, name := range []string{
		primitive.TypeBoolean, primitive.TypeInteger, primitive.TypePositiveInt,
		primitive.TypeUnsignedInt, primitive.TypeDecimal, primitive.TypeString,
		primitive.TypeCode, primitive.TypeID, primitive.TypeURI, primitive.TypeURL,
		primitive.TypeCanonical, primitive.TypeOID, primitive.TypeUUID,
		primitive.TypeMarkdown, primitive.TypeBase64Binary, primitive.TypeDate,
		primitive.TypeDateTime, primitive.TypeInstant, primitive.TypeTime,
		primitive.TypeXHTML,
	} {
		schema.Default().Register(&schema.Type{Name: name, Kind: schema.KindPrimitive})
	}
}

// Element is the base of every complex datatype.
type Element struct {
	ID        *String
	Extension []Extension
	record.Extras
}

// BackboneElement is the base of nested resource components.
type BackboneElement struct {
	Element
	ModifierExtension []Extension
}

// DomainResource is the base of every resource.
type DomainResource struct {
	ID                *ID
	Meta              *Meta
	ImplicitRules     *URI
	Language          *Code
	Text              *Narrative
	Contained         []ContainedResource
	Extension         []Extension
	ModifierExtension []Extension
	record.Extras
}

// ElementTable registers a complex datatype table with the Element fields
// in front.
func ElementTable[T any](name string, base func(*T) *Element, fields ...record.Accessor[T]) *record.Table[T] {
	all := append(elementFields(base), fields...)
	return record.NewTable(name, schema.KindComposite, all...)
}

// BackboneTable registers a backbone component table. name is the
// qualified FHIR path, e.g. "Claim.item.detail".
func BackboneTable[T any](name string, base func(*T) *BackboneElement, fields ...record.Accessor[T]) *record.Table[T] {
	all := append(backboneFields(base), fields...)
	return record.NewTable(name, schema.KindComposite, all...)
}

// ResourceTable registers a resource table with the DomainResource fields
// and invariants in front.
func ResourceTable[T any](name string, base func(*T) *DomainResource, fields ...record.Accessor[T]) *record.Table[T] {
	all := []record.Accessor[T]{
		record.Opt("id", func(t *T) **ID { return &base(t).ID }, record.Short("Logical id of this artifact")),
		record.Opt("meta", func(t *T) **Meta { return &base(t).Meta }),
		record.Opt("implicitRules", func(t *T) **URI { return &base(t).ImplicitRules }),
		record.Opt("language", func(t *T) **Code { return &base(t).Language },
			record.Bind(Preferred, terminology.Languages)),
		record.Opt("text", func(t *T) **Narrative { return &base(t).Text }),
		record.List("contained", func(t *T) *[]ContainedResource { return &base(t).Contained }),
		record.List("extension", func(t *T) *[]Extension { return &base(t).Extension }),
		record.List("modifierExtension", func(t *T) *[]Extension { return &base(t).ModifierExtension }),
	}
	all = append(all, fields...)
	return record.NewTable(name, schema.KindResource, all...).Constraints(DomainResourceConstraints...)
}

func elementFields[T any](base func(*T) *Element) []record.Accessor[T] {
	return []record.Accessor[T]{
		record.Opt("id", func(t *T) **String { return &base(t).ID }),
		record.List("extension", func(t *T) *[]Extension { return &base(t).Extension }),
	}
}

func backboneFields[T any](base func(*T) *BackboneElement) []record.Accessor[T] {
	return append(
		elementFields(func(t *T) *Element { return &base(t).Element }),
		record.List("modifierExtension", func(t *T) *[]Extension { return &base(t).ModifierExtension }),
	)
}

// DomainResourceConstraints are the invariants every resource inherits.
var DomainResourceConstraints = []schema.Constraint{
	{
		Key:        "dom-2",
		Severity:   "error",
		Human:      "If the resource is contained in another resource, it SHALL NOT contain nested Resources",
		Expression: "contained.contained.empty()",
	},
	{
		Key:        "dom-4",
		Severity:   "error",
		Human:      "If a resource is contained in another resource, it SHALL NOT have a meta.versionId or a meta.lastUpdated",
		Expression: "contained.meta.versionId.empty() and contained.meta.lastUpdated.empty()",
	},
	{
		Key:        "dom-5",
		Severity:   "error",
		Human:      "If a resource is contained in another resource, it SHALL NOT have a security label",
		Expression: "contained.meta.security.empty()",
	},
	{
		Key:        "dom-6",
		Severity:   "warning",
		Human:      "A resource should have narrative for robust management",
		Expression: "text.`div`.exists()",
	},
}

// ContainedResource holds a resource inside DomainResource.contained.
// Resources of a registered type are decoded into records; anything else
// is kept as an opaque tree and re-emitted unchanged.
type ContainedResource struct {
	resource record.Resource
	opaque   *tree.Object
}

// Contain wraps r for DomainResource.contained.
func Contain(r record.Resource) ContainedResource {
	return ContainedResource{resource: r}
}

func (ContainedResource) FHIRType() string { return "Resource" }

// Resource returns the decoded resource, or nil for an opaque one.
func (c *ContainedResource) Resource() record.Resource { return c.resource }

// SetResource replaces the content with a decoded resource.
func (c *ContainedResource) SetResource(r record.Resource) {
	c.resource, c.opaque = r, nil
}

// Opaque returns the raw tree of a resource of an unregistered type.
func (c *ContainedResource) Opaque() *tree.Object { return c.opaque }

// SetOpaque replaces the content with a raw tree.
func (c *ContainedResource) SetOpaque(o *tree.Object) {
	c.resource, c.opaque = nil, o
}

// ResourceType returns the resourceType of either form.
func (c *ContainedResource) ResourceType() string {
	if c.resource != nil {
		return c.resource.ResourceType()
	}
	if c.opaque != nil {
		s, _ := c.opaque.GetString("resourceType")
		return s
	}
	return ""
}

// LocalID returns the id used to reference the resource as "#id".
func (c *ContainedResource) LocalID() string {
	if c.resource != nil {
		if v, ok := record.Get(c.resource, "id"); ok {
			if id, ok := v.(*ID); ok {
				return string(*id)
			}
		}
		return ""
	}
	if c.opaque != nil {
		s, _ := c.opaque.GetString("id")
		return s
	}
	return ""
}
