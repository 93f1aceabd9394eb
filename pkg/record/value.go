// Package record is the shared runtime behind every record type: field
// tables, generic access by field name, conversion to and from the generic
// tree, validation, equality and hashing.
package record

import (
	"github.com/gofhir/models/pkg/terminology"
	"github.com/gofhir/models/pkg/tree"
)

// Value is anything a field can hold.
type Value interface {
	// FHIRType returns the FHIR type code, e.g. "code", "Period" or the
	// qualified backbone name "Claim.item".
	FHIRType() string
}

// Primitive is a leaf value carried as a JSON string, number or boolean.
type Primitive interface {
	Value
	MarshalTree() any
	UnmarshalTree(v any) error
	// Validate checks the lexical form and range of the current value.
	Validate() error
}

// Composite is a record with declared fields.
type Composite interface {
	Value
	Fields() FieldSet
}

// Resource is a top-level composite identified by resourceType.
type Resource interface {
	Composite
	ResourceType() string
}

// Embedded holds a resource inside another one. Resources of a registered
// type are decoded into records; others are kept as opaque trees.
type Embedded interface {
	Value
	Resource() Resource
	SetResource(Resource)
	Opaque() *tree.Object
	SetOpaque(*tree.Object)
}

// Coded values expose the codes a binding is checked against. textOnly is
// set for a concept carrying only free text.
type Coded interface {
	Codes() (codes []terminology.Code, textOnly bool)
}

// ExtrasHolder keeps keys that are not declared fields: primitive extension
// siblings such as "_status" and, when configured, unknown elements.
type ExtrasHolder interface {
	UnknownElements() *tree.Object
	SetUnknownElements(*tree.Object)
}

// Extras implements ExtrasHolder; embed it in base types.
type Extras struct {
	extras *tree.Object
}

// UnknownElements returns the preserved keys in input order.
func (e *Extras) UnknownElements() *tree.Object { return e.extras }

// SetUnknownElements replaces the preserved keys.
func (e *Extras) SetUnknownElements(o *tree.Object) { e.extras = o }

// Choice is a tagged union over a field's alternatives. The dynamic type of
// Value is the tag, so at most one alternative is ever populated.
type Choice struct {
	Value Value
}

// Type returns the type code of the populated alternative, or "".
func (c Choice) Type() string {
	if c.Value == nil {
		return ""
	}
	return c.Value.FHIRType()
}

// IsZero reports whether no alternative is populated.
func (c Choice) IsZero() bool { return c.Value == nil }
