// Package schema holds the static field tables that describe every record
// type: the ordered field descriptors, their cardinality, their code
// bindings and the choice alternatives they accept.
package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofhir/models/pkg/terminology"
)

// Unbounded is the Max of a field that accepts any number of values.
const Unbounded = -1

// Structural lookup errors.
var (
	ErrUnknownType = errors.New("unknown type")
	ErrNotChoice   = errors.New("field is not a choice group")
)

// Kind classifies a field or a type.
type Kind int

// Kinds.
const (
	// KindPrimitive is a single leaf value (string, boolean, number, date...).
	KindPrimitive Kind = iota
	// KindComposite is an owned nested record.
	KindComposite
	// KindReference is a non-owning link to another record, never dereferenced.
	KindReference
	// KindChoice is a slot holding exactly one of several alternative types.
	KindChoice
	// KindResource is an embedded resource (contained or Bundle-like slots).
	KindResource
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindComposite:
		return "composite"
	case KindReference:
		return "reference"
	case KindChoice:
		return "choice"
	case KindResource:
		return "resource"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalText lets kinds render by name in JSON and YAML schema dumps.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Strength is a declared binding strength.
type Strength string

// Binding strengths.
const (
	StrengthRequired   Strength = "required"
	StrengthExtensible Strength = "extensible"
	StrengthPreferred  Strength = "preferred"
	StrengthExample    Strength = "example"
)

// Binding ties a coded field to a value set.
type Binding struct {
	Strength Strength              `json:"strength" yaml:"strength"`
	ValueSet *terminology.ValueSet `json:"-" yaml:"-"`
}

// URL returns the canonical URL of the bound value set.
func (b *Binding) URL() string {
	if b == nil || b.ValueSet == nil {
		return ""
	}
	return b.ValueSet.URL
}

// Field describes one declared field of a type.
type Field struct {
	// Name is the logical name. Choice fields use the name without [x].
	Name string `json:"name" yaml:"name"`
	Kind Kind   `json:"kind" yaml:"kind"`
	// Type is the FHIR type of the value, e.g. "CodeableConcept" or the
	// qualified backbone name "Claim.item". Empty for choice fields.
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
	// Choices are the type codes a choice field accepts, in declaration order.
	Choices []string `json:"choices,omitempty" yaml:"choices,omitempty"`
	Min     int      `json:"min" yaml:"min"`
	Max     int      `json:"max" yaml:"max"`
	Binding *Binding `json:"binding,omitempty" yaml:"binding,omitempty"`
	Short   string   `json:"short,omitempty" yaml:"short,omitempty"`
}

// IsList reports whether the field holds an ordered sequence.
func (f Field) IsList() bool { return f.Max == Unbounded || f.Max > 1 }

// IsChoice reports whether the field is a choice group.
func (f Field) IsChoice() bool { return f.Kind == KindChoice }

// Required reports whether a valid instance must populate the field.
func (f Field) Required() bool { return f.Min > 0 }

// MaxString renders Max the way FHIR does ("1" or "*").
func (f Field) MaxString() string {
	if f.Max == Unbounded {
		return "*"
	}
	return fmt.Sprint(f.Max)
}

// ConcreteName returns the JSON key used for a choice alternative, e.g.
// "serviced" + "dateTime" = "servicedDateTime".
func (f Field) ConcreteName(typeCode string) string {
	if !f.IsChoice() {
		return f.Name
	}
	return ConcreteName(f.Name, typeCode)
}

// JSONNames returns every JSON key the field can appear under.
func (f Field) JSONNames() []string {
	if !f.IsChoice() {
		return []string{f.Name}
	}
	names := make([]string, len(f.Choices))
	for i, c := range f.Choices {
		names[i] = ConcreteName(f.Name, c)
	}
	return names
}

// Accepts reports whether typeCode is one of the choice alternatives.
func (f Field) Accepts(typeCode string) bool {
	for _, c := range f.Choices {
		if c == typeCode {
			return true
		}
	}
	return false
}

// ConcreteName joins a logical choice name and a type code.
func ConcreteName(logical, typeCode string) string {
	if typeCode == "" {
		return logical
	}
	return logical + strings.ToUpper(typeCode[:1]) + typeCode[1:]
}

// Constraint is a FHIRPath invariant declared on a type.
type Constraint struct {
	Key        string `json:"key" yaml:"key"`
	Severity   string `json:"severity" yaml:"severity"` // error | warning
	Human      string `json:"human" yaml:"human"`
	Expression string `json:"expression" yaml:"expression"`
}

// Type is the table for one record type.
type Type struct {
	Name        string       `json:"name" yaml:"name"`
	Kind        Kind         `json:"kind" yaml:"kind"`
	Fields      []Field      `json:"fields,omitempty" yaml:"fields,omitempty"`
	Constraints []Constraint `json:"constraints,omitempty" yaml:"constraints,omitempty"`

	byName map[string]int
	byJSON map[string]jsonSlot
}

type jsonSlot struct {
	field  int
	choice string
}

func (t *Type) index() {
	t.byName = make(map[string]int, len(t.Fields))
	t.byJSON = make(map[string]jsonSlot, len(t.Fields))
	for i, f := range t.Fields {
		if _, dup := t.byName[f.Name]; dup {
			panic(fmt.Sprintf("schema: duplicate field %s.%s", t.Name, f.Name))
		}
		t.byName[f.Name] = i
		if f.IsChoice() {
			for _, c := range f.Choices {
				t.byJSON[ConcreteName(f.Name, c)] = jsonSlot{field: i, choice: c}
			}
			continue
		}
		t.byJSON[f.Name] = jsonSlot{field: i}
	}
}

// Field returns the field with the given logical name.
func (t *Type) Field(name string) (Field, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Field{}, false
	}
	return t.Fields[i], true
}

// FieldIndex returns the position of a field in declaration order.
func (t *Type) FieldIndex(name string) (int, bool) {
	i, ok := t.byName[name]
	return i, ok
}

// Resolve maps a JSON key to its field and, for choice keys, the
// alternative type code.
func (t *Type) Resolve(jsonName string) (Field, string, bool) {
	slot, ok := t.byJSON[jsonName]
	if !ok {
		return Field{}, "", false
	}
	return t.Fields[slot.field], slot.choice, true
}

// IsResource reports whether the type is a top-level resource.
func (t *Type) IsResource() bool { return t.Kind == KindResource }
