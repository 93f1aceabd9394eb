package datatype

import (
	"github.com/gofhir/models/pkg/record"
	"github.com/gofhir/models/pkg/schema"
)

// Extension carries additional content identified by url. Nested
// extensions and value[x] are mutually exclusive (ext-1).
type Extension struct {
	Element
	URL   *URI
	Value record.Choice
}

// ExtensionValueTypes are the value[x] alternatives supported here.
var ExtensionValueTypes = []record.Alternative{
	record.Alt[Base64Binary](), record.Alt[Boolean](), record.Alt[Canonical](),
	record.Alt[Code](), record.Alt[Date](), record.Alt[DateTime](), record.Alt[Decimal](),
	record.Alt[ID](), record.Alt[Instant](), record.Alt[Integer](), record.Alt[Markdown](),
	record.Alt[OID](), record.Alt[PositiveInt](), record.Alt[String](), record.Alt[Time](),
	record.Alt[UnsignedInt](), record.Alt[URI](), record.Alt[URL](), record.Alt[UUID](),
	record.Alt[Address](), record.Alt[Annotation](), record.Alt[Attachment](),
	record.Alt[CodeableConcept](), record.Alt[Coding](), record.Alt[Duration](),
	record.Alt[Identifier](), record.Alt[Money](), record.Alt[Period](), record.Alt[Quantity](),
	record.Alt[Range](), record.Alt[Ratio](), record.Alt[Reference](), record.Alt[Timing](),
	record.Alt[Dosage](), record.Alt[Meta](),
}

var extensionTable = ElementTable("Extension", func(e *Extension) *Element { return &e.Element },
	record.Opt("url", func(e *Extension) **URI { return &e.URL }, record.Required, record.Short("identifies the meaning of the extension")),
	record.OneOf("value", func(e *Extension) *record.Choice { return &e.Value }, ExtensionValueTypes),
).Constraints(extensionConstraint)

var extensionConstraint = schema.Constraint{
	Key:        "ext-1",
	Severity:   "error",
	Human:      "Must have either extensions or value[x], not both",
	Expression: "extension.exists() != value.exists()",
}

// NewExtension returns an extension with a value.
func NewExtension(url string, value record.Value) *Extension {
	return &Extension{URL: NewURI(url), Value: record.Choice{Value: value}}
}

func (*Extension) FHIRType() string          { return "Extension" }
func (e *Extension) Fields() record.FieldSet { return extensionTable.Bind(e) }
