package datatype

import (
	"github.com/gofhir/models/pkg/record"
	"github.com/gofhir/models/pkg/terminology"
)

// Coding is a code defined by a terminology system.
type Coding struct {
	Element
	System       *URI
	Version      *String
	Code         *Code
	Display      *String
	UserSelected *Boolean
}

var codingTable = ElementTable("Coding", func(c *Coding) *Element { return &c.Element },
	record.Opt("system", func(c *Coding) **URI { return &c.System }, record.Short("Identity of the terminology system")),
	record.Opt("version", func(c *Coding) **String { return &c.Version }),
	record.Opt("code", func(c *Coding) **Code { return &c.Code }, record.Short("Symbol in syntax defined by the system")),
	record.Opt("display", func(c *Coding) **String { return &c.Display }),
	record.Opt("userSelected", func(c *Coding) **Boolean { return &c.UserSelected }),
)

// NewCoding returns a Coding with system, code and optional display.
func NewCoding(system, code, display string) *Coding {
	c := &Coding{System: NewURI(system), Code: NewCode(code)}
	if display != "" {
		c.Display = NewString(display)
	}
	return c
}

func (*Coding) FHIRType() string          { return "Coding" }
func (c *Coding) Fields() record.FieldSet { return codingTable.Bind(c) }

// Codes implements record.Coded.
func (c *Coding) Codes() ([]terminology.Code, bool) {
	if c.Code == nil {
		return nil, false
	}
	return []terminology.Code{c.term()}, false
}

func (c *Coding) term() terminology.Code {
	return terminology.Code{System: str(c.System), Code: str(c.Code), Display: str(c.Display)}
}

// Codes implements record.Coded for bare code fields, which carry no
// system.
func (p Code) Codes() ([]terminology.Code, bool) {
	return []terminology.Code{{Code: string(p)}}, false
}

// CodeableConcept is a concept given as codings and/or text.
type CodeableConcept struct {
	Element
	Coding []Coding
	Text   *String
}

var codeableConceptTable = ElementTable("CodeableConcept", func(c *CodeableConcept) *Element { return &c.Element },
	record.List("coding", func(c *CodeableConcept) *[]Coding { return &c.Coding }),
	record.Opt("text", func(c *CodeableConcept) **String { return &c.Text }, record.Short("Plain text representation of the concept")),
)

// NewCodeableConcept returns a concept with one coding.
func NewCodeableConcept(system, code, display string) *CodeableConcept {
	return &CodeableConcept{Coding: []Coding{*NewCoding(system, code, display)}}
}

// TextConcept returns a concept carrying only text.
func TextConcept(text string) *CodeableConcept {
	return &CodeableConcept{Text: NewString(text)}
}

func (*CodeableConcept) FHIRType() string          { return "CodeableConcept" }
func (c *CodeableConcept) Fields() record.FieldSet { return codeableConceptTable.Bind(c) }

// Codes implements record.Coded. A concept with text and no coded value is
// text only.
func (c *CodeableConcept) Codes() ([]terminology.Code, bool) {
	var codes []terminology.Code
	for i := range c.Coding {
		if c.Coding[i].Code != nil {
			codes = append(codes, c.Coding[i].term())
		}
	}
	return codes, len(codes) == 0 && c.Text != nil
}

// HasCode reports whether any coding matches system and code.
func (c *CodeableConcept) HasCode(system, code string) bool {
	for i := range c.Coding {
		if str(c.Coding[i].System) == system && str(c.Coding[i].Code) == code {
			return true
		}
	}
	return false
}

// Reference links to another resource. It is never resolved.
type Reference struct {
	Element
	Reference  *String
	Type       *URI
	Identifier *Identifier
	Display    *String
}

var referenceTable = ElementTable("Reference", func(r *Reference) *Element { return &r.Element },
	record.Opt("reference", func(r *Reference) **String { return &r.Reference }, record.Short("Literal reference, Relative, internal or absolute URL")),
	record.Opt("type", func(r *Reference) **URI { return &r.Type },
		record.Bind(Extensible, terminology.ResourceTypes)),
	record.Opt("identifier", func(r *Reference) **Identifier { return &r.Identifier }),
	record.Opt("display", func(r *Reference) **String { return &r.Display }),
)

// NewReference returns a literal reference such as "Patient/123".
func NewReference(ref string) *Reference {
	return &Reference{Reference: NewString(ref)}
}

func (*Reference) FHIRType() string          { return "Reference" }
func (r *Reference) Fields() record.FieldSet { return referenceTable.Bind(r) }

// Codes implements record.Coded for Reference.type, whose values are
// resource type names.
func (p URI) Codes() ([]terminology.Code, bool) {
	return []terminology.Code{{Code: string(p)}}, false
}

// Identifier is a business identifier.
type Identifier struct {
	Element
	Use      *Code
	Type     *CodeableConcept
	System   *URI
	Value    *String
	Period   *Period
	Assigner *Reference
}

var identifierTable = ElementTable("Identifier", func(i *Identifier) *Element { return &i.Element },
	record.Opt("use", func(i *Identifier) **Code { return &i.Use },
		record.Bind(Required, terminology.IdentifierUse), record.Short("usual | official | temp | secondary | old")),
	record.Opt("type", func(i *Identifier) **CodeableConcept { return &i.Type },
		record.Bind(Extensible, terminology.IdentifierType)),
	record.Opt("system", func(i *Identifier) **URI { return &i.System }),
	record.Opt("value", func(i *Identifier) **String { return &i.Value }),
	record.Opt("period", func(i *Identifier) **Period { return &i.Period }),
	record.Opt("assigner", func(i *Identifier) **Reference { return &i.Assigner }),
)

// NewIdentifier returns an identifier with system and value.
func NewIdentifier(system, value string) *Identifier {
	return &Identifier{System: NewURI(system), Value: NewString(value)}
}

func (*Identifier) FHIRType() string          { return "Identifier" }
func (i *Identifier) Fields() record.FieldSet { return identifierTable.Bind(i) }

// Period is a time range given by start and end.
type Period struct {
	Element
	Start *DateTime
	End   *DateTime
}

var periodTable = ElementTable("Period", func(p *Period) *Element { return &p.Element },
	record.Opt("start", func(p *Period) **DateTime { return &p.Start }),
	record.Opt("end", func(p *Period) **DateTime { return &p.End }),
)

func (*Period) FHIRType() string          { return "Period" }
func (p *Period) Fields() record.FieldSet { return periodTable.Bind(p) }

// Quantity is a measured amount. Profiles such as SimpleQuantity, Age and
// Count share this shape.
type Quantity struct {
	Element
	Value      *Decimal
	Comparator *Code
	Unit       *String
	System     *URI
	Code       *Code
}

func quantityFields[T any](q func(*T) *Quantity) []record.Accessor[T] {
	return []record.Accessor[T]{
		record.Opt("value", func(t *T) **Decimal { return &q(t).Value }, record.Short("Numerical value (with implicit precision)")),
		record.Opt("comparator", func(t *T) **Code { return &q(t).Comparator },
			record.Bind(Required, terminology.QuantityComparator), record.Short("< | <= | >= | >")),
		record.Opt("unit", func(t *T) **String { return &q(t).Unit }),
		record.Opt("system", func(t *T) **URI { return &q(t).System }),
		record.Opt("code", func(t *T) **Code { return &q(t).Code }),
	}
}

var quantityTable = ElementTable("Quantity", func(q *Quantity) *Element { return &q.Element },
	quantityFields(func(q *Quantity) *Quantity { return q })...)

// NewQuantity returns a UCUM quantity.
func NewQuantity(value, unit string) *Quantity {
	return &Quantity{Value: NewDecimal(value), Unit: NewString(unit), System: NewURI(terminology.SystemUnitsOfTime), Code: NewCode(unit)}
}

func (*Quantity) FHIRType() string          { return "Quantity" }
func (q *Quantity) Fields() record.FieldSet { return quantityTable.Bind(q) }

// Duration is a length of time.
type Duration struct {
	Quantity
}

var durationTable = ElementTable("Duration", func(d *Duration) *Element { return &d.Element },
	quantityFields(func(d *Duration) *Quantity { return &d.Quantity })...)

func (*Duration) FHIRType() string          { return "Duration" }
func (d *Duration) Fields() record.FieldSet { return durationTable.Bind(d) }

// Money is an amount in a currency.
type Money struct {
	Element
	Value    *Decimal
	Currency *Code
}

var moneyTable = ElementTable("Money", func(m *Money) *Element { return &m.Element },
	record.Opt("value", func(m *Money) **Decimal { return &m.Value }),
	record.Opt("currency", func(m *Money) **Code { return &m.Currency },
		record.Bind(Required, terminology.Currencies), record.Short("ISO 4217 Currency Code")),
)

// NewMoney returns an amount in the given ISO 4217 currency.
func NewMoney(value, currency string) *Money {
	return &Money{Value: NewDecimal(value), Currency: NewCode(currency)}
}

func (*Money) FHIRType() string          { return "Money" }
func (m *Money) Fields() record.FieldSet { return moneyTable.Bind(m) }

// Range is a set of ordered quantities given by low and high.
type Range struct {
	Element
	Low  *Quantity
	High *Quantity
}

var rangeTable = ElementTable("Range", func(r *Range) *Element { return &r.Element },
	record.Opt("low", func(r *Range) **Quantity { return &r.Low }),
	record.Opt("high", func(r *Range) **Quantity { return &r.High }),
)

func (*Range) FHIRType() string          { return "Range" }
func (r *Range) Fields() record.FieldSet { return rangeTable.Bind(r) }

// Ratio is a relationship between two quantities.
type Ratio struct {
	Element
	Numerator   *Quantity
	Denominator *Quantity
}

var ratioTable = ElementTable("Ratio", func(r *Ratio) *Element { return &r.Element },
	record.Opt("numerator", func(r *Ratio) **Quantity { return &r.Numerator }),
	record.Opt("denominator", func(r *Ratio) **Quantity { return &r.Denominator }),
)

func (*Ratio) FHIRType() string          { return "Ratio" }
func (r *Ratio) Fields() record.FieldSet { return ratioTable.Bind(r) }

// Address is a postal address.
type Address struct {
	Element
	Use        *Code
	Type       *Code
	Text       *String
	Line       []String
	City       *String
	District   *String
	State      *String
	PostalCode *String
	Country    *String
	Period     *Period
}

var addressTable = ElementTable("Address", func(a *Address) *Element { return &a.Element },
	record.Opt("use", func(a *Address) **Code { return &a.Use },
		record.Bind(Required, terminology.AddressUse), record.Short("home | work | temp | old | billing")),
	record.Opt("type", func(a *Address) **Code { return &a.Type },
		record.Bind(Required, terminology.AddressType), record.Short("postal | physical | both")),
	record.Opt("text", func(a *Address) **String { return &a.Text }),
	record.List("line", func(a *Address) *[]String { return &a.Line }),
	record.Opt("city", func(a *Address) **String { return &a.City }),
	record.Opt("district", func(a *Address) **String { return &a.District }),
	record.Opt("state", func(a *Address) **String { return &a.State }),
	record.Opt("postalCode", func(a *Address) **String { return &a.PostalCode }),
	record.Opt("country", func(a *Address) **String { return &a.Country }),
	record.Opt("period", func(a *Address) **Period { return &a.Period }),
)

func (*Address) FHIRType() string          { return "Address" }
func (a *Address) Fields() record.FieldSet { return addressTable.Bind(a) }

// Attachment is content referenced or included inline.
type Attachment struct {
	Element
	ContentType *Code
	Language    *Code
	Data        *Base64Binary
	URL         *URL
	Size        *UnsignedInt
	Hash        *Base64Binary
	Title       *String
	Creation    *DateTime
}

var attachmentTable = ElementTable("Attachment", func(a *Attachment) *Element { return &a.Element },
	record.Opt("contentType", func(a *Attachment) **Code { return &a.ContentType },
		record.Bind(Required, terminology.MimeTypes), record.Short("Mime type of the content, with charset etc.")),
	record.Opt("language", func(a *Attachment) **Code { return &a.Language },
		record.Bind(Preferred, terminology.Languages)),
	record.Opt("data", func(a *Attachment) **Base64Binary { return &a.Data }),
	record.Opt("url", func(a *Attachment) **URL { return &a.URL }),
	record.Opt("size", func(a *Attachment) **UnsignedInt { return &a.Size }),
	record.Opt("hash", func(a *Attachment) **Base64Binary { return &a.Hash }),
	record.Opt("title", func(a *Attachment) **String { return &a.Title }),
	record.Opt("creation", func(a *Attachment) **DateTime { return &a.Creation }),
)

func (*Attachment) FHIRType() string          { return "Attachment" }
func (a *Attachment) Fields() record.FieldSet { return attachmentTable.Bind(a) }

// Annotation is a text note with author and time.
type Annotation struct {
	Element
	Author record.Choice
	Time   *DateTime
	Text   *Markdown
}

var annotationTable = ElementTable("Annotation", func(a *Annotation) *Element { return &a.Element },
	record.OneOf("author", func(a *Annotation) *record.Choice { return &a.Author },
		[]record.Alternative{record.Alt[Reference](), record.Alt[String]()}),
	record.Opt("time", func(a *Annotation) **DateTime { return &a.Time }),
	record.Opt("text", func(a *Annotation) **Markdown { return &a.Text }, record.Required),
)

func (*Annotation) FHIRType() string          { return "Annotation" }
func (a *Annotation) Fields() record.FieldSet { return annotationTable.Bind(a) }

// Meta is resource metadata.
type Meta struct {
	Element
	VersionID   *ID
	LastUpdated *Instant
	Source      *URI
	Profile     []Canonical
	Security    []Coding
	Tag         []Coding
}

var metaTable = ElementTable("Meta", func(m *Meta) *Element { return &m.Element },
	record.Opt("versionId", func(m *Meta) **ID { return &m.VersionID }),
	record.Opt("lastUpdated", func(m *Meta) **Instant { return &m.LastUpdated }),
	record.Opt("source", func(m *Meta) **URI { return &m.Source }),
	record.List("profile", func(m *Meta) *[]Canonical { return &m.Profile }),
	record.List("security", func(m *Meta) *[]Coding { return &m.Security },
		record.Bind(Extensible, terminology.SecurityLabels)),
	record.List("tag", func(m *Meta) *[]Coding { return &m.Tag }),
)

func (*Meta) FHIRType() string          { return "Meta" }
func (m *Meta) Fields() record.FieldSet { return metaTable.Bind(m) }

// Narrative is the human readable summary of a resource.
type Narrative struct {
	Element
	Status *Code
	Div    *XHTML
}

var narrativeTable = ElementTable("Narrative", func(n *Narrative) *Element { return &n.Element },
	record.Opt("status", func(n *Narrative) **Code { return &n.Status },
		record.Required, record.Bind(Required, terminology.NarrativeStatus), record.Short("generated | extensions | additional | empty")),
	record.Opt("div", func(n *Narrative) **XHTML { return &n.Div }, record.Required),
)

// NewNarrative returns generated narrative wrapping text in a div.
func NewNarrative(text string) *Narrative {
	return &Narrative{
		Status: NewCode("generated"),
		Div:    NewXHTML(`<div xmlns="http://www.w3.org/1999/xhtml">` + text + `</div>`),
	}
}

func (*Narrative) FHIRType() string          { return "Narrative" }
func (n *Narrative) Fields() record.FieldSet { return narrativeTable.Bind(n) }

func str[S ~string](p *S) string {
	if p == nil {
		return ""
	}
	return string(*p)
}
