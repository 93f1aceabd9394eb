package datatype

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gofhir/models/pkg/primitive"
	"github.com/gofhir/models/pkg/tree"
)

// String-carried primitives share one shape: a named string type whose
// UnmarshalTree accepts only JSON strings of valid lexical form.

func unmarshalString(v any, typeName string) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a JSON string, got %s", primitive.ErrFormat, typeName, tree.Kind(v))
	}
	if err := primitive.CheckString(typeName, s); err != nil {
		return "", err
	}
	return s, nil
}

func unmarshalInteger(v any, typeName string) (int64, error) {
	d, ok := v.(decimal.Decimal)
	if !ok {
		return 0, fmt.Errorf("%w: %s must be a JSON number, got %s", primitive.ErrFormat, typeName, tree.Kind(v))
	}
	return primitive.CheckInteger(typeName, d)
}

// String is a sequence of Unicode characters.
type String string

// NewString returns a pointer to a String.
func NewString(s string) *String {
	p := String(s)
	return &p
}

func (String) FHIRType() string   { return primitive.TypeString }
func (p String) MarshalTree() any { return string(p) }
func (p String) Validate() error  { return primitive.CheckString(primitive.TypeString, string(p)) }
func (p String) String() string   { return string(p) }
func (p *String) UnmarshalTree(v any) error {
	s, err := unmarshalString(v, primitive.TypeString)
	if err != nil {
		return err
	}
	*p = String(s)
	return nil
}

// Code is a token from a code system.
type Code string

// NewCode returns a pointer to a Code.
func NewCode(s string) *Code {
	p := Code(s)
	return &p
}

func (Code) FHIRType() string   { return primitive.TypeCode }
func (p Code) MarshalTree() any { return string(p) }
func (p Code) Validate() error  { return primitive.CheckString(primitive.TypeCode, string(p)) }
func (p Code) String() string   { return string(p) }
func (p *Code) UnmarshalTree(v any) error {
	s, err := unmarshalString(v, primitive.TypeCode)
	if err != nil {
		return err
	}
	*p = Code(s)
	return nil
}

// ID is a resource logical id.
type ID string

// NewID returns a pointer to a ID.
func NewID(s string) *ID {
	p := ID(s)
	return &p
}

func (ID) FHIRType() string   { return primitive.TypeID }
func (p ID) MarshalTree() any { return string(p) }
func (p ID) Validate() error  { return primitive.CheckString(primitive.TypeID, string(p)) }
func (p ID) String() string   { return string(p) }
func (p *ID) UnmarshalTree(v any) error {
	s, err := unmarshalString(v, primitive.TypeID)
	if err != nil {
		return err
	}
	*p = ID(s)
	return nil
}

// URI is a uniform resource identifier.
type URI string

// NewURI returns a pointer to a URI.
func NewURI(s string) *URI {
	p := URI(s)
	return &p
}

func (URI) FHIRType() string   { return primitive.TypeURI }
func (p URI) MarshalTree() any { return string(p) }
func (p URI) Validate() error  { return primitive.CheckString(primitive.TypeURI, string(p)) }
func (p URI) String() string   { return string(p) }
func (p *URI) UnmarshalTree(v any) error {
	s, err := unmarshalString(v, primitive.TypeURI)
	if err != nil {
		return err
	}
	*p = URI(s)
	return nil
}

// URL is a uniform resource locator.
type URL string

// NewURL returns a pointer to a URL.
func NewURL(s string) *URL {
	p := URL(s)
	return &p
}

func (URL) FHIRType() string   { return primitive.TypeURL }
func (p URL) MarshalTree() any { return string(p) }
func (p URL) Validate() error  { return primitive.CheckString(primitive.TypeURL, string(p)) }
func (p URL) String() string   { return string(p) }
func (p *URL) UnmarshalTree(v any) error {
	s, err := unmarshalString(v, primitive.TypeURL)
	if err != nil {
		return err
	}
	*p = URL(s)
	return nil
}

// Canonical is a canonical URL, optionally followed by |version.
type Canonical string

// NewCanonical returns a pointer to a Canonical.
func NewCanonical(s string) *Canonical {
	p := Canonical(s)
	return &p
}

func (Canonical) FHIRType() string   { return primitive.TypeCanonical }
func (p Canonical) MarshalTree() any { return string(p) }
func (p Canonical) Validate() error  { return primitive.CheckString(primitive.TypeCanonical, string(p)) }
func (p Canonical) String() string   { return string(p) }
func (p *Canonical) UnmarshalTree(v any) error {
	s, err := unmarshalString(v, primitive.TypeCanonical)
	if err != nil {
		return err
	}
	*p = Canonical(s)
	return nil
}

// OID is an OID written as urn:oid:....
type OID string

// NewOID returns a pointer to a OID.
func NewOID(s string) *OID {
	p := OID(s)
	return &p
}

func (OID) FHIRType() string   { return primitive.TypeOID }
func (p OID) MarshalTree() any { return string(p) }
func (p OID) Validate() error  { return primitive.CheckString(primitive.TypeOID, string(p)) }
func (p OID) String() string   { return string(p) }
func (p *OID) UnmarshalTree(v any) error {
	s, err := unmarshalString(v, primitive.TypeOID)
	if err != nil {
		return err
	}
	*p = OID(s)
	return nil
}

// UUID is a UUID written as urn:uuid:....
type UUID string

// NewUUID returns a pointer to a UUID.
func NewUUID(s string) *UUID {
	p := UUID(s)
	return &p
}

func (UUID) FHIRType() string   { return primitive.TypeUUID }
func (p UUID) MarshalTree() any { return string(p) }
func (p UUID) Validate() error  { return primitive.CheckString(primitive.TypeUUID, string(p)) }
func (p UUID) String() string   { return string(p) }
func (p *UUID) UnmarshalTree(v any) error {
	s, err := unmarshalString(v, primitive.TypeUUID)
	if err != nil {
		return err
	}
	*p = UUID(s)
	return nil
}

// Markdown is GitHub flavoured markdown text.
type Markdown string

// NewMarkdown returns a pointer to a Markdown.
func NewMarkdown(s string) *Markdown {
	p := Markdown(s)
	return &p
}

func (Markdown) FHIRType() string   { return primitive.TypeMarkdown }
func (p Markdown) MarshalTree() any { return string(p) }
func (p Markdown) Validate() error  { return primitive.CheckString(primitive.TypeMarkdown, string(p)) }
func (p Markdown) String() string   { return string(p) }
func (p *Markdown) UnmarshalTree(v any) error {
	s, err := unmarshalString(v, primitive.TypeMarkdown)
	if err != nil {
		return err
	}
	*p = Markdown(s)
	return nil
}

// Base64Binary is base64 encoded content.
type Base64Binary string

// NewBase64Binary returns a pointer to a Base64Binary.
func NewBase64Binary(s string) *Base64Binary {
	p := Base64Binary(s)
	return &p
}

func (Base64Binary) FHIRType() string   { return primitive.TypeBase64Binary }
func (p Base64Binary) MarshalTree() any { return string(p) }
func (p Base64Binary) Validate() error  { return primitive.CheckString(primitive.TypeBase64Binary, string(p)) }
func (p Base64Binary) String() string   { return string(p) }
func (p *Base64Binary) UnmarshalTree(v any) error {
	s, err := unmarshalString(v, primitive.TypeBase64Binary)
	if err != nil {
		return err
	}
	*p = Base64Binary(s)
	return nil
}

// Date is a date or partial date: YYYY, YYYY-MM or YYYY-MM-DD.
type Date string

// NewDate returns a pointer to a Date.
func NewDate(s string) *Date {
	p := Date(s)
	return &p
}

func (Date) FHIRType() string   { return primitive.TypeDate }
func (p Date) MarshalTree() any { return string(p) }
func (p Date) Validate() error  { return primitive.CheckString(primitive.TypeDate, string(p)) }
func (p Date) String() string   { return string(p) }
func (p *Date) UnmarshalTree(v any) error {
	s, err := unmarshalString(v, primitive.TypeDate)
	if err != nil {
		return err
	}
	*p = Date(s)
	return nil
}

// DateTime is a date, a partial date, or a date and time with zone.
type DateTime string

// NewDateTime returns a pointer to a DateTime.
func NewDateTime(s string) *DateTime {
	p := DateTime(s)
	return &p
}

func (DateTime) FHIRType() string   { return primitive.TypeDateTime }
func (p DateTime) MarshalTree() any { return string(p) }
func (p DateTime) Validate() error  { return primitive.CheckString(primitive.TypeDateTime, string(p)) }
func (p DateTime) String() string   { return string(p) }
func (p *DateTime) UnmarshalTree(v any) error {
	s, err := unmarshalString(v, primitive.TypeDateTime)
	if err != nil {
		return err
	}
	*p = DateTime(s)
	return nil
}

// Instant is an instant with zone, to at least the second.
type Instant string

// NewInstant returns a pointer to a Instant.
func NewInstant(s string) *Instant {
	p := Instant(s)
	return &p
}

func (Instant) FHIRType() string   { return primitive.TypeInstant }
func (p Instant) MarshalTree() any { return string(p) }
func (p Instant) Validate() error  { return primitive.CheckString(primitive.TypeInstant, string(p)) }
func (p Instant) String() string   { return string(p) }
func (p *Instant) UnmarshalTree(v any) error {
	s, err := unmarshalString(v, primitive.TypeInstant)
	if err != nil {
		return err
	}
	*p = Instant(s)
	return nil
}

// Time is a time of day, hh:mm:ss.
type Time string

// NewTime returns a pointer to a Time.
func NewTime(s string) *Time {
	p := Time(s)
	return &p
}

func (Time) FHIRType() string   { return primitive.TypeTime }
func (p Time) MarshalTree() any { return string(p) }
func (p Time) Validate() error  { return primitive.CheckString(primitive.TypeTime, string(p)) }
func (p Time) String() string   { return string(p) }
func (p *Time) UnmarshalTree(v any) error {
	s, err := unmarshalString(v, primitive.TypeTime)
	if err != nil {
		return err
	}
	*p = Time(s)
	return nil
}

// XHTML is narrative XHTML content.
type XHTML string

// NewXHTML returns a pointer to a XHTML.
func NewXHTML(s string) *XHTML {
	p := XHTML(s)
	return &p
}

func (XHTML) FHIRType() string   { return primitive.TypeXHTML }
func (p XHTML) MarshalTree() any { return string(p) }
func (p XHTML) Validate() error  { return primitive.CheckString(primitive.TypeXHTML, string(p)) }
func (p XHTML) String() string   { return string(p) }
func (p *XHTML) UnmarshalTree(v any) error {
	s, err := unmarshalString(v, primitive.TypeXHTML)
	if err != nil {
		return err
	}
	*p = XHTML(s)
	return nil
}

// DateOf formats t as a FHIR date.
func DateOf(t time.Time) *Date { return NewDate(t.Format("2006-01-02")) }

// DateTimeOf formats t as a FHIR dateTime with zone.
func DateTimeOf(t time.Time) *DateTime { return NewDateTime(t.Format(time.RFC3339)) }

// InstantOf formats t as a FHIR instant.
func InstantOf(t time.Time) *Instant { return NewInstant(t.Format(time.RFC3339Nano)) }

// Boolean is true or false.
type Boolean bool

// NewBoolean returns a pointer to a Boolean.
func NewBoolean(b bool) *Boolean {
	p := Boolean(b)
	return &p
}

func (Boolean) FHIRType() string   { return primitive.TypeBoolean }
func (p Boolean) MarshalTree() any { return bool(p) }
func (Boolean) Validate() error    { return nil }
func (p *Boolean) UnmarshalTree(v any) error {
	b, ok := v.(bool)
	if !ok {
		return fmt.Errorf("%w: boolean must be a JSON boolean, got %s", primitive.ErrFormat, tree.Kind(v))
	}
	*p = Boolean(b)
	return nil
}

// Integer is a signed 32-bit integer.
type Integer int32

// NewInteger returns a pointer to an Integer.
func NewInteger(i int32) *Integer {
	p := Integer(i)
	return &p
}

func (Integer) FHIRType() string   { return primitive.TypeInteger }
func (p Integer) MarshalTree() any { return decimal.NewFromInt(int64(p)) }
func (Integer) Validate() error    { return nil }
func (p *Integer) UnmarshalTree(v any) error {
	i, err := unmarshalInteger(v, primitive.TypeInteger)
	if err != nil {
		return err
	}
	*p = Integer(i)
	return nil
}

// PositiveInt is an integer of at least 1.
type PositiveInt uint32

// NewPositiveInt returns a pointer to a PositiveInt.
func NewPositiveInt(i uint32) *PositiveInt {
	p := PositiveInt(i)
	return &p
}

func (PositiveInt) FHIRType() string   { return primitive.TypePositiveInt }
func (p PositiveInt) MarshalTree() any { return decimal.NewFromInt(int64(p)) }
func (p PositiveInt) Validate() error {
	return primitive.CheckRange(primitive.TypePositiveInt, int64(p))
}
func (p *PositiveInt) UnmarshalTree(v any) error {
	i, err := unmarshalInteger(v, primitive.TypePositiveInt)
	if err != nil {
		return err
	}
	*p = PositiveInt(i)
	return nil
}

// UnsignedInt is an integer of at least 0.
type UnsignedInt uint32

// NewUnsignedInt returns a pointer to an UnsignedInt.
func NewUnsignedInt(i uint32) *UnsignedInt {
	p := UnsignedInt(i)
	return &p
}

func (UnsignedInt) FHIRType() string   { return primitive.TypeUnsignedInt }
func (p UnsignedInt) MarshalTree() any { return decimal.NewFromInt(int64(p)) }
func (p UnsignedInt) Validate() error {
	return primitive.CheckRange(primitive.TypeUnsignedInt, int64(p))
}
func (p *UnsignedInt) UnmarshalTree(v any) error {
	i, err := unmarshalInteger(v, primitive.TypeUnsignedInt)
	if err != nil {
		return err
	}
	*p = UnsignedInt(i)
	return nil
}

// Decimal is an arbitrary precision number. The scale is part of the
// value: 1.50 round-trips as 1.50.
type Decimal decimal.Decimal

// NewDecimal parses s into a Decimal. It panics on malformed input and is
// meant for literals.
func NewDecimal(s string) *Decimal {
	p := Decimal(decimal.RequireFromString(s))
	return &p
}

// DecimalOf wraps d.
func DecimalOf(d decimal.Decimal) *Decimal {
	p := Decimal(d)
	return &p
}

func (Decimal) FHIRType() string   { return primitive.TypeDecimal }
func (p Decimal) MarshalTree() any { return decimal.Decimal(p) }
func (Decimal) Validate() error    { return nil }
func (p Decimal) String() string   { return tree.FormatNumber(decimal.Decimal(p)) }

// Value returns the underlying decimal.
func (p Decimal) Value() decimal.Decimal { return decimal.Decimal(p) }

func (p *Decimal) UnmarshalTree(v any) error {
	d, ok := v.(decimal.Decimal)
	if !ok {
		return fmt.Errorf("%w: decimal must be a JSON number, got %s", primitive.ErrFormat, tree.Kind(v))
	}
	*p = Decimal(d)
	return nil
}
