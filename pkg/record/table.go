package record

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/gofhir/models/pkg/schema"
	"github.com/gofhir/models/pkg/terminology"
)

// FieldSet is the per-instance view of a record's declared fields, in
// declaration order.
type FieldSet interface {
	Type() *schema.Type
	Len() int
	Slot(i int) Slot
}

// Slot reads and writes one field of one instance.
type Slot interface {
	Field() schema.Field
	// Present reports whether the field is populated. An empty list that
	// was explicitly set counts as present.
	Present() bool
	// Values returns the populated values in order.
	Values() []Value
	// Get returns the field content as stored: a pointer for single
	// fields, a slice for lists and a Choice for choice groups.
	Get() (any, bool)
	// Set replaces the field content. nil clears it.
	Set(v any) error
	// NewValue allocates a zero value for the field. alt selects the
	// alternative of a choice group and is ignored otherwise.
	NewValue(alt string) (Value, error)
	// Put stores a value made by NewValue: it assigns single fields and
	// appends to lists.
	Put(v Value) error
	// MarkEmpty records an explicitly empty list.
	MarkEmpty()
}

// Accessor binds one declared field of T.
type Accessor[T any] interface {
	describe() schema.Field
	bind(t *T, f *schema.Field) Slot
}

// FieldOption adjusts a field descriptor.
type FieldOption func(*schema.Field)

// Required sets the minimum cardinality to 1.
func Required(f *schema.Field) { f.Min = 1 }

// Min sets the minimum cardinality.
func Min(n int) FieldOption { return func(f *schema.Field) { f.Min = n } }

// Max sets the maximum cardinality of a list field.
func Max(n int) FieldOption { return func(f *schema.Field) { f.Max = n } }

// Bind attaches a value set binding.
func Bind(strength schema.Strength, vs *terminology.ValueSet) FieldOption {
	return func(f *schema.Field) { f.Binding = &schema.Binding{Strength: strength, ValueSet: vs} }
}

// Short sets the one-line field description.
func Short(s string) FieldOption { return func(f *schema.Field) { f.Short = s } }

// Table is the field table of record type T. Tables are built once at
// package initialisation and registered in the schema registry.
type Table[T any] struct {
	typ    *schema.Type
	fields []Accessor[T]
}

// NewTable builds and registers the table of T in the default registry.
// Resource tables also register a factory so New(name) can allocate them.
func NewTable[T any](name string, kind schema.Kind, fields ...Accessor[T]) *Table[T] {
	return NewTableIn(schema.Default(), name, kind, fields...)
}

// NewTableIn is NewTable against a specific registry.
func NewTableIn[T any](reg *schema.Registry, name string, kind schema.Kind, fields ...Accessor[T]) *Table[T] {
	t := &Table[T]{typ: &schema.Type{Name: name, Kind: kind}, fields: fields}
	for _, a := range fields {
		t.typ.Fields = append(t.typ.Fields, a.describe())
	}
	reg.Register(t.typ)
	if kind == schema.KindResource {
		registerFactory(name, func() (Resource, bool) {
			r, ok := any(new(T)).(Resource)
			return r, ok
		})
	}
	return t
}

// Constraints declares the invariants of the type. Call it during
// initialisation only.
func (t *Table[T]) Constraints(cs ...schema.Constraint) *Table[T] {
	t.typ.Constraints = append(t.typ.Constraints, cs...)
	return t
}

// Type returns the registered schema type.
func (t *Table[T]) Type() *schema.Type { return t.typ }

// Bind returns the field set of one instance.
func (t *Table[T]) Bind(v *T) FieldSet {
	return &fieldSet[T]{table: t, v: v}
}

type fieldSet[T any] struct {
	table *Table[T]
	v     *T
}

func (s *fieldSet[T]) Type() *schema.Type { return s.table.typ }
func (s *fieldSet[T]) Len() int           { return len(s.table.fields) }
func (s *fieldSet[T]) Slot(i int) Slot {
	return s.table.fields[i].bind(s.v, &s.table.typ.Fields[i])
}

var factories sync.Map // resource type name -> func() (Resource, bool)

func registerFactory(name string, fn func() (Resource, bool)) {
	if _, ok := fn(); !ok {
		panic(fmt.Sprintf("record: %s is declared as a resource but does not implement Resource", name))
	}
	factories.Store(name, fn)
}

// New allocates an empty resource of a registered type.
func New(resourceType string) (Resource, error) {
	fn, ok := factories.Load(resourceType)
	if !ok {
		return nil, fmt.Errorf("%w: resource type %q", schema.ErrUnknownType, resourceType)
	}
	r, _ := fn.(func() (Resource, bool))()
	return r, nil
}

// kindOf derives a field kind from the zero value of its Go type.
func kindOf(v Value) schema.Kind {
	switch v.(type) {
	case Primitive:
		return schema.KindPrimitive
	case Embedded:
		return schema.KindResource
	}
	if v.FHIRType() == "Reference" {
		return schema.KindReference
	}
	return schema.KindComposite
}

func newField(name string, kind schema.Kind, typ string, max int, opts []FieldOption) schema.Field {
	f := schema.Field{Name: name, Kind: kind, Type: typ, Max: max}
	for _, o := range opts {
		o(&f)
	}
	return f
}

func checkPrimitive(v Value) error {
	if p, ok := v.(Primitive); ok {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrParse, err)
		}
	}
	return nil
}

func isSlice(v any) bool {
	return reflect.ValueOf(v).Kind() == reflect.Slice
}

// Opt declares a field with maximum cardinality 1 stored as a pointer.
func Opt[T, V any, PV interface {
	*V
	Value
}](name string, get func(*T) *PV, opts ...FieldOption) Accessor[T] {
	zero := PV(new(V))
	return &optAccessor[T, V, PV]{
		field: newField(name, kindOf(zero), zero.FHIRType(), 1, opts),
		get:   get,
	}
}

type optAccessor[T, V any, PV interface {
	*V
	Value
}] struct {
	field schema.Field
	get   func(*T) *PV
}

func (a *optAccessor[T, V, PV]) describe() schema.Field { return a.field }
func (a *optAccessor[T, V, PV]) bind(t *T, f *schema.Field) Slot {
	return &optSlot[V, PV]{f: f, p: a.get(t)}
}

type optSlot[V any, PV interface {
	*V
	Value
}] struct {
	f *schema.Field
	p *PV
}

func (s *optSlot[V, PV]) Field() schema.Field { return *s.f }
func (s *optSlot[V, PV]) Present() bool       { return *s.p != nil }

func (s *optSlot[V, PV]) Values() []Value {
	if *s.p == nil {
		return nil
	}
	return []Value{*s.p}
}

func (s *optSlot[V, PV]) Get() (any, bool) {
	if *s.p == nil {
		return nil, false
	}
	return *s.p, true
}

func (s *optSlot[V, PV]) Set(v any) error {
	var pv PV
	switch x := v.(type) {
	case nil:
		*s.p = nil
		return nil
	case PV:
		if x == nil {
			*s.p = nil
			return nil
		}
		pv = x
	case V:
		c := x
		pv = PV(&c)
	default:
		if isSlice(v) {
			return fmt.Errorf("%w: %s accepts a single value, got %T", ErrCardinality, s.f.Name, v)
		}
		return fmt.Errorf("%w: %s expects %s, got %T", ErrTypeMismatch, s.f.Name, s.f.Type, v)
	}
	if err := checkPrimitive(pv); err != nil {
		return err
	}
	*s.p = pv
	return nil
}

func (s *optSlot[V, PV]) NewValue(string) (Value, error) { return PV(new(V)), nil }

func (s *optSlot[V, PV]) Put(v Value) error {
	x, ok := v.(PV)
	if !ok {
		return fmt.Errorf("%w: %s expects %s, got %T", ErrTypeMismatch, s.f.Name, s.f.Type, v)
	}
	*s.p = x
	return nil
}

func (s *optSlot[V, PV]) MarkEmpty() {}

// List declares an ordered field with maximum cardinality greater than 1.
func List[T, V any, PV interface {
	*V
	Value
}](name string, get func(*T) *[]V, opts ...FieldOption) Accessor[T] {
	zero := PV(new(V))
	return &listAccessor[T, V, PV]{
		field: newField(name, kindOf(zero), zero.FHIRType(), schema.Unbounded, opts),
		get:   get,
	}
}

type listAccessor[T, V any, PV interface {
	*V
	Value
}] struct {
	field schema.Field
	get   func(*T) *[]V
}

func (a *listAccessor[T, V, PV]) describe() schema.Field { return a.field }
func (a *listAccessor[T, V, PV]) bind(t *T, f *schema.Field) Slot {
	return &listSlot[V, PV]{f: f, p: a.get(t)}
}

type listSlot[V any, PV interface {
	*V
	Value
}] struct {
	f *schema.Field
	p *[]V
}

func (s *listSlot[V, PV]) Field() schema.Field { return *s.f }
func (s *listSlot[V, PV]) Present() bool       { return *s.p != nil }

func (s *listSlot[V, PV]) Values() []Value {
	out := make([]Value, len(*s.p))
	for i := range *s.p {
		out[i] = PV(&(*s.p)[i])
	}
	return out
}

func (s *listSlot[V, PV]) Get() (any, bool) {
	if *s.p == nil {
		return nil, false
	}
	return *s.p, true
}

func (s *listSlot[V, PV]) Set(v any) error {
	var list []V
	switch x := v.(type) {
	case nil:
		*s.p = nil
		return nil
	case []V:
		list = x
	case []PV:
		list = make([]V, 0, len(x))
		for i, e := range x {
			if e == nil {
				return fmt.Errorf("%w: %s[%d] is nil", ErrTypeMismatch, s.f.Name, i)
			}
			list = append(list, *e)
		}
	case PV, V:
		return fmt.Errorf("%w: %s is a list, got a single %s", ErrCardinality, s.f.Name, s.f.Type)
	default:
		return fmt.Errorf("%w: %s expects []%s, got %T", ErrTypeMismatch, s.f.Name, s.f.Type, v)
	}
	for i := range list {
		if err := checkPrimitive(PV(&list[i])); err != nil {
			return err
		}
	}
	*s.p = list
	return nil
}

func (s *listSlot[V, PV]) NewValue(string) (Value, error) { return PV(new(V)), nil }

func (s *listSlot[V, PV]) Put(v Value) error {
	x, ok := v.(PV)
	if !ok || x == nil {
		return fmt.Errorf("%w: %s expects %s, got %T", ErrTypeMismatch, s.f.Name, s.f.Type, v)
	}
	*s.p = append(*s.p, *x)
	return nil
}

func (s *listSlot[V, PV]) MarkEmpty() {
	if *s.p == nil {
		*s.p = []V{}
	}
}

// Alternative is one admissible type of a choice group.
type Alternative struct {
	Code string
	New  func() Value
	from func(v any) (Value, bool)
}

// Alt declares V as a choice alternative.
func Alt[V any, PV interface {
	*V
	Value
}]() Alternative {
	return Alternative{
		Code: PV(new(V)).FHIRType(),
		New:  func() Value { return PV(new(V)) },
		from: func(v any) (Value, bool) {
			switch x := v.(type) {
			case PV:
				return x, x != nil
			case V:
				c := x
				return PV(&c), true
			}
			return nil, false
		},
	}
}

// OneOf declares a choice group. name is the logical name without [x].
func OneOf[T any](name string, get func(*T) *Choice, alts []Alternative, opts ...FieldOption) Accessor[T] {
	f := newField(name, schema.KindChoice, "", 1, opts)
	for _, a := range alts {
		f.Choices = append(f.Choices, a.Code)
	}
	return &choiceAccessor[T]{field: f, get: get, alts: alts}
}

type choiceAccessor[T any] struct {
	field schema.Field
	get   func(*T) *Choice
	alts  []Alternative
}

func (a *choiceAccessor[T]) describe() schema.Field { return a.field }
func (a *choiceAccessor[T]) bind(t *T, f *schema.Field) Slot {
	return &choiceSlot{f: f, p: a.get(t), alts: a.alts}
}

type choiceSlot struct {
	f    *schema.Field
	p    *Choice
	alts []Alternative
}

func (s *choiceSlot) Field() schema.Field { return *s.f }
func (s *choiceSlot) Present() bool       { return s.p.Value != nil }

func (s *choiceSlot) Values() []Value {
	if s.p.Value == nil {
		return nil
	}
	return []Value{s.p.Value}
}

func (s *choiceSlot) Get() (any, bool) {
	return *s.p, s.p.Value != nil
}

func (s *choiceSlot) Set(v any) error {
	if v == nil {
		s.p.Value = nil
		return nil
	}
	if c, ok := v.(Choice); ok {
		if c.Value == nil {
			s.p.Value = nil
			return nil
		}
		v = c.Value
	}
	for _, a := range s.alts {
		if val, ok := a.from(v); ok {
			if err := checkPrimitive(val); err != nil {
				return err
			}
			s.p.Value = val
			return nil
		}
	}
	if isSlice(v) {
		return fmt.Errorf("%w: %s[x] accepts a single value, got %T", ErrCardinality, s.f.Name, v)
	}
	return fmt.Errorf("%w: %s[x] does not accept %T", ErrTypeMismatch, s.f.Name, v)
}

// setAlt writes through a concrete choice name such as "servicedDate".
func (s *choiceSlot) setAlt(code string, v any) error {
	if v == nil {
		if s.p.Type() == code {
			s.p.Value = nil
		}
		return nil
	}
	for _, a := range s.alts {
		if a.Code != code {
			continue
		}
		val, ok := a.from(v)
		if !ok {
			return fmt.Errorf("%w: %s expects %s, got %T", ErrTypeMismatch, schema.ConcreteName(s.f.Name, code), code, v)
		}
		if err := checkPrimitive(val); err != nil {
			return err
		}
		s.p.Value = val
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownField, schema.ConcreteName(s.f.Name, code))
}

func (s *choiceSlot) NewValue(alt string) (Value, error) {
	for _, a := range s.alts {
		if a.Code == alt {
			return a.New(), nil
		}
	}
	return nil, fmt.Errorf("%w: %s[x] has no alternative %q", ErrTypeMismatch, s.f.Name, alt)
}

func (s *choiceSlot) Put(v Value) error {
	s.p.Value = v
	return nil
}

func (s *choiceSlot) MarkEmpty() {}
