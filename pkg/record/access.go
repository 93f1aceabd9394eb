package record

import (
	"errors"

	"github.com/gofhir/models/pkg/schema"
)

// lookup resolves a declared or concrete choice name to a slot.
func lookup(c Composite, name string) (Slot, string, error) {
	fs := c.Fields()
	t := fs.Type()
	if i, ok := t.FieldIndex(name); ok {
		return fs.Slot(i), "", nil
	}
	f, alt, ok := t.Resolve(name)
	if !ok || alt == "" {
		return nil, "", &FieldError{Kind: ErrUnknownField, Type: t.Name, Field: name, Path: t.Name + "." + name}
	}
	i, _ := t.FieldIndex(f.Name)
	return fs.Slot(i), alt, nil
}

// Get returns the content of a field by name. A choice group read by its
// logical name returns the Choice; read by a concrete name such as
// "servicedDate" it returns the value only when that alternative is the
// populated one. The boolean is false when the field is absent or not
// declared.
func Get(c Composite, name string) (any, bool) {
	s, alt, err := lookup(c, name)
	if err != nil {
		return nil, false
	}
	if alt == "" {
		return s.Get()
	}
	v, _ := s.Get()
	if ch := v.(Choice); ch.Type() == alt {
		return ch.Value, true
	}
	return nil, false
}

// Set replaces the content of a field by name. nil clears the field.
// Setting one alternative of a choice group clears the others.
func Set(c Composite, name string, v any) error {
	s, alt, err := lookup(c, name)
	if err != nil {
		return err
	}
	if alt != "" {
		err = s.(*choiceSlot).setAlt(alt, v)
	} else {
		err = s.Set(v)
	}
	if err != nil {
		t := c.Fields().Type().Name
		return &FieldError{Kind: kindOfErr(err), Type: t, Field: name, Path: t + "." + name, Detail: err.Error()}
	}
	return nil
}

// Clear empties a field.
func Clear(c Composite, name string) error {
	return Set(c, name, nil)
}

// Has reports whether a field is populated.
func Has(c Composite, name string) bool {
	_, ok := Get(c, name)
	return ok
}

// Values returns the populated values of a field in order.
func Values(c Composite, name string) ([]Value, error) {
	s, alt, err := lookup(c, name)
	if err != nil {
		return nil, err
	}
	vals := s.Values()
	if alt != "" && (len(vals) == 0 || vals[0].FHIRType() != alt) {
		return nil, nil
	}
	return vals, nil
}

// FieldsOf returns the field descriptors of a record in declaration order.
func FieldsOf(c Composite) []schema.Field {
	return c.Fields().Type().Fields
}

func kindOfErr(err error) error {
	for _, k := range []error{ErrUnknownField, ErrCardinality, ErrTypeMismatch, ErrParse} {
		if errors.Is(err, k) {
			return k
		}
	}
	return ErrTypeMismatch
}
