package record

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/gofhir/models/pkg/schema"
	"github.com/gofhir/models/pkg/tree"
)

// UnknownPolicy decides what FromTree does with keys that are not declared
// fields. Primitive extension siblings ("_status" next to "status") are
// always preserved.
type UnknownPolicy int

// Unknown key policies.
const (
	RejectUnknown UnknownPolicy = iota
	PreserveUnknown
	IgnoreUnknown
)

// String returns the policy name used in configuration.
func (p UnknownPolicy) String() string {
	switch p {
	case PreserveUnknown:
		return "preserve"
	case IgnoreUnknown:
		return "ignore"
	default:
		return "reject"
	}
}

// ParseUnknownPolicy maps a configuration value to a policy.
func ParseUnknownPolicy(s string) (UnknownPolicy, error) {
	switch strings.ToLower(s) {
	case "", "reject":
		return RejectUnknown, nil
	case "preserve":
		return PreserveUnknown, nil
	case "ignore":
		return IgnoreUnknown, nil
	}
	return RejectUnknown, fmt.Errorf("unknown element policy %q", s)
}

type decodeConfig struct {
	unknown         UnknownPolicy
	requireComplete bool
}

// DecodeOption configures FromTree and Decode.
type DecodeOption func(*decodeConfig)

// Unknown sets the unknown key policy. The default is RejectUnknown.
func Unknown(p UnknownPolicy) DecodeOption {
	return func(c *decodeConfig) { c.unknown = p }
}

// RequireComplete makes missing required fields a decode error instead of
// a validation finding.
func RequireComplete(b bool) DecodeOption {
	return func(c *decodeConfig) { c.requireComplete = b }
}

// FromTree populates c from a tree object. Every problem found is reported;
// the returned error aggregates FieldErrors and c holds whatever could be
// decoded.
func FromTree(obj *tree.Object, c Composite, opts ...DecodeOption) error {
	d := newDecoder(opts)
	if obj == nil {
		t := c.Fields().Type()
		d.fail(ErrTypeMismatch, t.Name, "", t.Name, "expected object, got null")
		return d.errs.ErrorOrNil()
	}
	d.composite(obj, c, c.Fields().Type().Name)
	return d.errs.ErrorOrNil()
}

// Decode allocates a resource by the tree's resourceType and populates it.
func Decode(obj *tree.Object, opts ...DecodeOption) (Resource, error) {
	if obj == nil {
		return nil, &FieldError{Kind: ErrParse, Detail: "expected object, got null"}
	}
	name, ok := obj.GetString("resourceType")
	if !ok || name == "" {
		return nil, &FieldError{Kind: ErrParse, Field: "resourceType", Path: "resourceType", Detail: "missing resourceType"}
	}
	r, err := New(name)
	if err != nil {
		return nil, &FieldError{Kind: ErrParse, Field: "resourceType", Path: "resourceType", Detail: err.Error()}
	}
	return r, FromTree(obj, r, opts...)
}

// UnmarshalJSON parses JSON into c.
func UnmarshalJSON(data []byte, c Composite, opts ...DecodeOption) error {
	obj, err := tree.ParseObject(data)
	if err != nil {
		return &FieldError{Kind: ErrParse, Detail: err.Error()}
	}
	return FromTree(obj, c, opts...)
}

type decoder struct {
	cfg  decodeConfig
	errs *multierror.Error
}

func newDecoder(opts []DecodeOption) *decoder {
	d := &decoder{}
	for _, o := range opts {
		o(&d.cfg)
	}
	return d
}

func (d *decoder) fail(kind error, typ, field, path, format string, args ...any) {
	d.errs = multierror.Append(d.errs, fieldError(kind, typ, field, path, format, args...))
}

func (d *decoder) composite(obj *tree.Object, c Composite, path string) {
	fs := c.Fields()
	t := fs.Type()
	var extras *tree.Object
	keep := func(k string, v any) {
		if extras == nil {
			extras = tree.NewObject()
		}
		extras.Set(k, tree.Clone(v))
	}
	chosen := make(map[string]string)

	obj.Range(func(key string, raw any) bool {
		if key == "resourceType" && t.IsResource() {
			if s, _ := raw.(string); s != t.Name {
				d.fail(ErrParse, t.Name, key, path+"."+key, "resourceType %q does not match %s", s, t.Name)
			}
			return true
		}
		f, alt, ok := t.Resolve(key)
		if !ok {
			if isPrimitiveSibling(t, key) {
				keep(key, raw)
				return true
			}
			switch d.cfg.unknown {
			case PreserveUnknown:
				keep(key, raw)
			case RejectUnknown:
				d.fail(ErrUnknownField, t.Name, key, path+"."+key, "%s has no field %q", t.Name, key)
			}
			return true
		}
		i, _ := t.FieldIndex(f.Name)
		slot := fs.Slot(i)
		fieldPath := path + "." + key

		if f.IsChoice() {
			if prev, dup := chosen[f.Name]; dup {
				d.fail(ErrParse, t.Name, key, fieldPath, "%s[x] is populated twice (%s and %s)", f.Name, prev, key)
				return true
			}
			chosen[f.Name] = key
		}

		if f.IsList() {
			arr, ok := raw.([]any)
			if !ok {
				d.fail(ErrCardinality, t.Name, key, fieldPath, "expected array, got %s", tree.Kind(raw))
				return true
			}
			if len(arr) == 0 {
				slot.MarkEmpty()
				return true
			}
			for j, elem := range arr {
				v, _ := slot.NewValue(alt)
				if d.value(elem, v, fmt.Sprintf("%s[%d]", fieldPath, j), t.Name, key) {
					_ = slot.Put(v)
				}
			}
			return true
		}

		if _, isArr := raw.([]any); isArr {
			d.fail(ErrCardinality, t.Name, key, fieldPath, "expected a single value, got array")
			return true
		}
		v, err := slot.NewValue(alt)
		if err != nil {
			d.fail(ErrTypeMismatch, t.Name, key, fieldPath, "%v", err)
			return true
		}
		if d.value(raw, v, fieldPath, t.Name, key) {
			_ = slot.Put(v)
		}
		return true
	})

	if h, ok := c.(ExtrasHolder); ok {
		h.SetUnknownElements(extras)
	}
	if d.cfg.requireComplete {
		for i := 0; i < fs.Len(); i++ {
			s := fs.Slot(i)
			f := s.Field()
			if f.Required() && (!s.Present() || len(s.Values()) < f.Min) {
				name := f.Name
				if f.IsChoice() {
					name += "[x]"
				}
				d.fail(ErrMissingRequired, t.Name, name, path+"."+name, "minimum cardinality %d", f.Min)
			}
		}
	}
}

// value decodes one element into v. It reports false when nothing usable
// was decoded.
func (d *decoder) value(raw any, v Value, path, typ, field string) bool {
	switch x := v.(type) {
	case Primitive:
		if raw == nil {
			d.fail(ErrParse, typ, field, path, "null is not a valid %s", v.FHIRType())
			return false
		}
		if _, isObj := raw.(*tree.Object); isObj {
			d.fail(ErrTypeMismatch, typ, field, path, "expected %s, got object", v.FHIRType())
			return false
		}
		if err := x.UnmarshalTree(raw); err != nil {
			d.fail(ErrParse, typ, field, path, "%v", err)
			return false
		}
		return true
	case Embedded:
		obj, ok := raw.(*tree.Object)
		if !ok {
			d.fail(ErrTypeMismatch, typ, field, path, "expected resource object, got %s", tree.Kind(raw))
			return false
		}
		name, _ := obj.GetString("resourceType")
		if name == "" {
			d.fail(ErrParse, typ, field, path, "contained resource has no resourceType")
			return false
		}
		r, err := New(name)
		if err != nil {
			x.SetOpaque(obj.Clone())
			return true
		}
		d.composite(obj, r, path)
		x.SetResource(r)
		return true
	case Composite:
		obj, ok := raw.(*tree.Object)
		if !ok {
			d.fail(ErrTypeMismatch, typ, field, path, "expected %s object, got %s", v.FHIRType(), tree.Kind(raw))
			return false
		}
		d.composite(obj, x, path)
		return true
	}
	d.fail(ErrTypeMismatch, typ, field, path, "unsupported value type %T", v)
	return false
}

// isPrimitiveSibling reports whether key is the "_name" companion of a
// primitive field, which carries its id and extensions.
func isPrimitiveSibling(t *schema.Type, key string) bool {
	name, ok := strings.CutPrefix(key, "_")
	if !ok {
		return false
	}
	f, alt, ok := t.Resolve(name)
	if !ok {
		return false
	}
	if f.IsChoice() {
		return isPrimitiveCode(alt)
	}
	return f.Kind == schema.KindPrimitive
}

// Primitive type codes start lower case; complex ones upper case.
func isPrimitiveCode(code string) bool {
	return code != "" && code[0] >= 'a' && code[0] <= 'z'
}
