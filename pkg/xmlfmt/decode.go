package xmlfmt

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/gofhir/models/pkg/primitive"
	"github.com/gofhir/models/pkg/record"
	"github.com/gofhir/models/pkg/schema"
	"github.com/gofhir/models/pkg/tree"
)

// Unmarshal reads a FHIR XML resource into a tree. The registry decides
// which elements repeat and which JSON kind each primitive value takes.
// Resources of unregistered types, such as contained resources outside the
// model, are read without a schema: every value is a string, only repeated
// elements become sequences and primitive extensions are dropped.
func Unmarshal(data []byte) (*tree.Object, error) {
	return UnmarshalWith(schema.Default(), data)
}

// UnmarshalWith is Unmarshal against a specific registry.
func UnmarshalWith(reg *schema.Registry, data []byte) (*tree.Object, error) {
	d := &decoder{reg: reg, data: data, dec: xml.NewDecoder(bytes.NewReader(data))}
	for {
		tok, err := d.dec.Token()
		if err == io.EOF {
			return nil, fmt.Errorf("%w: no root element", ErrInvalid)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			if start.Name.Space != Namespace {
				return nil, fmt.Errorf("%w: root element %s is not in namespace %s", ErrInvalid, start.Name.Local, Namespace)
			}
			return d.resource(start)
		}
	}
}

// UnmarshalRecord reads a FHIR XML resource into a record of the type
// named by its root element.
func UnmarshalRecord(data []byte, opts ...record.DecodeOption) (record.Resource, error) {
	obj, err := Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return record.Decode(obj, opts...)
}

type decoder struct {
	reg  *schema.Registry
	data []byte
	dec  *xml.Decoder
}

func (d *decoder) resource(start xml.StartElement) (*tree.Object, error) {
	obj := tree.NewObject()
	obj.Set("resourceType", start.Name.Local)
	t, err := d.reg.Lookup(start.Name.Local)
	if err != nil {
		return obj, d.generic(obj, start.Name.Local)
	}
	return obj, d.children(obj, t, start.Name.Local)
}

// complex reads an element of a registered composite type.
func (d *decoder) complex(start xml.StartElement, typeName, path string) (*tree.Object, error) {
	obj := tree.NewObject()
	for _, a := range start.Attr {
		switch a.Name.Local {
		case "id", "url":
			obj.Set(a.Name.Local, a.Value)
		}
	}
	t, err := d.reg.Lookup(typeName)
	if err != nil {
		return obj, d.generic(obj, path)
	}
	return obj, d.children(obj, t, path)
}

func (d *decoder) children(obj *tree.Object, t *schema.Type, path string) error {
	for {
		off := d.dec.InputOffset()
		tok, err := d.dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
		}
		switch el := tok.(type) {
		case xml.EndElement:
			return nil
		case xml.StartElement:
			name := el.Name.Local
			f, alt, ok := t.Resolve(name)
			if !ok {
				return fmt.Errorf("%w: %s: unknown element %s", ErrInvalid, path, name)
			}
			typeName := f.Type
			if alt != "" {
				typeName = alt
			}
			if err := d.field(obj, f, name, typeName, el, off, path+"."+name); err != nil {
				return err
			}
		}
	}
}

func (d *decoder) field(obj *tree.Object, f schema.Field, name, typeName string, el xml.StartElement, off int64, path string) error {
	var (
		v   any
		ext *tree.Object
		err error
	)
	switch {
	case typeName == primitive.TypeXHTML:
		if err := d.dec.Skip(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
		}
		v = string(d.data[off:d.dec.InputOffset()])
	case primitive.IsPrimitive(typeName):
		v, ext, err = d.primitive(el, typeName, path)
	case f.Kind == schema.KindResource:
		v, err = d.contained(path)
	default:
		v, err = d.complex(el, typeName, path)
	}
	if err != nil {
		return err
	}

	if !f.IsList() {
		if v != nil {
			obj.Set(name, v)
		}
		if ext != nil {
			obj.Set("_"+name, ext)
		}
		return nil
	}
	cur, _ := obj.Get(name)
	list, _ := cur.([]any)
	idx := len(list)
	obj.Set(name, append(list, v))
	if ext != nil || hasKey(obj, "_"+name) {
		cur, _ := obj.Get("_" + name)
		sibs, _ := cur.([]any)
		for len(sibs) < idx {
			sibs = append(sibs, nil)
		}
		var s any
		if ext != nil {
			s = ext
		}
		obj.Set("_"+name, append(sibs, s))
	}
	return nil
}

func hasKey(obj *tree.Object, key string) bool {
	_, ok := obj.Get(key)
	return ok
}

// primitive reads <name value="..."/> and any id or extensions it carries.
func (d *decoder) primitive(el xml.StartElement, typeName, path string) (any, *tree.Object, error) {
	var (
		value    any
		ext      *tree.Object
		hasValue bool
	)
	for _, a := range el.Attr {
		switch a.Name.Local {
		case "value":
			v, err := leaf(typeName, a.Value)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
			}
			value, hasValue = v, true
		case "id":
			ext = tree.NewObject()
			ext.Set("id", a.Value)
		}
	}
	var exts []any
	for {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
		}
		if _, ok := tok.(xml.EndElement); ok {
			break
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "extension" {
			return nil, nil, fmt.Errorf("%w: %s: unexpected element %s in primitive", ErrInvalid, path, start.Name.Local)
		}
		e, err := d.complex(start, "Extension", path+".extension")
		if err != nil {
			return nil, nil, err
		}
		exts = append(exts, e)
	}
	if len(exts) > 0 {
		if ext == nil {
			ext = tree.NewObject()
		}
		ext.Set("extension", exts)
	}
	if !hasValue && ext == nil {
		return nil, nil, fmt.Errorf("%w: %s: primitive element without value or extension", ErrInvalid, path)
	}
	return value, ext, nil
}

func leaf(typeName, s string) (any, error) {
	switch primitive.LeafOf(typeName) {
	case primitive.LeafBool:
		switch s {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return nil, fmt.Errorf("%q is not a boolean", s)
	case primitive.LeafNumber:
		n, err := decimal.NewFromString(s)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", s)
		}
		return n, nil
	default:
		return s, nil
	}
}

// contained reads <contained><Type>...</Type></contained>.
func (d *decoder) contained(path string) (*tree.Object, error) {
	var obj *tree.Object
	for {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
		}
		switch el := tok.(type) {
		case xml.EndElement:
			if obj == nil {
				return nil, fmt.Errorf("%w: %s: empty contained element", ErrInvalid, path)
			}
			return obj, nil
		case xml.StartElement:
			if obj != nil {
				return nil, fmt.Errorf("%w: %s: more than one resource in contained", ErrInvalid, path)
			}
			if obj, err = d.resource(el); err != nil {
				return nil, err
			}
		}
	}
}

// generic reads the children of an element with no schema.
func (d *decoder) generic(obj *tree.Object, path string) error {
	for {
		off := d.dec.InputOffset()
		tok, err := d.dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
		}
		switch el := tok.(type) {
		case xml.EndElement:
			return nil
		case xml.StartElement:
			name := el.Name.Local
			var v any
			switch {
			case name == "div":
				if err := d.dec.Skip(); err != nil {
					return fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
				}
				v = string(d.data[off:d.dec.InputOffset()])
			case attr(el, "value") != nil:
				if err := d.dec.Skip(); err != nil {
					return fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
				}
				v = *attr(el, "value")
			default:
				child := tree.NewObject()
				for _, a := range el.Attr {
					if a.Name.Local == "id" || a.Name.Local == "url" {
						child.Set(a.Name.Local, a.Value)
					}
				}
				if err := d.generic(child, path+"."+name); err != nil {
					return err
				}
				v = child
			}
			if cur, ok := obj.Get(name); ok {
				list, isList := cur.([]any)
				if !isList {
					list = []any{cur}
				}
				obj.Set(name, append(list, v))
			} else {
				obj.Set(name, v)
			}
		}
	}
}

func attr(el xml.StartElement, name string) *string {
	for i := range el.Attr {
		if el.Attr[i].Name.Local == name {
			return &el.Attr[i].Value
		}
	}
	return nil
}
