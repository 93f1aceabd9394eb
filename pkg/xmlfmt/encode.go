// Package xmlfmt reads and writes the FHIR XML representation of the
// generic tree. Primitive values are carried in value attributes, element
// ids and extension urls are attributes, contained resources are wrapped
// in an element named after their type and narrative div elements are
// embedded verbatim.
package xmlfmt

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gofhir/models/pkg/record"
	"github.com/gofhir/models/pkg/tree"
)

// Namespace is the FHIR XML namespace.
const Namespace = "http://hl7.org/fhir"

// ErrInvalid marks input that is not a FHIR XML document this package can
// map onto the tree.
var ErrInvalid = errors.New("invalid FHIR XML")

// Marshal writes a resource tree as FHIR XML.
func Marshal(obj *tree.Object) ([]byte, error) {
	rt, ok := obj.GetString("resourceType")
	if !ok || rt == "" {
		return nil, fmt.Errorf("%w: missing resourceType", ErrInvalid)
	}
	e := &encoder{}
	if err := e.resource(rt, obj, true); err != nil {
		return nil, err
	}
	return e.buf.Bytes(), nil
}

// MarshalRecord writes a record as FHIR XML.
func MarshalRecord(c record.Composite) ([]byte, error) {
	return Marshal(record.ToTree(c))
}

type encoder struct {
	buf bytes.Buffer
}

func (e *encoder) resource(name string, obj *tree.Object, root bool) error {
	e.buf.WriteString("<" + name)
	if root {
		e.attr("xmlns", Namespace)
	}
	e.buf.WriteString(">")
	if err := e.content(obj, true, false); err != nil {
		return err
	}
	e.buf.WriteString("</" + name + ">")
	return nil
}

// element writes a complex element. Resources keep id as a child element;
// other elements carry it as an attribute, as extensions do their url.
func (e *encoder) element(name string, obj *tree.Object) error {
	ext := name == "extension" || name == "modifierExtension"
	e.buf.WriteString("<" + name)
	if id, ok := obj.GetString("id"); ok {
		e.attr("id", id)
	}
	if url, ok := obj.GetString("url"); ok && ext {
		e.attr("url", url)
	}
	if !hasContent(obj, ext) {
		e.buf.WriteString("/>")
		return nil
	}
	e.buf.WriteString(">")
	if err := e.content(obj, false, ext); err != nil {
		return err
	}
	e.buf.WriteString("</" + name + ">")
	return nil
}

func hasContent(obj *tree.Object, ext bool) bool {
	for _, k := range obj.Keys() {
		if k != "id" && !(ext && k == "url") {
			return true
		}
	}
	return false
}

func (e *encoder) content(obj *tree.Object, isResource, ext bool) error {
	for _, k := range obj.Keys() {
		if k == "resourceType" || (!isResource && k == "id") || (ext && k == "url") {
			continue
		}
		v, _ := obj.Get(k)
		if strings.HasPrefix(k, "_") {
			// Extension data of a primitive whose value is absent.
			if _, ok := obj.Get(k[1:]); !ok {
				if err := e.field(k[1:], nil, v); err != nil {
					return err
				}
			}
			continue
		}
		sib, _ := obj.Get("_" + k)
		if err := e.field(k, v, sib); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) field(name string, v, sibling any) error {
	list, isList := v.([]any)
	sibs, sibList := sibling.([]any)
	if isList || (v == nil && sibList) {
		n := len(list)
		if len(sibs) > n {
			n = len(sibs)
		}
		for i := 0; i < n; i++ {
			var item, sib any
			if i < len(list) {
				item = list[i]
			}
			if i < len(sibs) {
				sib = sibs[i]
			}
			if err := e.value(name, item, sib); err != nil {
				return err
			}
		}
		return nil
	}
	return e.value(name, v, sibling)
}

func (e *encoder) value(name string, v, sibling any) error {
	switch x := v.(type) {
	case *tree.Object:
		if rt, ok := x.GetString("resourceType"); ok {
			e.buf.WriteString("<" + name + ">")
			if err := e.resource(rt, x, false); err != nil {
				return err
			}
			e.buf.WriteString("</" + name + ">")
			return nil
		}
		return e.element(name, x)
	case string:
		if name == "div" {
			e.buf.WriteString(x)
			return nil
		}
		return e.primitive(name, x, sibling)
	case bool:
		return e.primitive(name, fmt.Sprint(x), sibling)
	case decimal.Decimal:
		return e.primitive(name, tree.FormatNumber(x), sibling)
	case nil:
		if sibling == nil {
			return nil
		}
		return e.primitive(name, "", sibling)
	default:
		return fmt.Errorf("%w: %s holds %s", ErrInvalid, name, tree.Kind(v))
	}
}

// primitive writes <name value="..."/>, folding the _name sibling's id and
// extensions into the same element.
func (e *encoder) primitive(name, value string, sibling any) error {
	ext, _ := sibling.(*tree.Object)
	e.buf.WriteString("<" + name)
	if ext != nil {
		if id, ok := ext.GetString("id"); ok {
			e.attr("id", id)
		}
	}
	if value != "" {
		e.attr("value", value)
	}
	if ext == nil {
		e.buf.WriteString("/>")
		return nil
	}
	children, _ := ext.Get("extension")
	list, _ := children.([]any)
	if len(list) == 0 {
		e.buf.WriteString("/>")
		return nil
	}
	e.buf.WriteString(">")
	for _, item := range list {
		if err := e.value("extension", item, nil); err != nil {
			return err
		}
	}
	e.buf.WriteString("</" + name + ">")
	return nil
}

func (e *encoder) attr(name, value string) {
	e.buf.WriteString(" " + name + `="`)
	_ = xml.EscapeText(&e.buf, []byte(value))
	e.buf.WriteString(`"`)
}
