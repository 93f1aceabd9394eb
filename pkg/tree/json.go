package tree

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/buger/jsonparser"
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// ErrInvalidJSON is returned for malformed JSON text.
var ErrInvalidJSON = errors.New("invalid JSON")

// ParseJSON decodes JSON text into a tree value, keeping object key order.
func ParseJSON(data []byte) (any, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: syntax error", ErrInvalidJSON)
	}
	value, typ, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return parseValue(value, typ)
}

// ParseObject decodes JSON text whose top-level value must be an object.
func ParseObject(data []byte) (*Object, error) {
	v, err := ParseJSON(data)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(*Object)
	if !ok {
		return nil, fmt.Errorf("%w: top-level value is %s, want object", ErrInvalidJSON, Kind(v))
	}
	return obj, nil
}

func parseValue(value []byte, typ jsonparser.ValueType) (any, error) {
	switch typ {
	case jsonparser.Object:
		return parseObject(value)
	case jsonparser.Array:
		return parseArray(value)
	case jsonparser.String:
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		return s, nil
	case jsonparser.Number:
		d, err := decimal.NewFromString(string(value))
		if err != nil {
			return nil, fmt.Errorf("%w: bad number %q", ErrInvalidJSON, value)
		}
		return d, nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		return b, nil
	case jsonparser.Null:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: unexpected token %q", ErrInvalidJSON, value)
	}
}

func parseObject(data []byte) (*Object, error) {
	obj := NewObject()
	err := jsonparser.ObjectEach(data, func(key, value []byte, typ jsonparser.ValueType, _ int) error {
		v, err := parseValue(value, typ)
		if err != nil {
			return err
		}
		obj.Set(string(key), v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return obj, nil
}

func parseArray(data []byte) ([]any, error) {
	out := make([]any, 0)
	var firstErr error
	_, err := jsonparser.ArrayEach(data, func(value []byte, typ jsonparser.ValueType, _ int, err error) {
		if firstErr != nil {
			return
		}
		if err != nil {
			firstErr = err
			return
		}
		v, perr := parseValue(value, typ)
		if perr != nil {
			firstErr = perr
			return
		}
		out = append(out, v)
	})
	if firstErr != nil {
		return nil, firstErr
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return out, nil
}

// MarshalJSON encodes a tree value as compact JSON. Object keys keep their
// insertion order and numbers keep their scale.
func MarshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := encode(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalIndent is MarshalJSON followed by indentation.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	compact, err := MarshalJSON(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encode(buf *bytes.Buffer, v any) error {
	switch t := v.(type) {
	case nil:
		buf.WriteString("null")
	case *Object:
		if t == nil {
			buf.WriteString("null")
			return nil
		}
		buf.WriteByte('{')
		for i, k := range t.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeString(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := encode(buf, t.vals[k]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case []any:
		buf.WriteByte('[')
		for i, e := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encode(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case string:
		return encodeString(buf, t)
	case bool:
		buf.WriteString(strconv.FormatBool(t))
	case decimal.Decimal:
		buf.WriteString(FormatNumber(t))
	default:
		return fmt.Errorf("tree: cannot encode %T", v)
	}
	return nil
}

func encodeString(buf *bytes.Buffer, s string) error {
	b, err := json.MarshalWithOption(s, json.DisableHTMLEscape())
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}
