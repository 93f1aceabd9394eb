// Package primitive holds the lexical and range rules of FHIR primitive
// types and the JSON leaf kind each one is carried as.
package primitive

import (
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FHIR primitive type names.
const (
	TypeBoolean      = "boolean"
	TypeInteger      = "integer"
	TypePositiveInt  = "positiveInt"
	TypeUnsignedInt  = "unsignedInt"
	TypeDecimal      = "decimal"
	TypeString       = "string"
	TypeCode         = "code"
	TypeID           = "id"
	TypeURI          = "uri"
	TypeURL          = "url"
	TypeCanonical    = "canonical"
	TypeOID          = "oid"
	TypeUUID         = "uuid"
	TypeMarkdown     = "markdown"
	TypeBase64Binary = "base64Binary"
	TypeDate         = "date"
	TypeDateTime     = "dateTime"
	TypeInstant      = "instant"
	TypeTime         = "time"
	TypeXHTML        = "xhtml"
)

// ErrFormat marks a value that breaks its primitive type's rules.
var ErrFormat = errors.New("invalid primitive format")

// Leaf is the JSON kind a primitive is carried as.
type Leaf int

// Leaf kinds.
const (
	LeafString Leaf = iota
	LeafNumber
	LeafBool
)

// String returns the JSON kind name.
func (l Leaf) String() string {
	switch l {
	case LeafNumber:
		return "number"
	case LeafBool:
		return "boolean"
	default:
		return "string"
	}
}

// LeafOf returns the JSON leaf kind of a primitive type.
func LeafOf(typeName string) Leaf {
	switch typeName {
	case TypeBoolean:
		return LeafBool
	case TypeInteger, TypePositiveInt, TypeUnsignedInt, TypeDecimal:
		return LeafNumber
	default:
		return LeafString
	}
}

var primitives = map[string]bool{
	TypeBoolean: true, TypeInteger: true, TypePositiveInt: true, TypeUnsignedInt: true,
	TypeDecimal: true, TypeString: true, TypeCode: true, TypeID: true, TypeURI: true,
	TypeURL: true, TypeCanonical: true, TypeOID: true, TypeUUID: true, TypeMarkdown: true,
	TypeBase64Binary: true, TypeDate: true, TypeDateTime: true, TypeInstant: true,
	TypeTime: true, TypeXHTML: true,
}

// IsPrimitive reports whether typeName is a FHIR primitive type.
func IsPrimitive(typeName string) bool {
	return primitives[typeName]
}

// Compiled regex patterns for validation
var (
	decimalRegex   = regexp.MustCompile(`^-?(0|[1-9]\d*)(\.\d+)?([eE][+-]?\d+)?$`)
	urlRegex       = regexp.MustCompile(`^\S+$`)
	canonicalRegex = regexp.MustCompile(`^\S+(\|\S+)?$`)
	codeRegex      = regexp.MustCompile(`^\S+( \S+)*$`)
	idRegex        = regexp.MustCompile(`^[A-Za-z0-9\-.]{1,64}$`)
	oidRegex       = regexp.MustCompile(`^urn:oid:[012](\.(0|[1-9]\d*))+$`)
	instantRegex   = regexp.MustCompile(`^(\d{4})-(0[1-9]|1[012])-(0[1-9]|[12]\d|3[01])T([01]\d|2[0-3]):[0-5]\d:([0-5]\d|60)(\.\d+)?(Z|[+-]((0\d|1[0-3]):[0-5]\d|14:00))$`)
	dateRegex      = regexp.MustCompile(`^(\d{4})(-(0[1-9]|1[012])(-(0[1-9]|[12]\d|3[01]))?)?$`)
	dateTimeRegex  = regexp.MustCompile(`^(\d{4})(-(0[1-9]|1[012])(-(0[1-9]|[12]\d|3[01])(T([01]\d|2[0-3]):[0-5]\d:([0-5]\d|60)(\.\d+)?(Z|[+-]((0\d|1[0-3]):[0-5]\d|14:00)))?)?)?$`)
	timeRegex      = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d:([0-5]\d|60)(\.\d+)?$`)
	base64Regex    = regexp.MustCompile(`^(\s*([0-9a-zA-Z+/=]){4}\s*)+$`)
)

// CheckString validates the lexical form of a string-carried primitive.
func CheckString(typeName, s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("%w: %s contains invalid UTF-8", ErrFormat, typeName)
	}
	var ok bool
	switch typeName {
	case TypeString, TypeMarkdown:
		ok = strings.TrimSpace(s) != ""
	case TypeCode:
		ok = codeRegex.MatchString(s)
	case TypeID:
		ok = idRegex.MatchString(s)
	case TypeURI:
		ok = s != "" && !strings.ContainsAny(s, " \t\n\r")
	case TypeURL:
		ok = urlRegex.MatchString(s)
	case TypeCanonical:
		ok = canonicalRegex.MatchString(s)
	case TypeOID:
		ok = oidRegex.MatchString(s)
	case TypeUUID:
		ok = checkUUID(s)
	case TypeBase64Binary:
		ok = checkBase64(s)
	case TypeDate:
		ok = dateRegex.MatchString(s)
	case TypeDateTime:
		ok = dateTimeRegex.MatchString(s)
	case TypeInstant:
		ok = instantRegex.MatchString(s)
	case TypeTime:
		ok = timeRegex.MatchString(s)
	case TypeXHTML:
		ok = strings.HasPrefix(strings.TrimSpace(s), "<div")
	case TypeDecimal:
		ok = decimalRegex.MatchString(s)
	default:
		return fmt.Errorf("%w: %s is not a string primitive", ErrFormat, typeName)
	}
	if !ok {
		return fmt.Errorf("%w: %q is not a valid %s", ErrFormat, Truncate(s), typeName)
	}
	return nil
}

// checkUUID requires the urn:uuid: prefix and lets google/uuid judge the rest.
func checkUUID(s string) bool {
	rest, ok := strings.CutPrefix(s, "urn:uuid:")
	if !ok || len(rest) != 36 {
		return false
	}
	_, err := uuid.Parse(rest)
	return err == nil
}

func checkBase64(s string) bool {
	if s == "" {
		return false
	}
	if !base64Regex.MatchString(s) {
		return false
	}
	compact := strings.Join(strings.Fields(s), "")
	_, err := base64.StdEncoding.DecodeString(compact)
	return err == nil
}

// Integer ranges.
const (
	minInt32 = -2147483648
	maxInt32 = 2147483647
)

// CheckInteger validates a number against an integer primitive type and
// returns it as int64.
func CheckInteger(typeName string, d decimal.Decimal) (int64, error) {
	if !d.IsInteger() || d.Exponent() < 0 {
		return 0, fmt.Errorf("%w: %s is not a whole number", ErrFormat, d.String())
	}
	if d.LessThan(decimal.NewFromInt(minInt32)) || d.GreaterThan(decimal.NewFromInt(maxInt32)) {
		return 0, fmt.Errorf("%w: %s out of 32-bit range", ErrFormat, d.String())
	}
	i := d.IntPart()
	if err := CheckRange(typeName, i); err != nil {
		return 0, err
	}
	return i, nil
}

// CheckRange validates an integer value against its primitive type's range.
func CheckRange(typeName string, i int64) error {
	switch typeName {
	case TypePositiveInt:
		if i < 1 || i > maxInt32 {
			return fmt.Errorf("%w: positiveInt out of range [1, 2147483647]: %d", ErrFormat, i)
		}
	case TypeUnsignedInt:
		if i < 0 || i > maxInt32 {
			return fmt.Errorf("%w: unsignedInt out of range [0, 2147483647]: %d", ErrFormat, i)
		}
	case TypeInteger:
		if i < minInt32 || i > maxInt32 {
			return fmt.Errorf("%w: integer out of range: %d", ErrFormat, i)
		}
	}
	return nil
}

// Truncate shortens long values for diagnostics.
func Truncate(value string) string {
	const maxLen = 50
	if len(value) <= maxLen {
		return value
	}
	return value[:maxLen] + "..."
}
