package primitive

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCheckString(t *testing.T) {
	tests := []struct {
		typ   string
		value string
		ok    bool
	}{
		{TypeDate, "2024", true},
		{TypeDate, "2024-02", true},
		{TypeDate, "2024-02-29", true},
		{TypeDate, "2024-13-01", false},
		{TypeDate, "02/03/2024", false},
		{TypeDateTime, "2024-02-03T10:00:00Z", true},
		{TypeDateTime, "2024-02-03T10:00:00", false},
		{TypeDateTime, "2024-02-03", true},
		{TypeInstant, "2024-02-03T10:00:00.123+01:00", true},
		{TypeInstant, "2024-02-03", false},
		{TypeTime, "23:59:59", true},
		{TypeTime, "24:00:00", false},
		{TypeCode, "entered-in-error", true},
		{TypeCode, "", false},
		{TypeCode, " active", false},
		{TypeID, "claim-1.a", true},
		{TypeID, "claim_1", false},
		{TypeURI, "http://example.org/a", true},
		{TypeURI, "has space", false},
		{TypeCanonical, "http://hl7.org/fhir/ValueSet/fm-status|4.0.1", true},
		{TypeOID, "urn:oid:1.2.3", true},
		{TypeOID, "1.2.3", false},
		{TypeUUID, "urn:uuid:c757873d-ec9a-4326-a141-556f43239520", true},
		{TypeUUID, "c757873d-ec9a-4326-a141-556f43239520", false},
		{TypeUUID, "urn:uuid:zzzzzzzz-ec9a-4326-a141-556f43239520", false},
		{TypeBase64Binary, "aGVsbG8=", true},
		{TypeBase64Binary, "not base64!", false},
		{TypeString, "hello", true},
		{TypeString, "   ", false},
		{TypeXHTML, `<div xmlns="http://www.w3.org/1999/xhtml">x</div>`, true},
		{TypeXHTML, "plain", false},
		{TypeBoolean, "true", false},
	}
	for _, tt := range tests {
		t.Run(tt.typ+"/"+tt.value, func(t *testing.T) {
			err := CheckString(tt.typ, tt.value)
			if tt.ok && err != nil {
				t.Errorf("CheckString(%s, %q) error = %v", tt.typ, tt.value, err)
			}
			if !tt.ok && !errors.Is(err, ErrFormat) {
				t.Errorf("CheckString(%s, %q) error = %v, want ErrFormat", tt.typ, tt.value, err)
			}
		})
	}
}

func TestCheckInteger(t *testing.T) {
	tests := []struct {
		typ   string
		value string
		want  int64
		ok    bool
	}{
		{TypePositiveInt, "1", 1, true},
		{TypePositiveInt, "0", 0, false},
		{TypePositiveInt, "-5", 0, false},
		{TypeUnsignedInt, "0", 0, true},
		{TypeUnsignedInt, "-1", 0, false},
		{TypeInteger, "-2147483648", -2147483648, true},
		{TypeInteger, "2147483648", 0, false},
		{TypeInteger, "1.5", 0, false},
		{TypeInteger, "1.0", 0, false},
		{TypePositiveInt, "2.00", 0, false},
		{TypeInteger, "1e2", 100, true},
	}
	for _, tt := range tests {
		t.Run(tt.typ+"/"+tt.value, func(t *testing.T) {
			got, err := CheckInteger(tt.typ, decimal.RequireFromString(tt.value))
			if tt.ok {
				if err != nil || got != tt.want {
					t.Errorf("CheckInteger() = %d, %v; want %d", got, err, tt.want)
				}
				return
			}
			if !errors.Is(err, ErrFormat) {
				t.Errorf("CheckInteger() error = %v, want ErrFormat", err)
			}
		})
	}
}

func TestLeafOf(t *testing.T) {
	if LeafOf(TypeBoolean) != LeafBool || LeafOf(TypePositiveInt) != LeafNumber || LeafOf(TypeDate) != LeafString {
		t.Error("LeafOf mismatch")
	}
	if !IsPrimitive(TypeCanonical) || IsPrimitive("CodeableConcept") {
		t.Error("IsPrimitive mismatch")
	}
	if LeafNumber.String() != "number" {
		t.Error("Leaf.String mismatch")
	}
}

func TestTruncate(t *testing.T) {
	long := "0123456789012345678901234567890123456789012345678901234567890"
	if got := Truncate(long); len(got) != 53 {
		t.Errorf("Truncate() len = %d", len(got))
	}
}
