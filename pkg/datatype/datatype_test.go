package datatype

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/gofhir/models/pkg/primitive"
	"github.com/gofhir/models/pkg/record"
	"github.com/gofhir/models/pkg/schema"
	"github.com/gofhir/models/pkg/terminology"
	"github.com/gofhir/models/pkg/tree"
)

func TestPrimitiveUnmarshalTree(t *testing.T) {
	tests := []struct {
		name    string
		target  record.Primitive
		input   any
		wantErr bool
	}{
		{"code", new(Code), "active", false},
		{"code blank", new(Code), " ", true},
		{"code number", new(Code), decimal.NewFromInt(1), true},
		{"date", new(Date), "2024-02", false},
		{"date not iso", new(Date), "02/03/2024", true},
		{"dateTime with zone", new(DateTime), "2024-02-03T10:00:00+01:00", false},
		{"dateTime without zone", new(DateTime), "2024-02-03T10:00:00", true},
		{"boolean", new(Boolean), true, false},
		{"boolean as string", new(Boolean), "true", true},
		{"positiveInt", new(PositiveInt), decimal.NewFromInt(3), false},
		{"positiveInt zero", new(PositiveInt), decimal.NewFromInt(0), true},
		{"positiveInt fraction", new(PositiveInt), decimal.RequireFromString("1.5"), true},
		{"unsignedInt zero", new(UnsignedInt), decimal.NewFromInt(0), false},
		{"integer negative", new(Integer), decimal.NewFromInt(-7), false},
		{"integer overflow", new(Integer), decimal.NewFromInt(1 << 40), true},
		{"decimal", new(Decimal), decimal.RequireFromString("12.50"), false},
		{"decimal as string", new(Decimal), "12.50", true},
		{"id", new(ID), "claim-1", false},
		{"id too long", new(ID), strings.Repeat("a", 65), true},
		{"uuid", new(UUID), "urn:uuid:c757873d-ec9a-4326-a141-556f43239520", false},
		{"uuid bare", new(UUID), "c757873d-ec9a-4326-a141-556f43239520", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.target.UnmarshalTree(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalTree(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, primitive.ErrFormat) {
				t.Errorf("error %v does not wrap ErrFormat", err)
			}
		})
	}
}

func TestDecimalKeepsScale(t *testing.T) {
	d := NewDecimal("100.00")
	if got := d.String(); got != "100.00" {
		t.Errorf("String() = %q, want 100.00", got)
	}
	data, err := tree.MarshalJSON(record.ToTree(NewMoney("100.00", "USD")))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), `{"value":100.00,"currency":"USD"}`; got != want {
		t.Errorf("MarshalJSON = %s, want %s", got, want)
	}
}

func TestCodedValues(t *testing.T) {
	t.Run("coding", func(t *testing.T) {
		codes, textOnly := NewCoding("http://example.org", "a", "A").Codes()
		want := []terminology.Code{{System: "http://example.org", Code: "a", Display: "A"}}
		if diff := cmp.Diff(want, codes); diff != "" || textOnly {
			t.Errorf("Codes() mismatch (-want +got):\n%s textOnly=%v", diff, textOnly)
		}
	})
	t.Run("text only concept", func(t *testing.T) {
		codes, textOnly := TextConcept("something").Codes()
		if len(codes) != 0 || !textOnly {
			t.Errorf("Codes() = %v, %v; want none, text only", codes, textOnly)
		}
	})
	t.Run("concept skips codings without code", func(t *testing.T) {
		cc := &CodeableConcept{Coding: []Coding{{System: NewURI("http://example.org")}, *NewCoding("s", "x", "")}}
		codes, _ := cc.Codes()
		if len(codes) != 1 || codes[0].Code != "x" {
			t.Errorf("Codes() = %v", codes)
		}
		if !cc.HasCode("s", "x") || cc.HasCode("s", "y") {
			t.Error("HasCode mismatch")
		}
	})
	t.Run("bare code", func(t *testing.T) {
		codes, _ := Code("active").Codes()
		if len(codes) != 1 || codes[0].System != "" || codes[0].Code != "active" {
			t.Errorf("Codes() = %v", codes)
		}
	})
}

func TestTablesCarryBaseFields(t *testing.T) {
	tests := []struct {
		typeName string
		want     []string
	}{
		{"Coding", []string{"id", "extension", "system", "version", "code", "display", "userSelected"}},
		{"Period", []string{"id", "extension", "start", "end"}},
		{"Timing", []string{"id", "extension", "modifierExtension", "event", "repeat", "code"}},
		{"Duration", []string{"id", "extension", "value", "comparator", "unit", "system", "code"}},
	}
	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			fields, err := schema.Default().FieldsOf(tt.typeName)
			if err != nil {
				t.Fatal(err)
			}
			var got []string
			for _, f := range fields {
				got = append(got, f.Name)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("field order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPrimitiveTypesRegistered(t *testing.T) {
	for _, name := range []string{"code", "dateTime", "positiveInt", "decimal"} {
		typ, err := schema.Default().Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%s): %v", name, err)
		}
		if typ.Kind != schema.KindPrimitive {
			t.Errorf("%s kind = %v, want primitive", name, typ.Kind)
		}
	}
}

func TestExtensionValueChoice(t *testing.T) {
	ext := NewExtension("http://example.org/ext", NewBoolean(true))
	obj := record.ToTree(ext)
	if got := obj.Keys(); !cmp.Equal(got, []string{"url", "valueBoolean"}) {
		t.Errorf("keys = %v", got)
	}

	var back Extension
	if err := record.FromTree(obj, &back); err != nil {
		t.Fatal(err)
	}
	if !record.Equal(ext, &back) {
		t.Error("extension did not round-trip")
	}
}

func TestContainedResourceOpaque(t *testing.T) {
	obj := tree.NewObject()
	obj.Set("resourceType", "Patient")
	obj.Set("id", "p1")

	var c ContainedResource
	c.SetOpaque(obj)
	if c.ResourceType() != "Patient" || c.LocalID() != "p1" || c.Resource() != nil {
		t.Errorf("opaque contained = %q %q %v", c.ResourceType(), c.LocalID(), c.Resource())
	}
}

func TestTimingRoundTrip(t *testing.T) {
	src := `{"event":["2024-01-01T08:00:00Z"],"repeat":{"boundsPeriod":{"start":"2024-01-01"},"frequency":2,"period":1,"periodUnit":"d","dayOfWeek":["mon","fri"]},"code":{"text":"BID"}}`
	obj, err := tree.ParseObject([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	var tm Timing
	if err := record.FromTree(obj, &tm); err != nil {
		t.Fatal(err)
	}
	out, err := tree.MarshalJSON(record.ToTree(&tm))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != src {
		t.Errorf("round trip:\n got %s\nwant %s", out, src)
	}
	if res := record.Validate(&tm); res.HasErrors() {
		t.Errorf("unexpected errors: %+v", res.Issues)
	}
}
