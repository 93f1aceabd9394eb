package terminology

import (
	"testing"

	"github.com/gofhir/fhir/r4"
)

func TestValueSetCheck(t *testing.T) {
	tests := []struct {
		name   string
		vs     *ValueSet
		system string
		code   string
		want   Membership
	}{
		{"bare code member", FMStatus, "", "active", Member},
		{"bare code not member", FMStatus, "", "bogus", NotMember},
		{"coding member", ClaimType, SystemClaimType, "professional", Member},
		{"coding wrong code", ClaimType, SystemClaimType, "dental", NotMember},
		{"coding foreign system", ClaimType, "http://example.org/types", "professional", NotMember},
		{"whole system", MimeTypes, SystemMimeTypes, "text/plain", Undetermined},
		{"whole system bare code", MimeTypes, "", "text/plain", Undetermined},
		{"currency", Currencies, SystemCurrencies, "USD", Member},
		{"unknown currency", Currencies, "", "XYZ", NotMember},
		{"two systems", EventTiming, SystemV3TimingEvent, "HS", Member},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.vs.Check(tt.system, tt.code); got != tt.want {
				t.Errorf("Check(%q, %q) = %v, want %v", tt.system, tt.code, got, tt.want)
			}
		})
	}
}

func TestValueSetHelpers(t *testing.T) {
	if !ClaimType.HasSystem(SystemClaimType) || ClaimType.HasSystem(SystemSNOMED) {
		t.Error("HasSystem mismatch")
	}
	if !FMStatus.Enumerated() || Languages.Enumerated() {
		t.Error("Enumerated mismatch")
	}
	if d, ok := ProcessPriority.Display(SystemProcessPriority, "stat"); !ok || d != "Immediate" {
		t.Errorf("Display = %q, %v", d, ok)
	}
	if n := len(FMStatus.AllCodes()); n != 4 {
		t.Errorf("AllCodes = %d", n)
	}
	if got := EventTiming.Systems(); len(got) != 2 {
		t.Errorf("Systems = %v", got)
	}
}

func TestRegistry(t *testing.T) {
	r := Default()
	if r.Len() != len(Builtin()) {
		t.Errorf("Default() has %d value sets, want %d", r.Len(), len(Builtin()))
	}
	vs, ok := r.Get(FMStatus.URL + "|4.0.1")
	if !ok || vs != FMStatus {
		t.Error("versioned lookup should strip the version")
	}
	if err := NewRegistry().Add(&ValueSet{}); err == nil {
		t.Error("Add without URL should fail")
	}
}

func TestFromR4ValueSet(t *testing.T) {
	url := "http://example.org/ValueSet/composed"
	system := "http://example.org/CodeSystem/composed"
	code, display := "test-code", "Test Code"

	vs, err := FromR4ValueSet(&r4.ValueSet{
		Url: &url,
		Compose: &r4.ValueSetCompose{
			Include: []r4.ValueSetComposeInclude{
				{System: &system, Concept: []r4.ValueSetComposeIncludeConcept{{Code: &code, Display: &display}}},
				{System: strPtr(SystemSNOMED)},
			},
		},
	})
	if err != nil {
		t.Fatalf("FromR4ValueSet() error = %v", err)
	}
	if !vs.Contains(system, code) {
		t.Error("composed code missing")
	}
	if vs.Check(SystemSNOMED, "1") != Undetermined {
		t.Error("include without concepts should be whole-system")
	}

	if _, err := FromR4ValueSet(&r4.ValueSet{}); err == nil {
		t.Error("expected error for ValueSet without URL")
	}
}

func TestFromR4Expansion(t *testing.T) {
	url := "http://example.org/ValueSet/expanded"
	system := "http://example.org/CodeSystem/expanded"
	vs, err := FromR4ValueSet(&r4.ValueSet{
		Url: &url,
		Expansion: &r4.ValueSetExpansion{
			Contains: []r4.ValueSetExpansionContains{
				{System: &system, Code: strPtr("parent"), Contains: []r4.ValueSetExpansionContains{
					{System: &system, Code: strPtr("child")},
				}},
			},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !vs.Contains(system, "parent") || !vs.Contains(system, "child") {
		t.Error("nested expansion codes missing")
	}
}

func TestFromR4CodeSystem(t *testing.T) {
	url := "http://example.org/CodeSystem/custom"
	vs, err := FromR4CodeSystem(&r4.CodeSystem{
		Url: &url,
		Concept: []r4.CodeSystemConcept{
			{Code: strPtr("a"), Concept: []r4.CodeSystemConcept{{Code: strPtr("a1")}}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !vs.Contains(url, "a1") {
		t.Error("nested concept missing")
	}
}

func TestParseR4(t *testing.T) {
	data := []byte(`{"resourceType":"ValueSet","url":"http://example.org/vs","compose":{"include":[{"system":"http://example.org/cs","concept":[{"code":"x"}]}]}}`)
	r := NewRegistry()
	vs, err := r.Load(data)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !vs.Contains("http://example.org/cs", "x") {
		t.Error("parsed code missing")
	}
	if _, ok := r.Get("http://example.org/vs"); !ok {
		t.Error("loaded value set not registered")
	}

	if _, err := ParseR4([]byte(`{"resourceType":"Patient"}`)); err == nil {
		t.Error("expected error for unsupported resourceType")
	}
	if _, err := ParseR4([]byte(`{}`)); err == nil {
		t.Error("expected error for missing resourceType")
	}
}

func strPtr(s string) *string { return &s }
