package claim

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gofhir/models/pkg/datatype"
	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/record"
	"github.com/gofhir/models/pkg/schema"
	"github.com/gofhir/models/pkg/terminology"
)

const minimalClaim = `{"resourceType":"Claim","status":"active",` +
	`"type":{"coding":[{"system":"http://terminology.hl7.org/CodeSystem/claim-type","code":"oral"}]},` +
	`"use":"claim","patient":{"reference":"Patient/1"},"created":"2014-08-16",` +
	`"provider":{"reference":"Organization/1"},` +
	`"priority":{"coding":[{"system":"http://terminology.hl7.org/CodeSystem/processpriority","code":"normal"}]},` +
	`"insurance":[{"sequence":1,"focal":true,"coverage":{"reference":"Coverage/9876B1"}}]}`

func minimal(t *testing.T) *Claim {
	t.Helper()
	c, err := Parse([]byte(minimalClaim))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return c
}

func TestMinimalClaim(t *testing.T) {
	c := minimal(t)
	if res := record.Validate(c); len(res.Issues) != 0 {
		t.Errorf("minimal claim has issues: %+v", res.Issues)
	}
	data, err := record.MarshalJSON(c)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != minimalClaim {
		t.Errorf("round trip:\n got %s\nwant %s", data, minimalClaim)
	}
}

func TestRequiredFields(t *testing.T) {
	res := record.Validate(&Claim{})
	var got []string
	for _, iss := range res.WithMessageID(issue.DiagMissingRequiredField) {
		got = append(got, iss.Expression...)
	}
	want := []string{
		"Claim.status", "Claim.type", "Claim.use", "Claim.patient", "Claim.created",
		"Claim.provider", "Claim.priority", "Claim.insurance",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("missing fields mismatch (-want +got):\n%s", diff)
	}
	for _, iss := range res.Issues {
		if iss.Severity != issue.SeverityError {
			t.Errorf("unexpected %s issue: %s", iss.Severity, iss.Diagnostics)
		}
	}
}

func TestCodeStrength(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Claim)
		wantID   issue.DiagnosticID
		severity issue.Severity
		path     string
	}{
		{
			name:     "required status",
			mutate:   func(c *Claim) { c.Status = datatype.NewCode("bogus") },
			wantID:   issue.DiagInvalidCode,
			severity: issue.SeverityError,
			path:     "Claim.status",
		},
		{
			name:     "required use",
			mutate:   func(c *Claim) { c.Use = datatype.NewCode("invoice") },
			wantID:   issue.DiagInvalidCode,
			severity: issue.SeverityError,
			path:     "Claim.use",
		},
		{
			name: "example priority",
			mutate: func(c *Claim) {
				c.Priority = datatype.NewCodeableConcept(terminology.SystemProcessPriority, "urgent", "")
			},
			wantID:   issue.DiagBindingAdvisory,
			severity: issue.SeverityInformation,
			path:     "Claim.priority",
		},
		{
			name: "extensible type",
			mutate: func(c *Claim) {
				c.Type = datatype.NewCodeableConcept(terminology.SystemClaimType, "dental", "")
			},
			wantID:   issue.DiagBindingExtensible,
			severity: issue.SeverityWarning,
			path:     "Claim.type",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := minimal(t)
			tt.mutate(c)
			res := record.Validate(c)
			if len(res.Issues) != 1 {
				t.Fatalf("got %d issues, want 1: %+v", len(res.Issues), res.Issues)
			}
			iss := res.Issues[0]
			if iss.MessageID != string(tt.wantID) || iss.Severity != tt.severity || iss.Expression[0] != tt.path {
				t.Errorf("got %s/%s at %v, want %s/%s at %s", iss.MessageID, iss.Severity, iss.Expression, tt.wantID, tt.severity, tt.path)
			}
		})
	}
}

func TestExtensibleFlagsOtherSystems(t *testing.T) {
	c := minimal(t)
	c.Type = datatype.NewCodeableConcept("http://example.org/local-claim-types", "dental", "")
	res := record.Validate(c)
	if res.HasErrors() {
		t.Errorf("errors = %+v", res.Issues)
	}
	got := res.WithMessageID(issue.DiagBindingExtensible)
	if len(got) != 1 || got[0].Severity != issue.SeverityWarning || got[0].Expression[0] != "Claim.type" {
		t.Errorf("issues = %+v, want one extensible warning at Claim.type", res.Issues)
	}
}

func TestItemsKeepOrder(t *testing.T) {
	c := minimal(t)
	for _, code := range []string{"1200", "1205", "2101"} {
		c.AddItem(datatype.NewCodeableConcept(terminology.SystemUSCLS, code, ""))
	}
	data, err := record.MarshalJSON(c)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(back.Item) != 3 {
		t.Fatalf("items = %d", len(back.Item))
	}
	for i, want := range []string{"1200", "1205", "2101"} {
		it := back.Item[i]
		if uint32(*it.Sequence) != uint32(i+1) || *it.ProductOrService.Coding[0].Code != datatype.Code(want) {
			t.Errorf("item[%d] = %d/%s", i, *it.Sequence, *it.ProductOrService.Coding[0].Code)
		}
	}
	if it, ok := back.ItemBySequence(2); !ok || *it.ProductOrService.Coding[0].Code != "1205" {
		t.Error("ItemBySequence(2) mismatch")
	}
	if !record.Equal(c, back) {
		t.Error("claim changed across the round trip")
	}
}

func TestServicedChoice(t *testing.T) {
	names, err := schema.Default().ChoiceGroup("Claim.item", "serviced")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"servicedDate", "servicedPeriod"}, names); diff != "" {
		t.Errorf("ChoiceGroup mismatch (-want +got):\n%s", diff)
	}

	it := &Item{}
	if err := record.Set(it, "servicedDate", datatype.NewDate("2024-03-01")); err != nil {
		t.Fatal(err)
	}
	period := &datatype.Period{Start: datatype.NewDateTime("2024-03-01"), End: datatype.NewDateTime("2024-03-05")}
	if err := record.Set(it, "servicedPeriod", period); err != nil {
		t.Fatal(err)
	}
	if _, ok := record.Get(it, "servicedDate"); ok {
		t.Error("servicedDate survived servicedPeriod")
	}
	if it.Serviced.Value != record.Value(period) {
		t.Errorf("serviced = %#v", it.Serviced.Value)
	}
}

func TestCardinality(t *testing.T) {
	c := &Claim{}
	if err := record.Set(c, "insurance", &Insurance{Sequence: datatype.NewPositiveInt(1)}); !errors.Is(err, record.ErrCardinality) {
		t.Errorf("single insurance: %v", err)
	}
	if err := record.Set(c, "patient", []datatype.Reference{*datatype.NewReference("Patient/1")}); !errors.Is(err, record.ErrCardinality) {
		t.Errorf("patient list: %v", err)
	}
	if err := record.Set(c, "insurance", []Insurance{{Sequence: datatype.NewPositiveInt(1)}}); err != nil {
		t.Errorf("insurance list: %v", err)
	}

	_, err := Parse([]byte(`{"resourceType":"Claim","insurance":{"sequence":1}}`))
	if !errors.Is(err, record.ErrCardinality) {
		t.Errorf("decode single insurance: %v", err)
	}

	res := record.Validate(&Claim{Insurance: []Insurance{}})
	if len(res.WithMessageID(issue.DiagMissingRequiredField)) != 8 {
		t.Errorf("empty insurance list should count as missing: %+v", res.Issues)
	}
}

func TestSubDetailPaths(t *testing.T) {
	src := `{"resourceType":"Claim","item":[{"sequence":1,"productOrService":{"text":"x"},"detail":[{"sequence":1,"productOrService":{"text":"y"},"subDetail":[{"sequence":0}]}]}]}`
	_, err := Parse([]byte(src))
	errs := record.FieldErrors(err)
	if len(errs) != 1 || errs[0].Path != "Claim.item[0].detail[0].subDetail[0].sequence" {
		t.Errorf("errors = %v", err)
	}
}
