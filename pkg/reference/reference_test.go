package reference

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/resource/claim"
	"github.com/gofhir/models/pkg/tree"
)

func TestValidFormat(t *testing.T) {
	tests := []struct {
		ref  string
		want bool
	}{
		{"Patient/123", true},
		{"Patient/123/_history/2", true},
		{"http://example.org/fhir/Organization/abc", true},
		{"https://example.org/fhir/Coverage/9876B1/_history/1", true},
		{"#prov", true},
		{"#", true},
		{"urn:uuid:3fa85f64-5717-4562-b3fc-2c963f66afa6", true},
		{"urn:oid:1.2.36.146.595.217.0.1", true},
		{"Patient", false},
		{"patient/123", false},
		{"Patient/", false},
		{"Patient/12 3", false},
		{"urn:oid:1.02", false},
		{"urn:oid:2.0", true},
		{"urn:oid:1..2", false},
		{"#bad id", false},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			if got := ValidFormat(tt.ref); got != tt.want {
				t.Errorf("ValidFormat(%q) = %t, want %t", tt.ref, got, tt.want)
			}
		})
	}
}

func TestTargetType(t *testing.T) {
	tests := map[string]string{
		"Patient/123":                                   "Patient",
		"Patient/123/_history/2":                        "Patient",
		"http://example.org/fhir/Organization/abc":      "Organization",
		"http://example.org/fhir/Coverage/9/_history/1": "Coverage",
		"#prov":                                         "",
		"urn:uuid:3fa85f64-5717-4562-b3fc-2c963f66afa6": "",
	}
	for ref, want := range tests {
		if got := TargetType(ref); got != want {
			t.Errorf("TargetType(%q) = %q, want %q", ref, got, want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantIDs []string
		wantAt  []string
	}{
		{
			name: "valid references",
			doc: `{"resourceType":"Claim","contained":[{"resourceType":"Organization","id":"org"}],` +
				`"patient":{"reference":"Patient/1","type":"Patient"},"provider":{"reference":"#org"},` +
				`"insurer":{"display":"Happy Insurance"},` +
				`"insurance":[{"sequence":1,"focal":true,"coverage":{"reference":"urn:uuid:3fa85f64-5717-4562-b3fc-2c963f66afa6"}}]}`,
		},
		{
			name: "oid with a zero arc",
			doc:  `{"resourceType":"Claim","patient":{"reference":"urn:oid:1.2.36.146.595.217.0.1"}}`,
		},
		{
			name:    "malformed reference",
			doc:     `{"resourceType":"Claim","patient":{"reference":"patient 1"}}`,
			wantIDs: []string{string(issue.DiagReferenceInvalidFormat)},
			wantAt:  []string{"Claim.patient.reference"},
		},
		{
			name:    "type disagrees with reference",
			doc:     `{"resourceType":"Claim","patient":{"reference":"Patient/1","type":"Group"}}`,
			wantIDs: []string{string(issue.DiagReferenceTypeMismatch)},
			wantAt:  []string{"Claim.patient"},
		},
		{
			name:    "local reference without contained resource",
			doc:     `{"resourceType":"Claim","provider":{"reference":"#org"}}`,
			wantIDs: []string{string(issue.DiagReferenceNotContained)},
			wantAt:  []string{"Claim.provider.reference"},
		},
		{
			name: "nested backbone reference",
			doc: `{"resourceType":"Claim","insurance":[{"sequence":1,"focal":true,"coverage":{"reference":"Coverage/1"}},` +
				`{"sequence":2,"focal":false,"coverage":{"reference":"Coverage"}}]}`,
			wantIDs: []string{string(issue.DiagReferenceInvalidFormat)},
			wantAt:  []string{"Claim.insurance[1].coverage.reference"},
		},
	}
	v := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj, err := tree.ParseObject([]byte(tt.doc))
			if err != nil {
				t.Fatalf("ParseObject: %v", err)
			}
			result := issue.NewResult()
			v.Validate(obj, "Claim", result)

			var ids, at []string
			for _, iss := range result.Issues {
				ids = append(ids, iss.MessageID)
				at = append(at, iss.Expression...)
			}
			if diff := cmp.Diff(tt.wantIDs, ids); diff != "" {
				t.Errorf("message IDs (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantAt, at); diff != "" {
				t.Errorf("expressions (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateRecord(t *testing.T) {
	c, err := claim.Parse([]byte(`{"resourceType":"Claim","patient":{"reference":"Patient/1","type":"Practitioner"}}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	result := issue.NewResult()
	New(nil).ValidateRecord(c, result)
	if got := result.WithMessageID(issue.DiagReferenceTypeMismatch); len(got) != 1 {
		t.Errorf("issues = %+v, want one type mismatch", result.Issues)
	}
}
