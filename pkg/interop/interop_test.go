package interop

import (
	"errors"
	"testing"

	"github.com/gofhir/models/pkg/record"
	"github.com/gofhir/models/pkg/resource/claim"
	"github.com/gofhir/models/pkg/resource/claimresponse"
	"github.com/gofhir/models/pkg/resource/medicationknowledge"
)

// Decimals avoid trailing zeros: the R4 structs do not keep scale.
const claimJSON = `{"resourceType":"Claim","id":"100150",` +
	`"identifier":[{"system":"http://happyvalley.com/claim","value":"12345"}],` +
	`"status":"active","type":{"coding":[{"system":"http://terminology.hl7.org/CodeSystem/claim-type","code":"oral"}]},` +
	`"use":"claim","patient":{"reference":"Patient/1"},"created":"2014-08-16",` +
	`"provider":{"reference":"Organization/1"},` +
	`"priority":{"coding":[{"system":"http://terminology.hl7.org/CodeSystem/processpriority","code":"normal"}]},` +
	`"insurance":[{"sequence":1,"focal":true,"coverage":{"reference":"Coverage/9876B1"}}],` +
	`"item":[{"sequence":1,"productOrService":{"coding":[{"system":"http://terminology.hl7.org/CodeSystem/ex-USCLS","code":"1200"}]},` +
	`"servicedDate":"2014-08-16","unitPrice":{"value":135.57,"currency":"USD"},"net":{"value":135.57,"currency":"USD"}}]}`

const responseJSON = `{"resourceType":"ClaimResponse","id":"R3500","status":"active",` +
	`"type":{"coding":[{"system":"http://terminology.hl7.org/CodeSystem/claim-type","code":"oral"}]},` +
	`"use":"claim","patient":{"reference":"Patient/1"},"created":"2014-08-16",` +
	`"insurer":{"reference":"Organization/2"},"outcome":"complete",` +
	`"item":[{"itemSequence":1,"adjudication":[{"category":{"coding":[{"system":"http://terminology.hl7.org/CodeSystem/adjudication","code":"eligible"}]},` +
	`"amount":{"value":135.57,"currency":"USD"}}]}]}`

const knowledgeJSON = `{"resourceType":"MedicationKnowledge","id":"example",` +
	`"code":{"coding":[{"system":"http://snomed.info/sct","code":"123456"}]},"status":"active",` +
	`"amount":{"value":50,"unit":"mg"},"synonym":["Vancomycin Powder"],` +
	`"ingredient":[{"itemCodeableConcept":{"text":"vancomycin"},"isActive":true}]}`

func TestClaimRoundTrip(t *testing.T) {
	c, err := claim.Parse([]byte(claimJSON))
	if err != nil {
		t.Fatal(err)
	}
	rc, err := ToR4Claim(c)
	if err != nil {
		t.Fatalf("ToR4Claim: %v", err)
	}
	back, err := FromR4Claim(rc)
	if err != nil {
		t.Fatalf("FromR4Claim: %v", err)
	}
	if !record.Equal(c, back) {
		got, _ := record.MarshalJSON(back)
		t.Errorf("claim changed:\n got %s\nwant %s", got, claimJSON)
	}
}

func TestDispatch(t *testing.T) {
	cr, err := claimresponse.Parse([]byte(responseJSON))
	if err != nil {
		t.Fatal(err)
	}
	mk, err := medicationknowledge.Parse([]byte(knowledgeJSON))
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range []record.Resource{cr, mk} {
		t.Run(r.ResourceType(), func(t *testing.T) {
			v, err := ToR4(r)
			if err != nil {
				t.Fatalf("ToR4: %v", err)
			}
			back, err := FromR4(v)
			if err != nil {
				t.Fatalf("FromR4: %v", err)
			}
			if back.ResourceType() != r.ResourceType() {
				t.Fatalf("resourceType = %s", back.ResourceType())
			}
			if !record.Equal(r, back) {
				got, _ := record.MarshalJSON(back)
				t.Errorf("record changed: %s", got)
			}
		})
	}
}

func TestUnsupported(t *testing.T) {
	if _, err := FromR4(struct{}{}); !errors.Is(err, ErrUnsupported) {
		t.Errorf("err = %v, want ErrUnsupported", err)
	}
}
