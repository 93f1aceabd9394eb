package claimresponse

import (
	"testing"

	"github.com/gofhir/models/pkg/datatype"
	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/record"
	"github.com/gofhir/models/pkg/schema"
)

const responseJSON = `{"resourceType":"ClaimResponse","id":"R3500",` +
	`"identifier":[{"system":"http://www.BenefitsInc.com/fhir/remittance","value":"R3500"}],` +
	`"status":"active","type":{"coding":[{"system":"http://terminology.hl7.org/CodeSystem/claim-type","code":"oral"}]},` +
	`"use":"claim","patient":{"reference":"Patient/1"},"created":"2014-08-16",` +
	`"insurer":{"identifier":{"system":"http://www.jurisdiction.org/insurers","value":"555123"}},` +
	`"requestor":{"reference":"Organization/1"},"request":{"reference":"http://www.BenefitsInc.com/fhir/oralhealthclaim/15476332402"},` +
	`"outcome":"complete","disposition":"Claim settled as per contract.",` +
	`"payeeType":{"coding":[{"system":"http://terminology.hl7.org/CodeSystem/payeetype","code":"provider"}]},` +
	`"item":[{"itemSequence":1,"adjudication":[` +
	`{"category":{"coding":[{"system":"http://terminology.hl7.org/CodeSystem/adjudication","code":"eligible"}]},"amount":{"value":135.57,"currency":"USD"}},` +
	`{"category":{"coding":[{"system":"http://terminology.hl7.org/CodeSystem/adjudication","code":"copay"}]},"amount":{"value":10.00,"currency":"USD"}},` +
	`{"category":{"coding":[{"system":"http://terminology.hl7.org/CodeSystem/adjudication","code":"eligpercent"}]},"value":80.00},` +
	`{"category":{"coding":[{"system":"http://terminology.hl7.org/CodeSystem/adjudication","code":"benefit"}]},"amount":{"value":90.47,"currency":"USD"}}]}],` +
	`"total":[{"category":{"coding":[{"system":"http://terminology.hl7.org/CodeSystem/adjudication","code":"submitted"}]},"amount":{"value":135.57,"currency":"USD"}},` +
	`{"category":{"coding":[{"system":"http://terminology.hl7.org/CodeSystem/adjudication","code":"benefit"}]},"amount":{"value":90.47,"currency":"USD"}}],` +
	`"payment":{"type":{"coding":[{"system":"http://terminology.hl7.org/CodeSystem/ex-paymenttype","code":"complete"}]},` +
	`"date":"2014-08-31","amount":{"value":100.47,"currency":"USD"},"identifier":{"system":"http://www.BenefitsInc.com/fhir/paymentidentifier","value":"201408-2-1569478"}},` +
	`"processNote":[{"number":1,"type":"display","text":"Claim settled as per contract."}]}`

func TestRoundTripAndValidate(t *testing.T) {
	cr, err := Parse([]byte(responseJSON))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	data, err := record.MarshalJSON(cr)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != responseJSON {
		t.Errorf("round trip:\n got %s\nwant %s", data, responseJSON)
	}
	if res := record.Validate(cr); len(res.Issues) != 0 {
		t.Errorf("issues = %+v", res.Issues)
	}
	if got := cr.Item[0].Adjudication[2].Value.String(); got != "80.00" {
		t.Errorf("eligpercent = %s, want 80.00", got)
	}
}

func TestTotalFor(t *testing.T) {
	cr, err := Parse([]byte(responseJSON))
	if err != nil {
		t.Fatal(err)
	}
	m, ok := cr.TotalFor("benefit")
	if !ok || m.Value.String() != "90.47" || *m.Currency != "USD" {
		t.Errorf("TotalFor(benefit) = %+v, %v", m, ok)
	}
	if _, ok := cr.TotalFor("tax"); ok {
		t.Error("TotalFor(tax) should be absent")
	}
}

func TestValidationFindings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ClaimResponse)
		wantID issue.DiagnosticID
		path   string
	}{
		{
			name:   "outcome outside required set",
			mutate: func(c *ClaimResponse) { c.Outcome = datatype.NewCode("approved") },
			wantID: issue.DiagInvalidCode,
			path:   "ClaimResponse.outcome",
		},
		{
			name:   "item without adjudication",
			mutate: func(c *ClaimResponse) { c.Item[0].Adjudication = nil },
			wantID: issue.DiagMissingRequiredField,
			path:   "ClaimResponse.item[0].adjudication",
		},
		{
			name:   "unknown currency",
			mutate: func(c *ClaimResponse) { c.Payment.Amount.Currency = datatype.NewCode("ABC") },
			wantID: issue.DiagInvalidCode,
			path:   "ClaimResponse.payment.amount.currency",
		},
		{
			name:   "process note type",
			mutate: func(c *ClaimResponse) { c.ProcessNote[0].Type = datatype.NewCode("email") },
			wantID: issue.DiagInvalidCode,
			path:   "ClaimResponse.processNote[0].type",
		},
		{
			name:   "total without amount",
			mutate: func(c *ClaimResponse) { c.Total[1].Amount = nil },
			wantID: issue.DiagMissingRequiredField,
			path:   "ClaimResponse.total[1].amount",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cr, err := Parse([]byte(responseJSON))
			if err != nil {
				t.Fatal(err)
			}
			tt.mutate(cr)
			res := record.Validate(cr)
			if len(res.Issues) != 1 {
				t.Fatalf("got %d issues: %+v", len(res.Issues), res.Issues)
			}
			if res.Issues[0].MessageID != string(tt.wantID) || res.Issues[0].Expression[0] != tt.path {
				t.Errorf("got %s at %v, want %s at %s", res.Issues[0].MessageID, res.Issues[0].Expression, tt.wantID, tt.path)
			}
		})
	}
}

func TestAdjudicationSharedAcrossLevels(t *testing.T) {
	for _, typeName := range []string{
		"ClaimResponse.item", "ClaimResponse.item.detail", "ClaimResponse.item.detail.subDetail",
		"ClaimResponse.addItem", "ClaimResponse.addItem.detail", "ClaimResponse.addItem.detail.subDetail",
	} {
		typ, err := schema.Default().Lookup(typeName)
		if err != nil {
			t.Fatalf("Lookup(%s): %v", typeName, err)
		}
		f, ok := typ.Field("adjudication")
		if !ok || f.Type != "ClaimResponse.item.adjudication" {
			t.Errorf("%s.adjudication = %+v", typeName, f)
		}
	}
	top, _ := schema.Default().Lookup(ResourceType)
	if f, _ := top.Field("adjudication"); f.Required() {
		t.Error("header adjudication should be optional")
	}
}

func TestAddItemTree(t *testing.T) {
	cr := &ClaimResponse{}
	cr.AddItem = []AddItem{{
		ItemSequence:     []datatype.PositiveInt{1},
		ProductOrService: datatype.TextConcept("expense"),
		Serviced:         record.Choice{Value: datatype.NewDate("2014-08-16")},
		Adjudication:     []Adjudication{NewAdjudication("benefit", "12.00", "USD")},
		Detail: []AddItemDetail{{
			ProductOrService: datatype.TextConcept("part"),
			Adjudication:     []Adjudication{NewAdjudication("benefit", "12.00", "USD")},
		}},
	}}
	obj := record.ToTree(cr)
	back := &ClaimResponse{}
	if err := record.FromTree(obj, back); err != nil {
		t.Fatal(err)
	}
	if !record.Equal(cr, back) {
		t.Error("addItem did not round-trip")
	}
	if v, ok := record.Get(&back.AddItem[0], "servicedDate"); !ok || *v.(*datatype.Date) != "2014-08-16" {
		t.Errorf("servicedDate = %v, %v", v, ok)
	}
}
