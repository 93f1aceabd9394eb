package medicationknowledge

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gofhir/models/pkg/datatype"
	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/record"
	"github.com/gofhir/models/pkg/schema"
	"github.com/gofhir/models/pkg/terminology"
)

const vancomycin = `{"resourceType":"MedicationKnowledge","id":"example",` +
	`"contained":[{"resourceType":"Organization","id":"org4","name":"Pfizer Laboratories Div Pfizer Inc"}],` +
	`"code":{"coding":[{"system":"http://snomed.info/sct","code":"123456","display":"Vancomycin Hydrochloride"}]},` +
	`"status":"active","manufacturer":{"reference":"#org4"},` +
	`"doseForm":{"coding":[{"system":"http://snomed.info/sct","code":"385219001","display":"Injection Solution"}]},` +
	`"amount":{"value":50,"unit":"mg","system":"http://unitsofmeasure.org","code":"mg"},` +
	`"synonym":["Vancomycin Powder, for Solution"],` +
	`"ingredient":[{"itemCodeableConcept":{"text":"vancomycin hydrochloride"},"isActive":true,` +
	`"strength":{"numerator":{"value":500,"unit":"mg"},"denominator":{"value":1,"unit":"vial"}}}],` +
	`"cost":[{"type":{"text":"wholesale"},"source":"Red Book","cost":{"value":12.50,"currency":"USD"}}],` +
	`"administrationGuidelines":[{"dosage":[{"type":{"text":"adult"},"dosage":[{"text":"500 mg IV every 6 hours",` +
	`"timing":{"repeat":{"frequency":1,"period":6,"periodUnit":"h"}},` +
	`"route":{"coding":[{"system":"http://snomed.info/sct","code":"47625008"}]}}]}],` +
	`"indicationCodeableConcept":{"text":"Serious infections"},` +
	`"patientCharacteristics":[{"characteristicQuantity":{"value":18,"unit":"a"},"value":["adult"]}]}],` +
	`"packaging":{"type":{"text":"vial"},"quantity":{"value":1,"unit":"vial"}},` +
	`"drugCharacteristic":[{"type":{"coding":[{"system":"http://terminology.hl7.org/CodeSystem/medicationknowledge-characteristic","code":"color"}]},"valueString":"white"}],` +
	`"regulatory":[{"regulatoryAuthority":{"reference":"Organization/fda"},` +
	`"substitution":[{"type":{"text":"generic"},"allowed":true}],` +
	`"maxDispense":{"quantity":{"value":4,"unit":"vial"},"period":{"value":1,"unit":"d","system":"http://unitsofmeasure.org","code":"d"}}}],` +
	`"kinetics":[{"halfLifePeriod":{"value":6,"unit":"h","system":"http://unitsofmeasure.org","code":"h"}}]}`

func TestRoundTrip(t *testing.T) {
	mk, err := Parse([]byte(vancomycin))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	data, err := record.MarshalJSON(mk)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(vancomycin, string(data)); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
	if got := mk.Contained[0].ResourceType(); got != "Organization" {
		t.Errorf("contained resourceType = %q", got)
	}
}

// SNOMED CT value sets cannot be enumerated locally.
func TestSnomedBindingsNeedProvider(t *testing.T) {
	mk, err := Parse([]byte(vancomycin))
	if err != nil {
		t.Fatal(err)
	}
	res := record.Validate(mk)
	if res.ErrorCount() != 0 || res.WarningCount() != 0 {
		t.Fatalf("unexpected errors or warnings: %+v", res.Issues)
	}
	var paths []string
	for _, iss := range res.WithMessageID(issue.DiagBindingCannotValidate) {
		paths = append(paths, iss.Expression[0])
	}
	want := []string{
		"MedicationKnowledge.code",
		"MedicationKnowledge.doseForm",
		"MedicationKnowledge.administrationGuidelines[0].dosage[0].dosage[0].route",
	}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Errorf("undetermined bindings (-want +got):\n%s", diff)
	}

	res = record.Validate(mk, record.WithProvider(snomedProvider{}))
	if len(res.Issues) != 0 {
		t.Errorf("with provider: %+v", res.Issues)
	}
}

type snomedProvider struct{}

func (snomedProvider) ValidateCode(_ context.Context, system, _ string) (bool, error) {
	return system == terminology.SystemSNOMED, nil
}

func (snomedProvider) ValidateCodeInValueSet(context.Context, string, string, string) (bool, bool, error) {
	return false, false, nil
}

func TestValidationFindings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*MedicationKnowledge)
		wantID issue.DiagnosticID
		path   string
	}{
		{
			name:   "status outside required set",
			mutate: func(m *MedicationKnowledge) { m.Status = datatype.NewCode("retired") },
			wantID: issue.DiagInvalidCode,
			path:   "MedicationKnowledge.status",
		},
		{
			name:   "ingredient without item",
			mutate: func(m *MedicationKnowledge) { m.Ingredient[0].Item = record.Choice{} },
			wantID: issue.DiagMissingRequiredField,
			path:   "MedicationKnowledge.ingredient[0].item[x]",
		},
		{
			name:   "guideline dosage without dosage",
			mutate: func(m *MedicationKnowledge) { m.AdministrationGuidelines[0].Dosage[0].Dosage = nil },
			wantID: issue.DiagMissingRequiredField,
			path:   "MedicationKnowledge.administrationGuidelines[0].dosage[0].dosage",
		},
		{
			name:   "substitution without allowed",
			mutate: func(m *MedicationKnowledge) { m.Regulatory[0].Substitution[0].Allowed = nil },
			wantID: issue.DiagMissingRequiredField,
			path:   "MedicationKnowledge.regulatory[0].substitution[0].allowed",
		},
		{
			name:   "period unit outside units of time",
			mutate: func(m *MedicationKnowledge) {
				m.AdministrationGuidelines[0].Dosage[0].Dosage[0].Timing.Repeat.PeriodUnit = datatype.NewCode("hr")
			},
			wantID: issue.DiagInvalidCode,
			path:   "MedicationKnowledge.administrationGuidelines[0].dosage[0].dosage[0].timing.repeat.periodUnit",
		},
		{
			name:   "characteristic holding undeclared type",
			mutate: func(m *MedicationKnowledge) { m.DrugCharacteristic[0].Value = record.Choice{Value: datatype.NewBoolean(true)} },
			wantID: issue.DiagInvalidChoiceType,
			path:   "MedicationKnowledge.drugCharacteristic[0].valueBoolean",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mk, err := Parse([]byte(vancomycin))
			if err != nil {
				t.Fatal(err)
			}
			tt.mutate(mk)
			got := record.Validate(mk, record.WithProvider(snomedProvider{}))
			if len(got.Issues) != 1 {
				t.Fatalf("got %d issues: %+v", len(got.Issues), got.Issues)
			}
			if iss := got.Issues[0]; iss.MessageID != string(tt.wantID) || iss.Expression[0] != tt.path {
				t.Errorf("got %s at %v, want %s at %s", iss.MessageID, iss.Expression, tt.wantID, tt.path)
			}
		})
	}
}

func TestHelpers(t *testing.T) {
	mk, err := Parse([]byte(vancomycin))
	if err != nil {
		t.Fatal(err)
	}
	if got := mk.ActiveIngredients(); len(got) != 1 || got[0].Item.Type() != "CodeableConcept" {
		t.Errorf("ActiveIngredients = %+v", got)
	}
	v, ok := mk.Characteristic("color")
	if s, isString := v.(*datatype.String); !ok || !isString || *s != "white" {
		t.Errorf("Characteristic(color) = %v, %v", v, ok)
	}
	if _, ok := mk.Characteristic("shape"); ok {
		t.Error("Characteristic(shape) should be absent")
	}
	allowed, known := mk.Regulatory[0].SubstitutionAllowed("", "generic")
	if known {
		t.Errorf("text-only substitution type should not match a code, got allowed=%v", allowed)
	}
}

func TestChoiceGroups(t *testing.T) {
	tests := []struct {
		typeName, logical string
		want              []string
	}{
		{"MedicationKnowledge.ingredient", "item", []string{"itemCodeableConcept", "itemReference"}},
		{"MedicationKnowledge.administrationGuidelines", "indication", []string{"indicationCodeableConcept", "indicationReference"}},
		{"MedicationKnowledge.administrationGuidelines.patientCharacteristics", "characteristic",
			[]string{"characteristicCodeableConcept", "characteristicQuantity"}},
		{"MedicationKnowledge.drugCharacteristic", "value",
			[]string{"valueCodeableConcept", "valueString", "valueQuantity", "valueBase64Binary"}},
	}
	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			got, err := schema.Default().ChoiceGroup(tt.typeName, tt.logical)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ChoiceGroup (-want +got):\n%s", diff)
			}
		})
	}
}

func TestChoiceSetReplaces(t *testing.T) {
	dc := &DrugCharacteristic{}
	if err := record.Set(dc, "valueString", datatype.NewString("round")); err != nil {
		t.Fatal(err)
	}
	if err := record.Set(dc, "valueQuantity", datatype.NewQuantity("10", "mm")); err != nil {
		t.Fatal(err)
	}
	if record.Has(dc, "valueString") {
		t.Error("valueString should have been replaced")
	}
	obj := record.ToTree(dc)
	if diff := cmp.Diff([]string{"valueQuantity"}, obj.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
}
