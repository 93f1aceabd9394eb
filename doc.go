// Package models is a typed binding of three FHIR R4 resources: Claim,
// ClaimResponse and MedicationKnowledge, together with their backbone
// elements and the shared datatypes they use.
//
// # Quick Start
//
//	import "github.com/gofhir/models"
//
//	r, err := models.ParseJSON(data)
//	if err != nil {
//	    log.Fatal(err) // structural problems: unknown fields, bad primitives
//	}
//	result := record.Validate(r)
//	for _, iss := range result.Issues {
//	    fmt.Println(iss.Severity, iss.Expression, iss.Diagnostics)
//	}
//
// # Field Tables
//
// Every type registers a field table at package initialisation. The table
// lists each field's JSON name, kind, cardinality, value set binding and
// choice alternatives, and drives decoding, encoding and validation:
//
//	fields, _ := models.FieldsOf("Claim.item")
//	names, _ := models.ChoiceGroup("Claim.item", "serviced")
//	// names == [servicedDate servicedPeriod]
//
// # Packages
//
//   - pkg/schema: the type registry
//   - pkg/record: Get, Set, ToTree, FromTree, Validate, Equal, Hash
//   - pkg/datatype: R4 primitives and complex datatypes
//   - pkg/resource/...: Claim, ClaimResponse and MedicationKnowledge
//   - pkg/terminology and pkg/binding: value sets and binding strength
//   - pkg/constraint: FHIRPath invariants
//   - pkg/validator: decode, validate and check invariants in one call
//   - pkg/xmlfmt and pkg/interop: FHIR XML and gofhir/fhir/r4 structs
package models
