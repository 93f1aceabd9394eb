// Package interop converts records to and from the generated R4 structs of
// github.com/gofhir/fhir/r4. Both sides share the FHIR JSON representation,
// which is the bridge: no field is copied by hand.
//
// The R4 structs carry decimals as binary floating point, so a decimal's
// scale ("100.00") is not guaranteed to survive a trip through them.
package interop

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/gofhir/fhir/r4"

	"github.com/gofhir/models/pkg/record"
	"github.com/gofhir/models/pkg/resource/claim"
	"github.com/gofhir/models/pkg/resource/claimresponse"
	"github.com/gofhir/models/pkg/resource/medicationknowledge"
	"github.com/gofhir/models/pkg/tree"
)

// ErrUnsupported is returned for resource types without an R4 counterpart
// in this package.
var ErrUnsupported = errors.New("unsupported resource type")

// ToR4Claim converts a Claim.
func ToR4Claim(c *claim.Claim) (*r4.Claim, error) {
	return toR4[r4.Claim](c)
}

// FromR4Claim converts an R4 Claim.
func FromR4Claim(v *r4.Claim) (*claim.Claim, error) {
	return fromR4(v, claim.ResourceType, &claim.Claim{})
}

// ToR4ClaimResponse converts a ClaimResponse.
func ToR4ClaimResponse(c *claimresponse.ClaimResponse) (*r4.ClaimResponse, error) {
	return toR4[r4.ClaimResponse](c)
}

// FromR4ClaimResponse converts an R4 ClaimResponse.
func FromR4ClaimResponse(v *r4.ClaimResponse) (*claimresponse.ClaimResponse, error) {
	return fromR4(v, claimresponse.ResourceType, &claimresponse.ClaimResponse{})
}

// ToR4MedicationKnowledge converts a MedicationKnowledge.
func ToR4MedicationKnowledge(m *medicationknowledge.MedicationKnowledge) (*r4.MedicationKnowledge, error) {
	return toR4[r4.MedicationKnowledge](m)
}

// FromR4MedicationKnowledge converts an R4 MedicationKnowledge.
func FromR4MedicationKnowledge(v *r4.MedicationKnowledge) (*medicationknowledge.MedicationKnowledge, error) {
	return fromR4(v, medicationknowledge.ResourceType, &medicationknowledge.MedicationKnowledge{})
}

// ToR4 converts any supported record to its R4 struct.
func ToR4(r record.Resource) (any, error) {
	switch x := r.(type) {
	case *claim.Claim:
		return ToR4Claim(x)
	case *claimresponse.ClaimResponse:
		return ToR4ClaimResponse(x)
	case *medicationknowledge.MedicationKnowledge:
		return ToR4MedicationKnowledge(x)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, r.ResourceType())
	}
}

// FromR4 converts a supported R4 struct to a record.
func FromR4(v any) (record.Resource, error) {
	switch x := v.(type) {
	case *r4.Claim:
		return FromR4Claim(x)
	case *r4.ClaimResponse:
		return FromR4ClaimResponse(x)
	case *r4.MedicationKnowledge:
		return FromR4MedicationKnowledge(x)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}

func toR4[T any](c record.Composite) (*T, error) {
	data, err := record.MarshalJSON(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", c.FHIRType(), err)
	}
	out := new(T)
	if err := json.Unmarshal(data, out); err != nil {
		return nil, fmt.Errorf("failed to decode r4.%s: %w", c.FHIRType(), err)
	}
	return out, nil
}

// fromR4 decodes the JSON of an R4 struct into dst. Keys the record does
// not declare are kept as extension data rather than rejected.
func fromR4[R record.Resource](v any, resourceType string, dst R) (R, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return dst, fmt.Errorf("failed to encode r4.%s: %w", resourceType, err)
	}
	obj, err := tree.ParseObject(data)
	if err != nil {
		return dst, fmt.Errorf("failed to parse r4.%s: %w", resourceType, err)
	}
	if _, ok := obj.Get("resourceType"); !ok {
		obj.Set("resourceType", resourceType)
	}
	if err := record.FromTree(obj, dst, record.Unknown(record.PreserveUnknown)); err != nil {
		return dst, err
	}
	return dst, nil
}
