package models

import (
	"github.com/gofhir/models/pkg/record"
	"github.com/gofhir/models/pkg/schema"
	"github.com/gofhir/models/pkg/tree"

	// Resource types are registered by their packages.
	_ "github.com/gofhir/models/pkg/resource/claim"
	_ "github.com/gofhir/models/pkg/resource/claimresponse"
	_ "github.com/gofhir/models/pkg/resource/medicationknowledge"
)

// FieldsOf returns the ordered field descriptors of a type, such as
// "Claim" or "Claim.item.detail". It fails with schema.ErrUnknownType for
// names that are not declared.
func FieldsOf(typeName string) ([]schema.Field, error) {
	return schema.Default().FieldsOf(typeName)
}

// ChoiceGroup returns the concrete JSON names of a choice field, for
// example servicedDate and servicedPeriod for Claim.item serviced.
func ChoiceGroup(typeName, logical string) ([]string, error) {
	return schema.Default().ChoiceGroup(typeName, logical)
}

// ResourceTypes returns the names of the registered resource types.
func ResourceTypes() []string {
	return schema.Default().Resources()
}

// NewResource allocates an empty resource of a registered type.
func NewResource(resourceType string) (record.Resource, error) {
	return record.New(resourceType)
}

// ParseJSON decodes a JSON resource into the record type named by its
// resourceType. Structural problems are returned as *record.FieldError
// values; data-quality problems are left to record.Validate.
func ParseJSON(data []byte, opts ...record.DecodeOption) (record.Resource, error) {
	obj, err := tree.ParseObject(data)
	if err != nil {
		return nil, &record.FieldError{Kind: record.ErrParse, Detail: err.Error()}
	}
	return record.Decode(obj, opts...)
}

// MarshalJSON encodes a record as JSON.
func MarshalJSON(c record.Composite) ([]byte, error) {
	return record.MarshalJSON(c)
}
