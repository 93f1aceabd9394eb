package terminology

import "context"

// Provider allows external terminology validation for value sets whose
// systems cannot be enumerated locally (SNOMED CT, LOINC, ICD-10, BCP-47...).
//
// The model never calls a terminology server on its own; a Provider is only
// consulted when one is configured on the binding checker.
type Provider interface {
	// ValidateCode checks if a code is valid in a given code system.
	ValidateCode(ctx context.Context, system, code string) (bool, error)

	// ValidateCodeInValueSet checks if a code is a member of a ValueSet.
	// If found is false the provider does not know the ValueSet and the
	// caller falls back to ValidateCode for coded values with a system.
	ValidateCodeInValueSet(ctx context.Context, system, code, valueSetURL string) (valid bool, found bool, err error)
}

// Resolve answers membership for a code, asking the provider only when the
// local answer is Undetermined. A nil provider leaves it Undetermined.
func Resolve(ctx context.Context, p Provider, vs *ValueSet, c Code) (Membership, error) {
	m := vs.Check(c.System, c.Code)
	if m != Undetermined || p == nil {
		return m, nil
	}
	valid, found, err := p.ValidateCodeInValueSet(ctx, c.System, c.Code, vs.URL)
	if err != nil {
		return Undetermined, err
	}
	if !found {
		if c.System == "" {
			return Undetermined, nil
		}
		valid, err = p.ValidateCode(ctx, c.System, c.Code)
		if err != nil {
			return Undetermined, err
		}
	}
	if valid {
		return Member, nil
	}
	return NotMember, nil
}
