// Package binding enforces code bindings. The same three-tier policy,
// keyed by the declared strength, applies to every coded field:
// required rejects, extensible warns, preferred and example only inform.
package binding

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/schema"
	"github.com/gofhir/models/pkg/terminology"
)

// Checker checks coded values against their bound value sets.
type Checker struct {
	provider terminology.Provider
}

// New creates a Checker. The provider may be nil, in which case value sets
// that cannot be enumerated locally produce an informational issue.
func New(provider terminology.Provider) *Checker {
	return &Checker{provider: provider}
}

// Check applies the binding to the codes found in one field value.
// textOnly marks a CodeableConcept carrying text but no coded value.
func (c *Checker) Check(ctx context.Context, codes []terminology.Code, textOnly bool, b *schema.Binding, fhirPath string, result *issue.Result) {
	if b == nil || b.ValueSet == nil {
		return
	}
	vsURL := b.URL()

	if len(codes) == 0 {
		if !textOnly {
			return
		}
		switch b.Strength {
		case schema.StrengthRequired:
			result.AddErrorWithID(issue.DiagBindingTextOnly, map[string]any{"valueSet": vsURL}, fhirPath)
		case schema.StrengthExtensible:
			result.AddWarningWithID(issue.DiagBindingTextOnlyWarning, map[string]any{"valueSet": vsURL}, fhirPath)
		}
		return
	}

	var (
		undetermined []terminology.Code
		rejected     []terminology.Code
	)
	for _, code := range codes {
		if code.Code == "" {
			continue
		}
		m, err := terminology.Resolve(ctx, c.provider, b.ValueSet, code)
		if err != nil {
			result.AddWarningWithID(issue.DiagBindingProviderError, map[string]any{
				"code":     display(code),
				"valueSet": vsURL,
				"error":    err,
			}, fhirPath)
		}
		switch m {
		case terminology.Member:
			// One member is enough for a CodeableConcept.
			return
		case terminology.Undetermined:
			undetermined = append(undetermined, code)
		default:
			rejected = append(rejected, code)
		}
	}

	if len(undetermined) > 0 {
		result.AddInfoWithID(issue.DiagBindingCannotValidate, map[string]any{
			"code":     join(undetermined),
			"valueSet": vsURL,
		}, fhirPath)
		return
	}
	if len(rejected) == 0 {
		return
	}
	c.report(rejected, b, vsURL, fhirPath, result)
}

// report emits the strength-specific issue for codes outside the value set.
func (c *Checker) report(codes []terminology.Code, b *schema.Binding, vsURL, fhirPath string, result *issue.Result) {
	params := map[string]any{"code": join(codes), "valueSet": vsURL}

	switch b.Strength {
	case schema.StrengthRequired:
		result.AddErrorWithID(issue.DiagInvalidCode, params, fhirPath)
	case schema.StrengthExtensible:
		result.AddWarningWithID(issue.DiagBindingExtensible, params, fhirPath)
	case schema.StrengthPreferred, schema.StrengthExample:
		params["strength"] = string(b.Strength)
		result.AddInfoWithID(issue.DiagBindingAdvisory, params, fhirPath)
	}
}

func display(c terminology.Code) string {
	if c.System == "" {
		return c.Code
	}
	return fmt.Sprintf("%s#%s", c.System, c.Code)
}

func join(codes []terminology.Code) string {
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = display(c)
	}
	return strings.Join(parts, ", ")
}
