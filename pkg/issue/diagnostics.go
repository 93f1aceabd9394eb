package issue

import (
	"fmt"
	"strings"
)

// DiagnosticID identifies a specific diagnostic message.
type DiagnosticID string

// Diagnostic IDs for record structure.
const (
	DiagMissingRequiredField DiagnosticID = "MISSING_REQUIRED_FIELD"
	DiagEmptyList            DiagnosticID = "EMPTY_LIST"
	DiagInvalidChoiceType    DiagnosticID = "INVALID_CHOICE_TYPE"
	DiagUnknownElement       DiagnosticID = "UNKNOWN_ELEMENT"
	DiagUnknownResource      DiagnosticID = "UNKNOWN_RESOURCE"
	DiagStructureInvalidJSON DiagnosticID = "STRUCTURE_INVALID_JSON"
	DiagStructureDecode      DiagnosticID = "STRUCTURE_DECODE"
)

// Diagnostic IDs for primitive values.
const (
	DiagTypeInvalidFormat DiagnosticID = "TYPE_INVALID_FORMAT"
)

// Diagnostic IDs for code bindings.
const (
	DiagInvalidCode             DiagnosticID = "INVALID_CODE"
	DiagBindingTextOnly         DiagnosticID = "BINDING_TEXT_ONLY"
	DiagBindingExtensible       DiagnosticID = "BINDING_EXTENSIBLE"
	DiagBindingTextOnlyWarning  DiagnosticID = "BINDING_TEXT_ONLY_WARNING"
	DiagBindingAdvisory         DiagnosticID = "BINDING_ADVISORY"
	DiagBindingCannotValidate   DiagnosticID = "BINDING_CANNOT_VALIDATE"
	DiagBindingProviderError    DiagnosticID = "BINDING_PROVIDER_ERROR"
	DiagBindingValueSetNotFound DiagnosticID = "BINDING_VALUESET_NOT_FOUND"
)

// Diagnostic IDs for references.
const (
	DiagReferenceInvalidFormat DiagnosticID = "REFERENCE_INVALID_FORMAT"
	DiagReferenceTypeMismatch  DiagnosticID = "REFERENCE_TYPE_MISMATCH"
	DiagReferenceNotContained  DiagnosticID = "REFERENCE_NOT_CONTAINED"
)

// Diagnostic IDs for FHIRPath invariants.
const (
	DiagConstraintFailed       DiagnosticID = "CONSTRAINT_FAILED"
	DiagConstraintCompileError DiagnosticID = "CONSTRAINT_COMPILE_ERROR"
	DiagConstraintEvalError    DiagnosticID = "CONSTRAINT_EVAL_ERROR"
)

// DiagnosticTemplate defines the structure for a diagnostic message.
type DiagnosticTemplate struct {
	ID       DiagnosticID
	Severity Severity
	Code     Code
	Template string
}

// diagnosticTemplates maps diagnostic IDs to their templates.
// Templates use {placeholder} syntax for variable substitution.
var diagnosticTemplates = map[DiagnosticID]DiagnosticTemplate{
	DiagMissingRequiredField: {
		Severity: SeverityError,
		Code:     CodeRequired,
		Template: "Missing required field '{field}' (minimum cardinality {min})",
	},
	DiagEmptyList: {
		Severity: SeverityWarning,
		Code:     CodeValue,
		Template: "List '{field}' is present but empty",
	},
	DiagInvalidChoiceType: {
		Severity: SeverityError,
		Code:     CodeStructure,
		Template: "Type '{type}' is not an allowed alternative for '{field}[x]'",
	},
	DiagUnknownElement: {
		Severity: SeverityError,
		Code:     CodeStructure,
		Template: "Unknown element '{element}'",
	},
	DiagUnknownResource: {
		Severity: SeverityError,
		Code:     CodeNotSupported,
		Template: "Unknown resourceType '{type}'",
	},
	DiagStructureInvalidJSON: {
		Severity: SeverityFatal,
		Code:     CodeStructure,
		Template: "Invalid JSON: {error}",
	},
	DiagStructureDecode: {
		Severity: SeverityError,
		Code:     CodeStructure,
		Template: "{error}",
	},

	DiagTypeInvalidFormat: {
		Severity: SeverityError,
		Code:     CodeValue,
		Template: "Value '{value}' does not match expected format for type {type}",
	},

	DiagInvalidCode: {
		Severity: SeverityError,
		Code:     CodeCodeInvalid,
		Template: "The value provided ('{code}') is not in the value set '{valueSet}' (required)",
	},
	DiagBindingTextOnly: {
		Severity: SeverityError,
		Code:     CodeCodeInvalid,
		Template: "No code provided, and a code must be provided from the value set '{valueSet}' (required)",
	},
	DiagBindingExtensible: {
		Severity: SeverityWarning,
		Code:     CodeCodeInvalid,
		Template: "The value provided ('{code}') is not in the value set '{valueSet}' (extensible)",
	},
	DiagBindingTextOnlyWarning: {
		Severity: SeverityWarning,
		Code:     CodeCodeInvalid,
		Template: "No code provided, and a code should be provided from the value set '{valueSet}' (extensible)",
	},
	DiagBindingAdvisory: {
		Severity: SeverityInformation,
		Code:     CodeInformational,
		Template: "The value provided ('{code}') is not in the value set '{valueSet}' ({strength})",
	},
	DiagBindingCannotValidate: {
		Severity: SeverityInformation,
		Code:     CodeInformational,
		Template: "Code '{code}' cannot be checked against '{valueSet}' without a terminology provider",
	},
	DiagBindingProviderError: {
		Severity: SeverityWarning,
		Code:     CodeProcessing,
		Template: "Terminology provider failed for code '{code}' in '{valueSet}': {error}",
	},
	DiagBindingValueSetNotFound: {
		Severity: SeverityWarning,
		Code:     CodeNotFound,
		Template: "ValueSet '{valueSet}' not found - code '{code}' cannot be validated",
	},

	DiagConstraintFailed: {
		Severity: SeverityError,
		Code:     CodeInvariant,
		Template: "Constraint failed: {key}: '{human}'",
	},
	DiagConstraintCompileError: {
		Severity: SeverityWarning,
		Code:     CodeProcessing,
		Template: "Could not compile constraint '{key}': {error}",
	},
	DiagReferenceInvalidFormat: {
		Severity: SeverityError,
		Code:     CodeValue,
		Template: "Invalid reference format: '{reference}'",
	},
	DiagReferenceTypeMismatch: {
		Severity: SeverityError,
		Code:     CodeValue,
		Template: "Reference type element '{type}' does not match reference target '{reference}'",
	},
	DiagReferenceNotContained: {
		Severity: SeverityError,
		Code:     CodeNotFound,
		Template: "Local reference '{reference}' does not match any contained resource",
	},
	DiagConstraintEvalError: {
		Severity: SeverityWarning,
		Code:     CodeProcessing,
		Template: "Could not evaluate constraint '{key}': {error}",
	},
}

// FormatDiagnostic formats a diagnostic message with the given parameters.
func FormatDiagnostic(id DiagnosticID, params map[string]any) string {
	tmpl, ok := diagnosticTemplates[id]
	if !ok {
		return string(id)
	}
	return formatTemplate(tmpl.Template, params)
}

// GetDiagnosticTemplate returns the template for a diagnostic ID.
func GetDiagnosticTemplate(id DiagnosticID) (DiagnosticTemplate, bool) {
	tmpl, ok := diagnosticTemplates[id]
	if ok {
		tmpl.ID = id
	}
	return tmpl, ok
}

// formatTemplate replaces {placeholder} with values from params.
func formatTemplate(template string, params map[string]any) string {
	result := template
	for key, value := range params {
		placeholder := "{" + key + "}"
		result = strings.ReplaceAll(result, placeholder, fmt.Sprint(value))
	}
	return result
}

// AddWithID adds an issue using the template's own severity.
func (r *Result) AddWithID(id DiagnosticID, params map[string]any, expression ...string) {
	tmpl, ok := diagnosticTemplates[id]
	if !ok {
		r.AddError(CodeProcessing, string(id), expression...)
		return
	}
	r.addTemplate(tmpl.Severity, id, tmpl, params, expression)
}

// AddErrorWithID adds an error using a diagnostic template.
func (r *Result) AddErrorWithID(id DiagnosticID, params map[string]any, expression ...string) {
	tmpl, ok := diagnosticTemplates[id]
	if !ok {
		r.AddError(CodeProcessing, string(id), expression...)
		return
	}
	r.addTemplate(SeverityError, id, tmpl, params, expression)
}

// AddWarningWithID adds a warning using a diagnostic template.
func (r *Result) AddWarningWithID(id DiagnosticID, params map[string]any, expression ...string) {
	tmpl, ok := diagnosticTemplates[id]
	if !ok {
		r.AddWarning(CodeProcessing, string(id), expression...)
		return
	}
	r.addTemplate(SeverityWarning, id, tmpl, params, expression)
}

// AddInfoWithID adds an informational message using a diagnostic template.
func (r *Result) AddInfoWithID(id DiagnosticID, params map[string]any, expression ...string) {
	tmpl, ok := diagnosticTemplates[id]
	if !ok {
		r.AddInfo(CodeInformational, string(id), expression...)
		return
	}
	r.addTemplate(SeverityInformation, id, tmpl, params, expression)
}

func (r *Result) addTemplate(sev Severity, id DiagnosticID, tmpl DiagnosticTemplate, params map[string]any, expression []string) {
	r.Issues = append(r.Issues, Issue{
		Severity:    sev,
		Code:        tmpl.Code,
		Diagnostics: formatTemplate(tmpl.Template, params),
		Expression:  expression,
		MessageID:   string(id),
	})
}
