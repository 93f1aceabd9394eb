// Package issue defines record violations shaped after FHIR OperationOutcome.
package issue

import "sort"

// Severity represents the severity of a violation.
type Severity string

// Severity constants aligned with FHIR IssueSeverity.
const (
	SeverityFatal       Severity = "fatal"
	SeverityError       Severity = "error"
	SeverityWarning     Severity = "warning"
	SeverityInformation Severity = "information"
)

// rank orders severities from most to least serious.
func (s Severity) rank() int {
	switch s {
	case SeverityFatal:
		return 0
	case SeverityError:
		return 1
	case SeverityWarning:
		return 2
	default:
		return 3
	}
}

// Code represents the type of violation (IssueType subset).
type Code string

// Code constants aligned with FHIR IssueType.
const (
	CodeInvalid       Code = "invalid"
	CodeStructure     Code = "structure"
	CodeRequired      Code = "required"
	CodeValue         Code = "value"
	CodeInvariant     Code = "invariant"
	CodeProcessing    Code = "processing"
	CodeNotSupported  Code = "not-supported"
	CodeNotFound      Code = "not-found"
	CodeCodeInvalid   Code = "code-invalid"
	CodeIncomplete    Code = "incomplete"
	CodeInformational Code = "informational"
)

// Issue is a single violation found on a record.
type Issue struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Code     Code     `json:"code" yaml:"code"`

	// Diagnostics is the human-readable description.
	Diagnostics string `json:"diagnostics" yaml:"diagnostics"`

	// Expression holds FHIRPath-style paths to the offending element,
	// e.g. Claim.item[1].productOrService.
	Expression []string `json:"expression,omitempty" yaml:"expression,omitempty"`

	// MessageID is the identifier from the diagnostic catalog.
	MessageID string `json:"messageId,omitempty" yaml:"messageId,omitempty"`

	// Location is the position in the source document, when known.
	Location *Location `json:"location,omitempty" yaml:"location,omitempty"`
}

// Location is a 1-based line and column in a source document.
type Location struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// Stats contains validation statistics.
type Stats struct {
	// ResourceType is the type of record validated
	ResourceType string
	// ResourceSize is the size of the input in bytes (0 for in-memory records)
	ResourceSize int
	// Duration is the total validation time
	Duration int64 // nanoseconds
	// FieldsChecked is the number of populated fields visited
	FieldsChecked int
	// InvariantsRun is the number of FHIRPath invariants evaluated
	InvariantsRun int
}

// DurationMs returns the duration in milliseconds.
func (s *Stats) DurationMs() float64 {
	return float64(s.Duration) / 1e6
}

// Result holds the collection of issues from validation.
type Result struct {
	Issues []Issue
	Stats  *Stats
}

// defaultIssueCapacity is the pre-allocated capacity for Issues slice.
const defaultIssueCapacity = 8

// NewResult creates a new empty Result with pre-allocated capacity.
func NewResult() *Result {
	return &Result{
		Issues: make([]Issue, 0, defaultIssueCapacity),
	}
}

// AddIssue adds an issue to the result.
func (r *Result) AddIssue(issue Issue) {
	r.Issues = append(r.Issues, issue)
}

// AddError adds an error-level issue.
func (r *Result) AddError(code Code, diagnostics string, expression ...string) {
	r.add(SeverityError, code, diagnostics, expression)
}

// AddWarning adds a warning-level issue.
func (r *Result) AddWarning(code Code, diagnostics string, expression ...string) {
	r.add(SeverityWarning, code, diagnostics, expression)
}

// AddInfo adds an information-level issue.
func (r *Result) AddInfo(code Code, diagnostics string, expression ...string) {
	r.add(SeverityInformation, code, diagnostics, expression)
}

func (r *Result) add(sev Severity, code Code, diagnostics string, expression []string) {
	r.Issues = append(r.Issues, Issue{
		Severity:    sev,
		Code:        code,
		Diagnostics: diagnostics,
		Expression:  expression,
	})
}

// Valid reports whether the result carries no issues at all.
func (r *Result) Valid() bool {
	return r == nil || len(r.Issues) == 0
}

// HasErrors returns true if there are any error-level issues.
func (r *Result) HasErrors() bool {
	return r.ErrorCount() > 0
}

// ErrorCount returns the number of error-level issues.
func (r *Result) ErrorCount() int {
	if r == nil {
		return 0
	}
	count := 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError || issue.Severity == SeverityFatal {
			count++
		}
	}
	return count
}

// WarningCount returns the number of warning-level issues.
func (r *Result) WarningCount() int {
	return r.count(SeverityWarning)
}

// InfoCount returns the number of information-level issues.
func (r *Result) InfoCount() int {
	return r.count(SeverityInformation)
}

func (r *Result) count(sev Severity) int {
	if r == nil {
		return 0
	}
	count := 0
	for _, issue := range r.Issues {
		if issue.Severity == sev {
			count++
		}
	}
	return count
}

// Merge combines another result into this one.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	r.Issues = append(r.Issues, other.Issues...)
}

// Filter returns a new Result with only issues matching the given severity.
func (r *Result) Filter(severity Severity) *Result {
	filtered := NewResult()
	for _, issue := range r.Issues {
		if issue.Severity == severity {
			filtered.Issues = append(filtered.Issues, issue)
		}
	}
	return filtered
}

// WithMessageID returns the issues carrying the given catalog identifier.
func (r *Result) WithMessageID(id DiagnosticID) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.MessageID == string(id) {
			out = append(out, issue)
		}
	}
	return out
}

// Sort orders issues by severity, keeping discovery order within a severity.
func (r *Result) Sort() {
	sort.SliceStable(r.Issues, func(i, j int) bool {
		return r.Issues[i].Severity.rank() < r.Issues[j].Severity.rank()
	})
}

// EnrichLocations sets Location on each issue without one, using locator
// on the issue's first expression. A nil locator result leaves the issue
// unchanged.
func (r *Result) EnrichLocations(locator func(expression string) *Location) {
	for i := range r.Issues {
		iss := &r.Issues[i]
		if iss.Location != nil || len(iss.Expression) == 0 {
			continue
		}
		iss.Location = locator(iss.Expression[0])
	}
}

// Prefix prepends a path segment to every expression, used when a nested
// record is validated on its own and merged under its parent.
func (r *Result) Prefix(path string) {
	for i := range r.Issues {
		for j, e := range r.Issues[i].Expression {
			r.Issues[i].Expression[j] = path + "." + e
		}
	}
}
