package record

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/gofhir/models/pkg/issue"
)

// Error kinds. FieldError wraps exactly one of them.
var (
	ErrUnknownField    = errors.New("unknown field")
	ErrCardinality     = errors.New("cardinality violation")
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrParse           = errors.New("parse error")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidCode     = errors.New("invalid code")
	ErrInvalid         = errors.New("invalid record")
)

// FieldError locates a structural problem on one field.
type FieldError struct {
	Kind   error
	Type   string
	Field  string
	Path   string
	Detail string
}

// Error implements error.
func (e *FieldError) Error() string {
	where := e.Path
	if where == "" {
		where = e.Type + "." + e.Field
	}
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", where, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %s", where, e.Kind, e.Detail)
}

// Unwrap exposes the error kind to errors.Is.
func (e *FieldError) Unwrap() error { return e.Kind }

func fieldError(kind error, typ, field, path, format string, args ...any) *FieldError {
	return &FieldError{Kind: kind, Type: typ, Field: field, Path: path, Detail: fmt.Sprintf(format, args...)}
}

// FieldErrors flattens an error returned by FromTree or Decode.
func FieldErrors(err error) []*FieldError {
	if err == nil {
		return nil
	}
	var out []*FieldError
	var merr *multierror.Error
	if errors.As(err, &merr) {
		for _, e := range merr.Errors {
			out = append(out, FieldErrors(e)...)
		}
		return out
	}
	var fe *FieldError
	if errors.As(err, &fe) {
		return []*FieldError{fe}
	}
	return nil
}

// ResultError turns the error-level issues of a validation result into an
// error, for callers that want to treat data-quality problems as fatal.
// It returns nil when the result has no errors.
func ResultError(res *issue.Result) error {
	if res == nil {
		return nil
	}
	var merr *multierror.Error
	for _, iss := range res.Issues {
		if iss.Severity != issue.SeverityError && iss.Severity != issue.SeverityFatal {
			continue
		}
		merr = multierror.Append(merr, &FieldError{
			Kind:   kindForMessage(iss.MessageID),
			Path:   strings.Join(iss.Expression, ", "),
			Detail: iss.Diagnostics,
		})
	}
	return merr.ErrorOrNil()
}

func kindForMessage(id string) error {
	switch issue.DiagnosticID(id) {
	case issue.DiagMissingRequiredField:
		return ErrMissingRequired
	case issue.DiagInvalidCode, issue.DiagBindingTextOnly:
		return ErrInvalidCode
	case issue.DiagTypeInvalidFormat:
		return ErrParse
	case issue.DiagInvalidChoiceType:
		return ErrTypeMismatch
	default:
		return ErrInvalid
	}
}
