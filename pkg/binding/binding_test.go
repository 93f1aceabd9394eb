package binding

import (
	"context"
	"errors"
	"testing"

	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/schema"
	"github.com/gofhir/models/pkg/terminology"
)

type stubProvider struct {
	valid bool
	err   error
}

func (s stubProvider) ValidateCode(context.Context, string, string) (bool, error) {
	return s.valid, s.err
}

func (s stubProvider) ValidateCodeInValueSet(context.Context, string, string, string) (bool, bool, error) {
	return s.valid, true, s.err
}

func TestCheckStrengths(t *testing.T) {
	required := &schema.Binding{Strength: schema.StrengthRequired, ValueSet: terminology.FMStatus}
	extensible := &schema.Binding{Strength: schema.StrengthExtensible, ValueSet: terminology.ClaimType}
	example := &schema.Binding{Strength: schema.StrengthExample, ValueSet: terminology.ProcessPriority}
	preferred := &schema.Binding{Strength: schema.StrengthPreferred, ValueSet: terminology.TimingAbbreviation}

	tests := []struct {
		name     string
		codes    []terminology.Code
		textOnly bool
		binding  *schema.Binding
		wantSev  issue.Severity
		wantID   issue.DiagnosticID
	}{
		{"required member", []terminology.Code{{Code: "active"}}, false, required, "", ""},
		{"required bogus", []terminology.Code{{Code: "bogus"}}, false, required, issue.SeverityError, issue.DiagInvalidCode},
		{"required text only", nil, true, required, issue.SeverityError, issue.DiagBindingTextOnly},
		{"extensible member", []terminology.Code{{System: terminology.SystemClaimType, Code: "oral"}}, false, extensible, "", ""},
		{"extensible out of set", []terminology.Code{{System: terminology.SystemClaimType, Code: "dental"}}, false, extensible, issue.SeverityWarning, issue.DiagBindingExtensible},
		{"extensible foreign system", []terminology.Code{{System: "http://example.org/local", Code: "x"}}, false, extensible, issue.SeverityWarning, issue.DiagBindingExtensible},
		{"extensible text only", nil, true, extensible, issue.SeverityWarning, issue.DiagBindingTextOnlyWarning},
		{"example out of set", []terminology.Code{{System: terminology.SystemProcessPriority, Code: "urgent"}}, false, example, issue.SeverityInformation, issue.DiagBindingAdvisory},
		{"preferred out of set", []terminology.Code{{System: terminology.SystemGTSAbbreviation, Code: "XYZ"}}, false, preferred, issue.SeverityInformation, issue.DiagBindingAdvisory},
		{"example text only", nil, true, example, "", ""},
		{"one member among many", []terminology.Code{{System: "http://example.org", Code: "a"}, {System: terminology.SystemClaimType, Code: "vision"}}, false, extensible, "", ""},
		{"empty", nil, false, required, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := issue.NewResult()
			New(nil).Check(context.Background(), tt.codes, tt.textOnly, tt.binding, "Claim.x", result)

			if tt.wantID == "" {
				if len(result.Issues) != 0 {
					t.Fatalf("expected no issues, got %+v", result.Issues)
				}
				return
			}
			if len(result.Issues) != 1 {
				t.Fatalf("expected 1 issue, got %+v", result.Issues)
			}
			got := result.Issues[0]
			if got.Severity != tt.wantSev || got.MessageID != string(tt.wantID) {
				t.Errorf("issue = %s/%s, want %s/%s", got.Severity, got.MessageID, tt.wantSev, tt.wantID)
			}
			if got.Expression[0] != "Claim.x" {
				t.Errorf("expression = %v", got.Expression)
			}
		})
	}
}

func TestCheckWholeSystemWithoutProvider(t *testing.T) {
	b := &schema.Binding{Strength: schema.StrengthRequired, ValueSet: terminology.MimeTypes}
	result := issue.NewResult()
	New(nil).Check(context.Background(), []terminology.Code{{Code: "application/x-custom"}}, false, b, "Attachment.contentType", result)

	if result.HasErrors() {
		t.Fatal("undetermined membership must not be an error")
	}
	if len(result.WithMessageID(issue.DiagBindingCannotValidate)) != 1 {
		t.Errorf("expected cannot-validate info, got %+v", result.Issues)
	}
}

func TestCheckWithProvider(t *testing.T) {
	b := &schema.Binding{Strength: schema.StrengthRequired, ValueSet: terminology.MimeTypes}
	code := []terminology.Code{{Code: "application/x-custom"}}

	result := issue.NewResult()
	New(stubProvider{valid: false}).Check(context.Background(), code, false, b, "Attachment.contentType", result)
	if len(result.WithMessageID(issue.DiagInvalidCode)) != 1 {
		t.Errorf("provider rejection should be INVALID_CODE, got %+v", result.Issues)
	}

	result = issue.NewResult()
	New(stubProvider{valid: true}).Check(context.Background(), code, false, b, "Attachment.contentType", result)
	if !result.Valid() {
		t.Errorf("provider acceptance should be clean, got %+v", result.Issues)
	}

	result = issue.NewResult()
	New(stubProvider{err: errors.New("down")}).Check(context.Background(), code, false, b, "Attachment.contentType", result)
	if result.HasErrors() || len(result.WithMessageID(issue.DiagBindingProviderError)) != 1 {
		t.Errorf("provider failure should warn, got %+v", result.Issues)
	}
}
