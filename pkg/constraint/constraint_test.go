package constraint_test

import (
	"sync"
	"testing"

	"github.com/gofhir/models/pkg/constraint"
	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/resource/claim"
	"github.com/gofhir/models/pkg/schema"
	"github.com/gofhir/models/pkg/tree"
)

const claimHead = `{"resourceType":"Claim","id":"100150",`

const claimBody = `"status":"active",` +
	`"type":{"coding":[{"system":"http://terminology.hl7.org/CodeSystem/claim-type","code":"oral"}]},` +
	`"use":"claim","patient":{"reference":"Patient/1"},"created":"2014-08-16",` +
	`"provider":{"reference":"Organization/1"},` +
	`"priority":{"coding":[{"system":"http://terminology.hl7.org/CodeSystem/processpriority","code":"normal"}]},` +
	`"insurance":[{"sequence":1,"focal":true,"coverage":{"reference":"Coverage/9876B1"}}]`

func TestInvariants(t *testing.T) {
	tests := []struct {
		name         string
		json         string
		wantErrors   int
		wantWarnings int
		wantPaths    []string
	}{
		{
			name:         "no narrative",
			json:         claimHead + claimBody + `}`,
			wantWarnings: 1, // dom-6
			wantPaths:    []string{"Claim"},
		},
		{
			name: "narrative present",
			json: claimHead + `"text":{"status":"generated","div":"<div xmlns=\"http://www.w3.org/1999/xhtml\">A claim</div>"},` +
				claimBody + `}`,
		},
		{
			name: "contained with versionId",
			json: claimHead + `"contained":[{"resourceType":"Organization","id":"org","meta":{"versionId":"2"}}],` +
				claimBody + `}`,
			wantErrors:   1, // dom-4
			wantWarnings: 1, // dom-6
			wantPaths:    []string{"Claim", "Claim"},
		},
		{
			name: "contained with security label",
			json: claimHead + `"contained":[{"resourceType":"Organization","id":"org",` +
				`"meta":{"security":[{"system":"http://terminology.hl7.org/CodeSystem/v3-Confidentiality","code":"R"}]}}],` +
				claimBody + `}`,
			wantErrors:   1, // dom-5
			wantWarnings: 1,
			wantPaths:    []string{"Claim", "Claim"},
		},
		{
			name: "extension with value and nested extension",
			json: claimHead + `"extension":[{"url":"http://example.org/ext","valueString":"x",` +
				`"extension":[{"url":"part","valueBoolean":true}]}],` + claimBody + `}`,
			wantErrors:   1, // ext-1
			wantWarnings: 1,
			wantPaths:    []string{"Claim", "Claim.extension[0]"},
		},
		{
			name: "empty extension on an item",
			json: claimHead + claimBody + `,"item":[{"sequence":1,"productOrService":{"text":"exam"},` +
				`"extension":[{"url":"http://example.org/empty"}]}]}`,
			wantErrors:   1,
			wantWarnings: 1,
			wantPaths:    []string{"Claim", "Claim.item[0].extension[0]"},
		},
	}

	v := constraint.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := claim.Parse([]byte(tt.json))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			res := issue.NewResult()
			v.ValidateRecord(c, res)
			for _, iss := range res.Issues {
				t.Logf("  [%s] %s @ %v", iss.Severity, iss.Diagnostics, iss.Expression)
			}
			if res.ErrorCount() != tt.wantErrors {
				t.Errorf("errors = %d, want %d", res.ErrorCount(), tt.wantErrors)
			}
			if res.WarningCount() != tt.wantWarnings {
				t.Errorf("warnings = %d, want %d", res.WarningCount(), tt.wantWarnings)
			}
			var paths []string
			for _, iss := range res.WithMessageID(issue.DiagConstraintFailed) {
				paths = append(paths, iss.Expression[0])
			}
			if len(paths) != len(tt.wantPaths) {
				t.Fatalf("paths = %v, want %v", paths, tt.wantPaths)
			}
			for _, want := range tt.wantPaths {
				if !contains(paths, want) {
					t.Errorf("no violation at %s in %v", want, paths)
				}
			}
		})
	}
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

func TestCompileErrorIsWarning(t *testing.T) {
	reg := schema.New()
	reg.Register(&schema.Type{
		Name: "Gadget",
		Kind: schema.KindResource,
		Constraints: []schema.Constraint{
			{Key: "bad-1", Severity: "error", Human: "unparsable", Expression: "((("},
		},
	})
	v := constraint.New(constraint.WithRegistry(reg))

	obj := tree.NewObject()
	obj.Set("resourceType", "Gadget")
	res := issue.NewResult()
	v.Validate(obj, "Gadget", res)

	if len(res.Issues) != 1 {
		t.Fatalf("got %d issues: %+v", len(res.Issues), res.Issues)
	}
	if iss := res.Issues[0]; iss.MessageID != string(issue.DiagConstraintCompileError) || iss.Severity != issue.SeverityWarning {
		t.Errorf("got %s/%s", iss.MessageID, iss.Severity)
	}
}

func TestUnknownTypeIsSkipped(t *testing.T) {
	res := issue.NewResult()
	constraint.New().Validate(tree.NewObject(), "Patient", res)
	if len(res.Issues) != 0 {
		t.Errorf("issues = %+v", res.Issues)
	}
}

func TestExpressionCacheConcurrent(t *testing.T) {
	c, err := claim.Parse([]byte(claimHead + claimBody + `}`))
	if err != nil {
		t.Fatal(err)
	}
	v := constraint.New()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v.ValidateRecord(c, issue.NewResult())
		}()
	}
	wg.Wait()

	// dom-2, dom-4, dom-5 and dom-6; ext-1 is evaluated natively.
	if got := v.CacheSize(); got != 4 {
		t.Errorf("CacheSize = %d, want 4", got)
	}
}
