// Package constraint evaluates the FHIRPath invariants declared on record
// types (dom-2, dom-4, dom-5, dom-6, ext-1...).
package constraint

import (
	"strings"

	"github.com/gofhir/fhirpath"

	"github.com/gofhir/models/pkg/cache"
	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/logger"
	"github.com/gofhir/models/pkg/record"
	"github.com/gofhir/models/pkg/schema"
	"github.com/gofhir/models/pkg/tree"
	"github.com/gofhir/models/pkg/walker"
)

// Validator evaluates invariants against the tree form of a record.
type Validator struct {
	registry *schema.Registry

	// Compiled FHIRPath expressions, keyed by source.
	exprCache *cache.Cache[string, *fhirpath.Expression]
}

// exprCacheSize bounds the compiled expressions kept.
const exprCacheSize = 512

// Option configures a Validator.
type Option func(*Validator)

// WithRegistry selects the type registry. The default is schema.Default().
func WithRegistry(reg *schema.Registry) Option {
	return func(v *Validator) { v.registry = reg }
}

// New creates a constraint Validator.
func New(opts ...Option) *Validator {
	v := &Validator{
		registry:  schema.Default(),
		exprCache: cache.New[string, *fhirpath.Expression](exprCacheSize),
	}
	for _, o := range opts {
		o(v)
	}
	return v
}

// ValidateRecord evaluates the invariants of a record and everything it
// contains.
func (v *Validator) ValidateRecord(c record.Composite, result *issue.Result) {
	v.Validate(record.ToTree(c), c.Fields().Type().Name, result)
}

// Validate evaluates the invariants of typeName on obj, then descends into
// every nested element and contained resource that declares its own.
func (v *Validator) Validate(obj *tree.Object, typeName string, result *issue.Result) {
	walker.New(v.registry).Walk(obj, typeName, func(ctx *walker.Context) bool {
		if len(ctx.Type.Constraints) > 0 {
			v.evaluate(ctx.Object, ctx.Type.Constraints, ctx.FHIRPath, result)
		}
		return true
	})
}

// evaluate runs the constraints declared on one element.
func (v *Validator) evaluate(obj *tree.Object, constraints []schema.Constraint, fhirPath string, result *issue.Result) {
	var data []byte
	for _, c := range constraints {
		if c.Expression == "" {
			continue
		}
		if result.Stats != nil {
			result.Stats.InvariantsRun++
		}

		if check, ok := wellKnown[c.Key]; ok {
			if !check(obj) {
				addViolation(c, fhirPath, result)
			}
			continue
		}

		expr, err := v.compiled(c.Expression)
		if err != nil {
			logger.Debug("constraint %s: compile %q: %v", c.Key, c.Expression, err)
			result.AddWarningWithID(issue.DiagConstraintCompileError, map[string]any{
				"key":   c.Key,
				"error": err.Error(),
			}, fhirPath)
			continue
		}

		if data == nil {
			if data, err = tree.MarshalJSON(obj); err != nil {
				result.AddWarningWithID(issue.DiagConstraintEvalError, map[string]any{
					"key":   c.Key,
					"error": err.Error(),
				}, fhirPath)
				return
			}
		}
		evalResult, err := expr.Evaluate(data)
		if err != nil {
			result.AddWarningWithID(issue.DiagConstraintEvalError, map[string]any{
				"key":   c.Key,
				"error": err.Error(),
			}, fhirPath)
			continue
		}

		if !passed(evalResult) {
			addViolation(c, fhirPath, result)
		}
	}
}

// compiled returns a cached compiled expression or compiles a new one.
func (v *Validator) compiled(expr string) (*fhirpath.Expression, error) {
	return v.exprCache.GetOrLoad(expr, func() (*fhirpath.Expression, error) {
		return fhirpath.Compile(expr)
	})
}

// CacheSize returns the number of compiled expressions held.
func (v *Validator) CacheSize() int {
	return v.exprCache.Len()
}

// passed checks if a FHIRPath result indicates the constraint holds.
// An empty collection means the constraint does not apply.
func passed(result fhirpath.Collection) bool {
	if result.Empty() {
		return true
	}
	b, err := result.ToBoolean()
	if err != nil {
		return true
	}
	return b
}

func addViolation(c schema.Constraint, fhirPath string, result *issue.Result) {
	params := map[string]any{
		"key":   c.Key,
		"human": c.Human,
	}
	if c.Severity == "error" {
		result.AddErrorWithID(issue.DiagConstraintFailed, params, fhirPath)
	} else {
		result.AddWarningWithID(issue.DiagConstraintFailed, params, fhirPath)
	}
}

// wellKnown holds invariants evaluated directly on the tree. ext-1 needs
// value[x] resolution, which a schema-less FHIRPath evaluation cannot do.
var wellKnown = map[string]func(*tree.Object) bool{
	"ext-1": func(obj *tree.Object) bool {
		_, hasExtension := obj.Get("extension")
		hasValue := false
		for _, k := range obj.Keys() {
			if len(k) > len("value") && strings.HasPrefix(k, "value") {
				hasValue = true
			}
		}
		return hasExtension != hasValue
	},
}
