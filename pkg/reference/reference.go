// Package reference checks the Reference elements of a record: literal
// references must be well formed, must agree with Reference.type when
// both are present, and local "#id" references must name a contained
// resource. References are never resolved.
package reference

import (
	"regexp"
	"strings"

	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/record"
	"github.com/gofhir/models/pkg/schema"
	"github.com/gofhir/models/pkg/tree"
	"github.com/gofhir/models/pkg/walker"
)

// Reference format patterns.
var (
	// Relative reference: Type/id or Type/id/_history/vid.
	relativePattern = regexp.MustCompile(`^[A-Z][A-Za-z]+/[A-Za-z0-9\-.]{1,64}(?:/_history/[A-Za-z0-9\-.]{1,64})?$`)

	// Absolute URL reference, with optional _history/vid.
	absolutePattern = regexp.MustCompile(`^https?://\S+/[A-Z][A-Za-z]+/[A-Za-z0-9\-.]{1,64}(?:/_history/[A-Za-z0-9\-.]{1,64})?$`)

	// Local reference to a contained resource, or "#" for the container.
	fragmentPattern = regexp.MustCompile(`^#[A-Za-z0-9\-.]{0,64}$`)

	urnUUIDPattern = regexp.MustCompile(`^urn:uuid:.+$`)
	urnOIDPattern  = regexp.MustCompile(`^urn:oid:[012](\.(0|[1-9]\d*))+$`)
)

// ValidFormat reports whether ref is a relative, absolute, local or URN
// reference.
func ValidFormat(ref string) bool {
	return relativePattern.MatchString(ref) ||
		absolutePattern.MatchString(ref) ||
		fragmentPattern.MatchString(ref) ||
		urnUUIDPattern.MatchString(ref) ||
		urnOIDPattern.MatchString(ref)
}

// TargetType returns the resource type a relative or absolute reference
// names, or "" for local and URN references.
func TargetType(ref string) string {
	if strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "urn:") {
		return ""
	}
	ref, _, _ = strings.Cut(ref, "/_history/")
	parts := strings.Split(ref, "/")
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-2]
}

// Validator checks references against the type registry.
type Validator struct {
	walker *walker.Walker
}

// New creates a reference Validator. A nil registry means schema.Default().
func New(reg *schema.Registry) *Validator {
	return &Validator{walker: walker.New(reg)}
}

// ValidateRecord checks every Reference reachable from a resource.
func (v *Validator) ValidateRecord(c record.Composite, result *issue.Result) {
	v.Validate(record.ToTree(c), c.Fields().Type().Name, result)
}

// Validate checks every Reference in obj, a resource of type typeName.
// Local references resolve against the resource's contained list.
func (v *Validator) Validate(obj *tree.Object, typeName string, result *issue.Result) {
	contained := containedIDs(obj)
	v.walker.Walk(obj, typeName, func(ctx *walker.Context) bool {
		if ctx.Type.Name == "Reference" {
			check(ctx.Object, ctx.FHIRPath, contained, result)
		}
		return true
	})
}

func check(obj *tree.Object, fhirPath string, contained map[string]bool, result *issue.Result) {
	ref, _ := obj.GetString("reference")
	if ref == "" {
		// Identifier or display only.
		return
	}
	if !ValidFormat(ref) {
		result.AddErrorWithID(issue.DiagReferenceInvalidFormat,
			map[string]any{"reference": ref}, fhirPath+".reference")
		return
	}

	if id, ok := strings.CutPrefix(ref, "#"); ok {
		if id != "" && !contained[id] {
			result.AddErrorWithID(issue.DiagReferenceNotContained,
				map[string]any{"reference": ref}, fhirPath+".reference")
		}
		return
	}

	refType, _ := obj.GetString("type")
	if target := TargetType(ref); refType != "" && target != "" && refType != target {
		result.AddErrorWithID(issue.DiagReferenceTypeMismatch,
			map[string]any{"type": refType, "reference": target}, fhirPath)
	}
}

func containedIDs(obj *tree.Object) map[string]bool {
	ids := make(map[string]bool)
	val, _ := obj.Get("contained")
	list, _ := val.([]any)
	for _, item := range list {
		if o, ok := item.(*tree.Object); ok {
			if id, _ := o.GetString("id"); id != "" {
				ids[id] = true
			}
		}
	}
	return ids
}
