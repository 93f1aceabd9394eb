package record

import (
	"context"
	"fmt"
	"time"

	"github.com/gofhir/models/pkg/binding"
	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/primitive"
	"github.com/gofhir/models/pkg/schema"
	"github.com/gofhir/models/pkg/terminology"
)

type validateConfig struct {
	ctx      context.Context
	provider terminology.Provider
}

// ValidateOption configures Validate.
type ValidateOption func(*validateConfig)

// WithContext sets the context handed to the terminology provider.
func WithContext(ctx context.Context) ValidateOption {
	return func(c *validateConfig) { c.ctx = ctx }
}

// WithProvider sets the terminology provider used for value sets that
// cannot be enumerated locally.
func WithProvider(p terminology.Provider) ValidateOption {
	return func(c *validateConfig) { c.provider = p }
}

// Validate checks a record against its field tables: required fields,
// empty lists, primitive formats, choice alternatives and code bindings.
// It walks nested composites and contained resources. Invariants are
// evaluated separately by the constraint package.
func Validate(c Composite, opts ...ValidateOption) *issue.Result {
	cfg := validateConfig{ctx: context.Background()}
	for _, o := range opts {
		o(&cfg)
	}
	start := time.Now()
	res := issue.NewResult()
	res.Stats = &issue.Stats{}
	if c == nil {
		res.AddWithID(issue.DiagStructureDecode, map[string]any{"error": "nil record"})
		return res
	}
	t := c.Fields().Type()
	res.Stats.ResourceType = t.Name
	v := &validation{ctx: cfg.ctx, checker: binding.New(cfg.provider), res: res}
	v.composite(c, t.Name)
	res.Stats.Duration = time.Since(start).Nanoseconds()
	return res
}

type validation struct {
	ctx     context.Context
	checker *binding.Checker
	res     *issue.Result
}

func (v *validation) composite(c Composite, path string) {
	fs := c.Fields()
	for i := 0; i < fs.Len(); i++ {
		s := fs.Slot(i)
		f := s.Field()
		if !s.Present() {
			if f.Required() {
				v.missing(f, path)
			}
			continue
		}
		v.res.Stats.FieldsChecked++
		vals := s.Values()
		if f.IsList() && len(vals) == 0 {
			if f.Required() {
				v.missing(f, path)
			} else {
				v.res.AddWithID(issue.DiagEmptyList, map[string]any{"field": f.Name}, path+"."+f.Name)
			}
			continue
		}
		if f.IsList() && len(vals) < f.Min {
			v.missing(f, path)
		}
		if f.Max != schema.Unbounded && len(vals) > f.Max && f.Max > 1 {
			v.res.AddError(issue.CodeStructure,
				fmt.Sprintf("Field '%s' has %d values, maximum is %d", f.Name, len(vals), f.Max), path+"."+f.Name)
		}
		for j, val := range vals {
			p := path + "." + f.Name
			if f.IsChoice() {
				code := val.FHIRType()
				p = path + "." + f.ConcreteName(code)
				if !f.Accepts(code) {
					v.res.AddWithID(issue.DiagInvalidChoiceType, map[string]any{
						"type": code, "field": f.Name, "allowed": fmt.Sprint(f.Choices),
					}, p)
					continue
				}
			}
			if f.IsList() {
				p = fmt.Sprintf("%s[%d]", p, j)
			}
			v.value(val, f, p)
		}
	}
}

func (v *validation) value(val Value, f schema.Field, path string) {
	switch x := val.(type) {
	case Primitive:
		if err := x.Validate(); err != nil {
			v.res.AddWithID(issue.DiagTypeInvalidFormat, map[string]any{
				"value": primitive.Truncate(fmt.Sprint(x.MarshalTree())), "type": val.FHIRType(), "error": err.Error(),
			}, path)
			return
		}
	case Embedded:
		if r := x.Resource(); r != nil {
			v.composite(r, path)
		}
	case Composite:
		v.composite(x, path)
	}
	if f.Binding == nil {
		return
	}
	if cd, ok := val.(Coded); ok {
		codes, textOnly := cd.Codes()
		v.checker.Check(v.ctx, codes, textOnly, f.Binding, path, v.res)
	}
}

func (v *validation) missing(f schema.Field, path string) {
	name := f.Name
	if f.IsChoice() {
		name += "[x]"
	}
	v.res.AddWithID(issue.DiagMissingRequiredField, map[string]any{"field": name, "min": f.Min}, path+"."+name)
}
