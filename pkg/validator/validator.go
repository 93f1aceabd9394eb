// Package validator checks serialized FHIR records: it decodes them into
// typed records, validates fields and code bindings, and evaluates the
// FHIRPath invariants declared on each type.
package validator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofhir/fhirpath/funcs"
	"golang.org/x/sync/errgroup"

	"github.com/gofhir/models/pkg/constraint"
	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/location"
	"github.com/gofhir/models/pkg/logger"
	"github.com/gofhir/models/pkg/record"
	"github.com/gofhir/models/pkg/reference"
	"github.com/gofhir/models/pkg/schema"
	"github.com/gofhir/models/pkg/terminology"
	"github.com/gofhir/models/pkg/tree"
	"github.com/gofhir/models/pkg/xmlfmt"

	// Resource types validated by default.
	_ "github.com/gofhir/models/pkg/resource/claim"
	_ "github.com/gofhir/models/pkg/resource/claimresponse"
	_ "github.com/gofhir/models/pkg/resource/medicationknowledge"
)

func init() {
	// Disable FHIRPath trace() output by default.
	funcs.SetTraceLogger(funcs.NullTraceLogger{})
}

// Validator validates FHIR records against the registered types.
type Validator struct {
	config              *Config
	constraintValidator *constraint.Validator
	referenceValidator  *reference.Validator
}

// Config holds validator configuration.
type Config struct {
	Unknown             record.UnknownPolicy // Keys that are not declared fields
	StrictMode          bool                 // Warnings become errors
	Constraints         bool                 // Evaluate FHIRPath invariants
	References          bool                 // Check literal reference format and local targets
	Workers             int                  // Concurrency of ValidateBatch
	TerminologyProvider terminology.Provider // Optional external terminology provider
	TerminologyCache    int                  // Provider answers kept; 0 disables caching
	Registry            *schema.Registry     // Types invariants are looked up in
	Metrics             *Metrics             // Optional; every result is recorded
}

// Option is a functional option for configuring the validator.
type Option func(*Config)

// WithUnknownPolicy sets what happens to keys that are not declared fields.
func WithUnknownPolicy(p record.UnknownPolicy) Option {
	return func(c *Config) {
		c.Unknown = p
	}
}

// WithStrictMode enables strict mode (warnings become errors).
func WithStrictMode(strict bool) Option {
	return func(c *Config) {
		c.StrictMode = strict
	}
}

// WithConstraints enables or disables FHIRPath invariant evaluation.
func WithConstraints(enabled bool) Option {
	return func(c *Config) {
		c.Constraints = enabled
	}
}

// WithReferences enables or disables Reference checks.
func WithReferences(enabled bool) Option {
	return func(c *Config) {
		c.References = enabled
	}
}

// WithWorkers bounds the number of documents ValidateBatch checks at once.
func WithWorkers(n int) Option {
	return func(c *Config) {
		c.Workers = n
	}
}

// WithTerminologyProvider sets an external terminology provider for codes
// in systems that cannot be enumerated locally (e.g., SNOMED CT).
func WithTerminologyProvider(provider terminology.Provider) Option {
	return func(c *Config) {
		c.TerminologyProvider = provider
	}
}

// WithTerminologyCache caches up to size answers from the terminology
// provider.
func WithTerminologyCache(size int) Option {
	return func(c *Config) {
		c.TerminologyCache = size
	}
}

// WithRegistry selects the type registry used for invariants.
func WithRegistry(reg *schema.Registry) Option {
	return func(c *Config) {
		c.Registry = reg
	}
}

// WithMetrics records every validation result in m.
func WithMetrics(m *Metrics) Option {
	return func(c *Config) {
		c.Metrics = m
	}
}

// New creates a new Validator with the given options.
func New(opts ...Option) (*Validator, error) {
	config := &Config{
		Constraints: true,
		References:  true,
		Workers:     4,
		Registry:    schema.Default(),
	}
	for _, opt := range opts {
		opt(config)
	}
	if config.Workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", config.Workers)
	}
	if config.Registry == nil {
		return nil, errors.New("registry must not be nil")
	}

	logger.Debug("Validator: unknown=%s strict=%t constraints=%t references=%t workers=%d",
		config.Unknown, config.StrictMode, config.Constraints, config.References, config.Workers)
	if config.TerminologyProvider != nil {
		logger.Debug("  External terminology provider configured (cache %d)", config.TerminologyCache)
		if config.TerminologyCache > 0 {
			config.TerminologyProvider = terminology.NewCachedProvider(config.TerminologyProvider, config.TerminologyCache)
		}
	}

	return &Validator{
		config:              config,
		constraintValidator: constraint.New(constraint.WithRegistry(config.Registry)),
		referenceValidator:  reference.New(config.Registry),
	}, nil
}

// Validate checks a serialized resource. JSON and XML are both accepted;
// a document whose first non-blank byte is '<' is read as XML. Problems
// with the document are reported as issues; the error is reserved for a
// cancelled context. Issues found in JSON input carry source locations.
func (v *Validator) Validate(ctx context.Context, data []byte) (*issue.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	result := issue.NewResult()
	result.Stats = &issue.Stats{ResourceSize: len(data)}
	defer v.finish(result, start)

	v.check(ctx, data, result)
	if !isXML(data) {
		result.EnrichLocations(location.Locator(data))
	}
	return result, nil
}

func (v *Validator) check(ctx context.Context, data []byte, result *issue.Result) {
	obj, ok := v.parse(data, result)
	if !ok {
		return
	}

	resourceType, _ := obj.GetString("resourceType")
	if resourceType == "" {
		result.AddErrorWithID(issue.DiagStructureDecode, map[string]any{"error": "Missing resourceType"})
		return
	}
	result.Stats.ResourceType = resourceType
	if _, err := record.New(resourceType); err != nil {
		result.AddWithID(issue.DiagUnknownResource, map[string]any{"type": resourceType}, "resourceType")
		return
	}

	// Missing required fields are left to record validation.
	r, err := record.Decode(obj, record.Unknown(v.config.Unknown))
	for _, fe := range record.FieldErrors(err) {
		addFieldError(fe, result)
	}
	logger.Debug("Validating %s (%d bytes)", resourceType, len(data))

	v.validate(ctx, r, result)
}

// ValidateRecord checks an in-memory record.
func (v *Validator) ValidateRecord(ctx context.Context, r record.Composite) (*issue.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	result := issue.NewResult()
	result.Stats = &issue.Stats{}
	defer v.finish(result, start)
	if r == nil {
		result.AddErrorWithID(issue.DiagStructureDecode, map[string]any{"error": "nil record"})
		return result, nil
	}
	result.Stats.ResourceType = r.Fields().Type().Name
	v.validate(ctx, r, result)
	return result, nil
}

func (v *Validator) finish(result *issue.Result, start time.Time) {
	result.Stats.Duration = time.Since(start).Nanoseconds()
	if v.config.Metrics != nil {
		v.config.Metrics.Record(result)
	}
}

// ValidateBatch checks independent documents concurrently. Results are
// returned in input order.
func (v *Validator) ValidateBatch(ctx context.Context, docs [][]byte) ([]*issue.Result, error) {
	results := make([]*issue.Result, len(docs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(v.config.Workers)
	for i, doc := range docs {
		g.Go(func() error {
			res, err := v.Validate(ctx, doc)
			if err != nil {
				return fmt.Errorf("document %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ValidateJSON validates a FHIR resource from a JSON string.
func (v *Validator) ValidateJSON(ctx context.Context, jsonStr string) (*issue.Result, error) {
	return v.Validate(ctx, []byte(jsonStr))
}

// Config returns the validator configuration.
func (v *Validator) Config() *Config {
	return v.config
}

func (v *Validator) parse(data []byte, result *issue.Result) (*tree.Object, bool) {
	if isXML(data) {
		obj, err := xmlfmt.UnmarshalWith(v.config.Registry, bytes.TrimSpace(data))
		if err != nil {
			result.AddWithID(issue.DiagStructureDecode, map[string]any{"error": err.Error()})
			return nil, false
		}
		return obj, true
	}
	obj, err := tree.ParseObject(data)
	if err != nil {
		result.AddWithID(issue.DiagStructureInvalidJSON, map[string]any{"error": err.Error()})
		return nil, false
	}
	return obj, true
}

func isXML(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '<'
}

func (v *Validator) validate(ctx context.Context, r record.Composite, result *issue.Result) {
	recResult := record.Validate(r,
		record.WithContext(ctx),
		record.WithProvider(v.config.TerminologyProvider),
	)
	result.Issues = append(result.Issues, recResult.Issues...)
	result.Stats.FieldsChecked += recResult.Stats.FieldsChecked

	if v.config.References {
		v.referenceValidator.ValidateRecord(r, result)
	}
	if v.config.Constraints {
		v.constraintValidator.ValidateRecord(r, result)
	}

	if v.config.StrictMode {
		for i := range result.Issues {
			if result.Issues[i].Severity == issue.SeverityWarning {
				result.Issues[i].Severity = issue.SeverityError
			}
		}
	}
	result.Sort()
}

func addFieldError(fe *record.FieldError, result *issue.Result) {
	switch {
	case errors.Is(fe, record.ErrUnknownField):
		result.AddWithID(issue.DiagUnknownElement, map[string]any{"element": fe.Field}, fe.Path)
	default:
		result.AddWithID(issue.DiagStructureDecode, map[string]any{"error": fe.Error()}, fe.Path)
	}
}
