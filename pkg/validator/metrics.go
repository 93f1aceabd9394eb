package validator

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofhir/models/pkg/issue"
)

// Metrics accumulates validation counts and timings using atomic
// operations. All methods are safe for concurrent use, so one Metrics can
// be shared by the workers of ValidateBatch.
type Metrics struct {
	validationsTotal atomic.Uint64
	validationsValid atomic.Uint64

	// Timing (stored as nanoseconds)
	validationTimeTotal atomic.Uint64
	validationTimeMin   atomic.Uint64
	validationTimeMax   atomic.Uint64

	// Issue counts by severity
	errorsTotal   atomic.Uint64
	warningsTotal atomic.Uint64
	infosTotal    atomic.Uint64

	resources sync.Map // map[string]*resourceMetrics
}

type resourceMetrics struct {
	validations atomic.Uint64
	totalTime   atomic.Uint64 // nanoseconds
	issuesFound atomic.Uint64
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	m := &Metrics{}
	// The first recorded duration becomes the minimum.
	m.validationTimeMin.Store(^uint64(0))
	return m
}

// Record adds one validation result. A result is valid when it carries no
// error or fatal issues.
func (m *Metrics) Record(res *issue.Result) {
	var (
		duration     time.Duration
		resourceType string
	)
	if res.Stats != nil {
		duration = time.Duration(res.Stats.Duration)
		resourceType = res.Stats.ResourceType
	}
	m.RecordValidation(duration, !res.HasErrors())
	for _, iss := range res.Issues {
		m.RecordIssue(iss.Severity)
	}
	if resourceType != "" {
		rm := m.resource(resourceType)
		rm.validations.Add(1)
		rm.totalTime.Add(uint64(duration.Nanoseconds())) //nolint:gosec // durations are never negative
		rm.issuesFound.Add(uint64(len(res.Issues)))
	}
}

// RecordValidation records a completed validation.
func (m *Metrics) RecordValidation(duration time.Duration, valid bool) {
	m.validationsTotal.Add(1)
	if valid {
		m.validationsValid.Add(1)
	}

	ns := uint64(duration.Nanoseconds()) //nolint:gosec // durations are never negative
	m.validationTimeTotal.Add(ns)

	for {
		old := m.validationTimeMin.Load()
		if ns >= old || m.validationTimeMin.CompareAndSwap(old, ns) {
			break
		}
	}
	for {
		old := m.validationTimeMax.Load()
		if ns <= old || m.validationTimeMax.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordIssue records an issue based on severity.
func (m *Metrics) RecordIssue(severity issue.Severity) {
	switch severity {
	case issue.SeverityError, issue.SeverityFatal:
		m.errorsTotal.Add(1)
	case issue.SeverityWarning:
		m.warningsTotal.Add(1)
	case issue.SeverityInformation:
		m.infosTotal.Add(1)
	}
}

func (m *Metrics) resource(name string) *resourceMetrics {
	if v, ok := m.resources.Load(name); ok {
		return v.(*resourceMetrics)
	}
	actual, _ := m.resources.LoadOrStore(name, &resourceMetrics{})
	return actual.(*resourceMetrics)
}

// ValidationsTotal returns the total number of validations performed.
func (m *Metrics) ValidationsTotal() uint64 {
	return m.validationsTotal.Load()
}

// ValidationsValid returns the number of validations without errors.
func (m *Metrics) ValidationsValid() uint64 {
	return m.validationsValid.Load()
}

// ValidationRate returns the share of valid validations (0.0 to 1.0).
func (m *Metrics) ValidationRate() float64 {
	total := m.validationsTotal.Load()
	if total == 0 {
		return 0
	}
	return float64(m.validationsValid.Load()) / float64(total)
}

// AverageValidationTime returns the average validation duration.
func (m *Metrics) AverageValidationTime() time.Duration {
	total := m.validationsTotal.Load()
	if total == 0 {
		return 0
	}
	return time.Duration(m.validationTimeTotal.Load() / total) //nolint:gosec // nanoseconds within int64 range
}

// MinValidationTime returns the minimum validation duration.
func (m *Metrics) MinValidationTime() time.Duration {
	minVal := m.validationTimeMin.Load()
	if minVal == ^uint64(0) {
		return 0
	}
	return time.Duration(minVal) //nolint:gosec // nanoseconds within int64 range
}

// MaxValidationTime returns the maximum validation duration.
func (m *Metrics) MaxValidationTime() time.Duration {
	return time.Duration(m.validationTimeMax.Load()) //nolint:gosec // nanoseconds within int64 range
}

// ErrorsTotal returns the total error issues found.
func (m *Metrics) ErrorsTotal() uint64 {
	return m.errorsTotal.Load()
}

// WarningsTotal returns the total warning issues found.
func (m *Metrics) WarningsTotal() uint64 {
	return m.warningsTotal.Load()
}

// InfosTotal returns the total informational issues found.
func (m *Metrics) InfosTotal() uint64 {
	return m.infosTotal.Load()
}

// ResourceStats summarises the validations of one resource type.
type ResourceStats struct {
	ResourceType string        `json:"resource_type" yaml:"resourceType"`
	Validations  uint64        `json:"validations" yaml:"validations"`
	TotalTime    time.Duration `json:"total_time_ns" yaml:"totalTimeNs"`
	AvgTime      time.Duration `json:"avg_time_ns" yaml:"avgTimeNs"`
	IssuesFound  uint64        `json:"issues_found" yaml:"issuesFound"`
}

// ResourceStats returns statistics for one resource type.
func (m *Metrics) ResourceStats(resourceType string) (ResourceStats, bool) {
	v, ok := m.resources.Load(resourceType)
	if !ok {
		return ResourceStats{ResourceType: resourceType}, false
	}
	return v.(*resourceMetrics).stats(resourceType), true
}

// AllResourceStats returns statistics for every resource type seen, sorted
// by name.
func (m *Metrics) AllResourceStats() []ResourceStats {
	var stats []ResourceStats
	m.resources.Range(func(key, value any) bool {
		stats = append(stats, value.(*resourceMetrics).stats(key.(string)))
		return true
	})
	sort.Slice(stats, func(i, j int) bool { return stats[i].ResourceType < stats[j].ResourceType })
	return stats
}

func (rm *resourceMetrics) stats(name string) ResourceStats {
	n := rm.validations.Load()
	total := rm.totalTime.Load()
	var avg time.Duration
	if n > 0 {
		avg = time.Duration(total / n) //nolint:gosec // nanoseconds within int64 range
	}
	return ResourceStats{
		ResourceType: name,
		Validations:  n,
		TotalTime:    time.Duration(total), //nolint:gosec // nanoseconds within int64 range
		AvgTime:      avg,
		IssuesFound:  rm.issuesFound.Load(),
	}
}

// Snapshot represents a point-in-time snapshot of all metrics.
type Snapshot struct {
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`

	ValidationsTotal uint64  `json:"validations_total" yaml:"validationsTotal"`
	ValidationsValid uint64  `json:"validations_valid" yaml:"validationsValid"`
	ValidationRate   float64 `json:"validation_rate" yaml:"validationRate"`

	AvgValidationTimeNs uint64 `json:"avg_validation_time_ns" yaml:"avgValidationTimeNs"`
	MinValidationTimeNs uint64 `json:"min_validation_time_ns" yaml:"minValidationTimeNs"`
	MaxValidationTimeNs uint64 `json:"max_validation_time_ns" yaml:"maxValidationTimeNs"`

	ErrorsTotal   uint64 `json:"errors_total" yaml:"errorsTotal"`
	WarningsTotal uint64 `json:"warnings_total" yaml:"warningsTotal"`
	InfosTotal    uint64 `json:"infos_total" yaml:"infosTotal"`

	Resources []ResourceStats `json:"resources,omitempty" yaml:"resources,omitempty"`
}

// Snapshot returns a point-in-time snapshot of all metrics.
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		Timestamp:           time.Now(),
		ValidationsTotal:    m.ValidationsTotal(),
		ValidationsValid:    m.ValidationsValid(),
		ValidationRate:      m.ValidationRate(),
		AvgValidationTimeNs: uint64(m.AverageValidationTime().Nanoseconds()), //nolint:gosec // durations are never negative
		MinValidationTimeNs: uint64(m.MinValidationTime().Nanoseconds()),     //nolint:gosec // durations are never negative
		MaxValidationTimeNs: m.validationTimeMax.Load(),
		ErrorsTotal:         m.ErrorsTotal(),
		WarningsTotal:       m.WarningsTotal(),
		InfosTotal:          m.InfosTotal(),
		Resources:           m.AllResourceStats(),
	}
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.validationsTotal.Store(0)
	m.validationsValid.Store(0)
	m.validationTimeTotal.Store(0)
	m.validationTimeMin.Store(^uint64(0))
	m.validationTimeMax.Store(0)
	m.errorsTotal.Store(0)
	m.warningsTotal.Store(0)
	m.infosTotal.Store(0)
	m.resources.Range(func(key, _ any) bool {
		m.resources.Delete(key)
		return true
	})
}
