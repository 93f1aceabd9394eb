package medicationknowledge

import (
	"github.com/gofhir/models/pkg/datatype"
	"github.com/gofhir/models/pkg/record"
)

// Regulatory is MedicationKnowledge.regulatory, the regulatory status
// under one authority.
type Regulatory struct {
	datatype.BackboneElement
	RegulatoryAuthority *datatype.Reference
	Substitution        []Substitution
	Schedule            []Schedule
	MaxDispense         *MaxDispense
}

var regulatoryTable = datatype.BackboneTable("MedicationKnowledge.regulatory", func(r *Regulatory) *datatype.BackboneElement { return &r.BackboneElement },
	record.Opt("regulatoryAuthority", func(r *Regulatory) **datatype.Reference { return &r.RegulatoryAuthority },
		record.Required, record.Short("Specifies the authority of the regulation")),
	record.List("substitution", func(r *Regulatory) *[]Substitution { return &r.Substitution }),
	record.List("schedule", func(r *Regulatory) *[]Schedule { return &r.Schedule }),
	record.Opt("maxDispense", func(r *Regulatory) **MaxDispense { return &r.MaxDispense }),
)

func (*Regulatory) FHIRType() string          { return "MedicationKnowledge.regulatory" }
func (r *Regulatory) Fields() record.FieldSet { return regulatoryTable.Bind(r) }

// SubstitutionAllowed reports whether the authority allows substituting
// the given type of substitution. The second result is false when the
// authority says nothing about it.
func (r *Regulatory) SubstitutionAllowed(system, code string) (allowed, known bool) {
	for i := range r.Substitution {
		s := &r.Substitution[i]
		if s.Type != nil && s.Type.HasCode(system, code) && s.Allowed != nil {
			return bool(*s.Allowed), true
		}
	}
	return false, false
}

// Substitution is MedicationKnowledge.regulatory.substitution.
type Substitution struct {
	datatype.BackboneElement
	Type    *datatype.CodeableConcept
	Allowed *datatype.Boolean
}

var substitutionTable = datatype.BackboneTable("MedicationKnowledge.regulatory.substitution",
	func(s *Substitution) *datatype.BackboneElement { return &s.BackboneElement },
	record.Opt("type", func(s *Substitution) **datatype.CodeableConcept { return &s.Type }, record.Required),
	record.Opt("allowed", func(s *Substitution) **datatype.Boolean { return &s.Allowed }, record.Required),
)

func (*Substitution) FHIRType() string          { return "MedicationKnowledge.regulatory.substitution" }
func (s *Substitution) Fields() record.FieldSet { return substitutionTable.Bind(s) }

// Schedule is MedicationKnowledge.regulatory.schedule.
type Schedule struct {
	datatype.BackboneElement
	Schedule *datatype.CodeableConcept
}

var scheduleTable = datatype.BackboneTable("MedicationKnowledge.regulatory.schedule",
	func(s *Schedule) *datatype.BackboneElement { return &s.BackboneElement },
	record.Opt("schedule", func(s *Schedule) **datatype.CodeableConcept { return &s.Schedule }, record.Required),
)

func (*Schedule) FHIRType() string          { return "MedicationKnowledge.regulatory.schedule" }
func (s *Schedule) Fields() record.FieldSet { return scheduleTable.Bind(s) }

// MaxDispense is MedicationKnowledge.regulatory.maxDispense.
type MaxDispense struct {
	datatype.BackboneElement
	Quantity *datatype.Quantity
	Period   *datatype.Duration
}

var maxDispenseTable = datatype.BackboneTable("MedicationKnowledge.regulatory.maxDispense",
	func(m *MaxDispense) *datatype.BackboneElement { return &m.BackboneElement },
	record.Opt("quantity", func(m *MaxDispense) **datatype.Quantity { return &m.Quantity }, record.Required),
	record.Opt("period", func(m *MaxDispense) **datatype.Duration { return &m.Period }),
)

func (*MaxDispense) FHIRType() string          { return "MedicationKnowledge.regulatory.maxDispense" }
func (m *MaxDispense) Fields() record.FieldSet { return maxDispenseTable.Bind(m) }
