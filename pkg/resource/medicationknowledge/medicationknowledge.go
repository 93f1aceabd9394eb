// Package medicationknowledge is the R4 MedicationKnowledge resource:
// information about a medication used in support of clinical decision
// making and formulary management.
package medicationknowledge

import (
	"github.com/gofhir/models/pkg/datatype"
	"github.com/gofhir/models/pkg/record"
	"github.com/gofhir/models/pkg/terminology"
)

// ResourceType is the resourceType of a MedicationKnowledge.
const ResourceType = "MedicationKnowledge"

// MedicationKnowledge describes a medication.
type MedicationKnowledge struct {
	datatype.DomainResource
	Code                       *datatype.CodeableConcept
	Status                     *datatype.Code
	Manufacturer               *datatype.Reference
	DoseForm                   *datatype.CodeableConcept
	Amount                     *datatype.Quantity
	Synonym                    []datatype.String
	RelatedMedicationKnowledge []RelatedMedicationKnowledge
	AssociatedMedication       []datatype.Reference
	ProductType                []datatype.CodeableConcept
	Monograph                  []Monograph
	Ingredient                 []Ingredient
	PreparationInstruction     *datatype.Markdown
	IntendedRoute              []datatype.CodeableConcept
	Cost                       []Cost
	MonitoringProgram          []MonitoringProgram
	AdministrationGuidelines   []AdministrationGuidelines
	MedicineClassification     []MedicineClassification
	Packaging                  *Packaging
	DrugCharacteristic         []DrugCharacteristic
	Contraindication           []datatype.Reference
	Regulatory                 []Regulatory
	Kinetics                   []Kinetics
}

var table = datatype.ResourceTable(ResourceType, func(m *MedicationKnowledge) *datatype.DomainResource { return &m.DomainResource },
	record.Opt("code", func(m *MedicationKnowledge) **datatype.CodeableConcept { return &m.Code },
		record.Bind(datatype.Example, terminology.MedicationCodes),
		record.Short("Code that identifies this medication")),
	record.Opt("status", func(m *MedicationKnowledge) **datatype.Code { return &m.Status },
		record.Bind(datatype.Required, terminology.MedicationKnowledgeStatus),
		record.Short("active | inactive | entered-in-error")),
	record.Opt("manufacturer", func(m *MedicationKnowledge) **datatype.Reference { return &m.Manufacturer }),
	record.Opt("doseForm", func(m *MedicationKnowledge) **datatype.CodeableConcept { return &m.DoseForm },
		record.Bind(datatype.Example, terminology.MedicationFormCodes)),
	record.Opt("amount", func(m *MedicationKnowledge) **datatype.Quantity { return &m.Amount },
		record.Short("Amount of drug in package")),
	record.List("synonym", func(m *MedicationKnowledge) *[]datatype.String { return &m.Synonym }),
	record.List("relatedMedicationKnowledge", func(m *MedicationKnowledge) *[]RelatedMedicationKnowledge {
		return &m.RelatedMedicationKnowledge
	}),
	record.List("associatedMedication", func(m *MedicationKnowledge) *[]datatype.Reference { return &m.AssociatedMedication }),
	record.List("productType", func(m *MedicationKnowledge) *[]datatype.CodeableConcept { return &m.ProductType }),
	record.List("monograph", func(m *MedicationKnowledge) *[]Monograph { return &m.Monograph }),
	record.List("ingredient", func(m *MedicationKnowledge) *[]Ingredient { return &m.Ingredient }),
	record.Opt("preparationInstruction", func(m *MedicationKnowledge) **datatype.Markdown { return &m.PreparationInstruction }),
	record.List("intendedRoute", func(m *MedicationKnowledge) *[]datatype.CodeableConcept { return &m.IntendedRoute },
		record.Bind(datatype.Example, terminology.RouteCodes)),
	record.List("cost", func(m *MedicationKnowledge) *[]Cost { return &m.Cost }),
	record.List("monitoringProgram", func(m *MedicationKnowledge) *[]MonitoringProgram { return &m.MonitoringProgram }),
	record.List("administrationGuidelines", func(m *MedicationKnowledge) *[]AdministrationGuidelines {
		return &m.AdministrationGuidelines
	}),
	record.List("medicineClassification", func(m *MedicationKnowledge) *[]MedicineClassification {
		return &m.MedicineClassification
	}),
	record.Opt("packaging", func(m *MedicationKnowledge) **Packaging { return &m.Packaging }),
	record.List("drugCharacteristic", func(m *MedicationKnowledge) *[]DrugCharacteristic { return &m.DrugCharacteristic }),
	record.List("contraindication", func(m *MedicationKnowledge) *[]datatype.Reference { return &m.Contraindication }),
	record.List("regulatory", func(m *MedicationKnowledge) *[]Regulatory { return &m.Regulatory }),
	record.List("kinetics", func(m *MedicationKnowledge) *[]Kinetics { return &m.Kinetics }),
)

func (*MedicationKnowledge) FHIRType() string          { return ResourceType }
func (*MedicationKnowledge) ResourceType() string      { return ResourceType }
func (m *MedicationKnowledge) Fields() record.FieldSet { return table.Bind(m) }

// Parse decodes a MedicationKnowledge from JSON.
func Parse(data []byte, opts ...record.DecodeOption) (*MedicationKnowledge, error) {
	m := &MedicationKnowledge{}
	if err := record.UnmarshalJSON(data, m, opts...); err != nil {
		return m, err
	}
	return m, nil
}

// ActiveIngredients returns the ingredients flagged as active.
func (m *MedicationKnowledge) ActiveIngredients() []*Ingredient {
	var out []*Ingredient
	for i := range m.Ingredient {
		if a := m.Ingredient[i].IsActive; a != nil && bool(*a) {
			out = append(out, &m.Ingredient[i])
		}
	}
	return out
}

// Characteristic returns the value of the drug characteristic whose type
// carries the given medicationknowledge-characteristic code.
func (m *MedicationKnowledge) Characteristic(code string) (record.Value, bool) {
	for i := range m.DrugCharacteristic {
		dc := &m.DrugCharacteristic[i]
		if dc.Type != nil && dc.Type.HasCode(terminology.SystemMedKnowledgeChar, code) && dc.Value.Value != nil {
			return dc.Value.Value, true
		}
	}
	return nil, false
}

// RelatedMedicationKnowledge is MedicationKnowledge.relatedMedicationKnowledge.
type RelatedMedicationKnowledge struct {
	datatype.BackboneElement
	Type      *datatype.CodeableConcept
	Reference []datatype.Reference
}

var relatedTable = datatype.BackboneTable("MedicationKnowledge.relatedMedicationKnowledge",
	func(r *RelatedMedicationKnowledge) *datatype.BackboneElement { return &r.BackboneElement },
	record.Opt("type", func(r *RelatedMedicationKnowledge) **datatype.CodeableConcept { return &r.Type },
		record.Required, record.Short("Category of medicationKnowledge")),
	record.List("reference", func(r *RelatedMedicationKnowledge) *[]datatype.Reference { return &r.Reference }, record.Min(1)),
)

func (*RelatedMedicationKnowledge) FHIRType() string          { return "MedicationKnowledge.relatedMedicationKnowledge" }
func (r *RelatedMedicationKnowledge) Fields() record.FieldSet { return relatedTable.Bind(r) }

// Monograph is MedicationKnowledge.monograph, associated documentation.
type Monograph struct {
	datatype.BackboneElement
	Type   *datatype.CodeableConcept
	Source *datatype.Reference
}

var monographTable = datatype.BackboneTable("MedicationKnowledge.monograph", func(m *Monograph) *datatype.BackboneElement { return &m.BackboneElement },
	record.Opt("type", func(m *Monograph) **datatype.CodeableConcept { return &m.Type },
		record.Bind(datatype.Example, terminology.MedicationKnowledgeMonographType)),
	record.Opt("source", func(m *Monograph) **datatype.Reference { return &m.Source }),
)

func (*Monograph) FHIRType() string          { return "MedicationKnowledge.monograph" }
func (m *Monograph) Fields() record.FieldSet { return monographTable.Bind(m) }

// Ingredient is MedicationKnowledge.ingredient.
type Ingredient struct {
	datatype.BackboneElement
	Item     record.Choice
	IsActive *datatype.Boolean
	Strength *datatype.Ratio
}

var ingredientTable = datatype.BackboneTable("MedicationKnowledge.ingredient", func(i *Ingredient) *datatype.BackboneElement { return &i.BackboneElement },
	record.OneOf("item", func(i *Ingredient) *record.Choice { return &i.Item },
		[]record.Alternative{record.Alt[datatype.CodeableConcept](), record.Alt[datatype.Reference]()},
		record.Required, record.Short("Medication(s) or substance(s) contained in the medication")),
	record.Opt("isActive", func(i *Ingredient) **datatype.Boolean { return &i.IsActive }),
	record.Opt("strength", func(i *Ingredient) **datatype.Ratio { return &i.Strength }),
)

func (*Ingredient) FHIRType() string          { return "MedicationKnowledge.ingredient" }
func (i *Ingredient) Fields() record.FieldSet { return ingredientTable.Bind(i) }

// Cost is MedicationKnowledge.cost, the pricing of the medication.
type Cost struct {
	datatype.BackboneElement
	Type   *datatype.CodeableConcept
	Source *datatype.String
	Cost   *datatype.Money
}

var costTable = datatype.BackboneTable("MedicationKnowledge.cost", func(c *Cost) *datatype.BackboneElement { return &c.BackboneElement },
	record.Opt("type", func(c *Cost) **datatype.CodeableConcept { return &c.Type }, record.Required),
	record.Opt("source", func(c *Cost) **datatype.String { return &c.Source }),
	record.Opt("cost", func(c *Cost) **datatype.Money { return &c.Cost }, record.Required),
)

func (*Cost) FHIRType() string          { return "MedicationKnowledge.cost" }
func (c *Cost) Fields() record.FieldSet { return costTable.Bind(c) }

// MonitoringProgram is MedicationKnowledge.monitoringProgram.
type MonitoringProgram struct {
	datatype.BackboneElement
	Type *datatype.CodeableConcept
	Name *datatype.String
}

var monitoringProgramTable = datatype.BackboneTable("MedicationKnowledge.monitoringProgram",
	func(p *MonitoringProgram) *datatype.BackboneElement { return &p.BackboneElement },
	record.Opt("type", func(p *MonitoringProgram) **datatype.CodeableConcept { return &p.Type }),
	record.Opt("name", func(p *MonitoringProgram) **datatype.String { return &p.Name }),
)

func (*MonitoringProgram) FHIRType() string          { return "MedicationKnowledge.monitoringProgram" }
func (p *MonitoringProgram) Fields() record.FieldSet { return monitoringProgramTable.Bind(p) }
