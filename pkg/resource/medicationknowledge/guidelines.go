package medicationknowledge

import (
	"github.com/gofhir/models/pkg/datatype"
	"github.com/gofhir/models/pkg/record"
	"github.com/gofhir/models/pkg/terminology"
)

// AdministrationGuidelines is MedicationKnowledge.administrationGuidelines.
type AdministrationGuidelines struct {
	datatype.BackboneElement
	Dosage                 []GuidelineDosage
	Indication             record.Choice
	PatientCharacteristics []PatientCharacteristics
}

var guidelinesTable = datatype.BackboneTable("MedicationKnowledge.administrationGuidelines",
	func(g *AdministrationGuidelines) *datatype.BackboneElement { return &g.BackboneElement },
	record.List("dosage", func(g *AdministrationGuidelines) *[]GuidelineDosage { return &g.Dosage }),
	record.OneOf("indication", func(g *AdministrationGuidelines) *record.Choice { return &g.Indication },
		[]record.Alternative{record.Alt[datatype.CodeableConcept](), record.Alt[datatype.Reference]()}),
	record.List("patientCharacteristics", func(g *AdministrationGuidelines) *[]PatientCharacteristics {
		return &g.PatientCharacteristics
	}),
)

func (*AdministrationGuidelines) FHIRType() string          { return "MedicationKnowledge.administrationGuidelines" }
func (g *AdministrationGuidelines) Fields() record.FieldSet { return guidelinesTable.Bind(g) }

// GuidelineDosage is MedicationKnowledge.administrationGuidelines.dosage,
// a dosage regimen for one type of use.
type GuidelineDosage struct {
	datatype.BackboneElement
	Type   *datatype.CodeableConcept
	Dosage []datatype.Dosage
}

var guidelineDosageTable = datatype.BackboneTable("MedicationKnowledge.administrationGuidelines.dosage",
	func(d *GuidelineDosage) *datatype.BackboneElement { return &d.BackboneElement },
	record.Opt("type", func(d *GuidelineDosage) **datatype.CodeableConcept { return &d.Type }, record.Required),
	record.List("dosage", func(d *GuidelineDosage) *[]datatype.Dosage { return &d.Dosage }, record.Min(1)),
)

func (*GuidelineDosage) FHIRType() string          { return "MedicationKnowledge.administrationGuidelines.dosage" }
func (d *GuidelineDosage) Fields() record.FieldSet { return guidelineDosageTable.Bind(d) }

// PatientCharacteristics is
// MedicationKnowledge.administrationGuidelines.patientCharacteristics.
type PatientCharacteristics struct {
	datatype.BackboneElement
	Characteristic record.Choice
	Value          []datatype.String
}

var patientCharacteristicsTable = datatype.BackboneTable("MedicationKnowledge.administrationGuidelines.patientCharacteristics",
	func(p *PatientCharacteristics) *datatype.BackboneElement { return &p.BackboneElement },
	record.OneOf("characteristic", func(p *PatientCharacteristics) *record.Choice { return &p.Characteristic },
		[]record.Alternative{record.Alt[datatype.CodeableConcept](), record.Alt[datatype.Quantity]()},
		record.Required, record.Short("Specific characteristic that is relevant to the administration guideline")),
	record.List("value", func(p *PatientCharacteristics) *[]datatype.String { return &p.Value }),
)

func (*PatientCharacteristics) FHIRType() string          { return "MedicationKnowledge.administrationGuidelines.patientCharacteristics" }
func (p *PatientCharacteristics) Fields() record.FieldSet { return patientCharacteristicsTable.Bind(p) }

// MedicineClassification is MedicationKnowledge.medicineClassification.
type MedicineClassification struct {
	datatype.BackboneElement
	Type           *datatype.CodeableConcept
	Classification []datatype.CodeableConcept
}

var classificationTable = datatype.BackboneTable("MedicationKnowledge.medicineClassification",
	func(c *MedicineClassification) *datatype.BackboneElement { return &c.BackboneElement },
	record.Opt("type", func(c *MedicineClassification) **datatype.CodeableConcept { return &c.Type }, record.Required),
	record.List("classification", func(c *MedicineClassification) *[]datatype.CodeableConcept { return &c.Classification }),
)

func (*MedicineClassification) FHIRType() string          { return "MedicationKnowledge.medicineClassification" }
func (c *MedicineClassification) Fields() record.FieldSet { return classificationTable.Bind(c) }

// Packaging is MedicationKnowledge.packaging.
type Packaging struct {
	datatype.BackboneElement
	Type     *datatype.CodeableConcept
	Quantity *datatype.Quantity
}

var packagingTable = datatype.BackboneTable("MedicationKnowledge.packaging", func(p *Packaging) *datatype.BackboneElement { return &p.BackboneElement },
	record.Opt("type", func(p *Packaging) **datatype.CodeableConcept { return &p.Type }),
	record.Opt("quantity", func(p *Packaging) **datatype.Quantity { return &p.Quantity }),
)

func (*Packaging) FHIRType() string          { return "MedicationKnowledge.packaging" }
func (p *Packaging) Fields() record.FieldSet { return packagingTable.Bind(p) }

// DrugCharacteristic is MedicationKnowledge.drugCharacteristic, e.g. the
// colour, shape or imprint of the product.
type DrugCharacteristic struct {
	datatype.BackboneElement
	Type  *datatype.CodeableConcept
	Value record.Choice
}

var drugCharacteristicTable = datatype.BackboneTable("MedicationKnowledge.drugCharacteristic",
	func(d *DrugCharacteristic) *datatype.BackboneElement { return &d.BackboneElement },
	record.Opt("type", func(d *DrugCharacteristic) **datatype.CodeableConcept { return &d.Type },
		record.Bind(datatype.Example, terminology.MedicationKnowledgeCharacteristic)),
	record.OneOf("value", func(d *DrugCharacteristic) *record.Choice { return &d.Value },
		[]record.Alternative{
			record.Alt[datatype.CodeableConcept](), record.Alt[datatype.String](),
			record.Alt[datatype.Quantity](), record.Alt[datatype.Base64Binary](),
		}),
)

func (*DrugCharacteristic) FHIRType() string          { return "MedicationKnowledge.drugCharacteristic" }
func (d *DrugCharacteristic) Fields() record.FieldSet { return drugCharacteristicTable.Bind(d) }

// Kinetics is MedicationKnowledge.kinetics.
type Kinetics struct {
	datatype.BackboneElement
	AreaUnderCurve []datatype.Quantity
	LethalDose50   []datatype.Quantity
	HalfLifePeriod *datatype.Duration
}

var kineticsTable = datatype.BackboneTable("MedicationKnowledge.kinetics", func(k *Kinetics) *datatype.BackboneElement { return &k.BackboneElement },
	record.List("areaUnderCurve", func(k *Kinetics) *[]datatype.Quantity { return &k.AreaUnderCurve }),
	record.List("lethalDose50", func(k *Kinetics) *[]datatype.Quantity { return &k.LethalDose50 }),
	record.Opt("halfLifePeriod", func(k *Kinetics) **datatype.Duration { return &k.HalfLifePeriod }),
)

func (*Kinetics) FHIRType() string          { return "MedicationKnowledge.kinetics" }
func (k *Kinetics) Fields() record.FieldSet { return kineticsTable.Bind(k) }
