// Package claim is the R4 Claim resource: a provider's request for
// reimbursement, pre-authorization or pre-determination.
package claim

import (
	"github.com/gofhir/models/pkg/datatype"
	"github.com/gofhir/models/pkg/record"
	"github.com/gofhir/models/pkg/terminology"
)

// ResourceType is the resourceType of a Claim.
const ResourceType = "Claim"

// Claim is a request for reimbursement.
type Claim struct {
	datatype.DomainResource
	Identifier           []datatype.Identifier
	Status               *datatype.Code
	Type                 *datatype.CodeableConcept
	SubType              *datatype.CodeableConcept
	Use                  *datatype.Code
	Patient              *datatype.Reference
	BillablePeriod       *datatype.Period
	Created              *datatype.DateTime
	Enterer              *datatype.Reference
	Insurer              *datatype.Reference
	Provider             *datatype.Reference
	Priority             *datatype.CodeableConcept
	FundsReserve         *datatype.CodeableConcept
	Related              []Related
	Prescription         *datatype.Reference
	OriginalPrescription *datatype.Reference
	Payee                *Payee
	Referral             *datatype.Reference
	Facility             *datatype.Reference
	CareTeam             []CareTeam
	SupportingInfo       []SupportingInfo
	Diagnosis            []Diagnosis
	Procedure            []Procedure
	Insurance            []Insurance
	Accident             *Accident
	Item                 []Item
	Total                *datatype.Money
}

var table = datatype.ResourceTable(ResourceType, func(c *Claim) *datatype.DomainResource { return &c.DomainResource },
	record.List("identifier", func(c *Claim) *[]datatype.Identifier { return &c.Identifier },
		record.Short("Business Identifier for claim")),
	record.Opt("status", func(c *Claim) **datatype.Code { return &c.Status },
		record.Required, record.Bind(datatype.Required, terminology.FMStatus),
		record.Short("active | cancelled | draft | entered-in-error")),
	record.Opt("type", func(c *Claim) **datatype.CodeableConcept { return &c.Type },
		record.Required, record.Bind(datatype.Extensible, terminology.ClaimType),
		record.Short("Category or discipline")),
	record.Opt("subType", func(c *Claim) **datatype.CodeableConcept { return &c.SubType },
		record.Bind(datatype.Example, terminology.ClaimSubType)),
	record.Opt("use", func(c *Claim) **datatype.Code { return &c.Use },
		record.Required, record.Bind(datatype.Required, terminology.ClaimUse),
		record.Short("claim | preauthorization | predetermination")),
	record.Opt("patient", func(c *Claim) **datatype.Reference { return &c.Patient },
		record.Required, record.Short("The recipient of the products and services")),
	record.Opt("billablePeriod", func(c *Claim) **datatype.Period { return &c.BillablePeriod }),
	record.Opt("created", func(c *Claim) **datatype.DateTime { return &c.Created },
		record.Required, record.Short("Resource creation date")),
	record.Opt("enterer", func(c *Claim) **datatype.Reference { return &c.Enterer }),
	record.Opt("insurer", func(c *Claim) **datatype.Reference { return &c.Insurer }),
	record.Opt("provider", func(c *Claim) **datatype.Reference { return &c.Provider },
		record.Required, record.Short("Party responsible for the claim")),
	record.Opt("priority", func(c *Claim) **datatype.CodeableConcept { return &c.Priority },
		record.Required, record.Bind(datatype.Example, terminology.ProcessPriority),
		record.Short("Desired processing urgency")),
	record.Opt("fundsReserve", func(c *Claim) **datatype.CodeableConcept { return &c.FundsReserve },
		record.Bind(datatype.Example, terminology.FundsReserve)),
	record.List("related", func(c *Claim) *[]Related { return &c.Related }),
	record.Opt("prescription", func(c *Claim) **datatype.Reference { return &c.Prescription }),
	record.Opt("originalPrescription", func(c *Claim) **datatype.Reference { return &c.OriginalPrescription }),
	record.Opt("payee", func(c *Claim) **Payee { return &c.Payee }),
	record.Opt("referral", func(c *Claim) **datatype.Reference { return &c.Referral }),
	record.Opt("facility", func(c *Claim) **datatype.Reference { return &c.Facility }),
	record.List("careTeam", func(c *Claim) *[]CareTeam { return &c.CareTeam }),
	record.List("supportingInfo", func(c *Claim) *[]SupportingInfo { return &c.SupportingInfo }),
	record.List("diagnosis", func(c *Claim) *[]Diagnosis { return &c.Diagnosis }),
	record.List("procedure", func(c *Claim) *[]Procedure { return &c.Procedure }),
	record.List("insurance", func(c *Claim) *[]Insurance { return &c.Insurance },
		record.Min(1), record.Short("Patient insurance information")),
	record.Opt("accident", func(c *Claim) **Accident { return &c.Accident }),
	record.List("item", func(c *Claim) *[]Item { return &c.Item }, record.Short("Product or service provided")),
	record.Opt("total", func(c *Claim) **datatype.Money { return &c.Total }),
)

func (*Claim) FHIRType() string          { return ResourceType }
func (*Claim) ResourceType() string      { return ResourceType }
func (c *Claim) Fields() record.FieldSet { return table.Bind(c) }

// Parse decodes a Claim from JSON.
func Parse(data []byte, opts ...record.DecodeOption) (*Claim, error) {
	c := &Claim{}
	if err := record.UnmarshalJSON(data, c, opts...); err != nil {
		return c, err
	}
	return c, nil
}

// ItemBySequence returns the line item with the given sequence number.
func (c *Claim) ItemBySequence(seq uint32) (*Item, bool) {
	for i := range c.Item {
		if s := c.Item[i].Sequence; s != nil && uint32(*s) == seq {
			return &c.Item[i], true
		}
	}
	return nil, false
}

// AddItem appends a line item numbered after the current last one.
func (c *Claim) AddItem(productOrService *datatype.CodeableConcept) *Item {
	var next uint32 = 1
	for i := range c.Item {
		if s := c.Item[i].Sequence; s != nil && uint32(*s) >= next {
			next = uint32(*s) + 1
		}
	}
	c.Item = append(c.Item, Item{Sequence: datatype.NewPositiveInt(next), ProductOrService: productOrService})
	return &c.Item[len(c.Item)-1]
}

// Related is Claim.related, a prior or corollary claim.
type Related struct {
	datatype.BackboneElement
	Claim        *datatype.Reference
	Relationship *datatype.CodeableConcept
	Reference    *datatype.Identifier
}

var relatedTable = datatype.BackboneTable("Claim.related", func(r *Related) *datatype.BackboneElement { return &r.BackboneElement },
	record.Opt("claim", func(r *Related) **datatype.Reference { return &r.Claim }),
	record.Opt("relationship", func(r *Related) **datatype.CodeableConcept { return &r.Relationship },
		record.Bind(datatype.Example, terminology.RelatedClaimRelationship)),
	record.Opt("reference", func(r *Related) **datatype.Identifier { return &r.Reference }),
)

func (*Related) FHIRType() string          { return "Claim.related" }
func (r *Related) Fields() record.FieldSet { return relatedTable.Bind(r) }

// Payee is Claim.payee, the recipient of benefits payable.
type Payee struct {
	datatype.BackboneElement
	Type  *datatype.CodeableConcept
	Party *datatype.Reference
}

var payeeTable = datatype.BackboneTable("Claim.payee", func(p *Payee) *datatype.BackboneElement { return &p.BackboneElement },
	record.Opt("type", func(p *Payee) **datatype.CodeableConcept { return &p.Type },
		record.Required, record.Bind(datatype.Example, terminology.PayeeType)),
	record.Opt("party", func(p *Payee) **datatype.Reference { return &p.Party }),
)

func (*Payee) FHIRType() string          { return "Claim.payee" }
func (p *Payee) Fields() record.FieldSet { return payeeTable.Bind(p) }

// CareTeam is Claim.careTeam, a member of the care team.
type CareTeam struct {
	datatype.BackboneElement
	Sequence      *datatype.PositiveInt
	Provider      *datatype.Reference
	Responsible   *datatype.Boolean
	Role          *datatype.CodeableConcept
	Qualification *datatype.CodeableConcept
}

var careTeamTable = datatype.BackboneTable("Claim.careTeam", func(c *CareTeam) *datatype.BackboneElement { return &c.BackboneElement },
	record.Opt("sequence", func(c *CareTeam) **datatype.PositiveInt { return &c.Sequence }, record.Required),
	record.Opt("provider", func(c *CareTeam) **datatype.Reference { return &c.Provider }, record.Required),
	record.Opt("responsible", func(c *CareTeam) **datatype.Boolean { return &c.Responsible }),
	record.Opt("role", func(c *CareTeam) **datatype.CodeableConcept { return &c.Role },
		record.Bind(datatype.Example, terminology.CareTeamRole)),
	record.Opt("qualification", func(c *CareTeam) **datatype.CodeableConcept { return &c.Qualification },
		record.Bind(datatype.Example, terminology.ProviderQualification)),
)

func (*CareTeam) FHIRType() string          { return "Claim.careTeam" }
func (c *CareTeam) Fields() record.FieldSet { return careTeamTable.Bind(c) }

// SupportingInfo is Claim.supportingInfo, additional information codes
// and attachments.
type SupportingInfo struct {
	datatype.BackboneElement
	Sequence *datatype.PositiveInt
	Category *datatype.CodeableConcept
	Code     *datatype.CodeableConcept
	Timing   record.Choice
	Value    record.Choice
	Reason   *datatype.CodeableConcept
}

var supportingInfoTable = datatype.BackboneTable("Claim.supportingInfo", func(s *SupportingInfo) *datatype.BackboneElement { return &s.BackboneElement },
	record.Opt("sequence", func(s *SupportingInfo) **datatype.PositiveInt { return &s.Sequence }, record.Required),
	record.Opt("category", func(s *SupportingInfo) **datatype.CodeableConcept { return &s.Category },
		record.Required, record.Bind(datatype.Example, terminology.InformationCategory)),
	record.Opt("code", func(s *SupportingInfo) **datatype.CodeableConcept { return &s.Code },
		record.Bind(datatype.Example, terminology.ClaimException)),
	record.OneOf("timing", func(s *SupportingInfo) *record.Choice { return &s.Timing },
		[]record.Alternative{record.Alt[datatype.Date](), record.Alt[datatype.Period]()}),
	record.OneOf("value", func(s *SupportingInfo) *record.Choice { return &s.Value },
		[]record.Alternative{
			record.Alt[datatype.Boolean](), record.Alt[datatype.String](), record.Alt[datatype.Quantity](),
			record.Alt[datatype.Attachment](), record.Alt[datatype.Reference](),
		}),
	record.Opt("reason", func(s *SupportingInfo) **datatype.CodeableConcept { return &s.Reason },
		record.Bind(datatype.Example, terminology.MissingToothReason)),
)

func (*SupportingInfo) FHIRType() string          { return "Claim.supportingInfo" }
func (s *SupportingInfo) Fields() record.FieldSet { return supportingInfoTable.Bind(s) }

// Diagnosis is Claim.diagnosis, a pertinent diagnosis.
type Diagnosis struct {
	datatype.BackboneElement
	Sequence    *datatype.PositiveInt
	Diagnosis   record.Choice
	Type        []datatype.CodeableConcept
	OnAdmission *datatype.CodeableConcept
	PackageCode *datatype.CodeableConcept
}

var diagnosisTable = datatype.BackboneTable("Claim.diagnosis", func(d *Diagnosis) *datatype.BackboneElement { return &d.BackboneElement },
	record.Opt("sequence", func(d *Diagnosis) **datatype.PositiveInt { return &d.Sequence }, record.Required),
	record.OneOf("diagnosis", func(d *Diagnosis) *record.Choice { return &d.Diagnosis },
		[]record.Alternative{record.Alt[datatype.CodeableConcept](), record.Alt[datatype.Reference]()},
		record.Required, record.Bind(datatype.Example, terminology.ICD10)),
	record.List("type", func(d *Diagnosis) *[]datatype.CodeableConcept { return &d.Type },
		record.Bind(datatype.Example, terminology.DiagnosisType)),
	record.Opt("onAdmission", func(d *Diagnosis) **datatype.CodeableConcept { return &d.OnAdmission },
		record.Bind(datatype.Example, terminology.DiagnosisOnAdmission)),
	record.Opt("packageCode", func(d *Diagnosis) **datatype.CodeableConcept { return &d.PackageCode },
		record.Bind(datatype.Example, terminology.DiagnosisRelatedGroup)),
)

func (*Diagnosis) FHIRType() string          { return "Claim.diagnosis" }
func (d *Diagnosis) Fields() record.FieldSet { return diagnosisTable.Bind(d) }

// Procedure is Claim.procedure, a clinical procedure performed.
type Procedure struct {
	datatype.BackboneElement
	Sequence  *datatype.PositiveInt
	Type      []datatype.CodeableConcept
	Date      *datatype.DateTime
	Procedure record.Choice
	UDI       []datatype.Reference
}

var procedureTable = datatype.BackboneTable("Claim.procedure", func(p *Procedure) *datatype.BackboneElement { return &p.BackboneElement },
	record.Opt("sequence", func(p *Procedure) **datatype.PositiveInt { return &p.Sequence }, record.Required),
	record.List("type", func(p *Procedure) *[]datatype.CodeableConcept { return &p.Type },
		record.Bind(datatype.Example, terminology.ProcedureType)),
	record.Opt("date", func(p *Procedure) **datatype.DateTime { return &p.Date }),
	record.OneOf("procedure", func(p *Procedure) *record.Choice { return &p.Procedure },
		[]record.Alternative{record.Alt[datatype.CodeableConcept](), record.Alt[datatype.Reference]()},
		record.Required, record.Bind(datatype.Example, terminology.ICD10Procedures)),
	record.List("udi", func(p *Procedure) *[]datatype.Reference { return &p.UDI }),
)

func (*Procedure) FHIRType() string          { return "Claim.procedure" }
func (p *Procedure) Fields() record.FieldSet { return procedureTable.Bind(p) }

// Insurance is Claim.insurance, a coverage to be used for adjudication.
type Insurance struct {
	datatype.BackboneElement
	Sequence            *datatype.PositiveInt
	Focal               *datatype.Boolean
	Identifier          *datatype.Identifier
	Coverage            *datatype.Reference
	BusinessArrangement *datatype.String
	PreAuthRef          []datatype.String
	ClaimResponse       *datatype.Reference
}

var insuranceTable = datatype.BackboneTable("Claim.insurance", func(i *Insurance) *datatype.BackboneElement { return &i.BackboneElement },
	record.Opt("sequence", func(i *Insurance) **datatype.PositiveInt { return &i.Sequence }, record.Required),
	record.Opt("focal", func(i *Insurance) **datatype.Boolean { return &i.Focal }, record.Required,
		record.Short("Coverage to be used for adjudication")),
	record.Opt("identifier", func(i *Insurance) **datatype.Identifier { return &i.Identifier }),
	record.Opt("coverage", func(i *Insurance) **datatype.Reference { return &i.Coverage }, record.Required),
	record.Opt("businessArrangement", func(i *Insurance) **datatype.String { return &i.BusinessArrangement }),
	record.List("preAuthRef", func(i *Insurance) *[]datatype.String { return &i.PreAuthRef }),
	record.Opt("claimResponse", func(i *Insurance) **datatype.Reference { return &i.ClaimResponse }),
)

func (*Insurance) FHIRType() string          { return "Claim.insurance" }
func (i *Insurance) Fields() record.FieldSet { return insuranceTable.Bind(i) }

// Accident is Claim.accident, details of an event.
type Accident struct {
	datatype.BackboneElement
	Date     *datatype.Date
	Type     *datatype.CodeableConcept
	Location record.Choice
}

var accidentTable = datatype.BackboneTable("Claim.accident", func(a *Accident) *datatype.BackboneElement { return &a.BackboneElement },
	record.Opt("date", func(a *Accident) **datatype.Date { return &a.Date }, record.Required),
	record.Opt("type", func(a *Accident) **datatype.CodeableConcept { return &a.Type },
		record.Bind(datatype.Extensible, terminology.AccidentType)),
	record.OneOf("location", func(a *Accident) *record.Choice { return &a.Location },
		[]record.Alternative{record.Alt[datatype.Address](), record.Alt[datatype.Reference]()}),
)

func (*Accident) FHIRType() string          { return "Claim.accident" }
func (a *Accident) Fields() record.FieldSet { return accidentTable.Bind(a) }
