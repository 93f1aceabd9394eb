package claim

import (
	"github.com/gofhir/models/pkg/datatype"
	"github.com/gofhir/models/pkg/record"
	"github.com/gofhir/models/pkg/terminology"
)

// Item is Claim.item, a product or service provided.
type Item struct {
	datatype.BackboneElement
	Sequence            *datatype.PositiveInt
	CareTeamSequence    []datatype.PositiveInt
	DiagnosisSequence   []datatype.PositiveInt
	ProcedureSequence   []datatype.PositiveInt
	InformationSequence []datatype.PositiveInt
	Revenue             *datatype.CodeableConcept
	Category            *datatype.CodeableConcept
	ProductOrService    *datatype.CodeableConcept
	Modifier            []datatype.CodeableConcept
	ProgramCode         []datatype.CodeableConcept
	Serviced            record.Choice
	Location            record.Choice
	Quantity            *datatype.Quantity
	UnitPrice           *datatype.Money
	Factor              *datatype.Decimal
	Net                 *datatype.Money
	UDI                 []datatype.Reference
	BodySite            *datatype.CodeableConcept
	SubSite             []datatype.CodeableConcept
	Encounter           []datatype.Reference
	Detail              []ItemDetail
}

var itemTable = datatype.BackboneTable("Claim.item", func(i *Item) *datatype.BackboneElement { return &i.BackboneElement },
	record.Opt("sequence", func(i *Item) **datatype.PositiveInt { return &i.Sequence },
		record.Required, record.Short("Item instance identifier")),
	record.List("careTeamSequence", func(i *Item) *[]datatype.PositiveInt { return &i.CareTeamSequence }),
	record.List("diagnosisSequence", func(i *Item) *[]datatype.PositiveInt { return &i.DiagnosisSequence }),
	record.List("procedureSequence", func(i *Item) *[]datatype.PositiveInt { return &i.ProcedureSequence }),
	record.List("informationSequence", func(i *Item) *[]datatype.PositiveInt { return &i.InformationSequence }),
	record.Opt("revenue", func(i *Item) **datatype.CodeableConcept { return &i.Revenue },
		record.Bind(datatype.Example, terminology.RevenueCenter)),
	record.Opt("category", func(i *Item) **datatype.CodeableConcept { return &i.Category },
		record.Bind(datatype.Example, terminology.BenefitCategory)),
	record.Opt("productOrService", func(i *Item) **datatype.CodeableConcept { return &i.ProductOrService },
		record.Required, record.Bind(datatype.Example, terminology.ServiceUSCLS),
		record.Short("Billing, service, product, or drug code")),
	record.List("modifier", func(i *Item) *[]datatype.CodeableConcept { return &i.Modifier },
		record.Bind(datatype.Example, terminology.ClaimModifiers)),
	record.List("programCode", func(i *Item) *[]datatype.CodeableConcept { return &i.ProgramCode },
		record.Bind(datatype.Example, terminology.ProgramCode)),
	record.OneOf("serviced", func(i *Item) *record.Choice { return &i.Serviced },
		[]record.Alternative{record.Alt[datatype.Date](), record.Alt[datatype.Period]()},
		record.Short("Date or dates of service or product delivery")),
	record.OneOf("location", func(i *Item) *record.Choice { return &i.Location },
		[]record.Alternative{record.Alt[datatype.CodeableConcept](), record.Alt[datatype.Address](), record.Alt[datatype.Reference]()},
		record.Bind(datatype.Example, terminology.ServicePlace)),
	record.Opt("quantity", func(i *Item) **datatype.Quantity { return &i.Quantity }),
	record.Opt("unitPrice", func(i *Item) **datatype.Money { return &i.UnitPrice }),
	record.Opt("factor", func(i *Item) **datatype.Decimal { return &i.Factor }),
	record.Opt("net", func(i *Item) **datatype.Money { return &i.Net }),
	record.List("udi", func(i *Item) *[]datatype.Reference { return &i.UDI }),
	record.Opt("bodySite", func(i *Item) **datatype.CodeableConcept { return &i.BodySite },
		record.Bind(datatype.Example, terminology.Tooth)),
	record.List("subSite", func(i *Item) *[]datatype.CodeableConcept { return &i.SubSite },
		record.Bind(datatype.Example, terminology.Surface)),
	record.List("encounter", func(i *Item) *[]datatype.Reference { return &i.Encounter }),
	record.List("detail", func(i *Item) *[]ItemDetail { return &i.Detail }),
)

func (*Item) FHIRType() string          { return "Claim.item" }
func (i *Item) Fields() record.FieldSet { return itemTable.Bind(i) }

// ItemDetail is Claim.item.detail, a product or service provided within
// an item.
type ItemDetail struct {
	datatype.BackboneElement
	Sequence         *datatype.PositiveInt
	Revenue          *datatype.CodeableConcept
	Category         *datatype.CodeableConcept
	ProductOrService *datatype.CodeableConcept
	Modifier         []datatype.CodeableConcept
	ProgramCode      []datatype.CodeableConcept
	Quantity         *datatype.Quantity
	UnitPrice        *datatype.Money
	Factor           *datatype.Decimal
	Net              *datatype.Money
	UDI              []datatype.Reference
	SubDetail        []ItemDetailSubDetail
}

var itemDetailTable = datatype.BackboneTable("Claim.item.detail", func(d *ItemDetail) *datatype.BackboneElement { return &d.BackboneElement },
	record.Opt("sequence", func(d *ItemDetail) **datatype.PositiveInt { return &d.Sequence }, record.Required),
	record.Opt("revenue", func(d *ItemDetail) **datatype.CodeableConcept { return &d.Revenue },
		record.Bind(datatype.Example, terminology.RevenueCenter)),
	record.Opt("category", func(d *ItemDetail) **datatype.CodeableConcept { return &d.Category },
		record.Bind(datatype.Example, terminology.BenefitCategory)),
	record.Opt("productOrService", func(d *ItemDetail) **datatype.CodeableConcept { return &d.ProductOrService },
		record.Required, record.Bind(datatype.Example, terminology.ServiceUSCLS)),
	record.List("modifier", func(d *ItemDetail) *[]datatype.CodeableConcept { return &d.Modifier },
		record.Bind(datatype.Example, terminology.ClaimModifiers)),
	record.List("programCode", func(d *ItemDetail) *[]datatype.CodeableConcept { return &d.ProgramCode },
		record.Bind(datatype.Example, terminology.ProgramCode)),
	record.Opt("quantity", func(d *ItemDetail) **datatype.Quantity { return &d.Quantity }),
	record.Opt("unitPrice", func(d *ItemDetail) **datatype.Money { return &d.UnitPrice }),
	record.Opt("factor", func(d *ItemDetail) **datatype.Decimal { return &d.Factor }),
	record.Opt("net", func(d *ItemDetail) **datatype.Money { return &d.Net }),
	record.List("udi", func(d *ItemDetail) *[]datatype.Reference { return &d.UDI }),
	record.List("subDetail", func(d *ItemDetail) *[]ItemDetailSubDetail { return &d.SubDetail }),
)

func (*ItemDetail) FHIRType() string          { return "Claim.item.detail" }
func (d *ItemDetail) Fields() record.FieldSet { return itemDetailTable.Bind(d) }

// ItemDetailSubDetail is Claim.item.detail.subDetail.
type ItemDetailSubDetail struct {
	datatype.BackboneElement
	Sequence         *datatype.PositiveInt
	Revenue          *datatype.CodeableConcept
	Category         *datatype.CodeableConcept
	ProductOrService *datatype.CodeableConcept
	Modifier         []datatype.CodeableConcept
	ProgramCode      []datatype.CodeableConcept
	Quantity         *datatype.Quantity
	UnitPrice        *datatype.Money
	Factor           *datatype.Decimal
	Net              *datatype.Money
	UDI              []datatype.Reference
}

var subDetailTable = datatype.BackboneTable("Claim.item.detail.subDetail", func(s *ItemDetailSubDetail) *datatype.BackboneElement { return &s.BackboneElement },
	record.Opt("sequence", func(s *ItemDetailSubDetail) **datatype.PositiveInt { return &s.Sequence }, record.Required),
	record.Opt("revenue", func(s *ItemDetailSubDetail) **datatype.CodeableConcept { return &s.Revenue },
		record.Bind(datatype.Example, terminology.RevenueCenter)),
	record.Opt("category", func(s *ItemDetailSubDetail) **datatype.CodeableConcept { return &s.Category },
		record.Bind(datatype.Example, terminology.BenefitCategory)),
	record.Opt("productOrService", func(s *ItemDetailSubDetail) **datatype.CodeableConcept { return &s.ProductOrService },
		record.Required, record.Bind(datatype.Example, terminology.ServiceUSCLS)),
	record.List("modifier", func(s *ItemDetailSubDetail) *[]datatype.CodeableConcept { return &s.Modifier },
		record.Bind(datatype.Example, terminology.ClaimModifiers)),
	record.List("programCode", func(s *ItemDetailSubDetail) *[]datatype.CodeableConcept { return &s.ProgramCode },
		record.Bind(datatype.Example, terminology.ProgramCode)),
	record.Opt("quantity", func(s *ItemDetailSubDetail) **datatype.Quantity { return &s.Quantity }),
	record.Opt("unitPrice", func(s *ItemDetailSubDetail) **datatype.Money { return &s.UnitPrice }),
	record.Opt("factor", func(s *ItemDetailSubDetail) **datatype.Decimal { return &s.Factor }),
	record.Opt("net", func(s *ItemDetailSubDetail) **datatype.Money { return &s.Net }),
	record.List("udi", func(s *ItemDetailSubDetail) *[]datatype.Reference { return &s.UDI }),
)

func (*ItemDetailSubDetail) FHIRType() string          { return "Claim.item.detail.subDetail" }
func (s *ItemDetailSubDetail) Fields() record.FieldSet { return subDetailTable.Bind(s) }
