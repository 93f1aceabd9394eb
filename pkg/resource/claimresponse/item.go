package claimresponse

import (
	"github.com/gofhir/models/pkg/datatype"
	"github.com/gofhir/models/pkg/record"
	"github.com/gofhir/models/pkg/terminology"
)

// Adjudication is ClaimResponse.item.adjudication. The same shape is used
// at every level: header, item, detail, subDetail and the addItem tree.
type Adjudication struct {
	datatype.BackboneElement
	Category *datatype.CodeableConcept
	Reason   *datatype.CodeableConcept
	Amount   *datatype.Money
	Value    *datatype.Decimal
}

var adjudicationTable = datatype.BackboneTable("ClaimResponse.item.adjudication", func(a *Adjudication) *datatype.BackboneElement { return &a.BackboneElement },
	record.Opt("category", func(a *Adjudication) **datatype.CodeableConcept { return &a.Category },
		record.Required, record.Bind(datatype.Example, terminology.Adjudication),
		record.Short("Type of adjudication information")),
	record.Opt("reason", func(a *Adjudication) **datatype.CodeableConcept { return &a.Reason },
		record.Bind(datatype.Example, terminology.AdjudicationReason)),
	record.Opt("amount", func(a *Adjudication) **datatype.Money { return &a.Amount }),
	record.Opt("value", func(a *Adjudication) **datatype.Decimal { return &a.Value }),
)

func (*Adjudication) FHIRType() string          { return "ClaimResponse.item.adjudication" }
func (a *Adjudication) Fields() record.FieldSet { return adjudicationTable.Bind(a) }

// NewAdjudication returns an adjudication entry with a monetary amount.
func NewAdjudication(category, value, currency string) Adjudication {
	return Adjudication{
		Category: datatype.NewCodeableConcept(terminology.SystemAdjudication, category, ""),
		Amount:   datatype.NewMoney(value, currency),
	}
}

// Item is ClaimResponse.item, the adjudication of a claim line item.
type Item struct {
	datatype.BackboneElement
	ItemSequence *datatype.PositiveInt
	NoteNumber   []datatype.PositiveInt
	Adjudication []Adjudication
	Detail       []ItemDetail
}

var itemTable = datatype.BackboneTable("ClaimResponse.item", func(i *Item) *datatype.BackboneElement { return &i.BackboneElement },
	record.Opt("itemSequence", func(i *Item) **datatype.PositiveInt { return &i.ItemSequence },
		record.Required, record.Short("Claim item instance identifier")),
	record.List("noteNumber", func(i *Item) *[]datatype.PositiveInt { return &i.NoteNumber }),
	record.List("adjudication", func(i *Item) *[]Adjudication { return &i.Adjudication }, record.Min(1)),
	record.List("detail", func(i *Item) *[]ItemDetail { return &i.Detail }),
)

func (*Item) FHIRType() string          { return "ClaimResponse.item" }
func (i *Item) Fields() record.FieldSet { return itemTable.Bind(i) }

// ItemDetail is ClaimResponse.item.detail.
type ItemDetail struct {
	datatype.BackboneElement
	DetailSequence *datatype.PositiveInt
	NoteNumber     []datatype.PositiveInt
	Adjudication   []Adjudication
	SubDetail      []ItemDetailSubDetail
}

var itemDetailTable = datatype.BackboneTable("ClaimResponse.item.detail", func(d *ItemDetail) *datatype.BackboneElement { return &d.BackboneElement },
	record.Opt("detailSequence", func(d *ItemDetail) **datatype.PositiveInt { return &d.DetailSequence }, record.Required),
	record.List("noteNumber", func(d *ItemDetail) *[]datatype.PositiveInt { return &d.NoteNumber }),
	record.List("adjudication", func(d *ItemDetail) *[]Adjudication { return &d.Adjudication }, record.Min(1)),
	record.List("subDetail", func(d *ItemDetail) *[]ItemDetailSubDetail { return &d.SubDetail }),
)

func (*ItemDetail) FHIRType() string          { return "ClaimResponse.item.detail" }
func (d *ItemDetail) Fields() record.FieldSet { return itemDetailTable.Bind(d) }

// ItemDetailSubDetail is ClaimResponse.item.detail.subDetail.
type ItemDetailSubDetail struct {
	datatype.BackboneElement
	SubDetailSequence *datatype.PositiveInt
	NoteNumber        []datatype.PositiveInt
	Adjudication      []Adjudication
}

var subDetailTable = datatype.BackboneTable("ClaimResponse.item.detail.subDetail", func(s *ItemDetailSubDetail) *datatype.BackboneElement { return &s.BackboneElement },
	record.Opt("subDetailSequence", func(s *ItemDetailSubDetail) **datatype.PositiveInt { return &s.SubDetailSequence }, record.Required),
	record.List("noteNumber", func(s *ItemDetailSubDetail) *[]datatype.PositiveInt { return &s.NoteNumber }),
	record.List("adjudication", func(s *ItemDetailSubDetail) *[]Adjudication { return &s.Adjudication }),
)

func (*ItemDetailSubDetail) FHIRType() string          { return "ClaimResponse.item.detail.subDetail" }
func (s *ItemDetailSubDetail) Fields() record.FieldSet { return subDetailTable.Bind(s) }

// AddItem is ClaimResponse.addItem, a line item added by the insurer.
type AddItem struct {
	datatype.BackboneElement
	ItemSequence      []datatype.PositiveInt
	DetailSequence    []datatype.PositiveInt
	SubdetailSequence []datatype.PositiveInt
	Provider          []datatype.Reference
	ProductOrService  *datatype.CodeableConcept
	Modifier          []datatype.CodeableConcept
	ProgramCode       []datatype.CodeableConcept
	Serviced          record.Choice
	Location          record.Choice
	Quantity          *datatype.Quantity
	UnitPrice         *datatype.Money
	Factor            *datatype.Decimal
	Net               *datatype.Money
	BodySite          *datatype.CodeableConcept
	SubSite           []datatype.CodeableConcept
	NoteNumber        []datatype.PositiveInt
	Adjudication      []Adjudication
	Detail            []AddItemDetail
}

var addItemTable = datatype.BackboneTable("ClaimResponse.addItem", func(a *AddItem) *datatype.BackboneElement { return &a.BackboneElement },
	record.List("itemSequence", func(a *AddItem) *[]datatype.PositiveInt { return &a.ItemSequence }),
	record.List("detailSequence", func(a *AddItem) *[]datatype.PositiveInt { return &a.DetailSequence }),
	record.List("subdetailSequence", func(a *AddItem) *[]datatype.PositiveInt { return &a.SubdetailSequence }),
	record.List("provider", func(a *AddItem) *[]datatype.Reference { return &a.Provider }),
	record.Opt("productOrService", func(a *AddItem) **datatype.CodeableConcept { return &a.ProductOrService },
		record.Required, record.Bind(datatype.Example, terminology.ServiceUSCLS)),
	record.List("modifier", func(a *AddItem) *[]datatype.CodeableConcept { return &a.Modifier },
		record.Bind(datatype.Example, terminology.ClaimModifiers)),
	record.List("programCode", func(a *AddItem) *[]datatype.CodeableConcept { return &a.ProgramCode },
		record.Bind(datatype.Example, terminology.ProgramCode)),
	record.OneOf("serviced", func(a *AddItem) *record.Choice { return &a.Serviced },
		[]record.Alternative{record.Alt[datatype.Date](), record.Alt[datatype.Period]()}),
	record.OneOf("location", func(a *AddItem) *record.Choice { return &a.Location },
		[]record.Alternative{record.Alt[datatype.CodeableConcept](), record.Alt[datatype.Address](), record.Alt[datatype.Reference]()},
		record.Bind(datatype.Example, terminology.ServicePlace)),
	record.Opt("quantity", func(a *AddItem) **datatype.Quantity { return &a.Quantity }),
	record.Opt("unitPrice", func(a *AddItem) **datatype.Money { return &a.UnitPrice }),
	record.Opt("factor", func(a *AddItem) **datatype.Decimal { return &a.Factor }),
	record.Opt("net", func(a *AddItem) **datatype.Money { return &a.Net }),
	record.Opt("bodySite", func(a *AddItem) **datatype.CodeableConcept { return &a.BodySite },
		record.Bind(datatype.Example, terminology.Tooth)),
	record.List("subSite", func(a *AddItem) *[]datatype.CodeableConcept { return &a.SubSite },
		record.Bind(datatype.Example, terminology.Surface)),
	record.List("noteNumber", func(a *AddItem) *[]datatype.PositiveInt { return &a.NoteNumber }),
	record.List("adjudication", func(a *AddItem) *[]Adjudication { return &a.Adjudication }, record.Min(1)),
	record.List("detail", func(a *AddItem) *[]AddItemDetail { return &a.Detail }),
)

func (*AddItem) FHIRType() string          { return "ClaimResponse.addItem" }
func (a *AddItem) Fields() record.FieldSet { return addItemTable.Bind(a) }

// AddItemDetail is ClaimResponse.addItem.detail.
type AddItemDetail struct {
	datatype.BackboneElement
	ProductOrService *datatype.CodeableConcept
	Modifier         []datatype.CodeableConcept
	Quantity         *datatype.Quantity
	UnitPrice        *datatype.Money
	Factor           *datatype.Decimal
	Net              *datatype.Money
	NoteNumber       []datatype.PositiveInt
	Adjudication     []Adjudication
	SubDetail        []AddItemDetailSubDetail
}

var addItemDetailTable = datatype.BackboneTable("ClaimResponse.addItem.detail", func(d *AddItemDetail) *datatype.BackboneElement { return &d.BackboneElement },
	record.Opt("productOrService", func(d *AddItemDetail) **datatype.CodeableConcept { return &d.ProductOrService },
		record.Required, record.Bind(datatype.Example, terminology.ServiceUSCLS)),
	record.List("modifier", func(d *AddItemDetail) *[]datatype.CodeableConcept { return &d.Modifier },
		record.Bind(datatype.Example, terminology.ClaimModifiers)),
	record.Opt("quantity", func(d *AddItemDetail) **datatype.Quantity { return &d.Quantity }),
	record.Opt("unitPrice", func(d *AddItemDetail) **datatype.Money { return &d.UnitPrice }),
	record.Opt("factor", func(d *AddItemDetail) **datatype.Decimal { return &d.Factor }),
	record.Opt("net", func(d *AddItemDetail) **datatype.Money { return &d.Net }),
	record.List("noteNumber", func(d *AddItemDetail) *[]datatype.PositiveInt { return &d.NoteNumber }),
	record.List("adjudication", func(d *AddItemDetail) *[]Adjudication { return &d.Adjudication }, record.Min(1)),
	record.List("subDetail", func(d *AddItemDetail) *[]AddItemDetailSubDetail { return &d.SubDetail }),
)

func (*AddItemDetail) FHIRType() string          { return "ClaimResponse.addItem.detail" }
func (d *AddItemDetail) Fields() record.FieldSet { return addItemDetailTable.Bind(d) }

// AddItemDetailSubDetail is ClaimResponse.addItem.detail.subDetail.
type AddItemDetailSubDetail struct {
	datatype.BackboneElement
	ProductOrService *datatype.CodeableConcept
	Modifier         []datatype.CodeableConcept
	Quantity         *datatype.Quantity
	UnitPrice        *datatype.Money
	Factor           *datatype.Decimal
	Net              *datatype.Money
	NoteNumber       []datatype.PositiveInt
	Adjudication     []Adjudication
}

var addItemSubDetailTable = datatype.BackboneTable("ClaimResponse.addItem.detail.subDetail", func(s *AddItemDetailSubDetail) *datatype.BackboneElement { return &s.BackboneElement },
	record.Opt("productOrService", func(s *AddItemDetailSubDetail) **datatype.CodeableConcept { return &s.ProductOrService },
		record.Required, record.Bind(datatype.Example, terminology.ServiceUSCLS)),
	record.List("modifier", func(s *AddItemDetailSubDetail) *[]datatype.CodeableConcept { return &s.Modifier },
		record.Bind(datatype.Example, terminology.ClaimModifiers)),
	record.Opt("quantity", func(s *AddItemDetailSubDetail) **datatype.Quantity { return &s.Quantity }),
	record.Opt("unitPrice", func(s *AddItemDetailSubDetail) **datatype.Money { return &s.UnitPrice }),
	record.Opt("factor", func(s *AddItemDetailSubDetail) **datatype.Decimal { return &s.Factor }),
	record.Opt("net", func(s *AddItemDetailSubDetail) **datatype.Money { return &s.Net }),
	record.List("noteNumber", func(s *AddItemDetailSubDetail) *[]datatype.PositiveInt { return &s.NoteNumber }),
	record.List("adjudication", func(s *AddItemDetailSubDetail) *[]Adjudication { return &s.Adjudication }, record.Min(1)),
)

func (*AddItemDetailSubDetail) FHIRType() string          { return "ClaimResponse.addItem.detail.subDetail" }
func (s *AddItemDetailSubDetail) Fields() record.FieldSet { return addItemSubDetailTable.Bind(s) }
