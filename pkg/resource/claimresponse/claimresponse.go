// Package claimresponse is the R4 ClaimResponse resource: the
// adjudication of a Claim by the insurer.
package claimresponse

import (
	"github.com/gofhir/models/pkg/datatype"
	"github.com/gofhir/models/pkg/record"
	"github.com/gofhir/models/pkg/terminology"
)

// ResourceType is the resourceType of a ClaimResponse.
const ResourceType = "ClaimResponse"

// ClaimResponse is the insurer's response to a claim.
type ClaimResponse struct {
	datatype.DomainResource
	Identifier           []datatype.Identifier
	Status               *datatype.Code
	Type                 *datatype.CodeableConcept
	SubType              *datatype.CodeableConcept
	Use                  *datatype.Code
	Patient              *datatype.Reference
	Created              *datatype.DateTime
	Insurer              *datatype.Reference
	Requestor            *datatype.Reference
	Request              *datatype.Reference
	Outcome              *datatype.Code
	Disposition          *datatype.String
	PreAuthRef           *datatype.String
	PreAuthPeriod        *datatype.Period
	PayeeType            *datatype.CodeableConcept
	Item                 []Item
	AddItem              []AddItem
	Adjudication         []Adjudication
	Total                []Total
	Payment              *Payment
	FundsReserve         *datatype.CodeableConcept
	FormCode             *datatype.CodeableConcept
	Form                 *datatype.Attachment
	ProcessNote          []ProcessNote
	CommunicationRequest []datatype.Reference
	Insurance            []Insurance
	Error                []Error
}

var table = datatype.ResourceTable(ResourceType, func(c *ClaimResponse) *datatype.DomainResource { return &c.DomainResource },
	record.List("identifier", func(c *ClaimResponse) *[]datatype.Identifier { return &c.Identifier }),
	record.Opt("status", func(c *ClaimResponse) **datatype.Code { return &c.Status },
		record.Required, record.Bind(datatype.Required, terminology.FMStatus),
		record.Short("active | cancelled | draft | entered-in-error")),
	record.Opt("type", func(c *ClaimResponse) **datatype.CodeableConcept { return &c.Type },
		record.Required, record.Bind(datatype.Extensible, terminology.ClaimType)),
	record.Opt("subType", func(c *ClaimResponse) **datatype.CodeableConcept { return &c.SubType },
		record.Bind(datatype.Example, terminology.ClaimSubType)),
	record.Opt("use", func(c *ClaimResponse) **datatype.Code { return &c.Use },
		record.Required, record.Bind(datatype.Required, terminology.ClaimUse)),
	record.Opt("patient", func(c *ClaimResponse) **datatype.Reference { return &c.Patient }, record.Required),
	record.Opt("created", func(c *ClaimResponse) **datatype.DateTime { return &c.Created }, record.Required),
	record.Opt("insurer", func(c *ClaimResponse) **datatype.Reference { return &c.Insurer },
		record.Required, record.Short("Party responsible for reimbursement")),
	record.Opt("requestor", func(c *ClaimResponse) **datatype.Reference { return &c.Requestor }),
	record.Opt("request", func(c *ClaimResponse) **datatype.Reference { return &c.Request }, record.Short("Id of resource triggering adjudication")),
	record.Opt("outcome", func(c *ClaimResponse) **datatype.Code { return &c.Outcome },
		record.Required, record.Bind(datatype.Required, terminology.RemittanceOutcome),
		record.Short("queued | complete | error | partial")),
	record.Opt("disposition", func(c *ClaimResponse) **datatype.String { return &c.Disposition }),
	record.Opt("preAuthRef", func(c *ClaimResponse) **datatype.String { return &c.PreAuthRef }),
	record.Opt("preAuthPeriod", func(c *ClaimResponse) **datatype.Period { return &c.PreAuthPeriod }),
	record.Opt("payeeType", func(c *ClaimResponse) **datatype.CodeableConcept { return &c.PayeeType },
		record.Bind(datatype.Example, terminology.PayeeType)),
	record.List("item", func(c *ClaimResponse) *[]Item { return &c.Item }),
	record.List("addItem", func(c *ClaimResponse) *[]AddItem { return &c.AddItem }),
	record.List("adjudication", func(c *ClaimResponse) *[]Adjudication { return &c.Adjudication },
		record.Short("Header-level adjudication")),
	record.List("total", func(c *ClaimResponse) *[]Total { return &c.Total }),
	record.Opt("payment", func(c *ClaimResponse) **Payment { return &c.Payment }),
	record.Opt("fundsReserve", func(c *ClaimResponse) **datatype.CodeableConcept { return &c.FundsReserve },
		record.Bind(datatype.Example, terminology.FundsReserve)),
	record.Opt("formCode", func(c *ClaimResponse) **datatype.CodeableConcept { return &c.FormCode },
		record.Bind(datatype.Example, terminology.Forms)),
	record.Opt("form", func(c *ClaimResponse) **datatype.Attachment { return &c.Form }),
	record.List("processNote", func(c *ClaimResponse) *[]ProcessNote { return &c.ProcessNote }),
	record.List("communicationRequest", func(c *ClaimResponse) *[]datatype.Reference { return &c.CommunicationRequest }),
	record.List("insurance", func(c *ClaimResponse) *[]Insurance { return &c.Insurance }),
	record.List("error", func(c *ClaimResponse) *[]Error { return &c.Error }),
)

func (*ClaimResponse) FHIRType() string          { return ResourceType }
func (*ClaimResponse) ResourceType() string      { return ResourceType }
func (c *ClaimResponse) Fields() record.FieldSet { return table.Bind(c) }

// Parse decodes a ClaimResponse from JSON.
func Parse(data []byte, opts ...record.DecodeOption) (*ClaimResponse, error) {
	c := &ClaimResponse{}
	if err := record.UnmarshalJSON(data, c, opts...); err != nil {
		return c, err
	}
	return c, nil
}

// TotalFor returns the header total in the given adjudication category,
// e.g. "submitted" or "benefit".
func (c *ClaimResponse) TotalFor(category string) (*datatype.Money, bool) {
	for i := range c.Total {
		t := &c.Total[i]
		if t.Category != nil && t.Category.HasCode(terminology.SystemAdjudication, category) {
			return t.Amount, t.Amount != nil
		}
	}
	return nil, false
}

// Total is ClaimResponse.total, an adjudication total.
type Total struct {
	datatype.BackboneElement
	Category *datatype.CodeableConcept
	Amount   *datatype.Money
}

var totalTable = datatype.BackboneTable("ClaimResponse.total", func(t *Total) *datatype.BackboneElement { return &t.BackboneElement },
	record.Opt("category", func(t *Total) **datatype.CodeableConcept { return &t.Category },
		record.Required, record.Bind(datatype.Example, terminology.Adjudication)),
	record.Opt("amount", func(t *Total) **datatype.Money { return &t.Amount }, record.Required),
)

func (*Total) FHIRType() string          { return "ClaimResponse.total" }
func (t *Total) Fields() record.FieldSet { return totalTable.Bind(t) }

// Payment is ClaimResponse.payment.
type Payment struct {
	datatype.BackboneElement
	Type             *datatype.CodeableConcept
	Adjustment       *datatype.Money
	AdjustmentReason *datatype.CodeableConcept
	Date             *datatype.Date
	Amount           *datatype.Money
	Identifier       *datatype.Identifier
}

var paymentTable = datatype.BackboneTable("ClaimResponse.payment", func(p *Payment) *datatype.BackboneElement { return &p.BackboneElement },
	record.Opt("type", func(p *Payment) **datatype.CodeableConcept { return &p.Type },
		record.Required, record.Bind(datatype.Example, terminology.PaymentType), record.Short("Partial or complete payment")),
	record.Opt("adjustment", func(p *Payment) **datatype.Money { return &p.Adjustment }),
	record.Opt("adjustmentReason", func(p *Payment) **datatype.CodeableConcept { return &p.AdjustmentReason },
		record.Bind(datatype.Example, terminology.PaymentAdjustmentReason)),
	record.Opt("date", func(p *Payment) **datatype.Date { return &p.Date }),
	record.Opt("amount", func(p *Payment) **datatype.Money { return &p.Amount }, record.Required),
	record.Opt("identifier", func(p *Payment) **datatype.Identifier { return &p.Identifier }),
)

func (*Payment) FHIRType() string          { return "ClaimResponse.payment" }
func (p *Payment) Fields() record.FieldSet { return paymentTable.Bind(p) }

// ProcessNote is ClaimResponse.processNote, a note for the submitter.
type ProcessNote struct {
	datatype.BackboneElement
	Number   *datatype.PositiveInt
	Type     *datatype.Code
	Text     *datatype.String
	Language *datatype.CodeableConcept
}

var processNoteTable = datatype.BackboneTable("ClaimResponse.processNote", func(n *ProcessNote) *datatype.BackboneElement { return &n.BackboneElement },
	record.Opt("number", func(n *ProcessNote) **datatype.PositiveInt { return &n.Number }),
	record.Opt("type", func(n *ProcessNote) **datatype.Code { return &n.Type },
		record.Bind(datatype.Required, terminology.NoteType), record.Short("display | print | printoper")),
	record.Opt("text", func(n *ProcessNote) **datatype.String { return &n.Text }, record.Required),
	record.Opt("language", func(n *ProcessNote) **datatype.CodeableConcept { return &n.Language },
		record.Bind(datatype.Preferred, terminology.Languages)),
)

func (*ProcessNote) FHIRType() string          { return "ClaimResponse.processNote" }
func (n *ProcessNote) Fields() record.FieldSet { return processNoteTable.Bind(n) }

// Insurance is ClaimResponse.insurance.
type Insurance struct {
	datatype.BackboneElement
	Sequence            *datatype.PositiveInt
	Focal               *datatype.Boolean
	Coverage            *datatype.Reference
	BusinessArrangement *datatype.String
	ClaimResponse       *datatype.Reference
}

var insuranceTable = datatype.BackboneTable("ClaimResponse.insurance", func(i *Insurance) *datatype.BackboneElement { return &i.BackboneElement },
	record.Opt("sequence", func(i *Insurance) **datatype.PositiveInt { return &i.Sequence }, record.Required),
	record.Opt("focal", func(i *Insurance) **datatype.Boolean { return &i.Focal }, record.Required),
	record.Opt("coverage", func(i *Insurance) **datatype.Reference { return &i.Coverage }, record.Required),
	record.Opt("businessArrangement", func(i *Insurance) **datatype.String { return &i.BusinessArrangement }),
	record.Opt("claimResponse", func(i *Insurance) **datatype.Reference { return &i.ClaimResponse }),
)

func (*Insurance) FHIRType() string          { return "ClaimResponse.insurance" }
func (i *Insurance) Fields() record.FieldSet { return insuranceTable.Bind(i) }

// Error is ClaimResponse.error, a processing error.
type Error struct {
	datatype.BackboneElement
	ItemSequence      *datatype.PositiveInt
	DetailSequence    *datatype.PositiveInt
	SubDetailSequence *datatype.PositiveInt
	Code              *datatype.CodeableConcept
}

var errorTable = datatype.BackboneTable("ClaimResponse.error", func(e *Error) *datatype.BackboneElement { return &e.BackboneElement },
	record.Opt("itemSequence", func(e *Error) **datatype.PositiveInt { return &e.ItemSequence }),
	record.Opt("detailSequence", func(e *Error) **datatype.PositiveInt { return &e.DetailSequence }),
	record.Opt("subDetailSequence", func(e *Error) **datatype.PositiveInt { return &e.SubDetailSequence }),
	record.Opt("code", func(e *Error) **datatype.CodeableConcept { return &e.Code },
		record.Required, record.Bind(datatype.Example, terminology.AdjudicationError)),
)

func (*Error) FHIRType() string          { return "ClaimResponse.error" }
func (e *Error) Fields() record.FieldSet { return errorTable.Bind(e) }
