package datatype

import (
	"github.com/gofhir/models/pkg/record"
	"github.com/gofhir/models/pkg/terminology"
)

// Timing describes an event that may occur multiple times.
type Timing struct {
	BackboneElement
	Event  []DateTime
	Repeat *TimingRepeat
	Code   *CodeableConcept
}

var timingTable = BackboneTable("Timing", func(t *Timing) *BackboneElement { return &t.BackboneElement },
	record.List("event", func(t *Timing) *[]DateTime { return &t.Event }, record.Short("When the event occurs")),
	record.Opt("repeat", func(t *Timing) **TimingRepeat { return &t.Repeat }),
	record.Opt("code", func(t *Timing) **CodeableConcept { return &t.Code },
		record.Bind(Preferred, terminology.TimingAbbreviation), record.Short("BID | TID | QID | AM | PM | QD | QOD | +")),
)

func (*Timing) FHIRType() string          { return "Timing" }
func (t *Timing) Fields() record.FieldSet { return timingTable.Bind(t) }

// TimingRepeat is Timing.repeat, the schedule rules.
type TimingRepeat struct {
	Element
	Bounds       record.Choice
	Count        *PositiveInt
	CountMax     *PositiveInt
	Duration     *Decimal
	DurationMax  *Decimal
	DurationUnit *Code
	Frequency    *PositiveInt
	FrequencyMax *PositiveInt
	Period       *Decimal
	PeriodMax    *Decimal
	PeriodUnit   *Code
	DayOfWeek    []Code
	TimeOfDay    []Time
	When         []Code
	Offset       *UnsignedInt
}

var timingRepeatTable = ElementTable("Timing.repeat", func(r *TimingRepeat) *Element { return &r.Element },
	record.OneOf("bounds", func(r *TimingRepeat) *record.Choice { return &r.Bounds },
		[]record.Alternative{record.Alt[Duration](), record.Alt[Range](), record.Alt[Period]()}),
	record.Opt("count", func(r *TimingRepeat) **PositiveInt { return &r.Count }),
	record.Opt("countMax", func(r *TimingRepeat) **PositiveInt { return &r.CountMax }),
	record.Opt("duration", func(r *TimingRepeat) **Decimal { return &r.Duration }),
	record.Opt("durationMax", func(r *TimingRepeat) **Decimal { return &r.DurationMax }),
	record.Opt("durationUnit", func(r *TimingRepeat) **Code { return &r.DurationUnit },
		record.Bind(Required, terminology.UnitsOfTime), record.Short("s | min | h | d | wk | mo | a")),
	record.Opt("frequency", func(r *TimingRepeat) **PositiveInt { return &r.Frequency }),
	record.Opt("frequencyMax", func(r *TimingRepeat) **PositiveInt { return &r.FrequencyMax }),
	record.Opt("period", func(r *TimingRepeat) **Decimal { return &r.Period }),
	record.Opt("periodMax", func(r *TimingRepeat) **Decimal { return &r.PeriodMax }),
	record.Opt("periodUnit", func(r *TimingRepeat) **Code { return &r.PeriodUnit },
		record.Bind(Required, terminology.UnitsOfTime)),
	record.List("dayOfWeek", func(r *TimingRepeat) *[]Code { return &r.DayOfWeek },
		record.Bind(Required, terminology.DaysOfWeek), record.Short("mon | tue | wed | thu | fri | sat | sun")),
	record.List("timeOfDay", func(r *TimingRepeat) *[]Time { return &r.TimeOfDay }),
	record.List("when", func(r *TimingRepeat) *[]Code { return &r.When },
		record.Bind(Required, terminology.EventTiming)),
	record.Opt("offset", func(r *TimingRepeat) **UnsignedInt { return &r.Offset }),
)

func (*TimingRepeat) FHIRType() string          { return "Timing.repeat" }
func (r *TimingRepeat) Fields() record.FieldSet { return timingRepeatTable.Bind(r) }

// Dosage is how a medication is or should be taken.
type Dosage struct {
	BackboneElement
	Sequence                 *Integer
	Text                     *String
	AdditionalInstruction    []CodeableConcept
	PatientInstruction       *String
	Timing                   *Timing
	AsNeeded                 record.Choice
	Site                     *CodeableConcept
	Route                    *CodeableConcept
	Method                   *CodeableConcept
	DoseAndRate              []DosageDoseAndRate
	MaxDosePerPeriod         *Ratio
	MaxDosePerAdministration *Quantity
	MaxDosePerLifetime       *Quantity
}

var dosageTable = BackboneTable("Dosage", func(d *Dosage) *BackboneElement { return &d.BackboneElement },
	record.Opt("sequence", func(d *Dosage) **Integer { return &d.Sequence }),
	record.Opt("text", func(d *Dosage) **String { return &d.Text }, record.Short("Free text dosage instructions")),
	record.List("additionalInstruction", func(d *Dosage) *[]CodeableConcept { return &d.AdditionalInstruction }),
	record.Opt("patientInstruction", func(d *Dosage) **String { return &d.PatientInstruction }),
	record.Opt("timing", func(d *Dosage) **Timing { return &d.Timing }),
	record.OneOf("asNeeded", func(d *Dosage) *record.Choice { return &d.AsNeeded },
		[]record.Alternative{record.Alt[Boolean](), record.Alt[CodeableConcept]()}),
	record.Opt("site", func(d *Dosage) **CodeableConcept { return &d.Site }),
	record.Opt("route", func(d *Dosage) **CodeableConcept { return &d.Route },
		record.Bind(Example, terminology.RouteCodes)),
	record.Opt("method", func(d *Dosage) **CodeableConcept { return &d.Method }),
	record.List("doseAndRate", func(d *Dosage) *[]DosageDoseAndRate { return &d.DoseAndRate }),
	record.Opt("maxDosePerPeriod", func(d *Dosage) **Ratio { return &d.MaxDosePerPeriod }),
	record.Opt("maxDosePerAdministration", func(d *Dosage) **Quantity { return &d.MaxDosePerAdministration }),
	record.Opt("maxDosePerLifetime", func(d *Dosage) **Quantity { return &d.MaxDosePerLifetime }),
)

func (*Dosage) FHIRType() string          { return "Dosage" }
func (d *Dosage) Fields() record.FieldSet { return dosageTable.Bind(d) }

// DosageDoseAndRate is Dosage.doseAndRate, the amount of medication.
type DosageDoseAndRate struct {
	Element
	Type *CodeableConcept
	Dose record.Choice
	Rate record.Choice
}

var doseAndRateTable = ElementTable("Dosage.doseAndRate", func(d *DosageDoseAndRate) *Element { return &d.Element },
	record.Opt("type", func(d *DosageDoseAndRate) **CodeableConcept { return &d.Type },
		record.Bind(Example, terminology.DoseRateType)),
	record.OneOf("dose", func(d *DosageDoseAndRate) *record.Choice { return &d.Dose },
		[]record.Alternative{record.Alt[Range](), record.Alt[Quantity]()}),
	record.OneOf("rate", func(d *DosageDoseAndRate) *record.Choice { return &d.Rate },
		[]record.Alternative{record.Alt[Ratio](), record.Alt[Range](), record.Alt[Quantity]()}),
)

func (*DosageDoseAndRate) FHIRType() string          { return "Dosage.doseAndRate" }
func (d *DosageDoseAndRate) Fields() record.FieldSet { return doseAndRateTable.Bind(d) }
