package terminology

// Code system URIs used by the built-in value sets.
const (
	SystemFMStatus             = "http://hl7.org/fhir/fm-status"
	SystemClaimUse             = "http://hl7.org/fhir/claim-use"
	SystemClaimType            = "http://terminology.hl7.org/CodeSystem/claim-type"
	SystemClaimSubType         = "http://terminology.hl7.org/CodeSystem/ex-claimsubtype"
	SystemProcessPriority      = "http://terminology.hl7.org/CodeSystem/processpriority"
	SystemFundsReserve         = "http://terminology.hl7.org/CodeSystem/fundsreserve"
	SystemRelatedClaim         = "http://terminology.hl7.org/CodeSystem/ex-relatedclaimrelationship"
	SystemPayeeType            = "http://terminology.hl7.org/CodeSystem/payeetype"
	SystemCareTeamRole         = "http://terminology.hl7.org/CodeSystem/claimcareteamrole"
	SystemProviderQual         = "http://terminology.hl7.org/CodeSystem/ex-providerqualification"
	SystemInfoCategory         = "http://terminology.hl7.org/CodeSystem/claiminformationcategory"
	SystemClaimException       = "http://terminology.hl7.org/CodeSystem/claim-exception"
	SystemMissingTooth         = "http://terminology.hl7.org/CodeSystem/missingtoothreason"
	SystemDiagnosisType        = "http://terminology.hl7.org/CodeSystem/ex-diagnosistype"
	SystemDiagnosisOnAdmission = "http://terminology.hl7.org/CodeSystem/ex-diagnosis-on-admission"
	SystemDiagnosisGroup       = "http://terminology.hl7.org/CodeSystem/ex-diagnosisrelatedgroup"
	SystemProcedureType        = "http://terminology.hl7.org/CodeSystem/ex-procedure-type"
	SystemActCode              = "http://terminology.hl7.org/CodeSystem/v3-ActCode"
	SystemRevenueCenter        = "http://terminology.hl7.org/CodeSystem/ex-revenue-center"
	SystemBenefitCategory      = "http://terminology.hl7.org/CodeSystem/ex-benefitcategory"
	SystemUSCLS                = "http://terminology.hl7.org/CodeSystem/ex-USCLS"
	SystemModifiers            = "http://terminology.hl7.org/CodeSystem/modifiers"
	SystemProgramCode          = "http://terminology.hl7.org/CodeSystem/ex-programcode"
	SystemServicePlace         = "http://terminology.hl7.org/CodeSystem/ex-serviceplace"
	SystemTooth                = "http://terminology.hl7.org/CodeSystem/ex-tooth"
	SystemSurface              = "http://terminology.hl7.org/CodeSystem/FDI-surface"
	SystemRemittanceOutcome    = "http://hl7.org/fhir/remittance-outcome"
	SystemAdjudication         = "http://terminology.hl7.org/CodeSystem/adjudication"
	SystemAdjudicationReason   = "http://terminology.hl7.org/CodeSystem/adjudication-reason"
	SystemAdjudicationError    = "http://terminology.hl7.org/CodeSystem/adjudication-error"
	SystemPaymentType          = "http://terminology.hl7.org/CodeSystem/ex-paymenttype"
	SystemPaymentAdjustment    = "http://terminology.hl7.org/CodeSystem/payment-adjustment-reason"
	SystemForms                = "http://terminology.hl7.org/CodeSystem/forms-codes"
	SystemNoteType             = "http://hl7.org/fhir/note-type"
	SystemMedKnowledgeStatus   = "http://terminology.hl7.org/CodeSystem/medicationknowledge-status"
	SystemMedKnowledgeChar     = "http://terminology.hl7.org/CodeSystem/medicationknowledge-characteristic"
	SystemMonographType        = "http://terminology.hl7.org/CodeSystem/medicationknowledge-monograph-type"
	SystemIdentifierUse        = "http://hl7.org/fhir/identifier-use"
	SystemIdentifierType       = "http://terminology.hl7.org/CodeSystem/v2-0203"
	SystemQuantityComparator   = "http://hl7.org/fhir/quantity-comparator"
	SystemAddressUse           = "http://hl7.org/fhir/address-use"
	SystemAddressType          = "http://hl7.org/fhir/address-type"
	SystemNarrativeStatus      = "http://hl7.org/fhir/narrative-status"
	SystemUnitsOfTime          = "http://unitsofmeasure.org"
	SystemDaysOfWeek           = "http://hl7.org/fhir/days-of-week"
	SystemEventTiming          = "http://hl7.org/fhir/event-timing"
	SystemV3TimingEvent        = "http://terminology.hl7.org/CodeSystem/v3-TimingEvent"
	SystemGTSAbbreviation      = "http://terminology.hl7.org/CodeSystem/v3-GTSAbbreviation"
	SystemDoseRateType         = "http://terminology.hl7.org/CodeSystem/dose-rate-type"
	SystemCurrencies           = "urn:iso:std:iso:4217"
	SystemMimeTypes            = "urn:ietf:bcp:13"
	SystemLanguages            = "urn:ietf:bcp:47"
	SystemResourceTypes        = "http://hl7.org/fhir/resource-types"
	SystemSNOMED               = "http://snomed.info/sct"
	SystemICD10                = "http://hl7.org/fhir/sid/icd-10"
	SystemICD10Procedures      = "http://hl7.org/fhir/sid/ex-icd-10-procedures"
	SystemRxNorm               = "http://www.nlm.nih.gov/research/umls/rxnorm"
	SystemSecurityLabels       = "http://terminology.hl7.org/CodeSystem/v3-Confidentiality"
)

const vsBase = "http://hl7.org/fhir/ValueSet/"

// Value sets used by the Claim, ClaimResponse and MedicationKnowledge tables
// and by the shared datatypes.
var (
	FMStatus = NewValueSet(vsBase+"fm-status", "FinancialResourceStatusCodes",
		Codes(SystemFMStatus, "active", "cancelled", "draft", "entered-in-error"))
	ClaimUse = NewValueSet(vsBase+"claim-use", "Use",
		Codes(SystemClaimUse, "claim", "preauthorization", "predetermination"))
	ClaimType = NewValueSet(vsBase+"claim-type", "ClaimTypeCodes",
		Concepts(SystemClaimType,
			Concept{"institutional", "Institutional"},
			Concept{"oral", "Oral"},
			Concept{"pharmacy", "Pharmacy"},
			Concept{"professional", "Professional"},
			Concept{"vision", "Vision"}))
	ClaimSubType = NewValueSet(vsBase+"claim-subtype", "ExampleClaimSubTypeCodes",
		Codes(SystemClaimSubType, "ortho", "emergency"))
	ProcessPriority = NewValueSet(vsBase+"process-priority", "ProcessPriorityCodes",
		Concepts(SystemProcessPriority,
			Concept{"stat", "Immediate"},
			Concept{"normal", "Normal"},
			Concept{"deferred", "Deferred"}))
	FundsReserve = NewValueSet(vsBase+"fundsreserve", "FundsReservationCodes",
		Codes(SystemFundsReserve, "patient", "provider", "none"))
	RelatedClaimRelationship = NewValueSet(vsBase+"related-claim-relationship", "ExampleRelatedClaimRelationshipCodes",
		Codes(SystemRelatedClaim, "prior", "associated"))
	PayeeType = NewValueSet(vsBase+"payeetype", "ClaimPayeeTypeCodes",
		Codes(SystemPayeeType, "subscriber", "provider", "other"))
	CareTeamRole = NewValueSet(vsBase+"claim-careteamrole", "ClaimCareTeamRoleCodes",
		Codes(SystemCareTeamRole, "primary", "assist", "supervisor", "other"))
	ProviderQualification = NewValueSet(vsBase+"provider-qualification", "ExampleProviderQualificationCodes",
		Codes(SystemProviderQual, "311405", "604215", "604210"))
	InformationCategory = NewValueSet(vsBase+"claim-informationcategory", "ClaimInformationCategoryCodes",
		Codes(SystemInfoCategory, "info", "discharge", "onset", "related", "exception", "material",
			"attachment", "missingtooth", "prosthesis", "other", "hospitalized", "employmentimpacted",
			"externalcause", "patientreasonforvisit"))
	ClaimException = NewValueSet(vsBase+"claim-exception", "ExceptionCodes",
		Codes(SystemClaimException, "student", "disabled"))
	MissingToothReason = NewValueSet(vsBase+"missing-tooth-reason", "MissingToothReasonCodes",
		Codes(SystemMissingTooth, "e", "c", "u", "o"))
	ICD10 = NewValueSet(vsBase+"icd-10", "ICD-10Codes",
		WholeSystem(SystemICD10))
	DiagnosisType = NewValueSet(vsBase+"ex-diagnosistype", "ExampleDiagnosisTypeCodes",
		Codes(SystemDiagnosisType, "admitting", "clinical", "differential", "discharge", "laboratory",
			"nursing", "prenatal", "principal", "radiology", "remote", "retrospective", "self"))
	DiagnosisOnAdmission = NewValueSet(vsBase+"ex-diagnosis-on-admission", "ExampleDiagnosisOnAdmissionCodes",
		Codes(SystemDiagnosisOnAdmission, "y", "n", "u", "w"))
	DiagnosisRelatedGroup = NewValueSet(vsBase+"ex-diagnosisrelatedgroup", "ExampleDiagnosisRelatedGroupCodes",
		Codes(SystemDiagnosisGroup, "100", "101", "300", "400"))
	ProcedureType = NewValueSet(vsBase+"ex-procedure-type", "ExampleProcedureTypeCodes",
		Codes(SystemProcedureType, "primary", "secondary"))
	ICD10Procedures = NewValueSet(vsBase+"icd-10-procedures", "ICD-10ProcedureCodes",
		WholeSystem(SystemICD10Procedures))
	AccidentType = NewValueSet("http://terminology.hl7.org/ValueSet/v3-ActIncidentCode", "ActIncidentCode",
		Codes(SystemActCode, "MVA", "SCHOOL", "SPT", "WPA"))
	RevenueCenter = NewValueSet(vsBase+"ex-revenue-center", "ExampleRevenueCenterCodes",
		Codes(SystemRevenueCenter, "0370", "0420", "0421", "0440", "0441", "0550", "0551", "0552", "0010"))
	BenefitCategory = NewValueSet(vsBase+"ex-benefitcategory", "BenefitCategoryCodes",
		Codes(SystemBenefitCategory, "1", "2", "3", "4", "5", "14", "23", "24", "25", "26", "27", "28",
			"30", "35", "36", "37", "49", "55", "56", "61", "62", "63", "69", "76", "F1", "F3", "F4", "F6"))
	ServiceUSCLS = NewValueSet(vsBase+"service-uscls", "USCLSCodes",
		Codes(SystemUSCLS, "1101", "1102", "1103", "1201", "1205", "2101", "2102", "2141", "2601",
			"11101", "11102", "11103", "11104", "21211", "21212", "27211", "67211", "99111", "99333", "99555"))
	ClaimModifiers = NewValueSet(vsBase+"claim-modifiers", "ModifierTypeCodes",
		Codes(SystemModifiers, "a", "b", "c", "e", "rooh", "x"))
	ProgramCode = NewValueSet(vsBase+"ex-program-code", "ExampleProgramReasonCodes",
		Codes(SystemProgramCode, "as", "hd", "auscr", "none"))
	ServicePlace = NewValueSet(vsBase+"service-place", "ExampleServicePlaceCodes",
		Codes(SystemServicePlace, "01", "03", "04", "05", "06", "07", "08", "09", "11", "12", "13",
			"14", "15", "19", "20", "21", "22", "23", "24", "25", "26"))
	Tooth = NewValueSet(vsBase+"tooth", "OralSiteCodes",
		Codes(SystemTooth, "0", "1", "2", "3", "4", "5", "6", "7", "8",
			"11", "12", "13", "14", "15", "16", "17", "18",
			"21", "22", "23", "24", "25", "26", "27", "28",
			"31", "32", "33", "34", "35", "36", "37", "38",
			"41", "42", "43", "44", "45", "46", "47", "48"))
	Surface = NewValueSet(vsBase+"surface", "SurfaceCodes",
		Codes(SystemSurface, "M", "O", "I", "D", "B", "V", "L", "MO", "DO", "DI", "MOD"))
	RemittanceOutcome = NewValueSet(vsBase+"remittance-outcome", "ClaimProcessingCodes",
		Codes(SystemRemittanceOutcome, "queued", "complete", "error", "partial"))
	Adjudication = NewValueSet(vsBase+"adjudication", "AdjudicationValueCodes",
		Codes(SystemAdjudication, "submitted", "copay", "eligible", "deductible", "unallocdeduct",
			"eligpercent", "tax", "benefit"))
	AdjudicationReason = NewValueSet(vsBase+"adjudication-reason", "AdjudicationReasonCodes",
		Codes(SystemAdjudicationReason, "ar001", "ar002"))
	AdjudicationError = NewValueSet(vsBase+"adjudication-error", "AdjudicationErrorCodes",
		Codes(SystemAdjudicationError, "a001", "a002"))
	PaymentType = NewValueSet(vsBase+"ex-paymenttype", "ExamplePaymentTypeCodes",
		Codes(SystemPaymentType, "complete", "partial"))
	PaymentAdjustmentReason = NewValueSet(vsBase+"payment-adjustment-reason", "PaymentAdjustmentReasonCodes",
		Codes(SystemPaymentAdjustment, "a001", "a002"))
	Forms = NewValueSet(vsBase+"forms", "FormCodes",
		Codes(SystemForms, "1", "2"))
	NoteType = NewValueSet(vsBase+"note-type", "NoteType",
		Codes(SystemNoteType, "display", "print", "printoper"))
	MedicationKnowledgeStatus = NewValueSet(vsBase+"medicationknowledge-status", "MedicationKnowledgeStatusCodes",
		Codes(SystemMedKnowledgeStatus, "active", "inactive", "entered-in-error"))
	MedicationKnowledgeCharacteristic = NewValueSet(vsBase+"medicationknowledge-characteristic", "MedicationKnowledgeCharacteristicCodes",
		Codes(SystemMedKnowledgeChar, "imprintcd", "size", "shape", "color", "coating", "scoring", "logo", "image"))
	MedicationKnowledgeMonographType = NewValueSet(vsBase+"medicationknowledge-monograph-type", "MedicationKnowledgeMonographTypeCodes",
		Codes(SystemMonographType, "dm", "pm"))
	MedicationCodes = NewValueSet(vsBase+"medication-codes", "SNOMEDCTMedicationCodes",
		WholeSystem(SystemSNOMED))
	MedicationFormCodes = NewValueSet(vsBase+"medication-form-codes", "SNOMEDCTFormCodes",
		WholeSystem(SystemSNOMED))
	RouteCodes = NewValueSet(vsBase+"route-codes", "SNOMEDCTRouteCodes",
		WholeSystem(SystemSNOMED))
	IdentifierUse = NewValueSet(vsBase+"identifier-use", "IdentifierUse",
		Codes(SystemIdentifierUse, "usual", "official", "temp", "secondary", "old"))
	IdentifierType = NewValueSet(vsBase+"identifier-type", "IdentifierTypeCodes",
		Codes(SystemIdentifierType, "DL", "PPN", "BRN", "MR", "MCN", "EN", "TAX", "NIIP", "PRN",
			"MD", "DR", "ACSN", "UDI", "SNO", "SB", "PLAC", "FILL", "JHN"))
	QuantityComparator = NewValueSet(vsBase+"quantity-comparator", "QuantityComparator",
		Codes(SystemQuantityComparator, "<", "<=", ">=", ">"))
	AddressUse = NewValueSet(vsBase+"address-use", "AddressUse",
		Codes(SystemAddressUse, "home", "work", "temp", "old", "billing"))
	AddressType = NewValueSet(vsBase+"address-type", "AddressType",
		Codes(SystemAddressType, "postal", "physical", "both"))
	NarrativeStatus = NewValueSet(vsBase+"narrative-status", "NarrativeStatus",
		Codes(SystemNarrativeStatus, "generated", "extensions", "additional", "empty"))
	UnitsOfTime = NewValueSet(vsBase+"units-of-time", "UnitsOfTime",
		Codes(SystemUnitsOfTime, "s", "min", "h", "d", "wk", "mo", "a"))
	DaysOfWeek = NewValueSet(vsBase+"days-of-week", "DaysOfWeek",
		Codes(SystemDaysOfWeek, "mon", "tue", "wed", "thu", "fri", "sat", "sun"))
	EventTiming = NewValueSet(vsBase+"event-timing", "EventTiming",
		Codes(SystemEventTiming, "MORN", "MORN.early", "MORN.late", "NOON", "AFT", "AFT.early",
			"AFT.late", "EVE", "EVE.early", "EVE.late", "NIGHT", "PHS"),
		Codes(SystemV3TimingEvent, "HS", "WAKE", "C", "CM", "CD", "CV", "AC", "ACM", "ACD", "ACV",
			"PC", "PCM", "PCD", "PCV"))
	TimingAbbreviation = NewValueSet(vsBase+"timing-abbreviation", "TimingAbbreviation",
		Codes(SystemGTSAbbreviation, "BID", "TID", "QID", "AM", "PM", "QD", "QOD", "Q1H", "Q2H",
			"Q3H", "Q4H", "Q6H", "Q8H", "BED", "WK", "MO"))
	DoseRateType = NewValueSet(vsBase+"dose-rate-type", "DoseAndRateType",
		Codes(SystemDoseRateType, "calculated", "ordered"))
	Currencies = NewValueSet(vsBase+"currencies", "Currencies",
		Codes(SystemCurrencies, iso4217...))
	MimeTypes = NewValueSet(vsBase+"mimetypes", "MimeTypes",
		WholeSystem(SystemMimeTypes))
	Languages = NewValueSet(vsBase+"languages", "CommonLanguages",
		WholeSystem(SystemLanguages))
	ResourceTypes = NewValueSet(vsBase+"resource-types", "ResourceType",
		WholeSystem(SystemResourceTypes))
	SecurityLabels = NewValueSet(vsBase+"security-labels", "SecurityLabels",
		Codes(SystemSecurityLabels, "U", "L", "M", "N", "R", "V"))
)

// Builtin returns every built-in value set.
func Builtin() []*ValueSet {
	return []*ValueSet{
		FMStatus, ClaimUse, ClaimType, ClaimSubType, ProcessPriority, FundsReserve,
		RelatedClaimRelationship, PayeeType, CareTeamRole, ProviderQualification,
		InformationCategory, ClaimException, MissingToothReason, ICD10, DiagnosisType,
		DiagnosisOnAdmission, DiagnosisRelatedGroup, ProcedureType, ICD10Procedures,
		AccidentType, RevenueCenter, BenefitCategory, ServiceUSCLS, ClaimModifiers,
		ProgramCode, ServicePlace, Tooth, Surface, RemittanceOutcome, Adjudication,
		AdjudicationReason, AdjudicationError, PaymentType, PaymentAdjustmentReason,
		Forms, NoteType, MedicationKnowledgeStatus, MedicationKnowledgeCharacteristic,
		MedicationKnowledgeMonographType, MedicationCodes, MedicationFormCodes, RouteCodes,
		IdentifierUse, IdentifierType, QuantityComparator, AddressUse, AddressType, NarrativeStatus,
		UnitsOfTime, DaysOfWeek, EventTiming, TimingAbbreviation, DoseRateType, Currencies, MimeTypes,
		Languages, ResourceTypes, SecurityLabels,
	}
}

// iso4217 lists the active ISO 4217 currency codes.
var iso4217 = []string{
	"AED", "AFN", "ALL", "AMD", "ANG", "AOA", "ARS", "AUD", "AWG", "AZN", "BAM", "BBD", "BDT", "BGN",
	"BHD", "BIF", "BMD", "BND", "BOB", "BOV", "BRL", "BSD", "BTN", "BWP", "BYN", "BZD", "CAD", "CDF",
	"CHE", "CHF", "CHW", "CLF", "CLP", "CNY", "COP", "COU", "CRC", "CUC", "CUP", "CVE", "CZK", "DJF",
	"DKK", "DOP", "DZD", "EGP", "ERN", "ETB", "EUR", "FJD", "FKP", "GBP", "GEL", "GHS", "GIP", "GMD",
	"GNF", "GTQ", "GYD", "HKD", "HNL", "HRK", "HTG", "HUF", "IDR", "ILS", "INR", "IQD", "IRR", "ISK",
	"JMD", "JOD", "JPY", "KES", "KGS", "KHR", "KMF", "KPW", "KRW", "KWD", "KYD", "KZT", "LAK", "LBP",
	"LKR", "LRD", "LSL", "LYD", "MAD", "MDL", "MGA", "MKD", "MMK", "MNT", "MOP", "MRU", "MUR", "MVR",
	"MWK", "MXN", "MXV", "MYR", "MZN", "NAD", "NGN", "NIO", "NOK", "NPR", "NZD", "OMR", "PAB", "PEN",
	"PGK", "PHP", "PKR", "PLN", "PYG", "QAR", "RON", "RSD", "RUB", "RWF", "SAR", "SBD", "SCR", "SDG",
	"SEK", "SGD", "SHP", "SLL", "SOS", "SRD", "SSP", "STN", "SVC", "SYP", "SZL", "THB", "TJS", "TMT",
	"TND", "TOP", "TRY", "TTD", "TWD", "TZS", "UAH", "UGX", "USD", "USN", "UYI", "UYU", "UYW", "UZS",
	"VES", "VND", "VUV", "WST", "XAF", "XAG", "XAU", "XBA", "XBB", "XBC", "XBD", "XCD", "XDR", "XOF",
	"XPD", "XPF", "XPT", "XSU", "XTS", "XUA", "XXX", "YER", "ZAR", "ZMW", "ZWL",
}
