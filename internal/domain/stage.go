package domain

// Stage is a state of the per-gene resolution machine:
//
//	START -> ACCESSION_RESOLVED -> UNITS_ENUMERATED -> (PROMOTERS_RESOLVED | NO_PROMOTER) -> DONE
//	START -> NOT_FOUND -> DONE
type Stage string

const (
	StageStart             Stage = "start"
	StageNotFound          Stage = "not_found"
	StageAccessionResolved Stage = "accession_resolved"
	StageUnitsEnumerated   Stage = "units_enumerated"
	StagePromotersResolved Stage = "promoters_resolved"
	StageNoPromoter        Stage = "no_promoter"
	StageDone              Stage = "done"
)

// Step names the remote lookup being performed; it is what failures report.
type Step string

const (
	StepResolveAccession    Step = "resolve_accession"
	StepResolveUnits        Step = "resolve_units"
	StepResolvePromoters    Step = "resolve_promoters"
	StepDereferencePromoter Step = "dereference_promoter"
)
