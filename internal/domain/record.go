package domain

// Sentinel markers rendered in place of a missing field.
const (
	SentinelGeneNotFound = "no_gene_found_in_ecoli_db"
	SentinelNoPromoter   = "no_promoter_with_evidence"
)

// RecordKind distinguishes output rows.
type RecordKind string

const (
	RecordPromoter RecordKind = "promoter"
	RecordUnit     RecordKind = "unit"
	RecordSentinel RecordKind = "sentinel"
)

// AnnotationRecord is one output row.
//
//	promoter: gene, promoter, unit genes
//	unit:     gene, unit genes
//	sentinel: gene, sentinel
type AnnotationRecord struct {
	Kind      RecordKind `json:"kind"`
	Gene      GeneName   `json:"gene"`
	Promoter  string     `json:"promoter,omitempty"`
	UnitGenes string     `json:"unit_genes,omitempty"`
	Sentinel  string     `json:"sentinel,omitempty"`
}

func PromoterRecord(gene GeneName, promoter, unitGenes string) AnnotationRecord {
	return AnnotationRecord{Kind: RecordPromoter, Gene: gene, Promoter: promoter, UnitGenes: unitGenes}
}

func UnitRecord(gene GeneName, unitGenes string) AnnotationRecord {
	return AnnotationRecord{Kind: RecordUnit, Gene: gene, UnitGenes: unitGenes}
}

func SentinelRecord(gene GeneName, sentinel string) AnnotationRecord {
	return AnnotationRecord{Kind: RecordSentinel, Gene: gene, Sentinel: sentinel}
}

// Fields returns the row columns in output order.
func (r AnnotationRecord) Fields() []string {
	switch r.Kind {
	case RecordPromoter:
		return []string{string(r.Gene), r.Promoter, r.UnitGenes}
	case RecordUnit:
		return []string{string(r.Gene), r.UnitGenes}
	default:
		return []string{string(r.Gene), r.Sentinel}
	}
}
