package ports

import (
	"context"

	"github.com/scwatts/ecocyc-pathways/internal/domain"
)

// AnnotationSource performs the remote lookups of the resolution pipeline.
type AnnotationSource interface {
	// SearchGene looks a gene up by exact common name. Found is false when the
	// response holds no Gene element.
	SearchGene(ctx context.Context, gene domain.GeneName) (domain.GeneHit, error)

	// TranscriptionUnits lists the units containing the gene, in response order.
	TranscriptionUnits(ctx context.Context, gene domain.Accession) ([]domain.TranscriptionUnit, error)

	// UnitPromoters lists the promoters of a unit via the dedicated endpoint.
	// It returns ErrEndpointDisabled when no endpoint is configured.
	UnitPromoters(ctx context.Context, unit domain.Accession) ([]domain.Promoter, error)

	// FetchPromoter dereferences a promoter reference through the object endpoint.
	FetchPromoter(ctx context.Context, ref domain.Accession) (domain.Promoter, error)
}
