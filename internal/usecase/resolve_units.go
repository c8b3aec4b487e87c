package usecase

import (
	"context"
	"log/slog"

	"github.com/scwatts/ecocyc-pathways/internal/domain"
	"github.com/scwatts/ecocyc-pathways/internal/ports"
)

// ResolveUnits is the two-lookup variant: it stops at transcription units and
// emits (gene, unit genes) per unit.
type ResolveUnits struct {
	source ports.AnnotationSource
	log    *slog.Logger
}

func NewResolveUnits(src ports.AnnotationSource, opts ...Option) *ResolveUnits {
	o := buildOptions(opts)
	return &ResolveUnits{source: src, log: o.log}
}

var _ GeneResolver = (*ResolveUnits)(nil)

func (uc *ResolveUnits) Resolve(ctx context.Context, gene domain.GeneName, emit Emit) (GeneOutcome, error) {
	out := GeneOutcome{Final: domain.StageStart}

	hit, err := uc.source.SearchGene(ctx, gene)
	if err != nil {
		return out, geneErr(gene, domain.StepResolveAccession, err)
	}
	if !hit.Found {
		out.NotFound = true
		out.Final = domain.StageNotFound
		if err := emitRecord(emit, domain.SentinelRecord(gene, domain.SentinelGeneNotFound), &out); err != nil {
			return out, err
		}
		out.Final = domain.StageDone
		return out, nil
	}

	units, err := uc.source.TranscriptionUnits(ctx, hit.Accession)
	if err != nil {
		return out, geneErr(gene, domain.StepResolveUnits, err)
	}
	out.Units = len(units)
	uc.log.Debug("gene.units", "gene", string(gene), "accession", string(hit.Accession), "count", len(units))

	for _, unit := range units {
		if err := emitRecord(emit, domain.UnitRecord(gene, unit.Label.Or(gene)), &out); err != nil {
			return out, err
		}
	}

	out.Final = domain.StageDone
	return out, nil
}
