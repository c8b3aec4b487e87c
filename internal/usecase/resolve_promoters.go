package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/scwatts/ecocyc-pathways/internal/domain"
	"github.com/scwatts/ecocyc-pathways/internal/ports"
)

// ResolvePromoters maps a gene to (promoter, unit genes) records through three
// dependent lookups: accession, transcription units, promoters.
type ResolvePromoters struct {
	source   ports.AnnotationSource
	strategy domain.PromoterStrategy
	log      *slog.Logger
}

func NewResolvePromoters(src ports.AnnotationSource, strategy domain.PromoterStrategy, opts ...Option) *ResolvePromoters {
	o := buildOptions(opts)
	if strategy == "" {
		strategy = domain.PromotersAuto
	}
	return &ResolvePromoters{
		source:   src,
		strategy: strategy,
		log:      o.log,
	}
}

var _ GeneResolver = (*ResolvePromoters)(nil)

func (uc *ResolvePromoters) Resolve(ctx context.Context, gene domain.GeneName, emit Emit) (GeneOutcome, error) {
	out := GeneOutcome{Final: domain.StageStart}

	hit, err := uc.source.SearchGene(ctx, gene)
	if err != nil {
		return out, geneErr(gene, domain.StepResolveAccession, err)
	}
	if !hit.Found {
		out.NotFound = true
		uc.transition(gene, &out, domain.StageNotFound)
		if err := emitRecord(emit, domain.SentinelRecord(gene, domain.SentinelGeneNotFound), &out); err != nil {
			return out, err
		}
		uc.transition(gene, &out, domain.StageDone)
		return out, nil
	}
	uc.transition(gene, &out, domain.StageAccessionResolved)

	units, err := uc.source.TranscriptionUnits(ctx, hit.Accession)
	if err != nil {
		return out, geneErr(gene, domain.StepResolveUnits, err)
	}
	out.Units = len(units)
	uc.transition(gene, &out, domain.StageUnitsEnumerated)

	for _, unit := range units {
		label := unit.Label.Or(gene)

		promoters, err := uc.promotersOf(ctx, unit)
		if err != nil {
			return out, geneErr(gene, domain.StepResolvePromoters, err)
		}

		if len(promoters) == 0 {
			out.NoPromoter++
			uc.transition(gene, &out, domain.StageNoPromoter)
			if err := emitRecord(emit, domain.SentinelRecord(gene, domain.SentinelNoPromoter), &out); err != nil {
				return out, err
			}
			continue
		}

		for _, p := range promoters {
			name, step, err := uc.nameOf(ctx, unit, p)
			if err != nil {
				return out, geneErr(gene, step, err)
			}
			if err := emitRecord(emit, domain.PromoterRecord(gene, name, label), &out); err != nil {
				return out, err
			}
		}
		uc.transition(gene, &out, domain.StagePromotersResolved)
	}

	uc.transition(gene, &out, domain.StageDone)
	return out, nil
}

func (uc *ResolvePromoters) promotersOf(ctx context.Context, unit domain.TranscriptionUnit) ([]domain.Promoter, error) {
	switch uc.strategy {
	case domain.PromotersEmbedded:
		return unit.Promoters, nil
	case domain.PromotersEndpoint:
		return uc.source.UnitPromoters(ctx, unit.ID)
	default:
		if len(unit.Promoters) > 0 {
			return unit.Promoters, nil
		}
		ps, err := uc.source.UnitPromoters(ctx, unit.ID)
		if errors.Is(err, domain.ErrEndpointDisabled) {
			return nil, nil
		}
		return ps, err
	}
}

// nameOf returns the promoter's common name, dereferencing it with exactly one
// lookup when only a reference is present.
func (uc *ResolvePromoters) nameOf(ctx context.Context, unit domain.TranscriptionUnit, p domain.Promoter) (string, domain.Step, error) {
	switch p.Name.State {
	case domain.NamePresent:
		return p.Name.Text, "", nil
	case domain.NameDereference:
		fetched, err := uc.source.FetchPromoter(ctx, p.Name.Ref)
		if err != nil {
			return "", domain.StepDereferencePromoter, err
		}
		if fetched.Name.State != domain.NamePresent {
			return "", domain.StepDereferencePromoter,
				domain.Malformed("usecase.dereference_promoter", string(p.Name.Ref), "referenced promoter has no common-name")
		}
		return fetched.Name.Text, "", nil
	default:
		return "", domain.StepResolvePromoters,
			domain.Malformed("usecase.resolve_promoters", string(unit.ID), "promoter %q has neither common-name nor reference", p.ID)
	}
}

func (uc *ResolvePromoters) transition(gene domain.GeneName, out *GeneOutcome, next domain.Stage) {
	uc.log.Debug("gene.stage", "gene", string(gene), "from", string(out.Final), "to", string(next))
	out.Final = next
}
