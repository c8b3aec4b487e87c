package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/scwatts/ecocyc-pathways/internal/domain"
	"github.com/scwatts/ecocyc-pathways/internal/ports"
)

// GeneFailure records a gene whose pipeline stopped on an error.
type GeneFailure struct {
	Gene domain.GeneName
	Step domain.Step
	Kind domain.ErrorKind
	Err  error
}

// BatchSummary counts what a batch produced.
type BatchSummary struct {
	Genes      int
	Records    int
	NotFound   int
	NoPromoter int
	Failed     int
	Failures   []GeneFailure

	StartedAt time.Time
	EndedAt   time.Time
}

// RunBatch feeds every gene of a list through a resolver, writing records as
// they are produced. A failing gene is logged and skipped; the batch goes on.
type RunBatch struct {
	genes    ports.GeneLister
	resolver GeneResolver
	out      ports.RecordWriter
	log      *slog.Logger
}

func NewRunBatch(gl ports.GeneLister, r GeneResolver, w ports.RecordWriter, opts ...Option) *RunBatch {
	o := buildOptions(opts)
	return &RunBatch{
		genes:    gl,
		resolver: r,
		out:      w,
		log:      o.log,
	}
}

// Execute returns an error only when the gene list cannot be read, the output
// cannot be written, or ctx is done. The summary is filled in every case.
func (uc *RunBatch) Execute(ctx context.Context, genesPath string) (BatchSummary, error) {
	sum := BatchSummary{StartedAt: time.Now()}

	genes, err := uc.genes.ListGenes(genesPath)
	if err != nil {
		sum.EndedAt = time.Now()
		return sum, err
	}
	uc.log.Info("batch.start", "path", genesPath, "genes", len(genes))

	emit := func(rec domain.AnnotationRecord) error {
		return uc.out.Write(rec)
	}

	for _, gene := range genes {
		if err := ctx.Err(); err != nil {
			sum.EndedAt = time.Now()
			return sum, err
		}

		sum.Genes++
		outcome, err := uc.resolver.Resolve(ctx, gene, emit)
		sum.Records += outcome.Records
		sum.NoPromoter += outcome.NoPromoter
		if outcome.NotFound {
			sum.NotFound++
		}

		if err == nil {
			continue
		}

		var ee *emitError
		if errors.As(err, &ee) {
			sum.EndedAt = time.Now()
			return sum, ee.err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			sum.EndedAt = time.Now()
			return sum, ctxErr
		}

		f := GeneFailure{Gene: gene, Kind: domain.KindOf(err), Err: err}
		var ge *domain.GeneError
		if errors.As(err, &ge) {
			f.Step = ge.Step
		}
		sum.Failed++
		sum.Failures = append(sum.Failures, f)
		uc.log.Warn("gene.failed",
			"gene", string(gene),
			"step", string(f.Step),
			"kind", string(f.Kind),
			"err", err,
		)
	}

	sum.EndedAt = time.Now()
	uc.log.Info("batch.done",
		"genes", sum.Genes,
		"records", sum.Records,
		"not_found", sum.NotFound,
		"no_promoter", sum.NoPromoter,
		"failed", sum.Failed,
	)
	return sum, nil
}
