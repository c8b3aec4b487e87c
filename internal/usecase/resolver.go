package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/scwatts/ecocyc-pathways/internal/domain"
)

// Emit receives records as soon as they are produced. An error from Emit aborts
// the gene and is returned unwrapped.
type Emit func(domain.AnnotationRecord) error

// GeneOutcome summarizes one gene's pass through the pipeline.
type GeneOutcome struct {
	Final      domain.Stage
	NotFound   bool
	Units      int
	Records    int
	NoPromoter int
}

// GeneResolver runs the resolution pipeline for one gene.
type GeneResolver interface {
	Resolve(ctx context.Context, gene domain.GeneName, emit Emit) (GeneOutcome, error)
}

type Option func(*options)

type options struct {
	log *slog.Logger
}

// WithLogger sets the logger used for stage transitions and per-gene failures.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// emitError marks failures of the record sink so callers can tell them apart
// from lookup failures.
type emitError struct{ err error }

func (e *emitError) Error() string { return e.err.Error() }
func (e *emitError) Unwrap() error { return e.err }

func emitRecord(emit Emit, rec domain.AnnotationRecord, out *GeneOutcome) error {
	if err := emit(rec); err != nil {
		return &emitError{err: err}
	}
	out.Records++
	return nil
}

func geneErr(gene domain.GeneName, step domain.Step, err error) error {
	return &domain.GeneError{Gene: gene, Step: step, Err: err}
}
