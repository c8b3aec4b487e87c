package usecase

import (
	"context"

	"github.com/scwatts/ecocyc-pathways/internal/domain"
)

// fakeSource serves canned lookups and counts calls per method.
type fakeSource struct {
	hits      map[domain.GeneName]domain.GeneHit
	units     map[domain.Accession][]domain.TranscriptionUnit
	promoters map[domain.Accession][]domain.Promoter
	objects   map[domain.Accession]domain.Promoter

	searchErr   error
	unitsErr    error
	promoterErr error
	fetchErr    error
	disabled    bool

	searches int
	unitCall int
	promCall int
	fetches  []domain.Accession
}

func (f *fakeSource) SearchGene(_ context.Context, gene domain.GeneName) (domain.GeneHit, error) {
	f.searches++
	if f.searchErr != nil {
		return domain.GeneHit{}, f.searchErr
	}
	return f.hits[gene], nil
}

func (f *fakeSource) TranscriptionUnits(_ context.Context, gene domain.Accession) ([]domain.TranscriptionUnit, error) {
	f.unitCall++
	if f.unitsErr != nil {
		return nil, f.unitsErr
	}
	return f.units[gene], nil
}

func (f *fakeSource) UnitPromoters(_ context.Context, unit domain.Accession) ([]domain.Promoter, error) {
	f.promCall++
	if f.disabled {
		return nil, &domain.OpError{Op: "fake.unit_promoters", Kind: domain.KindInvalidConfig, Err: domain.ErrEndpointDisabled}
	}
	if f.promoterErr != nil {
		return nil, f.promoterErr
	}
	return f.promoters[unit], nil
}

func (f *fakeSource) FetchPromoter(_ context.Context, ref domain.Accession) (domain.Promoter, error) {
	f.fetches = append(f.fetches, ref)
	if f.fetchErr != nil {
		return domain.Promoter{}, f.fetchErr
	}
	return f.objects[ref], nil
}

func named(id, name string) domain.Promoter {
	return domain.Promoter{ID: domain.Accession(id), Name: domain.PromoterName{State: domain.NamePresent, Text: name}}
}

func ref(id, target string) domain.Promoter {
	return domain.Promoter{ID: domain.Accession(id), Name: domain.PromoterName{State: domain.NameDereference, Ref: domain.Accession(target)}}
}

func labeled(text string) domain.UnitLabel {
	return domain.UnitLabel{Text: text, Present: true}
}

// collect is an Emit that keeps records as TSV-like rows.
type collect struct {
	rows [][]string
	err  error
}

func (c *collect) emit(rec domain.AnnotationRecord) error {
	if c.err != nil {
		return c.err
	}
	c.rows = append(c.rows, rec.Fields())
	return nil
}

func (c *collect) joined() []string {
	out := make([]string, 0, len(c.rows))
	for _, r := range c.rows {
		s := ""
		for i, f := range r {
			if i > 0 {
				s += "\t"
			}
			s += f
		}
		out = append(out, s)
	}
	return out
}

// lacZSource is the single-unit single-promoter happy path.
func lacZSource() *fakeSource {
	return &fakeSource{
		hits: map[domain.GeneName]domain.GeneHit{
			"lacZ": {Accession: "EG10527", Found: true},
		},
		units: map[domain.Accession][]domain.TranscriptionUnit{
			"EG10527": {{ID: "TU00039", Label: labeled("lacZYA")}},
		},
		promoters: map[domain.Accession][]domain.Promoter{
			"TU00039": {named("PM00039", "lacZp")},
		},
	}
}
