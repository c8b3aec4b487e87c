package biocyc

import (
	"context"
	"fmt"
	"strings"

	"github.com/scwatts/ecocyc-pathways/internal/domain"
	"github.com/scwatts/ecocyc-pathways/internal/infra/httpclient"
	"github.com/scwatts/ecocyc-pathways/internal/ports"
)

// Getter fetches a URL; *httpclient.Executor satisfies it.
type Getter interface {
	Get(ctx context.Context, url string) (httpclient.ResponseData, error)
}

// Client implements ports.AnnotationSource against the BioCyc web service.
type Client struct {
	http      Getter
	org       string
	endpoints domain.EndpointsConfig
}

func NewClient(getter Getter, cfg domain.Config) *Client {
	return &Client{
		http:      getter,
		org:       cfg.Organism,
		endpoints: cfg.Endpoints,
	}
}

var _ ports.AnnotationSource = (*Client)(nil)

func (c *Client) SearchGene(ctx context.Context, gene domain.GeneName) (domain.GeneHit, error) {
	const op = "biocyc.search_gene"

	doc, url, err := c.fetch(ctx, op, c.endpoints.GeneSearch, domain.Vars{
		domain.VarGene: string(gene),
		domain.VarOrg:  c.org,
	})
	if err != nil {
		return domain.GeneHit{}, err
	}

	if len(doc.Genes) == 0 {
		return domain.GeneHit{Found: false}, nil
	}

	id := strings.TrimSpace(doc.Genes[0].ID)
	if id == "" {
		return domain.GeneHit{}, domain.Malformed(op, url, "Gene element has no ID attribute")
	}
	return domain.GeneHit{Accession: domain.Accession(id), Found: true}, nil
}

func (c *Client) TranscriptionUnits(ctx context.Context, gene domain.Accession) ([]domain.TranscriptionUnit, error) {
	const op = "biocyc.transcription_units"

	doc, url, err := c.fetch(ctx, op, c.endpoints.TranscriptionUnits, c.idVars(gene))
	if err != nil {
		return nil, err
	}

	units := make([]domain.TranscriptionUnit, 0, len(doc.Units))
	for i, u := range doc.Units {
		id := strings.TrimSpace(u.ID)
		if id == "" {
			return nil, domain.Malformed(op, url, "Transcription-Unit[%d] has no ID attribute", i)
		}

		embedded := make([]domain.Promoter, 0, len(u.Promoters)+len(u.ComponentPromoters))
		for _, p := range u.Promoters {
			embedded = append(embedded, mapPromoter(p))
		}
		for _, p := range u.ComponentPromoters {
			embedded = append(embedded, mapPromoter(p))
		}

		units = append(units, domain.TranscriptionUnit{
			ID:        domain.Accession(id),
			Label:     domain.LabelOf(u.CommonName),
			Promoters: embedded,
		})
	}
	return units, nil
}

func (c *Client) UnitPromoters(ctx context.Context, unit domain.Accession) ([]domain.Promoter, error) {
	const op = "biocyc.unit_promoters"
	if strings.TrimSpace(c.endpoints.UnitPromoters) == "" {
		return nil, &domain.OpError{Op: op, Kind: domain.KindInvalidConfig, Err: domain.ErrEndpointDisabled}
	}

	doc, _, err := c.fetch(ctx, op, c.endpoints.UnitPromoters, c.idVars(unit))
	if err != nil {
		return nil, err
	}

	out := make([]domain.Promoter, 0, len(doc.Promoters))
	for _, p := range doc.Promoters {
		out = append(out, mapPromoter(p))
	}
	return out, nil
}

func (c *Client) FetchPromoter(ctx context.Context, ref domain.Accession) (domain.Promoter, error) {
	const op = "biocyc.fetch_promoter"
	if strings.TrimSpace(c.endpoints.Object) == "" {
		return domain.Promoter{}, &domain.OpError{Op: op, Kind: domain.KindInvalidConfig, Err: domain.ErrEndpointDisabled}
	}

	doc, url, err := c.fetch(ctx, op, c.endpoints.Object, c.idVars(ref.Qualified(c.org)))
	if err != nil {
		return domain.Promoter{}, err
	}

	for _, p := range doc.Promoters {
		if p.CommonName != nil && strings.TrimSpace(*p.CommonName) != "" {
			return mapPromoter(p), nil
		}
	}
	return domain.Promoter{}, domain.Malformed(op, url, "no Promoter/common-name for %s", ref)
}

func (c *Client) idVars(id domain.Accession) domain.Vars {
	return domain.Vars{
		domain.VarID:  string(id),
		domain.VarOrg: c.org,
	}
}

func (c *Client) fetch(ctx context.Context, op, tmpl string, vars domain.Vars) (ptoolsXML, string, error) {
	url, err := domain.RenderTemplate(tmpl, vars)
	if err != nil {
		return ptoolsXML{}, "", &domain.OpError{Op: op, Kind: domain.KindOf(err), Err: err}
	}

	resp, err := c.http.Get(ctx, url)
	if err != nil {
		return ptoolsXML{}, url, err
	}

	doc, err := decode(resp.BodyBytes)
	if err != nil {
		return ptoolsXML{}, url, &domain.OpError{
			Op:     op,
			Kind:   domain.KindMalformed,
			Target: url,
			Err:    fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err),
		}
	}
	return doc, url, nil
}

func mapPromoter(p xmlPromoter) domain.Promoter {
	id := strings.TrimSpace(p.ID)
	if id == "" {
		id = strings.TrimSpace(p.FrameID)
	}
	return domain.Promoter{
		ID:   domain.Accession(id),
		Name: domain.PromoterNameOf(p.CommonName, domain.RefAttrs{
			FrameID:  p.FrameID,
			Resource: p.Resource,
			Class:    p.Class,
			Detail:   p.Detail,
		}),
	}
}
