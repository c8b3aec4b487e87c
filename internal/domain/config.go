package domain

import (
	"fmt"
	"strings"
	"time"
)

// Config represents the resolver configuration, optionally loaded from ecocyc.yaml.
type Config struct {
	Organism  string
	Endpoints EndpointsConfig
	Promoters PromoterStrategy
	HTTP      HTTPConfig
}

// EndpointsConfig holds the URL templates of the remote service.
// Empty UnitPromoters or Object disables that lookup.
type EndpointsConfig struct {
	GeneSearch         string
	TranscriptionUnits string
	UnitPromoters      string
	Object             string
}

// PromoterStrategy selects where a unit's promoters come from.
type PromoterStrategy string

const (
	// PromotersAuto uses embedded promoters when the unit has any, else the promoter endpoint.
	PromotersAuto PromoterStrategy = "auto"
	// PromotersEmbedded only uses promoters embedded in the unit element.
	PromotersEmbedded PromoterStrategy = "embedded"
	// PromotersEndpoint always queries the transcription-unit-promoter endpoint.
	PromotersEndpoint PromoterStrategy = "endpoint"
)

// ParsePromoterStrategy accepts auto|embedded|endpoint (case-insensitive).
func ParsePromoterStrategy(s string) (PromoterStrategy, error) {
	switch v := PromoterStrategy(strings.ToLower(strings.TrimSpace(s))); v {
	case PromotersAuto, PromotersEmbedded, PromotersEndpoint:
		return v, nil
	default:
		return "", fmt.Errorf("unsupported promoter strategy %q (expected auto|embedded|endpoint)", s)
	}
}

type HTTPConfig struct {
	// Timeout bounds a single attempt, including reading the body.
	Timeout time.Duration
	// Retries is the number of extra attempts after a transport failure.
	Retries int
	// Backoff is the initial retry interval; it grows exponentially.
	Backoff    time.Duration
	MaxBackoff time.Duration
	UserAgent  string
}

// Default endpoint templates. The gene search query is
// [g:g<-{{org}}^^all-genes,g^common-name="{{gene}}"], stored percent-encoded.
const (
	DefaultGeneSearchURL         = `https://websvc.biocyc.org/xmlquery?%5Bg:g%3C-{{org}}%5E%5Eall-genes,g%5Ecommon-name=%22{{gene}}%22%5D`
	DefaultTranscriptionUnitsURL = `https://websvc.biocyc.org/apixml?fn=transcription-units-of-gene&id={{id}}&detail=full`
	DefaultUnitPromotersURL      = `https://websvc.biocyc.org/apixml?fn=transcription-unit-promoter&id={{id}}&detail=full`
	DefaultObjectURL             = `https://websvc.biocyc.org/getxml?{{id}}`
)

// DefaultConfig provides sane defaults if ecocyc.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		Organism: "ECOLI",
		Endpoints: EndpointsConfig{
			GeneSearch:         DefaultGeneSearchURL,
			TranscriptionUnits: DefaultTranscriptionUnitsURL,
			UnitPromoters:      DefaultUnitPromotersURL,
			Object:             DefaultObjectURL,
		},
		Promoters: PromotersAuto,
		HTTP: HTTPConfig{
			Timeout:    30 * time.Second,
			Retries:    3,
			Backoff:    500 * time.Millisecond,
			MaxBackoff: 10 * time.Second,
		},
	}
}

// Validate checks templates and strategy consistency.
func (c Config) Validate() error {
	checks := []struct {
		field    string
		tmpl     string
		required bool
		allowed  []string
	}{
		{"endpoints.gene_search", c.Endpoints.GeneSearch, true, []string{VarGene, VarOrg}},
		{"endpoints.transcription_units", c.Endpoints.TranscriptionUnits, true, []string{VarID, VarOrg}},
		{"endpoints.unit_promoters", c.Endpoints.UnitPromoters, false, []string{VarID, VarOrg}},
		{"endpoints.object", c.Endpoints.Object, false, []string{VarID, VarOrg}},
	}
	for _, ch := range checks {
		if strings.TrimSpace(ch.tmpl) == "" {
			if ch.required {
				return invalidConfig(ch.field, "template is required")
			}
			continue
		}
		if err := CheckTemplate(ch.tmpl, ch.allowed...); err != nil {
			return invalidConfig(ch.field, err.Error())
		}
	}

	if _, err := ParsePromoterStrategy(string(c.Promoters)); err != nil {
		return invalidConfig("promoters", err.Error())
	}
	if c.Promoters == PromotersEndpoint && strings.TrimSpace(c.Endpoints.UnitPromoters) == "" {
		return invalidConfig("endpoints.unit_promoters", "required when promoters=endpoint")
	}
	if c.HTTP.Retries < 0 {
		return invalidConfig("http.retries", "must be >= 0")
	}
	if c.HTTP.Timeout < 0 {
		return invalidConfig("http.timeout", "must be >= 0")
	}
	return nil
}

func invalidConfig(field, msg string) error {
	return &OpError{
		Op:   "config.validate",
		Kind: KindInvalidConfig,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, ErrInvalidConfig),
	}
}
