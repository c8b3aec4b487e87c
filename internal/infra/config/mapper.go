package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/scwatts/ecocyc-pathways/internal/domain"
)

// MapConfig applies parsed values on top of domain.DefaultConfig and validates the result.
// An endpoint set to the empty string disables that lookup.
func MapConfig(path string, y YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	in := y.Ecocyc

	if s := strings.TrimSpace(in.Organism); s != "" {
		cfg.Organism = s
	}
	if strings.TrimSpace(in.Promoters) != "" {
		st, err := domain.ParsePromoterStrategy(in.Promoters)
		if err != nil {
			return domain.Config{}, invalidField(path, "promoters", err.Error())
		}
		cfg.Promoters = st
	}

	setString(&cfg.Endpoints.GeneSearch, in.Endpoints.GeneSearch)
	setString(&cfg.Endpoints.TranscriptionUnits, in.Endpoints.TranscriptionUnits)
	setString(&cfg.Endpoints.UnitPromoters, in.Endpoints.UnitPromoters)
	setString(&cfg.Endpoints.Object, in.Endpoints.Object)

	durations := []struct {
		field string
		raw   string
		dst   *time.Duration
	}{
		{"http.timeout", in.HTTP.Timeout, &cfg.HTTP.Timeout},
		{"http.backoff", in.HTTP.Backoff, &cfg.HTTP.Backoff},
		{"http.max_backoff", in.HTTP.MaxBackoff, &cfg.HTTP.MaxBackoff},
	}
	for _, d := range durations {
		if strings.TrimSpace(d.raw) == "" {
			continue
		}
		v, err := time.ParseDuration(strings.TrimSpace(d.raw))
		if err != nil {
			return domain.Config{}, invalidField(path, d.field, err.Error())
		}
		*d.dst = v
	}
	if in.HTTP.Retries != nil {
		cfg.HTTP.Retries = *in.HTTP.Retries
	}
	if s := strings.TrimSpace(in.HTTP.UserAgent); s != "" {
		cfg.HTTP.UserAgent = s
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:     "config.map",
		Kind:   domain.KindInvalidConfig,
		Target: path,
		Err:    fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
