package config

// YAMLConfig mirrors ecocyc.yaml. Pointer fields distinguish "unset" from zero.
type YAMLConfig struct {
	Ecocyc struct {
		Organism  string        `yaml:"organism"`
		Promoters string        `yaml:"promoters"`
		Endpoints YAMLEndpoints `yaml:"endpoints"`
		HTTP      YAMLHTTP      `yaml:"http"`
	} `yaml:"ecocyc"`
}

type YAMLEndpoints struct {
	GeneSearch         *string `yaml:"gene_search"`
	TranscriptionUnits *string `yaml:"transcription_units"`
	UnitPromoters      *string `yaml:"unit_promoters"`
	Object             *string `yaml:"object"`
}

type YAMLHTTP struct {
	Timeout    string `yaml:"timeout"`
	Retries    *int   `yaml:"retries"`
	Backoff    string `yaml:"backoff"`
	MaxBackoff string `yaml:"max_backoff"`
	UserAgent  string `yaml:"user_agent"`
}
