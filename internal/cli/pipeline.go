package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scwatts/ecocyc-pathways/internal/domain"
	"github.com/scwatts/ecocyc-pathways/internal/infra/biocyc"
	"github.com/scwatts/ecocyc-pathways/internal/infra/config"
	"github.com/scwatts/ecocyc-pathways/internal/infra/genefile"
	"github.com/scwatts/ecocyc-pathways/internal/infra/httpclient"
	"github.com/scwatts/ecocyc-pathways/internal/infra/logger"
	"github.com/scwatts/ecocyc-pathways/internal/infra/recordout"
	"github.com/scwatts/ecocyc-pathways/internal/usecase"
)

type pipelineMode int

const (
	modePromoters pipelineMode = iota
	modeUnits
)

type pipelineFlags struct {
	genes     string
	format    string
	keepBlank bool
}

func bindPipelineFlags(c *cobra.Command, f *pipelineFlags) {
	c.Flags().StringVarP(&f.genes, "genes", "g", "", "File with one gene name per line, plain or gzip (required)")
	c.Flags().StringVarP(&f.format, "format", "f", recordout.FormatTSV, "Output format: tsv|jsonl")
	c.Flags().BoolVar(&f.keepBlank, "keep-blank", false, "Query blank lines as empty gene names instead of skipping them")
}

func runPipeline(cmd *cobra.Command, global globalFlags, flags pipelineFlags, mode pipelineMode) error {
	genesPath := strings.TrimSpace(flags.genes)
	if genesPath == "" {
		return usagef(cmd, "--genes is required")
	}
	if st, err := os.Stat(genesPath); err != nil || st.IsDir() {
		return usagef(cmd, "--genes %q is not a readable file", genesPath)
	}

	out, err := recordout.New(flags.format, cmd.OutOrStdout())
	if err != nil {
		return usagef(cmd, "%v", err)
	}

	cleanup, err := logger.Setup(logger.Config{
		Path:   global.logFile,
		Debug:  global.debug,
		Quiet:  global.quiet,
		Stderr: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	defer func() { _ = cleanup() }()
	log := logger.L()

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	cfg, cfgPath, err := config.Resolve(global.configPath, wd)
	if err != nil {
		return err
	}
	log.Debug("config.loaded",
		"path", cfgPath,
		"organism", cfg.Organism,
		"promoters", string(cfg.Promoters),
	)

	uc := usecase.NewRunBatch(
		genefile.NewReader(genefile.WithKeepBlank(flags.keepBlank)),
		newResolver(newSource(cfg), cfg, mode),
		out,
		usecase.WithLogger(log),
	)

	sum, err := uc.Execute(cmd.Context(), genesPath)
	if !global.quiet {
		printSummary(cmd.ErrOrStderr(), sum)
	}
	return err
}

func newSource(cfg domain.Config) *biocyc.Client {
	exec := httpclient.NewExecutor(
		httpclient.WithClient(httpclient.New(httpclient.FromDomain(cfg.HTTP))),
		httpclient.WithTimeout(cfg.HTTP.Timeout),
		httpclient.WithRetries(cfg.HTTP.Retries),
		httpclient.WithBackoff(cfg.HTTP.Backoff, cfg.HTTP.MaxBackoff),
		httpclient.WithUserAgent(cfg.HTTP.UserAgent),
		httpclient.WithLogger(logger.L()),
	)
	return biocyc.NewClient(exec, cfg)
}

func newResolver(src *biocyc.Client, cfg domain.Config, mode pipelineMode) usecase.GeneResolver {
	if mode == modeUnits {
		return usecase.NewResolveUnits(src, usecase.WithLogger(logger.L()))
	}
	return usecase.NewResolvePromoters(src, cfg.Promoters, usecase.WithLogger(logger.L()))
}
