package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/scwatts/ecocyc-pathways/internal/infra/recordout"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func Execute() {
	// Receiving SIGPIPE turns a closed stdout into an EPIPE write error
	// instead of killing the process, so exitCode can see it.
	pipes := make(chan os.Signal, 1)
	signal.Notify(pipes, syscall.SIGPIPE)
	defer signal.Stop(pipes)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	cmd := newRootCmd()
	err := cmd.ExecuteContext(ctx)
	stop()

	code := exitCode(err)
	if code != exitOK {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		var ue *usageError
		if errors.As(err, &ue) && ue.cmd != nil {
			fmt.Fprint(os.Stderr, ue.cmd.UsageString())
		}
	}
	os.Exit(code)
}

func newRootCmd() *cobra.Command {
	var global globalFlags
	var flags pipelineFlags

	cmd := &cobra.Command{
		Use:   "ecocyc",
		Short: "Map E. coli genes to transcription units and promoters via BioCyc",
		Long: "ecocyc reads gene names (one per line) and prints, for each gene, the promoters\n" +
			"of every transcription unit containing it, as tab-separated rows on stdout.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPipeline(cmd, global, flags, modePromoters)
		},
	}
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &usageError{cmd: c, err: err}
	})

	cmd.PersistentFlags().StringVar(&global.configPath, "config", "", "Path to ecocyc.yaml (optional; searched upward from the working directory if omitted)")
	cmd.PersistentFlags().BoolVar(&global.debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&global.logFile, "log-file", "", "Write JSON logs to this file instead of stderr")
	cmd.PersistentFlags().BoolVarP(&global.quiet, "quiet", "q", false, "Only log warnings and skip the run summary")
	bindPipelineFlags(cmd, &flags)

	cmd.AddCommand(unitsCmd(&global))
	cmd.AddCommand(initCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}

type globalFlags struct {
	configPath string
	debug      bool
	logFile    string
	quiet      bool
}

// usageError is a command-line mistake; it exits 2 and prints usage.
type usageError struct {
	cmd *cobra.Command
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usagef(cmd *cobra.Command, format string, args ...any) error {
	return &usageError{cmd: cmd, err: fmt.Errorf(format, args...)}
}

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ue *usageError
	if errors.As(err, &ue) {
		return exitUsage
	}
	// Downstream closed the pipe (e.g. `| head`); not a failure.
	if recordout.IsBrokenPipe(err) {
		return exitOK
	}
	return exitError
}
