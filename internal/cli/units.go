package cli

import "github.com/spf13/cobra"

func unitsCmd(global *globalFlags) *cobra.Command {
	var flags pipelineFlags

	c := &cobra.Command{
		Use:   "units",
		Short: "Print the transcription units of each gene (no promoter lookup)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPipeline(cmd, *global, flags, modeUnits)
		},
	}
	bindPipelineFlags(c, &flags)
	return c
}
