package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scwatts/ecocyc-pathways/internal/infra/config"
)

func initCmd() *cobra.Command {
	var dir string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a default ecocyc.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dir == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("get working directory: %w", err)
				}
				dir = wd
			}

			path, created, err := config.WriteDefault(dir, force)
			if err != nil {
				return err
			}
			if !created {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s already exists (use --force to overwrite)\n", path)
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", path)
			return nil
		},
	}

	c.Flags().StringVar(&dir, "path", "", "Directory to write ecocyc.yaml into (default: working directory)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing ecocyc.yaml")
	return c
}
