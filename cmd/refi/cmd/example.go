package cmd

import (
	"fmt"

	"github.com/rpgo/refi-calculator/internal/config"
	"github.com/rpgo/refi-calculator/internal/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newExampleCmd() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print or write an example configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewInputParser().CreateExampleConfiguration()
			if outputFile != "" {
				if err := output.SaveConfiguration(cfg, outputFile); err != nil {
					return fmt.Errorf("failed to write %s: %w", outputFile, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", outputFile)
				return nil
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "file to write instead of stdout")
	return cmd
}
