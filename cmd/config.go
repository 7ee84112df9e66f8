package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/icd-converter/internal/config"
)

func newConfigCommand(opts *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management commands.",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file filled with the defaults.",
		Long: fmt.Sprintf(`Creates '%s' (or the file given by --config) with every option
set to its default value. An existing file is never overwritten.`,
			config.DefaultConfigFilename),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filename := opts.configFilename
			if filename == "" {
				filename = config.DefaultConfigFilename
			}

			if err := config.SaveDefaultConfig(filename); err != nil {
				return fmt.Errorf("failed to create configuration file: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to %s\n", filename)

			return nil
		},
	}

	configCmd.AddCommand(initCmd)

	return configCmd
}
