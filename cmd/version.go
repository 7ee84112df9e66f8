package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/icd-converter/internal/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "icd-converter "+version.Full())
		},
	}
}
