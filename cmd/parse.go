package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/icd-converter/internal/app"
	"github.com/oshokin/icd-converter/internal/config"
)

func newParseCommand(opts *rootOptions) *cobra.Command {
	parseCmd := &cobra.Command{
		Use:   "parse",
		Short: "Extract ICD-10/ICD-11 mappings from the converted CSV into JSON.",
		Long: `Skips the leading title lines of the converted CSV, takes the 2nd to 5th
columns as ICD10_Code, ICD10_Name, ICD11_Code and ICD11_Name, drops rows
without any code and writes the rest as a JSON array. Missing values are
written as null.`,
		Args:    cobra.NoArgs,
		PreRunE: opts.loadConfig,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.ExecuteParseCommand(cmd.Context(), opts.cfg, streamsOf(cmd))
		},
	}

	flags := parseCmd.Flags()

	flags.StringP(
		"input",
		"i",
		"",
		"CSV file to read (default is '"+config.DefaultInputPath+"').")

	flags.StringP(
		"output",
		"o",
		"",
		"JSON file to write, its directory is created if needed (default is '"+config.DefaultOutputPath+"').")

	flags.Int64(
		"header-rows",
		config.DefaultHeaderRows,
		"number of leading lines to skip before the data rows.")

	return parseCmd
}
