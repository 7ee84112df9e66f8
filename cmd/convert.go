package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/icd-converter/internal/app"
)

// convertArgsCount is the number of positional arguments of the convert command.
const convertArgsCount = 2

func newConvertCommand(opts *rootOptions) *cobra.Command {
	convertCmd := &cobra.Command{
		Use:   "convert <excel_path> <csv_path>",
		Short: "Convert the first sheet of an Excel workbook to CSV.",
		Long: `Reads the first sheet of the workbook (or the sheet given by --sheet)
and writes every row to a comma-separated UTF-8 file. The first sheet row
becomes the CSV header. Surrounding quotes are removed from both paths.`,
		Args:    cobra.ExactArgs(convertArgsCount),
		PreRunE: opts.loadConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.ExecuteConvertCommand(cmd.Context(), opts.cfg, streamsOf(cmd), args[0], args[1])
		},
	}

	flags := convertCmd.Flags()

	flags.StringP(
		"sheet",
		"s",
		"",
		"name of the sheet to convert (default is the first sheet).")

	flags.BoolP(
		"progress",
		"p",
		false,
		"show a progress bar while rows are written.")

	return convertCmd
}
