package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/oshokin/icd-converter/internal/app"
	"github.com/oshokin/icd-converter/internal/config"
)

func newSearchCommand(opts *rootOptions) *cobra.Command {
	var formatName string

	searchCmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the parsed mappings by code or name.",
		Long: `Prints the mappings whose code or name contains the query, ignoring case
and full-width forms of letters and digits. Without a query, reads one query
per line from standard input until EOF.`,
		Example: `  icd-converter search F70
  icd-converter search --format json 糖尿病
  printf 'E10\n5A10\n' | icd-converter search`,
		PreRunE: opts.loadConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := app.ParseOutputFormat(formatName)
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")

			return app.ExecuteSearchCommand(cmd.Context(), opts.cfg, streamsOf(cmd), format, query, len(args) == 0)
		},
	}

	flags := searchCmd.Flags()

	flags.StringVarP(
		&formatName,
		"format",
		"f",
		string(app.FormatTable),
		"output format: table, json or yaml.")

	flags.StringP(
		"mappings",
		"m",
		"",
		"parsed JSON file to search (default is '"+config.DefaultOutputPath+"').")

	return searchCmd
}
