package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/icd-converter/internal/config"
	"github.com/oshokin/icd-converter/internal/icd"
	icd_service "github.com/oshokin/icd-converter/internal/service/icd"
)

// OutputFormat selects how search results are printed.
type OutputFormat string

// Supported output formats.
const (
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
	FormatYAML  OutputFormat = "yaml"
)

// ErrUnknownOutputFormat indicates an unsupported --format value.
var ErrUnknownOutputFormat = errors.New("unknown output format")

// emptyField is printed in table output for absent values.
const emptyField = "-"

// ParseOutputFormat validates an output format name.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch format := OutputFormat(strings.ToLower(strings.TrimSpace(s))); format {
	case FormatTable, FormatJSON, FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("%w: '%s' (expected table, json or yaml)", ErrUnknownOutputFormat, s)
	}
}

// ExecuteSearchCommand searches the published mappings.
// With a query it prints the matches once; without one it answers
// queries read line by line from streams.In until EOF.
func ExecuteSearchCommand(
	ctx context.Context,
	cfg *config.Config,
	streams Streams,
	format OutputFormat,
	query string,
	interactive bool,
) error {
	ctx = newRunContext(ctx, "search")

	searcher, err := icd_service.NewSearcher(cfg)
	if err != nil {
		return report(ctx, streams.Err, "Error searching ICD data", err)
	}

	printer := newResultPrinter(streams.Out, format, int(cfg.JSONIndent))

	if !interactive {
		err = searchOnce(ctx, searcher, printer, query)
	} else {
		err = searchInteractive(ctx, searcher, printer, streams.In)
	}

	if closeErr := printer.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		return report(ctx, streams.Err, "Error searching ICD data", err)
	}

	return nil
}

func searchOnce(ctx context.Context, searcher icd_service.Searcher, printer *resultPrinter, query string) error {
	results, err := searcher.Search(ctx, query)
	if err != nil {
		return err
	}

	return printer.Print(query, results)
}

func searchInteractive(ctx context.Context, searcher icd_service.Searcher, printer *resultPrinter, in io.Reader) error {
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}

		if err := searchOnce(ctx, searcher, printer, query); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read queries: %w", err)
	}

	return nil
}

// resultPrinter writes search results in one output format.
type resultPrinter struct {
	out         io.Writer
	format      OutputFormat
	indent      int
	yamlEncoder *yaml.Encoder
}

func newResultPrinter(out io.Writer, format OutputFormat, indent int) *resultPrinter {
	p := &resultPrinter{
		out:    out,
		format: format,
		indent: indent,
	}

	if format == FormatYAML {
		p.yamlEncoder = yaml.NewEncoder(out)
		p.yamlEncoder.SetIndent(max(indent, 1))
	}

	return p
}

// Print writes the results of one query.
func (p *resultPrinter) Print(query string, results []*icd.Mapping) error {
	switch p.format {
	case FormatJSON:
		return icd.WriteJSON(p.out, results, p.indent)
	case FormatYAML:
		if results == nil {
			results = []*icd.Mapping{}
		}

		if err := p.yamlEncoder.Encode(results); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}

		return nil
	default:
		return p.printTable(query, results)
	}
}

// Close flushes buffered output.
func (p *resultPrinter) Close() error {
	if p.yamlEncoder == nil {
		return nil
	}

	if err := p.yamlEncoder.Close(); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}

	return nil
}

func (p *resultPrinter) printTable(query string, results []*icd.Mapping) error {
	if len(results) == 0 {
		_, err := fmt.Fprintf(p.out, "No mappings found for '%s'\n", query)

		return err
	}

	w := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(w, strings.Join([]string{
		icd.FieldICD10Code,
		icd.FieldICD10Name,
		icd.FieldICD11Code,
		icd.FieldICD11Name,
	}, "\t"))

	for _, mapping := range results {
		fields := mapping.Fields()
		row := make([]string, 0, len(fields))

		for _, field := range fields {
			if field == nil {
				row = append(row, emptyField)

				continue
			}

			row = append(row, *field)
		}

		_, _ = fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	return w.Flush()
}
