package icd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/oshokin/icd-converter/internal/config"
	"github.com/oshokin/icd-converter/internal/constants"
	"github.com/oshokin/icd-converter/internal/icd"
	"github.com/oshokin/icd-converter/internal/logger"
	"github.com/oshokin/icd-converter/internal/table"
	"github.com/oshokin/icd-converter/internal/utils"
)

// Reparser turns the fixed-layout mapping CSV into the published JSON document.
type Reparser interface {
	// ParseMappings reads the configured input and writes the configured output.
	ParseMappings(ctx context.Context) (*ParseResult, error)
}

// ParseResult describes a finished reparse.
type ParseResult struct {
	// InputPath is the CSV file that was read.
	InputPath string
	// OutputPath is the JSON file that was written.
	OutputPath string
	// Stats counts the rows read, dropped and kept.
	Stats icd.ExtractStats
}

// ReparserImpl implements Reparser for the ICD mapping layout.
type ReparserImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// layout locates the mapping columns in the source rows.
	layout icd.Layout
}

// NewReparser creates a reparser for the default mapping layout.
func NewReparser(cfg *config.Config) Reparser {
	return &ReparserImpl{
		cfg:    cfg,
		layout: icd.DefaultLayout,
	}
}

// ParseMappings reads the configured input and writes the configured output.
// The output directory is created when it does not exist.
func (r *ReparserImpl) ParseMappings(ctx context.Context) (*ParseResult, error) {
	result := &ParseResult{
		InputPath:  r.cfg.InputPath,
		OutputPath: r.cfg.OutputPath,
	}

	if err := checkInputFile(ctx, result.InputPath, r.cfg.ParsedMaxInputSize); err != nil {
		return nil, err
	}

	source, err := r.readSource(result.InputPath)
	if err != nil {
		return nil, err
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	mappings, stats := icd.Extract(source, r.layout)
	result.Stats = stats

	logger.DebugKV(ctx, "ICD mappings extracted",
		"rows_read", stats.RowsRead,
		"rows_dropped", stats.RowsDropped,
		"records_kept", stats.RecordsKept)

	logExtensionMismatch(ctx, result.OutputPath, constants.ExtensionJSON)

	if err = utils.EnsureParentDir(result.OutputPath); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	err = utils.WriteFileAtomically(result.OutputPath, func(w io.Writer) error {
		return icd.WriteJSON(w, mappings, int(r.cfg.JSONIndent))
	})
	if err != nil {
		return nil, fmt.Errorf("failed to write json file: %w", err)
	}

	return result, nil
}

func (r *ReparserImpl) readSource(path string) (*table.Table, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file: %w", err)
	}

	defer file.Close() //nolint:errcheck // The file is only read.

	return table.ReadCSV(file, int(r.cfg.HeaderRows))
}
