package icd

import (
	"context"
	"fmt"
	"io"

	"github.com/oshokin/icd-converter/internal/config"
	"github.com/oshokin/icd-converter/internal/constants"
	"github.com/oshokin/icd-converter/internal/logger"
	"github.com/oshokin/icd-converter/internal/table"
	"github.com/oshokin/icd-converter/internal/utils"
)

// Converter flattens a workbook sheet into a CSV file.
type Converter interface {
	// ConvertWorkbook writes the configured sheet of the workbook at excelPath to csvPath.
	ConvertWorkbook(ctx context.Context, excelPath, csvPath string) (*ConvertResult, error)
}

// ConvertResult describes a finished conversion.
type ConvertResult struct {
	// SourcePath is the workbook path with surrounding quotes removed.
	SourcePath string
	// DestinationPath is the CSV path with surrounding quotes removed.
	DestinationPath string
	// Rows is the number of rows written, header included.
	Rows int
	// Columns is the number of fields in every written row.
	Columns int
}

// ConverterImpl implements Converter on top of a WorkbookReader.
type ConverterImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// workbookReader loads sheets from workbook files.
	workbookReader WorkbookReader
}

// NewConverter creates a workbook converter.
func NewConverter(cfg *config.Config, workbookReader WorkbookReader) Converter {
	return &ConverterImpl{
		cfg:            cfg,
		workbookReader: workbookReader,
	}
}

// ConvertWorkbook writes the configured sheet of the workbook at excelPath to csvPath.
// The first sheet row becomes the CSV header; no index column is added.
func (c *ConverterImpl) ConvertWorkbook(ctx context.Context, excelPath, csvPath string) (*ConvertResult, error) {
	result := &ConvertResult{
		SourcePath:      utils.TrimPathQuotes(excelPath),
		DestinationPath: utils.TrimPathQuotes(csvPath),
	}

	if err := checkInputFile(ctx, result.SourcePath, c.cfg.ParsedMaxInputSize); err != nil {
		return nil, err
	}

	sheet, err := c.workbookReader.ReadSheet(ctx, result.SourcePath, c.cfg.SheetName)
	if err != nil {
		return nil, err
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	logExtensionMismatch(ctx, result.DestinationPath, constants.ExtensionCSV)

	result.Rows = sheet.Len()
	result.Columns = sheet.Width()

	logger.DebugKV(ctx, "Workbook sheet loaded", "rows", result.Rows, "columns", result.Columns)

	progress := newRowProgress(c.cfg.ShowProgress, result.Rows, "Writing rows")

	err = utils.WriteFileAtomically(result.DestinationPath, func(w io.Writer) error {
		return table.WriteCSV(w, sheet, progress.Advance)
	})

	progress.Finish()

	if err != nil {
		return nil, fmt.Errorf("failed to write csv file: %w", err)
	}

	return result, nil
}
