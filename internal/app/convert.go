package app

import (
	"context"
	"fmt"

	"github.com/oshokin/icd-converter/internal/config"
	icd_service "github.com/oshokin/icd-converter/internal/service/icd"
	"github.com/oshokin/icd-converter/internal/spreadsheet"
)

// ExecuteConvertCommand converts the workbook at excelPath into the CSV file at csvPath.
func ExecuteConvertCommand(ctx context.Context, cfg *config.Config, streams Streams, excelPath, csvPath string) error {
	ctx = newRunContext(ctx, "convert")

	converter := icd_service.NewConverter(cfg, spreadsheet.NewReader())

	result, err := converter.ConvertWorkbook(ctx, excelPath, csvPath)
	if err != nil {
		return report(ctx, streams.Err, "Error converting Excel file", err)
	}

	_, _ = fmt.Fprintf(streams.Out, "Successfully converted %s to %s\n", result.SourcePath, result.DestinationPath)

	return nil
}
