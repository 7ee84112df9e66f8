package app

import (
	"context"
	"fmt"

	"github.com/oshokin/icd-converter/internal/config"
	icd_service "github.com/oshokin/icd-converter/internal/service/icd"
)

// ExecuteParseCommand extracts the ICD mappings from the configured input and publishes them as JSON.
func ExecuteParseCommand(ctx context.Context, cfg *config.Config, streams Streams) error {
	ctx = newRunContext(ctx, "parse")

	result, err := icd_service.NewReparser(cfg).ParseMappings(ctx)
	if err != nil {
		return report(ctx, streams.Err, "Error parsing CSV file", err)
	}

	_, _ = fmt.Fprintf(streams.Out, "Successfully parsed data and saved to %s\n", result.OutputPath)

	return nil
}
