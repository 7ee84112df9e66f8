package icd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/oshokin/icd-converter/internal/logger"
)

// checkInputFile verifies that path is a regular file within the size limit.
// A limit of 0 disables the size check.
func checkInputFile(ctx context.Context, path string, maxSize int64) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to access input file: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("%w: %s", ErrInputIsDirectory, path)
	}

	size := info.Size()

	logger.Debugf(ctx, "Input file '%s' is %s", path, humanize.Bytes(uint64(size))) //nolint:gosec // Sizes are never negative.

	if maxSize > 0 && size > maxSize {
		return fmt.Errorf("%w: %s exceeds the limit of %s",
			ErrInputTooLarge,
			humanize.Bytes(uint64(size)),    //nolint:gosec // Sizes are never negative.
			humanize.Bytes(uint64(maxSize)), //nolint:gosec // The limit is checked to be positive.
		)
	}

	return nil
}

// logExtensionMismatch notes at debug level that path does not end with the expected extension.
func logExtensionMismatch(ctx context.Context, path, extension string) {
	if strings.EqualFold(filepath.Ext(path), extension) {
		return
	}

	logger.Debugf(ctx, "Output file '%s' does not have the '%s' extension", path, extension)
}
