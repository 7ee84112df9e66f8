package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/oshokin/icd-converter/internal/logger"
)

// ErrReported marks a command failure that was already reported to the user.
var ErrReported = errors.New("command failed")

// Streams holds the standard streams of a command.
type Streams struct {
	// In is read by interactive commands.
	In io.Reader
	// Out receives command results.
	Out io.Writer
	// Err receives failure reports.
	Err io.Writer
}

// newRunContext attaches a logger tagged with the command name and a fresh run ID.
func newRunContext(ctx context.Context, command string) context.Context {
	ctx = logger.WithName(ctx, command)

	return logger.WithKV(ctx, "run_id", uuid.NewString())
}

// report writes the failure line for err and marks it as reported.
func report(ctx context.Context, w io.Writer, prefix string, err error) error {
	logger.Debugf(ctx, "%s: %+v", prefix, err)

	_, _ = fmt.Fprintf(w, "%s: %v\n", prefix, err)

	return fmt.Errorf("%w: %w", ErrReported, err)
}
