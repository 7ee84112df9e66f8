package icd

import (
	"github.com/schollz/progressbar/v3"
)

// rowProgress renders a progress bar on stderr while rows are written.
// A nil *rowProgress is valid and does nothing.
type rowProgress struct {
	bar *progressbar.ProgressBar
}

// newRowProgress returns nil unless enabled.
func newRowProgress(enabled bool, total int, description string) *rowProgress {
	if !enabled {
		return nil
	}

	return &rowProgress{
		bar: progressbar.Default(int64(total), description),
	}
}

// Advance moves the bar by one row.
func (p *rowProgress) Advance() {
	if p == nil {
		return
	}

	_ = p.bar.Add(1)
}

// Finish completes the bar.
func (p *rowProgress) Finish() {
	if p == nil {
		return
	}

	_ = p.bar.Finish()
}
