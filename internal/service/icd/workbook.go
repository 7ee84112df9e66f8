package icd

//go:generate $MOCKGEN -source=workbook.go -destination=mocks/workbook_mock.go

import (
	"context"

	"github.com/oshokin/icd-converter/internal/table"
)

// WorkbookReader loads one sheet of a workbook into a table.
type WorkbookReader interface {
	// ReadSheet reads the named sheet, or the first sheet when sheetName is empty.
	ReadSheet(ctx context.Context, path, sheetName string) (*table.Table, error)
}
