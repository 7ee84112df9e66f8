package spreadsheet

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/oshokin/icd-converter/internal/logger"
	"github.com/oshokin/icd-converter/internal/table"
)

// Static error definitions for better error handling.
var (
	// ErrNoSheets indicates that the workbook contains no sheets.
	ErrNoSheets = errors.New("workbook has no sheets")
	// ErrSheetNotFound indicates that the requested sheet does not exist.
	ErrSheetNotFound = errors.New("sheet not found")
)

var (
	// bracketedSectionPattern matches colour, locale and condition sections of a number format.
	//nolint:gochecknoglobals // This is immutable, pre-compiled regex pattern and used as a constant.
	bracketedSectionPattern = regexp.MustCompile(`\[[^\]]*\]|"[^"]*"`)

	// dateFormatPattern matches date and time tokens of a custom number format.
	//nolint:gochecknoglobals // This is immutable, pre-compiled regex pattern and used as a constant.
	dateFormatPattern = regexp.MustCompile(`[ymdhs]`)
)

// Built-in number format IDs that render dates or times.
const (
	builtinDateFormatFirst       = 14
	builtinDateFormatLast        = 22
	builtinLocaleDateFormatFirst = 27
	builtinLocaleDateFormatLast  = 36
	builtinTimeFormatFirst       = 45
	builtinTimeFormatLast        = 47
	builtinEastAsianFormatFirst  = 50
	builtinEastAsianFormatLast   = 58
)

const (
	// firstSheetIndex is the index of the sheet converted by default.
	firstSheetIndex = 0
	// missingSheetIndex is returned by excelize for unknown sheet names.
	missingSheetIndex = -1
)

// Reader reads workbook sheets into tables.
type Reader struct{}

// NewReader creates a workbook reader.
func NewReader() *Reader {
	return new(Reader)
}

// ReadSheet loads the named sheet of the workbook at path, or its first sheet when sheetName is empty.
// Numbers keep their stored value whatever their number format; text and dates keep the displayed value.
// Each cell is tagged as text, number, date or absent.
func (r *Reader) ReadSheet(ctx context.Context, path, sheetName string) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}

	defer f.Close() //nolint:errcheck // The workbook is only read.

	sheetName, err = resolveSheetName(f, sheetName)
	if err != nil {
		return nil, err
	}

	logger.Debugf(ctx, "Reading sheet '%s' of '%s'", sheetName, path)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows of sheet '%s': %w", sheetName, err)
	}

	result := &table.Table{Rows: make([]table.Row, 0, len(rows))}

	for rowIndex, values := range rows {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		row := make(table.Row, len(values))

		for columnIndex, value := range values {
			if table.IsAbsent(value) {
				row[columnIndex] = table.AbsentCell()
				continue
			}

			cellName, nameErr := excelize.CoordinatesToCellName(columnIndex+1, rowIndex+1)
			if nameErr != nil {
				return nil, fmt.Errorf("failed to resolve cell name: %w", nameErr)
			}

			kind := cellKind(f, sheetName, cellName)
			if kind == table.KindNumber {
				value, err = f.GetCellValue(sheetName, cellName, excelize.Options{RawCellValue: true})
				if err != nil {
					return nil, fmt.Errorf("failed to read cell '%s': %w", cellName, err)
				}

				if table.IsAbsent(value) {
					row[columnIndex] = table.AbsentCell()
					continue
				}
			}

			row[columnIndex] = table.NewCell(kind, value)
		}

		result.Rows = append(result.Rows, row)
	}

	return result, nil
}

func resolveSheetName(f *excelize.File, sheetName string) (string, error) {
	if sheetName == "" {
		sheetName = f.GetSheetName(firstSheetIndex)
		if sheetName == "" {
			return "", ErrNoSheets
		}

		return sheetName, nil
	}

	index, err := f.GetSheetIndex(sheetName)
	if err != nil {
		return "", fmt.Errorf("%w: '%s': %w", ErrSheetNotFound, sheetName, err)
	}

	if index == missingSheetIndex {
		return "", fmt.Errorf("%w: '%s'", ErrSheetNotFound, sheetName)
	}

	return sheetName, nil
}

// cellKind tags a non-empty cell. Numeric cells carrying a date or time format are dates.
func cellKind(f *excelize.File, sheetName, cellName string) table.Kind {
	cellType, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return table.KindText
	}

	switch cellType {
	case excelize.CellTypeDate:
		return table.KindDate
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		if isDateFormatted(f, sheetName, cellName) {
			return table.KindDate
		}

		return table.KindNumber
	default:
		return table.KindText
	}
}

func isDateFormatted(f *excelize.File, sheetName, cellName string) bool {
	styleID, err := f.GetCellStyle(sheetName, cellName)
	if err != nil || styleID == 0 {
		return false
	}

	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}

	if style.CustomNumFmt != nil {
		return isDateNumberFormat(*style.CustomNumFmt)
	}

	return isBuiltinDateFormat(style.NumFmt)
}

func isBuiltinDateFormat(numFmt int) bool {
	return (numFmt >= builtinDateFormatFirst && numFmt <= builtinDateFormatLast) ||
		(numFmt >= builtinLocaleDateFormatFirst && numFmt <= builtinLocaleDateFormatLast) ||
		(numFmt >= builtinTimeFormatFirst && numFmt <= builtinTimeFormatLast) ||
		(numFmt >= builtinEastAsianFormatFirst && numFmt <= builtinEastAsianFormatLast)
}

// isDateNumberFormat reports whether a custom number format renders a date or time.
func isDateNumberFormat(numFmt string) bool {
	format := strings.ToLower(bracketedSectionPattern.ReplaceAllString(numFmt, ""))

	return dateFormatPattern.MatchString(format)
}
