package table

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 indicates that delimited text is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 text")

const (
	// Delimiter separates fields in delimited text.
	Delimiter = ','

	// utf8BOM is stripped from the start of delimited text.
	utf8BOM = "\ufeff"
)

// ReadCSV parses comma-delimited UTF-8 text into a table of text cells.
// The first skipLines physical lines are discarded whatever they contain.
// Rows may have different field counts; empty lines are ignored.
// Text that is not valid UTF-8, skipped lines included, is an error naming its line.
func ReadCSV(r io.Reader, skipLines int) (*Table, error) {
	reader := bufio.NewReader(r)

	for lineNumber := 0; lineNumber < skipLines; lineNumber++ {
		line, err := reader.ReadString('\n')
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("%w: line %d", ErrInvalidUTF8, lineNumber+1)
		}

		if errors.Is(err, io.EOF) {
			return new(Table), nil
		}

		if err != nil {
			return nil, fmt.Errorf("failed to skip header lines: %w", err)
		}
	}

	if skipLines == 0 {
		if err := skipBOM(reader); err != nil {
			return nil, err
		}
	}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = Delimiter
	csvReader.FieldsPerRecord = -1
	csvReader.LazyQuotes = true

	result := new(Table)

	for {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to parse csv: %w", err)
		}

		row := make(Row, len(record))
		for i, field := range record {
			if !utf8.ValidString(field) {
				line, column := csvReader.FieldPos(i)

				return nil, fmt.Errorf("%w: line %d, column %d", ErrInvalidUTF8, line+skipLines, column)
			}

			row[i] = TextCell(field)
		}

		result.Rows = append(result.Rows, row)
	}

	return result, nil
}

func skipBOM(reader *bufio.Reader) error {
	prefix, err := reader.Peek(len(utf8BOM))
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read csv: %w", err)
	}

	if strings.HasPrefix(string(prefix), utf8BOM) {
		_, _ = reader.Discard(len(utf8BOM))
	}

	return nil
}

// WriteCSV writes the table as comma-delimited UTF-8 text.
// Every row is padded to the table width and absent cells are written as empty fields.
// afterRow, when not nil, is called once per written row.
func WriteCSV(w io.Writer, t *Table, afterRow func()) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = Delimiter

	if t == nil {
		return nil
	}

	width := t.Width()

	for _, row := range t.Rows {
		if err := csvWriter.Write(row.Strings(width)); err != nil {
			return fmt.Errorf("csv write error: %w", err)
		}

		if afterRow != nil {
			afterRow()
		}
	}

	csvWriter.Flush()

	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("csv flush error: %w", err)
	}

	return nil
}
