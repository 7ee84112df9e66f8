package table

import "strings"

// Kind tags the scalar type a cell held in its source file.
type Kind uint8

const (
	// KindAbsent marks a cell without data.
	KindAbsent Kind = iota
	// KindText marks a textual cell.
	KindText
	// KindNumber marks a numeric cell.
	KindNumber
	// KindDate marks a date or time cell.
	KindDate
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	default:
		return "unknown"
	}
}

// missingValueSentinels lists the spellings treated as "no value" in delimited text.
//
//nolint:gochecknoglobals // This is an immutable lookup table used as a constant.
var missingValueSentinels = map[string]struct{}{
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

// Cell is a single value of a table together with its source type.
// Value holds the text as it was displayed in the source.
type Cell struct {
	Kind  Kind
	Value string
}

// IsAbsent reports whether s carries no data:
// it is empty, whitespace only or a recognised missing-value sentinel.
func IsAbsent(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return true
	}

	_, ok := missingValueSentinels[trimmed]

	return ok
}

// AbsentCell returns a cell without data.
func AbsentCell() Cell {
	return Cell{Kind: KindAbsent}
}

// TextCell returns a text cell, or an absent cell when s carries no data.
func TextCell(s string) Cell {
	return NewCell(KindText, s)
}

// NewCell returns a cell of the given kind, or an absent cell when s carries no data.
func NewCell(kind Kind, s string) Cell {
	if kind == KindAbsent || IsAbsent(s) {
		return AbsentCell()
	}

	return Cell{Kind: kind, Value: s}
}

// IsAbsent reports whether the cell carries no data.
func (c Cell) IsAbsent() bool {
	return c.Kind == KindAbsent
}

// Text returns the cell value and false for absent cells.
func (c Cell) Text() (string, bool) {
	if c.IsAbsent() {
		return "", false
	}

	return c.Value, true
}

// Ptr returns a pointer to the cell value, or nil for absent cells.
func (c Cell) Ptr() *string {
	value, ok := c.Text()
	if !ok {
		return nil
	}

	return &value
}
