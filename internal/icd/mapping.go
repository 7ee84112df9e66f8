package icd

import (
	"github.com/oshokin/icd-converter/internal/table"
)

// Column names of the published JSON, in output order.
const (
	FieldICD10Code = "ICD10_Code"
	FieldICD10Name = "ICD10_Name"
	FieldICD11Code = "ICD11_Code"
	FieldICD11Name = "ICD11_Name"
)

// Layout describes where the mapping columns sit in the source text.
type Layout struct {
	// FirstColumn is the zero-based position of ICD10_Code.
	FirstColumn int
	// ColumnCount is the number of consecutive mapping columns.
	ColumnCount int
}

// DefaultLayout is the source layout: the 2nd to the 5th column.
//
//nolint:gochecknoglobals // This is an immutable value used as a constant.
var DefaultLayout = Layout{FirstColumn: 1, ColumnCount: 4}

// Positions of the mapping columns within the selected range.
const (
	icd10CodeColumn = iota
	icd10NameColumn
	icd11CodeColumn
	icd11NameColumn
)

// Mapping pairs an ICD-10 code and name with the corresponding ICD-11 code and name.
// A nil field has no value and is published as JSON null.
type Mapping struct {
	ICD10Code *string `json:"ICD10_Code" yaml:"ICD10_Code"`
	ICD10Name *string `json:"ICD10_Name" yaml:"ICD10_Name"`
	ICD11Code *string `json:"ICD11_Code" yaml:"ICD11_Code"`
	ICD11Name *string `json:"ICD11_Name" yaml:"ICD11_Name"`
}

// Fields returns the mapping values in output order.
func (m *Mapping) Fields() []*string {
	return []*string{m.ICD10Code, m.ICD10Name, m.ICD11Code, m.ICD11Name}
}

// HasCode reports whether at least one of the two codes is present.
func (m *Mapping) HasCode() bool {
	return m.ICD10Code != nil || m.ICD11Code != nil
}

// ExtractStats counts what Extract did with the source rows.
type ExtractStats struct {
	// RowsRead is the number of data rows seen.
	RowsRead int
	// RowsDropped is the number of rows without any code.
	RowsDropped int
	// RecordsKept is the number of mappings produced.
	RecordsKept int
}

// Extract turns the data rows of the source into mappings.
// It selects the layout columns, drops rows where both codes are absent
// and turns every remaining absent cell into nil.
func Extract(t *table.Table, layout Layout) ([]*Mapping, ExtractStats) {
	selected := t.Select(layout.FirstColumn, layout.ColumnCount)

	var (
		stats  = ExtractStats{RowsRead: selected.Len()}
		result = make([]*Mapping, 0, selected.Len())
	)

	for _, row := range selected.Rows {
		mapping := &Mapping{
			ICD10Code: row.Cell(icd10CodeColumn).Ptr(),
			ICD10Name: row.Cell(icd10NameColumn).Ptr(),
			ICD11Code: row.Cell(icd11CodeColumn).Ptr(),
			ICD11Name: row.Cell(icd11NameColumn).Ptr(),
		}

		if !mapping.HasCode() {
			stats.RowsDropped++
			continue
		}

		result = append(result, mapping)
	}

	stats.RecordsKept = len(result)

	return result, stats
}
