package icd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNormalizeQuery tests full-width folding and lowercasing.
func TestNormalizeQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{input: "F7", expected: "f7"},
		{input: "Ｆ７", expected: "f7"},
		{input: "６Ａ００", expected: "6a00"},
		{input: "精神", expected: "精神"},
		{input: "ア", expected: "ア"},
		{input: "（Ｅ１０）", expected: "（e10）"},
		{input: "ｱ", expected: "ｱ"},
		{input: "", expected: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, NormalizeQuery(tt.input))
		})
	}
}

// TestSearch tests matching over all four fields.
func TestSearch(t *testing.T) {
	t.Parallel()

	var (
		diabetes = &Mapping{ICD10Code: ptr("E10"), ICD10Name: ptr("1型糖尿病"), ICD11Code: ptr("5A10"), ICD11Name: ptr("1型糖尿病")}
		mental   = &Mapping{ICD10Code: ptr("F70"), ICD10Name: ptr("精神遅滞"), ICD11Code: nil, ICD11Name: nil}
		cholera  = &Mapping{ICD10Code: nil, ICD10Name: nil, ICD11Code: ptr("1A00"), ICD11Name: ptr("Cholera")}
		all      = []*Mapping{diabetes, mental, nil, cholera}
	)

	tests := []struct {
		name     string
		query    string
		expected []*Mapping
	}{
		{name: "ICD-10 code prefix", query: "F7", expected: []*Mapping{mental}},
		{name: "full-width query", query: "Ｆ７", expected: []*Mapping{mental}},
		{name: "case insensitive", query: "e10", expected: []*Mapping{diabetes}},
		{name: "ICD-11 code", query: "1a0", expected: []*Mapping{cholera}},
		{name: "name", query: "精神", expected: []*Mapping{mental}},
		{name: "shared text", query: "1", expected: []*Mapping{diabetes, cholera}},
		{name: "english name", query: "CHOLERA", expected: []*Mapping{cholera}},
		{name: "no match", query: "zzz", expected: []*Mapping{}},
		{name: "empty query", query: "  ", expected: []*Mapping{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Search(all, tt.query))
		})
	}
}
