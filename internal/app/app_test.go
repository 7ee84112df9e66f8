package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/oshokin/icd-converter/internal/config"
	"github.com/oshokin/icd-converter/internal/logger"
)

// testStreams collects command output.
type testStreams struct {
	out bytes.Buffer
	err bytes.Buffer
}

func (s *testStreams) streams(in string) Streams {
	return Streams{
		In:  strings.NewReader(in),
		Out: &s.out,
		Err: &s.err,
	}
}

func newTestConfig(tempDir string) *config.Config {
	return &config.Config{
		InputPath:       filepath.Join(tempDir, "temp_icd_data.csv"),
		OutputPath:      filepath.Join(tempDir, "public", "parsed_icd_data.json"),
		HeaderRows:      config.DefaultHeaderRows,
		JSONIndent:      config.DefaultJSONIndent,
		SearchCacheSize: config.DefaultSearchCacheSize,
		ParsedLogLevel:  logger.Level(),
	}
}

// writeTestWorkbook saves a workbook laid out like the published mapping table.
func writeTestWorkbook(t *testing.T, path string) {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	rows := [][]any{
		{"ICD-10 / ICD-11 mapping table"},
		{"Revision", "2024"},
		{},
		{"Notes"},
		{"No.", "ICD-10 code", "ICD-10 name", "ICD-11 code", "ICD-11 name"},
		{1, "E10", "1型糖尿病", "5A10", "1型糖尿病"},
		{2, "", "Heading"},
		{3, "F70", "精神遅滞"},
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
}

// TestExecuteConvertCommand tests the success and failure reports of convert.
func TestExecuteConvertCommand(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		tempDir := t.TempDir()
		excelPath := filepath.Join(tempDir, "mapping.xlsx")
		csvPath := filepath.Join(tempDir, "out.csv")

		writeTestWorkbook(t, excelPath)

		var s testStreams

		err := ExecuteConvertCommand(testContext(t), newTestConfig(tempDir), s.streams(""), `"`+excelPath+`"`, csvPath)
		require.NoError(t, err)

		assert.Equal(t, "Successfully converted "+excelPath+" to "+csvPath+"\n", s.out.String())
		assert.Empty(t, s.err.String())
		assert.FileExists(t, csvPath)
	})

	t.Run("failure", func(t *testing.T) {
		t.Parallel()

		tempDir := t.TempDir()

		var s testStreams

		err := ExecuteConvertCommand(testContext(t), newTestConfig(tempDir), s.streams(""),
			filepath.Join(tempDir, "missing.xlsx"), filepath.Join(tempDir, "out.csv"))
		require.ErrorIs(t, err, ErrReported)
		require.ErrorIs(t, err, os.ErrNotExist)

		assert.Empty(t, s.out.String())
		assert.True(t, strings.HasPrefix(s.err.String(), "Error converting Excel file: "))
	})
}

// TestExecuteParseCommand tests the parse reports.
func TestExecuteParseCommand(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		cfg := newTestConfig(t.TempDir())

		require.NoError(t, os.WriteFile(cfg.InputPath,
			[]byte("a\nb\nc\nd\ne\n,E10,Diabetes,1A00,Certain diseases\n"), 0o600))

		var s testStreams

		require.NoError(t, ExecuteParseCommand(testContext(t), cfg, s.streams("")))
		assert.Equal(t, "Successfully parsed data and saved to "+cfg.OutputPath+"\n", s.out.String())
		assert.FileExists(t, cfg.OutputPath)
	})

	t.Run("failure", func(t *testing.T) {
		t.Parallel()

		cfg := newTestConfig(t.TempDir())

		var s testStreams

		err := ExecuteParseCommand(testContext(t), cfg, s.streams(""))
		require.ErrorIs(t, err, ErrReported)
		assert.True(t, strings.HasPrefix(s.err.String(), "Error parsing CSV file: "))
		assert.NoFileExists(t, cfg.OutputPath)
	})
}

// TestConvertThenParse tests the full pipeline from workbook to published JSON.
func TestConvertThenParse(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	cfg := newTestConfig(tempDir)
	excelPath := filepath.Join(tempDir, "mapping.xlsx")

	writeTestWorkbook(t, excelPath)

	var s testStreams

	require.NoError(t, ExecuteConvertCommand(testContext(t), cfg, s.streams(""), excelPath, cfg.InputPath))
	require.NoError(t, ExecuteParseCommand(testContext(t), cfg, s.streams("")))

	content, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)

	expected := `[
  {
    "ICD10_Code": "E10",
    "ICD10_Name": "1型糖尿病",
    "ICD11_Code": "5A10",
    "ICD11_Name": "1型糖尿病"
  },
  {
    "ICD10_Code": "F70",
    "ICD10_Name": "精神遅滞",
    "ICD11_Code": null,
    "ICD11_Name": null
  }
]
`
	assert.Equal(t, expected, string(content))
}

// TestExecuteSearchCommand tests the search output formats.
func TestExecuteSearchCommand(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	cfg := newTestConfig(tempDir)

	require.NoError(t, os.MkdirAll(filepath.Dir(cfg.OutputPath), 0o750))
	require.NoError(t, os.WriteFile(cfg.OutputPath, []byte(
		`[{"ICD10_Code":"F70","ICD10_Name":"精神遅滞","ICD11_Code":null,"ICD11_Name":null}]`), 0o600))

	tests := []struct {
		name        string
		format      OutputFormat
		query       string
		interactive bool
		input       string
		expected    string
	}{
		{
			name:     "table",
			format:   FormatTable,
			query:    "Ｆ７",
			expected: "ICD10_Code  ICD10_Name  ICD11_Code  ICD11_Name\nF70         精神遅滞        -           -\n",
		},
		{
			name:     "table without matches",
			format:   FormatTable,
			query:    "zzz",
			expected: "No mappings found for 'zzz'\n",
		},
		{
			name:     "json",
			format:   FormatJSON,
			query:    "f70",
			expected: "[\n  {\n    \"ICD10_Code\": \"F70\",\n    \"ICD10_Name\": \"精神遅滞\",\n    \"ICD11_Code\": null,\n    \"ICD11_Name\": null\n  }\n]\n",
		},
		{
			name:     "yaml without matches",
			format:   FormatYAML,
			query:    "zzz",
			expected: "[]\n",
		},
		{
			name:        "interactive",
			format:      FormatJSON,
			interactive: true,
			input:       "zzz\n\n  \nf7\n",
			expected:    "[]\n[\n  {\n    \"ICD10_Code\": \"F70\",\n    \"ICD10_Name\": \"精神遅滞\",\n    \"ICD11_Code\": null,\n    \"ICD11_Name\": null\n  }\n]\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var s testStreams

			err := ExecuteSearchCommand(testContext(t), cfg, s.streams(tt.input), tt.format, tt.query, tt.interactive)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, s.out.String())
		})
	}
}

// TestExecuteSearchCommand_MissingDocument tests the search failure report.
func TestExecuteSearchCommand_MissingDocument(t *testing.T) {
	t.Parallel()

	var s testStreams

	err := ExecuteSearchCommand(testContext(t), newTestConfig(t.TempDir()), s.streams(""), FormatTable, "E10", false)
	require.ErrorIs(t, err, ErrReported)
	assert.True(t, strings.HasPrefix(s.err.String(), "Error searching ICD data: "))
}

// TestParseOutputFormat tests output format validation.
func TestParseOutputFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected OutputFormat
		wantErr  bool
	}{
		{input: "table", expected: FormatTable},
		{input: "JSON", expected: FormatJSON},
		{input: " yaml ", expected: FormatYAML},
		{input: "xml", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			format, err := ParseOutputFormat(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownOutputFormat)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}
