//nolint:nolintlint,revive // utils is a common and acceptable package name for utility functions.
package utils

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/icd-converter/internal/constants"
)

// TestSafeUint64ToInt64 tests the SafeUint64ToInt64 function.
func TestSafeUint64ToInt64(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    uint64
		expected int64
	}{
		{
			name:     "normal value",
			input:    100,
			expected: 100,
		},
		{
			name:     "zero value",
			input:    0,
			expected: 0,
		},
		{
			name:     "max int64 value",
			input:    9223372036854775807,
			expected: 9223372036854775807,
		},
		{
			name:     "value exceeding max int64",
			input:    9223372036854775808,
			expected: 9223372036854775807,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := SafeUint64ToInt64(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestTrimPathQuotes tests the TrimPathQuotes function.
func TestTrimPathQuotes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no quotes",
			input:    "data/book.xlsx",
			expected: "data/book.xlsx",
		},
		{
			name:     "double quotes",
			input:    `"data/my book.xlsx"`,
			expected: "data/my book.xlsx",
		},
		{
			name:     "single quotes",
			input:    "'data/my book.xlsx'",
			expected: "data/my book.xlsx",
		},
		{
			name:     "leading quote only",
			input:    `"C:\Temp\out.csv`,
			expected: `C:\Temp\out.csv`,
		},
		{
			name:     "inner quotes are kept",
			input:    `"a "quoted" name.csv"`,
			expected: `a "quoted" name.csv`,
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, TrimPathQuotes(tt.input))
			// Trimming an already trimmed path changes nothing.
			assert.Equal(t, tt.expected, TrimPathQuotes(TrimPathQuotes(tt.input)))
		})
	}
}

// TestIsFileExist tests the IsFileExist function.
func TestIsFileExist(t *testing.T) {
	t.Parallel()

	// Create a temporary file.
	tempFile, err := os.CreateTemp(t.TempDir(), "test_file")
	require.NoError(t, err)

	tempFile.Close() //nolint:errcheck,gosec // Test cleanup, error is not critical.

	// Test existing file.
	exists, err := IsFileExist(tempFile.Name())
	require.NoError(t, err)
	assert.True(t, exists)

	// Directories are not files.
	exists, err = IsFileExist(t.TempDir())
	require.NoError(t, err)
	assert.False(t, exists)

	// Test non-existing file.
	exists, err = IsFileExist("/non/existing/file")
	require.NoError(t, err)
	assert.False(t, exists)
}

// TestEnsureParentDir tests the EnsureParentDir function.
func TestEnsureParentDir(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "public", "nested", "data.json")

	require.NoError(t, EnsureParentDir(target))

	info, err := os.Stat(filepath.Join(tempDir, "public", "nested"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Existing directories and bare filenames are fine.
	require.NoError(t, EnsureParentDir(target))
	require.NoError(t, EnsureParentDir("data.json"))
}

// TestWriteFileAtomically tests the WriteFileAtomically function.
func TestWriteFileAtomically(t *testing.T) {
	t.Parallel()

	t.Run("writes and replaces", func(t *testing.T) {
		t.Parallel()

		tempDir := t.TempDir()
		target := filepath.Join(tempDir, "out.csv")

		require.NoError(t, os.WriteFile(target, []byte("old content"), constants.DefaultFilePermissions))

		err := WriteFileAtomically(target, func(w io.Writer) error {
			_, writeErr := io.WriteString(w, "new content")

			return writeErr
		})
		require.NoError(t, err)

		content, err := os.ReadFile(target) //nolint:gosec // It's a test file.
		require.NoError(t, err)
		assert.Equal(t, "new content", string(content))

		entries, err := os.ReadDir(tempDir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temporary file must not be left behind")
	})

	t.Run("failure keeps previous file", func(t *testing.T) {
		t.Parallel()

		tempDir := t.TempDir()
		target := filepath.Join(tempDir, "out.csv")
		writeErr := errors.New("boom")

		require.NoError(t, os.WriteFile(target, []byte("old content"), constants.DefaultFilePermissions))

		err := WriteFileAtomically(target, func(w io.Writer) error {
			_, _ = io.WriteString(w, "partial")

			return writeErr
		})
		require.ErrorIs(t, err, writeErr)

		content, err := os.ReadFile(target) //nolint:gosec // It's a test file.
		require.NoError(t, err)
		assert.Equal(t, "old content", string(content))

		entries, err := os.ReadDir(tempDir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		target := filepath.Join(t.TempDir(), "missing", "out.csv")

		err := WriteFileAtomically(target, func(io.Writer) error { return nil })
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create file")
	})
}

// TestConstants tests the package constants.
func TestConstants(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `"'`, pathQuoteChars)
}
