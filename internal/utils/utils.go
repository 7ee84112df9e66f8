package utils

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/oshokin/icd-converter/internal/constants"
)

// pathQuoteChars are stripped from both ends of paths passed on the command line.
const pathQuoteChars = `"'`

// SafeUint64ToInt64 converts a uint64 value to an int64 safely,
// ensuring that the value does not exceed the maximum limit of int64.
func SafeUint64ToInt64(val uint64) int64 {
	if val > math.MaxInt64 {
		return math.MaxInt64
	}

	return int64(val)
}

// TrimPathQuotes removes quote characters left around a path by shell quoting,
// e.g. "C:\My Files\book.xlsx" passed through a wrapper script.
func TrimPathQuotes(path string) string {
	return strings.Trim(path, pathQuoteChars)
}

// IsFileExist checks if a file exists at the specified path.
// It returns true if the file exists and is not a directory, false if the file does not exist,
// and an error if there was an issue accessing the file.
func IsFileExist(path string) (bool, error) {
	stat, err := os.Stat(path)
	if err == nil {
		return !stat.IsDir(), nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, err
}

// EnsureParentDir creates the directory that will hold path if it does not exist yet.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	return os.MkdirAll(dir, constants.DefaultFolderPermissions)
}

// WriteFileAtomically writes a file through a uniquely named temporary sibling
// and renames it over path once writeFunc succeeds.
// The temporary file is removed when anything fails.
func WriteFileAtomically(path string, writeFunc func(w io.Writer) error) (err error) {
	tempPath := filepath.Join(
		filepath.Dir(path),
		"."+filepath.Base(path)+"_"+uuid.New().String()+constants.ExtensionTmp,
	)

	file, err := os.OpenFile(filepath.Clean(tempPath), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, constants.DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	defer func() {
		if err != nil {
			_ = file.Close()
			_ = os.Remove(tempPath)
		}
	}()

	buffered := bufio.NewWriter(file)

	if err = writeFunc(buffered); err != nil {
		return err
	}

	if err = buffered.Flush(); err != nil {
		return fmt.Errorf("failed to flush file: %w", err)
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}

	if err = os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to move file into place: %w", err)
	}

	return nil
}
