// =============================================================================
// Product ETL - File Manager Utility
// =============================================================================
//
// This module provides the file I/O around the pipeline:
//   - Reading the input file as raw lines (extract)
//   - Writing output files atomically (load)
//   - Creating the output directory
//
// ERROR HANDLING:
//   - A missing input file is reported as ErrInputNotFound
//   - An input that exists but cannot be opened or read is ErrInputUnreadable
//   - Both are fatal for the run; callers branch on them with errors.Is
//
// WRITE STRATEGY:
//   Output is written to a uniquely named temporary file in the target
//   directory and renamed over the target once complete. A failed write
//   removes the temporary file, so the target is either untouched or fully
//   written.
//
// =============================================================================

package utils

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrInputNotFound means the input file does not exist.
	ErrInputNotFound = errors.New("input file not found")

	// ErrInputUnreadable means the input file exists but could not be read.
	ErrInputUnreadable = errors.New("input file cannot be read")
)

// =============================================================================
// READING
// =============================================================================

// ReadLines reads a text file and returns its lines without terminators.
//
// RETURNS:
//   - The lines in file order. A zero-byte file yields no lines. A final
//     line without a trailing newline is still returned. A trailing "\r"
//     (CRLF files) is removed.
//   - ErrInputNotFound or ErrInputUnreadable (wrapped) on failure.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrInputUnreadable, err)
	}
	defer file.Close()

	lines, err := readLines(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInputUnreadable, path, err)
	}
	return lines, nil
}

// readLines splits a stream into lines. Lines may be of any length.
func readLines(r io.Reader) ([]string, error) {
	reader := bufio.NewReader(r)
	var lines []string

	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// =============================================================================
// WRITING
// =============================================================================

// WriteLines writes each line followed by "\n" to path, atomically.
// The containing directory is created if needed.
func WriteLines(path string, lines []string) error {
	return WriteFileAtomic(path, func(w io.Writer) error {
		bw := bufio.NewWriter(w)
		for _, line := range lines {
			if _, err := bw.WriteString(line); err != nil {
				return err
			}
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
		return bw.Flush()
	})
}

// WriteFileAtomic creates the parent directory of path, streams content into
// a temporary file next to it through write, and renames it over path.
func WriteFileAtomic(path string, write func(w io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := EnsureDir(dir); err != nil {
		return err
	}

	tmpPath := TempPath(path)
	file, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	if err := write(file); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move output into place: %w", err)
	}

	return nil
}

// TempPath returns a unique hidden sibling of path used while writing.
func TempPath(path string) string {
	dir, base := filepath.Split(path)
	return filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", base, uuid.NewString()))
}

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// FileExists reports whether path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
