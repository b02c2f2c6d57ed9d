// Package dataset reads benchmark keys from line oriented text files.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

var (
	ErrEmptyInput = errors.New("dataset: input is empty")
	ErrNoData     = errors.New("dataset: no data lines")
)

// Read returns up to limit non-empty, trimmed lines from r. A leading header
// line is skipped, see LooksLikeHeader. Lines may be of any length.
func Read(r io.Reader, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("dataset: invalid line limit %d", limit)
	}
	br := bufio.NewReader(r)

	first, err := readLine(br)
	if err == io.EOF && first == "" {
		return nil, ErrEmptyInput
	} else if err != nil && err != io.EOF {
		return nil, fmt.Errorf("dataset: read: %w", err)
	}

	lines := make([]string, 0, min(limit, 4096))
	if !LooksLikeHeader(first) {
		lines = appendLine(lines, first)
	}
	for err == nil && len(lines) < limit {
		var line string
		line, err = readLine(br)
		lines = appendLine(lines, line)
	}
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("dataset: read: %w", err)
	}

	if len(lines) == 0 {
		return nil, ErrNoData
	}
	return lines, nil
}

// readLine returns the next line without its terminator. A final line without
// a newline is returned together with io.EOF.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	return strings.TrimSuffix(line, "\n"), err
}

// ReadFile opens path and reads it with Read.
func ReadFile(path string, limit int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()
	return Read(f, limit)
}

// LooksLikeHeader reports whether a line contains a letter or a comma.
// Purely numeric datasets therefore never lose their first line.
func LooksLikeHeader(line string) bool {
	for _, r := range line {
		if unicode.IsLetter(r) || r == ',' {
			return true
		}
	}
	return false
}

func appendLine(lines []string, line string) []string {
	line = strings.TrimSpace(line)
	if line == "" {
		return lines
	}
	return append(lines, line)
}
