package primer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadLines reads all lines from r. Line endings (LF or CRLF) are stripped.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string

	// https://golang.org/pkg/bufio/#example_Scanner_lines
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// ReadFile reads the lines of a reference file
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open reference file: %w", err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference file %s: %w", path, err)
	}
	return lines, nil
}

// Load reads a reference file and builds an Index from it
func Load(path string, opts ...Option) (*Index, error) {
	lines, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	ix, err := Build(lines, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ix, nil
}

// WriteFile writes lines back to a reference file, one per line
func WriteFile(path string, lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write reference file: %w", err)
	}
	return nil
}
