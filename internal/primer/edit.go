package primer

import (
	"fmt"
	"strings"
)

// SetEntry sets the name of a primer number in the lines of a reference file.
// Lines that already list the number are replaced; if none do, the entry is appended.
// The name is normalized first. updated reports whether an existing line was replaced.
func SetEntry(lines []string, number int, rawName string) (out []string, updated bool, err error) {
	if number < 0 {
		return nil, false, fmt.Errorf("primer number must be non-negative: %d", number)
	}

	name, err := Normalize(rawName)
	if err != nil {
		return nil, false, err
	}
	newLine := fmt.Sprintf("%d\t%s", number, name)

	out = make([]string, 0, len(lines)+1)
	for _, line := range lines {
		if n, ok := lineNumber(line); ok && n == number {
			out = append(out, newLine)
			updated = true
		} else {
			out = append(out, line)
		}
	}

	if !updated {
		out = append(out, newLine)
	}
	return out, updated, nil
}

// DeleteEntry removes every line that lists a primer number.
// deleted is false if no line had the number.
func DeleteEntry(lines []string, number int) (out []string, deleted bool) {
	out = make([]string, 0, len(lines))
	for _, line := range lines {
		if n, ok := lineNumber(line); ok && n == number {
			deleted = true
			continue
		}
		out = append(out, line)
	}
	return out, deleted
}

// lineNumber returns the primer number on a reference line, if it has one
func lineNumber(line string) (int, bool) {
	if skipPattern.MatchString(line) {
		return 0, false
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, false
	}

	if n, ok := parseNumber(fields[0]); ok {
		return n, true
	}
	return parseNumber(fields[1])
}
