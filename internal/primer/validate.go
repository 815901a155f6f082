package primer

import (
	"go.uber.org/multierr"
)

// Validate checks every line of a reference file with the same rules as Build,
// but doesn't stop at the first bad line. All line errors are returned together
// (see multierr.Errors); nil means Build will succeed on these lines.
func Validate(lines []string) error {
	var errs error
	for i, line := range lines {
		if _, _, err := parseLine(line, i+1); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}
