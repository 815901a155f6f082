// Package primer is for parsing primer names and looking primer numbers up
// in a reference list of primers
package primer

import (
	"fmt"
	"regexp"
	"strings"
)

// namePattern is the full grammar for a primer name: gene symbol, exon and strand,
// optionally separated by underscores. ex: "BRCA1_ex12_for", "brca1exon12r"
var namePattern = regexp.MustCompile(
	`^([A-Za-z0-9]+)_*([Ee][Xx](?:[Oo][Nn])?[0-9]+)_*([Ff](?:[Oo][Rr])?|[Rr](?:[Ee][Vv])?)$`,
)

// Strand is the DNA strand a primer binds to
type Strand int

const (
	// Forward strand, "for"
	Forward Strand = iota

	// Reverse strand, "rev"
	Reverse
)

// String returns the canonical strand code
func (s Strand) String() string {
	if s == Reverse {
		return "rev"
	}
	return "for"
}

// MarshalText writes the strand as its canonical code
func (s Strand) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText reads any strand spelling the name grammar accepts
func (s *Strand) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "f", "for":
		*s = Forward
	case "r", "rev":
		*s = Reverse
	default:
		return fmt.Errorf("unknown strand: %q", text)
	}
	return nil
}

// Name is a parsed primer name
type Name struct {
	// Gene symbol, ex: "BRCA1"
	Gene string `json:"gene" yaml:"gene"`

	// Exon designator, ex: "ex12"
	Exon string `json:"exon" yaml:"exon"`

	// Strand the primer is on
	Strand Strand `json:"strand" yaml:"strand"`
}

// String renders the name as GENE_exon_strand
func (n Name) String() string {
	return strings.Join([]string{n.Gene, n.Exon, n.Strand.String()}, "_")
}

// MalformedNameError is returned when a primer name doesn't match the name grammar
type MalformedNameError struct {
	Name string
}

func (e *MalformedNameError) Error() string {
	return fmt.Sprintf("failed to parse primer name: %q", e.Name)
}

// Normalize parses a primer name and normalizes it: the gene symbol is
// uppercased, the exon lowercased and the strand collapsed to "for" or "rev"
func Normalize(raw string) (Name, error) {
	return Split(raw, true)
}

// Split splits a primer name into its gene symbol, exon and strand.
// If normalize is false, the gene and exon keep the case they were written in.
func Split(raw string, normalize bool) (Name, error) {
	m := namePattern.FindStringSubmatch(raw)
	if m == nil {
		return Name{}, &MalformedNameError{Name: raw}
	}

	name := Name{Gene: m[1], Exon: m[2], Strand: Forward}
	if m[3][0] == 'R' || m[3][0] == 'r' {
		name.Strand = Reverse
	}

	if normalize {
		name.Gene = strings.ToUpper(name.Gene)
		name.Exon = strings.ToLower(name.Exon)
	}

	return name, nil
}
