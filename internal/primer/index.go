package primer

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// skipPattern matches comment and empty lines in a reference file
var skipPattern = regexp.MustCompile(`^\s*#|^\s*$`)

// Index is a lookup table between primer numbers, gene symbols and primer names.
// It is built once from the lines of a reference file and is read-only afterwards.
type Index struct {
	// geneToNumbers maps a gene symbol to its primer numbers, in file order
	geneToNumbers map[string][]int

	// numberToGene maps a primer number to its gene symbol
	numberToGene map[int]string

	// numberToName maps a primer number to its canonical primer name
	numberToName map[int]string

	// conflicts are primer numbers listed under more than one gene
	conflicts []Conflict
}

// Conflict is a primer number that the reference lists under multiple genes.
// The gene of the last occurrence is the one the Index resolves to.
type Conflict struct {
	// Number of the primer
	Number int `json:"number" yaml:"number"`

	// Genes the number was listed under, in order of first appearance
	Genes []string `json:"genes" yaml:"genes"`

	// Lines (1-based) the number was found on
	Lines []int `json:"lines" yaml:"lines"`
}

// ReferenceFormatError is returned when neither of the first two fields
// on a reference line is a primer number
type ReferenceFormatError struct {
	// Line number, 1-based
	Line int

	// Content is the raw line
	Content string
}

func (e *ReferenceFormatError) Error() string {
	return fmt.Sprintf("failed to find a primer number at position 0 or 1 on line %d: %q", e.Line, e.Content)
}

// Option configures how an Index is built
type Option func(*buildOptions)

type buildOptions struct {
	logger *zap.Logger
}

// WithLogger sets the logger that data-quality warnings are written to
func WithLogger(logger *zap.Logger) Option {
	return func(o *buildOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// entry is a single parsed reference line
type entry struct {
	number int
	name   Name
	line   int
}

// Build creates an Index from the lines of a reference file. Each non-comment line
// has a primer number and a primer name in either order. Lines with fewer than two
// fields are ignored. A line without a primer number or with a malformed primer name
// stops the build and no Index is returned.
func Build(lines []string, opts ...Option) (*Index, error) {
	o := buildOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	ix := &Index{
		geneToNumbers: make(map[string][]int),
		numberToGene:  make(map[int]string),
		numberToName:  make(map[int]string),
	}

	seen := make(map[int][]entry) // every occurrence of each number
	for i, line := range lines {
		e, ok, err := parseLine(line, i+1)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		ix.geneToNumbers[e.name.Gene] = append(ix.geneToNumbers[e.name.Gene], e.number)
		ix.numberToName[e.number] = e.name.String()
		seen[e.number] = append(seen[e.number], e)
	}

	// invert gene -> numbers once all lines are in
	for number, entries := range seen {
		ix.numberToGene[number] = entries[len(entries)-1].name.Gene

		if c, ok := conflictOf(number, entries); ok {
			ix.conflicts = append(ix.conflicts, c)
		}
	}
	sort.Slice(ix.conflicts, func(i, j int) bool {
		return ix.conflicts[i].Number < ix.conflicts[j].Number
	})

	for _, c := range ix.conflicts {
		o.logger.Warn("primer number listed under multiple genes",
			zap.Int("number", c.Number),
			zap.Strings("genes", c.Genes),
			zap.Ints("lines", c.Lines),
			zap.String("using", ix.numberToGene[c.Number]))
	}
	o.logger.Debug("built primer index",
		zap.Int("lines", len(lines)),
		zap.Int("primers", len(ix.numberToName)),
		zap.Int("genes", len(ix.geneToNumbers)))

	return ix, nil
}

// parseLine parses one reference line. ok is false for lines that are skipped.
func parseLine(line string, lineNo int) (e entry, ok bool, err error) {
	if skipPattern.MatchString(line) {
		return entry{}, false, nil
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return entry{}, false, nil
	}

	number, rawName := 0, ""
	if n, isNum := parseNumber(fields[0]); isNum {
		number, rawName = n, fields[1]
	} else if n, isNum := parseNumber(fields[1]); isNum {
		number, rawName = n, fields[0] // turned around
	} else {
		return entry{}, false, &ReferenceFormatError{Line: lineNo, Content: line}
	}

	name, err := Normalize(rawName)
	if err != nil {
		return entry{}, false, fmt.Errorf("line %d: %w", lineNo, err)
	}

	return entry{number: number, name: name, line: lineNo}, true, nil
}

// parseNumber returns the value of a token made up only of decimal digits
func parseNumber(token string) (int, bool) {
	if token == "" {
		return 0, false
	}
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return 0, false
		}
	}

	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, false // overflow
	}
	return n, true
}

// conflictOf returns a Conflict if the entries for a number span more than one gene
func conflictOf(number int, entries []entry) (Conflict, bool) {
	c := Conflict{Number: number}
	genes := make(map[string]bool)
	for _, e := range entries {
		if !genes[e.name.Gene] {
			genes[e.name.Gene] = true
			c.Genes = append(c.Genes, e.name.Gene)
		}
		c.Lines = append(c.Lines, e.line)
	}
	return c, len(c.Genes) > 1
}

// Len returns the number of distinct primer numbers in the index
func (ix *Index) Len() int {
	return len(ix.numberToName)
}

// Genes returns all gene symbols in the index, sorted
func (ix *Index) Genes() []string {
	genes := make([]string, 0, len(ix.geneToNumbers))
	for g := range ix.geneToNumbers {
		genes = append(genes, g)
	}
	sort.Strings(genes)
	return genes
}

// Numbers returns the primer numbers listed under a gene, in reference order
func (ix *Index) Numbers(gene string) []int {
	return append([]int(nil), ix.geneToNumbers[gene]...)
}

// Gene returns the gene symbol of a primer number
func (ix *Index) Gene(number int) (string, bool) {
	g, ok := ix.numberToGene[number]
	return g, ok
}

// Name returns the canonical primer name of a primer number
func (ix *Index) Name(number int) (string, bool) {
	n, ok := ix.numberToName[number]
	return n, ok
}

// Conflicts returns primer numbers that were listed under more than one gene
func (ix *Index) Conflicts() []Conflict {
	return append([]Conflict(nil), ix.conflicts...)
}

// Entry is a single primer in the index
type Entry struct {
	Number int    `json:"number" yaml:"number"`
	Gene   string `json:"gene" yaml:"gene"`
	Name   string `json:"name" yaml:"name"`
}

// Entry returns the gene and name of a primer number
func (ix *Index) Entry(number int) (Entry, bool) {
	gene, ok := ix.numberToGene[number]
	if !ok {
		return Entry{}, false
	}
	return Entry{Number: number, Gene: gene, Name: ix.numberToName[number]}, true
}

// GeneEntries returns the primers listed under a gene, once each, in reference order.
// Numbers that resolve to another gene (see Conflicts) are left out.
func (ix *Index) GeneEntries(gene string) []Entry {
	entries := []Entry{}
	seen := make(map[int]bool)
	for _, n := range ix.geneToNumbers[gene] {
		if seen[n] || ix.numberToGene[n] != gene {
			continue
		}
		seen[n] = true
		entries = append(entries, Entry{Number: n, Gene: gene, Name: ix.numberToName[n]})
	}
	return entries
}

// GeneSummary is the number of distinct primers listed under a gene
type GeneSummary struct {
	Gene    string `json:"gene" yaml:"gene"`
	Primers int    `json:"primers" yaml:"primers"`
}

// Summary returns every gene with at least one primer and its primer count, sorted by gene
func (ix *Index) Summary() []GeneSummary {
	summary := []GeneSummary{}
	for _, g := range ix.Genes() {
		if count := len(ix.GeneEntries(g)); count > 0 {
			summary = append(summary, GeneSummary{Gene: g, Primers: count})
		}
	}
	return summary
}

// GeneToNumbers returns a copy of the gene symbol to primer numbers mapping
func (ix *Index) GeneToNumbers() map[string][]int {
	out := make(map[string][]int, len(ix.geneToNumbers))
	for g, nums := range ix.geneToNumbers {
		out[g] = append([]int(nil), nums...)
	}
	return out
}

// NumberToGene returns a copy of the primer number to gene symbol mapping
func (ix *Index) NumberToGene() map[int]string {
	out := make(map[int]string, len(ix.numberToGene))
	for n, g := range ix.numberToGene {
		out[n] = g
	}
	return out
}

// NumberToName returns a copy of the primer number to primer name mapping
func (ix *Index) NumberToName() map[int]string {
	out := make(map[int]string, len(ix.numberToName))
	for n, name := range ix.numberToName {
		out[n] = name
	}
	return out
}
