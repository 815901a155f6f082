package primer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Format is an output format for results and entries
type Format string

const (
	// Table is tab aligned columns for the console
	Table Format = "table"

	// JSON is indented JSON
	JSON Format = "json"

	// YAML is a YAML document
	YAML Format = "yaml"
)

// ParseFormat returns the Format with the given name
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case Table, JSON, YAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q, expected one of: table, json, yaml", name)
}

// WriteResult writes the primers found in a text, grouped by gene
func WriteResult(w io.Writer, r Result, f Format) error {
	if f != Table {
		return encode(w, r, f)
	}

	tw := newTabWriter(w)
	for _, gene := range r.Genes() {
		for _, n := range r.Numbers(gene) {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", gene, n, r[gene][n])
		}
	}
	return tw.Flush()
}

// WriteEntries writes a list of primers from the index
func WriteEntries(w io.Writer, entries []Entry, f Format) error {
	if f != Table {
		return encode(w, entries, f)
	}

	tw := newTabWriter(w)
	for _, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", e.Number, e.Gene, e.Name)
	}
	return tw.Flush()
}

// WriteGenes writes the genes of an index with their primer counts
func WriteGenes(w io.Writer, genes []GeneSummary, f Format) error {
	if f != Table {
		return encode(w, genes, f)
	}

	tw := newTabWriter(w)
	for _, g := range genes {
		fmt.Fprintf(tw, "%s\t%d\n", g.Gene, g.Primers)
	}
	return tw.Flush()
}

// WriteNames writes parsed primer names, keyed by the raw name they were parsed from
func WriteNames(w io.Writer, raw []string, names []Name, f Format) error {
	if f != Table {
		out := make([]map[string]interface{}, len(names))
		for i, n := range names {
			out[i] = map[string]interface{}{
				"input":     raw[i],
				"canonical": n.String(),
				"gene":      n.Gene,
				"exon":      n.Exon,
				"strand":    n.Strand.String(),
			}
		}
		return encode(w, out, f)
	}

	tw := newTabWriter(w)
	for i, n := range names {
		fmt.Fprintf(tw, "%s\t%s\n", raw[i], n)
	}
	return tw.Flush()
}

// WriteConflicts writes primer numbers listed under more than one gene
func WriteConflicts(w io.Writer, conflicts []Conflict, f Format) error {
	if f != Table {
		return encode(w, conflicts, f)
	}

	tw := newTabWriter(w)
	for _, c := range conflicts {
		fmt.Fprintf(tw, "%d\t%s\tlines %v\n", c.Number, strings.Join(c.Genes, ","), c.Lines)
	}
	return tw.Flush()
}

func encode(w io.Writer, v interface{}, f Format) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q", f)
}

// from https://golang.org/pkg/text/tabwriter/
func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 3, ' ', tabwriter.TabIndent)
}
