package primer

import (
	"sort"
	"strings"
)

// Suggest returns gene symbols in the index that are similar to query.
// If a gene matches exactly, only it is returned. Otherwise genes containing the query
// are returned, and if there are fewer than three of those, genes beneath a
// levenshtein distance cutoff are added.
func (ix *Index) Suggest(query string) []string {
	query = strings.ToUpper(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	if _, exact := ix.geneToNumbers[query]; exact {
		return []string{query}
	}

	ldCutoff := len(query) / 3
	if 2 > ldCutoff {
		ldCutoff = 2
	}

	containing := []string{}
	lowDistance := []string{}
	for gene := range ix.geneToNumbers {
		if strings.Contains(gene, query) {
			containing = append(containing, gene)
		} else if len(gene) > ldCutoff && ld(query, gene, true) <= ldCutoff {
			lowDistance = append(lowDistance, gene)
		}
	}

	if len(containing) < 3 {
		lowDistance = append(lowDistance, containing...)
		containing = nil
	}

	suggestions := containing
	if len(suggestions) == 0 {
		suggestions = lowDistance
	}
	sort.Strings(suggestions)
	return suggestions
}

// ld compares two strings and returns the levenshtein distance between them.
// from https://github.com/spf13/cobra/blob/main/cobra.go
func ld(s, t string, ignoreCase bool) int {
	if ignoreCase {
		s = strings.ToUpper(s)
		t = strings.ToUpper(t)
	}
	d := make([][]int, len(s)+1)
	for i := range d {
		d[i] = make([]int, len(t)+1)
	}
	for i := range d {
		d[i][0] = i
	}
	for j := range d[0] {
		d[0][j] = j
	}
	for j := 1; j <= len(t); j++ {
		for i := 1; i <= len(s); i++ {
			if s[i-1] == t[j-1] {
				d[i][j] = d[i-1][j-1]
			} else {
				min := d[i-1][j]
				if d[i][j-1] < min {
					min = d[i][j-1]
				}
				if d[i-1][j-1] < min {
					min = d[i-1][j-1]
				}
				d[i][j] = min + 1
			}
		}
	}
	return d[len(s)][len(t)]
}
