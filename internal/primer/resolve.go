package primer

import (
	"regexp"
	"sort"
	"strconv"
)

// numberPattern matches every run of decimal digits in free text
var numberPattern = regexp.MustCompile(`[0-9]+`)

// Result groups the primers found in a text: gene symbol -> primer number -> primer name
type Result map[string]map[string]string

// Resolve finds every number in text that is a primer number in the index and
// groups the hits by gene. Numbers that aren't in the index are ignored.
func (ix *Index) Resolve(text string) Result {
	res := make(Result)

	for _, token := range numberPattern.FindAllString(text, -1) {
		n, err := strconv.Atoi(token)
		if err != nil {
			continue // too large to be a primer number
		}

		gene, ok := ix.numberToGene[n]
		if !ok {
			continue
		}

		if _, exists := res[gene]; !exists {
			res[gene] = make(map[string]string)
		}
		res[gene][strconv.Itoa(n)] = ix.numberToName[n]
	}

	return res
}

// Len returns the total number of primers in the result
func (r Result) Len() int {
	count := 0
	for _, primers := range r {
		count += len(primers)
	}
	return count
}

// Genes returns the gene symbols in the result, sorted
func (r Result) Genes() []string {
	genes := make([]string, 0, len(r))
	for g := range r {
		genes = append(genes, g)
	}
	sort.Strings(genes)
	return genes
}

// Numbers returns the primer numbers found for a gene, in increasing order
func (r Result) Numbers(gene string) []string {
	nums := make([]string, 0, len(r[gene]))
	for n := range r[gene] {
		nums = append(nums, n)
	}
	sort.Slice(nums, func(i, j int) bool {
		ni, _ := strconv.Atoi(nums[i])
		nj, _ := strconv.Atoi(nums[j])
		return ni < nj
	})
	return nums
}
