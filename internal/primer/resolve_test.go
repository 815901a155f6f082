package primer

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_Resolve(t *testing.T) {
	ix, err := Build([]string{
		"101 BRCA1_ex12_for",
		"# comment",
		"",
		"BRCA2_ex3_rev 102",
		"103 BRCA1_ex13_rev",
	})
	require.NoError(t, err)

	tests := []struct {
		name string
		text string
		want Result
	}{
		{
			"unknown numbers are dropped",
			"saw primers 101 and 999 and 102 today",
			Result{
				"BRCA1": {"101": "BRCA1_ex12_for"},
				"BRCA2": {"102": "BRCA2_ex3_rev"},
			},
		},
		{
			"grouped by gene",
			"101, 103",
			Result{
				"BRCA1": {"101": "BRCA1_ex12_for", "103": "BRCA1_ex13_rev"},
			},
		},
		{
			"repeats collapse",
			"101 101 101",
			Result{"BRCA1": {"101": "BRCA1_ex12_for"}},
		},
		{
			"digit runs inside words",
			"order#101/plate102x",
			Result{
				"BRCA1": {"101": "BRCA1_ex12_for"},
				"BRCA2": {"102": "BRCA2_ex3_rev"},
			},
		},
		{
			"leading zeros",
			"000101",
			Result{"BRCA1": {"101": "BRCA1_ex12_for"}},
		},
		{
			"runs are not split",
			"101102",
			Result{},
		},
		{
			"huge numbers",
			"99999999999999999999999999 102",
			Result{"BRCA2": {"102": "BRCA2_ex3_rev"}},
		},
		{
			"no numbers",
			"nothing to see",
			Result{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ix.Resolve(tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIndex_Resolve_concurrent(t *testing.T) {
	ix, err := Build(testLines)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, 2, ix.Resolve("101 102").Len())
		}()
	}
	wg.Wait()
}

func TestResult_sorted(t *testing.T) {
	r := Result{
		"TP53":  {"20": "TP53_ex7_for", "3": "TP53_ex5_rev", "100": "TP53_ex8_for"},
		"BRCA1": {"101": "BRCA1_ex12_for"},
	}

	assert.Equal(t, []string{"BRCA1", "TP53"}, r.Genes())
	assert.Equal(t, []string{"3", "20", "100"}, r.Numbers("TP53"))
	assert.Equal(t, 4, r.Len())
	assert.Empty(t, r.Numbers("KRAS"))
}
