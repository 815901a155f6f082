package primer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Name
	}{
		{
			"underscore separated",
			"brca1_ex12_for",
			Name{Gene: "BRCA1", Exon: "ex12", Strand: Forward},
		},
		{
			"no separators, uppercase",
			"BRCA1EX12REV",
			Name{Gene: "BRCA1", Exon: "ex12", Strand: Reverse},
		},
		{
			"exon spelled out, short strand",
			"Tp53_Exon7_r",
			Name{Gene: "TP53", Exon: "exon7", Strand: Reverse},
		},
		{
			"repeated underscores",
			"kras__ex2___F",
			Name{Gene: "KRAS", Exon: "ex2", Strand: Forward},
		},
		{
			"mixed case strand",
			"egfr_eX19_fOr",
			Name{Gene: "EGFR", Exon: "ex19", Strand: Forward},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_malformed(t *testing.T) {
	tests := []string{
		"123_bad",
		"",
		"BRCA1_ex12",
		"BRCA1_12_for",
		"BRCA1_ex12_forward",
		" BRCA1_ex12_for",
		"BRCA1_ex12_for ",
		"BRCA1-ex12-for",
		"BRCA1_exo12_for",
		"_BRCA1_ex12_for",
	}
	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			_, err := Normalize(raw)

			var malformed *MalformedNameError
			require.True(t, errors.As(err, &malformed), "expected MalformedNameError, got %v", err)
			assert.Equal(t, raw, malformed.Name)
		})
	}
}

func TestSplit_withoutNormalizing(t *testing.T) {
	got, err := Split("brca1_EXON12_Rev", false)
	require.NoError(t, err)

	assert.Equal(t, "brca1", got.Gene)
	assert.Equal(t, "EXON12", got.Exon)
	assert.Equal(t, Reverse, got.Strand)
}

func TestName_String(t *testing.T) {
	n := Name{Gene: "BRCA2", Exon: "ex3", Strand: Reverse}
	assert.Equal(t, "BRCA2_ex3_rev", n.String())
}

func TestNormalize_idempotent(t *testing.T) {
	for _, raw := range []string{"brca1_ex12_for", "BRCA1EX12REV", "tp53exon7f", "A1_EX1_R", "myc__ExOn10__rEv"} {
		t.Run(raw, func(t *testing.T) {
			first, err := Normalize(raw)
			require.NoError(t, err)

			second, err := Normalize(first.String())
			require.NoError(t, err)
			assert.Equal(t, first, second)

			third, err := Normalize(second.String())
			require.NoError(t, err)
			assert.Equal(t, first.String(), third.String())
		})
	}
}

func TestStrand_text(t *testing.T) {
	b, err := Reverse.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "rev", string(b))

	var s Strand
	require.NoError(t, s.UnmarshalText([]byte("R")))
	assert.Equal(t, Reverse, s)
	require.NoError(t, s.UnmarshalText([]byte("for")))
	assert.Equal(t, Forward, s)
	assert.Error(t, s.UnmarshalText([]byte("up")))
}
