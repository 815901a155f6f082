package primer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetEntry(t *testing.T) {
	tests := []struct {
		name        string
		lines       []string
		number      int
		rawName     string
		want        []string
		wantUpdated bool
	}{
		{
			"append new primer",
			testLines,
			103,
			"brca1_ex13_r",
			append(append([]string{}, testLines...), "103\tBRCA1_ex13_rev"),
			false,
		},
		{
			"replace existing, either order",
			testLines,
			102,
			"BRCA2EX4F",
			[]string{"101 BRCA1_ex12_for", "# comment", "", "102\tBRCA2_ex4_for"},
			true,
		},
		{
			"empty file",
			nil,
			1,
			"KRAS_ex2_for",
			[]string{"1\tKRAS_ex2_for"},
			false,
		},
		{
			"commented numbers are left alone",
			[]string{"# 101 BRCA1_ex12_for"},
			101,
			"BRCA1_ex12_for",
			[]string{"# 101 BRCA1_ex12_for", "101\tBRCA1_ex12_for"},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, updated, err := SetEntry(tt.lines, tt.number, tt.rawName)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantUpdated, updated)

			_, err = Build(got)
			assert.NoError(t, err)
		})
	}
}

func TestSetEntry_errors(t *testing.T) {
	_, _, err := SetEntry(testLines, 103, "not a primer")
	var malformed *MalformedNameError
	assert.True(t, errors.As(err, &malformed))

	_, _, err = SetEntry(testLines, -1, "BRCA1_ex12_for")
	assert.Error(t, err)
}

func TestDeleteEntry(t *testing.T) {
	lines := []string{"101 BRCA1_ex12_for", "# 102 old", "BRCA2_ex3_rev 102", "101 BRCA1_ex13_for"}

	got, deleted := DeleteEntry(lines, 101)
	assert.True(t, deleted)
	assert.Equal(t, []string{"# 102 old", "BRCA2_ex3_rev 102"}, got)

	got, deleted = DeleteEntry(got, 999)
	assert.False(t, deleted)
	assert.Equal(t, []string{"# 102 old", "BRCA2_ex3_rev 102"}, got)
}
