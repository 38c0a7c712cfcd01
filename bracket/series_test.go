package bracket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMagicSeries(t *testing.T) {
	cases := []struct {
		until int
		want  []int
	}{
		{0, []int{}},
		{1, []int{1}},
		{2, []int{1, 1}},
		{3, []int{1, 1, 1}},
		{6, []int{2, 2, 2, 1, 1, 1}},
		{14, []int{4, 4, 4, 4, 4, 3, 3, 2, 2, 2, 2, 1, 1, 1}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, MagicSeries(tc.until), "MagicSeries(%d)", tc.until)
	}
}

func TestMagicSeriesLength(t *testing.T) {
	for until := -3; until <= 600; until++ {
		got := MagicSeries(until)
		want := until
		if want < 0 {
			want = 0
		}
		require.Len(t, got, want, "MagicSeries(%d)", until)
		require.Equal(t, got, MagicSeries(until), "MagicSeries(%d) is not deterministic", until)
	}
}

func TestMagicSeriesDoesNotAlias(t *testing.T) {
	a := MagicSeries(14)
	a[0] = 99
	assert.Equal(t, 4, MagicSeries(14)[0])
}
