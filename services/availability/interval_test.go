package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifyIntervals_Empty(t *testing.T) {
	assert.Nil(t, UnifyIntervals(nil))
	assert.Nil(t, UnifyIntervals([]Interval{}))
}

func TestUnifyIntervals_MergesOverlap(t *testing.T) {
	// Two overlapping grid-derived intervals collapse into one.
	out := UnifyIntervals([]Interval{
		{Start: 9 * 60, End: 11 * 60},
		{Start: 10*60 + 30, End: 13 * 60},
	})
	require.Len(t, out, 1)
	assert.Equal(t, Interval{Start: 9 * 60, End: 13 * 60}, out[0])
}

func TestUnifyIntervals_MergesAdjacency(t *testing.T) {
	out := UnifyIntervals([]Interval{
		{Start: 9 * 60, End: 12 * 60},
		{Start: 12 * 60, End: 14 * 60},
	})
	require.Len(t, out, 1)
	assert.Equal(t, Interval{Start: 9 * 60, End: 14 * 60}, out[0])
}

func TestUnifyIntervals_KeepsDisjoint(t *testing.T) {
	out := UnifyIntervals([]Interval{
		{Start: 14 * 60, End: 18 * 60},
		{Start: 9 * 60, End: 12 * 60},
	})
	require.Len(t, out, 2)
	assert.Equal(t, Interval{Start: 9 * 60, End: 12 * 60}, out[0])
	assert.Equal(t, Interval{Start: 14 * 60, End: 18 * 60}, out[1])
}

func TestUnifyIntervals_ContainedInterval(t *testing.T) {
	out := UnifyIntervals([]Interval{
		{Start: 9 * 60, End: 17 * 60},
		{Start: 10 * 60, End: 11 * 60},
	})
	require.Len(t, out, 1)
	assert.Equal(t, Interval{Start: 9 * 60, End: 17 * 60}, out[0])
}

func TestUnifyIntervals_DisjointnessAndCoverage(t *testing.T) {
	in := []Interval{
		{Start: 600, End: 660},
		{Start: 540, End: 620},
		{Start: 660, End: 700},
		{Start: 900, End: 960},
		{Start: 920, End: 940},
	}
	out := UnifyIntervals(in)

	// Output is strictly disjoint and ascending (no overlap, no touching).
	for i := 1; i < len(out); i++ {
		assert.Greater(t, out[i].Start, out[i-1].End)
	}

	// Every input span is fully contained in some output span.
	for _, iv := range in {
		contained := false
		for _, m := range out {
			if m.Start <= iv.Start && iv.End <= m.End {
				contained = true
				break
			}
		}
		assert.True(t, contained, "input %+v lost by unification", iv)
	}
}

func TestUnifyIntervals_DoesNotMutateInput(t *testing.T) {
	in := []Interval{
		{Start: 700, End: 800},
		{Start: 500, End: 600},
	}
	UnifyIntervals(in)
	assert.Equal(t, Interval{Start: 700, End: 800}, in[0])
	assert.Equal(t, Interval{Start: 500, End: 600}, in[1])
}
