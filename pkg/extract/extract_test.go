package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fext/pkg/extract"
	"fext/pkg/fx"
	"fext/pkg/sop"
)

func mustCover(t *testing.T, nVars int, text string) *sop.Cover {
	t.Helper()
	cover, err := sop.Parse(nVars, text)
	require.NoError(t, err)
	return cover
}

// newData builds a snapshot shell by hand, the way CollectInfo would
func newData(nodesOld, budget int) *fx.Data {
	d := fx.NewData(budget)
	d.NodesOld = nodesOld
	d.Covers = make([]*sop.Cover, nodesOld)
	d.Fanins = make([][]int, nodesOld)
	d.CoversNew = make([]*sop.Cover, nodesOld+budget)
	d.FaninsNew = make([][]int, nodesOld+budget)
	return d
}

func TestNoSharedPairYieldsNothing(t *testing.T) {
	// Nodes 2 and 3 over disjoint supports
	d := newData(4, 5)
	d.Covers[2] = mustCover(t, 2, "11")
	d.Fanins[2] = []int{0, 1}
	d.Covers[3] = mustCover(t, 1, "1")
	d.Fanins[3] = []int{0}

	assert.Equal(t, 0, extract.SingleCubeDivisors(d))
	assert.Equal(t, 0, d.NodesNew)
	for _, fanins := range d.FaninsNew {
		assert.Nil(t, fanins)
	}
}

func TestSharedPairIsExtractedOnce(t *testing.T) {
	// Nodes 2 and 3 both compute a*b
	d := newData(4, 5)
	d.Covers[2] = mustCover(t, 2, "11")
	d.Fanins[2] = []int{0, 1}
	d.Covers[3] = mustCover(t, 2, "11")
	d.Fanins[3] = []int{0, 1}

	require.Equal(t, 1, extract.SingleCubeDivisors(d))
	assert.Equal(t, 1, d.NodesNew)

	// The divisor lands in the first reserved slot
	require.NotNil(t, d.CoversNew[4])
	assert.Equal(t, []int{0, 1}, d.FaninsNew[4])
	assert.Equal(t, "11", d.CoversNew[4].String())

	// Both sharers are rewritten onto the divisor
	for _, id := range []int{2, 3} {
		require.NotNil(t, d.CoversNew[id], "node %d must be rewritten", id)
		assert.Equal(t, []int{4}, d.FaninsNew[id])
		assert.Equal(t, "1", d.CoversNew[id].String())
	}
}

func TestNegativeLiteralsInDivisor(t *testing.T) {
	// Nodes 2 and 3 share the product a*!b
	d := newData(4, 5)
	d.Covers[2] = mustCover(t, 3, "10-\n--1")
	d.Fanins[2] = []int{0, 1, 3}
	d.Covers[3] = mustCover(t, 2, "10")
	d.Fanins[3] = []int{0, 1}

	require.Equal(t, 1, extract.SingleCubeDivisors(d))
	require.NotNil(t, d.CoversNew[4])
	assert.Equal(t, []int{0, 1}, d.FaninsNew[4])
	assert.Equal(t, "10", d.CoversNew[4].String())
}

func TestBudgetLimitsExtraction(t *testing.T) {
	// Two independent shared pairs, budget of one
	d := newData(8, 1)
	d.Covers[4] = mustCover(t, 2, "11")
	d.Fanins[4] = []int{0, 1}
	d.Covers[5] = mustCover(t, 2, "11")
	d.Fanins[5] = []int{0, 1}
	d.Covers[6] = mustCover(t, 2, "11")
	d.Fanins[6] = []int{2, 3}
	d.Covers[7] = mustCover(t, 2, "11")
	d.Fanins[7] = []int{2, 3}

	assert.Equal(t, 1, extract.SingleCubeDivisors(d))
}

func TestGreedyPicksMostSharedPair(t *testing.T) {
	// The pair a*b occurs three times, c*e twice
	d := newData(7, 1)
	d.Covers[4] = mustCover(t, 4, "11--\n--11")
	d.Fanins[4] = []int{0, 1, 2, 3}
	d.Covers[5] = mustCover(t, 4, "11--\n--11")
	d.Fanins[5] = []int{0, 1, 2, 3}
	d.Covers[6] = mustCover(t, 2, "11")
	d.Fanins[6] = []int{0, 1}

	require.Equal(t, 1, extract.SingleCubeDivisors(d))
	assert.Equal(t, []int{0, 1}, d.FaninsNew[7], "the most shared pair wins")
}

func TestSharedPairWithinOneCover(t *testing.T) {
	// Both cubes of a single node contain a*b
	d := newData(5, 5)
	d.Covers[4] = mustCover(t, 4, "111-\n11-1")
	d.Fanins[4] = []int{0, 1, 2, 3}

	require.Equal(t, 1, extract.SingleCubeDivisors(d))
	assert.Equal(t, []int{0, 1}, d.FaninsNew[5])
	assert.Equal(t, []int{2, 3, 5}, d.FaninsNew[4])
	assert.Equal(t, "1-1\n-11", d.CoversNew[4].String())
}

func TestZeroBudget(t *testing.T) {
	d := newData(4, 0)
	d.Covers[2] = mustCover(t, 2, "11")
	d.Fanins[2] = []int{0, 1}
	d.Covers[3] = mustCover(t, 2, "11")
	d.Fanins[3] = []int{0, 1}

	assert.Equal(t, 0, extract.SingleCubeDivisors(d))
}
