package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTubeIndexStartingPosition(t *testing.T) {
	ti := NewTubeIndex()

	mid := RowCol(4, 4)
	h := ti.byMemberH[mid]
	require.NotNil(t, h)
	assert.Len(t, h.members, numCols, "interior row should be one full-row tube")

	v := ti.byMemberV[mid]
	require.NotNil(t, v)
	assert.Len(t, v.members, numRows-2, "interior column should span rows b..h")
	assert.Equal(t, RowCol(0, 4), v.lowerBorder)
	assert.Equal(t, RowCol(8, 4), v.upperBorder)
}

func TestTubeIndexShrinkOnDeparture(t *testing.T) {
	ti := newEmptyTubeIndex()
	ti.OnDeparture(RowCol(4, 4))

	left := ti.byMemberH[RowCol(4, 3)]
	right := ti.byMemberH[RowCol(4, 5)]
	require.NotNil(t, left)
	require.NotNil(t, right)
	assert.NotEqual(t, left, right)
	assert.Len(t, left.members, 4)
	assert.Len(t, right.members, 4)
	assert.Nil(t, ti.byMemberH[RowCol(4, 4)], "occupied square should no longer be a tube member")
}

func TestTubeIndexMergeOnArrival(t *testing.T) {
	ti := newEmptyTubeIndex()
	ti.OnDeparture(RowCol(4, 4))
	ti.OnArrival(RowCol(4, 4))

	h := ti.byMemberH[RowCol(4, 4)]
	require.NotNil(t, h)
	assert.Len(t, h.members, numCols, "arrival of the empty square should re-merge the row into one tube")
}

// P5: ReachableFrom equals the union over four directions of the maximal
// empty prefix from sq, scanned independently of TubeIndex.
func TestReachableFromStartingPosition(t *testing.T) {
	ti := NewTubeIndex()
	b := NewBoard()

	for _, from := range []string{"i5", "a4", "a9"} {
		fromSq := sq(t, from)
		want := scanReachable(b, fromSq)
		got := ti.ReachableFrom(fromSq)
		assert.ElementsMatch(t, want, got, "reachable_from(%s) mismatch", from)
	}
}

func TestPathIsClear(t *testing.T) {
	ti := NewTubeIndex()
	assert.True(t, ti.PathIsClear(sq(t, "i5"), sq(t, "e5")), "i5 to e5 should slide through an empty column")
	assert.False(t, ti.PathIsClear(sq(t, "i5"), sq(t, "i1")), "i5 to i1 is along row i, which is not empty")
	assert.False(t, ti.PathIsClear(sq(t, "i5"), sq(t, "a5")), "a5 holds a RED stone and is not in any tube")
}
