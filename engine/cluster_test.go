package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClusterIndexStartingPosition(t *testing.T) {
	ci := NewClusterIndex()

	for col := 0; col < numCols; col++ {
		redHome := RowCol(0, col)
		cl := ci.byMemberH[redHome]
		require.NotNil(t, cl, "square %v should be in a horizontal cluster", redHome)
		assert.Equal(t, Red, cl.color)
		assert.Len(t, cl.members, numCols, "starting RED rank should be one full-row cluster")

		vcl := ci.byMemberV[redHome]
		require.NotNil(t, vcl)
		assert.Len(t, vcl.members, 1, "starting column stacks are singletons")
	}

	// The starting ranks are not vulnerable: both their borders are the
	// edge of the board or an empty interior, never a lone enemy.
	assert.Empty(t, ci.VulnerableClusters(Red))
	assert.Empty(t, ci.VulnerableClusters(Black))
}

func TestClusterIndexMergeOnArrival(t *testing.T) {
	ci := newEmptyClusterIndex()
	ci.OnArrival(RowCol(4, 2), Red)
	ci.OnArrival(RowCol(4, 4), Red)
	ci.OnArrival(RowCol(4, 3), Red)

	cl := ci.byMemberH[RowCol(4, 2)]
	require.NotNil(t, cl)
	assert.Equal(t, cl, ci.byMemberH[RowCol(4, 3)])
	assert.Equal(t, cl, ci.byMemberH[RowCol(4, 4)])
	assert.Len(t, cl.members, 3)
	assert.Equal(t, RowCol(4, 1), cl.lowerBorder)
	assert.Equal(t, RowCol(4, 5), cl.upperBorder)
}

func TestClusterIndexReleaseOnDeparture(t *testing.T) {
	ci := newEmptyClusterIndex()
	for _, col := range []int{2, 3, 4, 5} {
		ci.OnArrival(RowCol(4, col), Black)
	}
	board := NewBoard()
	for _, col := range []int{2, 3, 4, 5} {
		board.Set(RowCol(4, col), Black)
	}
	board.Set(RowCol(4, 3), Empty)
	ci.OnDeparture(RowCol(4, 3))

	left := ci.byMemberH[RowCol(4, 2)]
	right := ci.byMemberH[RowCol(4, 4)]
	require.NotNil(t, left)
	require.NotNil(t, right)
	assert.NotEqual(t, left, right)
	assert.Len(t, left.members, 1)
	assert.Len(t, right.members, 2)
}

// TestRiskyBorderMatchesScan is property P4: recompute risky_border from
// scratch for every occupied square and compare against the index.
func TestRiskyBorderMatchesScan(t *testing.T) {
	g := NewGame()
	applyMoves(t, g, "i5e5", "a4e4", "i8e8", "a6e6")

	for sq := Square(0); int(sq) < numRows*numCols; sq++ {
		c := g.board.Get(sq)
		if c == Empty {
			continue
		}
		for _, o := range [...]Orientation{Horizontal, Vertical} {
			want := scanRiskyBorder(g.board, sq, o, c)
			got := g.clusters.RiskyBorderOf(sq, o)
			assert.Equal(t, want, got, "risky border mismatch at %v/%v", sq, o)
		}
	}
}

// scanRiskyBorder recomputes risky_border for sq's o-oriented cluster
// directly from the board, independent of the incremental cluster index:
// walk outward from sq in both directions along the axis while the color
// matches c, then apply §3 C4 to whatever lies just past each end.
func scanRiskyBorder(b *Board, sq Square, o Orientation, c Color) Square {
	dRow, dCol := 0, 1
	if o == Vertical {
		dRow, dCol = 1, 0
	}

	lowerBorder := borderPast(b, sq, -dRow, -dCol, c)
	upperBorder := borderPast(b, sq, dRow, dCol, c)

	upperEnemy := upperBorder.Valid() && b.Get(upperBorder) == c.Opposite()
	lowerEnemy := lowerBorder.Valid() && b.Get(lowerBorder) == c.Opposite()
	lowerEmpty := lowerBorder.Valid() && b.Get(lowerBorder) == Empty
	upperEmpty := upperBorder.Valid() && b.Get(upperBorder) == Empty

	if upperEnemy && lowerEmpty {
		return lowerBorder
	}
	if lowerEnemy && upperEmpty {
		return upperBorder
	}
	return NoSquare
}

// borderPast walks from sq in direction (dRow, dCol) through same-color
// squares and returns the first square that is not color c, or NoSquare
// if the walk runs off the board first.
func borderPast(b *Board, sq Square, dRow, dCol int, c Color) Square {
	cur := sq
	for {
		cur = neighbor(cur, dRow, dCol)
		if !cur.Valid() {
			return NoSquare
		}
		if b.Get(cur) != c {
			return cur
		}
	}
}
