package engine

// tube.go implements the incrementally maintained tube index (§4.3): for
// every empty square, the contiguous run of empty squares reachable by a
// slide along one axis. Shares the run record with cluster.go (§9); the
// only difference is that a tube's color is always Empty and there is no
// risky-border bookkeeping.

// Tube is a maximal run of contiguous empty squares along one axis. It is
// a *run with color always Empty.
type Tube = run

// TubeIndex maintains every horizontal and vertical tube on the board,
// kept consistent by OnArrival/OnDeparture calls from the rules engine
// after every cell mutation. Arrival and departure are of the empty
// square, the opposite polarity from ClusterIndex: a square becoming empty
// arrives and grows or merges the tubes beside it; a square becoming
// occupied departs and shrinks or splits the tubes through it.
type TubeIndex struct {
	byMemberH map[Square]*Tube
	byMemberV map[Square]*Tube
	byBorderH map[Square][]*Tube
	byBorderV map[Square][]*Tube
}

// NewTubeIndex builds the tube index for the starting position: the seven
// empty interior rows are each one full-row horizontal tube, and every
// column has one vertical tube spanning rows b..h.
func NewTubeIndex() *TubeIndex {
	ti := &TubeIndex{
		byMemberH: map[Square]*Tube{},
		byMemberV: map[Square]*Tube{},
		byBorderH: map[Square][]*Tube{},
		byBorderV: map[Square][]*Tube{},
	}

	for row := 1; row < numRows-1; row++ {
		members := make([]Square, numCols)
		for col := 0; col < numCols; col++ {
			members[col] = RowCol(row, col)
		}
		ti.addRun(&Tube{orientation: Horizontal, color: Empty, members: members, lowerBorder: NoSquare, upperBorder: NoSquare, riskyBorder: NoSquare})
	}

	for col := 0; col < numCols; col++ {
		members := make([]Square, numRows-2)
		for row := 1; row < numRows-1; row++ {
			members[row-1] = RowCol(row, col)
		}
		ti.addRun(&Tube{
			orientation: Vertical,
			color:       Empty,
			members:     members,
			lowerBorder: RowCol(0, col),
			upperBorder: RowCol(numRows-1, col),
			riskyBorder: NoSquare,
		})
	}

	return ti
}

// newEmptyTubeIndex returns the tube index for a completely empty 9x9
// board: one full-row tube per row, one full-column tube per column.
func newEmptyTubeIndex() *TubeIndex {
	ti := &TubeIndex{
		byMemberH: map[Square]*Tube{},
		byMemberV: map[Square]*Tube{},
		byBorderH: map[Square][]*Tube{},
		byBorderV: map[Square][]*Tube{},
	}
	for row := 0; row < numRows; row++ {
		members := make([]Square, numCols)
		for col := 0; col < numCols; col++ {
			members[col] = RowCol(row, col)
		}
		ti.addRun(&Tube{orientation: Horizontal, color: Empty, members: members, lowerBorder: NoSquare, upperBorder: NoSquare, riskyBorder: NoSquare})
	}
	for col := 0; col < numCols; col++ {
		members := make([]Square, numRows)
		for row := 0; row < numRows; row++ {
			members[row] = RowCol(row, col)
		}
		ti.addRun(&Tube{orientation: Vertical, color: Empty, members: members, lowerBorder: NoSquare, upperBorder: NoSquare, riskyBorder: NoSquare})
	}
	return ti
}

func (ti *TubeIndex) byMember(o Orientation) map[Square]*Tube {
	if o == Horizontal {
		return ti.byMemberH
	}
	return ti.byMemberV
}

func (ti *TubeIndex) byBorder(o Orientation) map[Square][]*Tube {
	if o == Horizontal {
		return ti.byBorderH
	}
	return ti.byBorderV
}

func (ti *TubeIndex) addRun(t *Tube) {
	bm := ti.byMember(t.orientation)
	for _, sq := range t.members {
		bm[sq] = t
	}
	bb := ti.byBorder(t.orientation)
	if t.lowerBorder.Valid() {
		bb[t.lowerBorder] = append(bb[t.lowerBorder], t)
	}
	if t.upperBorder.Valid() {
		bb[t.upperBorder] = append(bb[t.upperBorder], t)
	}
}

func (ti *TubeIndex) removeRun(t *Tube) {
	bm := ti.byMember(t.orientation)
	for _, sq := range t.members {
		if bm[sq] == t {
			delete(bm, sq)
		}
	}
	bb := ti.byBorder(t.orientation)
	if t.lowerBorder.Valid() {
		bb[t.lowerBorder] = removeTubeFromSlice(bb[t.lowerBorder], t)
	}
	if t.upperBorder.Valid() {
		bb[t.upperBorder] = removeTubeFromSlice(bb[t.upperBorder], t)
	}
}

func removeTubeFromSlice(s []*Tube, t *Tube) []*Tube {
	for i, x := range s {
		if x == t {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// OnDeparture handles a stone landing on sq: sq leaves the empty set, so
// any tube containing it shrinks or splits. The board cell must already be
// occupied when this is called.
func (ti *TubeIndex) OnDeparture(sq Square) {
	for _, o := range [...]Orientation{Horizontal, Vertical} {
		t := ti.byMember(o)[sq]
		if t == nil {
			panicInvariant("tube-departure-member", "square %v became occupied but was not a member of any tube", sq)
		}
		res := t.release(sq)
		ti.removeRun(res.removed)
		for _, added := range res.added {
			ti.addRun(added)
		}
	}
}

// OnArrival handles a stone leaving sq: sq joins the empty set, so
// neighboring tubes grow to absorb it. The board cell must already be
// empty when this is called.
func (ti *TubeIndex) OnArrival(sq Square) {
	for _, o := range [...]Orientation{Horizontal, Vertical} {
		before := append([]*Tube(nil), ti.byBorder(o)[sq]...)
		singleton := newSingletonRun(o, Empty, sq)
		merged := singleton
		for _, t := range before {
			switch sq {
			case t.upperBorder, t.lowerBorder:
				ti.removeRun(t)
				merged = merge(merged, t)
			}
		}
		ti.addRun(merged)
	}
}

// ReachableFrom returns every square a stone at sq could slide to in one
// move: the members of each of the (up to four) tubes bordering sq.
func (ti *TubeIndex) ReachableFrom(sq Square) []Square {
	var out []Square
	for _, o := range [...]Orientation{Horizontal, Vertical} {
		for _, t := range ti.byBorder(o)[sq] {
			out = append(out, t.members...)
		}
	}
	return out
}

// PathIsClear reports whether to is reachable from from by an unobstructed
// slide along their shared axis, i.e. to belongs to a tube bordering from.
func (ti *TubeIndex) PathIsClear(from, to Square) bool {
	axisRow, ok := sameAxis(from, to)
	if !ok {
		return false
	}
	o := Vertical
	if axisRow {
		o = Horizontal
	}
	for _, t := range ti.byBorder(o)[from] {
		if t.contains(to) {
			return true
		}
	}
	return false
}
