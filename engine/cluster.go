package engine

// cluster.go implements the incrementally maintained cluster index (§4.2):
// for every contiguous same-color run along a row or column, whether it is
// one enemy move away from capture, and on which side.

// Cluster is a maximal same-color run of adjacent squares along one axis.
// It is a *run with color always Red or Black.
type Cluster = run

// ClusterIndex maintains every horizontal and vertical cluster on the
// board, kept consistent by on_arrival/on_departure calls from the rules
// engine after every cell mutation.
type ClusterIndex struct {
	byMemberH map[Square]*Cluster
	byMemberV map[Square]*Cluster
	byBorderH map[Square][]*Cluster
	byBorderV map[Square][]*Cluster
	byColor   map[Color][]*Cluster

	// vulnerable holds exactly the clusters of each color whose
	// riskyBorder is currently set (non-NoSquare).
	vulnerable map[Color][]*Cluster

	// justCapturedSquares is populated during on_arrival when an
	// opponent cluster's riskyBorder is exactly the arriving square and
	// the far side is already friendly (a linear capture), and cleared
	// by the rules engine after each move (§4.4 step 1).
	justCapturedSquares []Square
}

// NewClusterIndex builds the cluster index for the starting position: two
// full-row clusters (the starting ranks) and one singleton vertical
// cluster per starting stone.
func NewClusterIndex() *ClusterIndex {
	ci := &ClusterIndex{
		byMemberH: map[Square]*Cluster{},
		byMemberV: map[Square]*Cluster{},
		byBorderH: map[Square][]*Cluster{},
		byBorderV: map[Square][]*Cluster{},
		byColor:   map[Color][]*Cluster{},
		vulnerable: map[Color][]*Cluster{},
	}

	for _, c := range [...]Color{Red, Black} {
		row := 0
		if c == Black {
			row = numRows - 1
		}
		members := make([]Square, numCols)
		for col := 0; col < numCols; col++ {
			members[col] = RowCol(row, col)
		}
		hor := &run{orientation: Horizontal, color: c, members: members, lowerBorder: NoSquare, upperBorder: NoSquare, riskyBorder: NoSquare}
		ci.addRun(hor)
		for col := 0; col < numCols; col++ {
			ci.addRun(newSingletonRun(Vertical, c, RowCol(row, col)))
		}
	}

	for _, c := range [...]Color{Red, Black} {
		for _, cl := range ci.byColor[c] {
			ci.recomputeRisky(cl)
		}
	}
	return ci
}

// newEmptyClusterIndex returns a ClusterIndex with no clusters at all,
// the correct starting point for placing stones one at a time on an
// otherwise empty board (used to build scenario fixtures for tests).
func newEmptyClusterIndex() *ClusterIndex {
	return &ClusterIndex{
		byMemberH:  map[Square]*Cluster{},
		byMemberV:  map[Square]*Cluster{},
		byBorderH:  map[Square][]*Cluster{},
		byBorderV:  map[Square][]*Cluster{},
		byColor:    map[Color][]*Cluster{},
		vulnerable: map[Color][]*Cluster{},
	}
}

func (ci *ClusterIndex) byMember(o Orientation) map[Square]*Cluster {
	if o == Horizontal {
		return ci.byMemberH
	}
	return ci.byMemberV
}

func (ci *ClusterIndex) byBorder(o Orientation) map[Square][]*Cluster {
	if o == Horizontal {
		return ci.byBorderH
	}
	return ci.byBorderV
}

// addRun registers a newly created cluster in every index.
func (ci *ClusterIndex) addRun(r *Cluster) {
	bm := ci.byMember(r.orientation)
	for _, sq := range r.members {
		bm[sq] = r
	}
	bb := ci.byBorder(r.orientation)
	if r.lowerBorder.Valid() {
		bb[r.lowerBorder] = append(bb[r.lowerBorder], r)
	}
	if r.upperBorder.Valid() {
		bb[r.upperBorder] = append(bb[r.upperBorder], r)
	}
	ci.byColor[r.color] = append(ci.byColor[r.color], r)
}

// removeRun unregisters a cluster from every index.
func (ci *ClusterIndex) removeRun(r *Cluster) {
	bm := ci.byMember(r.orientation)
	for _, sq := range r.members {
		if bm[sq] == r {
			delete(bm, sq)
		}
	}
	bb := ci.byBorder(r.orientation)
	if r.lowerBorder.Valid() {
		bb[r.lowerBorder] = removeClusterFromSlice(bb[r.lowerBorder], r)
	}
	if r.upperBorder.Valid() {
		bb[r.upperBorder] = removeClusterFromSlice(bb[r.upperBorder], r)
	}
	ci.byColor[r.color] = removeClusterFromSlice(ci.byColor[r.color], r)
	ci.vulnerable[r.color] = removeClusterFromSlice(ci.vulnerable[r.color], r)
}

func removeClusterFromSlice(s []*Cluster, r *Cluster) []*Cluster {
	for i, c := range s {
		if c == r {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// clustersAt returns the (at most two) clusters containing sq: the
// horizontal one and the vertical one.
func (ci *ClusterIndex) clustersAt(sq Square) []*Cluster {
	var out []*Cluster
	if c, ok := ci.byMemberH[sq]; ok {
		out = append(out, c)
	}
	if c, ok := ci.byMemberV[sq]; ok {
		out = append(out, c)
	}
	return out
}

// clustersBorderingAt returns every cluster for which sq is a border,
// across both orientations.
func (ci *ClusterIndex) clustersBorderingAt(sq Square) []*Cluster {
	var out []*Cluster
	out = append(out, ci.byBorderH[sq]...)
	out = append(out, ci.byBorderV[sq]...)
	return out
}

// OnDeparture handles sq transitioning from occupied to empty. The board
// cell at sq must already have been updated by the caller.
func (ci *ClusterIndex) OnDeparture(sq Square) {
	affected := ci.clustersAt(sq)
	if len(affected) == 0 {
		panicInvariant("cluster-departure-member", "square %v departed but was not a member of any cluster", sq)
	}

	// Collect every cluster whose risky_border bookkeeping could change:
	// the ones being split/shrunk, plus anything that already bordered
	// sq (a neighbor now sees a new member at sq once on_arrival of the
	// tube side runs, but for clusters the only new border is sq itself,
	// registered below).
	toRefresh := map[*Cluster]bool{}
	for _, cl := range affected {
		res := cl.release(sq)
		ci.removeRun(res.removed)
		for _, added := range res.added {
			ci.addRun(added)
			toRefresh[added] = true
		}
	}
	for _, cl := range ci.clustersBorderingAt(sq) {
		toRefresh[cl] = true
	}
	for cl := range toRefresh {
		ci.recomputeRisky(cl)
	}
}

// OnArrival handles sq transitioning from empty to color c. The board
// cell at sq must already have been updated by the caller. Populates
// justCapturedSquares when the arrival completes a linear capture.
func (ci *ClusterIndex) OnArrival(sq Square, c Color) {
	// Snapshot the clusters for which sq was a border *before* any
	// merging starts touching the border index for this orientation.
	before := map[Orientation][]*Cluster{
		Horizontal: append([]*Cluster(nil), ci.byBorderH[sq]...),
		Vertical:   append([]*Cluster(nil), ci.byBorderV[sq]...),
	}

	for _, o := range [...]Orientation{Horizontal, Vertical} {
		singleton := newSingletonRun(o, c, sq)
		merged := singleton

		for _, cl := range before[o] {
			if cl.color != c {
				continue
			}
			switch sq {
			case cl.upperBorder:
				ci.removeRun(cl)
				merged = merge(merged, cl)
			case cl.lowerBorder:
				ci.removeRun(cl)
				merged = merge(merged, cl)
			}
		}
		ci.addRun(merged)
	}

	ci.detectLinearCapture(sq, c)

	toRefresh := map[*Cluster]bool{}
	for _, cl := range ci.clustersAt(sq) {
		toRefresh[cl] = true
	}
	for _, cl := range ci.clustersBorderingAt(sq) {
		toRefresh[cl] = true
	}
	for cl := range toRefresh {
		ci.recomputeRisky(cl)
	}
}

// detectLinearCapture records, in justCapturedSquares, every enemy run
// that the arrival at sq just bracketed. For each of the four directions
// from sq: if the adjacent square holds an enemy cluster and that
// cluster's far border (the side away from sq) is occupied by c, the
// whole enemy cluster is captured (§4.4 "linear capture rule").
func (ci *ClusterIndex) detectLinearCapture(sq Square, c Color) {
	probe := &run{}
	for _, o := range [...]Orientation{Horizontal, Vertical} {
		probe.orientation = o
		for _, dir := range [...]int{-1, +1} {
			adjacent := probe.borderOf(sq, dir)
			if !adjacent.Valid() {
				continue
			}
			enemy := ci.byMember(o)[adjacent]
			if enemy == nil || enemy.color != c.Opposite() {
				continue
			}
			farBorder := enemy.lowerBorder
			if dir > 0 {
				farBorder = enemy.upperBorder
			}
			if farBorder.Valid() && ci.byMember(o)[farBorder] != nil && ci.byMember(o)[farBorder].color == c {
				ci.justCapturedSquares = append(ci.justCapturedSquares, enemy.members...)
			}
		}
	}
}

// ClearJustCaptured empties the accumulator; called by the rules engine
// at the start of each move (§4.4 step 1) and after it has consumed the
// contents (step 5).
func (ci *ClusterIndex) ClearJustCaptured() {
	ci.justCapturedSquares = nil
}

// JustCaptured returns the squares captured linearly by the move in
// progress.
func (ci *ClusterIndex) JustCaptured() []Square {
	return ci.justCapturedSquares
}

// recomputeRisky applies §3 C4 to cl and updates the vulnerable index.
func (ci *ClusterIndex) recomputeRisky(cl *Cluster) {
	was := cl.riskyBorder
	cl.riskyBorder = NoSquare

	if cl.lowerBorder.Valid() && cl.upperBorder.Valid() {
		lowerEmpty := ci.byMember(cl.orientation)[cl.lowerBorder] == nil
		upperEmpty := ci.byMember(cl.orientation)[cl.upperBorder] == nil
		upperEnemy := !upperEmpty && ci.byMember(cl.orientation)[cl.upperBorder].color == cl.color.Opposite()
		lowerEnemy := !lowerEmpty && ci.byMember(cl.orientation)[cl.lowerBorder].color == cl.color.Opposite()

		if upperEnemy && lowerEmpty {
			cl.riskyBorder = cl.lowerBorder
		} else if lowerEnemy && upperEmpty {
			cl.riskyBorder = cl.upperBorder
		}
	}
	// If only one border is valid (the run touches an edge), it cannot be
	// bracketed from both sides, so riskyBorder stays NoSquare.

	if was == cl.riskyBorder {
		return
	}
	wasVuln := was.Valid()
	isVuln := cl.riskyBorder.Valid()
	if wasVuln && !isVuln {
		ci.vulnerable[cl.color] = removeClusterFromSlice(ci.vulnerable[cl.color], cl)
	} else if !wasVuln && isVuln {
		ci.vulnerable[cl.color] = append(ci.vulnerable[cl.color], cl)
	}
}

// VulnerableClusters returns the clusters of color c whose riskyBorder is
// currently set, i.e. exactly one enemy move from capture.
func (ci *ClusterIndex) VulnerableClusters(c Color) []*Cluster {
	return ci.vulnerable[c]
}

// RiskyBorderOf returns the risky border of the cluster containing sq
// along orientation o, or NoSquare if sq is unoccupied or
// that cluster is currently safe. Used by property test P4.
func (ci *ClusterIndex) RiskyBorderOf(sq Square, o Orientation) Square {
	cl := ci.byMember(o)[sq]
	if cl == nil {
		return NoSquare
	}
	return cl.riskyBorder
}
