package engine

// run.go implements the single record shared by clusters (capture
// accounting) and tubes (reachability accounting): a maximal contiguous
// sequence of same-"state" squares along one axis. §9 calls out the
// source's deep Horizontal/Vertical x Capture/Tube class hierarchy as
// exactly the kind of thing to collapse into one record with an
// orientation tag — this is that record.

// run is a maximal contiguous sequence of squares along one axis that all
// share the same color (Empty, for a tube; Red or Black, for a cluster).
type run struct {
	orientation Orientation
	color       Color
	members     []Square // sorted along the axis, lower index first
	lowerBorder Square   // NoSquare if lowerOcc is at the edge of the board
	upperBorder Square   // NoSquare if upperOcc is at the edge of the board

	// riskyBorder is meaningful only for clusters (§3 C4); tubes never
	// read it. Kept here rather than in a side map keyed by *run so a
	// cluster carries its own derived state.
	riskyBorder Square
}

func newSingletonRun(orientation Orientation, color Color, sq Square) *run {
	r := &run{orientation: orientation, color: color, members: []Square{sq}, riskyBorder: NoSquare}
	r.lowerBorder = r.borderOf(sq, -1)
	r.upperBorder = r.borderOf(sq, +1)
	return r
}

func (r *run) lowerOcc() Square { return r.members[0] }
func (r *run) upperOcc() Square { return r.members[len(r.members)-1] }

// borderOf returns the square one step from sq in direction dir (-1 or
// +1) along r's axis, or NoSquare if that falls off the board.
func (r *run) borderOf(sq Square, dir int) Square {
	if r.orientation == Horizontal {
		return neighbor(sq, 0, dir)
	}
	return neighbor(sq, dir, 0)
}

// indexOf returns the position of sq within members, or -1.
func (r *run) indexOf(sq Square) int {
	for i, m := range r.members {
		if m == sq {
			return i
		}
	}
	return -1
}

func (r *run) contains(sq Square) bool {
	return r.indexOf(sq) >= 0
}

// releaseResult describes the runs an index must swap in for the run that
// release() was called on: zero, one, or two replacements.
type releaseResult struct {
	removed *run
	added   []*run
}

// release removes sq from r, the square having just become empty (or, for
// a tube, having just become occupied — release always means "take sq out
// of this run"). It returns the run(s) that replace r: none if r was a
// singleton, one if sq was an endpoint, two if sq was interior.
//
// It is a fatal invariant violation to release a square r does not
// contain.
func (r *run) release(sq Square) releaseResult {
	i := r.indexOf(sq)
	if i < 0 {
		panicInvariant("release-contains", "square %v is not a member of this run", sq)
	}

	if len(r.members) == 1 {
		return releaseResult{removed: r}
	}

	if i == 0 {
		shrunk := &run{
			orientation: r.orientation,
			color:       r.color,
			members:     append([]Square(nil), r.members[1:]...),
			lowerBorder: sq,
			upperBorder: r.upperBorder,
			riskyBorder: NoSquare,
		}
		return releaseResult{removed: r, added: []*run{shrunk}}
	}

	if i == len(r.members)-1 {
		shrunk := &run{
			orientation: r.orientation,
			color:       r.color,
			members:     append([]Square(nil), r.members[:i]...),
			lowerBorder: r.lowerBorder,
			upperBorder: sq,
			riskyBorder: NoSquare,
		}
		return releaseResult{removed: r, added: []*run{shrunk}}
	}

	left := &run{
		orientation: r.orientation,
		color:       r.color,
		members:     append([]Square(nil), r.members[:i]...),
		lowerBorder: r.lowerBorder,
		upperBorder: sq,
		riskyBorder: NoSquare,
	}
	right := &run{
		orientation: r.orientation,
		color:       r.color,
		members:     append([]Square(nil), r.members[i+1:]...),
		lowerBorder: sq,
		upperBorder: r.upperBorder,
		riskyBorder: NoSquare,
	}
	return releaseResult{removed: r, added: []*run{left, right}}
}

// merge combines r and other, which must be the same orientation and
// color and adjacent (r.upperBorder touches other's lower endpoint, or
// vice versa) with no gap between them. It is a fatal invariant violation
// to merge incompatible or non-adjacent runs.
func merge(r, other *run) *run {
	if r.orientation != other.orientation || r.color != other.color {
		panicInvariant("merge-compatible", "cannot merge runs of different orientation/color")
	}

	var lower, upper *run
	switch {
	case r.upperBorder.Valid() && r.upperBorder == other.lowerOcc():
		lower, upper = r, other
	case other.upperBorder.Valid() && other.upperBorder == r.lowerOcc():
		lower, upper = other, r
	default:
		panicInvariant("merge-adjacent", "runs are not adjacent: %v..%v / %v..%v", r.lowerOcc(), r.upperOcc(), other.lowerOcc(), other.upperOcc())
	}

	members := make([]Square, 0, len(lower.members)+len(upper.members))
	members = append(members, lower.members...)
	members = append(members, upper.members...)
	return &run{
		orientation: r.orientation,
		color:       r.color,
		members:     members,
		lowerBorder: lower.lowerBorder,
		upperBorder: upper.upperBorder,
		riskyBorder: NoSquare,
	}
}
