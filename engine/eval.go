package engine

// eval.go implements the pure static evaluator (§4.6): a signed score
// from BLACK's perspective, built from material, centrality, realized
// near-term captures, and victory.

const (
	hMaterial = 200.0
	hCenter   = 1.0 / 16.0
	hCapture  = 100.0
	hWin      = 9999.0
)

// centrality is c(sq) = (8-row)*row*(8-col)*col: zero on every edge,
// maximal at the board's center.
func centrality(sq Square) float64 {
	r, c := float64(sq.Row()), float64(sq.Col())
	return (8 - r) * r * (8 - c) * c
}

// Evaluate returns the raw, BLACK-oriented static score of g. The
// search's sign convention (BLACK maximizes, RED minimizes) handles
// perspective; Evaluate never flips sign for whoever is to move.
func Evaluate(g *Game) float64 {
	blackPieces := g.board.SquaresByColor(Black)
	redPieces := g.board.SquaresByColor(Red)

	material := float64(len(blackPieces) - len(redPieces))

	var centerSum float64
	for _, sq := range blackPieces {
		centerSum += centrality(sq)
	}
	for _, sq := range redPieces {
		centerSum -= centrality(sq)
	}

	var win float64
	switch g.state {
	case BlackWon:
		win = 1
	case RedWon:
		win = -1
	}

	term := realizedCaptureTerm(g, g.active)
	if g.active == Red {
		term = -term
	}

	return hMaterial*material + hCenter*centerSum + hCapture*term + hWin*win
}

// realizedCaptureTerm computes §4.6's realized_capture_term from the
// perspective of color active (not yet sign-adjusted to BLACK).
func realizedCaptureTerm(g *Game, active Color) float64 {
	opponent := active.Opposite()

	aBest := sortedRealizableLengths(g, active)
	oBest := sortedRealizableLengths(g, opponent)

	a0 := firstOrZero(aBest)
	if len(oBest) == 0 {
		return float64(a0)
	}

	o0 := oBest[0]
	o1 := 0
	if len(oBest) > 1 {
		o1 = oBest[1]
	}

	delta := float64(g.board.CountByColor(active) - g.board.CountByColor(opponent))
	return max(float64(a0-o0)+delta, float64(o1))
}

func firstOrZero(lens []int) int {
	if len(lens) == 0 {
		return 0
	}
	return lens[0]
}

// sortedRealizableLengths returns, best-first, the lengths of every
// vulnerable cluster of color's opponent whose risky_border color can
// reach in one slide (§4.6 "immediately realizable captures").
func sortedRealizableLengths(g *Game, color Color) []int {
	pieces := g.board.SquaresByColor(color)
	var lengths []int
	for _, cl := range g.clusters.VulnerableClusters(color.Opposite()) {
		if !cl.riskyBorder.Valid() {
			continue
		}
		if reachableByAny(g, pieces, cl.riskyBorder) {
			lengths = append(lengths, len(cl.members))
		}
	}
	// insertion sort, descending; these lists are always short.
	for i := 1; i < len(lengths); i++ {
		v := lengths[i]
		j := i - 1
		for j >= 0 && lengths[j] < v {
			lengths[j+1] = lengths[j]
			j--
		}
		lengths[j+1] = v
	}
	return lengths
}

func reachableByAny(g *Game, pieces []Square, target Square) bool {
	for _, sq := range pieces {
		if g.tubes.PathIsClear(sq, target) {
			return true
		}
	}
	return false
}
