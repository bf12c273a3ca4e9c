package engine

import "github.com/pkg/errors"

// game.go implements the RulesEngine (§4.4): move legality, execution
// order, and the two capture rules. It owns the Board and both indexes
// and is the only thing permitted to mutate them.

// cornerPairs maps each of the eight squares orthogonally adjacent to a
// corner to that corner, e.g. a2 and b1 both map to a1 (§4.4 corner
// capture rule).
var cornerPairs = buildCornerPairs()

func buildCornerPairs() map[Square]Square {
	type pair struct{ corner, p1, p2 Square }
	pairs := []pair{
		{RowCol(0, 0), RowCol(0, 1), RowCol(1, 0)},                         // a1: a2, b1
		{RowCol(0, numCols-1), RowCol(0, numCols-2), RowCol(1, numCols-1)}, // a9: a8, b9
		{RowCol(numRows-1, 0), RowCol(numRows-2, 0), RowCol(numRows-1, 1)}, // i1: h1, i2
		{RowCol(numRows-1, numCols-1), RowCol(numRows-1, numCols-2), RowCol(numRows-2, numCols-1)}, // i9: i8, h9
	}
	m := map[Square]Square{}
	for _, p := range pairs {
		m[p.p1] = p.corner
		m[p.p2] = p.corner
	}
	return m
}

// cornerMate returns the other pair-square for sq's corner. sq must be one
// of corner's two pair-squares; for any other sq it returns the corner's
// same-row neighbor, never NoSquare.
func cornerMate(sq, corner Square) Square {
	r, c := corner.Row(), corner.Col()
	dr, dc := 0, 1
	if r == 0 {
		dr = 1
	} else {
		dr = -1
	}
	if c == 0 {
		dc = 1
	} else {
		dc = -1
	}
	horiz := RowCol(r, c+dc)
	vert := RowCol(r+dr, c)
	if sq == horiz {
		return vert
	}
	return horiz
}

func containsSquare(squares []Square, sq Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}

// Game owns the board, both indexes, and all mutable match state. It is
// the sole mutator of its Board and indexes (§3 "Game").
type Game struct {
	board     *Board
	clusters  *ClusterIndex
	tubes     *TubeIndex
	captured  map[Color]int
	active    Color
	state     GameState
	moveLog   []MoveRecord
	lastEmpty []Square // squares the engine emptied by the most recent make_move
}

// NewGame returns a game in the starting position with BLACK to move
// (§3: "BLACK moves first").
func NewGame() *Game {
	return &Game{
		board:    NewBoard(),
		clusters: NewClusterIndex(),
		tubes:    NewTubeIndex(),
		captured: map[Color]int{Red: 0, Black: 0},
		active:   Black,
		state:    Ongoing,
	}
}

// NewGameFromScenario builds a Game on an otherwise empty board, placing
// the given stones through the same OnArrival machinery make_move uses,
// so the resulting indexes are exactly as if each stone had slid into
// place on an empty board. Used by tests to seed non-starting positions
// (§8 S3-S6); never used by the rules engine itself.
func NewGameFromScenario(stones map[Color][]Square, active Color) *Game {
	g := &Game{
		board:    &Board{},
		clusters: newEmptyClusterIndex(),
		tubes:    newEmptyTubeIndex(),
		captured: map[Color]int{Red: 0, Black: 0},
		active:   active,
		state:    Ongoing,
	}
	for _, c := range [...]Color{Red, Black} {
		for _, sq := range stones[c] {
			g.board.Set(sq, c)
			g.clusters.OnArrival(sq, c)
			g.tubes.OnDeparture(sq)
		}
	}
	return g
}

func (g *Game) ActiveColor() Color   { return g.active }
func (g *Game) GameState() GameState { return g.state }
func (g *Game) Captured(c Color) int { return g.captured[c] }
func (g *Game) Board() *Board        { return g.board }

// ReachableFrom returns the set of empty squares a stone at sq could
// slide to in one move.
func (g *Game) ReachableFrom(sq Square) []Square {
	return g.tubes.ReachableFrom(sq)
}

// LastCaptured returns the squares the engine emptied by the most recent
// make_move, for a graphical driver to animate (§6).
func (g *Game) LastCaptured() []Square {
	return g.lastEmpty
}

// LastMove returns the most recent move-log entry, or errNoMoveToUndo if
// no move has been made yet.
func (g *Game) LastMove() (*MoveRecord, error) {
	if len(g.moveLog) == 0 {
		return nil, errNoMoveToUndo
	}
	return &g.moveLog[len(g.moveLog)-1], nil
}

// legal checks L1-L6 (§4.4).
func (g *Game) legal(from, to Square) bool {
	if g.state != Ongoing { // L1
		return false
	}
	if !from.Valid() || !to.Valid() { // L2
		return false
	}
	if g.board.Get(from) != g.active { // L3
		return false
	}
	if from == to { // L4
		return false
	}
	if _, ok := sameAxis(from, to); !ok { // L5
		return false
	}
	return g.tubes.PathIsClear(from, to) // L6
}

// MakeMove validates and, if legal, applies the move from→to: resolves
// captures, updates score and state, appends a move-log entry, toggles
// the active color, and returns true. An illegal move leaves all state
// untouched and returns false (§4.4, §7 "illegal move").
func (g *Game) MakeMove(from, to Square) bool {
	if !g.legal(from, to) {
		return false
	}
	mover := g.active

	// Step 1.
	g.clusters.ClearJustCaptured()

	// Step 2.
	g.board.Set(from, Empty)
	g.clusters.OnDeparture(from)
	g.tubes.OnArrival(from)

	// Step 3.
	g.board.Set(to, mover)
	g.clusters.OnArrival(to, mover)
	g.tubes.OnDeparture(to)

	// Step 4.
	record := MoveRecord{Move: Move{From: from, To: to}, Mover: mover}

	// Step 5: linear captures.
	captured := append([]Square(nil), g.clusters.JustCaptured()...)
	g.clusters.ClearJustCaptured()

	// Step 6: corner capture.
	if corner, ok := cornerPairs[to]; ok {
		mate := cornerMate(to, corner)
		if g.board.Get(corner) == mover.Opposite() && g.board.Get(mate) == mover && !containsSquare(captured, corner) {
			captured = append(captured, corner)
		}
	}

	// Step 7.
	g.lastEmpty = nil
	enemy := mover.Opposite()
	for _, sq := range captured {
		g.captured[enemy]++
		g.board.Set(sq, Empty)
		g.clusters.OnDeparture(sq)
		g.tubes.OnArrival(sq)
		g.lastEmpty = append(g.lastEmpty, sq)
	}
	record.Captured = captured
	g.moveLog = append(g.moveLog, record)

	// Step 8.
	switch {
	case g.captured[Red] >= capturesToWin:
		g.state = BlackWon
	case g.captured[Black] >= capturesToWin:
		g.state = RedWon
	}

	// Step 9.
	g.active = mover.Opposite()

	return true
}

// Verify checks invariants P1 and P2 (§8) from scratch against the
// current board, returning the first violation found. Intended for
// fuzzers and property tests, not for the hot move-making path.
func (g *Game) Verify() error {
	for _, c := range [...]Color{Red, Black} {
		if n := len(g.board.SquaresByColor(c)) + g.captured[c]; n != totalStonesPerColor {
			return errors.Errorf("P2 violated for %v: %d on board + %d captured != %d", c, len(g.board.SquaresByColor(c)), g.captured[c], totalStonesPerColor)
		}
	}

	for sq := Square(0); int(sq) < numRows*numCols; sq++ {
		c := g.board.Get(sq)
		if c == Empty {
			continue
		}
		for _, o := range [...]Orientation{Horizontal, Vertical} {
			cl := g.clusters.byMember(o)[sq]
			if cl == nil {
				return errors.Errorf("P1 violated: %v has no %v cluster", sq, o)
			}
			if cl.color != c {
				return errors.Errorf("P1 violated: %v's %v cluster has color %v, board has %v", sq, o, cl.color, c)
			}
		}
	}

	for _, c := range [...]Color{Red, Black} {
		for _, o := range [...]Orientation{Horizontal, Vertical} {
			byOrientation := g.clusters.byColor[c]
			for _, cl := range byOrientation {
				if cl.orientation != o {
					continue
				}
				if cl.upperBorder.Valid() {
					if neighbor := g.clusters.byMember(o)[cl.upperBorder]; neighbor != nil && neighbor.color == c {
						return errors.Errorf("P1 violated: %v cluster touching %v has adjoining same-color cluster", o, cl.upperBorder)
					}
				}
			}
		}
	}

	return nil
}

// UndoMove pops the last move-log entry and inverts it exactly: toggles
// the active color back, moves the stone from to back to from, restores
// any captured stones, subtracts their count from the captor's score,
// and clears any terminal state. Returns false if there is no move to
// undo (§4.4).
func (g *Game) UndoMove() bool {
	if len(g.moveLog) == 0 {
		return false
	}
	record := g.moveLog[len(g.moveLog)-1]
	g.moveLog = g.moveLog[:len(g.moveLog)-1]

	enemy := record.Mover.Opposite()

	// Invert step 8: clear terminal state.
	g.state = Ongoing

	// Invert step 9: restore the mover as active.
	g.active = record.Mover

	// Invert step 7: restore captured stones, in reverse order.
	for i := len(record.Captured) - 1; i >= 0; i-- {
		sq := record.Captured[i]
		g.board.Set(sq, enemy)
		g.clusters.OnArrival(sq, enemy)
		g.tubes.OnDeparture(sq)
		g.captured[enemy]--
	}
	g.clusters.ClearJustCaptured()
	g.lastEmpty = nil

	// Invert step 3: undo the arrival at `to`.
	g.board.Set(record.Move.To, Empty)
	g.clusters.OnDeparture(record.Move.To)
	g.tubes.OnArrival(record.Move.To)

	// Invert step 2: undo the departure from `from`.
	g.board.Set(record.Move.From, record.Mover)
	g.clusters.OnArrival(record.Move.From, record.Mover)
	g.tubes.OnDeparture(record.Move.From)

	return true
}
