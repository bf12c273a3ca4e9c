// Command perft exhaustively plays out every legal move from a position
// to a fixed depth, counting nodes and captures, and asserting the core
// reachable-state invariants (P1, P2, P3) at every node visited.
//
// Example (the elapsed column, which varies from run to run, is left
// out):
//
//	$ go run ./perft --max_depth 2
//	depth        nodes    captures   elapsed
//	-----+------------+-----------+---------
//	    1           63           0
//	    2         3717           0
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/eli-mills/hasami-shogi/engine"
)

var (
	minDepth = flag.Int("min_depth", 1, "minimum depth to search (inclusive)")
	maxDepth = flag.Int("max_depth", 3, "maximum depth to search (inclusive)")
	checkP3  = flag.Bool("check_p3", true, "assert apply/undo reversibility at every node")
)

type counters struct {
	nodes    uint64
	captures uint64
}

func main() {
	flag.Parse()
	log := logrus.New()

	fmt.Println("depth        nodes    captures   elapsed")
	fmt.Println("-----+------------+-----------+---------")
	for depth := *minDepth; depth <= *maxDepth; depth++ {
		start := time.Now()
		game := engine.NewGame()
		co := walk(game, depth, *checkP3)
		fmt.Printf("%5d %12d %11d %9s\n", depth, co.nodes, co.captures, time.Since(start))
	}
	log.Info("perft complete")
}

// walk recursively plays every legal move from the active player's
// perspective to the given depth, verifying P1/P2 at every node and,
// when checkP3 is set, that apply/undo is byte-identical.
func walk(g *engine.Game, depth int, checkP3 bool) counters {
	if err := g.Verify(); err != nil {
		panic(err)
	}
	if depth == 0 {
		return counters{nodes: 1}
	}

	red := engine.NewPlayer(g, engine.Red)
	black := engine.NewPlayer(g, engine.Black)
	active := black
	if g.ActiveColor() == engine.Red {
		active = red
	}

	var co counters
	for _, m := range active.ValidMoves() {
		before := snapshot(g)
		capturedBefore := g.Captured(engine.Red) + g.Captured(engine.Black)

		if !active.MakeMove(m.From, m.To) {
			panic(fmt.Sprintf("move %v reported by ValidMoves was rejected", m))
		}
		capturedAfter := g.Captured(engine.Red) + g.Captured(engine.Black)
		co.captures += uint64(capturedAfter - capturedBefore)

		sub := walk(g, depth-1, checkP3)
		co.nodes += sub.nodes
		co.captures += sub.captures

		if !active.UndoMove() {
			panic("no move to undo after MakeMove succeeded")
		}
		if checkP3 && !before.equal(g) {
			panic(fmt.Sprintf("P3 violated: state after undo of %v differs from before", m))
		}
	}
	return co
}

// gameSnapshot captures the board, active color, state, and captured
// counts, which walk compares across an apply/undo round trip. The
// indexes and the move log are not part of it.
type gameSnapshot struct {
	board  *engine.Board
	active engine.Color
	state  engine.GameState
	red    int
	black  int
}

func snapshot(g *engine.Game) gameSnapshot {
	return gameSnapshot{
		board:  g.Board().Clone(),
		active: g.ActiveColor(),
		state:  g.GameState(),
		red:    g.Captured(engine.Red),
		black:  g.Captured(engine.Black),
	}
}

func (s gameSnapshot) equal(g *engine.Game) bool {
	return s.board.Equal(g.Board()) &&
		s.active == g.ActiveColor() &&
		s.state == g.GameState() &&
		s.red == g.Captured(engine.Red) &&
		s.black == g.Captured(engine.Black)
}
