// Command bench benchmarks the search: it plays a handful of canonical
// opening sequences move by move and, after each move, runs a
// fixed-depth search from the position reached, reporting total nodes
// and nodes per second. Regression of the reported node count at a
// fixed depth signals an unintended change to search or evaluation.
// bench_test.go only smoke-tests the harness; it pins no node count.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/eli-mills/hasami-shogi/engine"
	"github.com/eli-mills/hasami-shogi/notation"
)

type gameInfo struct {
	description string
	moves       []string
}

// games holds a few canonical Hasami Shogi openings: the first replays
// the end-to-end scenarios S1 and S2, the second advances both flanks.
var games = []gameInfo{
	{
		description: "opening rush to center",
		moves:       strings.Fields("i5e5 a4e4 i8e8 a6e6"),
	},
	{
		description: "single flank advance",
		moves:       strings.Fields("i1e1 a9e9 i2e2 a8e8"),
	},
}

var depth = flag.Int("depth", 3, "search depth at each position")

// eval plays g.moves from the starting position, running a fixed-depth
// search after every move, and returns the total nodes visited.
func (g *gameInfo) eval(depth int) (uint64, error) {
	game := engine.NewGame()
	red := engine.NewPlayer(game, engine.Red)
	black := engine.NewPlayer(game, engine.Black)

	var nodes uint64
	for _, mstr := range g.moves {
		m, err := notation.ParseMove(mstr)
		if err != nil {
			return nodes, err
		}
		active := black
		if game.ActiveColor() == engine.Red {
			active = red
		}
		if !active.MakeMove(m.From, m.To) {
			return nodes, fmt.Errorf("illegal move %s in %q", mstr, g.description)
		}

		next := black
		if game.ActiveColor() == engine.Red {
			next = red
		}
		searcher := engine.NewSearcher(next, nil)
		searcher.Search(depth, -1e18, 1e18)
		nodes += searcher.Stats.Nodes
	}
	return nodes, nil
}

func evalAll(depth int) (uint64, float64) {
	start := time.Now()
	var total uint64
	for i := range games {
		n, err := games[i].eval(depth)
		if err != nil {
			log.Fatalf("game %d: %v", i, err)
		}
		total += n
		log.Printf("#%d %d %s", i, n, games[i].description)
	}
	elapsed := time.Since(start)
	return total, float64(total) / elapsed.Seconds()
}

func main() {
	flag.Parse()
	nodes, nps := evalAll(*depth)
	fmt.Printf("nodes %d\n", nodes)
	fmt.Printf("  nps %.0f\n", nps)
}
