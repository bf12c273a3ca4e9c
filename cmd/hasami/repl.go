package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/eli-mills/hasami-shogi/engine"
	"github.com/eli-mills/hasami-shogi/notation"
)

type replConfig struct {
	SearchDepth int
	RedIsAI     bool
	BlackIsAI   bool
	AllowUndo   bool
	Log         *logrus.Logger
}

// runREPL drives one game to completion per §6: prints the 9-row ASCII
// board, reads four-character moves (or "undo"), and reports the winner.
// Returns a non-nil error only on I/O failure; an exit code of 0 always
// means the process terminated normally, game result included.
func runREPL(cfg replConfig) error {
	game := engine.NewGame()
	red := engine.NewPlayer(game, engine.Red)
	black := engine.NewPlayer(game, engine.Black)

	in := bufio.NewReader(os.Stdin)
	out := os.Stdout

	for {
		printBoard(out, game)

		if game.GameState() != engine.Ongoing {
			fmt.Fprintln(out, game.GameState())
			return nil
		}

		active := black
		aiTurn := cfg.BlackIsAI
		if game.ActiveColor() == engine.Red {
			active = red
			aiTurn = cfg.RedIsAI
		}

		if aiTurn {
			m := bestMove(active, cfg.SearchDepth, cfg.Log)
			if m == nil {
				panic("engine has no legal move but game is not terminal")
			}
			active.MakeMove(m.From, m.To)
			fmt.Fprintf(out, "%s plays %s\n", game.ActiveColor().Opposite(), notation.FormatMove(*m))
			continue
		}

		fmt.Fprintf(out, "%s> ", game.ActiveColor())
		line, err := readLine(in)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if line == notation.UndoToken {
			if !cfg.AllowUndo || !game.UndoMove() {
				fmt.Fprintln(out, "nothing to undo")
			}
			continue
		}

		m, err := notation.ParseMove(line)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		if !active.MakeMove(m.From, m.To) {
			fmt.Fprintln(out, "illegal move")
		}
	}
}

func readLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	line = strings.TrimSpace(line)
	if err == io.EOF && line != "" {
		return line, nil
	}
	return line, err
}

func bestMove(p *engine.Player, depth int, log *logrus.Logger) *engine.Move {
	searcher := engine.NewSearcher(p, logrus.NewEntry(log))
	result := searcher.Search(depth, -1e18, 1e18)
	log.WithFields(logrus.Fields{
		"nodes":   searcher.Stats.Nodes,
		"cutoffs": searcher.Stats.Cutoffs,
		"score":   result.Score,
	}).Info("search complete")
	return result.Move
}

// printBoard renders the board as a 9-row ASCII grid with row labels
// a..i, column labels 1..9, '.' for empty, 'R'/'B' for stones (§6).
func printBoard(w io.Writer, game *engine.Game) {
	fmt.Fprintln(w, "  1 2 3 4 5 6 7 8 9")
	for row := 0; row < 9; row++ {
		fmt.Fprintf(w, "%c ", 'a'+row)
		for col := 0; col < 9; col++ {
			sq := engine.RowCol(row, col)
			switch game.Board().Get(sq) {
			case engine.Red:
				fmt.Fprint(w, "R ")
			case engine.Black:
				fmt.Fprint(w, "B ")
			default:
				fmt.Fprint(w, ". ")
			}
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "captured: RED=%d BLACK=%d\n", game.Captured(engine.Red), game.Captured(engine.Black))
}
