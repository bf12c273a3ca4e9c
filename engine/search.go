package engine

import "github.com/sirupsen/logrus"

// search.go implements the alpha-beta minimax search over Player.make /
// Game.undo (§4.7). BLACK maximizes the BLACK-oriented Evaluate score,
// RED minimizes it.

// Stats accumulates counters for one Search call, mirroring how much
// work alpha-beta actually did.
type Stats struct {
	Nodes     uint64
	Cutoffs   uint64
	LeafCalls uint64
}

// Result is the outcome of a Search call: the best move found (nil if
// the position is terminal or depth is 0) and its score from BLACK's
// perspective.
type Result struct {
	Move  *Move
	Score float64
}

// Searcher runs alpha-beta minimax for one Player. It carries log and
// hands it to the opponent's searcher; Search writes nothing to it.
type Searcher struct {
	player *Player
	log    *logrus.Entry
	Stats  Stats
}

// NewSearcher returns a Searcher that drives moves through player.
func NewSearcher(player *Player, log *logrus.Entry) *Searcher {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Searcher{player: player, log: log}
}

// Search runs alpha-beta minimax to the given depth and returns the best
// move along with its BLACK-oriented score.
func (s *Searcher) Search(depth int, alpha, beta float64) Result {
	s.Stats.Nodes++
	game := s.player.game

	if depth == 0 || game.state != Ongoing {
		s.Stats.LeafCalls++
		return Result{Score: Evaluate(game)}
	}

	maximizing := s.player.color == Black
	moves := s.orderedMoves()

	best := Result{Score: -inf}
	if !maximizing {
		best.Score = inf
	}

	opponent := NewPlayer(game, s.player.color.Opposite())
	oppSearcher := &Searcher{player: opponent, log: s.log}

	for i := range moves {
		m := moves[i]
		if !s.player.MakeMove(m.From, m.To) {
			panicInvariant("search-move-apply", "ordered move %v was rejected by MakeMove", m)
		}
		sub := oppSearcher.Search(depth-1, alpha, beta)
		if !s.player.UndoMove() {
			panicInvariant("search-move-undo", "no move to undo after applying %v", m)
		}
		s.Stats.Nodes += oppSearcher.Stats.Nodes
		s.Stats.LeafCalls += oppSearcher.Stats.LeafCalls
		s.Stats.Cutoffs += oppSearcher.Stats.Cutoffs
		oppSearcher.Stats = Stats{}

		better := false
		if maximizing {
			better = best.Move == nil || sub.Score > best.Score
		} else {
			better = best.Move == nil || sub.Score < best.Score
		}
		if better {
			mv := m
			best = Result{Move: &mv, Score: sub.Score}
		}

		if maximizing {
			alpha = max(alpha, best.Score)
		} else {
			beta = min(beta, best.Score)
		}
		if beta <= alpha {
			s.Stats.Cutoffs++
			break
		}
	}

	return best
}

const inf = 1 << 30

// orderedMoves implements the four-tier move ordering of §4.7.
func (s *Searcher) orderedMoves() []Move {
	game := s.player.game
	color := s.player.color
	opponent := color.Opposite()

	all := s.player.ValidMoves()

	captureLen := map[Move]int{}
	for _, cl := range game.clusters.VulnerableClusters(opponent) {
		if !cl.riskyBorder.Valid() {
			continue
		}
		for _, m := range all {
			if m.To == cl.riskyBorder {
				if n := len(cl.members); n > captureLen[m] {
					captureLen[m] = n
				}
			}
		}
	}

	var captures, threats, central, rest []Move
	seen := map[Move]bool{}

	for _, m := range all {
		if captureLen[m] > 0 {
			captures = append(captures, m)
			seen[m] = true
		}
	}
	sortMovesByCaptureLen(captures, captureLen)

	for _, m := range all {
		if seen[m] {
			continue
		}
		if isThreat(game, m.To, opponent) {
			threats = append(threats, m)
			seen[m] = true
		}
	}

	for _, m := range all {
		if seen[m] {
			continue
		}
		if m.To.IsCentral() {
			central = append(central, m)
			seen[m] = true
		}
	}

	for _, m := range all {
		if !seen[m] {
			rest = append(rest, m)
		}
	}

	out := make([]Move, 0, len(all))
	out = append(out, captures...)
	out = append(out, threats...)
	out = append(out, central...)
	out = append(out, rest...)
	return out
}

func sortMovesByCaptureLen(moves []Move, lengths map[Move]int) {
	for i := 1; i < len(moves); i++ {
		v := moves[i]
		j := i - 1
		for j >= 0 && lengths[moves[j]] < lengths[v] {
			moves[j+1] = moves[j]
			j--
		}
		moves[j+1] = v
	}
}

// isThreat reports whether landing on sq puts a stone orthogonally
// adjacent to an opponent piece.
func isThreat(game *Game, sq Square, opponent Color) bool {
	for _, d := range [...][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		n := neighbor(sq, d[0], d[1])
		if n.Valid() && game.board.Get(n) == opponent {
			return true
		}
	}
	return false
}
