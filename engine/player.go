package engine

// player.go implements the thin per-color facade over Game (§4.5).

// Player scopes every operation to one color and forwards to the shared
// Game, adding ownership checks the Game itself does not perform.
type Player struct {
	game  *Game
	color Color
}

// NewPlayer returns a facade over game scoped to color.
func NewPlayer(game *Game, color Color) *Player {
	return &Player{game: game, color: color}
}

func (p *Player) Color() Color { return p.color }

// GetPieces returns every square currently held by p's color, queried
// fresh from the board rather than cached.
func (p *Player) GetPieces() []Square {
	return p.game.board.SquaresByColor(p.color)
}

// ValidMoves returns every {piece, dest} pair available to p's color:
// for each own piece, every square in Game.ReachableFrom(piece).
func (p *Player) ValidMoves() []Move {
	var out []Move
	for _, from := range p.GetPieces() {
		for _, to := range p.game.ReachableFrom(from) {
			out = append(out, Move{From: from, To: to})
		}
	}
	return out
}

// MovesFrom returns the destinations reachable from sq, provided sq is
// currently held by p's color. Asking about a square p does not occupy
// is a programmer error (§7 "illegal query"), reported as errIllegalQuery
// rather than silently returning nothing.
func (p *Player) MovesFrom(sq Square) ([]Square, error) {
	if p.game.board.Get(sq) != p.color {
		return nil, errIllegalQuery
	}
	return p.game.ReachableFrom(sq), nil
}

// MakeMove forwards to Game.MakeMove after checking that from is
// currently p's own piece and that it is p's turn; otherwise the move is
// simply illegal and MakeMove returns false like any other rejection.
func (p *Player) MakeMove(from, to Square) bool {
	if p.game.ActiveColor() != p.color {
		return false
	}
	return p.game.MakeMove(from, to)
}

// UndoMove forwards to Game.UndoMove. Ownership is not checked: undo
// always reverts the single most recent move regardless of which
// Player handle calls it.
func (p *Player) UndoMove() bool {
	return p.game.UndoMove()
}
