package engine

// Move is a from/to pair, always a straight-line slide (§4.4 L5).
type Move struct {
	From Square
	To   Square
}

func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// MoveRecord is one entry of the move log, carrying everything UndoMove
// needs to exactly reverse the move (§4.4).
type MoveRecord struct {
	Move     Move
	Mover    Color
	Captured []Square
}
