package board

import "fmt"

// Move is a single-step orthogonal slide by one piece. Equality is
// structural on all three fields. 24 bits.
type Move struct {
	Start, End Square
	Piece      PieceKind
}

func (m Move) Equals(o Move) bool {
	return m.Start == o.Start && m.End == o.End && m.Piece == o.Piece
}

// String renders the move in "<col><row><col><row>" form for
// attacker/defender moves, "k<col><row>" (destination only) for king moves.
func (m Move) String() string {
	if m.Piece == King {
		return fmt.Sprintf("k%v", m.End)
	}
	return fmt.Sprintf("%v%v", m.Start, m.End)
}
