// Package eval implements the static heuristic scoring of a Tafl position,
// from the side-agnostic point of view: positive favors the attackers,
// negative favors the defenders.
package eval

import (
	"fmt"

	"github.com/jmkopper/taflgo/pkg/board"
	"github.com/seekerror/stdlib/pkg/util/mathx"
)

// Score is a signed position score, attacker-positive. Terminal positions
// are not scored here -- the engine encodes win/loss as mate distances
// around +/-10000 and handles them before calling Evaluate.
type Score int16

const (
	MinScore Score = -32768
	MaxScore Score = 32767
)

func (s Score) String() string {
	return fmt.Sprintf("%d", s)
}

// kingPresenceConstant is a fixed term representing the king's material
// value. It never varies across the search since exactly one king bitboard
// bit is always set.
const kingPresenceConstant = 100

// Evaluate computes the position's linear heuristic:
//
//	score = 100*popcount(attackers) - 100*popcount(defenders) + 100
//	      + attackers_adjacent_to_king
//	      - distance_king_to_nearest_corner
//
// Returns 0 if the position is marked stalemate.
func Evaluate(b *board.Board) Score {
	if b.Stalemate() {
		return 0
	}

	s := 100*b.Attackers().PopCount() - 100*b.Defenders().PopCount() + kingPresenceConstant
	s += attackersAdjacentToKing(b)
	s -= board.ManhattanToNearestCorner(b.KingSquare())

	return Score(mathx.Max(int(MinScore), mathx.Min(int(MaxScore), s)))
}

// attackersAdjacentToKing counts how many of the king's in-bounds orthogonal
// neighbors carry an attacker (0..4).
func attackersAdjacentToKing(b *board.Board) int {
	king := b.KingSquare()
	n := 0
	for _, d := range board.Directions {
		if nb, ok := board.Neighbor(king, d); ok && b.Attackers().IsSet(nb) {
			n++
		}
	}
	return n
}
