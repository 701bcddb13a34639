// Package movegen enumerates and orders the pseudo-legal moves for the side
// to move, highest-priority first, using a single-pass scored sort.
package movegen

import (
	"sort"

	"github.com/jmkopper/taflgo/pkg/board"
)

// Scoring constants for move ordering. Applied additively: a move's score
// is the sum of every bonus it qualifies for.
const (
	cornerKingBonus     = 5000
	adjacentToKingBonus = 1000
	perCaptureBonus     = 1000
)

type scored struct {
	move  board.Move
	score int
}

// Generate returns every pseudo-legal single-step orthogonal move for the
// side to move, sorted highest-score-first. "Empty" means unoccupied by any
// attacker/defender/king and, for attackers and defenders, not an offlimits
// square; the king may enter offlimits squares, including the throne.
func Generate(b *board.Board) []board.Move {
	type origin struct {
		square board.Square
		kind   board.PieceKind
	}

	var origins []origin
	if b.AttackerToMove() {
		for _, sq := range b.Attackers().Squares() {
			origins = append(origins, origin{sq, board.Attacker})
		}
	} else {
		for _, sq := range b.Defenders().Squares() {
			origins = append(origins, origin{sq, board.Defender})
		}
		origins = append(origins, origin{b.KingSquare(), board.King})
	}

	occupied := b.Attackers() | b.Defenders() | b.King()

	var out []scored
	for _, o := range origins {
		from, pieceKind := o.square, o.kind

		for _, d := range board.Directions {
			to, ok := board.Neighbor(from, d)
			if !ok {
				continue
			}
			if occupied.IsSet(to) {
				continue
			}
			if pieceKind != board.King && b.Offlimits().IsSet(to) {
				continue
			}

			m := board.Move{Start: from, End: to, Piece: pieceKind}
			out = append(out, scored{move: m, score: score(b, m)})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].score > out[j].score
	})

	moves := make([]board.Move, len(out))
	for i, s := range out {
		moves[i] = s.move
	}
	return moves
}

// score computes the static move-ordering heuristic as the sum of a
// king-to-corner bonus, a bonus for attacker moves landing within one step
// of the king, and a bonus per capture the move triggers.
func score(b *board.Board, m board.Move) int {
	s := 0
	if m.Piece == board.King && board.IsCorner(m.End) {
		s += cornerKingBonus
	}
	if m.Piece == board.Attacker && manhattan(m.End, b.KingSquare()) <= 1 {
		s += adjacentToKingBonus
	}
	s += perCaptureBonus * b.PreviewCaptureCount(m)
	return s
}

func manhattan(a, b board.Square) int {
	ar, ac := board.IndexToRC(a)
	br, bc := board.IndexToRC(b)
	return abs(ar-br) + abs(ac-bc)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
