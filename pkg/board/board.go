// Package board implements the bitboard Tafl position: geometry, piece
// placement, and reversible move application with incremental Zobrist
// hashing.
package board

import "fmt"

// Canonical 7x7 Tafl starting bitboards. Any board setup code must
// reproduce these bit-for-bit.
const (
	StartingAttackers Bitboard = 123437837206556
	StartingDefenders Bitboard = 7558594560
	StartingKing      Bitboard = 16777216
	StartingOfflimits Bitboard = 285873039999041
)

// undoFrame captures exactly enough state to reverse one Make call. The
// captured-index buffer is fixed-size and inline: at most one capture per
// orthogonal direction, so at most four per move.
type undoFrame struct {
	move        Move
	captured    [4]Square
	numCaptured int

	prevAttackerWin bool
	prevDefenderWin bool
	prevStalemate   bool
	prevZobrist     ZobristHash
}

// Board is a mutable Tafl position, mutated exclusively through Make/Unmake.
// Not thread-safe: a single Board is meant to be driven by one recursing
// search at a time.
type Board struct {
	zt    *ZobristTable
	rules Rules

	attackers, defenders, king, offlimits Bitboard
	attackerToMove                        bool

	attackerWin bool
	defenderWin bool
	stalemate   bool

	zobrist ZobristHash
	history []undoFrame

	// repetitions counts hash occurrences; populated only when
	// rules.RepetitionDraw is set, since the optional draw rule is the only
	// consumer.
	repetitions map[ZobristHash]int
}

// NewBoard constructs a Board from the four bitboards and side to move,
// computing the full Zobrist hash once. History begins empty. The caller is
// responsible for the position's invariants (exactly one king bit, no
// piece-kind overlap, no non-king piece on an offlimits square, all indices
// below NumSquares) -- Board trusts its construction inputs the same way it
// trusts its own move generator.
func NewBoard(zt *ZobristTable, rules Rules, attackers, defenders, king, offlimits Bitboard, attackerToMove bool) *Board {
	b := &Board{
		zt:             zt,
		rules:          rules,
		attackers:      attackers,
		defenders:      defenders,
		king:           king,
		offlimits:      offlimits,
		attackerToMove: attackerToMove,
	}
	b.zobrist = zt.Hash(attackers, defenders, king, attackerToMove)
	if rules.RepetitionDraw {
		b.repetitions = map[ZobristHash]int{b.zobrist: 1}
	}
	return b
}

// NewStartingBoard constructs the canonical starting position: defenders
// move first.
func NewStartingBoard(zt *ZobristTable, rules Rules) *Board {
	return NewBoard(zt, rules, StartingAttackers, StartingDefenders, StartingKing, StartingOfflimits, false)
}

func (b *Board) Attackers() Bitboard     { return b.attackers }
func (b *Board) Defenders() Bitboard     { return b.defenders }
func (b *Board) King() Bitboard          { return b.king }
func (b *Board) Offlimits() Bitboard     { return b.offlimits }
func (b *Board) AttackerToMove() bool    { return b.attackerToMove }
func (b *Board) AttackerWin() bool       { return b.attackerWin }
func (b *Board) DefenderWin() bool       { return b.defenderWin }
func (b *Board) Stalemate() bool         { return b.stalemate }
func (b *Board) Zobrist() ZobristHash    { return b.zobrist }
func (b *Board) Rules() Rules            { return b.rules }
func (b *Board) ZobristTable() *ZobristTable { return b.zt }

// Ply returns the number of unreversed applied moves from the starting
// position, i.e. len(history).
func (b *Board) Ply() int {
	return len(b.history)
}

// Terminal reports whether any of the three terminal flags is set.
func (b *Board) Terminal() bool {
	return b.attackerWin || b.defenderWin || b.stalemate
}

// Result summarizes the terminal flags as an enum for logging/rendering.
func (b *Board) Result() Result {
	switch {
	case b.attackerWin:
		return AttackerWins
	case b.defenderWin:
		return DefenderWins
	case b.stalemate:
		return Stalemate
	default:
		return Undecided
	}
}

// SetStalemate lets the engine record "side to move has no legal moves".
// Board does not perform move generation, so Make sets this flag itself
// only for a repetition draw (rules.RepetitionDraw).
func (b *Board) SetStalemate(v bool) {
	b.stalemate = v
}

// KingSquare returns the (unique) square the king occupies.
func (b *Board) KingSquare() Square {
	return b.king.FirstSquare()
}

// IsEmpty reports whether sq carries no attacker, defender or king.
func (b *Board) IsEmpty(sq Square) bool {
	occupied := b.attackers | b.defenders | b.king
	return !occupied.IsSet(sq)
}

// KingCaptured reports whether every in-bounds orthogonal neighbor of the
// king is hostile: occupied by an attacker, or itself an offlimits square.
// Out-of-bounds neighbors are never hostile, so a king against the board
// edge is capturable only if every one of its in-bounds neighbors is
// hostile. If rules.KingCaptureAdjacencyGuard is set, the capture also
// requires lastMove to have landed adjacent to the king.
func (b *Board) KingCaptured(lastMove Move) bool {
	king := b.KingSquare()

	if b.rules.KingCaptureAdjacencyGuard {
		adjacent := false
		for _, d := range Directions {
			if nb, ok := Neighbor(king, d); ok && nb == lastMove.End {
				adjacent = true
				break
			}
		}
		if !adjacent {
			return false
		}
	}

	for _, d := range Directions {
		nb, ok := Neighbor(king, d)
		if !ok {
			continue // out of bounds: never hostile
		}
		if b.offlimits.IsSet(nb) {
			continue // offlimits counts as hostile
		}
		if !b.attackers.IsSet(nb) {
			return false
		}
	}
	return true
}

// validCapture reports custodian capture along direction d: victim must
// carry capturee, and the square one step beyond victim (continuing in the
// same direction) must carry capturer. Offlimits squares do not by
// themselves satisfy the far-side requirement; king captures are handled
// separately by KingCaptured.
func validCapture(capturer, capturee Bitboard, victim Square, d Direction) bool {
	if !capturee.IsSet(victim) {
		return false
	}
	beyond, ok := Neighbor(victim, d)
	if !ok {
		return false
	}
	return capturer.IsSet(beyond)
}

// PreviewCaptureCount reports how many custodian captures m would trigger
// from its destination square, without mutating the board. MoveGen uses
// this to score capturing moves for ordering: the far-side "beyond" square
// of a capture scan is always at least two steps from m.End and therefore
// never equal to m.Start or m.End itself, so the pre-move piece sets give
// the same answer Make would compute.
func (b *Board) PreviewCaptureCount(m Move) int {
	capturer, capturee, _ := b.captureSets(m.Piece)

	n := 0
	for _, d := range Directions {
		victim, ok := Neighbor(m.End, d)
		if !ok {
			continue
		}
		if validCapture(capturer, capturee, victim, d) {
			n++
		}
	}
	return n
}

// Make applies m: XORs the moving piece's bitboard and hash keys for its
// start/end squares, resolves custodian captures triggered by the
// just-moved piece (no chain reactions), sets the attacker-win/defender-win
// flags, flips the side to move, and pushes an undoFrame so Unmake can
// restore everything exactly. The caller must pass a legal move -- Make
// does not validate.
func (b *Board) Make(m Move) {
	frame := undoFrame{
		move:            m,
		prevAttackerWin: b.attackerWin,
		prevDefenderWin: b.defenderWin,
		prevStalemate:   b.stalemate,
		prevZobrist:     b.zobrist,
	}

	own := b.pieceBoard(m.Piece)
	*own ^= BitMask(m.Start) | BitMask(m.End)
	b.zobrist ^= b.zt.pieceKey(m.Start, m.Piece)
	b.zobrist ^= b.zt.pieceKey(m.End, m.Piece)

	capturer, capturee, captureeKind := b.captureSets(m.Piece)
	for _, d := range Directions {
		victim, ok := Neighbor(m.End, d)
		if !ok {
			continue
		}
		if !validCapture(capturer, capturee, victim, d) {
			continue
		}
		*b.pieceBoard(captureeKind) &^= BitMask(victim)
		b.zobrist ^= b.zt.pieceKey(victim, captureeKind)
		frame.captured[frame.numCaptured] = victim
		frame.numCaptured++
	}

	if m.Piece == Attacker && b.KingCaptured(m) {
		b.attackerWin = true
	}
	if m.Piece == King && b.isEscapeSquare(m.End) {
		b.defenderWin = true
	}

	b.attackerToMove = !b.attackerToMove
	b.zobrist ^= b.zt.sideToMoveKey()

	if b.rules.RepetitionDraw {
		b.repetitions[b.zobrist]++
		if b.repetitions[b.zobrist] >= 3 {
			b.stalemate = true
		}
	}

	b.history = append(b.history, frame)
	b.assertHash()
}

// Unmake pops the most recent undoFrame and restores the exact prior
// bitboard quadruple, side to move, terminal flags, and Zobrist hash.
// Calling Unmake with empty history is a programming error that must never
// occur in a correct engine, so it panics rather than returning an error.
func (b *Board) Unmake() {
	n := len(b.history)
	if n == 0 {
		panic("board: Unmake called with empty history")
	}
	frame := b.history[n-1]
	b.history = b.history[:n-1]

	if b.rules.RepetitionDraw {
		b.repetitions[b.zobrist]--
	}

	m := frame.move
	_, _, captureeKind := b.captureSets(m.Piece)

	*b.pieceBoard(m.Piece) ^= BitMask(m.Start) | BitMask(m.End)
	for i := 0; i < frame.numCaptured; i++ {
		*b.pieceBoard(captureeKind) |= BitMask(frame.captured[i])
	}

	b.attackerToMove = !b.attackerToMove
	b.attackerWin = frame.prevAttackerWin
	b.defenderWin = frame.prevDefenderWin
	b.stalemate = frame.prevStalemate
	b.zobrist = frame.prevZobrist
	b.assertHash()
}

// pieceBoard returns a pointer to the bitboard backing the given piece kind.
func (b *Board) pieceBoard(kind PieceKind) *Bitboard {
	switch kind {
	case Attacker:
		return &b.attackers
	case Defender:
		return &b.defenders
	case King:
		return &b.king
	default:
		panic(fmt.Sprintf("board: invalid piece kind %v", kind))
	}
}

// captureSets returns the capturer set, capturee set, and the piece kind of
// the capturee, for a move by the given piece. Attackers capture defenders;
// defenders and the king jointly capture attackers.
func (b *Board) captureSets(mover PieceKind) (capturer, capturee Bitboard, captureeKind PieceKind) {
	if mover == Attacker {
		return b.attackers, b.defenders, Defender
	}
	return b.defenders | b.king, b.attackers, Attacker
}

// isEscapeSquare reports whether sq is a king-escape square under the
// configured rule: any edge square, or corners only.
func (b *Board) isEscapeSquare(sq Square) bool {
	if b.rules.EscapeAnyEdge {
		return IsEdge(sq)
	}
	return IsCorner(sq)
}

func (b *Board) String() string {
	return fmt.Sprintf("board{attackers=%v, defenders=%v, king=%v, attackerToMove=%v, hash=%x, result=%v}",
		b.attackers, b.defenders, b.king, b.attackerToMove, uint64(b.zobrist), b.Result())
}
