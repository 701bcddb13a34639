package board

import "math/rand"

// ZobristHash is a position fingerprint formed by XORing per-feature keys.
// It is maintained incrementally by Board.Make/Unmake.
type ZobristHash uint64

// ZobristTable is a pseudo-randomized table of Zobrist keys, one per
// (square, piece kind) plus one for side-to-move. It is injected into a
// Board at construction time rather than held as process-global state, so
// that a single process can run engines over different key tables (e.g.
// tests that want deterministic, fixed seeds).
type ZobristTable struct {
	pieceSquare [NumSquares][NumPieceKinds]ZobristHash
	sideToMove  ZobristHash
}

// NewZobristTable samples a fresh table of uniformly random keys from the
// given seed. A fixed seed makes search fully deterministic across runs,
// a property that S6 and the aspiration-window re-search rely on.
func NewZobristTable(seed int64) *ZobristTable {
	r := rand.New(rand.NewSource(seed))

	ret := &ZobristTable{}
	for sq := 0; sq < NumSquares; sq++ {
		for p := PieceKind(0); p < NumPieceKinds; p++ {
			ret.pieceSquare[sq][p] = ZobristHash(r.Uint64())
		}
	}
	ret.sideToMove = ZobristHash(r.Uint64())
	return ret
}

// Hash computes the full Zobrist hash of a position from scratch. Used to
// seed a Board's initial hash and by the taflhashdebug consistency check;
// Board.Make/Unmake keep it current incrementally thereafter.
func (z *ZobristTable) Hash(attackers, defenders, king Bitboard, attackerToMove bool) ZobristHash {
	var hash ZobristHash
	for _, sq := range attackers.Squares() {
		hash ^= z.pieceSquare[sq][Attacker]
	}
	for _, sq := range defenders.Squares() {
		hash ^= z.pieceSquare[sq][Defender]
	}
	for _, sq := range king.Squares() {
		hash ^= z.pieceSquare[sq][King]
	}
	if attackerToMove {
		hash ^= z.sideToMove
	}
	return hash
}

// pieceKey returns the key for (sq, kind), for incremental update by Board.
func (z *ZobristTable) pieceKey(sq Square, kind PieceKind) ZobristHash {
	return z.pieceSquare[sq][kind]
}

// sideToMoveKey returns the key flipped on every turn change.
func (z *ZobristTable) sideToMoveKey() ZobristHash {
	return z.sideToMove
}
