//go:build taflhashdebug

package board

// assertHash recomputes the Zobrist hash from scratch and panics if it
// disagrees with the incrementally maintained one. Built only under the
// taflhashdebug tag (`go test -tags taflhashdebug ./...`); the incremental
// hash update happens on every Make/Unmake, so a from-scratch recompute on
// every call would dominate the hot path in a release build.
func (b *Board) assertHash() {
	want := b.zt.Hash(b.attackers, b.defenders, b.king, b.attackerToMove)
	if want != b.zobrist {
		panic("board: zobrist hash drifted from incremental update")
	}
}
