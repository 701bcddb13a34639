package board

// Rules captures three Tafl variant rules that different rule sets disagree
// on, so rather than hard-coding one behavior, they are exposed as
// configuration.
type Rules struct {
	// KingCaptureAdjacencyGuard additionally requires the last-moved piece to
	// be adjacent to the king for a king capture to register. The normative
	// rule (false) is pure geometry: surrounded is surrounded, regardless of
	// which move just completed the surround.
	KingCaptureAdjacencyGuard bool

	// EscapeAnyEdge treats every edge square as a king escape square. The
	// normative rule (true) matches the most recent source revision; setting
	// it false restricts escape to the four corners only.
	EscapeAnyEdge bool

	// RepetitionDraw treats a position (bitboard triple and side to move,
	// compared by Zobrist hash) that occurs for the third time as a draw,
	// surfaced as Stalemate. Disabled by
	// default since it requires Board to retain a position history beyond
	// what Make/Unmake strictly need.
	RepetitionDraw bool
}

// StandardRules returns the canonical rule configuration: pure-geometry king
// capture, escape on any edge square, and no repetition draw.
func StandardRules() Rules {
	return Rules{
		KingCaptureAdjacencyGuard: false,
		EscapeAnyEdge:             true,
		RepetitionDraw:            false,
	}
}
