// Package notation parses and renders the external move and board string
// forms used at the text-protocol boundary: compact move strings and a
// golden-output board rendering.
package notation

import (
	"fmt"
	"strings"

	"github.com/jmkopper/taflgo/pkg/board"
)

// ParseMove parses a move string in the grammar:
//
//	non_king := col row col row   (4 chars, e.g. "a1b1")
//	king     := 'k' col row       (3 chars, destination only, e.g. "kd4")
//
// attackerToMove resolves the piece kind for non-king moves: Attacker if
// true, Defender otherwise. A leading 'k' always yields PieceKind King
// regardless of attackerToMove.
func ParseMove(s string, attackerToMove bool) (board.Move, error) {
	if strings.HasPrefix(s, "k") {
		if len(s) != 3 {
			return board.Move{}, fmt.Errorf("notation: malformed king move %q: want 3 characters", s)
		}
		end, err := board.ParseSquare(rune(s[1]), rune(s[2]))
		if err != nil {
			return board.Move{}, fmt.Errorf("notation: malformed king move %q: %w", s, err)
		}
		return board.Move{Start: board.ZeroSquare, End: end, Piece: board.King}, nil
	}

	if len(s) != 4 {
		return board.Move{}, fmt.Errorf("notation: malformed move %q: want 4 characters", s)
	}
	start, err := board.ParseSquare(rune(s[0]), rune(s[1]))
	if err != nil {
		return board.Move{}, fmt.Errorf("notation: malformed move %q: %w", s, err)
	}
	end, err := board.ParseSquare(rune(s[2]), rune(s[3]))
	if err != nil {
		return board.Move{}, fmt.Errorf("notation: malformed move %q: %w", s, err)
	}

	kind := board.Defender
	if attackerToMove {
		kind = board.Attacker
	}
	return board.Move{Start: start, End: end, Piece: kind}, nil
}

// FormatMove renders m in the same grammar ParseMove accepts: "kd4" for a
// king move (destination only), "a1b1" otherwise. Non-king moves round-trip
// exactly through ParseMove; a king move's Start is not written, so parsing
// it back yields Start ZeroSquare.
func FormatMove(m board.Move) string {
	var sb strings.Builder
	if m.Piece == board.King {
		sb.WriteByte('k')
	} else {
		sb.WriteString(m.Start.String())
	}
	sb.WriteString(m.End.String())
	return sb.String()
}

// RenderBoard renders b as rows printed top-down (row 6 first), glyphs
// V/O/K/#/., and a trailing column header.
func RenderBoard(b *board.Board) string {
	var sb strings.Builder

	for row := board.BoardSize - 1; row >= 0; row-- {
		fmt.Fprintf(&sb, "%d ", row+1)
		for col := 0; col < board.BoardSize; col++ {
			sq := board.RCToIndex(row, col)
			sb.WriteByte(glyph(b, sq))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("  ")
	for col := 0; col < board.BoardSize; col++ {
		sb.WriteByte(byte('a' + col))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')

	return sb.String()
}

func glyph(b *board.Board, sq board.Square) byte {
	switch {
	case b.Attackers().IsSet(sq):
		return 'V'
	case b.King().IsSet(sq):
		return 'K'
	case b.Defenders().IsSet(sq):
		return 'O'
	case b.Offlimits().IsSet(sq):
		return '#'
	default:
		return '.'
	}
}
