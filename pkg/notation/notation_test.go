package notation_test

import (
	"testing"

	"github.com/jmkopper/taflgo/pkg/board"
	"github.com/jmkopper/taflgo/pkg/notation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoveNonKing(t *testing.T) {
	m, err := notation.ParseMove("a1b1", true)
	require.NoError(t, err)
	assert.Equal(t, board.Attacker, m.Piece)
	assert.Equal(t, board.RCToIndex(0, 0), m.Start)
	assert.Equal(t, board.RCToIndex(0, 1), m.End)

	m, err = notation.ParseMove("a1b1", false)
	require.NoError(t, err)
	assert.Equal(t, board.Defender, m.Piece)
}

func TestParseMoveKing(t *testing.T) {
	m, err := notation.ParseMove("kd4", false)
	require.NoError(t, err)
	assert.Equal(t, board.King, m.Piece)
	assert.Equal(t, board.RCToIndex(3, 3), m.End)
}

func TestParseMoveRejectsMalformedInput(t *testing.T) {
	_, err := notation.ParseMove("xyz", true)
	assert.Error(t, err)

	_, err = notation.ParseMove("a1b", true)
	assert.Error(t, err)

	_, err = notation.ParseMove("kd", false)
	assert.Error(t, err)
}

func TestFormatMoveRoundTripsWithParseMove(t *testing.T) {
	m := board.Move{Start: board.RCToIndex(0, 0), End: board.RCToIndex(0, 1), Piece: board.Attacker}
	assert.Equal(t, "a1b1", notation.FormatMove(m))

	parsed, err := notation.ParseMove(notation.FormatMove(m), true)
	require.NoError(t, err)
	assert.Equal(t, m, parsed)
}

func TestFormatMoveKing(t *testing.T) {
	m := board.Move{Start: board.RCToIndex(0, 0), End: board.RCToIndex(3, 3), Piece: board.King}
	assert.Equal(t, "kd4", notation.FormatMove(m))
}

func TestRenderBoardStartingPosition(t *testing.T) {
	zt := board.NewZobristTable(1)
	b := board.NewStartingBoard(zt, board.StandardRules())

	out := notation.RenderBoard(b)
	assert.Contains(t, out, "K")
	assert.Contains(t, out, "V")
	assert.Contains(t, out, "O")
	assert.Contains(t, out, "#")
	assert.Contains(t, out, "a b c d e f g")
}
