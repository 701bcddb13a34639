package engine_test

import (
	"context"
	"testing"

	"github.com/jmkopper/taflgo/pkg/board"
	"github.com/jmkopper/taflgo/pkg/engine"
	"github.com/jmkopper/taflgo/pkg/movegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBestMoveStartingPositionDepth1(t *testing.T) {
	zt := board.NewZobristTable(1)
	b := board.NewStartingBoard(zt, board.StandardRules())

	rootMoves := movegen.Generate(b)

	rec, err := engine.FindBestMove(context.Background(), b, engine.NewOptions(engine.WithMaxDepth(1)))
	require.NoError(t, err)

	assert.Contains(t, rootMoves, rec.BestMove)
	assert.Contains(t, []board.PieceKind{board.Defender, board.King}, rec.BestMove.Piece)
	assert.GreaterOrEqual(t, rec.NodesSearched, 1+len(rootMoves))
}

func TestFindBestMoveLeavesBoardUnmodified(t *testing.T) {
	zt := board.NewZobristTable(1)
	b := board.NewStartingBoard(zt, board.StandardRules())
	before := b.Zobrist()

	_, err := engine.FindBestMove(context.Background(), b, engine.NewOptions(engine.WithMaxDepth(2)))
	require.NoError(t, err)

	assert.Equal(t, before, b.Zobrist())
	assert.Equal(t, 0, b.Ply())
}

func TestFindBestMoveFindsImmediateKingCapture(t *testing.T) {
	zt := board.NewZobristTable(5)
	rules := board.StandardRules()

	king := board.BitMask(board.RCToIndex(3, 3))
	attackers := board.BitMask(board.RCToIndex(2, 3)) |
		board.BitMask(board.RCToIndex(4, 3)) |
		board.BitMask(board.RCToIndex(3, 2)) |
		board.BitMask(board.RCToIndex(3, 5))

	b := board.NewBoard(zt, rules, attackers, board.EmptyBitboard, king, board.EmptyBitboard, true)

	rec, err := engine.FindBestMove(context.Background(), b, engine.NewOptions(engine.WithMaxDepth(2)))
	require.NoError(t, err)

	want := board.Move{Start: board.RCToIndex(3, 5), End: board.RCToIndex(3, 4), Piece: board.Attacker}
	assert.Equal(t, want, rec.BestMove)
	assert.Greater(t, rec.Evaluation, 9000)
}

func TestFindBestMoveWithTableAndAspirationMatchesPlainSearch(t *testing.T) {
	zt := board.NewZobristTable(9)
	b1 := board.NewStartingBoard(zt, board.StandardRules())
	b2 := board.NewStartingBoard(zt, board.StandardRules())

	plain, err := engine.FindBestMove(context.Background(), b1, engine.NewOptions(engine.WithMaxDepth(2)))
	require.NoError(t, err)

	withTT, err := engine.FindBestMove(context.Background(), b2, engine.NewOptions(
		engine.WithMaxDepth(2),
		engine.WithTable(10),
		engine.WithAspiration(true),
	))
	require.NoError(t, err)

	assert.Equal(t, plain.Evaluation, withTT.Evaluation)
}
