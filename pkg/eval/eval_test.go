package eval_test

import (
	"testing"

	"github.com/jmkopper/taflgo/pkg/board"
	"github.com/jmkopper/taflgo/pkg/eval"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateStartingPosition(t *testing.T) {
	zt := board.NewZobristTable(1)
	b := board.NewStartingBoard(zt, board.StandardRules())

	// 16 attackers, 8 defenders, king at center (distance 6 from any corner,
	// 0 attackers adjacent): 100*16 - 100*8 + 100 + 0 - 6 = 894.
	assert.Equal(t, eval.Score(894), eval.Evaluate(b))
}

func TestEvaluateReturnsZeroOnStalemate(t *testing.T) {
	zt := board.NewZobristTable(1)
	b := board.NewStartingBoard(zt, board.StandardRules())
	b.SetStalemate(true)

	assert.Equal(t, eval.Score(0), eval.Evaluate(b))
}

func TestEvaluateCountsAttackersAdjacentToKing(t *testing.T) {
	zt := board.NewZobristTable(1)
	king := board.BitMask(board.RCToIndex(3, 3))
	attackers := board.BitMask(board.RCToIndex(2, 3)) | board.BitMask(board.RCToIndex(4, 3))

	b := board.NewBoard(zt, board.StandardRules(), attackers, board.EmptyBitboard, king, board.EmptyBitboard, true)

	// 100*2 - 100*0 + 100 + 2(adjacent) - 6(center to corner distance): the
	// center square (3,3) is BoardSize/2 in both axes, ManhattanToNearestCorner(3,3)=6.
	want := eval.Score(100*2 + 100 + 2 - 6)
	assert.Equal(t, want, eval.Evaluate(b))
}
