package engine

import (
	"context"

	"github.com/jmkopper/taflgo/pkg/board"
	"github.com/jmkopper/taflgo/pkg/eval"
	"github.com/jmkopper/taflgo/pkg/movegen"
	"github.com/jmkopper/taflgo/pkg/ttable"
)

// searcher holds the mutable state shared across one FindBestMove call:
// the board being recursed over, an optional transposition table, a node
// counter, and the previous iteration's best root move for PV-first
// reordering.
type searcher struct {
	b      *board.Board
	tt     *ttable.Table
	nodes  int
	pv     board.Move
	havePV bool
}

// searchRoot runs one iteration at the root: generate moves, move last
// iteration's best move to the front, negamax every child, and track the
// best score/move. The root itself counts as one searched node. Returns the
// negamax-convention score (side-to-move positive); the caller applies
// color to get the attacker-positive Recommendation.Evaluation.
func (s *searcher) searchRoot(ctx context.Context, depth, alpha, beta, color int) (board.Move, int) {
	s.nodes++

	moves := movegen.Generate(s.b)
	if s.havePV {
		reorderFront(moves, s.pv)
	}

	best := minWindow - 1
	var bestMove board.Move
	for _, m := range moves {
		s.b.Make(m)
		v := -s.negamax(ctx, depth-1, -beta, -alpha, -color)
		s.b.Unmake()

		if v > best {
			best = v
			bestMove = m
		}
		if v > alpha {
			alpha = v
		}
		if alpha >= beta {
			break
		}
	}

	s.pv = bestMove
	s.havePV = true
	return bestMove, best
}

// negamax evaluates one node: leaf evaluation, mate scoring, TT
// probe/store with bound flags, and alpha-beta pruning over movegen's
// ordered move list. b is restored to its entry state before returning:
// every Make is paired with an Unmake.
func (s *searcher) negamax(ctx context.Context, depth, alpha, beta, color int) int {
	s.nodes++

	if depth == 0 {
		return int(eval.Evaluate(s.b)) * color
	}
	if s.b.AttackerWin() {
		return (mateScore + depth) * color
	}
	if s.b.DefenderWin() {
		return -(mateScore + depth) * color
	}

	hash := s.b.Zobrist()
	if s.tt != nil {
		if ttDepth, score, bound, _, ok := s.tt.Probe(hash); ok && ttDepth >= depth {
			v := int(score)
			switch bound {
			case ttable.Exact:
				return v
			case ttable.LowerBound:
				if v >= beta {
					return v
				}
			case ttable.UpperBound:
				if v <= alpha {
					return v
				}
			}
		}
	}

	alpha0 := alpha
	moves := movegen.Generate(s.b)
	if len(moves) == 0 {
		return 0
	}

	value := minWindow - 1
	var bestMove board.Move
	for _, m := range moves {
		s.b.Make(m)
		v := -s.negamax(ctx, depth-1, -beta, -alpha, -color)
		s.b.Unmake()

		if v > value {
			value = v
			bestMove = m
		}
		if value > alpha {
			alpha = value
		}
		if alpha >= beta {
			break
		}
	}

	if s.tt != nil {
		bound := ttable.Exact
		switch {
		case value <= alpha0:
			bound = ttable.UpperBound
		case value >= beta:
			bound = ttable.LowerBound
		}
		s.tt.Store(hash, depth, eval.Score(value), bound, bestMove)
	}

	return value
}

// reorderFront moves m to the front of moves if present, preserving the
// relative order of everything else. No-op if m is absent (e.g. the first
// search iteration, or a PV move that is no longer legal).
func reorderFront(moves []board.Move, m board.Move) {
	for i, cand := range moves {
		if cand.Equals(m) {
			copy(moves[1:i+1], moves[0:i])
			moves[0] = cand
			return
		}
	}
}
