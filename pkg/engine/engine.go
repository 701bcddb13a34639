// Package engine drives iterative-deepening negamax search over a
// pkg/board position, using pkg/movegen for ordering, pkg/eval for leaf
// scoring, and pkg/ttable for transposition caching.
package engine

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jmkopper/taflgo/pkg/board"
	"github.com/jmkopper/taflgo/pkg/eval"
	"github.com/jmkopper/taflgo/pkg/ttable"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

// defaultMaxDepth is the iteration ceiling NewOptions fills in when
// WithMaxDepth is never called.
const defaultMaxDepth = 4

var version = build.NewVersion(0, 1, 0)

// mateScore is the base magnitude for a forced win: wins are encoded as
// ±(mateScore + plies_remaining) so shorter mates dominate longer ones.
const mateScore = 10000

// aspirationWindow is the half-width of the narrow search window tried
// around the previous iteration's score before falling back to a full
// re-search.
const aspirationWindow = 300

// Options configures a search. The zero value disables the transposition
// table and aspiration windows and leaves MaxDepth unset, which FindBestMove
// reads as depth 0 and so runs no iteration; NewOptions fills in
// defaultMaxDepth.
type Options struct {
	// MaxDepth is the deepest iteration run (inclusive). Unset means
	// defaultMaxDepth, filled in by NewOptions.
	MaxDepth lang.Optional[int]
	// TableSlots, if nonzero, is log2 of the transposition table size and
	// enables TT probing/storing for the search.
	TableSlots int
	// Aspiration enables narrow-window re-search on iterations after the
	// first, falling back to a full window on failure.
	Aspiration bool
}

func (o Options) String() string {
	depth, _ := o.MaxDepth.V()
	return fmt.Sprintf("{maxDepth=%v, tableSlots=%v, aspiration=%v}", depth, o.TableSlots, o.Aspiration)
}

// Option is an engine creation option.
type Option func(*Options)

// WithMaxDepth sets the deepest iteration to run.
func WithMaxDepth(depth int) Option {
	return func(o *Options) { o.MaxDepth = lang.Some(depth) }
}

// WithTable enables a transposition table with 2^slots entries.
func WithTable(slots int) Option {
	return func(o *Options) { o.TableSlots = slots }
}

// WithAspiration enables narrow-window re-search on iterations after the
// first.
func WithAspiration(on bool) Option {
	return func(o *Options) { o.Aspiration = on }
}

// Recommendation is the result of FindBestMove: the chosen move, its
// attacker-positive evaluation, and a node count for diagnostics.
type Recommendation struct {
	BestMove      board.Move
	Evaluation    int
	NodesSearched int
}

func (r Recommendation) String() string {
	return fmt.Sprintf("{move=%v, eval=%v, nodes=%v}", r.BestMove, r.Evaluation, r.NodesSearched)
}

// Name returns the engine name and version.
func Name() string {
	return fmt.Sprintf("taflgo %v", version)
}

// NewOptions applies opts over the zero value, then fills in a minimal
// usable default (depth defaultMaxDepth, no table) if MaxDepth was left
// unset.
func NewOptions(opts ...Option) Options {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}
	if _, ok := o.MaxDepth.V(); !ok {
		o.MaxDepth = lang.Some(defaultMaxDepth)
	}
	return o
}

// FindBestMove runs iterative deepening negamax from b's current position
// up to opts.MaxDepth, logging each completed iteration's best move and
// score. b is left unmodified: every recursive make is paired with an
// unmake before return.
func FindBestMove(ctx context.Context, b *board.Board, opts Options) (Recommendation, error) {
	var tt *ttable.Table
	if opts.TableSlots > 0 {
		tt = ttable.NewWithSlots(opts.TableSlots)
		logw.Infof(ctx, "Allocated %v (%v)", tt, humanize.Bytes(tt.Size()))
	}

	s := &searcher{b: b, tt: tt, nodes: 0}

	color := 1
	if !b.AttackerToMove() {
		color = -1
	}

	maxDepth, _ := opts.MaxDepth.V()

	var best Recommendation
	prevScore := 0
	for depth := 1; depth <= maxDepth; depth++ {
		alpha, beta := minWindow, maxWindow
		if opts.Aspiration && depth > 1 {
			alpha, beta = prevScore-aspirationWindow, prevScore+aspirationWindow
		}

		move, score := s.searchRoot(ctx, depth, alpha, beta, color)
		if opts.Aspiration && depth > 1 && (score <= alpha || score >= beta) {
			// The narrow window failed to bound the true score: re-search
			// with bounds wide enough to contain any score the evaluator or
			// mate-scoring can ever produce, not just this window's own
			// alpha/beta.
			move, score = s.searchRoot(ctx, depth, int(eval.MinScore), int(eval.MaxScore), color)
		}

		prevScore = score
		best = Recommendation{BestMove: move, Evaluation: score * color, NodesSearched: s.nodes}

		logw.Debugf(ctx, "Searched depth=%v: %v", depth, best)
	}

	return best, nil
}

// minWindow/maxWindow bound the root search window before any aspiration
// narrowing: wide enough to contain mate scores at any depth this engine
// would realistically search.
const (
	minWindow = -(mateScore + 1000)
	maxWindow = mateScore + 1000
)
