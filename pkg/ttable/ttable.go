// Package ttable implements a fixed-size, Zobrist-indexed transposition
// table: a direct-mapped array of 2^N slots, probed by masking the hash and
// verified by full key. Replacement is unconditional overwrite rather than
// a value-weighted comparison: with one table per search and shallow fixed
// depths, the extra bookkeeping a replacement policy buys isn't worth its
// complexity here, and a stale deep entry is self-correcting on the next
// visit.
package ttable

import (
	"fmt"
	"math/bits"
	"sync/atomic"
	"unsafe"

	"github.com/jmkopper/taflgo/pkg/board"
	"github.com/jmkopper/taflgo/pkg/eval"
)

// Bound tags the precision of a stored evaluation relative to the search
// window that produced it.
type Bound uint8

const (
	Exact Bound = iota
	LowerBound
	UpperBound
)

func (b Bound) String() string {
	switch b {
	case Exact:
		return "Exact"
	case LowerBound:
		return "Lower"
	case UpperBound:
		return "Upper"
	default:
		return "?"
	}
}

// entry is one stored search result. Compared by full Key on probe, since
// the slot index is only the low N bits of the hash.
type entry struct {
	Key   board.ZobristHash
	Depth int
	Score eval.Score
	Bound Bound
	Move  board.Move
}

// Table is a fixed-capacity, direct-mapped transposition table. Slots are
// *entry pointers swapped atomically so a single table could be shared
// across a parallelized search even though the current engine drives it
// from one goroutine.
type Table struct {
	slots []unsafe.Pointer // *entry
	mask  uint64
}

// New allocates a table sized to the largest power of two number of slots
// whose entries fit within sizeBytes (at least one slot).
func New(sizeBytes uint64) *Table {
	const entrySize = 48 // generous upper bound on unsafe.Sizeof(entry{})
	n := sizeBytes / entrySize
	if n == 0 {
		n = 1
	}
	shift := bits.Len64(n) - 1
	count := uint64(1) << shift

	return &Table{
		slots: make([]unsafe.Pointer, count),
		mask:  count - 1,
	}
}

// NewWithSlots allocates a table with exactly 2^bits slots.
func NewWithSlots(bitsN int) *Table {
	count := uint64(1) << uint(bitsN)
	return &Table{
		slots: make([]unsafe.Pointer, count),
		mask:  count - 1,
	}
}

// Probe returns the stored depth, score, bound and best move for hash, and
// whether the slot's full key matched. A false miss on index collision is
// indistinguishable from no entry at all: both are silently treated as a
// miss by the caller.
func (t *Table) Probe(hash board.ZobristHash) (depth int, score eval.Score, bound Bound, move board.Move, ok bool) {
	idx := uint64(hash) & t.mask
	ptr := (*entry)(atomic.LoadPointer(&t.slots[idx]))
	if ptr == nil || ptr.Key != hash {
		return 0, 0, Exact, board.Move{}, false
	}
	return ptr.Depth, ptr.Score, ptr.Bound, ptr.Move, true
}

// Store unconditionally overwrites the slot hash maps to.
func (t *Table) Store(hash board.ZobristHash, depth int, score eval.Score, bound Bound, move board.Move) {
	idx := uint64(hash) & t.mask
	e := &entry{Key: hash, Depth: depth, Score: score, Bound: bound, Move: move}
	atomic.StorePointer(&t.slots[idx], unsafe.Pointer(e))
}

// Len returns the number of slots (2^N).
func (t *Table) Len() int {
	return len(t.slots)
}

// Size returns the table's footprint in bytes (slots * pointer width, the
// entries themselves are heap-allocated separately). Used by pkg/engine to
// log a human-readable allocation size.
func (t *Table) Size() uint64 {
	return uint64(len(t.slots)) * uint64(unsafe.Sizeof(uintptr(0)))
}

func (t *Table) String() string {
	return fmt.Sprintf("ttable[%v slots]", len(t.slots))
}
