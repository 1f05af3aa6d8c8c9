package tiling

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/tilefold/frontier"
	"github.com/katalvlaran/tilefold/tile"
)

// table is a double-buffered map from frontier state to an aggregate.
// Buffers are addressed by index 0 or 1; the driver owns which is current.
//
// During a step, reachable and the src side of merge read the current
// buffer only; merge may be called concurrently for any keys of dst.
type table interface {
	// seed makes state 0 reachable in buffer 0 with the identity aggregate.
	seed()
	// reset clears every entry of buf to unreachable.
	reset(buf int)
	reachable(buf int, k frontier.State) bool
	// merge folds the aggregate of from (in src) extended by tile t into
	// key to of dst.
	merge(src, dst int, from, to frontier.State, t tile.Index)
	// live counts the reachable states of buf.
	live(buf int) int
	// reduce writes the final aggregate of buf into r.
	reduce(buf int, r *Result)
}

func newTable(mode Mode, size uint64) table {
	switch mode {
	case ModeCount:
		return &countTable{v: [2][]uint64{make([]uint64, size), make([]uint64, size)}}
	case ModeExists:
		return &existsTable{v: [2][]uint32{make([]uint32, size), make([]uint32, size)}}
	case ModeWitness:
		return &witnessTable{
			cert:  [2][][]tile.Index{make([][]tile.Index, size), make([][]tile.Index, size)},
			from:  make([]frontier.State, size),
			via:   make([]tile.Index, size),
			locks: make([]sync.Mutex, size),
		}
	}
	return nil
}

// countTable sums path counts; merge is an atomic add.
type countTable struct {
	v [2][]uint64
}

func (c *countTable) seed()                                    { c.v[0][0] = 1 }
func (c *countTable) reset(buf int)                            { clear(c.v[buf]) }
func (c *countTable) reachable(buf int, k frontier.State) bool { return c.v[buf][k] != 0 }

func (c *countTable) merge(src, dst int, from, to frontier.State, _ tile.Index) {
	atomic.AddUint64(&c.v[dst][to], c.v[src][from])
}

func (c *countTable) live(buf int) int {
	n := 0
	for _, v := range c.v[buf] {
		if v != 0 {
			n++
		}
	}
	return n
}

func (c *countTable) reduce(buf int, r *Result) {
	var sum uint64
	for _, v := range c.v[buf] {
		sum += v
	}
	r.Count = sum
}

// existsTable records reachability; merge is an idempotent atomic store.
type existsTable struct {
	v [2][]uint32
}

func (e *existsTable) seed()                                    { e.v[0][0] = 1 }
func (e *existsTable) reset(buf int)                            { clear(e.v[buf]) }
func (e *existsTable) reachable(buf int, k frontier.State) bool { return e.v[buf][k] != 0 }

func (e *existsTable) merge(_, dst int, _, to frontier.State, _ tile.Index) {
	atomic.StoreUint32(&e.v[dst][to], 1)
}

func (e *existsTable) live(buf int) int {
	n := 0
	for _, v := range e.v[buf] {
		n += int(v)
	}
	return n
}

func (e *existsTable) reduce(buf int, r *Result) {
	r.Exists = e.live(buf) > 0
}

// witnessTable keeps one certificate per state. Concurrent writers to the
// same key are serialised by locks[key]; the writer with the smallest
// (from, tile) pair wins, which is the writer a sequential ascending sweep
// would have kept.
type witnessTable struct {
	cert  [2][][]tile.Index
	from  []frontier.State // winning source state per key of the step's dst
	via   []tile.Index     // winning tile per key of the step's dst
	locks []sync.Mutex
}

func (w *witnessTable) seed()                                    { w.cert[0][0] = []tile.Index{} }
func (w *witnessTable) reset(buf int)                            { clear(w.cert[buf]) }
func (w *witnessTable) reachable(buf int, k frontier.State) bool { return w.cert[buf][k] != nil }

func (w *witnessTable) merge(src, dst int, from, to frontier.State, t tile.Index) {
	mu := &w.locks[to]
	mu.Lock()
	defer mu.Unlock()

	if w.cert[dst][to] != nil {
		if from > w.from[to] || (from == w.from[to] && t >= w.via[to]) {
			return
		}
	}
	prev := w.cert[src][from]
	c := make([]tile.Index, len(prev)+1)
	copy(c, prev)
	c[len(prev)] = t
	w.cert[dst][to] = c
	w.from[to] = from
	w.via[to] = t
}

func (w *witnessTable) live(buf int) int {
	n := 0
	for _, c := range w.cert[buf] {
		if c != nil {
			n++
		}
	}
	return n
}

func (w *witnessTable) reduce(buf int, r *Result) {
	for _, c := range w.cert[buf] {
		if c != nil {
			r.Witness.Tiles = c
			return
		}
	}
}
