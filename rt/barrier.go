// Package rt is the small real-time toolbox shared by the scheduling
// tests: a microsecond monotonic clock, SCHED_FIFO helpers, CPU affinity
// control, locked-thread tasks, a cyclic barrier and the ftrace marker.
package rt

import "sync"

// Barrier is a reusable barrier for a fixed number of parties. Memory
// writes made by any party before Wait are visible to every party after
// Wait returns.
type Barrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	parties int
	waiting int
	gen     uint64
}

func NewBarrier(parties int) *Barrier {
	if parties < 1 {
		panic("rt: barrier needs at least one party")
	}
	b := &Barrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Wait blocks until all parties have arrived, then releases them together
// and resets the barrier for the next cycle.
func (b *Barrier) Wait() {
	b.mu.Lock()
	gen := b.gen
	b.waiting++
	if b.waiting == b.parties {
		b.waiting = 0
		b.gen++
		b.mu.Unlock()
		b.cond.Broadcast()
		return
	}
	for gen == b.gen {
		b.cond.Wait()
	}
	b.mu.Unlock()
}
