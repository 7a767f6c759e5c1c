package hud

import (
	"sync"
	"time"
)

// DefaultInboxSlots is the inbox capacity used when NewInbox gets a
// non-positive size.
const DefaultInboxSlots = 64

// Inbox is a bounded FIFO of updates. Post may be called from any goroutine;
// Drain must be called from the goroutine that owns the Store.
type Inbox struct {
	mu      sync.Mutex
	head    uint32
	tail    uint32
	slots   []Update
	dropped uint64

	scratch []Update
}

// NewInbox returns an inbox holding at most slots pending updates.
func NewInbox(slots int) *Inbox {
	if slots <= 0 {
		slots = DefaultInboxSlots
	}
	return &Inbox{slots: make([]Update, slots)}
}

// Post enqueues u, returning false if the inbox is full.
func (in *Inbox) Post(u Update) bool {
	in.mu.Lock()
	defer in.mu.Unlock()

	n := uint32(len(in.slots))
	if in.head-in.tail >= n {
		in.dropped++
		return false
	}
	in.slots[in.head%n] = u
	in.head++
	return true
}

// Pending returns the number of queued updates.
func (in *Inbox) Pending() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return int(in.head - in.tail)
}

// Dropped returns how many updates Post rejected so far.
func (in *Inbox) Dropped() uint64 {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.dropped
}

// Drain applies every queued update to s in arrival order and returns how
// many were applied.
func (in *Inbox) Drain(s *Store, now time.Time) int {
	in.mu.Lock()
	n := uint32(len(in.slots))
	in.scratch = in.scratch[:0]
	for in.tail != in.head {
		in.scratch = append(in.scratch, in.slots[in.tail%n])
		in.slots[in.tail%n] = Update{}
		in.tail++
	}
	in.mu.Unlock()

	applied := 0
	for _, u := range in.scratch {
		if s.Record(u, now) {
			applied++
		}
	}
	return applied
}
