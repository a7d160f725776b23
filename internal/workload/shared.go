// Package workload drives a block from several goroutines, the way a real
// program would: one simulated transfer per slot, sharing one lock.
package workload

import (
	"sync"

	"github.com/dpouris/interm"
)

// Shared serializes access to a block. The lock is held for exactly one
// call into the block at a time.
type Shared struct {
	mu    sync.Mutex
	block *interm.Block
	width int
}

// NewShared wraps b. Content written through Update is clamped to width
// cells so no line wraps into the next slot; width <= 0 disables clamping.
func NewShared(b *interm.Block, width int) *Shared {
	return &Shared{block: b, width: width}
}

// Do runs fn with the lock held.
func (s *Shared) Do(fn func(*interm.Block) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.block)
}

// Update redraws the slot with a clamped version of content.
func (s *Shared) Update(slot interm.Slot, content string, clearFirst bool) error {
	content = fit(content, s.width)
	return s.Do(func(b *interm.Block) error {
		return b.Update(slot, content, clearFirst)
	})
}

// Slots returns copies of the block's slots.
func (s *Shared) Slots() []interm.Slot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.block.Slots()
}
