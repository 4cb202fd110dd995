package hooking

import (
	"sort"
	"sync"
)

// PosCounter is a hook that counts how many times each hook position has been
// triggered.
type PosCounter struct {
	lock   sync.Mutex
	counts map[string]uint64
}

// NewPosCounter creates a new PosCounter.
func NewPosCounter() *PosCounter {
	return &PosCounter{
		counts: make(map[string]uint64),
	}
}

// Func counts the position of the invocation.
func (c *PosCounter) Func(ctx HookCtx) {
	if ctx.Pos == nil {
		return
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	c.counts[ctx.Pos.Name]++
}

// Count returns the number of times a position has been triggered.
func (c *PosCounter) Count(pos *HookPos) uint64 {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.counts[pos.Name]
}

// PosNames returns the names of all the positions seen, sorted.
func (c *PosCounter) PosNames() []string {
	c.lock.Lock()
	defer c.lock.Unlock()

	names := make([]string, 0, len(c.counts))
	for name := range c.counts {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
