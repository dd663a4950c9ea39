package gedo

import (
	"sync"
)

// Pool reuses fixed-size arenas across scopes, the usual companion to
// per-request scratch allocation: acquire an arena, allocate through it,
// release it back and the next scope starts from a rewound cursor. The
// pool itself is goroutine-safe; each acquired arena is still owned by
// one goroutine at a time.
type Pool struct {
	mu        sync.Mutex
	arenas    []*Arena
	arenaSize int
}

// NewPool creates a pool handing out arenas of arenaSize bytes.
func NewPool(arenaSize int) *Pool {
	return &Pool{arenaSize: arenaSize}
}

// Acquire returns a reset arena from the pool, reserving a new one when
// the pool is empty.
func (p *Pool) Acquire() (*Arena, error) {
	p.mu.Lock()
	if n := len(p.arenas); n > 0 {
		a := p.arenas[n-1]
		p.arenas = p.arenas[:n-1]
		p.mu.Unlock()
		return a, nil
	}
	p.mu.Unlock()
	return NewArena(p.arenaSize)
}

// Release rewinds the arena and returns it to the pool. Blocks issued
// from the arena are invalid after Release.
func (p *Pool) Release(a *Arena) {
	a.Reset()
	p.mu.Lock()
	p.arenas = append(p.arenas, a)
	p.mu.Unlock()
}

// Close releases every pooled arena's reservation.
func (p *Pool) Close() {
	p.mu.Lock()
	for _, a := range p.arenas {
		a.Close()
	}
	p.arenas = nil
	p.mu.Unlock()
}
