package usecase

import "sync"

// Guard serializes mutating governance operations so each one observes
// and commits a consistent snapshot of proposals and treasury. The
// engine assumes one mutating call at a time; reads don't take it.
type Guard struct {
	mu sync.Mutex
}

// NewGuard creates the shared operation guard
func NewGuard() *Guard {
	return &Guard{}
}

func (g *Guard) Lock() {
	g.mu.Lock()
}

func (g *Guard) Unlock() {
	g.mu.Unlock()
}
