package submission

import "sync"

// Guard tracks which page views have a submission in flight.
// The zero value is ready to use.
type Guard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

// Acquire marks key as in flight. ok is false when key is already in flight.
// The returned release must be called once the submission settles.
func (g *Guard) Acquire(key string) (release func(), ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.active == nil {
		g.active = make(map[string]struct{})
	}
	if _, busy := g.active[key]; busy {
		return nil, false
	}
	g.active[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.active, key)
			g.mu.Unlock()
		})
	}, true
}

// InFlight returns the number of keys currently held.
func (g *Guard) InFlight() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.active)
}
