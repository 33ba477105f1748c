package locale

import (
	"sort"
	"sync"
)

// UnresolvedSet collects names that had no translation. It is an explicit,
// caller-owned collector rather than package-global state, so resolution
// itself stays pure. Insertion is idempotent and safe for concurrent use.
// Contents feed the diagnostics endpoint for offline table curation; they
// never influence resolution results.
type UnresolvedSet struct {
	mu    sync.Mutex
	names map[string]struct{}
}

// NewUnresolvedSet creates an empty collector.
func NewUnresolvedSet() *UnresolvedSet {
	return &UnresolvedSet{names: make(map[string]struct{})}
}

// Add records a name. Duplicate adds are no-ops.
func (s *UnresolvedSet) Add(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.names[name] = struct{}{}
}

// Names returns the recorded names in sorted order.
func (s *UnresolvedSet) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.names))
	for name := range s.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of distinct recorded names.
func (s *UnresolvedSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.names)
}
