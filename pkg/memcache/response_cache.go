package mem

import (
	"sync"
	"time"
)

// ResponseCache keeps upstream lookups (weather, images) for a short TTL so
// repeated requests for the same city do not re-hit the provider.
type ResponseCache interface {
	Set(key string, value any, ttl time.Duration)

	// Get returns the cached value if present and not expired.
	Get(key string) (any, bool)
}

type entry struct {
	value     any
	expiresAt time.Time
}

type Responses struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewResponses() *Responses {
	return &Responses{
		data: make(map[string]entry),
	}
}

func (s *Responses) Set(key string, value any, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *Responses) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}
