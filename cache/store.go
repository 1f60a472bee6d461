package cache

import (
	"github.com/fuad-daoud/discord-core/discord"
	"sync"
)

// Store is an unbounded ID-keyed registry for one entity type. Storing an
// entity transfers ownership to the store: callers must not keep mutating
// it afterwards, and it is only ever replaced by a later snapshot carrying
// the same ID (last write wins, no merging).
//
// Store and Find are safe for concurrent use from multiple shards; a reader
// observes either the previous value or the fully written new one.
type Store[E any] struct {
	mu      sync.RWMutex
	id      func(E) discord.Snowflake
	entries map[discord.Snowflake]E
}

// NewStore builds a store keyed by the given ID accessor.
func NewStore[E any](id func(E) discord.Snowflake) *Store[E] {
	return &Store[E]{id: id, entries: make(map[discord.Snowflake]E)}
}

// Store inserts the entity, overwriting any previous entry under its ID.
func (s *Store[E]) Store(e E) {
	s.mu.Lock()
	s.entries[s.id(e)] = e
	s.mu.Unlock()
}

// Find looks the entity up by ID; the second result is false on a miss.
func (s *Store[E]) Find(id discord.Snowflake) (E, bool) {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()
	return e, ok
}

func (s *Store[E]) Exists(id discord.Snowflake) bool {
	s.mu.RLock()
	_, ok := s.entries[id]
	s.mu.RUnlock()
	return ok
}

func (s *Store[E]) Len() int {
	s.mu.RLock()
	n := len(s.entries)
	s.mu.RUnlock()
	return n
}
