package world

import "sync"

// Generator produces chunks on demand. Implementations must be safe for
// concurrent use and deterministic: the same coordinate always yields the
// same tiles.
type Generator interface {
	GenerateChunk(cx, cy int) *Chunk
}

// Store memoizes generated chunks by coordinate.
type Store struct {
	gen Generator

	mu     sync.RWMutex
	chunks map[ChunkCoord]*Chunk
}

// NewStore returns an empty store backed by gen.
func NewStore(gen Generator) *Store {
	return &Store{
		gen:    gen,
		chunks: make(map[ChunkCoord]*Chunk),
	}
}

// Chunk returns the chunk at the coordinate, generating it on first
// access. Generation runs outside the lock so distinct coordinates can
// generate in parallel. When two goroutines race on the same coordinate
// the first stored chunk wins and the duplicate is dropped; generation is
// deterministic, so both hold the same tiles.
func (s *Store) Chunk(cx, cy int) *Chunk {
	coord := ChunkCoord{X: cx, Y: cy}

	s.mu.RLock()
	ch, ok := s.chunks[coord]
	s.mu.RUnlock()
	if ok {
		return ch
	}

	generated := s.gen.GenerateChunk(cx, cy)

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.chunks[coord]; ok {
		return existing
	}
	s.chunks[coord] = generated
	return generated
}

// Count returns how many chunks the store holds.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chunks)
}
