// Package storage keeps score records for the running process. It is
// in-memory by design: the game has no persistence beyond the best score
// since process start.
package storage

import (
	"sync"
)

// Store records scores per game ID. Safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	best  map[string]int
	plays map[string]int
}

// NewStore creates an empty score store.
func NewStore() *Store {
	return &Store{
		best:  make(map[string]int),
		plays: make(map[string]int),
	}
}

// SaveScore records a finished game. Returns true when the score is a new
// best for the game.
func (s *Store) SaveScore(gameID string, score int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plays[gameID]++
	if score > s.best[gameID] {
		s.best[gameID] = score
		return true
	}
	return false
}

// HighScore returns the best recorded score for the game, or 0.
func (s *Store) HighScore(gameID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.best[gameID]
}

// GamesPlayed returns how many finished games have been recorded.
func (s *Store) GamesPlayed(gameID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.plays[gameID]
}
