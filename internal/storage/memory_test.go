package storage

import (
	"sync"
	"testing"
)

func TestSaveScoreTracksBest(t *testing.T) {
	s := NewStore()

	if !s.SaveScore("slither", 10) {
		t.Error("first score should be a new best")
	}
	if s.SaveScore("slither", 5) {
		t.Error("lower score reported as new best")
	}
	if !s.SaveScore("slither", 15) {
		t.Error("higher score not reported as new best")
	}

	if got := s.HighScore("slither"); got != 15 {
		t.Errorf("HighScore = %d, expected 15", got)
	}
	if got := s.GamesPlayed("slither"); got != 3 {
		t.Errorf("GamesPlayed = %d, expected 3", got)
	}
}

func TestGamesAreIndependent(t *testing.T) {
	s := NewStore()
	s.SaveScore("a", 10)
	s.SaveScore("b", 20)

	if got := s.HighScore("a"); got != 10 {
		t.Errorf("HighScore(a) = %d, expected 10", got)
	}
	if got := s.HighScore("b"); got != 20 {
		t.Errorf("HighScore(b) = %d, expected 20", got)
	}
	if got := s.HighScore("c"); got != 0 {
		t.Errorf("HighScore(c) = %d, expected 0", got)
	}
}

func TestConcurrentSaves(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			s.SaveScore("slither", score)
		}(i)
	}
	wg.Wait()

	if got := s.HighScore("slither"); got != 49 {
		t.Errorf("HighScore = %d, expected 49", got)
	}
	if got := s.GamesPlayed("slither"); got != 50 {
		t.Errorf("GamesPlayed = %d, expected 50", got)
	}
}
