package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndTopScores(t *testing.T) {
	s := openTestStore(t)

	for _, score := range []int{120, 340, 90, 340, 210} {
		if err := s.SaveScore("pong", score); err != nil {
			t.Fatalf("SaveScore() error: %v", err)
		}
	}
	if err := s.SaveScore("life", 999); err != nil {
		t.Fatalf("SaveScore() error: %v", err)
	}

	top, err := s.TopScores("pong", 3)
	if err != nil {
		t.Fatalf("TopScores() error: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("TopScores() returned %d entries, expected 3", len(top))
	}
	want := []int{340, 340, 210}
	for i, e := range top {
		if e.Score != want[i] {
			t.Errorf("top[%d].Score = %d, expected %d", i, e.Score, want[i])
		}
		if e.Game != "pong" {
			t.Errorf("top[%d].Game = %q, expected pong", i, e.Game)
		}
	}
}

func TestTopScoresEmptyGame(t *testing.T) {
	s := openTestStore(t)

	top, err := s.TopScores("nothing-played", 10)
	if err != nil {
		t.Fatalf("TopScores() error: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("TopScores() on empty game returned %d entries", len(top))
	}
}
