package manager

import (
	"time"

	"golang.org/x/exp/slices"
)

// maxHistory bounds how many finished games the session remembers.
const maxHistory = 100

// GameRecord summarises one finished game.
type GameRecord struct {
	ID             string
	Score          int
	Level          int
	WordsCompleted int
	Reason         string
	Duration       time.Duration
}

// SessionStats is a snapshot of the games played since the program started.
type SessionStats struct {
	GamesPlayed int
	HighScore   int
	BestLevel   int
	TotalWords  int
	History     []GameRecord // most recent last
}

// AverageScore over the remembered history.
func (s SessionStats) AverageScore() float64 {
	if len(s.History) == 0 {
		return 0
	}
	total := 0
	for _, g := range s.History {
		total += g.Score
	}
	return float64(total) / float64(len(s.History))
}

// StateManager keeps in-memory statistics for the current session. Nothing
// is written to disk. It is not safe for concurrent use; the engine calls it
// under its own lock.
type StateManager struct {
	stats   SessionStats
	started time.Time
}

func NewStateManager() *StateManager {
	return &StateManager{}
}

// GameStarted marks the start time of the game about to be played.
func (sm *StateManager) GameStarted(now time.Time) {
	sm.started = now
}

// GameEnded records a finished game.
func (sm *StateManager) GameEnded(rec GameRecord, now time.Time) {
	if !sm.started.IsZero() {
		rec.Duration = now.Sub(sm.started)
	}
	sm.stats.GamesPlayed++
	sm.stats.TotalWords += rec.WordsCompleted
	sm.stats.HighScore = max(sm.stats.HighScore, rec.Score)
	sm.stats.BestLevel = max(sm.stats.BestLevel, rec.Level)

	sm.stats.History = append(sm.stats.History, rec)
	if len(sm.stats.History) > maxHistory {
		sm.stats.History = slices.Delete(sm.stats.History, 0, len(sm.stats.History)-maxHistory)
	}
}

// Stats returns a copy of the session statistics.
func (sm *StateManager) Stats() SessionStats {
	s := sm.stats
	s.History = slices.Clone(sm.stats.History)
	return s
}
