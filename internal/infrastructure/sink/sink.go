// Package sink provides the audio and score collaborators used outside of tests.
package sink

import (
	"sync"

	"github.com/charmbracelet/log"
)

// LogAudio stands in for a mixer: every sound is counted and logged at debug level
type LogAudio struct {
	logger *log.Logger

	mu     sync.Mutex
	played map[string]int
}

// NewLogAudio creates an audio sink writing to logger. A nil logger only counts.
func NewLogAudio(logger *log.Logger) *LogAudio {
	return &LogAudio{logger: logger, played: make(map[string]int)}
}

// PlaySound implements entity.Audio
func (a *LogAudio) PlaySound(name string) {
	a.mu.Lock()
	a.played[name]++
	a.mu.Unlock()
	if a.logger != nil {
		a.logger.Debug("sound", "name", name)
	}
}

// Played returns how many times name was played
func (a *LogAudio) Played(name string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.played[name]
}

// ScoreTally accumulates every point awarded during a session
type ScoreTally struct {
	total  int
	awards int
}

// NewScoreTally creates an empty tally
func NewScoreTally() *ScoreTally {
	return &ScoreTally{}
}

// AddScore implements entity.ScoreSink
func (t *ScoreTally) AddScore(points int) {
	if points <= 0 {
		return
	}
	t.total += points
	t.awards++
}

// Total returns the sum of all awarded points
func (t *ScoreTally) Total() int {
	return t.total
}

// Awards returns how many awards were added
func (t *ScoreTally) Awards() int {
	return t.awards
}

// Reset clears the tally for a new session
func (t *ScoreTally) Reset() {
	t.total = 0
	t.awards = 0
}
