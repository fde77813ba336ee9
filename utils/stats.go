package utils

import "time"

const historySize = 5

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	ActiveCells          int

	history []string // recent grid hashes for cycle detection
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	s.ActiveCells = population
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// IsStagnant reports whether hash matches one of the last three recorded states,
// which catches still lifes and period 2 and 3 oscillators
func (s *Stats) IsStagnant(hash string) bool {
	n := len(s.history)
	for i := n - 1; i >= 0 && i >= n-3; i-- {
		if s.history[i] == hash {
			return true
		}
	}
	return false
}

// Record adds a grid hash to the history, keeping the most recent few
func (s *Stats) Record(hash string) {
	s.history = append(s.history, hash)
	if len(s.history) > historySize {
		s.history = s.history[1:]
	}
}

// ResetHistory forgets recorded states, e.g. after the grid was edited or cleared
func (s *Stats) ResetHistory() {
	s.history = nil
}
