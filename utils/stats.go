package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	TotalGenerations int
	TotalStepTime    time.Duration
	SlowestStep      time.Duration
	StartTime        time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records the wall-clock duration of one generation.
func (s *Stats) Update(generation int, duration time.Duration) {
	s.TotalGenerations = generation + 1
	s.TotalStepTime += duration
	if duration > s.SlowestStep {
		s.SlowestStep = duration
	}
}

// GenerationsPerSecond averages over the time spent stepping.
func (s *Stats) GenerationsPerSecond() float64 {
	if s.TotalStepTime <= 0 {
		return 0
	}
	return float64(s.TotalGenerations) / s.TotalStepTime.Seconds()
}

// TotalElapsed is the wall-clock time since the stats were created.
func (s *Stats) TotalElapsed() time.Duration {
	return time.Since(s.StartTime)
}
