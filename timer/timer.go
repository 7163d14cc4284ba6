// SPDX-License-Identifier: MIT

// Package timer measures wall-clock time around exactly one call.
//
// time.Now carries a monotonic reading, so time.Since is immune to wall-clock
// steps; elapsed time is reported as float64 seconds with nanosecond
// resolution where the platform provides it.
package timer

import "time"

// Timed runs fn and returns its result with the elapsed seconds.
func Timed[T any](fn func() T) (T, float64) {
	start := time.Now()
	out := fn()

	return out, time.Since(start).Seconds()
}

// TimedErr runs fn and returns its result, the elapsed seconds and fn's
// error. Time is reported even when fn fails.
func TimedErr[T any](fn func() (T, error)) (T, float64, error) {
	start := time.Now()
	out, err := fn()

	return out, time.Since(start).Seconds(), err
}

// Stopwatch accumulates elapsed time over several laps.
type Stopwatch struct {
	start time.Time
	laps  []time.Duration
}

// Start (re)starts the current lap.
func (s *Stopwatch) Start() { s.start = time.Now() }

// Lap closes the current lap, records it and starts the next one.
// It returns the closed lap in seconds.
func (s *Stopwatch) Lap() float64 {
	now := time.Now()
	d := now.Sub(s.start)
	s.laps = append(s.laps, d)
	s.start = now

	return d.Seconds()
}

// Total returns the sum of all recorded laps in seconds.
func (s *Stopwatch) Total() float64 {
	var sum time.Duration
	for _, d := range s.laps {
		sum += d
	}

	return sum.Seconds()
}

// Laps returns the number of recorded laps.
func (s *Stopwatch) Laps() int { return len(s.laps) }
