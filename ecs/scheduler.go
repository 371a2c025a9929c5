package ecs

import "time"

const (
	DefaultTickRate = 120
	// MaxTickRate keeps elapsed nanoseconds times the rate within int64 for
	// stalls of up to about ten days.
	MaxTickRate = 10000
)

// Scheduler runs fixed-rate systems from accumulated wall time and then the
// per-frame systems once. Time is accumulated as nanoseconds scaled by the
// tick rate, so whole ticks are carved out exactly and the remainder carries
// over to the next frame.
type Scheduler struct {
	fixed []System
	frame []System

	rate        int64
	accumulator int64
	ticks       uint64
	frames      uint64
}

// NewScheduler creates a scheduler running tickRate fixed ticks per simulated
// second. Non-positive rates fall back to DefaultTickRate and rates above
// MaxTickRate are clamped.
func NewScheduler(tickRate int) *Scheduler {
	switch {
	case tickRate <= 0:
		tickRate = DefaultTickRate
	case tickRate > MaxTickRate:
		tickRate = MaxTickRate
	}
	return &Scheduler{rate: int64(tickRate)}
}

// AddFixed appends systems to the fixed tick pass, in order.
func (s *Scheduler) AddFixed(systems ...System) {
	for _, system := range systems {
		if system != nil {
			s.fixed = append(s.fixed, system)
		}
	}
}

// AddFrame appends systems to the per-frame pass, in order.
func (s *Scheduler) AddFrame(systems ...System) {
	for _, system := range systems {
		if system != nil {
			s.frame = append(s.frame, system)
		}
	}
}

// Step returns the fixed tick duration, truncated to whole nanoseconds.
func (s *Scheduler) Step() time.Duration {
	return time.Second / time.Duration(s.rate)
}

func (s *Scheduler) TickRate() int {
	return int(s.rate)
}

// Ticks returns the number of fixed ticks run so far.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

func (s *Scheduler) Frames() uint64 {
	return s.frames
}

// Tick runs one fixed pass immediately, outside the accumulator.
func (s *Scheduler) Tick(w *World, f *Frame) {
	for _, system := range s.fixed {
		system.Update(w, f)
	}
	s.ticks++
}

// Update consumes elapsed wall time as whole fixed ticks and then runs the
// per-frame systems. It returns the number of fixed ticks run this frame.
func (s *Scheduler) Update(w *World, f *Frame, elapsed time.Duration) int {
	if elapsed > 0 {
		s.accumulator += int64(elapsed) * s.rate
	}
	n := 0
	for s.accumulator >= int64(time.Second) {
		s.Tick(w, f)
		s.accumulator -= int64(time.Second)
		n++
	}
	for _, system := range s.frame {
		system.Update(w, f)
	}
	s.frames++
	return n
}
