// Package sched runs the heartbeat cadence. The core decides nothing about
// time; this loop decides when to call it.
package sched

import (
	"log/slog"
	"time"
)

// Loop calls OnBeat at a fixed interval until stopped.
type Loop struct {
	Interval time.Duration
	OnBeat   func(now time.Time)

	stop chan struct{}
}

// NewLoop creates a loop with the given interval.
func NewLoop(interval time.Duration, onBeat func(now time.Time)) *Loop {
	return &Loop{
		Interval: interval,
		OnBeat:   onBeat,
		stop:     make(chan struct{}),
	}
}

// Run fires one beat immediately, then one per interval. Blocks until
// Stop is called.
func (l *Loop) Run() {
	slog.Info("heartbeat loop started", "interval", l.Interval)

	l.OnBeat(time.Now())

	ticker := time.NewTicker(l.Interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			l.OnBeat(now)
		case <-l.stop:
			slog.Info("heartbeat loop stopped")
			return
		}
	}
}

// Stop halts the loop. Safe to call once.
func (l *Loop) Stop() {
	close(l.stop)
}
