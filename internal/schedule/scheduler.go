// Package schedule provides a cancelable delayed-task scheduler.
//
// The invitation flow advances an accepted trip to "waiting confirmation"
// after a fixed delay. Instead of a fire-and-forget timer callback, tasks
// run through a Scheduler that can cancel individual tasks and drains
// cleanly on shutdown.
package schedule

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Scheduler runs functions after a delay. Zero value is not usable; construct
// with New. Safe for concurrent use.
type Scheduler struct {
	log *zap.Logger

	mu      sync.Mutex
	stopped bool
	nextID  int64
	timers  map[int64]*time.Timer
	wg      sync.WaitGroup
}

// New constructs a Scheduler that logs through the provided logger.
func New(log *zap.Logger) *Scheduler {
	return &Scheduler{
		log:    log,
		timers: make(map[int64]*time.Timer),
	}
}

// AfterFunc schedules fn to run after d. The returned cancel function stops
// the task if it has not started yet and reports whether it did so.
// Scheduling on a stopped Scheduler is a no-op.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) (cancel func() bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		s.log.Warn("task scheduled after scheduler stop, dropping",
			zap.Duration("delay", d),
		)
		return func() bool { return false }
	}

	id := s.nextID
	s.nextID++
	s.wg.Add(1)

	s.timers[id] = time.AfterFunc(d, func() {
		defer s.wg.Done()

		s.mu.Lock()
		if s.stopped {
			s.mu.Unlock()
			return
		}
		delete(s.timers, id)
		s.mu.Unlock()

		fn()
	})

	return func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		t, ok := s.timers[id]
		if !ok || !t.Stop() {
			return false
		}
		delete(s.timers, id)
		s.wg.Done()
		return true
	}
}

// Stop cancels all pending tasks and waits for any already-running task to
// finish. After Stop returns no task will fire.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	pending := 0
	for id, t := range s.timers {
		if t.Stop() {
			s.wg.Done()
			pending++
		}
		delete(s.timers, id)
	}
	s.mu.Unlock()

	s.wg.Wait()
	if pending > 0 {
		s.log.Info("scheduler stopped", zap.Int("canceled_tasks", pending))
	}
}
