package engine

import (
	"time"

	"github.com/lixenwraith/space-engineer/core"
)

// TaskID identifies a scheduled record
type TaskID uint64

// task is a deadline plus the action to run when the deadline passes
// A positive interval makes the task repeat
type task struct {
	id       TaskID
	deadline time.Time
	interval time.Duration
	owner    core.Entity
	fn       func(now time.Time)
}

// Scheduler holds deadline records polled once per simulation tick
// Callbacks run on the polling thread; a callback may schedule or cancel other tasks
type Scheduler struct {
	tasks  []task
	nextID TaskID
}

// NewScheduler creates an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{
		tasks:  make([]task, 0, 16),
		nextID: 1,
	}
}

// After runs fn once when now+delay has passed
// Owner ties the task to an entity so it can be cancelled with the entity, core.NoEntity for none
func (s *Scheduler) After(now time.Time, delay time.Duration, owner core.Entity, fn func(now time.Time)) TaskID {
	return s.add(now.Add(delay), 0, owner, fn)
}

// Every runs fn each interval, first at now+interval
// Non-positive intervals are rejected and return 0
func (s *Scheduler) Every(now time.Time, interval time.Duration, fn func(now time.Time)) TaskID {
	if interval <= 0 {
		return 0
	}
	return s.add(now.Add(interval), interval, core.NoEntity, fn)
}

func (s *Scheduler) add(deadline time.Time, interval time.Duration, owner core.Entity, fn func(time.Time)) TaskID {
	id := s.nextID
	s.nextID++
	s.tasks = append(s.tasks, task{
		id:       id,
		deadline: deadline,
		interval: interval,
		owner:    owner,
		fn:       fn,
	})
	return id
}

// Cancel removes a task, reports whether it was pending
func (s *Scheduler) Cancel(id TaskID) bool {
	for i := range s.tasks {
		if s.tasks[i].id == id {
			s.remove(i)
			return true
		}
	}
	return false
}

// CancelOwner removes every task owned by the entity and returns the count
func (s *Scheduler) CancelOwner(owner core.Entity) int {
	if owner == core.NoEntity {
		return 0
	}
	n := 0
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.owner == owner {
			n++
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept
	return n
}

// CancelAll removes every pending task and returns the count
// Level restarts call this before reinitializing so no stale timer reaches the new level
func (s *Scheduler) CancelAll() int {
	n := len(s.tasks)
	s.tasks = s.tasks[:0]
	return n
}

// Pending returns the number of scheduled tasks
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// maxBehindIntervals bounds repeater catch-up: a task further behind than this many intervals
// drops the missed runs and resyncs to now+interval
const maxBehindIntervals = 2

// Poll runs every task whose deadline is not after now, earliest first, ties in scheduling order
// Repeating tasks catch up one interval at a time unless a stall left them too far behind
// Returns the number of callbacks run
func (s *Scheduler) Poll(now time.Time) int {
	ran := 0
	for {
		idx := s.earliestDue(now)
		if idx < 0 {
			return ran
		}

		t := s.tasks[idx]
		if t.interval > 0 {
			next := t.deadline.Add(t.interval)
			if now.Sub(next) > maxBehindIntervals*t.interval {
				next = now.Add(t.interval)
			}
			s.tasks[idx].deadline = next
		} else {
			s.remove(idx)
		}

		t.fn(t.deadline)
		ran++
	}
}

// earliestDue returns the index of the earliest due task or -1
func (s *Scheduler) earliestDue(now time.Time) int {
	best := -1
	for i := range s.tasks {
		t := &s.tasks[i]
		if t.deadline.After(now) {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		b := &s.tasks[best]
		if t.deadline.Before(b.deadline) || (t.deadline.Equal(b.deadline) && t.id < b.id) {
			best = i
		}
	}
	return best
}

func (s *Scheduler) remove(i int) {
	copy(s.tasks[i:], s.tasks[i+1:])
	s.tasks = s.tasks[:len(s.tasks)-1]
}
