// Package clock provides simulated time and one-shot timers for a single
// update thread.
package clock

import (
	"container/heap"
	"time"

	"github.com/milk9111/skirmish/ports"
)

type timer struct {
	id    ports.TimerHandle
	due   time.Duration
	fn    func()
	index int
}

type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].id < q[j].id
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

// Scheduler runs one-shot callbacks against simulated time. It is not safe
// for concurrent use; every call happens on the owning update thread.
type Scheduler struct {
	now    time.Duration
	nextID ports.TimerHandle
	queue  timerQueue
	byID   map[ports.TimerHandle]*timer
}

var _ ports.Timers = (*Scheduler)(nil)

func NewScheduler() *Scheduler {
	return &Scheduler{byID: make(map[ports.TimerHandle]*timer)}
}

// ScheduleOnce arms fn to run delay after the current time. Negative delays
// count as zero.
func (s *Scheduler) ScheduleOnce(delay time.Duration, fn func()) ports.TimerHandle {
	if fn == nil {
		return 0
	}
	if delay < 0 {
		delay = 0
	}
	s.nextID++
	t := &timer{id: s.nextID, due: s.now + delay, fn: fn}
	heap.Push(&s.queue, t)
	s.byID[t.id] = t
	return t.id
}

// Cancel removes a pending timer. It reports false when the handle already
// fired, was cancelled, or was never issued.
func (s *Scheduler) Cancel(h ports.TimerHandle) bool {
	t, ok := s.byID[h]
	if !ok {
		return false
	}
	delete(s.byID, h)
	if t.index >= 0 {
		heap.Remove(&s.queue, t.index)
	}
	return true
}

// Advance moves time forward by dt and runs every timer that falls due,
// ordered by due time then scheduling order. Timers armed by those
// callbacks wait for a later Advance even when their delay is zero.
// It returns the number of callbacks run.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt
	cutoff := s.nextID
	ran := 0

	var deferred []*timer
	for s.queue.Len() > 0 {
		t := s.queue[0]
		if t.due > target {
			break
		}
		heap.Pop(&s.queue)
		if t.id > cutoff {
			deferred = append(deferred, t)
			continue
		}
		delete(s.byID, t.id)
		if t.due > s.now {
			s.now = t.due
		}
		t.fn()
		ran++
	}
	for _, t := range deferred {
		if s.byID[t.id] == t {
			heap.Push(&s.queue, t)
		}
	}
	s.now = target
	return ran
}

// Now is the current simulated time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending reports the number of armed timers.
func (s *Scheduler) Pending() int {
	return len(s.byID)
}
