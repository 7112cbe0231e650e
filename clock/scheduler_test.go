package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/skirmish/ports"
)

func TestAdvanceRunsDueTimersInOrder(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.ScheduleOnce(30*time.Millisecond, func() { order = append(order, "c") })
	s.ScheduleOnce(10*time.Millisecond, func() { order = append(order, "a") })
	s.ScheduleOnce(10*time.Millisecond, func() { order = append(order, "b") })
	s.ScheduleOnce(50*time.Millisecond, func() { order = append(order, "late") })

	ran := s.Advance(30 * time.Millisecond)

	assert.Equal(t, 3, ran)
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, 30*time.Millisecond, s.Now())
	assert.Equal(t, 1, s.Pending())
}

func TestNowDuringCallbackIsDueTime(t *testing.T) {
	s := NewScheduler()
	var seen time.Duration
	s.ScheduleOnce(40*time.Millisecond, func() { seen = s.Now() })

	s.Advance(100 * time.Millisecond)

	assert.Equal(t, 40*time.Millisecond, seen)
	assert.Equal(t, 100*time.Millisecond, s.Now())
}

func TestTimersArmedDuringAdvanceWait(t *testing.T) {
	s := NewScheduler()
	runs := 0
	var rearm func()
	rearm = func() {
		runs++
		s.ScheduleOnce(0, rearm)
	}
	s.ScheduleOnce(0, rearm)

	require.Equal(t, 1, s.Advance(time.Second))
	require.Equal(t, 1, runs)
	require.Equal(t, 1, s.Pending())

	s.Advance(0)
	assert.Equal(t, 2, runs)
}

func TestCancel(t *testing.T) {
	tests := []struct {
		name   string
		cancel func(s *Scheduler, h uint64) bool
		want   bool
		fired  bool
	}{
		{
			name:   "pending",
			cancel: func(s *Scheduler, h uint64) bool { return s.Cancel(handle(h)) },
			want:   true,
		},
		{
			name: "twice",
			cancel: func(s *Scheduler, h uint64) bool {
				s.Cancel(handle(h))
				return s.Cancel(handle(h))
			},
			want: false,
		},
		{
			name: "after_fire",
			cancel: func(s *Scheduler, h uint64) bool {
				s.Advance(time.Second)
				return s.Cancel(handle(h))
			},
			want:  false,
			fired: true,
		},
		{
			name:   "unknown",
			cancel: func(s *Scheduler, h uint64) bool { return s.Cancel(handle(h + 100)) },
			want:   false,
			fired:  true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScheduler()
			fired := false
			h := s.ScheduleOnce(10*time.Millisecond, func() { fired = true })

			got := tc.cancel(s, uint64(h))
			s.Advance(time.Second)

			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.fired, fired)
			assert.Zero(t, s.Pending())
		})
	}
}

func TestCancelFromCallback(t *testing.T) {
	s := NewScheduler()
	fired := false
	later := s.ScheduleOnce(20*time.Millisecond, func() { fired = true })
	s.ScheduleOnce(10*time.Millisecond, func() { s.Cancel(later) })

	s.Advance(time.Second)

	assert.False(t, fired)
	assert.Zero(t, s.Pending())
}

func TestCancelDeferredTimerFromCallback(t *testing.T) {
	s := NewScheduler()
	fired := false
	var h ports.TimerHandle
	s.ScheduleOnce(10*time.Millisecond, func() {
		h = s.ScheduleOnce(0, func() { fired = true })
	})
	s.ScheduleOnce(20*time.Millisecond, func() {
		assert.True(t, s.Cancel(h))
	})

	s.Advance(time.Second)
	s.Advance(time.Second)

	assert.False(t, fired)
	assert.Zero(t, s.Pending())
}

func TestScheduleEdgeCases(t *testing.T) {
	s := NewScheduler()
	assert.Zero(t, s.ScheduleOnce(time.Second, nil))

	fired := false
	s.ScheduleOnce(-time.Second, func() { fired = true })
	s.Advance(0)
	assert.True(t, fired)
}

func handle(v uint64) ports.TimerHandle { return ports.TimerHandle(v) }
