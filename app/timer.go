package app

import (
	"sort"
	"time"
)

type timer struct {
	due time.Time
	fn  func()
}

// timerQueue runs one-shot callbacks once their due time has passed.
type timerQueue struct {
	pending []timer
}

func (q *timerQueue) After(now time.Time, d time.Duration, fn func()) {
	q.pending = append(q.pending, timer{due: now.Add(d), fn: fn})
	sort.SliceStable(q.pending, func(i, j int) bool {
		return q.pending[i].due.Before(q.pending[j].due)
	})
}

// Fire runs every timer due at now. Timers added by the callbacks wait for
// the next call even when they are already due.
func (q *timerQueue) Fire(now time.Time) int {
	n := 0
	for n < len(q.pending) && !q.pending[n].due.After(now) {
		n++
	}
	if n == 0 {
		return 0
	}
	due := make([]timer, n)
	copy(due, q.pending[:n])
	q.pending = append(q.pending[:0], q.pending[n:]...)

	for _, t := range due {
		t.fn()
	}
	return n
}

func (q *timerQueue) Next() (time.Time, bool) {
	if len(q.pending) == 0 {
		return time.Time{}, false
	}
	return q.pending[0].due, true
}

func (q *timerQueue) Len() int { return len(q.pending) }

func (q *timerQueue) Clear() { q.pending = nil }
