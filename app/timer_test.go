package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimerQueueOrder(t *testing.T) {
	var q timerQueue
	now := time.Unix(100, 0)
	var fired []string

	q.After(now, 3*time.Millisecond, func() { fired = append(fired, "c") })
	q.After(now, 1*time.Millisecond, func() { fired = append(fired, "a") })
	q.After(now, 2*time.Millisecond, func() { fired = append(fired, "b") })

	next, ok := q.Next()
	assert.True(t, ok)
	assert.Equal(t, now.Add(time.Millisecond), next)

	assert.Equal(t, 0, q.Fire(now))
	assert.Equal(t, 2, q.Fire(now.Add(2*time.Millisecond)))
	assert.Equal(t, []string{"a", "b"}, fired)
	assert.Equal(t, 1, q.Len())

	q.Clear()
	_, ok = q.Next()
	assert.False(t, ok)
}

func TestTimerRescheduleWaitsForNextFire(t *testing.T) {
	var q timerQueue
	now := time.Unix(100, 0)
	count := 0

	var fn func()
	fn = func() {
		count++
		q.After(now, 0, fn)
	}
	q.After(now, 0, fn)

	assert.Equal(t, 1, q.Fire(now))
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, q.Len())
	assert.Equal(t, 1, q.Fire(now))
	assert.Equal(t, 2, count)
}
