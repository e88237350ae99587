package pomodoro

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/model"
)

func TestClockTickerFiresRepeatedly(t *testing.T) {
	ticker := NewClockTicker(5 * time.Millisecond)
	defer ticker.Stop()

	var count atomic.Int32
	ticker.Arm(func() { count.Add(1) })

	require.Eventually(t, func() bool { return count.Load() >= 3 }, time.Second, time.Millisecond)
	assert.True(t, ticker.Armed())
}

func TestClockTickerDisarmStopsTicks(t *testing.T) {
	ticker := NewClockTicker(5 * time.Millisecond)
	defer ticker.Stop()

	var count atomic.Int32
	ticker.Arm(func() { count.Add(1) })
	require.Eventually(t, func() bool { return count.Load() >= 1 }, time.Second, time.Millisecond)

	ticker.Disarm()
	settled := count.Load()
	time.Sleep(30 * time.Millisecond)

	assert.False(t, ticker.Armed())
	assert.LessOrEqual(t, count.Load(), settled+1)
}

func TestClockTickerDoesNotDoubleArm(t *testing.T) {
	ticker := NewClockTicker(5 * time.Millisecond)
	defer ticker.Stop()

	var first, second atomic.Int32
	ticker.Arm(func() { first.Add(1) })
	ticker.Arm(func() { second.Add(1) })

	require.Eventually(t, func() bool { return first.Load() >= 2 }, time.Second, time.Millisecond)
	assert.Equal(t, int32(0), second.Load())
}

func TestClockTickerNeverOverlapsHandlers(t *testing.T) {
	ticker := NewClockTicker(time.Millisecond)
	defer ticker.Stop()

	var active, overlaps, calls atomic.Int32
	ticker.Arm(func() {
		if active.Add(1) > 1 {
			overlaps.Add(1)
		}
		time.Sleep(3 * time.Millisecond)
		active.Add(-1)
		calls.Add(1)
	})

	require.Eventually(t, func() bool { return calls.Load() >= 5 }, 2*time.Second, time.Millisecond)
	assert.Equal(t, int32(0), overlaps.Load())
}

func TestClockTickerStopIsPermanent(t *testing.T) {
	ticker := NewClockTicker(time.Millisecond)
	ticker.Stop()

	var count atomic.Int32
	ticker.Arm(func() { count.Add(1) })
	time.Sleep(10 * time.Millisecond)

	assert.False(t, ticker.Armed())
	assert.Equal(t, int32(0), count.Load())
}

func TestEngineDrivenByClockTicker(t *testing.T) {
	schedule := model.Schedule{
		Work:           2 * time.Second,
		ShortBreak:     time.Second,
		LongBreak:      time.Second,
		LongBreakEvery: 4,
	}
	sink := &recordingSink{}
	engine := New(schedule, Options{Ticker: NewClockTicker(2 * time.Millisecond), Notifier: sink})
	defer engine.Close()

	engine.Start()

	require.Eventually(t, func() bool { return len(sink.all()) == 1 }, time.Second, time.Millisecond)
	assert.Equal(t, SessionShortBreak, engine.Session())
	assert.Equal(t, 1, engine.RemainingSeconds())
	assert.False(t, engine.IsRunning())

	time.Sleep(10 * time.Millisecond)
	assert.Len(t, sink.all(), 1)
}

func TestManualTickerFireN(t *testing.T) {
	ticker := NewManualTicker()
	assert.Equal(t, 0, ticker.FireN(3))

	calls := 0
	ticker.Arm(func() {
		calls++
		if calls == 2 {
			ticker.Disarm()
		}
	})

	assert.Equal(t, 2, ticker.FireN(5))
	assert.Equal(t, 2, calls)
	assert.False(t, ticker.Armed())
}
