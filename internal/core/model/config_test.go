package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSchedule(t *testing.T) {
	schedule := DefaultSchedule()

	assert.Equal(t, 1500*time.Second, schedule.Work)
	assert.Equal(t, 300*time.Second, schedule.ShortBreak)
	assert.Equal(t, 900*time.Second, schedule.LongBreak)
	assert.Equal(t, 4, schedule.LongBreakEvery)
}

func TestScheduleNormalized(t *testing.T) {
	got := Schedule{ShortBreak: 2 * time.Minute, LongBreak: 500 * time.Millisecond}.Normalized()

	assert.Equal(t, 25*time.Minute, got.Work)
	assert.Equal(t, 2*time.Minute, got.ShortBreak)
	assert.Equal(t, 15*time.Minute, got.LongBreak)
	assert.Equal(t, 4, got.LongBreakEvery)
}
