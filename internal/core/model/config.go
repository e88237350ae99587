package model

import "time"

// Schedule defines the fixed lengths of the Pomodoro cycle.
type Schedule struct {
	Work       time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration

	// LongBreakEvery is the number of completed work sessions between long breaks.
	LongBreakEvery int
}

// DefaultSchedule returns the classic 25/5/15 cycle with a long break every fourth session.
func DefaultSchedule() Schedule {
	return Schedule{
		Work:           25 * time.Minute,
		ShortBreak:     5 * time.Minute,
		LongBreak:      15 * time.Minute,
		LongBreakEvery: 4,
	}
}

// Normalized fills zero or negative fields from DefaultSchedule.
func (schedule Schedule) Normalized() Schedule {
	defaults := DefaultSchedule()
	if schedule.Work < time.Second {
		schedule.Work = defaults.Work
	}
	if schedule.ShortBreak < time.Second {
		schedule.ShortBreak = defaults.ShortBreak
	}
	if schedule.LongBreak < time.Second {
		schedule.LongBreak = defaults.LongBreak
	}
	if schedule.LongBreakEvery <= 0 {
		schedule.LongBreakEvery = defaults.LongBreakEvery
	}
	return schedule
}
