package pomodoro

import (
	"fmt"
	"time"
)

// SessionType identifies a phase of the Pomodoro cycle.
type SessionType string

const (
	SessionWork       SessionType = "work"
	SessionShortBreak SessionType = "short_break"
	SessionLongBreak  SessionType = "long_break"
)

// Name returns the human readable session name.
func (session SessionType) Name() string {
	switch session {
	case SessionWork:
		return "Work"
	case SessionShortBreak:
		return "Short Break"
	case SessionLongBreak:
		return "Long Break"
	default:
		return string(session)
	}
}

// Label returns the text shown to the user for the session.
func (session SessionType) Label() string {
	if session == SessionWork {
		return "Focus"
	}
	return session.Name()
}

// IsBreak reports whether the session is a short or long break.
func (session SessionType) IsBreak() bool {
	return session == SessionShortBreak || session == SessionLongBreak
}

// EventType defines the type of engine event.
type EventType string

const (
	EventStateChange      EventType = "state_change"
	EventSessionCompleted EventType = "session_completed"
)

// Completion describes a finished session and the one that follows it.
type Completion struct {
	Finished              SessionType
	Next                  SessionType
	CompletedWorkSessions int
	At                    time.Time
}

// Event is delivered to subscribers after every observable state change.
// Completion is only set for EventSessionCompleted.
type Event struct {
	Type       EventType
	Snapshot   Snapshot
	Completion Completion
	At         time.Time
}

// Snapshot is an immutable copy of the engine state.
type Snapshot struct {
	Session               SessionType
	RemainingSeconds      int
	TotalSeconds          int
	Running               bool
	CompletedWorkSessions int
}

// FormattedTime renders the remaining time as MM:SS.
func (snapshot Snapshot) FormattedTime() string {
	return FormatSeconds(snapshot.RemainingSeconds)
}

// ProgressFraction returns the elapsed share of the session in [0, 1].
func (snapshot Snapshot) ProgressFraction() float64 {
	if snapshot.TotalSeconds <= 0 {
		return 0
	}
	return float64(snapshot.TotalSeconds-snapshot.RemainingSeconds) / float64(snapshot.TotalSeconds)
}

// DisplayLabel returns "Focus" for work sessions and the session name otherwise.
func (snapshot Snapshot) DisplayLabel() string {
	return snapshot.Session.Label()
}

// FormatSeconds renders seconds as zero padded MM:SS. Minutes do not roll over into hours.
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
