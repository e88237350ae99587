package pomodoro

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"pomodoro/internal/core/model"
)

// CompletionSink receives finished sessions. Implementations must return
// quickly; the engine calls it outside its lock.
type CompletionSink interface {
	SessionCompleted(completion Completion)
}

// Options contains collaborators for Engine. Zero values get defaults.
type Options struct {
	Ticker   Ticker
	Notifier CompletionSink
	Logger   *zap.Logger
}

// Engine is the Pomodoro state machine. All mutations are serialized through mu.
type Engine struct {
	mu            sync.Mutex
	schedule      model.Schedule
	ticker        Ticker
	notifier      CompletionSink
	logger        *zap.Logger
	session       SessionType
	remaining     int
	total         int
	running       bool
	completedWork int
	events        []chan Event
	closed        bool
}

// New creates an engine at the start of a work session, paused.
func New(schedule model.Schedule, options Options) *Engine {
	if options.Ticker == nil {
		options.Ticker = NewClockTicker(time.Second)
	}
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}

	engine := &Engine{
		schedule: schedule.Normalized(),
		ticker:   options.Ticker,
		notifier: options.Notifier,
		logger:   options.Logger,
		session:  SessionWork,
	}
	engine.total = engine.nominalSeconds(SessionWork)
	engine.remaining = engine.total
	return engine
}

// Schedule returns the durations the engine runs with.
func (engine *Engine) Schedule() model.Schedule {
	return engine.schedule
}

// Subscribe registers a new observer channel. Slow observers miss events
// rather than block the engine.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		close(ch)
		return ch
	}
	engine.events = append(engine.events, ch)
	return ch
}

// Start begins counting down the current session. It is a no-op while running.
func (engine *Engine) Start() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.running || engine.closed {
		return
	}
	engine.total = engine.nominalSeconds(engine.session)
	if engine.remaining > engine.total {
		engine.remaining = engine.total
	}
	engine.running = true
	engine.ticker.Arm(engine.Tick)
	engine.logger.Debug("session started",
		zap.String("session", string(engine.session)),
		zap.Int("remaining", engine.remaining))
	engine.emitStateLocked()
}

// Pause stops the countdown. Calling it while paused only ensures the ticker is disarmed.
func (engine *Engine) Pause() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	wasRunning := engine.running
	engine.pauseLocked()
	if wasRunning {
		engine.emitStateLocked()
	}
}

// Reset pauses and restores the full duration of the current session.
func (engine *Engine) Reset() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		return
	}
	engine.pauseLocked()
	engine.total = engine.nominalSeconds(engine.session)
	engine.remaining = engine.total
	engine.emitStateLocked()
}

// Skip pauses and completes the current session immediately.
func (engine *Engine) Skip() {
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return
	}
	engine.pauseLocked()
	completion := engine.completeLocked()
	engine.mu.Unlock()

	engine.notify(completion)
}

// Tick advances the countdown by one second. Ticks arriving while paused are ignored.
func (engine *Engine) Tick() {
	engine.mu.Lock()
	if !engine.running {
		engine.mu.Unlock()
		return
	}
	if engine.remaining > 0 {
		engine.remaining--
		engine.emitStateLocked()
		engine.mu.Unlock()
		return
	}
	completion := engine.completeLocked()
	engine.mu.Unlock()

	engine.notify(completion)
}

// Close disarms the ticker for good and closes all observer channels.
func (engine *Engine) Close() {
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return
	}
	engine.closed = true
	engine.running = false
	engine.ticker.Stop()
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Snapshot returns a copy of the current state.
func (engine *Engine) Snapshot() Snapshot {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.snapshotLocked()
}

// Session returns the session currently counting down.
func (engine *Engine) Session() SessionType {
	return engine.Snapshot().Session
}

// RemainingSeconds returns the countdown value.
func (engine *Engine) RemainingSeconds() int {
	return engine.Snapshot().RemainingSeconds
}

// IsRunning reports whether the clock is ticking.
func (engine *Engine) IsRunning() bool {
	return engine.Snapshot().Running
}

// CompletedWorkSessions returns the number of work sessions finished this run.
func (engine *Engine) CompletedWorkSessions() int {
	return engine.Snapshot().CompletedWorkSessions
}

// FormattedTime returns the remaining time as MM:SS.
func (engine *Engine) FormattedTime() string {
	return engine.Snapshot().FormattedTime()
}

// ProgressFraction returns the elapsed share of the current session.
func (engine *Engine) ProgressFraction() float64 {
	return engine.Snapshot().ProgressFraction()
}

// DisplayLabel returns the label for the current session.
func (engine *Engine) DisplayLabel() string {
	return engine.Snapshot().DisplayLabel()
}

func (engine *Engine) pauseLocked() {
	engine.running = false
	engine.ticker.Disarm()
}

func (engine *Engine) completeLocked() Completion {
	engine.pauseLocked()

	finished := engine.session
	next := SessionWork
	if finished == SessionWork {
		engine.completedWork++
		if engine.completedWork%engine.schedule.LongBreakEvery == 0 {
			next = SessionLongBreak
		} else {
			next = SessionShortBreak
		}
	}

	engine.session = next
	engine.total = engine.nominalSeconds(next)
	engine.remaining = engine.total

	now := time.Now()
	completion := Completion{
		Finished:              finished,
		Next:                  next,
		CompletedWorkSessions: engine.completedWork,
		At:                    now,
	}
	engine.logger.Debug("session completed",
		zap.String("finished", string(finished)),
		zap.String("next", string(next)),
		zap.Int("completed_work_sessions", engine.completedWork))

	engine.emitLocked(Event{
		Type:       EventSessionCompleted,
		Snapshot:   engine.snapshotLocked(),
		Completion: completion,
		At:         now,
	})
	return completion
}

func (engine *Engine) notify(completion Completion) {
	if engine.notifier == nil {
		return
	}
	defer func() {
		if recovered := recover(); recovered != nil {
			engine.logger.Error("completion notifier panicked", zap.Any("panic", recovered))
		}
	}()
	engine.notifier.SessionCompleted(completion)
}

func (engine *Engine) nominalSeconds(session SessionType) int {
	var duration time.Duration
	switch session {
	case SessionShortBreak:
		duration = engine.schedule.ShortBreak
	case SessionLongBreak:
		duration = engine.schedule.LongBreak
	default:
		duration = engine.schedule.Work
	}
	return int(duration / time.Second)
}

func (engine *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		Session:               engine.session,
		RemainingSeconds:      engine.remaining,
		TotalSeconds:          engine.total,
		Running:               engine.running,
		CompletedWorkSessions: engine.completedWork,
	}
}

func (engine *Engine) emitStateLocked() {
	engine.emitLocked(Event{
		Type:     EventStateChange,
		Snapshot: engine.snapshotLocked(),
		At:       time.Now(),
	})
}

func (engine *Engine) emitLocked(event Event) {
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
}
