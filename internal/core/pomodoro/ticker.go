package pomodoro

import (
	"sync"
	"time"
)

// Ticker is the periodic signal source driving the engine.
//
// Arm must not double-arm: a second Arm while armed is ignored. Implementations
// deliver at most one pending tick and never call onTick while holding a lock
// that Arm or Disarm would need.
type Ticker interface {
	Arm(onTick func())
	Disarm()
	Stop()
}

// ClockTicker fires onTick once per period of wall-clock time.
// The next tick is scheduled only after the previous handler returns,
// so it does not compensate for drift.
type ClockTicker struct {
	mu         sync.Mutex
	period     time.Duration
	timer      *time.Timer
	onTick     func()
	generation uint64
	stopped    bool
}

// NewClockTicker creates a ticker with the given period, defaulting to one second.
func NewClockTicker(period time.Duration) *ClockTicker {
	if period <= 0 {
		period = time.Second
	}
	return &ClockTicker{period: period}
}

// Arm starts delivering ticks to onTick.
func (ticker *ClockTicker) Arm(onTick func()) {
	if onTick == nil {
		return
	}
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	if ticker.stopped || ticker.onTick != nil {
		return
	}
	ticker.onTick = onTick
	ticker.generation++
	ticker.scheduleLocked(ticker.generation)
}

// Disarm cancels the pending tick. A handler already running is allowed to
// finish but is not rescheduled.
func (ticker *ClockTicker) Disarm() {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	ticker.disarmLocked()
}

// Stop disarms the ticker permanently.
func (ticker *ClockTicker) Stop() {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	ticker.disarmLocked()
	ticker.stopped = true
}

// Armed reports whether ticks are being delivered.
func (ticker *ClockTicker) Armed() bool {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	return ticker.onTick != nil
}

func (ticker *ClockTicker) fire(generation uint64) {
	ticker.mu.Lock()
	if ticker.generation != generation || ticker.onTick == nil {
		ticker.mu.Unlock()
		return
	}
	onTick := ticker.onTick
	ticker.mu.Unlock()

	onTick()

	ticker.mu.Lock()
	if ticker.generation == generation && ticker.onTick != nil && !ticker.stopped {
		ticker.scheduleLocked(generation)
	}
	ticker.mu.Unlock()
}

func (ticker *ClockTicker) scheduleLocked(generation uint64) {
	ticker.timer = time.AfterFunc(ticker.period, func() {
		ticker.fire(generation)
	})
}

func (ticker *ClockTicker) disarmLocked() {
	ticker.generation++
	ticker.onTick = nil
	if ticker.timer != nil {
		ticker.timer.Stop()
		ticker.timer = nil
	}
}

// ManualTicker delivers ticks only when Fire is called. It backs step-driven
// bindings and tests.
type ManualTicker struct {
	mu       sync.Mutex
	onTick   func()
	armCount int
	stopped  bool
}

// NewManualTicker creates a disarmed manual ticker.
func NewManualTicker() *ManualTicker {
	return &ManualTicker{}
}

// Arm registers the tick handler.
func (ticker *ManualTicker) Arm(onTick func()) {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	if ticker.stopped || ticker.onTick != nil || onTick == nil {
		return
	}
	ticker.onTick = onTick
	ticker.armCount++
}

// Disarm drops the tick handler.
func (ticker *ManualTicker) Disarm() {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	ticker.onTick = nil
}

// Stop disarms the ticker permanently.
func (ticker *ManualTicker) Stop() {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	ticker.onTick = nil
	ticker.stopped = true
}

// Armed reports whether a handler is registered.
func (ticker *ManualTicker) Armed() bool {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	return ticker.onTick != nil
}

// ArmCount returns how many times the ticker went from disarmed to armed.
func (ticker *ManualTicker) ArmCount() int {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	return ticker.armCount
}

// Fire delivers one tick and reports whether the ticker was armed.
func (ticker *ManualTicker) Fire() bool {
	ticker.mu.Lock()
	onTick := ticker.onTick
	ticker.mu.Unlock()
	if onTick == nil {
		return false
	}
	onTick()
	return true
}

// FireN delivers up to n ticks, stopping early once disarmed. It returns the
// number of ticks delivered.
func (ticker *ManualTicker) FireN(n int) int {
	fired := 0
	for fired < n && ticker.Fire() {
		fired++
	}
	return fired
}
