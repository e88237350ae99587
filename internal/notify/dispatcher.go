package notify

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/pomodoro"
)

// ErrPermissionDenied indicates the user refused visible notifications.
var ErrPermissionDenied = errors.New("notification permission denied")

// Notifier presents alerts to the user.
type Notifier interface {
	// Authorize performs the one-time permission request.
	Authorize(ctx context.Context) (bool, error)
	Notify(ctx context.Context, message Message) error
}

// Dispatcher delivers session completions to a Notifier on its own goroutine.
// Delivery failures are logged and never reach the engine.
type Dispatcher struct {
	notifier Notifier
	schedule model.Schedule
	logger   *zap.Logger
	queue    chan pomodoro.Completion

	mu         sync.Mutex
	enabled    bool
	authorized bool
	started    bool
	cancel     context.CancelFunc
	done       chan struct{}
}

// NewDispatcher creates a stopped dispatcher. Call Start to authorize and begin delivery.
func NewDispatcher(notifier Notifier, schedule model.Schedule, logger *zap.Logger, queueSize int) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if queueSize <= 0 {
		queueSize = 8
	}
	return &Dispatcher{
		notifier: notifier,
		schedule: schedule,
		logger:   logger,
		queue:    make(chan pomodoro.Completion, queueSize),
		enabled:  true,
		done:     make(chan struct{}),
	}
}

// Start requests permission once and then delivers queued completions until Stop.
func (dispatcher *Dispatcher) Start(ctx context.Context) {
	dispatcher.mu.Lock()
	if dispatcher.started {
		dispatcher.mu.Unlock()
		return
	}
	dispatcher.started = true
	ctx, dispatcher.cancel = context.WithCancel(ctx)
	dispatcher.mu.Unlock()

	go dispatcher.run(ctx)
}

// Stop delivers what is already queued, then waits for the worker to exit.
func (dispatcher *Dispatcher) Stop() {
	dispatcher.mu.Lock()
	if !dispatcher.started || dispatcher.cancel == nil {
		dispatcher.mu.Unlock()
		return
	}
	cancel := dispatcher.cancel
	dispatcher.cancel = nil
	dispatcher.mu.Unlock()

	cancel()
	<-dispatcher.done
}

// SetEnabled toggles visible notifications without touching the engine.
func (dispatcher *Dispatcher) SetEnabled(enabled bool) {
	dispatcher.mu.Lock()
	defer dispatcher.mu.Unlock()
	dispatcher.enabled = enabled
}

// Authorized reports whether the permission request succeeded.
func (dispatcher *Dispatcher) Authorized() bool {
	dispatcher.mu.Lock()
	defer dispatcher.mu.Unlock()
	return dispatcher.authorized
}

// SessionCompleted enqueues a completion. It never blocks; a full queue drops the alert.
func (dispatcher *Dispatcher) SessionCompleted(completion pomodoro.Completion) {
	select {
	case dispatcher.queue <- completion:
	default:
		dispatcher.logger.Warn("notification queue full, dropping alert",
			zap.String("finished", string(completion.Finished)))
	}
}

func (dispatcher *Dispatcher) run(ctx context.Context) {
	defer close(dispatcher.done)

	// ctx only signals Stop; queued alerts are still delivered after it.
	deliveryCtx := context.WithoutCancel(ctx)
	dispatcher.authorize(deliveryCtx)

	for {
		select {
		case completion := <-dispatcher.queue:
			dispatcher.deliver(deliveryCtx, completion)
		case <-ctx.Done():
			dispatcher.drain(deliveryCtx)
			return
		}
	}
}

func (dispatcher *Dispatcher) drain(ctx context.Context) {
	for {
		select {
		case completion := <-dispatcher.queue:
			dispatcher.deliver(ctx, completion)
		default:
			return
		}
	}
}

func (dispatcher *Dispatcher) authorize(ctx context.Context) {
	granted, err := dispatcher.safeAuthorize(ctx)
	if err == nil && !granted {
		err = ErrPermissionDenied
	}
	if err != nil {
		dispatcher.logger.Warn("notifications unavailable", zap.Error(err))
	} else {
		dispatcher.logger.Info("notification permission granted")
	}

	dispatcher.mu.Lock()
	dispatcher.authorized = err == nil
	dispatcher.mu.Unlock()
}

func (dispatcher *Dispatcher) safeAuthorize(ctx context.Context) (granted bool, err error) {
	if dispatcher.notifier == nil {
		return false, errors.New("no notifier configured")
	}
	defer func() {
		if recovered := recover(); recovered != nil {
			granted = false
			err = errors.New("notifier panicked during authorization")
		}
	}()
	return dispatcher.notifier.Authorize(ctx)
}

func (dispatcher *Dispatcher) deliver(ctx context.Context, completion pomodoro.Completion) {
	dispatcher.mu.Lock()
	enabled, authorized := dispatcher.enabled, dispatcher.authorized
	dispatcher.mu.Unlock()

	message := MessageFor(dispatcher.schedule, completion)
	if !enabled || !authorized {
		dispatcher.logger.Debug("notification suppressed",
			zap.String("title", message.Title),
			zap.Bool("enabled", enabled),
			zap.Bool("authorized", authorized))
		return
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			dispatcher.logger.Error("notifier panicked", zap.Any("panic", recovered))
		}
	}()
	if err := dispatcher.notifier.Notify(ctx, message); err != nil {
		dispatcher.logger.Warn("deliver notification",
			zap.String("title", message.Title),
			zap.Error(err))
	}
}
