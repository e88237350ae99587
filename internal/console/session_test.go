package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/pomodoro"
)

func newEngine(t *testing.T) (*pomodoro.Engine, *pomodoro.ManualTicker) {
	t.Helper()
	ticker := pomodoro.NewManualTicker()
	engine := pomodoro.New(model.DefaultSchedule(), pomodoro.Options{Ticker: ticker})
	t.Cleanup(engine.Close)
	return engine, ticker
}

func TestSessionSkipAndStatus(t *testing.T) {
	engine, _ := newEngine(t)
	var out bytes.Buffer

	err := New(engine, strings.NewReader("skip\nstatus\nquit\nstart\n"), &out, Config{}, nil).Run(context.Background())

	require.NoError(t, err)
	output := out.String()
	assert.Contains(t, output, helpText)
	assert.Contains(t, output, "Focus 25:00")
	assert.Contains(t, output, "Work finished, next up: Short Break")
	assert.Contains(t, output, "Short Break 05:00")
	assert.Contains(t, output, "1 pomodoro")
	assert.Equal(t, pomodoro.SessionShortBreak, engine.Session())
	assert.False(t, engine.IsRunning(), "commands after quit must not run")
}

func TestSessionEndOfInputClosesEngine(t *testing.T) {
	engine, ticker := newEngine(t)
	var out bytes.Buffer

	err := New(engine, strings.NewReader("s\n"), &out, Config{}, nil).Run(context.Background())

	require.NoError(t, err)
	assert.False(t, ticker.Armed())
	engine.Start()
	assert.False(t, engine.IsRunning())
}

func TestSessionUnknownCommand(t *testing.T) {
	engine, _ := newEngine(t)
	var out bytes.Buffer

	err := New(engine, strings.NewReader("dance\n"), &out, Config{}, nil).Run(context.Background())

	require.NoError(t, err)
	assert.Contains(t, out.String(), `unknown command "dance"`)
}

func TestSessionPrintsTicksOncePerMinute(t *testing.T) {
	engine, ticker := newEngine(t)
	input, writer := io.Pipe()
	var out bytes.Buffer

	done := make(chan error, 1)
	go func() {
		done <- New(engine, input, &out, Config{}, nil).Run(context.Background())
	}()

	_, err := io.WriteString(writer, "start\n")
	require.NoError(t, err)
	require.Eventually(t, engine.IsRunning, time.Second, time.Millisecond)
	ticker.FireN(61)
	_, err = io.WriteString(writer, "pause\nquit\n")
	require.NoError(t, err)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("session did not stop")
	}

	output := out.String()
	assert.Contains(t, output, "Focus 24:00")
	assert.NotContains(t, output, "Focus 24:30")
	assert.Contains(t, output, "Focus 23:59")
	assert.Contains(t, output, "(paused)")
}

func TestSessionStopsOnContextCancel(t *testing.T) {
	engine, _ := newEngine(t)
	input, _ := io.Pipe()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- New(engine, input, io.Discard, Config{}, nil).Run(ctx)
	}()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("session ignored cancellation")
	}
}

func TestIsTick(t *testing.T) {
	running := pomodoro.Snapshot{Session: pomodoro.SessionWork, RemainingSeconds: 100, TotalSeconds: 1500, Running: true}
	next := running
	next.RemainingSeconds = 99

	assert.True(t, isTick(running, next))
	assert.False(t, isTick(pomodoro.Snapshot{}, next))

	resumed := running
	assert.False(t, isTick(pomodoro.Snapshot{Session: pomodoro.SessionWork, RemainingSeconds: 100}, resumed))
}
