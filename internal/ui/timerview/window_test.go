package timerview

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"pomodoro/internal/core/pomodoro"
)

// fakeController implements Controller for testing
type fakeController struct {
	calls []string
}

func (f *fakeController) Start() { f.calls = append(f.calls, "start") }
func (f *fakeController) Pause() { f.calls = append(f.calls, "pause") }
func (f *fakeController) Reset() { f.calls = append(f.calls, "reset") }
func (f *fakeController) Skip()  { f.calls = append(f.calls, "skip") }

func TestWindowUpdateRendersSnapshot(t *testing.T) {
	app := test.NewTempApp(t)
	view := New(app, &fakeController{})

	view.Update(pomodoro.Snapshot{
		Session:               pomodoro.SessionShortBreak,
		RemainingSeconds:      150,
		TotalSeconds:          300,
		Running:               true,
		CompletedWorkSessions: 3,
	})

	assert.Equal(t, "Short Break", view.label.Text)
	assert.Equal(t, breakColor, view.label.Color)
	assert.Equal(t, "02:30", view.clock.Text)
	assert.Equal(t, 0.5, view.progress.Value)
	assert.Equal(t, "Pomodoros completed: 3", view.count.Text)
	assert.Equal(t, "Pause", view.toggle.Text)
	assert.True(t, view.reset.Disabled())
}

func TestWindowToggleFollowsRunningState(t *testing.T) {
	app := test.NewTempApp(t)
	controller := &fakeController{}
	view := New(app, controller)

	test.Tap(view.toggle)
	view.Update(pomodoro.Snapshot{Session: pomodoro.SessionWork, RemainingSeconds: 1500, TotalSeconds: 1500, Running: true})
	test.Tap(view.toggle)
	view.Update(pomodoro.Snapshot{Session: pomodoro.SessionWork, RemainingSeconds: 1400, TotalSeconds: 1500})
	test.Tap(view.reset)

	assert.Equal(t, []string{"start", "pause", "reset"}, controller.calls)
	assert.Equal(t, "Start", view.toggle.Text)
	assert.False(t, view.reset.Disabled())
	assert.Equal(t, "Focus", view.label.Text)
}

func TestWindowSkip(t *testing.T) {
	app := test.NewTempApp(t)
	controller := &fakeController{}
	view := New(app, controller)

	test.Tap(view.skip)
	assert.Equal(t, []string{"skip"}, controller.calls)

	view.SetConfirmSkip(true)
	test.Tap(view.skip)
	assert.Equal(t, []string{"skip"}, controller.calls, "confirmation must be answered first")
}
