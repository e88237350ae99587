package timerview

import (
	"fmt"
	"image/color"

	"pomodoro/internal/core/pomodoro"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Controller is the command surface the window drives.
type Controller interface {
	Start()
	Pause()
	Reset()
	Skip()
}

var (
	workColor  = color.NRGBA{R: 229, G: 72, B: 77, A: 255}
	breakColor = color.NRGBA{R: 48, G: 164, B: 108, A: 255}
)

// Window shows the countdown and the Start/Pause, Reset and Skip controls.
type Window struct {
	window      fyne.Window
	controller  Controller
	label       *canvas.Text
	clock       *canvas.Text
	progress    *widget.ProgressBar
	count       *widget.Label
	toggle      *widget.Button
	reset       *widget.Button
	skip        *widget.Button
	running     bool
	confirmSkip bool
}

// New creates the timer window. Closing it hides it; the tray keeps the app alive.
func New(app fyne.App, controller Controller) *Window {
	window := app.NewWindow("Pomodoro")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	label := canvas.NewText("Focus", workColor)
	label.Alignment = fyne.TextAlignCenter
	label.TextStyle = fyne.TextStyle{Bold: true}
	label.TextSize = 22

	clock := canvas.NewText("25:00", theme.Color(theme.ColorNameForeground))
	clock.Alignment = fyne.TextAlignCenter
	clock.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	clock.TextSize = 64

	progress := widget.NewProgressBar()
	progress.TextFormatter = func() string { return "" }

	count := widget.NewLabelWithStyle("Pomodoros completed: 0", fyne.TextAlignCenter, fyne.TextStyle{})

	view := &Window{
		window:     window,
		controller: controller,
		label:      label,
		clock:      clock,
		progress:   progress,
		count:      count,
	}

	view.toggle = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), view.handleToggle)
	view.toggle.Importance = widget.HighImportance
	view.reset = widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), controller.Reset)
	view.skip = widget.NewButtonWithIcon("Skip", theme.MediaSkipNextIcon(), view.handleSkip)

	buttons := container.NewHBox(layout.NewSpacer(), view.toggle, view.reset, view.skip, layout.NewSpacer())
	content := container.NewPadded(container.NewVBox(
		label,
		clock,
		progress,
		buttons,
		count,
	))

	window.SetContent(content)
	window.Resize(fyne.NewSize(360, 320))
	window.SetFixedSize(true)
	view.SetOnClose(window.Hide)

	return view
}

// SetOnClose replaces what closing the window does. The default hides it.
func (view *Window) SetOnClose(handler func()) {
	view.window.SetCloseIntercept(handler)
}

// Show displays the timer window.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// Hide hides the timer window.
func (view *Window) Hide() {
	view.window.Hide()
}

// SetConfirmSkip enables a confirmation prompt before skipping.
func (view *Window) SetConfirmSkip(enabled bool) {
	view.confirmSkip = enabled
}

// Update renders snapshot. It must run on the UI thread.
func (view *Window) Update(snapshot pomodoro.Snapshot) {
	view.running = snapshot.Running

	view.label.Text = snapshot.DisplayLabel()
	view.label.Color = workColor
	if snapshot.Session.IsBreak() {
		view.label.Color = breakColor
	}
	view.label.Refresh()

	view.clock.Text = snapshot.FormattedTime()
	view.clock.Refresh()

	view.progress.SetValue(snapshot.ProgressFraction())
	view.count.SetText(fmt.Sprintf("Pomodoros completed: %d", snapshot.CompletedWorkSessions))

	if snapshot.Running {
		view.toggle.SetText("Pause")
		view.toggle.SetIcon(theme.MediaPauseIcon())
		view.reset.Disable()
	} else {
		view.toggle.SetText("Start")
		view.toggle.SetIcon(theme.MediaPlayIcon())
		view.reset.Enable()
	}
	view.window.SetTitle(fmt.Sprintf("%s %s", snapshot.FormattedTime(), snapshot.DisplayLabel()))
}

func (view *Window) handleToggle() {
	if view.running {
		view.controller.Pause()
		return
	}
	view.controller.Start()
}

func (view *Window) handleSkip() {
	if !view.confirmSkip {
		view.controller.Skip()
		return
	}
	dialog.ShowConfirm("Skip session", "End the current session now?", func(confirmed bool) {
		if confirmed {
			view.controller.Skip()
		}
	}, view.window)
}
