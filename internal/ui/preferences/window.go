package preferences

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window        fyne.Window
	settings      Settings
	onSave        func(Settings)
	notifications *widget.Check
	launchAtLogin *widget.Check
	confirmSkip   *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Pomodoro Settings")

	prefs := &Window{
		window:        window,
		onSave:        onSave,
		notifications: widget.NewCheck("Show a notification when a session ends", nil),
		launchAtLogin: widget.NewCheck("Launch at login", nil),
		confirmSkip:   widget.NewCheck("Ask before skipping a session", nil),
	}
	prefs.UpdateSettings(settings)

	form := container.NewVBox(
		widget.NewLabelWithStyle("General", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.notifications,
		prefs.confirmSkip,
		prefs.launchAtLogin,
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	saveButton.Importance = widget.HighImportance
	cancelButton := widget.NewButton("Cancel", prefs.handleCancel)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewPadded(container.NewBorder(nil, buttons, nil, nil, form)))
	window.Resize(fyne.NewSize(360, 200))
	window.SetCloseIntercept(prefs.handleCancel)

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// Settings returns the last saved settings.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.notifications.SetChecked(settings.NotificationsEnabled)
	prefs.launchAtLogin.SetChecked(settings.LaunchAtLogin)
	prefs.confirmSkip.SetChecked(settings.ConfirmSkip)
}

func (prefs *Window) handleSave() {
	settings := Settings{
		NotificationsEnabled: prefs.notifications.Checked,
		LaunchAtLogin:        prefs.launchAtLogin.Checked,
		ConfirmSkip:          prefs.confirmSkip.Checked,
	}

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

// handleCancel discards unsaved edits.
func (prefs *Window) handleCancel() {
	prefs.UpdateSettings(prefs.settings)
	prefs.window.Hide()
}
