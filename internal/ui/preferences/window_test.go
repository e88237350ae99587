package preferences

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowSaveReportsEditedSettings(t *testing.T) {
	app := test.NewTempApp(t)
	var saved []Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) {
		saved = append(saved, settings)
	})

	test.Tap(prefs.notifications)
	test.Tap(prefs.launchAtLogin)
	prefs.handleSave()

	require.Len(t, saved, 1)
	assert.Equal(t, Settings{NotificationsEnabled: false, LaunchAtLogin: true, ConfirmSkip: false}, saved[0])
	assert.Equal(t, saved[0], prefs.Settings())
}

func TestWindowCancelRestoresSavedSettings(t *testing.T) {
	app := test.NewTempApp(t)
	prefs := New(app, DefaultSettings(), nil)

	test.Tap(prefs.confirmSkip)
	require.True(t, prefs.confirmSkip.Checked)
	prefs.handleCancel()

	assert.False(t, prefs.confirmSkip.Checked)
	assert.Equal(t, DefaultSettings(), prefs.Settings())
}

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	assert.True(t, settings.NotificationsEnabled)
	assert.False(t, settings.LaunchAtLogin)
	assert.False(t, settings.ConfirmSkip)
}
