//go:build linux

package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDesktopEntryQuotesArguments(t *testing.T) {
	entry := buildDesktopEntry(LoginItem{
		AppName:  "Pomodoro",
		ExecPath: "/opt/my apps/pomodoro",
		Args:     []string{HiddenFlag},
	})

	assert.Contains(t, entry, "Name=Pomodoro\n")
	assert.Contains(t, entry, `Exec="/opt/my apps/pomodoro" --hidden`+"\n")
	assert.Contains(t, entry, "X-GNOME-Autostart-enabled=true\n")
}

func TestEnableAndDisableAutostart(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	service := NewService()
	desktopFile := filepath.Join(configHome, "autostart", "pomodoro.desktop")

	require.NoError(t, service.EnableAutostart(LoginItem{AppName: "Pomodoro", ExecPath: "/usr/bin/pomodoro"}))
	raw, err := os.ReadFile(desktopFile)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Exec=/usr/bin/pomodoro\n")

	require.NoError(t, service.DisableAutostart("Pomodoro"))
	assert.NoFileExists(t, desktopFile)

	require.NoError(t, service.DisableAutostart("Pomodoro"))
}

func TestEnableAutostartRejectsEmptyItem(t *testing.T) {
	err := NewService().EnableAutostart(LoginItem{})

	assert.EqualError(t, err, "enable autostart: app name is empty")
}
