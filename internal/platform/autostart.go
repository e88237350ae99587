package platform

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// HiddenFlag is passed to login items so the app starts in the tray.
const HiddenFlag = "--hidden"

// LoginItem describes the command started when the user logs in.
type LoginItem struct {
	AppName  string
	ExecPath string
	Args     []string
}

func (item LoginItem) validate() error {
	if strings.TrimSpace(item.AppName) == "" {
		return errors.New("app name is empty")
	}
	if item.ExecPath == "" {
		return errors.New("exec path is empty")
	}
	return nil
}

// Service defines OS-specific helpers needed by the application.
type Service interface {
	GetConfigDir() (string, error)
	EnableAutostart(item LoginItem) error
	DisableAutostart(appName string) error
}

type platformService struct{}

// NewService returns a platform-specific implementation.
func NewService() Service {
	return &platformService{}
}

// GetConfigDir returns the OS-standard configuration directory.
func (service *platformService) GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}

	return fallbackConfigDir(homeDir), nil
}

// SyncAutostart makes the login item match the launch-at-login preference.
// Enabled items start the current executable hidden in the tray.
func SyncAutostart(service Service, appName string, enabled bool) error {
	if !enabled {
		return service.DisableAutostart(appName)
	}
	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("sync autostart: resolve executable: %w", err)
	}
	return service.EnableAutostart(LoginItem{
		AppName:  appName,
		ExecPath: execPath,
		Args:     []string{HiddenFlag},
	})
}

func slugName(appName string) string {
	name := strings.TrimSpace(appName)
	if name == "" {
		name = "pomodoro"
	}
	name = strings.ToLower(name)
	return strings.ReplaceAll(name, " ", "-")
}
