package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"pomodoro/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

// Missing keys keep their defaults, so every field is a pointer.
type yamlSettings struct {
	NotificationsEnabled *bool `yaml:"notifications_enabled,omitempty"`
	LaunchAtLogin        *bool `yaml:"launch_at_login,omitempty"`
	ConfirmSkip          *bool `yaml:"confirm_skip,omitempty"`
}

// LoadSettings reads user preferences for appName from the user config directory.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// SaveSettings writes user preferences for appName to the user config directory.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// LoadSettingsFile reads preferences from configPath. Defaults are returned
// alongside any error.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettingsFile writes preferences to configPath, creating parent directories.
func SaveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		NotificationsEnabled: boolPtr(settings.NotificationsEnabled),
		LaunchAtLogin:        boolPtr(settings.LaunchAtLogin),
		ConfirmSkip:          boolPtr(settings.ConfirmSkip),
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// SettingsPath returns where preferences for appName are stored.
func SettingsPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *fileData.NotificationsEnabled
	}
	if fileData.LaunchAtLogin != nil {
		settings.LaunchAtLogin = *fileData.LaunchAtLogin
	}
	if fileData.ConfirmSkip != nil {
		settings.ConfirmSkip = *fileData.ConfirmSkip
	}
}

func boolPtr(value bool) *bool {
	return &value
}
