//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

const registryRunKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`

func (service *platformService) EnableAutostart(item LoginItem) error {
	if err := item.validate(); err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}

	command := exec.Command(
		"reg", "add", registryRunKey,
		"/v", item.AppName,
		"/t", "REG_SZ",
		"/d", runCommandLine(item),
		"/f",
	)
	if output, err := command.CombinedOutput(); err != nil {
		return fmt.Errorf("enable autostart: reg add failed: %w: %s", err, strings.TrimSpace(string(output)))
	}

	return nil
}

func (service *platformService) DisableAutostart(appName string) error {
	if strings.TrimSpace(appName) == "" {
		return fmt.Errorf("disable autostart: app name is empty")
	}

	command := exec.Command("reg", "delete", registryRunKey, "/v", appName, "/f")
	if output, err := command.CombinedOutput(); err != nil {
		if strings.Contains(strings.ToLower(string(output)), "unable to find") {
			return nil
		}
		return fmt.Errorf("disable autostart: reg delete failed: %w: %s", err, strings.TrimSpace(string(output)))
	}

	return nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "AppData", "Roaming")
}

func runCommandLine(item LoginItem) string {
	parts := []string{fmt.Sprintf(`"%s"`, strings.Trim(item.ExecPath, `"`))}
	return strings.Join(append(parts, item.Args...), " ")
}
