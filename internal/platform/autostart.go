package platform

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	errEmptyAppName  = errors.New("app name is empty")
	errEmptyExecPath = errors.New("exec path is empty")
)

// Service defines OS-specific helpers needed by the application.
type Service interface {
	GetConfigDir() (string, error)
	EnableAutostart(appName, execPath string) error
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

// ApplyAutostart enables or disables launching the current executable at login.
func ApplyAutostart(service Service, appName string, enabled bool) error {
	if !enabled {
		return service.DisableAutostart(appName)
	}
	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}
	return service.EnableAutostart(appName, execPath)
}

func validateAutostart(appName, execPath string, needExec bool) error {
	if strings.TrimSpace(appName) == "" {
		return errEmptyAppName
	}
	if needExec && strings.TrimSpace(execPath) == "" {
		return errEmptyExecPath
	}
	return nil
}

// autostartSlug turns an app name into a lowercase, dash-separated id.
func autostartSlug(appName string) string {
	name := strings.ToLower(strings.TrimSpace(appName))
	if name == "" {
		return "pomodoro"
	}
	return strings.Join(strings.Fields(name), "-")
}
