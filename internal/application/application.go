// Package application holds process-wide identifiers and the default data location.
package application

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// AppName is the application name used for directories and identification
	AppName = "fragmenta"

	// KeyringService is the OS keyring service the credential is stored under
	KeyringService = "fragmenta"

	// EnvPrefix prefixes every environment variable the application reads
	EnvPrefix = "FRAGMENTA_"
)

// Version is overridden at build time with -ldflags "-X ...application.Version=v1.2.3".
var Version = "dev"

// DataDirectory returns the default directory for the local store:
// $XDG_DATA_HOME/fragmenta when set, otherwise <UserConfigDir>/fragmenta.
func DataDirectory() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName), nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}

	return filepath.Join(base, AppName), nil
}
