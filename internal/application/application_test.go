package application

import (
	"path/filepath"
	"testing"
)

func TestDataDirectory(t *testing.T) {
	t.Run("xdg data home", func(t *testing.T) {
		base := t.TempDir()
		t.Setenv("XDG_DATA_HOME", base)

		dir, err := DataDirectory()
		if err != nil {
			t.Fatalf("DataDirectory() error = %v", err)
		}

		if want := filepath.Join(base, AppName); dir != want {
			t.Errorf("DataDirectory() = %q, want %q", dir, want)
		}
	})

	t.Run("user config dir", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "")

		dir, err := DataDirectory()
		if err != nil {
			t.Skipf("no user config directory: %v", err)
		}

		if filepath.Base(dir) != AppName {
			t.Errorf("DataDirectory() = %q, want a %q directory", dir, AppName)
		}
	})
}
