package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadEnvFile(t *testing.T) {
	t.Run("missing files are ignored", func(t *testing.T) {
		buf := new(bytes.Buffer)
		loadEnvFile(getLoggerTo(buf, "warn"), filepath.Join(t.TempDir(), ".env"))
		if buf.Len() != 0 {
			t.Errorf("expected no logs, got %s", buf.String())
		}
	})
	t.Run("unreadable files are logged at warn level", func(t *testing.T) {
		buf := new(bytes.Buffer)
		// A directory can be opened, but not read.
		loadEnvFile(getLoggerTo(buf, "warn"), t.TempDir())
		if !strings.Contains(buf.String(), "failed to load .env file") {
			t.Errorf("expected a warning, got %q", buf.String())
		}
	})
	t.Run("values are loaded", func(t *testing.T) {
		name := filepath.Join(t.TempDir(), ".env")
		if err := os.WriteFile(name, []byte("LAW_BUDDY_TEST_VALUE=loaded\n"), 0o644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
		t.Cleanup(func() { os.Unsetenv("LAW_BUDDY_TEST_VALUE") })
		loadEnvFile(getLoggerTo(new(bytes.Buffer), "warn"), name)
		if actual := os.Getenv("LAW_BUDDY_TEST_VALUE"); actual != "loaded" {
			t.Errorf("expected %q, got %q", "loaded", actual)
		}
	})
}
