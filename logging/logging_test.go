package logging

import (
	"os"
	"strings"
	"testing"
)

func TestNewDisabledIsNop(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dir = t.TempDir()

	logger, closeFn, err := New(cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer closeFn()

	logger.Info("should go nowhere")
	if _, err := os.Stat(cfg.Path()); !os.IsNotExist(err) {
		t.Errorf("disabled logging created %s", cfg.Path())
	}
}

func TestNewWritesFile(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		t.Run(format, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Debug = true
			cfg.Format = format
			cfg.Dir = t.TempDir() + "/nested"

			logger, closeFn, err := New(cfg)
			if err != nil {
				t.Fatalf("new: %v", err)
			}
			logger.Named("session").Info("run started")
			closeFn()

			data, err := os.ReadFile(cfg.Path())
			if err != nil {
				t.Fatalf("read log: %v", err)
			}
			out := string(data)
			if !strings.Contains(out, "run started") || !strings.Contains(out, "session") {
				t.Errorf("log file missing entry: %q", out)
			}
		})
	}
}

func TestNewRespectsLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Debug = true
	cfg.Level = "warn"
	cfg.Dir = t.TempDir()

	logger, closeFn, err := New(cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Info("quiet")
	logger.Warn("loud")
	closeFn()

	data, _ := os.ReadFile(cfg.Path())
	if strings.Contains(string(data), "quiet") || !strings.Contains(string(data), "loud") {
		t.Errorf("level filter not applied: %q", data)
	}
}
