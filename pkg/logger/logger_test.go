package logger

import (
	"os"
	"path/filepath"
	"testing"

	"course_hub_backend/internal/config"

	"go.uber.org/zap"
)

func TestParseLevelFollowsServerMode(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Mode = "debug"
	if parseLevel(cfg) != zap.DebugLevel {
		t.Fatal("debug mode should enable debug logging")
	}

	cfg.Server.Mode = "release"
	if parseLevel(cfg) != zap.InfoLevel {
		t.Fatal("release mode should default to info")
	}
}

func TestParseLevelExplicitOverride(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Mode = "debug"
	cfg.Log.Level = "warn"
	if parseLevel(cfg) != zap.WarnLevel {
		t.Fatal("configured level must win over server mode")
	}

	cfg.Log.Level = "nonsense"
	if parseLevel(cfg) != zap.DebugLevel {
		t.Fatal("unparseable level should fall back to mode default")
	}
}

func TestInitLoggerWritesToConfiguredDir(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.Log.Dir = dir

	InitLogger(cfg)
	Log.Info("hello")
	Log.Sync()

	if _, err := os.Stat(filepath.Join(dir, "course_hub.log")); err != nil {
		t.Fatalf("log file not created: %v", err)
	}
}
