package configwatcher

import (
	"testing"

	"course_hub_backend/internal/config"
)

func TestWatchConfigMissingDirReturnsError(t *testing.T) {
	err := WatchConfig("/nonexistent/dir/config.yaml", func(_ *config.Config) {})
	if err == nil {
		t.Fatal("expected an error for an unwatchable directory")
	}
}
