package logger

import (
	"context"
	"testing"
)

func TestLoggerInit(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := Sync(); err != nil {
			t.Errorf("failed to sync logger: %v", err)
		}
	}()

	if Get() == nil {
		t.Fatal("logger is nil after initialization")
	}

	// Re-initialization replaces the global logger cleanly.
	if err := Init(); err != nil {
		t.Fatalf("failed to re-initialize logger: %v", err)
	}
	if Get() == nil {
		t.Fatal("logger is nil after re-initialization")
	}
}

func TestLoggerBasic(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	ctx := context.Background()
	Get().Info(ctx, "test message", String("k", "v"), Int("n", 1))
	Get().Debug(ctx, "suppressed at info level")
}

func TestLoggerNamed(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	named := Named("store")
	if named == nil {
		t.Fatal("named logger is nil")
	}
	named.Info(context.Background(), "test message")
}

func TestSetLevelString(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	for _, lvl := range []string{"debug", "info", "warn", "warning", "error", ""} {
		if err := SetLevelString(lvl); err != nil {
			t.Errorf("SetLevelString(%q) failed: %v", lvl, err)
		}
	}
	if err := SetLevelString("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}
