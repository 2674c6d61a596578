package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/saijayin/agenda/internal/config"
)

func TestOpenStoreUsesConfiguredBackend(t *testing.T) {
	// Cannot use t.Parallel() - modifies HOME env var
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	st, closeStore, err := openStore()
	if err != nil {
		t.Fatalf("openStore failed: %v", err)
	}
	defer closeStore()

	// The default file backend roots its data under the home dir.
	dataDir := filepath.Join(tmpHome, ".agenda", "data")
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Errorf("Expected data directory %s to exist", dataDir)
	}

	if st.Len() != 0 {
		t.Errorf("Expected an empty store, got %d task(s)", st.Len())
	}
	if st.WeekAnchor() == "" {
		t.Error("Expected a default week anchor")
	}
}

func TestOpenBackendRejectsUnknown(t *testing.T) {
	t.Parallel()
	cfg := config.DefaultConfig()
	cfg.Storage.Backend = "redis"

	if _, err := openBackend(cfg); err == nil {
		t.Error("Expected an error for an unknown backend")
	}
}

func TestResolveWeekSnapsFlag(t *testing.T) {
	// Cannot use t.Parallel() - modifies HOME env var
	t.Setenv("HOME", t.TempDir())

	st, closeStore, err := openStore()
	if err != nil {
		t.Fatalf("openStore failed: %v", err)
	}
	defer closeStore()

	// 2024-06-13 is a Thursday; the anchor snaps to its Monday.
	got, err := resolveWeek(st, "2024-06-13")
	if err != nil {
		t.Fatalf("resolveWeek failed: %v", err)
	}
	if got != "2024-06-10" {
		t.Errorf("resolveWeek = %q, want 2024-06-10", got)
	}

	// Empty flag falls back to the store's selected week.
	got, err = resolveWeek(st, "")
	if err != nil {
		t.Fatalf("resolveWeek failed: %v", err)
	}
	if got != st.WeekAnchor() {
		t.Errorf("resolveWeek = %q, want the store anchor %q", got, st.WeekAnchor())
	}
}
