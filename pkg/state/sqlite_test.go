package state

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "companion.db")
	ctx := context.Background()

	store, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}

	if value, err := store.Get(ctx, "step_20261019"); err != nil || value != 0 {
		t.Errorf("Get(missing) = %d, %v; expected 0, nil", value, err)
	}

	if err := store.Set(ctx, "step_20261019", 1000); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Set(ctx, "step_20261019", 1050); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}

	if value, err := store.Get(ctx, "step_20261019"); err != nil || value != 1050 {
		t.Errorf("Get() = %d, %v; expected 1050, nil", value, err)
	}

	if err := store.Ping(ctx); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// Values survive a reopen
	reopened, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()

	if value, err := reopened.Get(ctx, "step_20261019"); err != nil || value != 1050 {
		t.Errorf("Get() after reopen = %d, %v; expected 1050, nil", value, err)
	}
}
