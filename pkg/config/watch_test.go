package config

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestWatcher_DeliversReloadedTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	if err := os.WriteFile(path, []byte("violence:\n  - how to kill someone\n"), 0644); err != nil {
		t.Fatalf("failed to write pattern file: %v", err)
	}

	tables := make(chan map[string][]string, 4)
	w, err := NewWatcher(path, nil, func(table map[string][]string) {
		tables <- table
	})
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	updated := "violence:\n  - how to kill someone\nexplosives:\n  - pipe bomb instructions\n"
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		t.Fatalf("failed to update pattern file: %v", err)
	}

	select {
	case table := <-tables:
		if len(table) != 2 {
			t.Errorf("expected 2 categories, got %d", len(table))
		}
		if len(table["explosives"]) != 1 {
			t.Errorf("expected explosives category in reloaded table, got %v", table)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcher_MalformedFileIsDropped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	if err := os.WriteFile(path, []byte("violence:\n  - how to kill someone\n"), 0644); err != nil {
		t.Fatalf("failed to write pattern file: %v", err)
	}

	var reloads atomic.Int32
	w, err := NewWatcher(path, nil, func(map[string][]string) {
		reloads.Add(1)
	})
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("violence: [broken"), 0644); err != nil {
		t.Fatalf("failed to update pattern file: %v", err)
	}

	// Give the debounced reload time to run; the parse failure must not
	// reach the callback.
	time.Sleep(500 * time.Millisecond)
	if n := reloads.Load(); n != 0 {
		t.Errorf("expected no reloads for malformed file, got %d", n)
	}
}

func TestWatcher_CloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	if err := os.WriteFile(path, []byte("a:\n  - phrase one\n"), 0644); err != nil {
		t.Fatalf("failed to write pattern file: %v", err)
	}

	w, err := NewWatcher(path, nil, func(map[string][]string) {})
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
}
