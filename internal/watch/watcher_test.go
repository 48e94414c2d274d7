package watch

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherDeliversWriteEvents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "project.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	changed := make(chan string, 1)
	w, err := New([]string{path}, func(p string) { changed <- p }, log.Default())
	if err != nil {
		t.Fatalf("create watcher: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	// Give the event loop a moment before mutating the file.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte(`{"name":"x"}`), 0o644); err != nil {
		t.Fatalf("rewrite fixture: %v", err)
	}

	select {
	case p := <-changed:
		if filepath.Clean(p) != filepath.Clean(path) {
			t.Fatalf("unexpected path: %s", p)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "watched.json")
	sibling := filepath.Join(dir, "sibling.json")
	for _, p := range []string{watched, sibling} {
		if err := os.WriteFile(p, []byte(`{}`), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}

	changed := make(chan string, 1)
	w, err := New([]string{watched}, func(p string) { changed <- p }, log.Default())
	if err != nil {
		t.Fatalf("create watcher: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(sibling, []byte(`{"name":"x"}`), 0o644); err != nil {
		t.Fatalf("rewrite sibling: %v", err)
	}

	select {
	case p := <-changed:
		t.Fatalf("unexpected event for %s", p)
	case <-time.After(300 * time.Millisecond):
	}
}
