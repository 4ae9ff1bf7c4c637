package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFolderReportsSettledImages(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	found := make(chan string, 10)
	ready := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		if e := folder(ctx, dir, []string{".png", ".jpg"}, func(p string) { found <- p }, ready); e != nil {
			t.Errorf("folder: %v", e)
		}
	}()

	select {
	case <-ready:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not start")
	}

	for _, name := range []string{"notes.txt", "Shot.PNG"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case got := <-found:
		if got != filepath.Join(dir, "Shot.PNG") {
			t.Fatalf("got %q", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no image reported")
	}

	// reported once, and never the text file
	select {
	case got := <-found:
		t.Fatalf("unexpected second report %q", got)
	case <-time.After(2 * Settle):
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestFolderMissingDir(t *testing.T) {
	e := Folder(context.Background(), filepath.Join(t.TempDir(), "missing"), []string{".png"}, func(string) {})
	if e == nil {
		t.Fatal("expected error for missing folder")
	}
}
