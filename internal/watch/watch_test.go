package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestMapOp(t *testing.T) {
	tests := []struct {
		in       fsnotify.Op
		expected Op
	}{
		{fsnotify.Create, OpCreate},
		{fsnotify.Write, OpWrite},
		{fsnotify.Remove, OpRemove},
		{fsnotify.Rename, OpRename},
		{fsnotify.Chmod, OpChmod},
		{fsnotify.Create | fsnotify.Write, OpCreate | OpWrite},
	}

	for i, tt := range tests {
		if got := mapOp(tt.in); got != tt.expected {
			t.Fatalf("tests[%d] - mapOp wrong. expected=%v, got=%v", i, tt.expected, got)
		}
	}
}

func TestOpPredicates(t *testing.T) {
	if !(OpWrite).Changed() || !(OpCreate).Changed() {
		t.Fatal("write/create not reported as changed")
	}
	if (OpChmod).Changed() {
		t.Fatal("chmod reported as changed")
	}
	if !(OpRemove).Gone() || !(OpRename).Gone() {
		t.Fatal("remove/rename not reported as gone")
	}
	if (OpWrite).Gone() {
		t.Fatal("write reported as gone")
	}
}

func TestWatcherSeesWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pattern.txt")
	if err := os.WriteFile(path, []byte("a|b\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()

	if err := w.Add(path); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := os.WriteFile(path, []byte("c|d\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev := <-w.Events():
			if ev.Op.Changed() {
				return
			}
		case err := <-w.Errors():
			t.Fatalf("watcher error: %v", err)
		case <-deadline:
			t.Fatal("no change event within deadline")
		}
	}
}
