package runner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/skeldoc/pkg/skeleton"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRun_ExtractsFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.py", "def f():\n    return 1\n\nclass A:\n    def m(self):\n        pass\n")
	writeFile(t, dir, "b.py", "x = 1\ny = 2\n")

	r := New(skeleton.NewExtractor())
	result, err := r.Run(context.Background(), Options{WorkingDir: dir})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesDiscovered != 2 {
		t.Errorf("FilesDiscovered = %d, want 2", result.Stats.FilesDiscovered)
	}
	if result.Stats.FilesProcessed != 2 {
		t.Errorf("FilesProcessed = %d, want 2", result.Stats.FilesProcessed)
	}
	if result.Stats.FilesErrored != 0 {
		t.Errorf("FilesErrored = %d, want 0", result.Stats.FilesErrored)
	}

	// a.py: f, A, A.m; b.py: x, y.
	if result.Stats.NodesTotal != 5 {
		t.Errorf("NodesTotal = %d, want 5", result.Stats.NodesTotal)
	}
	if got := result.Stats.NodesByKind["function"]; got != 2 {
		t.Errorf("functions = %d, want 2", got)
	}
	if got := result.Stats.NodesByKind["class"]; got != 1 {
		t.Errorf("classes = %d, want 1", got)
	}
	if got := result.Stats.NodesByKind["assignment"]; got != 2 {
		t.Errorf("assignments = %d, want 2", got)
	}

	// Outcomes follow discovery order.
	if len(result.Files) != 2 {
		t.Fatalf("len(Files) = %d, want 2", len(result.Files))
	}
	if filepath.Base(result.Files[0].Path) != "a.py" {
		t.Errorf("Files[0] = %s, want a.py", result.Files[0].Path)
	}
	if result.Files[0].Language != "python" {
		t.Errorf("Language = %q, want python", result.Files[0].Language)
	}
}

func TestRun_ReportsInconsistentIndentation(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.py", "def f():\n    a = 1\n  b = 2\n")
	writeFile(t, dir, "good.py", "x = 1\n")

	r := New(skeleton.NewExtractor())
	result, err := r.Run(context.Background(), Options{WorkingDir: dir})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesErrored != 1 {
		t.Errorf("FilesErrored = %d, want 1", result.Stats.FilesErrored)
	}
	if result.Stats.FilesProcessed != 1 {
		t.Errorf("FilesProcessed = %d, want 1", result.Stats.FilesProcessed)
	}
	if !result.HasErrors() {
		t.Error("HasErrors() = false, want true")
	}

	var inc *skeleton.InconsistencyError
	if !errors.As(result.Files[0].Error, &inc) {
		t.Errorf("Files[0].Error = %v, want InconsistencyError", result.Files[0].Error)
	}
}

func TestRun_SkipsNonSourceFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "script", "#!/bin/bash\necho hi\n")

	r := New(skeleton.NewExtractor())
	result, err := r.Run(context.Background(), Options{
		WorkingDir: dir,
		Paths:      []string{path},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesSkipped != 1 {
		t.Errorf("FilesSkipped = %d, want 1", result.Stats.FilesSkipped)
	}
	if result.Stats.FilesProcessed != 0 {
		t.Errorf("FilesProcessed = %d, want 0", result.Stats.FilesProcessed)
	}
}

func TestRun_EmptyDirectory(t *testing.T) {
	r := New(skeleton.NewExtractor())
	result, err := r.Run(context.Background(), Options{WorkingDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Stats.FilesDiscovered != 0 {
		t.Errorf("FilesDiscovered = %d, want 0", result.Stats.FilesDiscovered)
	}
	if len(result.Files) != 0 {
		t.Errorf("len(Files) = %d, want 0", len(result.Files))
	}
}

func TestRun_RespectsCancellation(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.py", "b.py", "c.py"} {
		writeFile(t, dir, name, "x = 1\n")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := New(skeleton.NewExtractor())
	_, err := r.Run(ctx, Options{WorkingDir: dir})
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestProcessFile_MissingFile(t *testing.T) {
	r := New(skeleton.NewExtractor())
	outcome := r.ProcessFile(context.Background(), "/nonexistent/x.py")
	if outcome.Error == nil {
		t.Fatal("expected error for missing file")
	}
}
