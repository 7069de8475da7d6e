package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/skeldoc/pkg/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("writes new file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.md")
		content := []byte("# skeleton\n")

		ctx := context.Background()
		if err := fsutil.WriteAtomic(ctx, path, content, 0); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("content = %q, want %q", got, content)
		}

		stat, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if stat.Mode() != fsutil.DefaultFileMode {
			t.Errorf("mode = %o, want %o", stat.Mode(), fsutil.DefaultFileMode)
		}
	})

	t.Run("replaces existing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.md")

		if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		ctx := context.Background()
		if err := fsutil.WriteAtomic(ctx, path, []byte("new"), 0644); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != "new" {
			t.Errorf("content = %q, want %q", got, "new")
		}
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.md")

		ctx := context.Background()
		if err := fsutil.WriteAtomic(ctx, path, []byte("content"), 0); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("read dir: %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("dir has %d entries, want 1", len(entries))
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := fsutil.WriteAtomic(ctx, "anypath", []byte("content"), 0)
		if err == nil {
			t.Fatal("expected error for cancelled context")
		}
	})
}

func TestWriteAtomicIfChanged(t *testing.T) {
	t.Parallel()

	t.Run("writes when file is missing", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.md")

		ctx := context.Background()
		written, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte("content"), 0)
		if err != nil {
			t.Fatalf("WriteAtomicIfChanged() error = %v", err)
		}
		if !written {
			t.Error("expected write for missing file")
		}
	})

	t.Run("skips when content is identical", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.md")

		if err := os.WriteFile(path, []byte("same"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		ctx := context.Background()
		written, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte("same"), 0644)
		if err != nil {
			t.Fatalf("WriteAtomicIfChanged() error = %v", err)
		}
		if written {
			t.Error("expected skip for identical content")
		}
	})

	t.Run("writes when content differs", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.md")

		if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		ctx := context.Background()
		written, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte("new"), 0644)
		if err != nil {
			t.Fatalf("WriteAtomicIfChanged() error = %v", err)
		}
		if !written {
			t.Error("expected write for changed content")
		}
	})
}
