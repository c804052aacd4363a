package walk_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"wordfreq/internal/logging"
	"wordfreq/internal/walk"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestFilesVisitsEveryRegularFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "top.txt"), "top")
	writeFile(t, filepath.Join(root, "sub", "nested.txt"), "nested")
	writeFile(t, filepath.Join(root, "sub", "deeper", "leaf.txt"), "leaf")

	var visited []string
	err := walk.Files(root, logging.NewNop(), func(path string) {
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			t.Fatalf("rel %s: %v", path, relErr)
		}
		visited = append(visited, rel)
	})
	if err != nil {
		t.Fatalf("Files: %v", err)
	}

	sort.Strings(visited)
	want := []string{
		filepath.Join("sub", "deeper", "leaf.txt"),
		filepath.Join("sub", "nested.txt"),
		"top.txt",
	}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("visited %v, want %v", visited, want)
		}
	}
}

func TestFilesRejectsNonDirectoryRoot(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "plain.txt")
	writeFile(t, file, "data")

	err := walk.Files(file, logging.NewNop(), func(string) {
		t.Fatal("visit called for non-directory root")
	})
	if !errors.Is(err, walk.ErrNotDirectory) {
		t.Fatalf("err = %v, want ErrNotDirectory", err)
	}
}

func TestFilesFollowsSymlinks(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	writeFile(t, filepath.Join(outside, "linked.txt"), "linked")
	writeFile(t, filepath.Join(outside, "dir", "inner.txt"), "inner")

	if err := os.Symlink(filepath.Join(outside, "linked.txt"), filepath.Join(root, "file-link")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	if err := os.Symlink(filepath.Join(outside, "dir"), filepath.Join(root, "dir-link")); err != nil {
		t.Fatalf("symlink dir: %v", err)
	}

	var visited []string
	err := walk.Files(root, logging.NewNop(), func(path string) {
		visited = append(visited, filepath.Base(path))
	})
	if err != nil {
		t.Fatalf("Files: %v", err)
	}

	sort.Strings(visited)
	if len(visited) != 2 || visited[0] != "file-link" || visited[1] != "inner.txt" {
		t.Fatalf("visited %v, want [file-link inner.txt]", visited)
	}
}

func TestFilesWarnsAndContinuesOnBrokenSymlink(t *testing.T) {
	root := t.TempDir()
	if err := os.Symlink(filepath.Join(root, "gone"), filepath.Join(root, "dangling")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	writeFile(t, filepath.Join(root, "real.txt"), "real")

	var diag bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Output: &diag})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	var visited []string
	if err := walk.Files(root, logger, func(path string) {
		visited = append(visited, filepath.Base(path))
	}); err != nil {
		t.Fatalf("Files: %v", err)
	}

	if len(visited) != 1 || visited[0] != "real.txt" {
		t.Fatalf("visited %v, want [real.txt]", visited)
	}
	if !strings.Contains(diag.String(), "cannot resolve symlink") {
		t.Fatalf("expected symlink warning, got %q", diag.String())
	}
}

func TestFilesWarnsAndContinuesOnUnreadableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits do not bind as root")
	}
	root := t.TempDir()
	locked := filepath.Join(root, "locked")
	writeFile(t, filepath.Join(locked, "hidden.txt"), "hidden")
	writeFile(t, filepath.Join(root, "open.txt"), "open")
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	var diag bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Output: &diag})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	var visited []string
	if err := walk.Files(root, logger, func(path string) {
		visited = append(visited, filepath.Base(path))
	}); err != nil {
		t.Fatalf("Files: %v", err)
	}

	if len(visited) != 1 || visited[0] != "open.txt" {
		t.Fatalf("visited %v, want [open.txt]", visited)
	}
	if !strings.Contains(diag.String(), "cannot read directory") {
		t.Fatalf("expected directory warning, got %q", diag.String())
	}
}
