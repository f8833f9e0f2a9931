package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMakeTreeCreatesFilesAndDirectories(t *testing.T) {
	root := MakeTree(t, "a/", "a/inner.txt", "b.txt")
	info, err := os.Stat(filepath.Join(root, "a"))
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory a, got info=%v err=%v", info, err)
	}
	if _, err := os.Stat(filepath.Join(root, "a", "inner.txt")); err != nil {
		t.Fatalf("expected nested file, got %v", err)
	}
	data, err := os.ReadFile(filepath.Join(root, "b.txt"))
	if err != nil {
		t.Fatalf("expected file b.txt, got %v", err)
	}
	if string(data) != "b.txt" {
		t.Fatalf("expected file content to echo its name, got %q", data)
	}
}

func TestRepoRootFindsGoMod(t *testing.T) {
	root := RepoRoot(t)
	if _, err := os.Stat(filepath.Join(root, "go.mod")); err != nil {
		t.Fatalf("expected go.mod under %s, got %v", root, err)
	}
}
