package listing

import (
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"sort"
	"testing"

	"github.com/atomicstack/imdialog/internal/testutil"
)

func TestBuildSortsAndMarksDirectories(t *testing.T) {
	root := testutil.MakeTree(t, "b.txt", "a/", "C.md", "a.txt", "z/")
	l := Build(root)

	want := []string{UpLabel, "C.md", "a.txt", "a/", "b.txt", "z/"}
	if got := l.Displays(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if !l.HasUp() {
		t.Fatalf("expected parent entry for %s", root)
	}
	if l.Entries[3].Kind != KindDir || l.Entries[3].Name != "a" {
		t.Fatalf("expected dir entry named a, got %#v", l.Entries[3])
	}
	if l.Entries[4].Kind != KindFile || l.Entries[4].Name != "b.txt" {
		t.Fatalf("expected file entry b.txt, got %#v", l.Entries[4])
	}
}

func TestBuildOrdersByRawBytes(t *testing.T) {
	root := testutil.MakeTree(t, "é.txt", "e.txt", "Z.txt", "_x")
	got := Build(root).Displays()[1:]
	if !sort.StringsAreSorted(got) {
		t.Fatalf("expected byte-ordered displays, got %q", got)
	}
	want := []string{"Z.txt", "_x", "e.txt", "é.txt"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestBuildMissingPathIsEmpty(t *testing.T) {
	l := Build(filepath.Join(t.TempDir(), "missing"))
	if l.Len() != 0 {
		t.Fatalf("expected empty listing, got %q", l.Displays())
	}
}

func TestBuildFileIsEmpty(t *testing.T) {
	root := testutil.MakeTree(t, "file.txt")
	l := Build(filepath.Join(root, "file.txt"))
	if l.Len() != 0 {
		t.Fatalf("expected empty listing for a file, got %q", l.Displays())
	}
}

func TestBuildRootHasNoUpEntry(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("filesystem root differs on windows")
	}
	l := Build("/")
	if l.HasUp() {
		t.Fatalf("expected no parent entry at filesystem root")
	}
	for _, e := range l.Entries {
		if e.Kind == KindUp {
			t.Fatalf("unexpected up entry in root listing")
		}
	}
}

func TestBuildEmptyDirectoryOnlyHasUp(t *testing.T) {
	root := testutil.MakeTree(t, "empty/")
	l := Build(filepath.Join(root, "empty"))
	if !reflect.DeepEqual(l.Displays(), []string{UpLabel}) {
		t.Fatalf("expected only the parent entry, got %q", l.Displays())
	}
}

func TestBuildFollowsDirectorySymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	root := testutil.MakeTree(t, "real/")
	if err := os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "link")); err != nil {
		t.Skipf("symlink unsupported: %v", err)
	}
	want := []string{UpLabel, "link/", "real/"}
	if got := Build(root).Displays(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestBuildUnreadableDirectoryIsEmpty(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits not enforced")
	}
	root := testutil.MakeTree(t, "locked/", "locked/secret.txt")
	locked := filepath.Join(root, "locked")
	if err := os.Chmod(locked, 0); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })
	if l := Build(locked); l.Len() != 0 {
		t.Fatalf("expected empty listing, got %q", l.Displays())
	}
}

func TestParent(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("posix paths")
	}
	if p, ok := Parent("/tmp/a"); !ok || p != "/tmp" {
		t.Fatalf("expected /tmp, got %q ok=%v", p, ok)
	}
	if _, ok := Parent("/"); ok {
		t.Fatalf("expected no parent for /")
	}
}
