package merge

import (
	"os"
	"testing"

	"github.com/minigit/minigit/internal/core"
	"github.com/minigit/minigit/internal/objects"
)

func newTestRepo(t *testing.T) *core.Repository {
	t.Helper()
	tempDir, err := os.MkdirTemp("", "minigit-test-*")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	repo, err := core.Open(tempDir)
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.Init(); err != nil {
		t.Fatal(err)
	}
	return repo
}

func putCommit(t *testing.T, repo *core.Repository, message, parent1, parent2 string, files map[string]string) string {
	t.Helper()
	c := &objects.Commit{
		Message:    message,
		Author:     "Test <test@example.com>",
		Date:       "Mon Jan 2 15:04:05 2006 -0700",
		Parent1ID:  parent1,
		Parent2ID:  parent2,
		FileHashes: files,
	}
	id, err := objects.PutCommit(repo, c)
	if err != nil {
		t.Fatal(err)
	}
	return id
}

func TestFindMergeBaseLinearHistory(t *testing.T) {
	repo := newTestRepo(t)

	c1 := putCommit(t, repo, "c1", "", "", nil)
	c2 := putCommit(t, repo, "c2", c1, "", nil)
	c3 := putCommit(t, repo, "c3", c2, "", nil)

	base, err := FindMergeBase(repo, c3, c1)
	if err != nil {
		t.Fatal(err)
	}
	if base != c1 {
		t.Errorf("FindMergeBase = %s, want %s", base, c1)
	}
}

func TestFindMergeBaseDivergentHistory(t *testing.T) {
	repo := newTestRepo(t)

	base := putCommit(t, repo, "base", "", "", nil)
	left := putCommit(t, repo, "left", base, "", nil)
	right := putCommit(t, repo, "right", base, "", nil)

	found, err := FindMergeBase(repo, left, right)
	if err != nil {
		t.Fatal(err)
	}
	if found != base {
		t.Errorf("FindMergeBase = %s, want %s", found, base)
	}
}

func TestIsAncestor(t *testing.T) {
	repo := newTestRepo(t)

	c1 := putCommit(t, repo, "c1", "", "", nil)
	c2 := putCommit(t, repo, "c2", c1, "", nil)

	ok, err := IsAncestor(repo, c2, c1)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("expected c1 to be an ancestor of c2")
	}

	ok, err = IsAncestor(repo, c1, c2)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("c2 should not be an ancestor of c1")
	}
}

func TestThreeWayNoConflict(t *testing.T) {
	repo := newTestRepo(t)

	hashA, err := objects.PutBlob(repo, []byte("base content a"))
	if err != nil {
		t.Fatal(err)
	}
	hashB, err := objects.PutBlob(repo, []byte("base content b"))
	if err != nil {
		t.Fatal(err)
	}
	oursChangedB, err := objects.PutBlob(repo, []byte("ours changed b"))
	if err != nil {
		t.Fatal(err)
	}

	base := map[string]string{"a.txt": hashA, "b.txt": hashB}
	ours := map[string]string{"a.txt": hashA, "b.txt": oursChangedB}
	theirs := map[string]string{"a.txt": hashA, "b.txt": hashB}

	result, err := ThreeWay(repo, base, ours, theirs)
	if err != nil {
		t.Fatal(err)
	}
	if result.HasConflicts() {
		t.Fatalf("unexpected conflicts: %v", result.ConflictPaths())
	}
	if result.Merged["b.txt"] != oursChangedB {
		t.Errorf("Merged[b.txt] = %s, want %s (only ours changed it)", result.Merged["b.txt"], oursChangedB)
	}
}

func TestThreeWayConflict(t *testing.T) {
	repo := newTestRepo(t)

	hashBase, err := objects.PutBlob(repo, []byte("base"))
	if err != nil {
		t.Fatal(err)
	}
	hashOurs, err := objects.PutBlob(repo, []byte("ours"))
	if err != nil {
		t.Fatal(err)
	}
	hashTheirs, err := objects.PutBlob(repo, []byte("theirs"))
	if err != nil {
		t.Fatal(err)
	}

	base := map[string]string{"c.txt": hashBase}
	ours := map[string]string{"c.txt": hashOurs}
	theirs := map[string]string{"c.txt": hashTheirs}

	result, err := ThreeWay(repo, base, ours, theirs)
	if err != nil {
		t.Fatal(err)
	}
	if !result.HasConflicts() {
		t.Fatal("expected a conflict when both sides changed the same path differently")
	}

	want := "<<<<<<< HEAD\nours\n=======\ntheirs\n>>>>>>> MERGE\n"
	if string(result.Conflicts["c.txt"]) != want {
		t.Errorf("conflict marker = %q, want %q", result.Conflicts["c.txt"], want)
	}
}

func TestMergeHeadRoundTrip(t *testing.T) {
	repo := newTestRepo(t)

	if InProgress(repo) {
		t.Fatal("InProgress true before any conflicted merge")
	}

	h := Head{OtherCommitID: "abc123", SourceBranch: "feature"}
	if err := WriteHead(repo, h); err != nil {
		t.Fatal(err)
	}
	if !InProgress(repo) {
		t.Fatal("InProgress false after WriteHead")
	}

	got, err := ReadHead(repo)
	if err != nil {
		t.Fatal(err)
	}
	if got != h {
		t.Errorf("ReadHead() = %+v, want %+v", got, h)
	}

	if err := ClearHead(repo); err != nil {
		t.Fatal(err)
	}
	if InProgress(repo) {
		t.Fatal("InProgress true after ClearHead")
	}
}
