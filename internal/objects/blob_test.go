package objects

import (
	"os"
	"testing"

	"github.com/minigit/minigit/internal/core"
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

func TestPutGetBlob(t *testing.T) {
	repo := newTestRepo(t)

	content := []byte("hello minigit")
	hash, err := PutBlob(repo, content)
	if err != nil {
		t.Fatalf("PutBlob failed: %v", err)
	}
	if hash != core.Hash(content) {
		t.Errorf("PutBlob hash = %s, want %s", hash, core.Hash(content))
	}

	got, err := GetBlob(repo, hash)
	if err != nil {
		t.Fatalf("GetBlob failed: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("GetBlob content = %q, want %q", got, content)
	}

	if !HasBlob(repo, hash) {
		t.Error("HasBlob returned false for a blob just written")
	}
}

func TestPutBlobIdempotent(t *testing.T) {
	repo := newTestRepo(t)

	content := []byte("same content twice")
	hash1, err := PutBlob(repo, content)
	if err != nil {
		t.Fatal(err)
	}
	hash2, err := PutBlob(repo, content)
	if err != nil {
		t.Fatal(err)
	}
	if hash1 != hash2 {
		t.Errorf("PutBlob not idempotent: %s != %s", hash1, hash2)
	}
}

func TestGetBlobMissing(t *testing.T) {
	repo := newTestRepo(t)

	if _, err := GetBlob(repo, "deadbeef"); err == nil {
		t.Error("expected error reading a nonexistent blob")
	}
}

func TestBlobStoresRawContent(t *testing.T) {
	repo := newTestRepo(t)

	content := []byte("line one\nline two\n")
	hash, err := PutBlob(repo, content)
	if err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(blobPath(repo, hash))
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != string(content) {
		t.Errorf("blob on disk = %q, want raw uncompressed %q", raw, content)
	}
}
