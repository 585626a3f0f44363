package objects

import (
	"os"
	"testing"
)

func TestPutGetCommit(t *testing.T) {
	repo := newTestRepo(t)

	hash, err := PutBlob(repo, []byte("file content"))
	if err != nil {
		t.Fatal(err)
	}

	c := &Commit{
		Message:    "Initial commit",
		Author:     "Test Author <test@example.com>",
		Date:       "Mon Jan 2 15:04:05 2006 -0700",
		FileHashes: map[string]string{"file1.txt": hash},
	}

	id, err := PutCommit(repo, c)
	if err != nil {
		t.Fatalf("PutCommit failed: %v", err)
	}
	if id == "" {
		t.Fatal("PutCommit returned an empty id")
	}
	if c.ID != id {
		t.Errorf("c.ID = %s, want %s", c.ID, id)
	}

	got, err := GetCommit(repo, id)
	if err != nil {
		t.Fatalf("GetCommit failed: %v", err)
	}
	if got.Message != c.Message {
		t.Errorf("Message = %q, want %q", got.Message, c.Message)
	}
	if got.FileHashes["file1.txt"] != hash {
		t.Errorf("FileHashes[file1.txt] = %s, want %s", got.FileHashes["file1.txt"], hash)
	}
}

func TestCommitIDIsDeterministic(t *testing.T) {
	repo := newTestRepo(t)

	c1 := &Commit{
		Message:    "same everything",
		Author:     "A <a@example.com>",
		Date:       "Mon Jan 2 15:04:05 2006 -0700",
		FileHashes: map[string]string{"a.txt": "abc"},
	}
	c2 := &Commit{
		Message:    "same everything",
		Author:     "A <a@example.com>",
		Date:       "Mon Jan 2 15:04:05 2006 -0700",
		FileHashes: map[string]string{"a.txt": "abc"},
	}

	id1, err := PutCommit(repo, c1)
	if err != nil {
		t.Fatal(err)
	}
	id2, err := PutCommit(repo, c2)
	if err != nil {
		t.Fatal(err)
	}
	if id1 != id2 {
		t.Errorf("identical commit content hashed to different ids: %s != %s", id1, id2)
	}
}

func TestGetCommitCorrupt(t *testing.T) {
	repo := newTestRepo(t)

	c := &Commit{Message: "m", Author: "a", Date: "d", FileHashes: map[string]string{}}
	id, err := PutCommit(repo, c)
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(commitPath(repo, id), []byte(`{"id":"`+id+`","message":"tampered","author":"a","date":"d","parent_1_id":"","file_hashes":{}}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := GetCommit(repo, id); err == nil {
		t.Error("expected CorruptObjectError for a tampered commit record")
	}
}

func TestChangedPaths(t *testing.T) {
	base := &Commit{FileHashes: map[string]string{
		"a.txt": "hash-a",
		"b.txt": "hash-b",
	}}

	to := map[string]string{
		"a.txt": "hash-a",
		"b.txt": "hash-b-modified",
		"c.txt": "hash-c",
	}

	changed := ChangedPaths(base, to)
	want := []string{"b.txt", "c.txt"}
	if len(changed) != len(want) {
		t.Fatalf("ChangedPaths = %v, want %v", changed, want)
	}
	for i := range want {
		if changed[i] != want[i] {
			t.Errorf("ChangedPaths[%d] = %s, want %s", i, changed[i], want[i])
		}
	}
}

func TestChangedPathsNilFrom(t *testing.T) {
	to := map[string]string{"a.txt": "hash-a"}
	changed := ChangedPaths(nil, to)
	if len(changed) != 1 || changed[0] != "a.txt" {
		t.Errorf("ChangedPaths(nil, ...) = %v, want [a.txt]", changed)
	}
}
