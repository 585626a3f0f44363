package core

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInit(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "minigit-test-repo-*")
	if err != nil {
		t.Fatalf("Failed to create temporary directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	repo, err := Open(tempDir)
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	expectedDirs := []string{
		filepath.Join(repo.Dir, "objects", "blobs"),
		filepath.Join(repo.Dir, "objects", "commits"),
		filepath.Join(repo.Dir, "refs", "heads"),
		filepath.Join(repo.Dir, "logs", "refs", "heads"),
	}
	for _, dir := range expectedDirs {
		if !FileExists(dir) {
			t.Errorf("expected directory %s to exist", dir)
		}
	}

	headContent, err := os.ReadFile(repo.Path("HEAD"))
	if err != nil {
		t.Fatalf("failed to read HEAD: %v", err)
	}
	if string(headContent) != "master" {
		t.Errorf("HEAD content = %q, want %q", headContent, "master")
	}
}

func TestInitAlreadyInitialized(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "minigit-test-repo-*")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tempDir)

	repo, err := Open(tempDir)
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.Init(); err != nil {
		t.Fatal(err)
	}

	err = repo.Init()
	if err != ErrAlreadyInitialized {
		t.Errorf("expected ErrAlreadyInitialized, got %v", err)
	}
}

func TestMustBeInitialized(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "minigit-test-repo-*")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tempDir)

	repo, err := Open(tempDir)
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.MustBeInitialized(); err != ErrNotInitialized {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}

	if err := repo.Init(); err != nil {
		t.Fatal(err)
	}
	if err := repo.MustBeInitialized(); err != nil {
		t.Errorf("expected nil after Init, got %v", err)
	}
}

func TestFind(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "minigit-test-find-*")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tempDir)

	root, err := Open(tempDir)
	if err != nil {
		t.Fatal(err)
	}
	if err := root.Init(); err != nil {
		t.Fatal(err)
	}

	nested := filepath.Join(tempDir, "a", "b", "c")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(oldWd)

	if err := os.Chdir(nested); err != nil {
		t.Fatal(err)
	}

	found, err := Find()
	if err != nil {
		t.Fatal(err)
	}

	resolvedRoot, _ := filepath.EvalSymlinks(tempDir)
	resolvedFound, _ := filepath.EvalSymlinks(found.Root)
	if resolvedFound != resolvedRoot {
		t.Errorf("Find() root = %s, want %s", resolvedFound, resolvedRoot)
	}
}
