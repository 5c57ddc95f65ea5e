package gitinfo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
)

func initRepo(t *testing.T) (string, *git.Repository) {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit: %v", err)
	}
	return dir, repo
}

func commitFile(t *testing.T, repo *git.Repository, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree: %v", err)
	}
	if _, err := wt.Add(name); err != nil {
		t.Fatalf("Add: %v", err)
	}
	sig := &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()}
	if _, err := wt.Commit("add "+name, &git.CommitOptions{Author: sig}); err != nil {
		t.Fatalf("Commit: %v", err)
	}
}

func TestRepoRootFromSubdir(t *testing.T) {
	dir, repo := initRepo(t)
	commitFile(t, repo, dir, "a.txt")

	sub := filepath.Join(dir, "nested", "deep")
	if err := os.MkdirAll(sub, 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	q := New()
	root, err := q.RepoRoot(sub)
	if err != nil {
		t.Fatalf("RepoRoot: %v", err)
	}
	wantRoot, err := filepath.EvalSymlinks(dir)
	if err != nil {
		wantRoot = dir
	}
	gotRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		gotRoot = root
	}
	if gotRoot != wantRoot {
		t.Fatalf("RepoRoot=%q want %q", gotRoot, wantRoot)
	}
}

func TestRepoRootOutsideRepo(t *testing.T) {
	q := New()
	if _, err := q.RepoRoot(t.TempDir()); !errors.Is(err, ErrNotARepo) {
		t.Fatalf("err=%v want ErrNotARepo", err)
	}
}

func TestRemoteURL(t *testing.T) {
	dir, repo := initRepo(t)
	if _, err := repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{"git@x:dev/my.git"},
	}); err != nil {
		t.Fatalf("CreateRemote: %v", err)
	}

	q := New()
	url, err := q.RemoteURL(dir)
	if err != nil {
		t.Fatalf("RemoteURL: %v", err)
	}
	if url != "git@x:dev/my.git" {
		t.Fatalf("RemoteURL=%q want %q", url, "git@x:dev/my.git")
	}
}

func TestRemoteURLNoRemote(t *testing.T) {
	dir, _ := initRepo(t)
	q := New()
	if _, err := q.RemoteURL(dir); !errors.Is(err, ErrNoRemote) {
		t.Fatalf("err=%v want ErrNoRemote", err)
	}
}

func TestRemoteURLFallsBackToFirstRemote(t *testing.T) {
	dir, repo := initRepo(t)
	if _, err := repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: "upstream",
		URLs: []string{"git@x:dev/up.git"},
	}); err != nil {
		t.Fatalf("CreateRemote: %v", err)
	}

	q := New()
	url, err := q.RemoteURL(dir)
	if err != nil {
		t.Fatalf("RemoteURL: %v", err)
	}
	if url != "git@x:dev/up.git" {
		t.Fatalf("RemoteURL=%q want %q", url, "git@x:dev/up.git")
	}
}

func TestCurrentBranch(t *testing.T) {
	dir, repo := initRepo(t)
	commitFile(t, repo, dir, "a.txt")

	q := New()
	branch, err := q.CurrentBranch(dir)
	if err != nil {
		t.Fatalf("CurrentBranch: %v", err)
	}
	if branch == "" {
		t.Fatalf("CurrentBranch returned empty name")
	}
}

func TestCurrentBranchUnbornHead(t *testing.T) {
	dir, _ := initRepo(t)
	q := New()
	if _, err := q.CurrentBranch(dir); !errors.Is(err, ErrDetached) {
		t.Fatalf("err=%v want ErrDetached", err)
	}
}

func TestStubZeroValue(t *testing.T) {
	var s Stub
	if _, err := s.RepoRoot("/x"); !errors.Is(err, ErrNotARepo) {
		t.Fatalf("RepoRoot err=%v want ErrNotARepo", err)
	}
	if _, err := s.RemoteURL("/x"); !errors.Is(err, ErrNoRemote) {
		t.Fatalf("RemoteURL err=%v want ErrNoRemote", err)
	}
	if _, err := s.CurrentBranch("/x"); !errors.Is(err, ErrDetached) {
		t.Fatalf("CurrentBranch err=%v want ErrDetached", err)
	}
}
