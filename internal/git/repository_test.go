package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

func newGoGitRepo(t *testing.T) (string, *gogit.Worktree) {
	t.Helper()
	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree: %v", err)
	}
	return dir, wt
}

func commitFile(t *testing.T, dir string, wt *gogit.Worktree, rel, content, msg string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, rel), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := wt.Add(rel); err != nil {
		t.Fatalf("Add: %v", err)
	}
	sig := &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()}
	if _, err := wt.Commit(msg, &gogit.CommitOptions{Author: sig, Committer: sig}); err != nil {
		t.Fatalf("Commit: %v", err)
	}
}

func TestRepository_PreviousCommitMessage(t *testing.T) {
	dir, wt := newGoGitRepo(t)

	repo, err := OpenRepository(dir)
	if err != nil {
		t.Fatalf("OpenRepository: %v", err)
	}
	msg, ok, err := repo.PreviousCommitMessage()
	if err != nil {
		t.Fatalf("PreviousCommitMessage on empty repo: %v", err)
	}
	if ok || msg != "" {
		t.Fatalf("PreviousCommitMessage on empty repo = (%q, %v), want (\"\", false)", msg, ok)
	}

	commitFile(t, dir, wt, "a.txt", "a\n", "feat: add a\n\nLonger body.\n")

	msg, ok, err = repo.PreviousCommitMessage()
	if err != nil {
		t.Fatalf("PreviousCommitMessage: %v", err)
	}
	if !ok {
		t.Fatal("expected a previous commit")
	}
	if msg != "feat: add a\n\nLonger body." {
		t.Fatalf("message = %q", msg)
	}
}

func TestOpenRepository_DetectsParent(t *testing.T) {
	dir, _ := newGoGitRepo(t)
	sub := filepath.Join(dir, "nested", "deeper")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	repo, err := OpenRepository(sub)
	if err != nil {
		t.Fatalf("OpenRepository(sub): %v", err)
	}
	want, _ := filepath.EvalSymlinks(dir)
	got, _ := filepath.EvalSymlinks(repo.Root())
	if got != want {
		t.Fatalf("Root() = %q, want %q", got, want)
	}
}

func TestOpenRepository_NotARepository(t *testing.T) {
	if _, err := OpenRepository(t.TempDir()); err == nil {
		t.Fatal("expected error outside a repository")
	}
}
