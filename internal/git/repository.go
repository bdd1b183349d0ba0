package git

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Repository gives read access to repository state that is not part of the
// staged-change reports.
type Repository struct {
	repo *git.Repository
	root string
}

// OpenRepository opens the repository containing path, searching parent
// directories for the .git directory.
func OpenRepository(path string) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", path, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("open worktree: %w", err)
	}

	return &Repository{repo: repo, root: wt.Filesystem.Root()}, nil
}

// Root returns the top-level directory of the worktree.
func (r *Repository) Root() string {
	return r.root
}

// PreviousCommitMessage returns the full message of the HEAD commit. ok is
// false when the repository has no commits yet.
func (r *Repository) PreviousCommitMessage() (msg string, ok bool, err error) {
	ref, err := r.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("resolve HEAD: %w", err)
	}

	c, err := r.repo.CommitObject(ref.Hash())
	if err != nil {
		return "", false, fmt.Errorf("read HEAD commit: %w", err)
	}

	return strings.TrimSpace(c.Message), true, nil
}
