package gitinfo

import (
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"
)

// GoGit implements Querier with the go-git library, avoiding any dependency
// on a git binary. Each call opens the repository fresh; queries are cheap
// and callers run once per session start.
type GoGit struct{}

// New returns a library-backed Querier.
func New() GoGit {
	return GoGit{}
}

func (GoGit) RepoRoot(path string) (string, error) {
	repo, err := openRepo(path)
	if err != nil {
		return "", err
	}
	wt, err := repo.Worktree()
	if err != nil {
		// Bare repositories have no working tree to store sessions
		// against; treat them like the no-repository case.
		if errors.Is(err, git.ErrIsBareRepository) {
			return "", ErrNotARepo
		}
		return "", fmt.Errorf("repository worktree: %w", err)
	}
	return wt.Filesystem.Root(), nil
}

func (GoGit) RemoteURL(path string) (string, error) {
	repo, err := openRepo(path)
	if err != nil {
		return "", err
	}

	if origin, err := repo.Remote("origin"); err == nil {
		if urls := origin.Config().URLs; len(urls) > 0 {
			return urls[0], nil
		}
	}

	remotes, err := repo.Remotes()
	if err != nil {
		return "", fmt.Errorf("list remotes: %w", err)
	}
	for _, rem := range remotes {
		if urls := rem.Config().URLs; len(urls) > 0 {
			return urls[0], nil
		}
	}
	return "", ErrNoRemote
}

func (GoGit) CurrentBranch(path string) (string, error) {
	repo, err := openRepo(path)
	if err != nil {
		return "", err
	}
	head, err := repo.Head()
	if err != nil {
		// An unborn branch (fresh repository with no commits) has no
		// resolvable HEAD.
		return "", ErrDetached
	}
	if !head.Name().IsBranch() {
		return "", ErrDetached
	}
	return head.Name().Short(), nil
}

func openRepo(path string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, ErrNotARepo
		}
		return nil, fmt.Errorf("open repository at %s: %w", path, err)
	}
	return repo, nil
}
