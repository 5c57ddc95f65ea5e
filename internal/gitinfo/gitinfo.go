// Package gitinfo answers read-only questions about the repository
// containing a directory: where its top level is, what remote it pushes to,
// and which branch is checked out.
//
// The Querier interface keeps resolver logic independent of how the answers
// are produced. The default implementation binds to go-git; tests substitute
// a Stub.
package gitinfo

import "errors"

var (
	// ErrNotARepo is returned when the path is not inside a repository.
	// Callers treat this as an expected condition, not a failure.
	ErrNotARepo = errors.New("not inside a git repository")

	// ErrNoRemote is returned when the repository has no configured remote.
	ErrNoRemote = errors.New("no remote configured")

	// ErrDetached is returned when HEAD does not point at a branch.
	ErrDetached = errors.New("detached HEAD")
)

// Querier is the version-control capability consumed by project-root
// resolution. All methods are read-only.
type Querier interface {
	// RepoRoot returns the top-level directory of the repository
	// containing path, or ErrNotARepo.
	RepoRoot(path string) (string, error)

	// RemoteURL returns the URL of the repository's "origin" remote (or
	// its first remote when "origin" is absent), or ErrNoRemote.
	RemoteURL(path string) (string, error)

	// CurrentBranch returns the checked-out branch name, or ErrDetached.
	CurrentBranch(path string) (string, error)
}

// Stub is a canned Querier for tests and non-git environments. Zero value
// reports "not a repository" for every path.
type Stub struct {
	Root   string
	Remote string
	Branch string

	// Err, when set, is returned by every method.
	Err error
}

func (s Stub) RepoRoot(string) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	if s.Root == "" {
		return "", ErrNotARepo
	}
	return s.Root, nil
}

func (s Stub) RemoteURL(string) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	if s.Remote == "" {
		return "", ErrNoRemote
	}
	return s.Remote, nil
}

func (s Stub) CurrentBranch(string) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	if s.Branch == "" {
		return "", ErrDetached
	}
	return s.Branch, nil
}
