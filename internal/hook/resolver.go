package hook

import (
	"github.com/ampkit/projspace/internal/gitinfo"
	"github.com/ampkit/projspace/internal/projectid"
)

// RootInfo is the outcome of project-root resolution. Remote and Branch are
// empty when unknown.
type RootInfo struct {
	Root   string
	Remote string
	Branch string
}

// ResolveRoot determines the canonical project root for startDir. With
// useGitRoot the repository top level wins and remote/branch are captured
// when available; a directory outside any repository, or any querier
// failure, falls back to startDir itself. Version-control absence is an
// expected condition and never surfaces as an error.
func ResolveRoot(git gitinfo.Querier, startDir string, useGitRoot bool) (RootInfo, error) {
	canonical, err := projectid.Canonicalize(startDir)
	if err != nil {
		return RootInfo{}, err
	}

	if !useGitRoot {
		return RootInfo{Root: canonical}, nil
	}

	repoRoot, err := git.RepoRoot(canonical)
	if err != nil {
		return RootInfo{Root: canonical}, nil
	}
	root, err := projectid.Canonicalize(repoRoot)
	if err != nil {
		return RootInfo{Root: canonical}, nil
	}

	info := RootInfo{Root: root}
	if remote, err := git.RemoteURL(canonical); err == nil {
		info.Remote = remote
	}
	if branch, err := git.CurrentBranch(canonical); err == nil {
		info.Branch = branch
	}
	return info, nil
}
