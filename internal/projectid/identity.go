// Package projectid derives stable, collision-proof storage names for
// projects identified by a filesystem path.
//
// A project's namespace name is "{slug}-{fingerprint}": a human-readable
// slug from the directory basename plus a short hash of the full canonical
// path. Two directories named "api-server" in different locations get
// distinct namespaces; the same directory always gets the same one.
package projectid

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrEmptyPath is returned when an identity is requested for an empty path.
var ErrEmptyPath = errors.New("project path is empty")

// Identity is the derived storage identity of one project root.
type Identity struct {
	// RootPath is the canonical absolute project root.
	RootPath string

	// Slug is the slugified basename of RootPath.
	Slug string

	// Fingerprint is the short hash of RootPath.
	Fingerprint string

	// NamespaceName is "{Slug}-{Fingerprint}", the on-disk directory name.
	NamespaceName string
}

// Resolve computes the Identity for a project root. The path is
// canonicalized (absolute, symlinks resolved, no trailing separator) before
// hashing so that different spellings of the same location agree.
func Resolve(root string) (Identity, error) {
	canonical, err := Canonicalize(root)
	if err != nil {
		return Identity{}, err
	}

	slug := Slugify(filepath.Base(canonical))
	fp := Fingerprint(canonical)

	return Identity{
		RootPath:      canonical,
		Slug:          slug,
		Fingerprint:   fp,
		NamespaceName: slug + "-" + fp,
	}, nil
}

// Canonicalize resolves a path to its canonical absolute form: absolute,
// cleaned, symlinks resolved where the path exists. A path that does not
// exist on disk is still canonicalized lexically rather than rejected.
func Canonicalize(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", ErrEmptyPath
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	return filepath.Clean(abs), nil
}
