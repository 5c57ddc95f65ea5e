package projectstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Project is one discovered namespace under a storage base.
type Project struct {
	// Name is the namespace directory name ({slug}-{fingerprint}).
	Name string

	// Dir is the namespace directory path.
	Dir string

	// Metadata is the project record loaded from metadata.json.
	Metadata Metadata

	// SessionCount is the number of entries in the session index.
	SessionCount int
}

// Discover enumerates project namespaces under storageBase. Directories
// without a readable metadata.json are skipped; the first such problem is
// reported alongside whatever was discovered, so one broken namespace does
// not hide the rest.
func Discover(storageBase string) ([]Project, error) {
	entries, err := os.ReadDir(storageBase)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read storage base: %w", err)
	}

	var firstErr error
	var projects []Project
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		ns := Open(storageBase, entry.Name())

		meta, present, err := ns.ReadMetadata()
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if !present {
			// Not a project namespace.
			continue
		}

		count, err := ns.SessionCount()
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		projects = append(projects, Project{
			Name:         entry.Name(),
			Dir:          filepath.Join(storageBase, entry.Name()),
			Metadata:     meta,
			SessionCount: count,
		})
	}

	sort.Slice(projects, func(i, j int) bool {
		return strings.ToLower(projects[i].Metadata.FullPath) < strings.ToLower(projects[j].Metadata.FullPath)
	})
	return projects, firstErr
}
