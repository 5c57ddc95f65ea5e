// Package projectstore persists per-project bookkeeping under a storage
// base: one directory per project namespace holding metadata.json, a
// session index.json, and an opaque sessions/ subdirectory.
//
// Both documents follow a load, mutate, atomically-persist protocol with no
// long-lived in-memory copy. Each cycle runs under a per-namespace file
// lock, so concurrent session starts in the same project serialize instead
// of overwriting each other; the temp-file-then-rename write keeps every
// persisted document internally consistent even across a crash.
package projectstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
)

const (
	metadataFile = "metadata.json"
	indexFile    = "index.json"
	lockFileName = ".lock"

	// SessionsDirName is the namespace subdirectory owned by the
	// session-storage collaborator.
	SessionsDirName = "sessions"
)

// Namespace manages one project's storage directory.
type Namespace struct {
	mu   sync.Mutex
	dir  string
	lock *flock.Flock
}

// Open returns a Namespace for {storageBase}/{name}. Nothing is touched on
// disk until Ensure or one of the mutators runs.
func Open(storageBase, name string) *Namespace {
	dir := filepath.Join(storageBase, name)
	return &Namespace{
		dir:  dir,
		lock: flock.New(filepath.Join(dir, lockFileName)),
	}
}

// Dir returns the namespace directory path.
func (n *Namespace) Dir() string {
	return n.dir
}

// SessionsDir returns the path handed to the session-storage collaborator.
func (n *Namespace) SessionsDir() string {
	return filepath.Join(n.dir, SessionsDirName)
}

// Ensure makes sure the namespace layout exists. When the directory is
// absent and createDirs is false it fails with ErrStorageUnavailable; it
// never silently continues without a storage path.
func (n *Namespace) Ensure(createDirs bool) error {
	if _, err := os.Stat(n.dir); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", n.dir, err)
		}
		if !createDirs {
			return fmt.Errorf("%s: %w", n.dir, ErrStorageUnavailable)
		}
	}
	if err := os.MkdirAll(n.SessionsDir(), 0o700); err != nil {
		return fmt.Errorf("create namespace layout: %w", err)
	}
	return nil
}

// MetadataUpdate carries the fields refreshed on every session start.
type MetadataUpdate struct {
	FullPath  string
	Slug      string
	GitRemote string
	GitBranch string
	Purpose   string
}

// ReadMetadata loads metadata.json. A missing file (or namespace) is
// reported as absent via the bool, not as an error; an unparseable file
// fails with ErrCorruptMetadata.
func (n *Namespace) ReadMetadata() (Metadata, bool, error) {
	data, err := os.ReadFile(n.metadataPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Metadata{}, false, nil
		}
		return Metadata{}, false, fmt.Errorf("read %s: %w", n.metadataPath(), err)
	}
	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return Metadata{}, false, fmt.Errorf("parse %s: %w: %v", n.metadataPath(), ErrCorruptMetadata, err)
	}
	return meta, true, nil
}

// TouchMetadata creates or refreshes metadata.json. On first contact the
// record is created with first_seen = now. On later calls first_seen, slug
// and full_path are preserved from the original record while last_accessed
// is overwritten and git_remote/git_branch/purpose are refreshed from upd.
func (n *Namespace) TouchMetadata(upd MetadataUpdate, now string) (Metadata, error) {
	var meta Metadata
	err := n.withLock(func() error {
		existing, present, err := n.ReadMetadata()
		if err != nil {
			return err
		}

		if present {
			meta = existing
		} else {
			meta = Metadata{
				FullPath:  upd.FullPath,
				Slug:      upd.Slug,
				FirstSeen: now,
			}
		}

		meta.GitRemote = upd.GitRemote
		meta.GitBranch = upd.GitBranch
		meta.Purpose = upd.Purpose
		if meta.Purpose == "" {
			meta.Purpose = DefaultPurpose
		}
		meta.LastAccessed = now

		return n.save(n.metadataPath(), meta)
	})
	if err != nil {
		return Metadata{}, err
	}
	return meta, nil
}

// ReadIndex loads index.json. A missing file yields an empty index; an
// unparseable one fails with ErrCorruptIndex.
func (n *Namespace) ReadIndex() (Index, error) {
	data, err := os.ReadFile(n.indexPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Index{}, nil
		}
		return Index{}, fmt.Errorf("read %s: %w", n.indexPath(), err)
	}
	var idx Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return Index{}, fmt.Errorf("parse %s: %w: %v", n.indexPath(), ErrCorruptIndex, err)
	}
	return idx, nil
}

// RecordSession upserts a session entry with timestamp = now and persists
// the index newest first. An existing session_id is updated in place, never
// duplicated.
func (n *Namespace) RecordSession(sessionID string, messageCount int, now string) error {
	return n.withLock(func() error {
		idx, err := n.ReadIndex()
		if err != nil {
			return err
		}
		idx.Upsert(SessionEntry{
			SessionID:    sessionID,
			Timestamp:    now,
			MessageCount: messageCount,
		})
		return n.save(n.indexPath(), idx)
	})
}

// SessionCount reports how many sessions the index records.
func (n *Namespace) SessionCount() (int, error) {
	idx, err := n.ReadIndex()
	if err != nil {
		return 0, err
	}
	return len(idx.Sessions), nil
}

func (n *Namespace) withLock(fn func() error) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, err := os.Stat(n.dir); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: %w", n.dir, ErrStorageUnavailable)
		}
		return fmt.Errorf("stat %s: %w", n.dir, err)
	}

	if err := n.lock.Lock(); err != nil {
		return fmt.Errorf("lock namespace: %w", err)
	}
	defer func() { _ = n.lock.Unlock() }()

	return fn()
}

func (n *Namespace) save(path string, doc any) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	b = append(b, '\n')
	if err := atomicWriteFile(path, b, 0o600); err != nil {
		return fmt.Errorf("atomic write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func (n *Namespace) metadataPath() string { return filepath.Join(n.dir, metadataFile) }
func (n *Namespace) indexPath() string    { return filepath.Join(n.dir, indexFile) }
