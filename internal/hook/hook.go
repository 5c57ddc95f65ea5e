// Package hook implements the session-start entry point invoked by the
// host's hook dispatcher: resolve the project root, derive its storage
// namespace, and bring the namespace's metadata and session index up to
// date.
package hook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ampkit/projspace/internal/gitinfo"
	"github.com/ampkit/projspace/internal/projectid"
	"github.com/ampkit/projspace/internal/projectstore"
)

// EnvStorageBase overrides the storage base directory.
const EnvStorageBase = "PROJSPACE_STORAGE_BASE"

// defaultStorageBase is relative to the user home directory.
const defaultStorageBase = ".amplifier/projects"

// Config holds the three settings the host passes in. Loading and
// validating them is the host's concern.
type Config struct {
	// UseGitRoot selects the repository top level as the project root
	// when the start directory is inside a repository.
	UseGitRoot bool

	// StorageBase is the directory holding all project namespaces.
	StorageBase string

	// CreateDirs allows creating missing namespace directories.
	CreateDirs bool
}

// DefaultStorageBase resolves the storage base: explicit override, then the
// environment, then ~/.amplifier/projects.
func DefaultStorageBase(override string) (string, error) {
	if v := strings.TrimSpace(override); v != "" {
		return filepath.Clean(os.ExpandEnv(v)), nil
	}
	if v := strings.TrimSpace(os.Getenv(EnvStorageBase)); v != "" {
		return filepath.Clean(os.ExpandEnv(v)), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, defaultStorageBase), nil
}

// Result mirrors the context a session-start hook hands back to the host.
type Result struct {
	// StoragePath is where the session-storage collaborator writes
	// transcripts ({namespace}/sessions).
	StoragePath string `json:"storage_path"`

	// ProjectRoot is the canonical project root path.
	ProjectRoot string `json:"project_root"`

	// ProjectSlug is the human-readable part of the namespace name.
	ProjectSlug string `json:"project_slug"`

	// NamespaceName is the {slug}-{fingerprint} directory name.
	NamespaceName string `json:"project_dir_name"`
}

// Handler runs the session-start flow. Zero value is not usable; construct
// with New.
type Handler struct {
	cfg Config
	git gitinfo.Querier
	now func() time.Time
}

// Option customizes a Handler.
type Option func(*Handler)

// WithQuerier substitutes the version-control querier (tests use a
// gitinfo.Stub).
func WithQuerier(q gitinfo.Querier) Option {
	return func(h *Handler) { h.git = q }
}

// WithClock substitutes the time source.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

// New builds a Handler with the go-git querier and wall clock by default.
func New(cfg Config, opts ...Option) *Handler {
	h := &Handler{
		cfg: cfg,
		git: gitinfo.New(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// OnSessionStart resolves the project for startDir, ensures its namespace,
// refreshes metadata, and records the session in the index. purpose may be
// empty; messageCount is the current transcript length (0 for a brand-new
// session).
func (h *Handler) OnSessionStart(startDir, sessionID, purpose string, messageCount int) (Result, error) {
	if strings.TrimSpace(sessionID) == "" {
		return Result{}, fmt.Errorf("session id is empty")
	}
	if messageCount < 0 {
		return Result{}, fmt.Errorf("message count %d is negative", messageCount)
	}

	info, err := ResolveRoot(h.git, startDir, h.cfg.UseGitRoot)
	if err != nil {
		return Result{}, err
	}

	identity, err := projectid.Resolve(info.Root)
	if err != nil {
		return Result{}, err
	}

	ns := projectstore.Open(h.cfg.StorageBase, identity.NamespaceName)
	if err := ns.Ensure(h.cfg.CreateDirs); err != nil {
		return Result{}, err
	}

	now := projectstore.Timestamp(h.now())

	if _, err := ns.TouchMetadata(projectstore.MetadataUpdate{
		FullPath:  identity.RootPath,
		Slug:      identity.Slug,
		GitRemote: info.Remote,
		GitBranch: info.Branch,
		Purpose:   purpose,
	}, now); err != nil {
		return Result{}, err
	}

	if err := ns.RecordSession(sessionID, messageCount, now); err != nil {
		return Result{}, err
	}

	return Result{
		StoragePath:   ns.SessionsDir(),
		ProjectRoot:   identity.RootPath,
		ProjectSlug:   identity.Slug,
		NamespaceName: identity.NamespaceName,
	}, nil
}

// Locate resolves the namespace for startDir without touching disk state.
// List commands use it to find a project's storage from its working
// directory.
func (h *Handler) Locate(startDir string) (*projectstore.Namespace, projectid.Identity, error) {
	info, err := ResolveRoot(h.git, startDir, h.cfg.UseGitRoot)
	if err != nil {
		return nil, projectid.Identity{}, err
	}
	identity, err := projectid.Resolve(info.Root)
	if err != nil {
		return nil, projectid.Identity{}, err
	}
	return projectstore.Open(h.cfg.StorageBase, identity.NamespaceName), identity, nil
}
