package projectid

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveComposesName(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "My Project")
	if err := os.Mkdir(dir, 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	id, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if id.Slug != "my-project" {
		t.Fatalf("Slug=%q want %q", id.Slug, "my-project")
	}
	if len(id.Fingerprint) != FingerprintLen {
		t.Fatalf("Fingerprint=%q want %d hex chars", id.Fingerprint, FingerprintLen)
	}
	if id.NamespaceName != id.Slug+"-"+id.Fingerprint {
		t.Fatalf("NamespaceName=%q want %q", id.NamespaceName, id.Slug+"-"+id.Fingerprint)
	}
	if Fingerprint(id.RootPath) != id.Fingerprint {
		t.Fatalf("Fingerprint not derived from RootPath")
	}
}

func TestResolveTrailingSlashAgrees(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "proj")
	if err := os.Mkdir(dir, 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	a, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	b, err := Resolve(dir + string(os.PathSeparator))
	if err != nil {
		t.Fatalf("Resolve with trailing separator: %v", err)
	}
	if a.NamespaceName != b.NamespaceName {
		t.Fatalf("namespace differs: %q vs %q", a.NamespaceName, b.NamespaceName)
	}
}

func TestResolveSymlinkAgrees(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "real")
	if err := os.Mkdir(dir, 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	link := filepath.Join(base, "alias")
	if err := os.Symlink(dir, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	a, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve real: %v", err)
	}
	b, err := Resolve(link)
	if err != nil {
		t.Fatalf("Resolve alias: %v", err)
	}
	if a.NamespaceName != b.NamespaceName {
		t.Fatalf("namespace differs across symlink: %q vs %q", a.NamespaceName, b.NamespaceName)
	}
}

func TestResolveEmptyPath(t *testing.T) {
	if _, err := Resolve("  "); !errors.Is(err, ErrEmptyPath) {
		t.Fatalf("err=%v want ErrEmptyPath", err)
	}
}

func TestCanonicalizeNoTrailingSeparator(t *testing.T) {
	got, err := Canonicalize(t.TempDir() + string(os.PathSeparator))
	if err != nil {
		t.Fatalf("Canonicalize: %v", err)
	}
	if strings.HasSuffix(got, string(os.PathSeparator)) && got != string(os.PathSeparator) {
		t.Fatalf("canonical path %q keeps trailing separator", got)
	}
}
