package projectstore

import (
	"sort"
	"strings"
	"time"
)

// DefaultPurpose is recorded when a session start supplies no purpose.
const DefaultPurpose = "session"

// Metadata is the persisted per-namespace project record (metadata.json).
// Timestamps are RFC 3339 strings.
type Metadata struct {
	FullPath     string `json:"full_path"`
	Slug         string `json:"slug"`
	GitRemote    string `json:"git_remote,omitempty"`
	GitBranch    string `json:"git_branch,omitempty"`
	Purpose      string `json:"purpose"`
	FirstSeen    string `json:"first_seen"`
	LastAccessed string `json:"last_accessed"`
}

// SessionEntry is one session record in index.json.
type SessionEntry struct {
	SessionID    string `json:"session_id"`
	Timestamp    string `json:"timestamp"`
	MessageCount int    `json:"message_count"`
}

// Index is the persisted session index document (index.json), kept sorted
// most recent first.
type Index struct {
	Sessions []SessionEntry `json:"sessions"`
}

// Upsert replaces the entry with the same session id, or appends a new one,
// then restores newest-first order.
func (idx *Index) Upsert(entry SessionEntry) {
	replaced := false
	for i := range idx.Sessions {
		if idx.Sessions[i].SessionID == entry.SessionID {
			idx.Sessions[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		idx.Sessions = append(idx.Sessions, entry)
	}
	idx.sortNewestFirst()
}

func (idx *Index) sortNewestFirst() {
	sort.SliceStable(idx.Sessions, func(i, j int) bool {
		ti := parseTime(idx.Sessions[i].Timestamp)
		tj := parseTime(idx.Sessions[j].Timestamp)
		if !ti.IsZero() || !tj.IsZero() {
			return ti.After(tj)
		}
		// Unparseable legacy values fall back to string order.
		return idx.Sessions[i].Timestamp > idx.Sessions[j].Timestamp
	})
}

// Timestamp renders t in the format persisted to disk.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	return time.Time{}
}
