package projectstore

import "errors"

// Sentinel errors for the conditions callers are expected to distinguish.
// Match with errors.Is:
//
//	if errors.Is(err, projectstore.ErrStorageUnavailable) {
//	    // namespace missing and creation disabled
//	}
var (
	// ErrStorageUnavailable is returned when the namespace directory does
	// not exist and directory creation is disabled.
	ErrStorageUnavailable = errors.New("project namespace directory does not exist")

	// ErrCorruptMetadata is returned when metadata.json exists but cannot
	// be parsed. The file is never repaired or reset automatically.
	ErrCorruptMetadata = errors.New("metadata.json is not valid JSON")

	// ErrCorruptIndex is returned when index.json exists but cannot be
	// parsed. Discarding session history silently would be worse than
	// failing, so the file is left untouched.
	ErrCorruptIndex = errors.New("index.json is not valid JSON")
)
