package domain

import (
	"regexp"
	"time"
)

// UploadedFile represents a file stored in the uploads directory. The
// filesystem is the sole source of truth: entries are never indexed or
// cached, every listing re-reads the directory.
type UploadedFile struct {
	Name       string    `json:"name"`
	SizeBytes  int64     `json:"size"`
	ModifiedAt time.Time `json:"modifiedAt"`
}

// StoredFile describes one file part persisted during a single submission.
type StoredFile struct {
	Field        string `json:"field"`
	SavedAs      string `json:"savedAs"`
	OriginalName string `json:"originalName"`
	SizeBytes    int64  `json:"size"`
}

// SaveResult is the outcome of decoding and persisting one multipart
// submission. Fields preserves the submission order of text values.
type SaveResult struct {
	Stored []StoredFile
	Fields map[string][]string
}

// safeNamePattern is the whitelist every on-disk filename must match.
// It excludes '/' (and every other separator), so a matching name can
// never escape the uploads directory.
var safeNamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// IsSafeName reports whether name matches the on-disk filename whitelist.
func IsSafeName(name string) bool {
	return safeNamePattern.MatchString(name)
}
