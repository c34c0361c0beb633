package upload

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// FallbackName is used when a client-supplied filename is absent or
// collapses to nothing after sanitization.
const FallbackName = "upload"

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// SanitizeFilename maps an arbitrary client-supplied name to a
// filesystem-safe one: whitespace is trimmed, every character outside
// [A-Za-z0-9._-] becomes '_', and an empty result falls back to
// FallbackName.
func SanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return FallbackName
	}
	name = unsafeChars.ReplaceAllString(name, "_")
	if name == "" {
		return FallbackName
	}
	return name
}

// storedName prefixes the sanitized name with a millisecond timestamp.
// Two uploads of the same name inside the same millisecond collide and
// the later write wins; callers accept that as best-effort uniqueness.
func storedName(original string) string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), SanitizeFilename(original))
}
