package upload_test

import (
	"regexp"
	"testing"

	"github.com/ccheever/cho-upload/internal/core/service/upload"

	"github.com/stretchr/testify/assert"
)

var safeName = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

func TestSanitizeFilename(t *testing.T) {
	t.Run("safe names pass through unchanged", func(t *testing.T) {
		assert.Equal(t, "report.txt", upload.SanitizeFilename("report.txt"))
		assert.Equal(t, "IMG_2024-01.jpeg", upload.SanitizeFilename("IMG_2024-01.jpeg"))
	})

	t.Run("unsafe characters become underscores", func(t *testing.T) {
		assert.Equal(t, "my_photo_1_.png", upload.SanitizeFilename("my photo(1).png"))
		assert.Equal(t, "r_p_rt.txt", upload.SanitizeFilename("répört.txt"))
		assert.Equal(t, "_etc_passwd", upload.SanitizeFilename("/etc/passwd"))
		assert.Equal(t, ".._.._secret", upload.SanitizeFilename("../../secret"))
	})

	t.Run("blank and absent names fall back", func(t *testing.T) {
		assert.Equal(t, upload.FallbackName, upload.SanitizeFilename(""))
		assert.Equal(t, upload.FallbackName, upload.SanitizeFilename("   "))
		assert.Equal(t, upload.FallbackName, upload.SanitizeFilename("\t\n"))
	})

	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		assert.Equal(t, "notes.md", upload.SanitizeFilename("  notes.md  "))
	})

	t.Run("output always matches the whitelist and is never empty", func(t *testing.T) {
		candidates := []string{
			"report.txt",
			"с отчётом.pdf",
			"../../../etc/passwd",
			"a b\tc",
			"💾.bin",
			"",
			"   ",
			"\x00null",
			`C:\Users\me\file.doc`,
		}
		for _, c := range candidates {
			got := upload.SanitizeFilename(c)
			assert.NotEmpty(t, got, "input %q", c)
			assert.Regexp(t, safeName, got, "input %q", c)
		}
	})
}
