package disk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ccheever/cho-upload/internal/core/domain"
)

// Adapter persists uploads as a flat directory of files. The directory
// is the sole source of truth: there is no index to keep consistent.
type Adapter struct {
	dir    string
	logger *slog.Logger
}

// NewAdapter returns Adapter, creating the uploads directory if absent
func NewAdapter(dir string, logger *slog.Logger) (*Adapter, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve uploads directory: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &Adapter{dir: abs, logger: logger}, nil
}

// Dir returns the absolute uploads directory path.
func (a *Adapter) Dir() string {
	return a.dir
}

// WriteFile streams r to <dir>/<name>. A partial file left by a failed
// copy is removed.
func (a *Adapter) WriteFile(ctx context.Context, name string, r io.Reader) (int64, error) {
	dst := filepath.Join(a.dir, name)
	f, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", name, err)
	}
	n, err := io.Copy(f, r)
	closeErr := f.Close()
	if err != nil {
		_ = os.Remove(dst)
		return 0, fmt.Errorf("failed to write %s: %w", name, err)
	}
	if closeErr != nil {
		_ = os.Remove(dst)
		return 0, fmt.Errorf("failed to flush %s: %w", name, closeErr)
	}
	return n, nil
}

// ListFiles reads the directory and stats every regular file. Entries
// that vanish between the read and the stat are skipped.
func (a *Adapter) ListFiles(ctx context.Context) ([]domain.UploadedFile, error) {
	entries, err := os.ReadDir(a.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploads directory: %w", err)
	}
	files := make([]domain.UploadedFile, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, domain.UploadedFile{
			Name:       e.Name(),
			SizeBytes:  info.Size(),
			ModifiedAt: info.ModTime(),
		})
	}
	return files, nil
}

// OpenFile opens a stored file for reading. A missing or non-regular
// entry maps to domain.ErrFileNotFound.
func (a *Adapter) OpenFile(ctx context.Context, name string) (io.ReadSeekCloser, *domain.UploadedFile, error) {
	path := filepath.Join(a.dir, name)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, domain.ErrFileNotFound
		}
		return nil, nil, fmt.Errorf("failed to stat %s: %w", name, err)
	}
	if !info.Mode().IsRegular() {
		return nil, nil, domain.ErrFileNotFound
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	return f, &domain.UploadedFile{
		Name:       name,
		SizeBytes:  info.Size(),
		ModifiedAt: info.ModTime(),
	}, nil
}
