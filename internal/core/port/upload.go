package port

import (
	"context"
	"io"
	"mime/multipart"

	"github.com/ccheever/cho-upload/internal/core/domain"
)

// FileStorage is an interface to define raw file storage interactions
type FileStorage interface {
	WriteFile(ctx context.Context, name string, r io.Reader) (int64, error)
	ListFiles(ctx context.Context) ([]domain.UploadedFile, error)
	OpenFile(ctx context.Context, name string) (io.ReadSeekCloser, *domain.UploadedFile, error)
}

// UploadService is an interface to define the upload store operations
type UploadService interface {
	SaveUpload(ctx context.Context, form *multipart.Form) (*domain.SaveResult, error)
	ListUploads(ctx context.Context) []domain.UploadedFile
	ReadUpload(ctx context.Context, name string) (io.ReadSeekCloser, *domain.UploadedFile, error)
	Directory() string
}
