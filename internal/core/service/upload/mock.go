package upload

import (
	"context"
	"io"
	"mime/multipart"

	"github.com/ccheever/cho-upload/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockUploadService is a mock implementation of UploadService
type MockUploadService struct {
	mock.Mock
}

// NewMockUploadService creates a new MockUploadService
func NewMockUploadService() *MockUploadService {
	return &MockUploadService{}
}

func (m *MockUploadService) SaveUpload(ctx context.Context, form *multipart.Form) (*domain.SaveResult, error) {
	args := m.Called(ctx, form)
	return args.Get(0).(*domain.SaveResult), args.Error(1)
}

func (m *MockUploadService) ListUploads(ctx context.Context) []domain.UploadedFile {
	args := m.Called(ctx)
	return args.Get(0).([]domain.UploadedFile)
}

func (m *MockUploadService) ReadUpload(ctx context.Context, name string) (io.ReadSeekCloser, *domain.UploadedFile, error) {
	args := m.Called(ctx, name)
	var rc io.ReadSeekCloser
	if v := args.Get(0); v != nil {
		rc = v.(io.ReadSeekCloser)
	}
	var info *domain.UploadedFile
	if v := args.Get(1); v != nil {
		info = v.(*domain.UploadedFile)
	}
	return rc, info, args.Error(2)
}

func (m *MockUploadService) Directory() string {
	args := m.Called()
	return args.String(0)
}
