package storage

import (
	"context"
	"io"

	"github.com/ccheever/cho-upload/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockStorage is a mock implementation of FileStorage
type MockStorage struct {
	mock.Mock
}

// NewMockStorage creates a new MockStorage
func NewMockStorage() *MockStorage {
	return &MockStorage{}
}

func (m *MockStorage) WriteFile(ctx context.Context, name string, r io.Reader) (int64, error) {
	args := m.Called(ctx, name, r)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorage) ListFiles(ctx context.Context) ([]domain.UploadedFile, error) {
	args := m.Called(ctx)
	var files []domain.UploadedFile
	if v := args.Get(0); v != nil {
		files = v.([]domain.UploadedFile)
	}
	return files, args.Error(1)
}

func (m *MockStorage) OpenFile(ctx context.Context, name string) (io.ReadSeekCloser, *domain.UploadedFile, error) {
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
