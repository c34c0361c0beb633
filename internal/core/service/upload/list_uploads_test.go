package upload_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ccheever/cho-upload/internal/adapters/storage"
	"github.com/ccheever/cho-upload/internal/core/domain"
	"github.com/ccheever/cho-upload/internal/core/service/upload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadService_ListUploads(t *testing.T) {
	t.Run("success - sorted most recent first", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockStorage := storage.NewMockStorage()
		service := upload.NewUploadService(mockStorage, "/srv/uploads", discardLogger)

		now := time.Now()
		mockStorage.On("ListFiles", ctx).Return([]domain.UploadedFile{
			{Name: "older.txt", SizeBytes: 1, ModifiedAt: now.Add(-2 * time.Hour)},
			{Name: "newest.txt", SizeBytes: 2, ModifiedAt: now},
			{Name: "middle.txt", SizeBytes: 3, ModifiedAt: now.Add(-time.Hour)},
		}, nil)

		// Act
		files := service.ListUploads(ctx)

		// Assert
		require.Len(t, files, 3)
		assert.Equal(t, "newest.txt", files[0].Name)
		assert.Equal(t, "middle.txt", files[1].Name)
		assert.Equal(t, "older.txt", files[2].Name)
		mockStorage.AssertExpectations(t)
	})

	t.Run("success - unsafe names are never listed", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockStorage := storage.NewMockStorage()
		service := upload.NewUploadService(mockStorage, "/srv/uploads", discardLogger)

		mockStorage.On("ListFiles", ctx).Return([]domain.UploadedFile{
			{Name: "good.txt"},
			{Name: "bad name.txt"},
			{Name: "also/bad"},
		}, nil)

		// Act
		files := service.ListUploads(ctx)

		// Assert
		require.Len(t, files, 1)
		assert.Equal(t, "good.txt", files[0].Name)
	})

	t.Run("success - listing is idempotent", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockStorage := storage.NewMockStorage()
		service := upload.NewUploadService(mockStorage, "/srv/uploads", discardLogger)

		entries := []domain.UploadedFile{
			{Name: "a.txt", SizeBytes: 1, ModifiedAt: time.Unix(100, 0)},
			{Name: "b.txt", SizeBytes: 2, ModifiedAt: time.Unix(200, 0)},
		}
		mockStorage.On("ListFiles", ctx).Return(entries, nil)

		// Act
		first := service.ListUploads(ctx)
		second := service.ListUploads(ctx)

		// Assert
		assert.Equal(t, first, second)
	})

	t.Run("error - read failure degrades to empty listing", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockStorage := storage.NewMockStorage()
		service := upload.NewUploadService(mockStorage, "/srv/uploads", discardLogger)

		mockStorage.On("ListFiles", ctx).Return(nil, errors.New("permission denied"))

		// Act
		files := service.ListUploads(ctx)

		// Assert
		assert.NotNil(t, files)
		assert.Empty(t, files)
	})
}
