package upload

import (
	"context"
	"fmt"
	"mime/multipart"
	"sort"

	"github.com/ccheever/cho-upload/internal/core/domain"
)

// SaveUpload persists every file part of a decoded multipart submission
// and collects the plain text fields. Returns domain.ErrNoFilesStored
// when the submission carried no file parts; the text fields are still
// reported so callers can echo them back.
func (s *uploadService) SaveUpload(ctx context.Context, form *multipart.Form) (*domain.SaveResult, error) {
	result := &domain.SaveResult{
		Stored: []domain.StoredFile{},
		Fields: map[string][]string{},
	}
	if form == nil {
		return result, domain.ErrNoFilesStored
	}

	for name, values := range form.Value {
		result.Fields[name] = append(result.Fields[name], values...)
	}

	// Iterate file fields in a stable order.
	fields := make([]string, 0, len(form.File))
	for field := range form.File {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		for _, fh := range form.File[field] {
			stored, err := s.saveOne(ctx, field, fh)
			if err != nil {
				return result, err
			}
			result.Stored = append(result.Stored, *stored)
		}
	}

	if len(result.Stored) == 0 {
		return result, domain.ErrNoFilesStored
	}
	return result, nil
}

func (s *uploadService) saveOne(ctx context.Context, field string, fh *multipart.FileHeader) (*domain.StoredFile, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open part %q: %w", field, err)
	}
	defer src.Close()

	savedAs := storedName(fh.Filename)
	size, err := s.storage.WriteFile(ctx, savedAs, src)
	if err != nil {
		return nil, fmt.Errorf("failed to store part %q: %w", field, err)
	}

	s.logger.Info("stored upload",
		"field", field,
		"savedAs", savedAs,
		"originalName", fh.Filename,
		"size", size,
	)
	return &domain.StoredFile{
		Field:        field,
		SavedAs:      savedAs,
		OriginalName: fh.Filename,
		SizeBytes:    size,
	}, nil
}
