package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gorm.io/gorm"

	"vinolog/internal/errors"
	"vinolog/internal/model"
	"vinolog/internal/repository"
	"vinolog/internal/storage"
)

// UploadService stores wine images as opaque blobs and tracks them per user.
type UploadService interface {
	UploadImage(ctx context.Context, userID uint, wineID *uint, filename, contentType string, reader io.Reader, size int64) (*model.Upload, error)
	ListUploads(ctx context.Context, userID uint) ([]model.Upload, error)
	GetUploadURL(ctx context.Context, userID, uploadID uint) (string, error)
	DeleteUpload(ctx context.Context, userID, uploadID uint) error
}

type uploadService struct {
	uploadRepo repository.UploadRepository
	wineRepo   repository.WineRepository
	store      storage.ObjectStore
}

// NewUploadService builds an UploadService.
func NewUploadService(uploadRepo repository.UploadRepository, wineRepo repository.WineRepository, store storage.ObjectStore) UploadService {
	return &uploadService{uploadRepo: uploadRepo, wineRepo: wineRepo, store: store}
}

// UploadImage stores the blob under a fresh per-user object name and records
// the upload. When a wine is referenced it must exist and belong to the
// caller.
func (s *uploadService) UploadImage(ctx context.Context, userID uint, wineID *uint, filename, contentType string, reader io.Reader, size int64) (*model.Upload, error) {
	if strings.TrimSpace(filename) == "" {
		return nil, fmt.Errorf("%w: filename is required", errors.ErrValidation)
	}

	if wineID != nil {
		wine, err := s.wineRepo.FindByID(ctx, *wineID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, errors.ErrNotFound
			}
			return nil, fmt.Errorf("find wine: %w", err)
		}
		if wine.UserID != userID {
			return nil, errors.ErrForbidden
		}
	}

	objectName := storage.ObjectName(userID, filename)
	if err := s.store.Put(ctx, objectName, reader, size, contentType); err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	upload := &model.Upload{
		UserID:      userID,
		WineID:      wineID,
		Filename:    filename,
		ObjectName:  objectName,
		ContentType: contentType,
	}

	if err := s.uploadRepo.Create(ctx, upload); err != nil {
		// Keep the store consistent with the database.
		_ = s.store.Remove(ctx, objectName)
		return nil, fmt.Errorf("create upload record: %w", err)
	}

	return upload, nil
}

func (s *uploadService) ListUploads(ctx context.Context, userID uint) ([]model.Upload, error) {
	return s.uploadRepo.ListByUser(ctx, userID)
}

// GetUploadURL returns a short-lived presigned download URL.
func (s *uploadService) GetUploadURL(ctx context.Context, userID, uploadID uint) (string, error) {
	upload, err := s.ownedUpload(ctx, userID, uploadID)
	if err != nil {
		return "", err
	}
	return s.store.PresignedURL(ctx, upload.ObjectName)
}

// DeleteUpload removes the record and then the blob, best-effort.
func (s *uploadService) DeleteUpload(ctx context.Context, userID, uploadID uint) error {
	upload, err := s.ownedUpload(ctx, userID, uploadID)
	if err != nil {
		return err
	}

	if err := s.uploadRepo.Delete(ctx, uploadID); err != nil {
		return fmt.Errorf("delete upload record: %w", err)
	}

	_ = s.store.Remove(ctx, upload.ObjectName)
	return nil
}

func (s *uploadService) ownedUpload(ctx context.Context, userID, uploadID uint) (*model.Upload, error) {
	upload, err := s.uploadRepo.FindByID(ctx, uploadID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrNotFound
		}
		return nil, fmt.Errorf("find upload: %w", err)
	}
	if upload.UserID != userID {
		return nil, errors.ErrForbidden
	}
	return upload, nil
}
