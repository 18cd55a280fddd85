package repository

import (
	"context"

	"gorm.io/gorm"

	"vinolog/internal/model"
)

// UploadRepository defines upload record persistence operations.
type UploadRepository interface {
	Create(ctx context.Context, upload *model.Upload) error
	FindByID(ctx context.Context, id uint) (*model.Upload, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Upload, error)
	Delete(ctx context.Context, id uint) error
}

type uploadRepository struct {
	db *gorm.DB
}

// NewUploadRepository creates a new upload repository.
func NewUploadRepository(db *gorm.DB) UploadRepository {
	return &uploadRepository{db: db}
}

func (r *uploadRepository) Create(ctx context.Context, upload *model.Upload) error {
	return r.db.WithContext(ctx).Create(upload).Error
}

func (r *uploadRepository) FindByID(ctx context.Context, id uint) (*model.Upload, error) {
	var upload model.Upload
	if err := r.db.WithContext(ctx).First(&upload, id).Error; err != nil {
		return nil, err
	}
	return &upload, nil
}

func (r *uploadRepository) ListByUser(ctx context.Context, userID uint) ([]model.Upload, error) {
	var uploads []model.Upload
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&uploads).Error; err != nil {
		return nil, err
	}
	return uploads, nil
}

func (r *uploadRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Upload{}, id).Error
}
