package repository

import (
	"context"

	"gorm.io/gorm"

	"vinolog/internal/model"
)

// WineRepository defines wine persistence operations.
type WineRepository interface {
	Create(ctx context.Context, wine *model.Wine) error
	Update(ctx context.Context, wine *model.Wine) error
	FindByID(ctx context.Context, id uint) (*model.Wine, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Wine, error)
	// DeleteCascade removes the wine together with its tastings, their
	// analyses, and its upload records in one transaction. It returns the
	// object names of removed uploads so the caller can clean up the blob
	// store after commit.
	DeleteCascade(ctx context.Context, id uint) ([]string, error)
}

type wineRepository struct {
	db *gorm.DB
}

// NewWineRepository creates a new wine repository.
func NewWineRepository(db *gorm.DB) WineRepository {
	return &wineRepository{db: db}
}

func (r *wineRepository) Create(ctx context.Context, wine *model.Wine) error {
	return r.db.WithContext(ctx).Create(wine).Error
}

func (r *wineRepository) Update(ctx context.Context, wine *model.Wine) error {
	return r.db.WithContext(ctx).Save(wine).Error
}

func (r *wineRepository) FindByID(ctx context.Context, id uint) (*model.Wine, error) {
	var wine model.Wine
	if err := r.db.WithContext(ctx).First(&wine, id).Error; err != nil {
		return nil, err
	}
	return &wine, nil
}

// ListByUser returns the user's wines in insertion order.
func (r *wineRepository) ListByUser(ctx context.Context, userID uint) ([]model.Wine, error) {
	var wines []model.Wine
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&wines).Error; err != nil {
		return nil, err
	}
	return wines, nil
}

func (r *wineRepository) DeleteCascade(ctx context.Context, id uint) ([]string, error) {
	var objectNames []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tastingIDs []uint
		if err := tx.Model(&model.Tasting{}).Where("wine_id = ?", id).Pluck("id", &tastingIDs).Error; err != nil {
			return err
		}
		if len(tastingIDs) > 0 {
			if err := tx.Where("tasting_id IN ?", tastingIDs).Delete(&model.VisualAnalysis{}).Error; err != nil {
				return err
			}
			if err := tx.Where("tasting_id IN ?", tastingIDs).Delete(&model.OlfactoryAnalysis{}).Error; err != nil {
				return err
			}
			if err := tx.Where("tasting_id IN ?", tastingIDs).Delete(&model.GustatoryAnalysis{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", tastingIDs).Delete(&model.Tasting{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(&model.Upload{}).Where("wine_id = ?", id).Pluck("object_name", &objectNames).Error; err != nil {
			return err
		}
		if err := tx.Where("wine_id = ?", id).Delete(&model.Upload{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Wine{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return objectNames, nil
}
