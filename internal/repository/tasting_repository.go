package repository

import (
	"context"

	"gorm.io/gorm"

	"vinolog/internal/model"
)

// RegionCount is one row of the favorite-region aggregate: a wine region and
// how many of the user's tastings fall on wines from it.
type RegionCount struct {
	Region string
	Count  int64
}

// TastingRepository defines tasting persistence operations, including the
// dashboard aggregates.
type TastingRepository interface {
	// CreateWithAnalyses writes the tasting and any analyses attached to it
	// in a single transaction so a partial failure leaves no records.
	CreateWithAnalyses(ctx context.Context, tasting *model.Tasting) error
	Update(ctx context.Context, tasting *model.Tasting) error
	FindByID(ctx context.Context, id uint) (*model.Tasting, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Tasting, error)
	// DeleteCascade removes the tasting and its three analysis records in
	// one transaction.
	DeleteCascade(ctx context.Context, id uint) error

	// The upserts replace the single analysis record of the tasting,
	// last-write-wins. No merging across calls.
	UpsertVisual(ctx context.Context, analysis *model.VisualAnalysis) error
	UpsertOlfactory(ctx context.Context, analysis *model.OlfactoryAnalysis) error
	UpsertGustatory(ctx context.Context, analysis *model.GustatoryAnalysis) error

	CountByUser(ctx context.Context, userID uint) (int64, error)
	// RegionCounts returns tasted regions of the user's wines ordered by
	// tasting count descending, ties broken by earliest tasting first.
	// Wines with an empty region are excluded.
	RegionCounts(ctx context.Context, userID uint) ([]RegionCount, error)
}

type tastingRepository struct {
	db *gorm.DB
}

// NewTastingRepository creates a new tasting repository.
func NewTastingRepository(db *gorm.DB) TastingRepository {
	return &tastingRepository{db: db}
}

func (r *tastingRepository) CreateWithAnalyses(ctx context.Context, tasting *model.Tasting) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		visual, olfactory, gustatory := tasting.VisualAnalysis, tasting.OlfactoryAnalysis, tasting.GustatoryAnalysis
		tasting.VisualAnalysis, tasting.OlfactoryAnalysis, tasting.GustatoryAnalysis = nil, nil, nil
		if err := tx.Create(tasting).Error; err != nil {
			return err
		}
		if visual != nil {
			visual.TastingID = tasting.ID
			if err := tx.Create(visual).Error; err != nil {
				return err
			}
			tasting.VisualAnalysis = visual
		}
		if olfactory != nil {
			olfactory.TastingID = tasting.ID
			if err := tx.Create(olfactory).Error; err != nil {
				return err
			}
			tasting.OlfactoryAnalysis = olfactory
		}
		if gustatory != nil {
			gustatory.TastingID = tasting.ID
			if err := tx.Create(gustatory).Error; err != nil {
				return err
			}
			tasting.GustatoryAnalysis = gustatory
		}
		return nil
	})
}

func (r *tastingRepository) Update(ctx context.Context, tasting *model.Tasting) error {
	return r.db.WithContext(ctx).Omit("VisualAnalysis", "OlfactoryAnalysis", "GustatoryAnalysis", "Wine").Save(tasting).Error
}

func (r *tastingRepository) FindByID(ctx context.Context, id uint) (*model.Tasting, error) {
	var tasting model.Tasting
	if err := r.db.WithContext(ctx).
		Preload("Wine").
		Preload("VisualAnalysis").
		Preload("OlfactoryAnalysis").
		Preload("GustatoryAnalysis").
		First(&tasting, id).Error; err != nil {
		return nil, err
	}
	return &tasting, nil
}

// ListByUser returns the user's tastings in insertion order with analyses
// preloaded.
func (r *tastingRepository) ListByUser(ctx context.Context, userID uint) ([]model.Tasting, error) {
	var tastings []model.Tasting
	if err := r.db.WithContext(ctx).
		Preload("Wine").
		Preload("VisualAnalysis").
		Preload("OlfactoryAnalysis").
		Preload("GustatoryAnalysis").
		Where("user_id = ?", userID).Order("id").Find(&tastings).Error; err != nil {
		return nil, err
	}
	return tastings, nil
}

func (r *tastingRepository) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tasting_id = ?", id).Delete(&model.VisualAnalysis{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tasting_id = ?", id).Delete(&model.OlfactoryAnalysis{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tasting_id = ?", id).Delete(&model.GustatoryAnalysis{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Tasting{}, id).Error
	})
}

func (r *tastingRepository) UpsertVisual(ctx context.Context, analysis *model.VisualAnalysis) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tasting_id = ?", analysis.TastingID).Delete(&model.VisualAnalysis{}).Error; err != nil {
			return err
		}
		return tx.Create(analysis).Error
	})
}

func (r *tastingRepository) UpsertOlfactory(ctx context.Context, analysis *model.OlfactoryAnalysis) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tasting_id = ?", analysis.TastingID).Delete(&model.OlfactoryAnalysis{}).Error; err != nil {
			return err
		}
		return tx.Create(analysis).Error
	})
}

func (r *tastingRepository) UpsertGustatory(ctx context.Context, analysis *model.GustatoryAnalysis) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tasting_id = ?", analysis.TastingID).Delete(&model.GustatoryAnalysis{}).Error; err != nil {
			return err
		}
		return tx.Create(analysis).Error
	})
}

func (r *tastingRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Tasting{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *tastingRepository) RegionCounts(ctx context.Context, userID uint) ([]RegionCount, error) {
	var rows []RegionCount
	err := r.db.WithContext(ctx).
		Table("tastings").
		Select("wines.region AS region, COUNT(*) AS count").
		Joins("JOIN wines ON wines.id = tastings.wine_id").
		Where("tastings.user_id = ? AND wines.region <> ''", userID).
		Group("wines.region").
		Order("count DESC, MIN(tastings.id) ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
