package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"vinolog/internal/cache"
	"vinolog/internal/errors"
	"vinolog/internal/model"
	"vinolog/internal/repository"
)

// TastingInput carries the caller-settable attributes of a tasting. The
// optional analyses are created together with the tasting in one
// transaction.
type TastingInput struct {
	WineID      uint
	TastingDate time.Time
	Location    string
	Description string
	Visual      *model.VisualAnalysis
	Olfactory   *model.OlfactoryAnalysis
	Gustatory   *model.GustatoryAnalysis
}

// TastingService exposes the tasting diary. Ownership is checked on every
// operation against an existing tasting, and a new tasting may only target a
// wine the caller owns.
type TastingService interface {
	ListTastings(ctx context.Context, userID uint) ([]model.Tasting, error)
	GetTasting(ctx context.Context, userID, tastingID uint) (*model.Tasting, error)
	AddTasting(ctx context.Context, userID uint, input TastingInput) (*model.Tasting, error)
	UpdateTasting(ctx context.Context, userID, tastingID uint, input TastingInput) (*model.Tasting, error)
	DeleteTasting(ctx context.Context, userID, tastingID uint) error

	SetVisualAnalysis(ctx context.Context, userID, tastingID uint, fields model.VisualAnalysis) (*model.VisualAnalysis, error)
	SetOlfactoryAnalysis(ctx context.Context, userID, tastingID uint, fields model.OlfactoryAnalysis) (*model.OlfactoryAnalysis, error)
	SetGustatoryAnalysis(ctx context.Context, userID, tastingID uint, fields model.GustatoryAnalysis) (*model.GustatoryAnalysis, error)
}

type tastingService struct {
	tastingRepo repository.TastingRepository
	wineRepo    repository.WineRepository
	cache       *cache.Client
	validator   *AnalysisValidator
}

// NewTastingService builds a TastingService.
func NewTastingService(tastingRepo repository.TastingRepository, wineRepo repository.WineRepository, cache *cache.Client) TastingService {
	return &tastingService{
		tastingRepo: tastingRepo,
		wineRepo:    wineRepo,
		cache:       cache,
		validator:   NewAnalysisValidator(),
	}
}

func (s *tastingService) ListTastings(ctx context.Context, userID uint) ([]model.Tasting, error) {
	return s.tastingRepo.ListByUser(ctx, userID)
}

func (s *tastingService) GetTasting(ctx context.Context, userID, tastingID uint) (*model.Tasting, error) {
	return s.ownedTasting(ctx, userID, tastingID)
}

// AddTasting records a tasting against one of the caller's own wines. A wine
// that exists but belongs to another user is ErrForbidden.
func (s *tastingService) AddTasting(ctx context.Context, userID uint, input TastingInput) (*model.Tasting, error) {
	wine, err := s.wineRepo.FindByID(ctx, input.WineID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrNotFound
		}
		return nil, fmt.Errorf("find wine: %w", err)
	}
	if wine.UserID != userID {
		return nil, errors.ErrForbidden
	}

	if err := s.validateAnalyses(input); err != nil {
		return nil, err
	}

	tasting := &model.Tasting{
		UserID:            userID,
		WineID:            input.WineID,
		TastingDate:       input.TastingDate,
		Location:          input.Location,
		Description:       input.Description,
		VisualAnalysis:    input.Visual,
		OlfactoryAnalysis: input.Olfactory,
		GustatoryAnalysis: input.Gustatory,
	}
	if tasting.TastingDate.IsZero() {
		tasting.TastingDate = time.Now().UTC()
	}

	if err := s.tastingRepo.CreateWithAnalyses(ctx, tasting); err != nil {
		return nil, fmt.Errorf("create tasting: %w", err)
	}

	_ = s.cache.Delete(ctx, statsCacheKey(userID))
	return tasting, nil
}

// UpdateTasting edits date, location, and description. The wine reference
// and owner never change.
func (s *tastingService) UpdateTasting(ctx context.Context, userID, tastingID uint, input TastingInput) (*model.Tasting, error) {
	tasting, err := s.ownedTasting(ctx, userID, tastingID)
	if err != nil {
		return nil, err
	}

	if !input.TastingDate.IsZero() {
		tasting.TastingDate = input.TastingDate
	}
	tasting.Location = input.Location
	tasting.Description = input.Description

	if err := s.tastingRepo.Update(ctx, tasting); err != nil {
		return nil, fmt.Errorf("update tasting: %w", err)
	}
	return tasting, nil
}

// DeleteTasting removes the tasting and its analyses in one transaction so
// no orphan analysis rows remain.
func (s *tastingService) DeleteTasting(ctx context.Context, userID, tastingID uint) error {
	if _, err := s.ownedTasting(ctx, userID, tastingID); err != nil {
		return err
	}

	if err := s.tastingRepo.DeleteCascade(ctx, tastingID); err != nil {
		return fmt.Errorf("delete tasting: %w", err)
	}

	_ = s.cache.Delete(ctx, statsCacheKey(userID))
	return nil
}

// SetVisualAnalysis replaces the tasting's visual analysis, last-write-wins.
func (s *tastingService) SetVisualAnalysis(ctx context.Context, userID, tastingID uint, fields model.VisualAnalysis) (*model.VisualAnalysis, error) {
	if _, err := s.ownedTasting(ctx, userID, tastingID); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateVisual(&fields); err != nil {
		return nil, err
	}

	fields.ID = 0
	fields.TastingID = tastingID
	if err := s.tastingRepo.UpsertVisual(ctx, &fields); err != nil {
		return nil, fmt.Errorf("upsert visual analysis: %w", err)
	}
	return &fields, nil
}

// SetOlfactoryAnalysis replaces the tasting's olfactory analysis.
func (s *tastingService) SetOlfactoryAnalysis(ctx context.Context, userID, tastingID uint, fields model.OlfactoryAnalysis) (*model.OlfactoryAnalysis, error) {
	if _, err := s.ownedTasting(ctx, userID, tastingID); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateOlfactory(&fields); err != nil {
		return nil, err
	}

	fields.ID = 0
	fields.TastingID = tastingID
	if err := s.tastingRepo.UpsertOlfactory(ctx, &fields); err != nil {
		return nil, fmt.Errorf("upsert olfactory analysis: %w", err)
	}
	return &fields, nil
}

// SetGustatoryAnalysis replaces the tasting's gustatory analysis.
func (s *tastingService) SetGustatoryAnalysis(ctx context.Context, userID, tastingID uint, fields model.GustatoryAnalysis) (*model.GustatoryAnalysis, error) {
	if _, err := s.ownedTasting(ctx, userID, tastingID); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateGustatory(&fields); err != nil {
		return nil, err
	}

	fields.ID = 0
	fields.TastingID = tastingID
	if err := s.tastingRepo.UpsertGustatory(ctx, &fields); err != nil {
		return nil, fmt.Errorf("upsert gustatory analysis: %w", err)
	}
	return &fields, nil
}

func (s *tastingService) ownedTasting(ctx context.Context, userID, tastingID uint) (*model.Tasting, error) {
	tasting, err := s.tastingRepo.FindByID(ctx, tastingID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrNotFound
		}
		return nil, fmt.Errorf("find tasting: %w", err)
	}
	if tasting.UserID != userID {
		return nil, errors.ErrForbidden
	}
	return tasting, nil
}

func (s *tastingService) validateAnalyses(input TastingInput) error {
	if input.Visual != nil {
		if err := s.validator.ValidateVisual(input.Visual); err != nil {
			return err
		}
	}
	if input.Olfactory != nil {
		if err := s.validator.ValidateOlfactory(input.Olfactory); err != nil {
			return err
		}
	}
	if input.Gustatory != nil {
		if err := s.validator.ValidateGustatory(input.Gustatory); err != nil {
			return err
		}
	}
	return nil
}
