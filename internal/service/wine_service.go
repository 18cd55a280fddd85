package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"vinolog/internal/cache"
	"vinolog/internal/errors"
	"vinolog/internal/model"
	"vinolog/internal/repository"
	"vinolog/internal/storage"
)

const (
	minVintageYear = 1900
	maxVintageYear = 2100
)

// WineInput carries the caller-settable attributes of a wine. Name is the
// only required field; nil pointers mean "not provided".
type WineInput struct {
	Name     string
	Year     *int
	Type     string
	Region   string
	Alcohol  *float64
	Price    *decimal.Decimal
	Producer string
}

// WineService exposes the per-user wine catalog. Every operation on an
// existing wine checks that the caller owns it: a wine that exists but
// belongs to someone else is ErrForbidden, never ErrNotFound.
type WineService interface {
	ListWines(ctx context.Context, userID uint) ([]model.Wine, error)
	GetWine(ctx context.Context, userID, wineID uint) (*model.Wine, error)
	AddWine(ctx context.Context, userID uint, input WineInput) (*model.Wine, error)
	UpdateWine(ctx context.Context, userID, wineID uint, input WineInput) (*model.Wine, error)
	DeleteWine(ctx context.Context, userID, wineID uint) error
}

type wineService struct {
	wineRepo repository.WineRepository
	store    storage.ObjectStore
	cache    *cache.Client
}

// NewWineService builds a WineService.
func NewWineService(wineRepo repository.WineRepository, store storage.ObjectStore, cache *cache.Client) WineService {
	return &wineService{wineRepo: wineRepo, store: store, cache: cache}
}

func (s *wineService) ListWines(ctx context.Context, userID uint) ([]model.Wine, error) {
	return s.wineRepo.ListByUser(ctx, userID)
}

func (s *wineService) GetWine(ctx context.Context, userID, wineID uint) (*model.Wine, error) {
	return s.ownedWine(ctx, userID, wineID)
}

func (s *wineService) AddWine(ctx context.Context, userID uint, input WineInput) (*model.Wine, error) {
	if err := validateWineInput(input); err != nil {
		return nil, err
	}

	wine := &model.Wine{
		UserID:   userID,
		Name:     strings.TrimSpace(input.Name),
		Year:     input.Year,
		Type:     input.Type,
		Region:   input.Region,
		Alcohol:  input.Alcohol,
		Price:    input.Price,
		Producer: input.Producer,
	}

	if err := s.wineRepo.Create(ctx, wine); err != nil {
		return nil, fmt.Errorf("create wine: %w", err)
	}

	_ = s.cache.Delete(ctx, statsCacheKey(userID))
	return wine, nil
}

// UpdateWine applies the full attribute set atomically; the owner never
// changes.
func (s *wineService) UpdateWine(ctx context.Context, userID, wineID uint, input WineInput) (*model.Wine, error) {
	wine, err := s.ownedWine(ctx, userID, wineID)
	if err != nil {
		return nil, err
	}
	if err := validateWineInput(input); err != nil {
		return nil, err
	}

	wine.Name = strings.TrimSpace(input.Name)
	wine.Year = input.Year
	wine.Type = input.Type
	wine.Region = input.Region
	wine.Alcohol = input.Alcohol
	wine.Price = input.Price
	wine.Producer = input.Producer

	if err := s.wineRepo.Update(ctx, wine); err != nil {
		return nil, fmt.Errorf("update wine: %w", err)
	}

	_ = s.cache.Delete(ctx, statsCacheKey(userID))
	return wine, nil
}

// DeleteWine removes the wine and everything hanging off it: tastings with
// their analyses, and upload records. Rows go in one transaction; stored
// image blobs are removed best-effort afterwards.
func (s *wineService) DeleteWine(ctx context.Context, userID, wineID uint) error {
	if _, err := s.ownedWine(ctx, userID, wineID); err != nil {
		return err
	}

	objectNames, err := s.wineRepo.DeleteCascade(ctx, wineID)
	if err != nil {
		return fmt.Errorf("delete wine: %w", err)
	}

	for _, name := range objectNames {
		_ = s.store.Remove(ctx, name)
	}

	_ = s.cache.Delete(ctx, statsCacheKey(userID))
	return nil
}

func (s *wineService) ownedWine(ctx context.Context, userID, wineID uint) (*model.Wine, error) {
	wine, err := s.wineRepo.FindByID(ctx, wineID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrNotFound
		}
		return nil, fmt.Errorf("find wine: %w", err)
	}
	if wine.UserID != userID {
		return nil, errors.ErrForbidden
	}
	return wine, nil
}

func validateWineInput(input WineInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: name is required", errors.ErrValidation)
	}
	if input.Year != nil && (*input.Year < minVintageYear || *input.Year > maxVintageYear) {
		return fmt.Errorf("%w: year must be between %d and %d", errors.ErrValidation, minVintageYear, maxVintageYear)
	}
	if input.Alcohol != nil && (*input.Alcohol < 0 || *input.Alcohol > 100) {
		return fmt.Errorf("%w: alcohol must be between 0 and 100", errors.ErrValidation)
	}
	if input.Price != nil && input.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", errors.ErrValidation)
	}
	return nil
}
