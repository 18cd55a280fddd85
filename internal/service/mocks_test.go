package service

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"vinolog/internal/model"
	"vinolog/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

// MockWineRepository is a mock implementation of WineRepository.
type MockWineRepository struct {
	mock.Mock
}

func (m *MockWineRepository) Create(ctx context.Context, wine *model.Wine) error {
	args := m.Called(ctx, wine)
	return args.Error(0)
}

func (m *MockWineRepository) Update(ctx context.Context, wine *model.Wine) error {
	args := m.Called(ctx, wine)
	return args.Error(0)
}

func (m *MockWineRepository) FindByID(ctx context.Context, id uint) (*model.Wine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Wine), args.Error(1)
}

func (m *MockWineRepository) ListByUser(ctx context.Context, userID uint) ([]model.Wine, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Wine), args.Error(1)
}

func (m *MockWineRepository) DeleteCascade(ctx context.Context, id uint) ([]string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockTastingRepository is a mock implementation of TastingRepository.
type MockTastingRepository struct {
	mock.Mock
}

func (m *MockTastingRepository) CreateWithAnalyses(ctx context.Context, tasting *model.Tasting) error {
	args := m.Called(ctx, tasting)
	return args.Error(0)
}

func (m *MockTastingRepository) Update(ctx context.Context, tasting *model.Tasting) error {
	args := m.Called(ctx, tasting)
	return args.Error(0)
}

func (m *MockTastingRepository) FindByID(ctx context.Context, id uint) (*model.Tasting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tasting), args.Error(1)
}

func (m *MockTastingRepository) ListByUser(ctx context.Context, userID uint) ([]model.Tasting, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tasting), args.Error(1)
}

func (m *MockTastingRepository) DeleteCascade(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTastingRepository) UpsertVisual(ctx context.Context, analysis *model.VisualAnalysis) error {
	args := m.Called(ctx, analysis)
	return args.Error(0)
}

func (m *MockTastingRepository) UpsertOlfactory(ctx context.Context, analysis *model.OlfactoryAnalysis) error {
	args := m.Called(ctx, analysis)
	return args.Error(0)
}

func (m *MockTastingRepository) UpsertGustatory(ctx context.Context, analysis *model.GustatoryAnalysis) error {
	args := m.Called(ctx, analysis)
	return args.Error(0)
}

func (m *MockTastingRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTastingRepository) RegionCounts(ctx context.Context, userID uint) ([]repository.RegionCount, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.RegionCount), args.Error(1)
}

// MockUploadRepository is a mock implementation of UploadRepository.
type MockUploadRepository struct {
	mock.Mock
}

func (m *MockUploadRepository) Create(ctx context.Context, upload *model.Upload) error {
	args := m.Called(ctx, upload)
	return args.Error(0)
}

func (m *MockUploadRepository) FindByID(ctx context.Context, id uint) (*model.Upload, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Upload), args.Error(1)
}

func (m *MockUploadRepository) ListByUser(ctx context.Context, userID uint) ([]model.Upload, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Upload), args.Error(1)
}

func (m *MockUploadRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uint, email string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, email, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uint, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uint), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

// MockObjectStore is a mock implementation of storage.ObjectStore.
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, objectName, reader, size, contentType)
	return args.Error(0)
}

func (m *MockObjectStore) PresignedURL(ctx context.Context, objectName string) (string, error) {
	args := m.Called(ctx, objectName)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStore) Remove(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}
