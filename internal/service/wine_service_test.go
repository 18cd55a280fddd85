package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"vinolog/internal/errors"
	"vinolog/internal/model"
)

func TestWineService_AddWine(t *testing.T) {
	year := 2020
	badYear := 1800
	alcohol := 13.5
	badAlcohol := 120.0
	price := decimal.NewFromFloat(24.90)
	negativePrice := decimal.NewFromInt(-1)

	tests := []struct {
		name          string
		input         WineInput
		setupMock     func(*MockWineRepository)
		expectedError error
	}{
		{
			name: "successful add with all fields",
			input: WineInput{
				Name:     "Chablis Premier Cru",
				Year:     &year,
				Type:     "white",
				Region:   "Burgundy",
				Alcohol:  &alcohol,
				Price:    &price,
				Producer: "Domaine Laroche",
			},
			setupMock: func(m *MockWineRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Wine")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:  "name only is enough",
			input: WineInput{Name: "House Rosato"},
			setupMock: func(m *MockWineRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Wine")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "missing name",
			input:         WineInput{Name: "   "},
			setupMock:     func(m *MockWineRepository) {},
			expectedError: errors.ErrValidation,
		},
		{
			name:          "year out of range",
			input:         WineInput{Name: "Old Bottle", Year: &badYear},
			setupMock:     func(m *MockWineRepository) {},
			expectedError: errors.ErrValidation,
		},
		{
			name:          "alcohol out of range",
			input:         WineInput{Name: "Rocket Fuel", Alcohol: &badAlcohol},
			setupMock:     func(m *MockWineRepository) {},
			expectedError: errors.ErrValidation,
		},
		{
			name:          "negative price",
			input:         WineInput{Name: "Freebie", Price: &negativePrice},
			setupMock:     func(m *MockWineRepository) {},
			expectedError: errors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockWineRepository)
			tt.setupMock(mockRepo)

			service := NewWineService(mockRepo, new(MockObjectStore), nil)
			wine, err := service.AddWine(context.Background(), 1, tt.input)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, wine)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, wine)
				assert.Equal(t, uint(1), wine.UserID)
				assert.Equal(t, tt.input.Year, wine.Year)
				assert.Equal(t, tt.input.Region, wine.Region)
				assert.Equal(t, tt.input.Alcohol, wine.Alcohol)
				assert.Equal(t, tt.input.Price, wine.Price)
				assert.Equal(t, tt.input.Producer, wine.Producer)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestWineService_GetWine(t *testing.T) {
	tests := []struct {
		name          string
		userID        uint
		wineID        uint
		setupMock     func(*MockWineRepository)
		expectedError error
	}{
		{
			name:   "owner reads own wine",
			userID: 1,
			wineID: 10,
			setupMock: func(m *MockWineRepository) {
				m.On("FindByID", mock.Anything, uint(10)).Return(&model.Wine{ID: 10, UserID: 1, Name: "Barolo Riserva"}, nil)
			},
			expectedError: nil,
		},
		{
			name:   "someone else's wine is forbidden, not hidden",
			userID: 2,
			wineID: 10,
			setupMock: func(m *MockWineRepository) {
				m.On("FindByID", mock.Anything, uint(10)).Return(&model.Wine{ID: 10, UserID: 1}, nil)
			},
			expectedError: errors.ErrForbidden,
		},
		{
			name:   "missing wine",
			userID: 1,
			wineID: 99,
			setupMock: func(m *MockWineRepository) {
				m.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockWineRepository)
			tt.setupMock(mockRepo)

			service := NewWineService(mockRepo, new(MockObjectStore), nil)
			wine, err := service.GetWine(context.Background(), tt.userID, tt.wineID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, wine)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wineID, wine.ID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestWineService_UpdateWine(t *testing.T) {
	t.Run("owner updates all attributes", func(t *testing.T) {
		year := 2015
		mockRepo := new(MockWineRepository)
		mockRepo.On("FindByID", mock.Anything, uint(10)).Return(&model.Wine{ID: 10, UserID: 1, Name: "Old Name"}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Wine")).Return(nil)

		service := NewWineService(mockRepo, new(MockObjectStore), nil)
		wine, err := service.UpdateWine(context.Background(), 1, 10, WineInput{
			Name:   "Barolo Riserva",
			Year:   &year,
			Type:   "red",
			Region: "Piedmont",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Barolo Riserva", wine.Name)
		assert.Equal(t, &year, wine.Year)
		assert.Equal(t, "Piedmont", wine.Region)
		assert.Equal(t, uint(1), wine.UserID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("foreign wine is forbidden", func(t *testing.T) {
		mockRepo := new(MockWineRepository)
		mockRepo.On("FindByID", mock.Anything, uint(10)).Return(&model.Wine{ID: 10, UserID: 1}, nil)

		service := NewWineService(mockRepo, new(MockObjectStore), nil)
		wine, err := service.UpdateWine(context.Background(), 2, 10, WineInput{Name: "Hijacked"})

		assert.ErrorIs(t, err, errors.ErrForbidden)
		assert.Nil(t, wine)
		mockRepo.AssertExpectations(t)
	})

	t.Run("invalid input leaves the wine untouched", func(t *testing.T) {
		mockRepo := new(MockWineRepository)
		mockRepo.On("FindByID", mock.Anything, uint(10)).Return(&model.Wine{ID: 10, UserID: 1, Name: "Keep Me"}, nil)

		service := NewWineService(mockRepo, new(MockObjectStore), nil)
		_, err := service.UpdateWine(context.Background(), 1, 10, WineInput{Name: ""})

		assert.ErrorIs(t, err, errors.ErrValidation)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestWineService_DeleteWine(t *testing.T) {
	t.Run("cascade delete removes stored images", func(t *testing.T) {
		mockRepo := new(MockWineRepository)
		mockStore := new(MockObjectStore)
		mockRepo.On("FindByID", mock.Anything, uint(10)).Return(&model.Wine{ID: 10, UserID: 1}, nil)
		mockRepo.On("DeleteCascade", mock.Anything, uint(10)).Return([]string{"users/1/a.jpg", "users/1/b.jpg"}, nil)
		mockStore.On("Remove", mock.Anything, "users/1/a.jpg").Return(nil)
		mockStore.On("Remove", mock.Anything, "users/1/b.jpg").Return(nil)

		service := NewWineService(mockRepo, mockStore, nil)
		err := service.DeleteWine(context.Background(), 1, 10)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockStore.AssertExpectations(t)
	})

	t.Run("foreign wine is never deleted", func(t *testing.T) {
		mockRepo := new(MockWineRepository)
		mockRepo.On("FindByID", mock.Anything, uint(10)).Return(&model.Wine{ID: 10, UserID: 1}, nil)

		service := NewWineService(mockRepo, new(MockObjectStore), nil)
		err := service.DeleteWine(context.Background(), 2, 10)

		assert.ErrorIs(t, err, errors.ErrForbidden)
		mockRepo.AssertNotCalled(t, "DeleteCascade", mock.Anything, mock.Anything)
	})
}
