package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"vinolog/internal/errors"
	"vinolog/internal/model"
)

func TestUploadService_UploadImage(t *testing.T) {
	wineID := uint(10)
	foreignWineID := uint(20)

	tests := []struct {
		name          string
		userID        uint
		wineID        *uint
		filename      string
		setupMock     func(*MockUploadRepository, *MockWineRepository, *MockObjectStore)
		expectedError error
	}{
		{
			name:     "upload without wine reference",
			userID:   1,
			filename: "label.jpg",
			setupMock: func(mUpload *MockUploadRepository, mWine *MockWineRepository, mStore *MockObjectStore) {
				mStore.On("Put", mock.Anything, mock.Anything, mock.Anything, int64(4), "image/jpeg").Return(nil)
				mUpload.On("Create", mock.Anything, mock.AnythingOfType("*model.Upload")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "upload attached to owned wine",
			userID:   1,
			wineID:   &wineID,
			filename: "bottle.png",
			setupMock: func(mUpload *MockUploadRepository, mWine *MockWineRepository, mStore *MockObjectStore) {
				mWine.On("FindByID", mock.Anything, uint(10)).Return(&model.Wine{ID: 10, UserID: 1}, nil)
				mStore.On("Put", mock.Anything, mock.Anything, mock.Anything, int64(4), "image/jpeg").Return(nil)
				mUpload.On("Create", mock.Anything, mock.AnythingOfType("*model.Upload")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "wine belongs to someone else",
			userID:   1,
			wineID:   &foreignWineID,
			filename: "bottle.png",
			setupMock: func(mUpload *MockUploadRepository, mWine *MockWineRepository, mStore *MockObjectStore) {
				mWine.On("FindByID", mock.Anything, uint(20)).Return(&model.Wine{ID: 20, UserID: 2}, nil)
			},
			expectedError: errors.ErrForbidden,
		},
		{
			name:     "referenced wine does not exist",
			userID:   1,
			wineID:   &wineID,
			filename: "bottle.png",
			setupMock: func(mUpload *MockUploadRepository, mWine *MockWineRepository, mStore *MockObjectStore) {
				mWine.On("FindByID", mock.Anything, uint(10)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrNotFound,
		},
		{
			name:          "missing filename",
			userID:        1,
			filename:      "  ",
			setupMock:     func(mUpload *MockUploadRepository, mWine *MockWineRepository, mStore *MockObjectStore) {},
			expectedError: errors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUploadRepo := new(MockUploadRepository)
			mockWineRepo := new(MockWineRepository)
			mockStore := new(MockObjectStore)
			tt.setupMock(mockUploadRepo, mockWineRepo, mockStore)

			service := NewUploadService(mockUploadRepo, mockWineRepo, mockStore)
			upload, err := service.UploadImage(context.Background(), tt.userID, tt.wineID, tt.filename, "image/jpeg", strings.NewReader("blob"), 4)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, upload)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, upload)
				assert.Equal(t, tt.userID, upload.UserID)
				assert.Equal(t, tt.filename, upload.Filename)
				assert.NotEmpty(t, upload.ObjectName)
			}

			mockUploadRepo.AssertExpectations(t)
			mockWineRepo.AssertExpectations(t)
			mockStore.AssertExpectations(t)
		})
	}
}

func TestUploadService_UploadImageRecordFailure(t *testing.T) {
	// When the database insert fails the stored blob must not be left behind.
	mockUploadRepo := new(MockUploadRepository)
	mockWineRepo := new(MockWineRepository)
	mockStore := new(MockObjectStore)

	mockStore.On("Put", mock.Anything, mock.Anything, mock.Anything, int64(4), "image/jpeg").Return(nil)
	mockUploadRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Upload")).Return(assert.AnError)
	mockStore.On("Remove", mock.Anything, mock.Anything).Return(nil)

	service := NewUploadService(mockUploadRepo, mockWineRepo, mockStore)
	upload, err := service.UploadImage(context.Background(), 1, nil, "label.jpg", "image/jpeg", strings.NewReader("blob"), 4)

	assert.Error(t, err)
	assert.Nil(t, upload)
	mockStore.AssertExpectations(t)
}

func TestUploadService_GetUploadURL(t *testing.T) {
	t.Run("owner gets a presigned URL", func(t *testing.T) {
		mockUploadRepo := new(MockUploadRepository)
		mockStore := new(MockObjectStore)
		mockUploadRepo.On("FindByID", mock.Anything, uint(3)).Return(&model.Upload{ID: 3, UserID: 1, ObjectName: "users/1/x.jpg"}, nil)
		mockStore.On("PresignedURL", mock.Anything, "users/1/x.jpg").Return("https://minio.local/users/1/x.jpg?sig=abc", nil)

		service := NewUploadService(mockUploadRepo, new(MockWineRepository), mockStore)
		url, err := service.GetUploadURL(context.Background(), 1, 3)

		assert.NoError(t, err)
		assert.Contains(t, url, "users/1/x.jpg")
		mockUploadRepo.AssertExpectations(t)
		mockStore.AssertExpectations(t)
	})

	t.Run("foreign upload is forbidden", func(t *testing.T) {
		mockUploadRepo := new(MockUploadRepository)
		mockUploadRepo.On("FindByID", mock.Anything, uint(3)).Return(&model.Upload{ID: 3, UserID: 2}, nil)

		service := NewUploadService(mockUploadRepo, new(MockWineRepository), new(MockObjectStore))
		url, err := service.GetUploadURL(context.Background(), 1, 3)

		assert.ErrorIs(t, err, errors.ErrForbidden)
		assert.Empty(t, url)
	})
}

func TestUploadService_DeleteUpload(t *testing.T) {
	t.Run("record first, then blob", func(t *testing.T) {
		mockUploadRepo := new(MockUploadRepository)
		mockStore := new(MockObjectStore)
		mockUploadRepo.On("FindByID", mock.Anything, uint(3)).Return(&model.Upload{ID: 3, UserID: 1, ObjectName: "users/1/x.jpg"}, nil)
		mockUploadRepo.On("Delete", mock.Anything, uint(3)).Return(nil)
		mockStore.On("Remove", mock.Anything, "users/1/x.jpg").Return(nil)

		service := NewUploadService(mockUploadRepo, new(MockWineRepository), mockStore)
		assert.NoError(t, service.DeleteUpload(context.Background(), 1, 3))
		mockUploadRepo.AssertExpectations(t)
		mockStore.AssertExpectations(t)
	})

	t.Run("missing upload", func(t *testing.T) {
		mockUploadRepo := new(MockUploadRepository)
		mockUploadRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		service := NewUploadService(mockUploadRepo, new(MockWineRepository), new(MockObjectStore))
		err := service.DeleteUpload(context.Background(), 1, 99)

		assert.ErrorIs(t, err, errors.ErrNotFound)
		mockUploadRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
