package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"vinolog/internal/errors"
	"vinolog/internal/model"
)

func TestUserService_GetUser(t *testing.T) {
	t.Run("existing user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.User{ID: 7, Email: "taster@example.com"}, nil)

		service := NewUserService(mockRepo)
		user, err := service.GetUser(context.Background(), 7)

		assert.NoError(t, err)
		assert.Equal(t, "taster@example.com", user.Email)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		service := NewUserService(mockRepo)
		user, err := service.GetUser(context.Background(), 99)

		assert.ErrorIs(t, err, errors.ErrNotFound)
		assert.Nil(t, user)
	})
}

func TestUserService_ListUsers(t *testing.T) {
	t.Run("admin lists everyone", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("List", mock.Anything).Return([]model.User{
			{ID: 1, Email: "a@example.com"},
			{ID: 2, Email: "b@example.com"},
		}, nil)

		service := NewUserService(mockRepo)
		users, err := service.ListUsers(context.Background(), model.RoleAdmin)

		assert.NoError(t, err)
		assert.Len(t, users, 2)
		mockRepo.AssertExpectations(t)
	})

	t.Run("regular user is forbidden", func(t *testing.T) {
		mockRepo := new(MockUserRepository)

		service := NewUserService(mockRepo)
		users, err := service.ListUsers(context.Background(), model.RoleUser)

		assert.ErrorIs(t, err, errors.ErrForbidden)
		assert.Nil(t, users)
		mockRepo.AssertNotCalled(t, "List", mock.Anything)
	})
}
