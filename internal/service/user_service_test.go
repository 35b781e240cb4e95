package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"shoporders/internal/errors"
	"shoporders/internal/model"
)

// Tests run with a nil cache client; the cache degrades to a no-op in
// that configuration so the repository is always consulted.

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)

	service := NewUserService(mockRepo, nil)
	user, err := service.CreateUser(context.Background(), &model.User{Name: "A", Email: "a@example.com"})

	assert.Equal(t, errors.ErrEmailTaken, err)
	assert.Nil(t, user)
	mockRepo.AssertExpectations(t)
}

func TestUserService_GetUser(t *testing.T) {
	t.Run("existing user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Name: "A"}, nil)

		user, err := NewUserService(mockRepo, nil).GetUser(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		user, err := NewUserService(mockRepo, nil).GetUser(context.Background(), 99)
		assert.Equal(t, errors.ErrUserNotFound, err)
		assert.Nil(t, user)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Run("returns deleted record", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(2)).Return(&model.User{ID: 2, Name: "B", Email: "b@example.com"}, nil)
		mockRepo.On("Delete", mock.Anything, uint(2)).Return(nil)

		user, err := NewUserService(mockRepo, nil).DeleteUser(context.Background(), 2)
		assert.NoError(t, err)
		assert.Equal(t, "b@example.com", user.Email)
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		user, err := NewUserService(mockRepo, nil).DeleteUser(context.Background(), 99)
		assert.Equal(t, errors.ErrUserNotFound, err)
		assert.Nil(t, user)
	})

	t.Run("row gone between lookup and delete", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(3)).Return(&model.User{ID: 3}, nil)
		mockRepo.On("Delete", mock.Anything, uint(3)).Return(gorm.ErrRecordNotFound)

		user, err := NewUserService(mockRepo, nil).DeleteUser(context.Background(), 3)
		assert.Equal(t, errors.ErrUserNotFound, err)
		assert.Nil(t, user)
	})
}
