package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "inkwell/internal/errors"
	"inkwell/internal/model"
)

func TestUserService_UpdateUser(t *testing.T) {
	userID := uuid.New()

	stored := func() *model.User {
		return &model.User{
			ID:             userID,
			Email:          "a@x.com",
			Username:       "alice",
			ProfilePicture: model.DefaultProfilePicture,
		}
	}

	t.Run("self edit", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(stored(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		picture := "avatar.png"
		service := NewUserService(mockRepo, nil)
		user, err := service.UpdateUser(context.Background(), userID, userID, UserUpdate{ProfilePicture: &picture})

		assert.NoError(t, err)
		assert.Equal(t, "avatar.png", user.ProfilePicture)
		// Omitted fields stay as they were.
		assert.Equal(t, "alice", user.Username)
		mockRepo.AssertExpectations(t)
	})

	t.Run("editing another user is forbidden", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(stored(), nil)

		username := "mallory"
		service := NewUserService(mockRepo, nil)
		_, err := service.UpdateUser(context.Background(), uuid.New(), userID, UserUpdate{Username: &username})

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("target missing", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		service := NewUserService(mockRepo, nil)
		_, err := service.UpdateUser(context.Background(), userID, userID, UserUpdate{})

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	userID := uuid.New()
	stored := &model.User{ID: userID, Email: "a@x.com", Username: "alice"}

	t.Run("self delete", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(stored, nil)
		mockRepo.On("Delete", mock.Anything, userID).Return(nil)

		service := NewUserService(mockRepo, nil)
		assert.NoError(t, service.DeleteUser(context.Background(), userID, userID))
		mockRepo.AssertExpectations(t)
	})

	t.Run("deleting another user is forbidden", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(stored, nil)

		service := NewUserService(mockRepo, nil)
		err := service.DeleteUser(context.Background(), uuid.New(), userID)

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
