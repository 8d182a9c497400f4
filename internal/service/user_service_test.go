package service

import (
	"testing"

	"github.com/rumdien113/tiktok-api/internal/apperr"
	"github.com/rumdien113/tiktok-api/internal/model"
	"github.com/rumdien113/tiktok-api/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestCreateUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo)

	mockRepo.On("Create", mock.AnythingOfType("*model.User")).Return(nil)

	user, err := service.CreateUser(CreateUserRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	})
	assert.NoError(t, err)
	assert.Equal(t, "testuser", user.Username)
	// Password is stored as a bcrypt hash, never plaintext
	assert.NotEqual(t, "password123", user.Password)
	assert.True(t, util.CheckPassword(user.Password, "password123"))
	mockRepo.AssertExpectations(t)
}

func TestCreateUserDuplicate(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo)

	mockRepo.On("Create", mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)

	_, err := service.CreateUser(CreateUserRequest{
		Username: "taken",
		Email:    "taken@example.com",
		Password: "password123",
	})
	assert.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeConflict))
}

func TestCreateUserInvalidGender(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo)

	gender := "unknown"
	_, err := service.CreateUser(CreateUserRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
		Gender:   &gender,
	})
	assert.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeValidation))
	mockRepo.AssertNotCalled(t, "Create")
}

func TestUpdateUserPartial(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo)

	bio := "old bio"
	existing := &model.User{
		ID:       testUserA,
		Username: "original",
		Email:    "original@example.com",
		Password: "hash",
		Bio:      &bio,
	}

	mockRepo.On("FindByID", testUserA).Return(existing, nil)
	mockRepo.On("Update", mock.AnythingOfType("*model.User")).Return(nil)

	newBio := "new bio"
	user, err := service.UpdateUser(testUserA, UpdateUserRequest{Bio: &newBio})
	assert.NoError(t, err)
	// Untouched fields survive the partial merge
	assert.Equal(t, "original", user.Username)
	assert.Equal(t, "original@example.com", user.Email)
	assert.Equal(t, "new bio", *user.Bio)
	assert.Equal(t, testUserA, user.ID)
}

func TestUpdateUserNotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo)

	mockRepo.On("FindByID", testUserB).Return(nil, gorm.ErrRecordNotFound)

	username := "ghost"
	_, err := service.UpdateUser(testUserB, UpdateUserRequest{Username: &username})
	assert.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
}

func TestDeleteUserNotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo)

	mockRepo.On("Delete", testUserB).Return(gorm.ErrRecordNotFound)

	err := service.DeleteUser(testUserB)
	assert.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
}
