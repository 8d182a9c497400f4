package service

import (
	"testing"

	"github.com/rumdien113/tiktok-api/internal/apperr"
	"github.com/rumdien113/tiktok-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestCreateFollow(t *testing.T) {
	mockRepo := new(MockFollowRepository)
	service := NewFollowService(mockRepo)

	mockRepo.On("Create", mock.AnythingOfType("*model.Follow")).Return(nil)

	follow, created, err := service.CreateFollow(FollowRequest{
		FollowerID: testUserA,
		FollowedID: testUserB,
	})
	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, testUserA, follow.FollowerID)
	assert.Equal(t, testUserB, follow.FollowedID)
	mockRepo.AssertExpectations(t)
}

func TestCreateFollowSelf(t *testing.T) {
	mockRepo := new(MockFollowRepository)
	service := NewFollowService(mockRepo)

	_, _, err := service.CreateFollow(FollowRequest{
		FollowerID: testUserA,
		FollowedID: testUserA,
	})
	assert.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeValidation))
	mockRepo.AssertNotCalled(t, "Create")
}

func TestCreateFollowDuplicate(t *testing.T) {
	mockRepo := new(MockFollowRepository)
	service := NewFollowService(mockRepo)

	existing := &model.Follow{
		ID:         testReport,
		FollowerID: testUserA,
		FollowedID: testUserB,
	}

	mockRepo.On("Create", mock.AnythingOfType("*model.Follow")).Return(gorm.ErrDuplicatedKey)
	mockRepo.On("FindByPair", testUserA, testUserB).Return(existing, nil)

	follow, created, err := service.CreateFollow(FollowRequest{
		FollowerID: testUserA,
		FollowedID: testUserB,
	})
	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing.ID, follow.ID)
	mockRepo.AssertExpectations(t)
}

func TestDeleteFollowNotFound(t *testing.T) {
	mockRepo := new(MockFollowRepository)
	service := NewFollowService(mockRepo)

	mockRepo.On("DeleteByPair", testUserA, testUserB).Return(gorm.ErrRecordNotFound)

	err := service.DeleteFollow(FollowRequest{
		FollowerID: testUserA,
		FollowedID: testUserB,
	})
	assert.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
}

func TestGetFollowersAndFollowing(t *testing.T) {
	mockRepo := new(MockFollowRepository)
	service := NewFollowService(mockRepo)

	aFollowsB := &model.Follow{FollowerID: testUserA, FollowedID: testUserB}
	bFollowsA := &model.Follow{FollowerID: testUserB, FollowedID: testUserA}

	// A and B follow each other; each list carries exactly one row
	mockRepo.On("FindFollowers", testUserA).Return([]*model.Follow{bFollowsA}, nil)
	mockRepo.On("FindFollowing", testUserA).Return([]*model.Follow{aFollowsB}, nil)

	followers, err := service.GetFollowers(testUserA)
	assert.NoError(t, err)
	assert.Len(t, followers, 1)
	assert.Equal(t, testUserB, followers[0].FollowerID)

	following, err := service.GetFollowing(testUserA)
	assert.NoError(t, err)
	assert.Len(t, following, 1)
	assert.Equal(t, testUserB, following[0].FollowedID)
}
