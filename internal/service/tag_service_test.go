package service

import (
	"testing"

	"github.com/rumdien113/tiktok-api/internal/apperr"
	"github.com/rumdien113/tiktok-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestCreateTagDuplicateName(t *testing.T) {
	mockTagRepo := new(MockTagRepository)
	service := NewTagService(mockTagRepo, new(MockPostTagRepository))

	mockTagRepo.On("Create", mock.AnythingOfType("*model.Tag")).Return(gorm.ErrDuplicatedKey)

	_, err := service.CreateTag(TagRequest{Name: "dance"})
	assert.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeConflict))
}

func TestAddTagToPost(t *testing.T) {
	mockPostTagRepo := new(MockPostTagRepository)
	service := NewTagService(new(MockTagRepository), mockPostTagRepo)

	mockPostTagRepo.On("Create", mock.AnythingOfType("*model.PostTag")).Return(nil)

	postTag, created, err := service.AddTagToPost(PostTagRequest{
		PostID: testPostID,
		TagID:  testTagID,
	})
	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, testPostID, postTag.PostID)
	assert.Equal(t, testTagID, postTag.TagID)
}

func TestAddTagToPostDuplicate(t *testing.T) {
	mockPostTagRepo := new(MockPostTagRepository)
	service := NewTagService(new(MockTagRepository), mockPostTagRepo)

	existing := &model.PostTag{ID: testReport, PostID: testPostID, TagID: testTagID}

	mockPostTagRepo.On("Create", mock.AnythingOfType("*model.PostTag")).Return(gorm.ErrDuplicatedKey)
	mockPostTagRepo.On("FindByPair", testPostID, testTagID).Return(existing, nil)

	postTag, created, err := service.AddTagToPost(PostTagRequest{
		PostID: testPostID,
		TagID:  testTagID,
	})
	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing.ID, postTag.ID)
}

func TestAddTagToPostDanglingTag(t *testing.T) {
	mockPostTagRepo := new(MockPostTagRepository)
	service := NewTagService(new(MockTagRepository), mockPostTagRepo)

	mockPostTagRepo.On("Create", mock.AnythingOfType("*model.PostTag")).Return(gorm.ErrForeignKeyViolated)

	_, _, err := service.AddTagToPost(PostTagRequest{
		PostID: testPostID,
		TagID:  testTagID,
	})
	assert.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeConflict))
}

func TestRemoveTagFromPostNotFound(t *testing.T) {
	mockPostTagRepo := new(MockPostTagRepository)
	service := NewTagService(new(MockTagRepository), mockPostTagRepo)

	mockPostTagRepo.On("DeleteByPair", testPostID, testTagID).Return(gorm.ErrRecordNotFound)

	err := service.RemoveTagFromPost(PostTagRequest{
		PostID: testPostID,
		TagID:  testTagID,
	})
	assert.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
}

func TestUpdateTag(t *testing.T) {
	mockTagRepo := new(MockTagRepository)
	service := NewTagService(mockTagRepo, new(MockPostTagRepository))

	existing := &model.Tag{ID: testTagID, Name: "dnace"}

	mockTagRepo.On("FindByID", testTagID).Return(existing, nil)
	mockTagRepo.On("Update", mock.AnythingOfType("*model.Tag")).Return(nil)

	tag, err := service.UpdateTag(testTagID, TagRequest{Name: "dance"})
	assert.NoError(t, err)
	assert.Equal(t, "dance", tag.Name)
}
