package service

import (
	"errors"

	"github.com/rumdien113/tiktok-api/internal/apperr"
	"github.com/rumdien113/tiktok-api/internal/model"
	"github.com/rumdien113/tiktok-api/internal/repository"
	"github.com/rumdien113/tiktok-api/internal/util"

	"gorm.io/gorm"
)

type TagService interface {
	CreateTag(req TagRequest) (*model.Tag, error)
	GetTagByID(id string) (*model.Tag, error)
	GetTags() ([]*model.Tag, error)
	UpdateTag(id string, req TagRequest) (*model.Tag, error)
	DeleteTag(id string) error

	// AddTagToPost is find-or-create on the (post, tag) pair.
	AddTagToPost(req PostTagRequest) (postTag *model.PostTag, created bool, err error)
	RemoveTagFromPost(req PostTagRequest) error
	GetTagsOfPost(postID string) ([]*model.PostTag, error)
	GetPostsByTag(tagID string) ([]*model.PostTag, error)
}

type TagRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

type PostTagRequest struct {
	PostID string `json:"post_id" binding:"required,uuid4"`
	TagID  string `json:"tag_id" binding:"required,uuid4"`
}

type tagService struct {
	tagRepo     repository.TagRepository
	postTagRepo repository.PostTagRepository
}

func NewTagService(tagRepo repository.TagRepository, postTagRepo repository.PostTagRepository) TagService {
	return &tagService{
		tagRepo:     tagRepo,
		postTagRepo: postTagRepo,
	}
}

func (s *tagService) CreateTag(req TagRequest) (*model.Tag, error) {
	if err := util.ValidateStruct(req); err != nil {
		return nil, apperr.Validation(util.ValidationMessage(err))
	}

	tag := &model.Tag{Name: req.Name}
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, apperr.FromDB(err, "tag")
	}

	return tag, nil
}

func (s *tagService) GetTagByID(id string) (*model.Tag, error) {
	tag, err := s.tagRepo.FindByID(id)
	if err != nil {
		return nil, apperr.FromDB(err, "tag")
	}
	return tag, nil
}

func (s *tagService) GetTags() ([]*model.Tag, error) {
	tags, err := s.tagRepo.FindAll()
	if err != nil {
		return nil, apperr.FromDB(err, "tag")
	}
	return tags, nil
}

func (s *tagService) UpdateTag(id string, req TagRequest) (*model.Tag, error) {
	if err := util.ValidateStruct(req); err != nil {
		return nil, apperr.Validation(util.ValidationMessage(err))
	}

	tag, err := s.tagRepo.FindByID(id)
	if err != nil {
		return nil, apperr.FromDB(err, "tag")
	}

	tag.Name = req.Name

	if err := s.tagRepo.Update(tag); err != nil {
		return nil, apperr.FromDB(err, "tag")
	}

	return tag, nil
}

func (s *tagService) DeleteTag(id string) error {
	if err := s.tagRepo.Delete(id); err != nil {
		return apperr.FromDB(err, "tag")
	}
	return nil
}

func (s *tagService) AddTagToPost(req PostTagRequest) (*model.PostTag, bool, error) {
	if err := util.ValidateStruct(req); err != nil {
		return nil, false, apperr.Validation(util.ValidationMessage(err))
	}

	postTag := &model.PostTag{
		PostID: req.PostID,
		TagID:  req.TagID,
	}

	err := s.postTagRepo.Create(postTag)
	if err == nil {
		return postTag, true, nil
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		existing, findErr := s.postTagRepo.FindByPair(req.PostID, req.TagID)
		if findErr != nil {
			return nil, false, apperr.FromDB(findErr, "post tag")
		}
		return existing, false, nil
	}

	return nil, false, apperr.FromDB(err, "post tag")
}

func (s *tagService) RemoveTagFromPost(req PostTagRequest) error {
	if err := util.ValidateStruct(req); err != nil {
		return apperr.Validation(util.ValidationMessage(err))
	}

	if err := s.postTagRepo.DeleteByPair(req.PostID, req.TagID); err != nil {
		return apperr.FromDB(err, "post tag")
	}
	return nil
}

func (s *tagService) GetTagsOfPost(postID string) ([]*model.PostTag, error) {
	postTags, err := s.postTagRepo.FindByPostID(postID)
	if err != nil {
		return nil, apperr.FromDB(err, "post tag")
	}
	return postTags, nil
}

func (s *tagService) GetPostsByTag(tagID string) ([]*model.PostTag, error) {
	postTags, err := s.postTagRepo.FindByTagID(tagID)
	if err != nil {
		return nil, apperr.FromDB(err, "post tag")
	}
	return postTags, nil
}
