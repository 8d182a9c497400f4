package repository

import (
	"github.com/rumdien113/tiktok-api/internal/model"

	"gorm.io/gorm"
)

type PostTagRepository interface {
	Create(postTag *model.PostTag) error
	FindByPair(postID, tagID string) (*model.PostTag, error)
	FindByPostID(postID string) ([]*model.PostTag, error)
	FindByTagID(tagID string) ([]*model.PostTag, error)
	DeleteByPair(postID, tagID string) error
}

type postTagRepository struct {
	db *gorm.DB
}

func NewPostTagRepository(db *gorm.DB) PostTagRepository {
	return &postTagRepository{db: db}
}

func (r *postTagRepository) Create(postTag *model.PostTag) error {
	return r.db.Create(postTag).Error
}

func (r *postTagRepository) FindByPair(postID, tagID string) (*model.PostTag, error) {
	var postTag model.PostTag
	err := r.db.Where("post_id = ? AND tag_id = ?", postID, tagID).First(&postTag).Error
	if err != nil {
		return nil, err
	}
	return &postTag, nil
}

func (r *postTagRepository) FindByPostID(postID string) ([]*model.PostTag, error) {
	var postTags []*model.PostTag
	err := r.db.Where("post_id = ?", postID).Find(&postTags).Error
	if err != nil {
		return nil, err
	}
	return postTags, nil
}

func (r *postTagRepository) FindByTagID(tagID string) ([]*model.PostTag, error) {
	var postTags []*model.PostTag
	err := r.db.Where("tag_id = ?", tagID).Find(&postTags).Error
	if err != nil {
		return nil, err
	}
	return postTags, nil
}

func (r *postTagRepository) DeleteByPair(postID, tagID string) error {
	res := r.db.Where("post_id = ? AND tag_id = ?", postID, tagID).Delete(&model.PostTag{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
