package repository

import (
	"github.com/rumdien113/tiktok-api/internal/model"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *model.Comment) error
	FindByID(id string) (*model.Comment, error)
	FindAll() ([]*model.Comment, error)
	FindByPostID(postID string) ([]*model.Comment, error)
	FindByParentID(parentID string) ([]*model.Comment, error)
	Update(comment *model.Comment) error
	Delete(id string) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) FindByID(id string) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.Where("id = ?", id).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) FindAll() ([]*model.Comment, error) {
	var comments []*model.Comment
	err := r.db.Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) FindByPostID(postID string) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := r.db.Where("post_id = ?", postID).Order("created_at ASC").Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// FindByParentID returns the direct replies of a comment, oldest first.
// Deeper levels are fetched iteratively by the caller, never recursively
// embedded.
func (r *commentRepository) FindByParentID(parentID string) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := r.db.Where("parent_comment_id = ?", parentID).Order("created_at ASC").Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) Update(comment *model.Comment) error {
	return r.db.Save(comment).Error
}

func (r *commentRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&model.Comment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
