package repository

import (
	"github.com/rumdien113/tiktok-api/internal/model"

	"gorm.io/gorm"
)

type ShareRepository interface {
	Create(share *model.Share) error
	FindByID(id string) (*model.Share, error)
	FindAll() ([]*model.Share, error)
	FindByPostID(postID string) ([]*model.Share, error)
	Delete(id string) error
}

type shareRepository struct {
	db *gorm.DB
}

func NewShareRepository(db *gorm.DB) ShareRepository {
	return &shareRepository{db: db}
}

func (r *shareRepository) Create(share *model.Share) error {
	return r.db.Create(share).Error
}

func (r *shareRepository) FindByID(id string) (*model.Share, error) {
	var share model.Share
	err := r.db.Where("id = ?", id).First(&share).Error
	if err != nil {
		return nil, err
	}
	return &share, nil
}

func (r *shareRepository) FindAll() ([]*model.Share, error) {
	var shares []*model.Share
	err := r.db.Find(&shares).Error
	if err != nil {
		return nil, err
	}
	return shares, nil
}

func (r *shareRepository) FindByPostID(postID string) ([]*model.Share, error) {
	var shares []*model.Share
	err := r.db.Where("post_id = ?", postID).Order("created_at DESC").Find(&shares).Error
	if err != nil {
		return nil, err
	}
	return shares, nil
}

func (r *shareRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&model.Share{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
