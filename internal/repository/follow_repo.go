package repository

import (
	"github.com/rumdien113/tiktok-api/internal/model"

	"gorm.io/gorm"
)

type FollowRepository interface {
	Create(follow *model.Follow) error
	FindByPair(followerID, followedID string) (*model.Follow, error)
	FindFollowers(followedID string) ([]*model.Follow, error)
	FindFollowing(followerID string) ([]*model.Follow, error)
	DeleteByPair(followerID, followedID string) error
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(follow *model.Follow) error {
	return r.db.Create(follow).Error
}

func (r *followRepository) FindByPair(followerID, followedID string) (*model.Follow, error) {
	var follow model.Follow
	err := r.db.Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		First(&follow).Error
	if err != nil {
		return nil, err
	}
	return &follow, nil
}

// FindFollowers returns the follow rows pointing at a user.
func (r *followRepository) FindFollowers(followedID string) ([]*model.Follow, error) {
	var follows []*model.Follow
	err := r.db.Where("followed_id = ?", followedID).Order("created_at DESC").Find(&follows).Error
	if err != nil {
		return nil, err
	}
	return follows, nil
}

// FindFollowing returns the follow rows originating from a user.
func (r *followRepository) FindFollowing(followerID string) ([]*model.Follow, error) {
	var follows []*model.Follow
	err := r.db.Where("follower_id = ?", followerID).Order("created_at DESC").Find(&follows).Error
	if err != nil {
		return nil, err
	}
	return follows, nil
}

func (r *followRepository) DeleteByPair(followerID, followedID string) error {
	res := r.db.Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&model.Follow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
