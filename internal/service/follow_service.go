package service

import (
	"errors"

	"github.com/rumdien113/tiktok-api/internal/apperr"
	"github.com/rumdien113/tiktok-api/internal/model"
	"github.com/rumdien113/tiktok-api/internal/repository"
	"github.com/rumdien113/tiktok-api/internal/util"

	"gorm.io/gorm"
)

type FollowService interface {
	// CreateFollow is find-or-create on the (follower, followed) pair.
	CreateFollow(req FollowRequest) (follow *model.Follow, created bool, err error)
	DeleteFollow(req FollowRequest) error
	GetFollowers(userID string) ([]*model.Follow, error)
	GetFollowing(userID string) ([]*model.Follow, error)
}

type FollowRequest struct {
	FollowerID string `json:"follower_id" binding:"required,uuid4"`
	FollowedID string `json:"followed_id" binding:"required,uuid4"`
}

type followService struct {
	followRepo repository.FollowRepository
}

func NewFollowService(followRepo repository.FollowRepository) FollowService {
	return &followService{followRepo: followRepo}
}

func (s *followService) CreateFollow(req FollowRequest) (*model.Follow, bool, error) {
	if err := util.ValidateStruct(req); err != nil {
		return nil, false, apperr.Validation(util.ValidationMessage(err))
	}

	// The one business rule above raw storage: self-follow never reaches
	// the store.
	if req.FollowerID == req.FollowedID {
		return nil, false, apperr.Validation("cannot follow yourself")
	}

	follow := &model.Follow{
		FollowerID: req.FollowerID,
		FollowedID: req.FollowedID,
	}

	err := s.followRepo.Create(follow)
	if err == nil {
		return follow, true, nil
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		existing, findErr := s.followRepo.FindByPair(req.FollowerID, req.FollowedID)
		if findErr != nil {
			return nil, false, apperr.FromDB(findErr, "follow")
		}
		return existing, false, nil
	}

	return nil, false, apperr.FromDB(err, "follow")
}

func (s *followService) DeleteFollow(req FollowRequest) error {
	if err := util.ValidateStruct(req); err != nil {
		return apperr.Validation(util.ValidationMessage(err))
	}

	if err := s.followRepo.DeleteByPair(req.FollowerID, req.FollowedID); err != nil {
		return apperr.FromDB(err, "follow")
	}
	return nil
}

func (s *followService) GetFollowers(userID string) ([]*model.Follow, error) {
	follows, err := s.followRepo.FindFollowers(userID)
	if err != nil {
		return nil, apperr.FromDB(err, "follow")
	}
	return follows, nil
}

func (s *followService) GetFollowing(userID string) ([]*model.Follow, error) {
	follows, err := s.followRepo.FindFollowing(userID)
	if err != nil {
		return nil, apperr.FromDB(err, "follow")
	}
	return follows, nil
}
