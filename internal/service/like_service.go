package service

import (
	"errors"

	"github.com/rumdien113/tiktok-api/internal/apperr"
	"github.com/rumdien113/tiktok-api/internal/model"
	"github.com/rumdien113/tiktok-api/internal/repository"
	"github.com/rumdien113/tiktok-api/internal/util"

	"gorm.io/gorm"
)

type LikeService interface {
	// CreateLike is find-or-create on the (user, target) composite key.
	// Reports whether a new row was created; the returned like is the
	// existing row when created is false.
	CreateLike(req CreateLikeRequest) (like *model.Like, created bool, err error)
	DeleteLike(req DeleteLikeRequest) error
	GetLikesByTarget(targetType, targetID string) ([]*model.Like, error)
	CountLikes(targetType, targetID string) (int64, error)
}

type CreateLikeRequest struct {
	UserID     string `json:"user_id" binding:"required,uuid4"`
	TargetID   string `json:"target_id" binding:"required,uuid4"`
	TargetType string `json:"target_type" binding:"required,oneof=post comment"`
}

type DeleteLikeRequest struct {
	UserID     string `json:"user_id" binding:"required,uuid4"`
	TargetID   string `json:"target_id" binding:"required,uuid4"`
	TargetType string `json:"target_type" binding:"required,oneof=post comment"`
}

type likeService struct {
	likeRepo repository.LikeRepository
	targets  *TargetResolver
}

func NewLikeService(likeRepo repository.LikeRepository, targets *TargetResolver) LikeService {
	return &likeService{
		likeRepo: likeRepo,
		targets:  targets,
	}
}

func (s *likeService) CreateLike(req CreateLikeRequest) (*model.Like, bool, error) {
	if err := util.ValidateStruct(req); err != nil {
		return nil, false, apperr.Validation(util.ValidationMessage(err))
	}

	if err := s.targets.Validate(req.TargetType, req.TargetID, model.TargetTypePost, model.TargetTypeComment); err != nil {
		return nil, false, err
	}

	like := &model.Like{
		UserID:     req.UserID,
		TargetID:   req.TargetID,
		TargetType: req.TargetType,
	}

	err := s.likeRepo.Create(like)
	if err == nil {
		return like, true, nil
	}

	// A concurrent or repeated like lands on the unique index; surface the
	// existing row as the "already exists" outcome, not a generic failure.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		existing, findErr := s.likeRepo.FindByUserAndTarget(req.UserID, req.TargetType, req.TargetID)
		if findErr != nil {
			return nil, false, apperr.FromDB(findErr, "like")
		}
		return existing, false, nil
	}

	return nil, false, apperr.FromDB(err, "like")
}

func (s *likeService) DeleteLike(req DeleteLikeRequest) error {
	if err := util.ValidateStruct(req); err != nil {
		return apperr.Validation(util.ValidationMessage(err))
	}

	if err := s.likeRepo.DeleteByUserAndTarget(req.UserID, req.TargetType, req.TargetID); err != nil {
		return apperr.FromDB(err, "like")
	}
	return nil
}

func (s *likeService) GetLikesByTarget(targetType, targetID string) ([]*model.Like, error) {
	if targetType != model.TargetTypePost && targetType != model.TargetTypeComment {
		return nil, apperr.Validation("invalid target_type: " + targetType)
	}

	likes, err := s.likeRepo.FindByTarget(targetType, targetID)
	if err != nil {
		return nil, apperr.FromDB(err, "like")
	}
	return likes, nil
}

func (s *likeService) CountLikes(targetType, targetID string) (int64, error) {
	if targetType != model.TargetTypePost && targetType != model.TargetTypeComment {
		return 0, apperr.Validation("invalid target_type: " + targetType)
	}

	count, err := s.likeRepo.CountByTarget(targetType, targetID)
	if err != nil {
		return 0, apperr.FromDB(err, "like")
	}
	return count, nil
}
