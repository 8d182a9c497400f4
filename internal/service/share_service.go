package service

import (
	"github.com/rumdien113/tiktok-api/internal/apperr"
	"github.com/rumdien113/tiktok-api/internal/model"
	"github.com/rumdien113/tiktok-api/internal/repository"
	"github.com/rumdien113/tiktok-api/internal/util"
)

type ShareService interface {
	CreateShare(req CreateShareRequest) (*model.Share, error)
	GetShareByID(id string) (*model.Share, error)
	GetShares() ([]*model.Share, error)
	GetSharesByPost(postID string) ([]*model.Share, error)
	DeleteShare(id string) error
}

type CreateShareRequest struct {
	UserID string `json:"user_id" binding:"required,uuid4"`
	PostID string `json:"post_id" binding:"required,uuid4"`
}

type shareService struct {
	shareRepo repository.ShareRepository
}

func NewShareService(shareRepo repository.ShareRepository) ShareService {
	return &shareService{shareRepo: shareRepo}
}

// CreateShare records a share. Repeat shares of the same post by the same
// user are allowed, so there is no find-or-create here.
func (s *shareService) CreateShare(req CreateShareRequest) (*model.Share, error) {
	if err := util.ValidateStruct(req); err != nil {
		return nil, apperr.Validation(util.ValidationMessage(err))
	}

	share := &model.Share{
		UserID: req.UserID,
		PostID: req.PostID,
	}

	if err := s.shareRepo.Create(share); err != nil {
		return nil, apperr.FromDB(err, "share")
	}

	return share, nil
}

func (s *shareService) GetShareByID(id string) (*model.Share, error) {
	share, err := s.shareRepo.FindByID(id)
	if err != nil {
		return nil, apperr.FromDB(err, "share")
	}
	return share, nil
}

func (s *shareService) GetShares() ([]*model.Share, error) {
	shares, err := s.shareRepo.FindAll()
	if err != nil {
		return nil, apperr.FromDB(err, "share")
	}
	return shares, nil
}

func (s *shareService) GetSharesByPost(postID string) ([]*model.Share, error) {
	shares, err := s.shareRepo.FindByPostID(postID)
	if err != nil {
		return nil, apperr.FromDB(err, "share")
	}
	return shares, nil
}

func (s *shareService) DeleteShare(id string) error {
	if err := s.shareRepo.Delete(id); err != nil {
		return apperr.FromDB(err, "share")
	}
	return nil
}
