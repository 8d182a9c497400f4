package service

import (
	"github.com/rumdien113/tiktok-api/internal/apperr"
	"github.com/rumdien113/tiktok-api/internal/model"
	"github.com/rumdien113/tiktok-api/internal/repository"
	"github.com/rumdien113/tiktok-api/internal/util"
)

type CommentService interface {
	CreateComment(req CreateCommentRequest) (*model.Comment, error)
	GetCommentByID(id string) (*model.Comment, error)
	GetComments() ([]*model.Comment, error)
	GetCommentsByPost(postID string) ([]*model.Comment, error)
	GetReplies(commentID string) ([]*model.Comment, error)
	UpdateComment(id string, req UpdateCommentRequest) (*model.Comment, error)
	DeleteComment(id string) error
}

type CreateCommentRequest struct {
	PostID   string  `json:"post_id" binding:"required,uuid4"`
	UserID   string  `json:"user_id" binding:"required,uuid4"`
	ParentID *string `json:"parent_comment_id,omitempty" binding:"omitempty,uuid4"` // null for root comments
	Content  string  `json:"content" binding:"required"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type commentService struct {
	commentRepo repository.CommentRepository
}

func NewCommentService(commentRepo repository.CommentRepository) CommentService {
	return &commentService{commentRepo: commentRepo}
}

// CreateComment creates a comment or a reply. post_id, user_id and
// parent_comment_id are all schema-enforced foreign keys, so a dangling
// reference surfaces as a constraint violation.
func (s *commentService) CreateComment(req CreateCommentRequest) (*model.Comment, error) {
	if err := util.ValidateStruct(req); err != nil {
		return nil, apperr.Validation(util.ValidationMessage(err))
	}

	comment := &model.Comment{
		PostID:   req.PostID,
		UserID:   req.UserID,
		ParentID: req.ParentID,
		Content:  req.Content,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, apperr.FromDB(err, "comment")
	}

	return comment, nil
}

func (s *commentService) GetCommentByID(id string) (*model.Comment, error) {
	comment, err := s.commentRepo.FindByID(id)
	if err != nil {
		return nil, apperr.FromDB(err, "comment")
	}
	return comment, nil
}

func (s *commentService) GetComments() ([]*model.Comment, error) {
	comments, err := s.commentRepo.FindAll()
	if err != nil {
		return nil, apperr.FromDB(err, "comment")
	}
	return comments, nil
}

func (s *commentService) GetCommentsByPost(postID string) ([]*model.Comment, error) {
	comments, err := s.commentRepo.FindByPostID(postID)
	if err != nil {
		return nil, apperr.FromDB(err, "comment")
	}
	return comments, nil
}

// GetReplies returns the direct replies of a comment. The parent must exist;
// a leaf comment yields an empty list.
func (s *commentService) GetReplies(commentID string) ([]*model.Comment, error) {
	if _, err := s.commentRepo.FindByID(commentID); err != nil {
		return nil, apperr.FromDB(err, "comment")
	}

	replies, err := s.commentRepo.FindByParentID(commentID)
	if err != nil {
		return nil, apperr.FromDB(err, "comment")
	}
	return replies, nil
}

func (s *commentService) UpdateComment(id string, req UpdateCommentRequest) (*model.Comment, error) {
	if err := util.ValidateStruct(req); err != nil {
		return nil, apperr.Validation(util.ValidationMessage(err))
	}

	comment, err := s.commentRepo.FindByID(id)
	if err != nil {
		return nil, apperr.FromDB(err, "comment")
	}

	comment.Content = req.Content

	if err := s.commentRepo.Update(comment); err != nil {
		return nil, apperr.FromDB(err, "comment")
	}

	return comment, nil
}

func (s *commentService) DeleteComment(id string) error {
	if err := s.commentRepo.Delete(id); err != nil {
		return apperr.FromDB(err, "comment")
	}
	return nil
}
