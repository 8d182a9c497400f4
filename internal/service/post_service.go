package service

import (
	"github.com/rumdien113/tiktok-api/internal/apperr"
	"github.com/rumdien113/tiktok-api/internal/model"
	"github.com/rumdien113/tiktok-api/internal/repository"
	"github.com/rumdien113/tiktok-api/internal/util"
)

type PostService interface {
	CreatePost(req CreatePostRequest) (*model.Post, error)
	GetPostByID(id string) (*model.Post, error)
	GetPosts() ([]*model.Post, error)
	GetPostsByUserID(userID string) ([]*model.Post, error)
	UpdatePost(id string, req UpdatePostRequest) (*model.Post, error)
	DeletePost(id string) error
}

type CreatePostRequest struct {
	UserID      string  `json:"user_id" binding:"required,uuid4"`
	Media       *string `json:"media,omitempty"`
	Description *string `json:"description,omitempty"`
}

type UpdatePostRequest struct {
	Media       *string `json:"media,omitempty"`
	Description *string `json:"description,omitempty"`
}

type postService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

// CreatePost creates a post. The user_id foreign key is enforced by the
// schema; a missing user surfaces as a constraint violation.
func (s *postService) CreatePost(req CreatePostRequest) (*model.Post, error) {
	if err := util.ValidateStruct(req); err != nil {
		return nil, apperr.Validation(util.ValidationMessage(err))
	}

	post := &model.Post{
		UserID:      req.UserID,
		Media:       req.Media,
		Description: req.Description,
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, apperr.FromDB(err, "post")
	}

	return post, nil
}

func (s *postService) GetPostByID(id string) (*model.Post, error) {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		return nil, apperr.FromDB(err, "post")
	}
	return post, nil
}

func (s *postService) GetPosts() ([]*model.Post, error) {
	posts, err := s.postRepo.FindAll()
	if err != nil {
		return nil, apperr.FromDB(err, "post")
	}
	return posts, nil
}

func (s *postService) GetPostsByUserID(userID string) ([]*model.Post, error) {
	posts, err := s.postRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperr.FromDB(err, "post")
	}
	return posts, nil
}

func (s *postService) UpdatePost(id string, req UpdatePostRequest) (*model.Post, error) {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		return nil, apperr.FromDB(err, "post")
	}

	if req.Media != nil {
		post.Media = req.Media
	}
	if req.Description != nil {
		post.Description = req.Description
	}

	if err := s.postRepo.Update(post); err != nil {
		return nil, apperr.FromDB(err, "post")
	}

	return post, nil
}

func (s *postService) DeletePost(id string) error {
	if err := s.postRepo.Delete(id); err != nil {
		return apperr.FromDB(err, "post")
	}
	return nil
}
