package service

import (
	"time"

	"github.com/rumdien113/tiktok-api/internal/apperr"
	"github.com/rumdien113/tiktok-api/internal/model"
	"github.com/rumdien113/tiktok-api/internal/repository"
	"github.com/rumdien113/tiktok-api/internal/util"
)

type UserService interface {
	CreateUser(req CreateUserRequest) (*model.User, error)
	GetUserByID(id string) (*model.User, error)
	GetUsers() ([]*model.User, error)
	UpdateUser(id string, req UpdateUserRequest) (*model.User, error)
	DeleteUser(id string) error
}

type CreateUserRequest struct {
	Username  string     `json:"username" binding:"required,max=128"`
	Email     string     `json:"email" binding:"required,email,max=128"`
	Password  string     `json:"password" binding:"required,min=6,max=72"`
	Firstname *string    `json:"firstname,omitempty"`
	Lastname  *string    `json:"lastname,omitempty"`
	Birthdate *time.Time `json:"birthdate,omitempty"`
	Phone     *string    `json:"phone,omitempty" binding:"omitempty,max=15"`
	Gender    *string    `json:"gender,omitempty"`
	Avatar    *string    `json:"avatar,omitempty" binding:"omitempty,max=255"`
	Bio       *string    `json:"bio,omitempty"`
}

type UpdateUserRequest struct {
	Username  *string    `json:"username,omitempty" binding:"omitempty,max=128"`
	Email     *string    `json:"email,omitempty" binding:"omitempty,email,max=128"`
	Password  *string    `json:"password,omitempty" binding:"omitempty,min=6,max=72"`
	Firstname *string    `json:"firstname,omitempty"`
	Lastname  *string    `json:"lastname,omitempty"`
	Birthdate *time.Time `json:"birthdate,omitempty"`
	Phone     *string    `json:"phone,omitempty" binding:"omitempty,max=15"`
	Gender    *string    `json:"gender,omitempty"`
	Avatar    *string    `json:"avatar,omitempty" binding:"omitempty,max=255"`
	Bio       *string    `json:"bio,omitempty"`
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// CreateUser creates a user with a hashed password.
func (s *userService) CreateUser(req CreateUserRequest) (*model.User, error) {
	if err := util.ValidateStruct(req); err != nil {
		return nil, apperr.Validation(util.ValidationMessage(err))
	}
	if req.Gender != nil && !model.IsValidGender(*req.Gender) {
		return nil, apperr.Validation("gender must be one of male, female, other")
	}

	hash, err := util.HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Internal("failed to hash password", err)
	}

	user := &model.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  hash,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Birthdate: req.Birthdate,
		Phone:     req.Phone,
		Gender:    req.Gender,
		Avatar:    req.Avatar,
		Bio:       req.Bio,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, apperr.FromDB(err, "user")
	}

	return user, nil
}

func (s *userService) GetUserByID(id string) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, apperr.FromDB(err, "user")
	}
	return user, nil
}

func (s *userService) GetUsers() ([]*model.User, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, apperr.FromDB(err, "user")
	}
	return users, nil
}

// UpdateUser applies a partial field merge. The id is immutable and never
// taken from the request body.
func (s *userService) UpdateUser(id string, req UpdateUserRequest) (*model.User, error) {
	if err := util.ValidateStruct(req); err != nil {
		return nil, apperr.Validation(util.ValidationMessage(err))
	}
	if req.Gender != nil && !model.IsValidGender(*req.Gender) {
		return nil, apperr.Validation("gender must be one of male, female, other")
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, apperr.FromDB(err, "user")
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := util.HashPassword(*req.Password)
		if err != nil {
			return nil, apperr.Internal("failed to hash password", err)
		}
		user.Password = hash
	}
	if req.Firstname != nil {
		user.Firstname = req.Firstname
	}
	if req.Lastname != nil {
		user.Lastname = req.Lastname
	}
	if req.Birthdate != nil {
		user.Birthdate = req.Birthdate
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Gender != nil {
		user.Gender = req.Gender
	}
	if req.Avatar != nil {
		user.Avatar = req.Avatar
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperr.FromDB(err, "user")
	}

	return user, nil
}

func (s *userService) DeleteUser(id string) error {
	if err := s.userRepo.Delete(id); err != nil {
		return apperr.FromDB(err, "user")
	}
	return nil
}
