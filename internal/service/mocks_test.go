package service

import (
	"github.com/rumdien113/tiktok-api/internal/model"

	"github.com/stretchr/testify/mock"
)

// Well-formed IDs shared across the service tests.
const (
	testUserA   = "11111111-1111-4111-8111-111111111111"
	testUserB   = "22222222-2222-4222-8222-222222222222"
	testPostID  = "33333333-3333-4333-8333-333333333333"
	testComment = "44444444-4444-4444-8444-444444444444"
	testReply   = "55555555-5555-4555-8555-555555555555"
	testTagID   = "66666666-6666-4666-8666-666666666666"
	testReport  = "77777777-7777-4777-8777-777777777777"
)

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id string) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(username string) (*model.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindAll() ([]*model.User, error) {
	args := m.Called()
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockPostRepository is a mock implementation of repository.PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(post *model.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) FindByID(id string) (*model.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostRepository) FindAll() ([]*model.Post, error) {
	args := m.Called()
	return args.Get(0).([]*model.Post), args.Error(1)
}

func (m *MockPostRepository) FindByUserID(userID string) ([]*model.Post, error) {
	args := m.Called(userID)
	return args.Get(0).([]*model.Post), args.Error(1)
}

func (m *MockPostRepository) Update(post *model.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockCommentRepository is a mock implementation of repository.CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *model.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByID(id string) (*model.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) FindAll() ([]*model.Comment, error) {
	args := m.Called()
	return args.Get(0).([]*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) FindByPostID(postID string) ([]*model.Comment, error) {
	args := m.Called(postID)
	return args.Get(0).([]*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) FindByParentID(parentID string) ([]*model.Comment, error) {
	args := m.Called(parentID)
	return args.Get(0).([]*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) Update(comment *model.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockLikeRepository is a mock implementation of repository.LikeRepository
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Create(like *model.Like) error {
	args := m.Called(like)
	return args.Error(0)
}

func (m *MockLikeRepository) FindByID(id string) (*model.Like, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Like), args.Error(1)
}

func (m *MockLikeRepository) FindAll() ([]*model.Like, error) {
	args := m.Called()
	return args.Get(0).([]*model.Like), args.Error(1)
}

func (m *MockLikeRepository) FindByTarget(targetType, targetID string) ([]*model.Like, error) {
	args := m.Called(targetType, targetID)
	return args.Get(0).([]*model.Like), args.Error(1)
}

func (m *MockLikeRepository) FindByUserAndTarget(userID, targetType, targetID string) (*model.Like, error) {
	args := m.Called(userID, targetType, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Like), args.Error(1)
}

func (m *MockLikeRepository) CountByTarget(targetType, targetID string) (int64, error) {
	args := m.Called(targetType, targetID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLikeRepository) DeleteByUserAndTarget(userID, targetType, targetID string) error {
	args := m.Called(userID, targetType, targetID)
	return args.Error(0)
}

// MockFollowRepository is a mock implementation of repository.FollowRepository
type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) Create(follow *model.Follow) error {
	args := m.Called(follow)
	return args.Error(0)
}

func (m *MockFollowRepository) FindByPair(followerID, followedID string) (*model.Follow, error) {
	args := m.Called(followerID, followedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Follow), args.Error(1)
}

func (m *MockFollowRepository) FindFollowers(followedID string) ([]*model.Follow, error) {
	args := m.Called(followedID)
	return args.Get(0).([]*model.Follow), args.Error(1)
}

func (m *MockFollowRepository) FindFollowing(followerID string) ([]*model.Follow, error) {
	args := m.Called(followerID)
	return args.Get(0).([]*model.Follow), args.Error(1)
}

func (m *MockFollowRepository) DeleteByPair(followerID, followedID string) error {
	args := m.Called(followerID, followedID)
	return args.Error(0)
}

// MockShareRepository is a mock implementation of repository.ShareRepository
type MockShareRepository struct {
	mock.Mock
}

func (m *MockShareRepository) Create(share *model.Share) error {
	args := m.Called(share)
	return args.Error(0)
}

func (m *MockShareRepository) FindByID(id string) (*model.Share, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Share), args.Error(1)
}

func (m *MockShareRepository) FindAll() ([]*model.Share, error) {
	args := m.Called()
	return args.Get(0).([]*model.Share), args.Error(1)
}

func (m *MockShareRepository) FindByPostID(postID string) ([]*model.Share, error) {
	args := m.Called(postID)
	return args.Get(0).([]*model.Share), args.Error(1)
}

func (m *MockShareRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockTagRepository is a mock implementation of repository.TagRepository
type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) Create(tag *model.Tag) error {
	args := m.Called(tag)
	return args.Error(0)
}

func (m *MockTagRepository) FindByID(id string) (*model.Tag, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tag), args.Error(1)
}

func (m *MockTagRepository) FindByName(name string) (*model.Tag, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tag), args.Error(1)
}

func (m *MockTagRepository) FindAll() ([]*model.Tag, error) {
	args := m.Called()
	return args.Get(0).([]*model.Tag), args.Error(1)
}

func (m *MockTagRepository) Update(tag *model.Tag) error {
	args := m.Called(tag)
	return args.Error(0)
}

func (m *MockTagRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockPostTagRepository is a mock implementation of repository.PostTagRepository
type MockPostTagRepository struct {
	mock.Mock
}

func (m *MockPostTagRepository) Create(postTag *model.PostTag) error {
	args := m.Called(postTag)
	return args.Error(0)
}

func (m *MockPostTagRepository) FindByPair(postID, tagID string) (*model.PostTag, error) {
	args := m.Called(postID, tagID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PostTag), args.Error(1)
}

func (m *MockPostTagRepository) FindByPostID(postID string) ([]*model.PostTag, error) {
	args := m.Called(postID)
	return args.Get(0).([]*model.PostTag), args.Error(1)
}

func (m *MockPostTagRepository) FindByTagID(tagID string) ([]*model.PostTag, error) {
	args := m.Called(tagID)
	return args.Get(0).([]*model.PostTag), args.Error(1)
}

func (m *MockPostTagRepository) DeleteByPair(postID, tagID string) error {
	args := m.Called(postID, tagID)
	return args.Error(0)
}

// MockReportRepository is a mock implementation of repository.ReportRepository
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Create(report *model.Report) error {
	args := m.Called(report)
	return args.Error(0)
}

func (m *MockReportRepository) FindByID(id string) (*model.Report, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Report), args.Error(1)
}

func (m *MockReportRepository) FindAll() ([]*model.Report, error) {
	args := m.Called()
	return args.Get(0).([]*model.Report), args.Error(1)
}

func (m *MockReportRepository) FindByTarget(targetType, targetID string) ([]*model.Report, error) {
	args := m.Called(targetType, targetID)
	return args.Get(0).([]*model.Report), args.Error(1)
}

func (m *MockReportRepository) Update(report *model.Report) error {
	args := m.Called(report)
	return args.Error(0)
}

func (m *MockReportRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockReportCounterRepository is a mock implementation of repository.ReportCounterRepository
type MockReportCounterRepository struct {
	mock.Mock
}

func (m *MockReportCounterRepository) FindAll() ([]*model.ReportCounter, error) {
	args := m.Called()
	return args.Get(0).([]*model.ReportCounter), args.Error(1)
}

func (m *MockReportCounterRepository) FindByTarget(targetType, targetID string) (*model.ReportCounter, error) {
	args := m.Called(targetType, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReportCounter), args.Error(1)
}

func (m *MockReportCounterRepository) Upsert(counter *model.ReportCounter) (bool, error) {
	args := m.Called(counter)
	return args.Bool(0), args.Error(1)
}

func (m *MockReportCounterRepository) Increment(targetType, targetID string) error {
	args := m.Called(targetType, targetID)
	return args.Error(0)
}

func (m *MockReportCounterRepository) DeleteByTarget(targetType, targetID string) error {
	args := m.Called(targetType, targetID)
	return args.Error(0)
}

func newTestTargetResolver(postRepo *MockPostRepository, commentRepo *MockCommentRepository, userRepo *MockUserRepository) *TargetResolver {
	return NewTargetResolver(postRepo, commentRepo, userRepo)
}
