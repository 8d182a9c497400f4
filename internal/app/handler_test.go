package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rumdien113/tiktok-api/internal/apperr"
	"github.com/rumdien113/tiktok-api/internal/model"
	"github.com/rumdien113/tiktok-api/internal/service"
	"github.com/rumdien113/tiktok-api/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const (
	testUserID = "11111111-1111-4111-8111-111111111111"
	testPostID = "33333333-3333-4333-8333-333333333333"
)

// MockLikeService is a mock implementation of service.LikeService
type MockLikeService struct {
	mock.Mock
}

func (m *MockLikeService) CreateLike(req service.CreateLikeRequest) (*model.Like, bool, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*model.Like), args.Bool(1), args.Error(2)
}

func (m *MockLikeService) DeleteLike(req service.DeleteLikeRequest) error {
	args := m.Called(req)
	return args.Error(0)
}

func (m *MockLikeService) GetLikesByTarget(targetType, targetID string) ([]*model.Like, error) {
	args := m.Called(targetType, targetID)
	return args.Get(0).([]*model.Like), args.Error(1)
}

func (m *MockLikeService) CountLikes(targetType, targetID string) (int64, error) {
	args := m.Called(targetType, targetID)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserService is a mock implementation of service.UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(req service.CreateUserRequest) (*model.User, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(id string) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) GetUsers() ([]*model.User, error) {
	args := m.Called()
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(id string, req service.UpdateUserRequest) (*model.User, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func performRequest(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateLikeHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockService := new(MockLikeService)
	handler := NewLikeHandler(mockService)

	r := gin.New()
	r.POST("/api/likes", handler.CreateLike)

	like := &model.Like{UserID: testUserID, TargetID: testPostID, TargetType: model.TargetTypePost}
	mockService.On("CreateLike", mock.AnythingOfType("service.CreateLikeRequest")).Return(like, true, nil)

	w := performRequest(r, http.MethodPost, "/api/likes", gin.H{
		"user_id":     testUserID,
		"target_id":   testPostID,
		"target_type": "post",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateLikeHandlerAlreadyLiked(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockService := new(MockLikeService)
	handler := NewLikeHandler(mockService)

	r := gin.New()
	r.POST("/api/likes", handler.CreateLike)

	existing := &model.Like{UserID: testUserID, TargetID: testPostID, TargetType: model.TargetTypePost}
	mockService.On("CreateLike", mock.AnythingOfType("service.CreateLikeRequest")).Return(existing, false, nil)

	w := performRequest(r, http.MethodPost, "/api/likes", gin.H{
		"user_id":     testUserID,
		"target_id":   testPostID,
		"target_type": "post",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	var body util.ErrorBody
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "constraint_violation", body.Code)
}

func TestGetUserHandlerNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockService := new(MockUserService)
	handler := NewUserHandler(mockService)

	r := gin.New()
	r.GET("/api/users/:id", handler.GetUser)

	mockService.On("GetUserByID", testUserID).Return(nil, apperr.NotFound("user not found"))

	w := performRequest(r, http.MethodGet, "/api/users/"+testUserID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body util.ErrorBody
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "not_found", body.Code)
	assert.Equal(t, "user not found", body.Message)
}

func TestCreateUserHandlerBadBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockService := new(MockUserService)
	handler := NewUserHandler(mockService)

	r := gin.New()
	r.POST("/api/users", handler.CreateUser)

	// Missing required fields fails binding before the service is reached
	w := performRequest(r, http.MethodPost, "/api/users", gin.H{"username": "solo"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "CreateUser")
}
