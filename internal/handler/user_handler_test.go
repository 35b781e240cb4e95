package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"shoporders/internal/errors"
	"shoporders/internal/model"
)

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func newUserEcho(svc *MockUserService) *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	h := NewUserHandler(svc)
	e.POST("/users", h.CreateUser)
	e.GET("/users", h.ListUsers)
	e.GET("/users/:id", h.GetUser)
	e.DELETE("/users/:id", h.DeleteUser)
	return e
}

func TestUserHandler_CreateUser(t *testing.T) {
	t.Run("returns created resource with id", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("CreateUser", mock.Anything, mock.AnythingOfType("*model.User")).
			Return(&model.User{ID: 1, Name: "User A", Email: "usera@example.com", Phone: "111222333"}, nil)

		rec := postJSON(newUserEcho(svc), "/users",
			`{"name":"User A","email":"usera@example.com","phone":"111222333"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":1`)
		svc.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("CreateUser", mock.Anything, mock.AnythingOfType("*model.User")).
			Return(nil, errors.ErrEmailTaken)

		rec := postJSON(newUserEcho(svc), "/users",
			`{"name":"User A","email":"usera@example.com"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "EMAIL_TAKEN")
	})
}

func TestUserHandler_GetUser(t *testing.T) {
	t.Run("existing user", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("GetUser", mock.Anything, uint(1)).
			Return(&model.User{ID: 1, Name: "User A", Email: "usera@example.com"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/users/1", nil)
		rec := httptest.NewRecorder()
		newUserEcho(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "usera@example.com")
	})

	t.Run("deleted user is gone", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("GetUser", mock.Anything, uint(1)).Return(nil, errors.ErrUserNotFound)

		req := httptest.NewRequest(http.MethodGet, "/users/1", nil)
		rec := httptest.NewRecorder()
		newUserEcho(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		svc := new(MockUserService)
		req := httptest.NewRequest(http.MethodGet, "/users/abc", nil)
		rec := httptest.NewRecorder()
		newUserEcho(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserHandler_DeleteUser(t *testing.T) {
	svc := new(MockUserService)
	svc.On("DeleteUser", mock.Anything, uint(1)).
		Return(&model.User{ID: 1, Name: "User A", Email: "usera@example.com"}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/users/1", nil)
	rec := httptest.NewRecorder()
	newUserEcho(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user deleted")
	assert.Contains(t, rec.Body.String(), "usera@example.com")
	svc.AssertExpectations(t)
}
