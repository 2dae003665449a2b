package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "fitness-app/internal/domain/user"
	repo "fitness-app/internal/repository/interfaces"
	authuc "fitness-app/internal/usecase/auth"
	"fitness-app/pkg/logger"
	"fitness-app/pkg/password"
)

type mockAuth struct {
	mock.Mock
}

func (m *mockAuth) Register(ctx context.Context, email, pass, username string) (*authuc.Session, error) {
	args := m.Called(ctx, email, pass, username)
	s, _ := args.Get(0).(*authuc.Session)
	return s, args.Error(1)
}

func (m *mockAuth) Login(ctx context.Context, email, pass string) (*authuc.Session, error) {
	args := m.Called(ctx, email, pass)
	s, _ := args.Get(0).(*authuc.Session)
	return s, args.Error(1)
}

func (m *mockAuth) Refresh(ctx context.Context, token string) (*authuc.Session, error) {
	args := m.Called(ctx, token)
	s, _ := args.Get(0).(*authuc.Session)
	return s, args.Error(1)
}

func newRouter(svc authuc.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc, logger.Nop())
	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/refresh", h.Refresh)
	return r
}

func post(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var env struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env.Error.Code
}

func session() *authuc.Session {
	return &authuc.Session{
		User:         domain.NewUser("athlete@example.com", "hash", "athlete"),
		AccessToken:  "access",
		RefreshToken: "refresh",
	}
}

func TestRegister(t *testing.T) {
	svc := &mockAuth{}
	sess := session()
	svc.On("Register", mock.Anything, "athlete@example.com", "Password123!", "athlete").Return(sess, nil)

	w := post(newRouter(svc), "/auth/register",
		`{"email":"athlete@example.com","password":"Password123!","username":"athlete"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, sess.User.ID.String(), resp.UserID)
	assert.Equal(t, "access", resp.Tokens.AccessToken)
	assert.Equal(t, "refresh", resp.Tokens.RefreshToken)
}

func TestRegister_Errors(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{repo.ErrEmailExists, http.StatusConflict, "email_already_exists"},
		{repo.ErrUsernameExists, http.StatusConflict, "username_already_exists"},
		{fmt.Errorf("%w: %w", authuc.ErrWeakPassword, password.ErrAllNumeric), http.StatusBadRequest, "weak_password"},
		{fmt.Errorf("db down"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tc := range cases {
		svc := &mockAuth{}
		svc.On("Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, tc.err)

		w := post(newRouter(svc), "/auth/register",
			`{"email":"athlete@example.com","password":"12345678","username":"athlete"}`)
		assert.Equal(t, tc.status, w.Code, tc.err.Error())
		assert.Equal(t, tc.code, errorCode(t, w))
	}
}

func TestRegister_BindingRejects(t *testing.T) {
	svc := &mockAuth{}
	w := post(newRouter(svc), "/auth/register", `{"email":"not-an-email","password":"Password123!","username":"athlete"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := &mockAuth{}
	svc.On("Login", mock.Anything, "athlete@example.com", "wrong").Return(nil, authuc.ErrInvalidCredentials)

	w := post(newRouter(svc), "/auth/login", `{"email":"athlete@example.com","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_credentials", errorCode(t, w))
}

func TestRefresh(t *testing.T) {
	svc := &mockAuth{}
	svc.On("Refresh", mock.Anything, "good").Return(session(), nil)
	svc.On("Refresh", mock.Anything, "bad").Return(nil, authuc.ErrInvalidRefreshToken)
	r := newRouter(svc)

	w := post(r, "/auth/refresh", `{"refresh_token":"good"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = post(r, "/auth/refresh", `{"refresh_token":"bad"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_refresh_token", errorCode(t, w))
}
