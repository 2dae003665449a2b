package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "fitness-app/internal/domain/profile"
	"fitness-app/internal/handler/middleware"
	repo "fitness-app/internal/repository/interfaces"
	profileuc "fitness-app/internal/usecase/profile"
	"fitness-app/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockService struct {
	mock.Mock
}

func (m *mockService) Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).(*domain.Profile)
	return p, args.Error(1)
}

func (m *mockService) Upsert(ctx context.Context, userID uuid.UUID, in profileuc.UpdateInput) (*domain.Profile, error) {
	args := m.Called(ctx, userID, in)
	p, _ := args.Get(0).(*domain.Profile)
	return p, args.Error(1)
}

func newRouter(svc profileuc.Service, userID uuid.UUID) *gin.Engine {
	h := NewHandler(svc, logger.Nop())
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(middleware.ContextUserIDKey, userID.String()) })
	r.GET("/users/me/profile", h.Get)
	r.PUT("/users/me/profile", h.Upsert)
	return r
}

func do(r http.Handler, method, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/users/me/profile", bytes.NewBufferString(body))
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

func TestGet(t *testing.T) {
	userID := uuid.New()
	p := domain.New(userID)
	p.Weight = 72.5
	p.ExperienceLevel = domain.LevelBeginner
	p.FitnessGoal = domain.GoalEndurance

	svc := &mockService{}
	svc.On("Get", mock.Anything, userID).Return(p, nil)

	w := do(newRouter(svc, userID), http.MethodGet, "")
	require.Equal(t, http.StatusOK, w.Code)

	var got ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, userID.String(), got.UserID)
	assert.Equal(t, 72.5, got.Weight)
	assert.Equal(t, "ENDURANCE", got.FitnessGoal)
	assert.Equal(t, 3, got.AvailableDays)
}

func TestGet_NotFound(t *testing.T) {
	userID := uuid.New()
	svc := &mockService{}
	svc.On("Get", mock.Anything, userID).Return(nil, repo.ErrNotFound)

	w := do(newRouter(svc, userID), http.MethodGet, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "profile_not_found", errorCode(t, w))
}

func TestUpsert(t *testing.T) {
	userID := uuid.New()
	p := domain.New(userID)
	p.Weight = 80
	p.ExperienceLevel = domain.LevelAdvanced
	p.FitnessGoal = domain.GoalStrength
	p.AvailableDays = 5

	svc := &mockService{}
	svc.On("Upsert", mock.Anything, userID, mock.MatchedBy(func(in profileuc.UpdateInput) bool {
		return in.Weight != nil && *in.Weight == 80 &&
			in.ExperienceLevel != nil && *in.ExperienceLevel == domain.LevelAdvanced &&
			in.AvailableDays != nil && *in.AvailableDays == 5 &&
			in.Gender == nil
	})).Return(p, nil)

	w := do(newRouter(svc, userID), http.MethodPut,
		`{"weight":80,"experience_level":"ADV","fitness_goal":"STRENGTH","available_days":5}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	svc.AssertExpectations(t)
}

func TestUpsert_BindingRejects(t *testing.T) {
	for _, body := range []string{
		`{"weight":-1}`,
		`{"available_days":8}`,
		`{"available_days":0}`,
		`{"gender":"X"}`,
		`{"fitness_goal":"FUN"}`,
		`{"age":0}`,
		`{"height":-170}`,
	} {
		svc := &mockService{}
		w := do(newRouter(svc, uuid.New()), http.MethodPut, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		svc.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestUpsert_DomainValidation(t *testing.T) {
	userID := uuid.New()
	svc := &mockService{}
	svc.On("Upsert", mock.Anything, userID, mock.Anything).Return(nil, domain.ErrInvalidWeight)

	w := do(newRouter(svc, userID), http.MethodPut, `{"fitness_goal":"STRENGTH"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_profile", errorCode(t, w))
}

func TestUpsert_StorageFailure(t *testing.T) {
	userID := uuid.New()
	svc := &mockService{}
	svc.On("Upsert", mock.Anything, userID, mock.Anything).Return(nil, fmt.Errorf("upsert: %w", errors.New("connection reset")))

	w := do(newRouter(svc, userID), http.MethodPut, `{"weight":70}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal_error", errorCode(t, w))
}
