package routers

import (
	"caps-service/internal/app/config"
	"caps-service/internal/app/delivery/http/middlewares"
	"caps-service/internal/app/models"
	"caps-service/internal/app/services/core/feedbacks"
	"caps-service/internal/pkg/constvars"
	"caps-service/internal/pkg/dto/requests"
	"caps-service/internal/pkg/dto/responses"
	"caps-service/internal/pkg/utils"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockFeedbackUsecase struct {
	mock.Mock
}

func (m *MockFeedbackUsecase) Submit(ctx context.Context, principal *models.Principal, request *requests.SubmitFeedback) (*responses.Feedback, error) {
	args := m.Called(ctx, principal, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Feedback), args.Error(1)
}

func (m *MockFeedbackUsecase) GetByAppointment(ctx context.Context, principal *models.Principal, appointmentID string) (*responses.Feedback, error) {
	args := m.Called(ctx, principal, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Feedback), args.Error(1)
}

func (m *MockFeedbackUsecase) ListStudents(ctx context.Context, principal *models.Principal) ([]responses.Student, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.Student), args.Error(1)
}

func newTestFeedbackRouter(mockFeedbackUsecase *MockFeedbackUsecase, mockRedis *MockRedisRepository) chi.Router {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: testJWTSecret, ExpTimeInHour: 1},
	}

	feedbackController := feedbacks.NewFeedbackController(logger, mockFeedbackUsecase)
	middlewareInstance := middlewares.NewMiddlewares(logger, mockRedis, internalConfig)

	router := chi.NewRouter()
	router.Route("/feedback", func(r chi.Router) {
		attachFeedbackRoutes(r, middlewareInstance, feedbackController)
	})
	return router
}

func TestFeedbackRouter_StudentsBeforeWildcard(t *testing.T) {
	mockFeedbackUsecase := new(MockFeedbackUsecase)
	mockRedis := new(MockRedisRepository)
	router := newTestFeedbackRouter(mockFeedbackUsecase, mockRedis)

	token, err := utils.GeneratePrincipalJWT("therapist-1", constvars.RoleTherapist, testJWTSecret, 1)
	assert.NoError(t, err)
	mockRedis.On("Get", mock.Anything, mock.AnythingOfType("string")).Return("", nil)

	t.Run("GET /feedback/students hits the student listing", func(t *testing.T) {
		mockFeedbackUsecase.On("ListStudents", mock.Anything, mock.AnythingOfType("*models.Principal")).Return([]responses.Student{}, nil)

		req := httptest.NewRequest("GET", "/feedback/students", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockFeedbackUsecase.AssertNotCalled(t, "GetByAppointment")
	})

	t.Run("GET /feedback/{appointmentID} hits the lookup", func(t *testing.T) {
		mockFeedbackUsecase.On("GetByAppointment", mock.Anything, mock.AnythingOfType("*models.Principal"), "appt-1").Return(&responses.Feedback{ID: "fb-1"}, nil)

		req := httptest.NewRequest("GET", "/feedback/appt-1", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockFeedbackUsecase.AssertExpectations(t)
	})

	t.Run("unauthenticated requests are rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/feedback/students", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
