package feedbacks

import (
	"caps-service/internal/app/models"
	"caps-service/internal/pkg/constvars"
	"caps-service/internal/pkg/dto/requests"
	"caps-service/internal/pkg/exceptions"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) CreateFeedback(ctx context.Context, feedbackModel *models.Feedback) (string, error) {
	args := m.Called(ctx, feedbackModel)
	return args.String(0), args.Error(1)
}

func (m *MockFeedbackRepository) FindByAppointment(ctx context.Context, appointmentID string) (*models.Feedback, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Feedback), args.Error(1)
}

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) CreateAppointment(ctx context.Context, appointmentModel *models.Appointment) (string, error) {
	args := m.Called(ctx, appointmentModel)
	return args.String(0), args.Error(1)
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByStudent(ctx context.Context, studentID string) ([]models.Appointment, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByTherapist(ctx context.Context, therapistID string) ([]models.Appointment, error) {
	args := m.Called(ctx, therapistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) ExistsScheduled(ctx context.Context, therapistID string, date time.Time) (bool, error) {
	args := m.Called(ctx, therapistID, date)
	return args.Bool(0), args.Error(1)
}

func (m *MockAppointmentRepository) UpdateStatus(ctx context.Context, appointmentID, status string) error {
	args := m.Called(ctx, appointmentID, status)
	return args.Error(0)
}

func (m *MockAppointmentRepository) FindScheduledBetween(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, userModel *models.User) (string, error) {
	args := m.Called(ctx, userModel)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByRole(ctx context.Context, role string) ([]models.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

var (
	studentPrincipal   = &models.Principal{UserID: "student-1", Role: constvars.RoleStudent}
	therapistPrincipal = &models.Principal{UserID: "therapist-1", Role: constvars.RoleTherapist}
	adminPrincipal     = &models.Principal{UserID: "admin-1", Role: constvars.RoleAdmin}
)

func completedAppointment() *models.Appointment {
	return &models.Appointment{
		ID:          "appt-1",
		StudentID:   "student-1",
		TherapistID: "therapist-1",
		Date:        time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		Status:      constvars.AppointmentStatusCompleted,
	}
}

func TestFeedbackUsecase_Submit(t *testing.T) {
	submitRequest := &requests.SubmitFeedback{
		AppointmentID: "appt-1",
		Feedback:      "Very helpful session.",
		Rating:        5,
	}

	t.Run("stores feedback for the caller's completed appointment", func(t *testing.T) {
		feedbackRepo := new(MockFeedbackRepository)
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		uc := NewFeedbackUsecase(feedbackRepo, appointmentRepo, userRepo, zap.NewNop())

		appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(completedAppointment(), nil)
		feedbackRepo.On("FindByAppointment", mock.Anything, "appt-1").Return(nil, nil)
		feedbackRepo.On("CreateFeedback", mock.Anything, mock.AnythingOfType("*models.Feedback")).Return("fb-1", nil)

		result, err := uc.Submit(context.Background(), studentPrincipal, submitRequest)

		assert.NoError(t, err)
		assert.Equal(t, "appt-1", result.AppointmentID)
		assert.Equal(t, "therapist-1", result.TherapistID)
		assert.Equal(t, 5, result.Rating)
	})

	t.Run("rejects feedback before the session completed", func(t *testing.T) {
		feedbackRepo := new(MockFeedbackRepository)
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		uc := NewFeedbackUsecase(feedbackRepo, appointmentRepo, userRepo, zap.NewNop())

		scheduled := completedAppointment()
		scheduled.Status = constvars.AppointmentStatusScheduled
		appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(scheduled, nil)

		_, err := uc.Submit(context.Background(), studentPrincipal, submitRequest)

		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientFeedbackOnlyAfterCompletion, customErr.ClientMessage)
	})

	t.Run("rejects a second submission for the same appointment", func(t *testing.T) {
		feedbackRepo := new(MockFeedbackRepository)
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		uc := NewFeedbackUsecase(feedbackRepo, appointmentRepo, userRepo, zap.NewNop())

		appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(completedAppointment(), nil)
		feedbackRepo.On("FindByAppointment", mock.Anything, "appt-1").Return(&models.Feedback{ID: "fb-1"}, nil)

		_, err := uc.Submit(context.Background(), studentPrincipal, submitRequest)

		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		feedbackRepo.AssertNotCalled(t, "CreateFeedback")
	})

	t.Run("hides other students' appointments behind not-found", func(t *testing.T) {
		feedbackRepo := new(MockFeedbackRepository)
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		uc := NewFeedbackUsecase(feedbackRepo, appointmentRepo, userRepo, zap.NewNop())

		otherStudent := &models.Principal{UserID: "student-2", Role: constvars.RoleStudent}
		appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(completedAppointment(), nil)

		_, err := uc.Submit(context.Background(), otherStudent, submitRequest)

		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientAppointmentNotFoundOrNotOwned, customErr.ClientMessage)
	})

	t.Run("rejects non-students", func(t *testing.T) {
		feedbackRepo := new(MockFeedbackRepository)
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		uc := NewFeedbackUsecase(feedbackRepo, appointmentRepo, userRepo, zap.NewNop())

		_, err := uc.Submit(context.Background(), therapistPrincipal, submitRequest)

		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})
}

func TestFeedbackUsecase_GetByAppointment(t *testing.T) {
	storedFeedback := &models.Feedback{
		ID:            "fb-1",
		AppointmentID: "appt-1",
		StudentID:     "student-1",
		TherapistID:   "therapist-1",
		Feedback:      "Very helpful session.",
		Rating:        5,
	}

	t.Run("student owner and admins can read it", func(t *testing.T) {
		feedbackRepo := new(MockFeedbackRepository)
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		uc := NewFeedbackUsecase(feedbackRepo, appointmentRepo, userRepo, zap.NewNop())

		appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(completedAppointment(), nil)
		feedbackRepo.On("FindByAppointment", mock.Anything, "appt-1").Return(storedFeedback, nil)

		for _, principal := range []*models.Principal{studentPrincipal, adminPrincipal} {
			result, err := uc.GetByAppointment(context.Background(), principal, "appt-1")
			assert.NoError(t, err)
			assert.Equal(t, "fb-1", result.ID)
		}
	})

	t.Run("everyone else is rejected before the feedback lookup", func(t *testing.T) {
		feedbackRepo := new(MockFeedbackRepository)
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		uc := NewFeedbackUsecase(feedbackRepo, appointmentRepo, userRepo, zap.NewNop())

		appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(completedAppointment(), nil)

		outsider := &models.Principal{UserID: "student-2", Role: constvars.RoleStudent}
		for _, principal := range []*models.Principal{outsider, therapistPrincipal} {
			_, err := uc.GetByAppointment(context.Background(), principal, "appt-1")
			customErr := err.(*exceptions.CustomError)
			assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
		}
		feedbackRepo.AssertNotCalled(t, "FindByAppointment")
	})

	t.Run("non-owners get forbidden even when no feedback exists", func(t *testing.T) {
		feedbackRepo := new(MockFeedbackRepository)
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		uc := NewFeedbackUsecase(feedbackRepo, appointmentRepo, userRepo, zap.NewNop())

		appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(completedAppointment(), nil)
		feedbackRepo.On("FindByAppointment", mock.Anything, "appt-1").Return(nil, nil)

		outsider := &models.Principal{UserID: "student-2", Role: constvars.RoleStudent}
		_, err := uc.GetByAppointment(context.Background(), outsider, "appt-1")

		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
		feedbackRepo.AssertNotCalled(t, "FindByAppointment")
	})

	t.Run("missing feedback is not-found for the owner", func(t *testing.T) {
		feedbackRepo := new(MockFeedbackRepository)
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		uc := NewFeedbackUsecase(feedbackRepo, appointmentRepo, userRepo, zap.NewNop())

		appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(completedAppointment(), nil)
		feedbackRepo.On("FindByAppointment", mock.Anything, "appt-1").Return(nil, nil)

		_, err := uc.GetByAppointment(context.Background(), studentPrincipal, "appt-1")

		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("missing appointment is not-found", func(t *testing.T) {
		feedbackRepo := new(MockFeedbackRepository)
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		uc := NewFeedbackUsecase(feedbackRepo, appointmentRepo, userRepo, zap.NewNop())

		appointmentRepo.On("FindByID", mock.Anything, "appt-9").Return(nil, nil)

		_, err := uc.GetByAppointment(context.Background(), studentPrincipal, "appt-9")

		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		feedbackRepo.AssertNotCalled(t, "FindByAppointment")
	})
}

func TestFeedbackUsecase_ListStudents(t *testing.T) {
	t.Run("returns projected student records to therapists", func(t *testing.T) {
		feedbackRepo := new(MockFeedbackRepository)
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		uc := NewFeedbackUsecase(feedbackRepo, appointmentRepo, userRepo, zap.NewNop())

		userRepo.On("FindByRole", mock.Anything, constvars.RoleStudent).Return([]models.User{
			{ID: "student-1", Username: "alice", Email: "alice@campus.edu"},
		}, nil)

		result, err := uc.ListStudents(context.Background(), therapistPrincipal)

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, "alice", result[0].Username)
	})

	t.Run("students cannot list students", func(t *testing.T) {
		feedbackRepo := new(MockFeedbackRepository)
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		uc := NewFeedbackUsecase(feedbackRepo, appointmentRepo, userRepo, zap.NewNop())

		_, err := uc.ListStudents(context.Background(), studentPrincipal)

		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
		userRepo.AssertNotCalled(t, "FindByRole")
	})
}
