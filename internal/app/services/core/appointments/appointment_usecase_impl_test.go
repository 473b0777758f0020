package appointments

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

	therapistUser = &models.User{ID: "therapist-1", Username: "dr-jane", Role: constvars.RoleTherapist}
	studentUser   = &models.User{ID: "student-1", Username: "alice", Role: constvars.RoleStudent}
)

func TestAppointmentUsecase_BookAsStudent(t *testing.T) {
	bookRequest := &requests.BookAppointment{
		TherapistID: "therapist-1",
		Date:        "2026-09-01T10:00:00Z",
	}

	t.Run("books a scheduled appointment for the caller", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		uc := NewAppointmentUsecase(appointmentRepo, userRepo, zap.NewNop())

		userRepo.On("FindByID", mock.Anything, "therapist-1").Return(therapistUser, nil)
		appointmentRepo.On("ExistsScheduled", mock.Anything, "therapist-1", mock.AnythingOfType("time.Time")).Return(false, nil)
		appointmentRepo.On("CreateAppointment", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return("appt-1", nil)

		result, err := uc.BookAsStudent(context.Background(), studentPrincipal, bookRequest)

		assert.NoError(t, err)
		assert.Equal(t, "student-1", result.StudentID)
		assert.Equal(t, "therapist-1", result.TherapistID)
		assert.Equal(t, constvars.AppointmentStatusScheduled, result.Status)
	})

	t.Run("rejects non-students", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		uc := NewAppointmentUsecase(appointmentRepo, userRepo, zap.NewNop())

		_, err := uc.BookAsStudent(context.Background(), therapistPrincipal, bookRequest)

		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
		appointmentRepo.AssertNotCalled(t, "CreateAppointment")
	})

	t.Run("rejects a target user that is not a therapist", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		uc := NewAppointmentUsecase(appointmentRepo, userRepo, zap.NewNop())

		userRepo.On("FindByID", mock.Anything, "therapist-1").Return(studentUser, nil)

		_, err := uc.BookAsStudent(context.Background(), studentPrincipal, bookRequest)

		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientTherapistNotFound, customErr.ClientMessage)
	})

	t.Run("rejects a slot the therapist already has scheduled", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		uc := NewAppointmentUsecase(appointmentRepo, userRepo, zap.NewNop())

		userRepo.On("FindByID", mock.Anything, "therapist-1").Return(therapistUser, nil)
		appointmentRepo.On("ExistsScheduled", mock.Anything, "therapist-1", mock.AnythingOfType("time.Time")).Return(true, nil)

		_, err := uc.BookAsStudent(context.Background(), studentPrincipal, bookRequest)

		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		appointmentRepo.AssertNotCalled(t, "CreateAppointment")
	})

	t.Run("rejects an unparseable date", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		uc := NewAppointmentUsecase(appointmentRepo, userRepo, zap.NewNop())

		userRepo.On("FindByID", mock.Anything, "therapist-1").Return(therapistUser, nil)

		_, err := uc.BookAsStudent(context.Background(), studentPrincipal, &requests.BookAppointment{
			TherapistID: "therapist-1",
			Date:        "next tuesday",
		})

		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}

func TestAppointmentUsecase_AssignByTherapist(t *testing.T) {
	assignRequest := &requests.AssignAppointment{
		StudentID: "student-1",
		Date:      "2026-09-01T10:00:00Z",
	}

	t.Run("assigns the caller as therapist", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		uc := NewAppointmentUsecase(appointmentRepo, userRepo, zap.NewNop())

		userRepo.On("FindByID", mock.Anything, "student-1").Return(studentUser, nil)
		appointmentRepo.On("ExistsScheduled", mock.Anything, "therapist-1", mock.AnythingOfType("time.Time")).Return(false, nil)
		appointmentRepo.On("CreateAppointment", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return("appt-1", nil)

		result, err := uc.AssignByTherapist(context.Background(), therapistPrincipal, assignRequest)

		assert.NoError(t, err)
		assert.Equal(t, "therapist-1", result.TherapistID)
		assert.Equal(t, "student-1", result.StudentID)
	})

	t.Run("rejects non-therapists", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		uc := NewAppointmentUsecase(appointmentRepo, userRepo, zap.NewNop())

		_, err := uc.AssignByTherapist(context.Background(), studentPrincipal, assignRequest)

		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})
}

func TestAppointmentUsecase_UpdateStatus(t *testing.T) {
	scheduled := func() *models.Appointment {
		return &models.Appointment{
			ID:          "appt-1",
			StudentID:   "student-1",
			TherapistID: "therapist-1",
			Date:        time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
			Status:      constvars.AppointmentStatusScheduled,
		}
	}
	complete := &requests.UpdateAppointmentStatus{Status: constvars.AppointmentStatusCompleted}
	cancel := &requests.UpdateAppointmentStatus{Status: constvars.AppointmentStatusCancelled}

	t.Run("therapist owner completes a scheduled appointment", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		uc := NewAppointmentUsecase(appointmentRepo, userRepo, zap.NewNop())

		appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(scheduled(), nil)
		appointmentRepo.On("UpdateStatus", mock.Anything, "appt-1", constvars.AppointmentStatusCompleted).Return(nil)

		result, err := uc.UpdateStatus(context.Background(), therapistPrincipal, "appt-1", complete)

		assert.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCompleted, result.Status)
	})

	t.Run("student owner cancels but cannot complete", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		uc := NewAppointmentUsecase(appointmentRepo, userRepo, zap.NewNop())

		appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(scheduled(), nil)
		appointmentRepo.On("UpdateStatus", mock.Anything, "appt-1", constvars.AppointmentStatusCancelled).Return(nil)

		result, err := uc.UpdateStatus(context.Background(), studentPrincipal, "appt-1", cancel)
		assert.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCancelled, result.Status)

		_, err = uc.UpdateStatus(context.Background(), studentPrincipal, "appt-1", complete)
		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("strangers get the same not-found answer as a missing appointment", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		uc := NewAppointmentUsecase(appointmentRepo, userRepo, zap.NewNop())

		otherStudent := &models.Principal{UserID: "student-2", Role: constvars.RoleStudent}
		appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(scheduled(), nil)
		appointmentRepo.On("FindByID", mock.Anything, "appt-missing").Return(nil, nil)

		_, ownedErr := uc.UpdateStatus(context.Background(), otherStudent, "appt-1", cancel)
		_, missingErr := uc.UpdateStatus(context.Background(), otherStudent, "appt-missing", cancel)

		assert.Equal(t, ownedErr.(*exceptions.CustomError).ClientMessage, missingErr.(*exceptions.CustomError).ClientMessage)
		assert.Equal(t, constvars.StatusNotFound, ownedErr.(*exceptions.CustomError).StatusCode)
	})

	t.Run("terminal appointments cannot change again", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		uc := NewAppointmentUsecase(appointmentRepo, userRepo, zap.NewNop())

		completed := scheduled()
		completed.Status = constvars.AppointmentStatusCompleted
		appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(completed, nil)

		_, err := uc.UpdateStatus(context.Background(), adminPrincipal, "appt-1", cancel)

		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		appointmentRepo.AssertNotCalled(t, "UpdateStatus")
	})
}

func TestAppointmentUsecase_ListForCaller(t *testing.T) {
	stored := []models.Appointment{{
		ID:          "appt-1",
		StudentID:   "student-1",
		TherapistID: "therapist-1",
		Status:      constvars.AppointmentStatusScheduled,
	}}

	t.Run("students see their own bookings", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		uc := NewAppointmentUsecase(appointmentRepo, userRepo, zap.NewNop())

		appointmentRepo.On("FindByStudent", mock.Anything, "student-1").Return(stored, nil)

		result, err := uc.ListForCaller(context.Background(), studentPrincipal)

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		appointmentRepo.AssertNotCalled(t, "FindAll")
	})

	t.Run("therapists see their own schedule", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		uc := NewAppointmentUsecase(appointmentRepo, userRepo, zap.NewNop())

		appointmentRepo.On("FindByTherapist", mock.Anything, "therapist-1").Return(stored, nil)

		result, err := uc.ListForCaller(context.Background(), therapistPrincipal)

		assert.NoError(t, err)
		assert.Len(t, result, 1)
	})

	t.Run("admins see everything", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		uc := NewAppointmentUsecase(appointmentRepo, userRepo, zap.NewNop())

		appointmentRepo.On("FindAll", mock.Anything).Return(stored, nil)

		result, err := uc.ListForCaller(context.Background(), adminPrincipal)

		assert.NoError(t, err)
		assert.Len(t, result, 1)
	})
}
