package appointments

import (
	"caps-service/internal/app/models"
	"caps-service/internal/pkg/dto/requests"
	"caps-service/internal/pkg/dto/responses"
	"context"
	"time"
)

type AppointmentUsecase interface {
	BookAsStudent(ctx context.Context, principal *models.Principal, request *requests.BookAppointment) (*responses.Appointment, error)
	AssignByTherapist(ctx context.Context, principal *models.Principal, request *requests.AssignAppointment) (*responses.Appointment, error)
	UpdateStatus(ctx context.Context, principal *models.Principal, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error)
	ListForCaller(ctx context.Context, principal *models.Principal) ([]responses.Appointment, error)
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointmentModel *models.Appointment) (appointmentID string, err error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByStudent(ctx context.Context, studentID string) ([]models.Appointment, error)
	FindByTherapist(ctx context.Context, therapistID string) ([]models.Appointment, error)
	FindAll(ctx context.Context) ([]models.Appointment, error)
	ExistsScheduled(ctx context.Context, therapistID string, date time.Time) (bool, error)
	UpdateStatus(ctx context.Context, appointmentID, status string) error
	FindScheduledBetween(ctx context.Context, from, to time.Time) ([]models.Appointment, error)
}
