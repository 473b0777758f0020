package appointments

import (
	"caps-service/internal/app/models"
	"caps-service/internal/app/services/core/users"
	"caps-service/internal/pkg/constvars"
	"caps-service/internal/pkg/dto/requests"
	"caps-service/internal/pkg/dto/responses"
	"caps-service/internal/pkg/exceptions"
	"caps-service/internal/pkg/utils"
	"context"
	"time"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository AppointmentRepository
	UserRepository        users.UserRepository
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository AppointmentRepository,
	userRepository users.UserRepository,
	logger *zap.Logger,
) AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		UserRepository:        userRepository,
		Log:                   logger,
	}
}

func (uc *appointmentUsecase) BookAsStudent(ctx context.Context, principal *models.Principal, request *requests.BookAppointment) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.BookAsStudent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, principal.UserID),
	)

	if principal.Role != constvars.RoleStudent {
		return nil, exceptions.ErrNotMatchRoleType(constvars.ErrClientOnlyStudentsCanBook)
	}

	therapist, err := uc.UserRepository.FindByID(ctx, request.TherapistID)
	if err != nil {
		return nil, err
	}
	if therapist == nil || therapist.Role != constvars.RoleTherapist {
		return nil, exceptions.ErrTherapistNotExist(nil)
	}

	date, err := utils.ParseDateTime(request.Date)
	if err != nil {
		return nil, err
	}

	return uc.create(ctx, principal.UserID, therapist.ID, date)
}

func (uc *appointmentUsecase) AssignByTherapist(ctx context.Context, principal *models.Principal, request *requests.AssignAppointment) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.AssignByTherapist called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, principal.UserID),
	)

	if principal.Role != constvars.RoleTherapist {
		return nil, exceptions.ErrNotMatchRoleType(constvars.ErrClientOnlyTherapistsCanAssign)
	}

	student, err := uc.UserRepository.FindByID(ctx, request.StudentID)
	if err != nil {
		return nil, err
	}
	if student == nil || student.Role != constvars.RoleStudent {
		return nil, exceptions.ErrStudentNotExist(nil)
	}

	date, err := utils.ParseDateTime(request.Date)
	if err != nil {
		return nil, err
	}

	return uc.create(ctx, student.ID, principal.UserID, date)
}

func (uc *appointmentUsecase) create(ctx context.Context, studentID, therapistID string, date time.Time) (*responses.Appointment, error) {
	taken, err := uc.AppointmentRepository.ExistsScheduled(ctx, therapistID, date)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, exceptions.ErrAppointmentSlotTaken(nil)
	}

	appointmentModel := &models.Appointment{
		StudentID:   studentID,
		TherapistID: therapistID,
		Date:        date,
		Status:      constvars.AppointmentStatusScheduled,
	}

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointmentModel)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.create succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String("appointment_id", appointmentID),
	)

	return buildAppointmentResponse(appointmentModel), nil
}

func (uc *appointmentUsecase) UpdateStatus(ctx context.Context, principal *models.Principal, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("appointment_id", appointmentID),
		zap.String("status", request.Status),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	// Existence and ownership share one answer so callers cannot probe for
	// other users' appointment IDs.
	if appointment == nil || !uc.canTransition(principal, appointment, request.Status) {
		return nil, exceptions.ErrAppointmentNotFoundOrNotOwned(nil)
	}

	if appointment.IsTerminal() {
		return nil, exceptions.ErrAppointmentStatusTerminal(nil)
	}

	if err := uc.AppointmentRepository.UpdateStatus(ctx, appointment.ID, request.Status); err != nil {
		return nil, err
	}
	appointment.Status = request.Status

	uc.Log.Info("appointmentUsecase.UpdateStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("appointment_id", appointment.ID),
		zap.String("status", appointment.Status),
	)

	return buildAppointmentResponse(appointment), nil
}

func (uc *appointmentUsecase) canTransition(principal *models.Principal, appointment *models.Appointment, status string) bool {
	if principal.Role == constvars.RoleAdmin {
		return true
	}
	switch status {
	case constvars.AppointmentStatusCompleted:
		return principal.UserID == appointment.TherapistID
	case constvars.AppointmentStatusCancelled:
		return principal.UserID == appointment.TherapistID || principal.UserID == appointment.StudentID
	default:
		return false
	}
}

func (uc *appointmentUsecase) ListForCaller(ctx context.Context, principal *models.Principal) ([]responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.ListForCaller called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, principal.UserID),
		zap.String(constvars.LoggingRoleKey, principal.Role),
	)

	var (
		appointmentList []models.Appointment
		err             error
	)
	switch principal.Role {
	case constvars.RoleStudent:
		appointmentList, err = uc.AppointmentRepository.FindByStudent(ctx, principal.UserID)
	case constvars.RoleTherapist:
		appointmentList, err = uc.AppointmentRepository.FindByTherapist(ctx, principal.UserID)
	default:
		appointmentList, err = uc.AppointmentRepository.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	result := make([]responses.Appointment, 0, len(appointmentList))
	for i := range appointmentList {
		result = append(result, *buildAppointmentResponse(&appointmentList[i]))
	}
	return result, nil
}

func buildAppointmentResponse(appointment *models.Appointment) *responses.Appointment {
	return &responses.Appointment{
		ID:          appointment.ID,
		StudentID:   appointment.StudentID,
		TherapistID: appointment.TherapistID,
		Date:        appointment.Date,
		Status:      appointment.Status,
	}
}
