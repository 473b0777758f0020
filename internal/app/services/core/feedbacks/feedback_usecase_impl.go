package feedbacks

import (
	"caps-service/internal/app/models"
	"caps-service/internal/app/services/core/appointments"
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

type feedbackUsecase struct {
	FeedbackRepository    FeedbackRepository
	AppointmentRepository appointments.AppointmentRepository
	UserRepository        users.UserRepository
	Log                   *zap.Logger
}

func NewFeedbackUsecase(
	feedbackRepository FeedbackRepository,
	appointmentRepository appointments.AppointmentRepository,
	userRepository users.UserRepository,
	logger *zap.Logger,
) FeedbackUsecase {
	return &feedbackUsecase{
		FeedbackRepository:    feedbackRepository,
		AppointmentRepository: appointmentRepository,
		UserRepository:        userRepository,
		Log:                   logger,
	}
}

func (uc *feedbackUsecase) Submit(ctx context.Context, principal *models.Principal, request *requests.SubmitFeedback) (*responses.Feedback, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("feedbackUsecase.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, principal.UserID),
		zap.String("appointment_id", request.AppointmentID),
	)

	if principal.Role != constvars.RoleStudent {
		return nil, exceptions.ErrNotMatchRoleType(constvars.ErrClientOnlyStudentsCanSubmitFeedback)
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, request.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil || appointment.StudentID != principal.UserID {
		return nil, exceptions.ErrAppointmentNotFoundOrNotOwned(nil)
	}

	if appointment.Status != constvars.AppointmentStatusCompleted {
		return nil, exceptions.ErrFeedbackBeforeCompletion(nil)
	}

	existing, err := uc.FeedbackRepository.FindByAppointment(ctx, appointment.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrFeedbackDuplicate(nil)
	}

	feedbackModel := &models.Feedback{
		AppointmentID: appointment.ID,
		StudentID:     principal.UserID,
		TherapistID:   appointment.TherapistID,
		Feedback:      request.Feedback,
		Rating:        request.Rating,
		Date:          time.Now().UTC(),
	}

	feedbackID, err := uc.FeedbackRepository.CreateFeedback(ctx, feedbackModel)
	if err != nil {
		uc.Log.Error("feedbackUsecase.Submit error creating feedback",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("feedbackUsecase.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("feedback_id", feedbackID),
	)

	return buildFeedbackResponse(feedbackModel), nil
}

func (uc *feedbackUsecase) GetByAppointment(ctx context.Context, principal *models.Principal, appointmentID string) (*responses.Feedback, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("feedbackUsecase.GetByAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, principal.UserID),
		zap.String("appointment_id", appointmentID),
	)

	// Ownership is settled against the appointment before the feedback lookup
	// so a non-owner cannot tell whether feedback exists.
	if principal.Role != constvars.RoleAdmin {
		appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
		if err != nil {
			return nil, err
		}
		if appointment == nil {
			return nil, exceptions.ErrFeedbackNotFound(nil)
		}
		if appointment.StudentID != principal.UserID {
			return nil, exceptions.ErrFeedbackNotOwned(nil)
		}
	}

	feedback, err := uc.FeedbackRepository.FindByAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if feedback == nil {
		return nil, exceptions.ErrFeedbackNotFound(nil)
	}

	return buildFeedbackResponse(feedback), nil
}

func (uc *feedbackUsecase) ListStudents(ctx context.Context, principal *models.Principal) ([]responses.Student, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("feedbackUsecase.ListStudents called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, principal.UserID),
		zap.String(constvars.LoggingRoleKey, principal.Role),
	)

	if principal.Role == constvars.RoleStudent {
		return nil, exceptions.ErrNotMatchRoleType(constvars.ErrClientNotAuthorized)
	}

	studentList, err := uc.UserRepository.FindByRole(ctx, constvars.RoleStudent)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Student, 0, len(studentList))
	for _, student := range studentList {
		result = append(result, responses.Student{
			ID:       student.ID,
			Username: student.Username,
			Email:    student.Email,
		})
	}
	return result, nil
}

func buildFeedbackResponse(feedback *models.Feedback) *responses.Feedback {
	return &responses.Feedback{
		ID:            feedback.ID,
		AppointmentID: feedback.AppointmentID,
		StudentID:     feedback.StudentID,
		TherapistID:   feedback.TherapistID,
		Feedback:      feedback.Feedback,
		Rating:        feedback.Rating,
		Date:          feedback.Date,
	}
}
