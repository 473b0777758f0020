package feedbacks

import (
	"caps-service/internal/app/models"
	"caps-service/internal/pkg/dto/requests"
	"caps-service/internal/pkg/dto/responses"
	"context"
)

type FeedbackUsecase interface {
	Submit(ctx context.Context, principal *models.Principal, request *requests.SubmitFeedback) (*responses.Feedback, error)
	GetByAppointment(ctx context.Context, principal *models.Principal, appointmentID string) (*responses.Feedback, error)
	ListStudents(ctx context.Context, principal *models.Principal) ([]responses.Student, error)
}

type FeedbackRepository interface {
	CreateFeedback(ctx context.Context, feedbackModel *models.Feedback) (feedbackID string, err error)
	FindByAppointment(ctx context.Context, appointmentID string) (*models.Feedback, error)
}
