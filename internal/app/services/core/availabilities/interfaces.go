package availabilities

import (
	"caps-service/internal/app/models"
	"caps-service/internal/pkg/dto/requests"
	"caps-service/internal/pkg/dto/responses"
	"context"
	"time"
)

type AvailabilityUsecase interface {
	Upsert(ctx context.Context, principal *models.Principal, request *requests.UpsertAvailability) (*responses.Availability, error)
	GetByTherapistAndDate(ctx context.Context, therapistID, date string) (*responses.Availability, error)
}

type AvailabilityRepository interface {
	Upsert(ctx context.Context, availabilityModel *models.Availability) (*models.Availability, error)
	FindByTherapistAndDate(ctx context.Context, therapistID string, date time.Time) (*models.Availability, error)
}
