package availabilities

import (
	"caps-service/internal/app/models"
	"caps-service/internal/app/services/core/users"
	"caps-service/internal/pkg/constvars"
	"caps-service/internal/pkg/dto/requests"
	"caps-service/internal/pkg/dto/responses"
	"caps-service/internal/pkg/exceptions"
	"caps-service/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

type availabilityUsecase struct {
	AvailabilityRepository AvailabilityRepository
	UserRepository         users.UserRepository
	Log                    *zap.Logger
}

func NewAvailabilityUsecase(
	availabilityRepository AvailabilityRepository,
	userRepository users.UserRepository,
	logger *zap.Logger,
) AvailabilityUsecase {
	return &availabilityUsecase{
		AvailabilityRepository: availabilityRepository,
		UserRepository:         userRepository,
		Log:                    logger,
	}
}

func (uc *availabilityUsecase) Upsert(ctx context.Context, principal *models.Principal, request *requests.UpsertAvailability) (*responses.Availability, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("availabilityUsecase.Upsert called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, principal.UserID),
		zap.String("date", request.Date),
	)

	if principal.Role != constvars.RoleTherapist {
		return nil, exceptions.ErrNotMatchRoleType(constvars.ErrClientOnlyTherapistsCanSetSlots)
	}

	date, err := utils.ParseDateOnly(request.Date)
	if err != nil {
		return nil, err
	}

	slots := make([]models.Slot, 0, len(request.Slots))
	for _, slot := range request.Slots {
		slots = append(slots, models.Slot{
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Status:    slot.Status,
		})
	}

	availabilityModel := &models.Availability{
		TherapistID: principal.UserID,
		Date:        date,
		Slots:       slots,
	}

	saved, err := uc.AvailabilityRepository.Upsert(ctx, availabilityModel)
	if err != nil {
		uc.Log.Error("availabilityUsecase.Upsert error saving availability",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("availabilityUsecase.Upsert succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, principal.UserID),
		zap.Int("slot_count", len(saved.Slots)),
	)

	return buildAvailabilityResponse(saved), nil
}

func (uc *availabilityUsecase) GetByTherapistAndDate(ctx context.Context, therapistID, date string) (*responses.Availability, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("availabilityUsecase.GetByTherapistAndDate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("therapist_id", therapistID),
		zap.String("date", date),
	)

	therapist, err := uc.UserRepository.FindByID(ctx, therapistID)
	if err != nil {
		return nil, err
	}
	if therapist == nil || therapist.Role != constvars.RoleTherapist {
		return nil, exceptions.ErrTherapistNotExist(nil)
	}

	parsedDate, err := utils.ParseDateOnly(date)
	if err != nil {
		return nil, err
	}

	availability, err := uc.AvailabilityRepository.FindByTherapistAndDate(ctx, therapistID, parsedDate)
	if err != nil {
		return nil, err
	}
	if availability == nil {
		return nil, exceptions.ErrAvailabilityNotFound(nil)
	}

	return buildAvailabilityResponse(availability), nil
}

func buildAvailabilityResponse(availability *models.Availability) *responses.Availability {
	return &responses.Availability{
		ID:          availability.ID,
		TherapistID: availability.TherapistID,
		Date:        availability.Date,
		Slots:       availability.Slots,
	}
}
