package responses

import (
	"caps-service/internal/app/models"
	"time"
)

type Availability struct {
	ID          string        `json:"id"`
	TherapistID string        `json:"therapistId"`
	Date        time.Time     `json:"date"`
	Slots       []models.Slot `json:"slots"`
}
