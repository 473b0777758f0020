package models

import (
	"caps-service/internal/pkg/constvars"
	"time"
)

type Appointment struct {
	ID          string    `bson:"_id,omitempty"`
	StudentID   string    `bson:"studentId"`
	TherapistID string    `bson:"therapistId"`
	Date        time.Time `bson:"date"`
	Status      string    `bson:"status"`
}

// IsTerminal reports whether the appointment can no longer change status.
func (a *Appointment) IsTerminal() bool {
	return a.Status == constvars.AppointmentStatusCompleted || a.Status == constvars.AppointmentStatusCancelled
}
