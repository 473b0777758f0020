package responses

import "time"

type Appointment struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"studentId"`
	TherapistID string    `json:"therapistId"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
}
