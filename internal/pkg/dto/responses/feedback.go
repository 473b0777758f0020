package responses

import "time"

type Feedback struct {
	ID            string    `json:"id"`
	AppointmentID string    `json:"appointmentId"`
	StudentID     string    `json:"studentId"`
	TherapistID   string    `json:"therapistId"`
	Feedback      string    `json:"feedback"`
	Rating        int       `json:"rating"`
	Date          time.Time `json:"date"`
}
