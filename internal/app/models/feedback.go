package models

import "time"

type Feedback struct {
	ID            string    `bson:"_id,omitempty"`
	AppointmentID string    `bson:"appointmentId"`
	StudentID     string    `bson:"studentId"`
	TherapistID   string    `bson:"therapistId"`
	Feedback      string    `bson:"feedback"`
	Rating        int       `bson:"rating"`
	Date          time.Time `bson:"date"`
}
