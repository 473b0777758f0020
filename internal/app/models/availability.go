package models

import "time"

// Slot is a single bookable interval within a therapist's daily availability.
// Times are free-form "HH:MM" strings, kept exactly as the therapist sent them.
type Slot struct {
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
	Status    string `bson:"status" json:"status"`
}

// Availability holds one therapist's slots for one date. At most one document
// exists per (therapistId, date) pair; updates replace the slot list wholesale.
type Availability struct {
	ID          string    `bson:"_id,omitempty"`
	TherapistID string    `bson:"therapistId"`
	Date        time.Time `bson:"date"`
	Slots       []Slot    `bson:"slots"`
}
