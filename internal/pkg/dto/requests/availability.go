package requests

// Slot times are free-form "HH:MM" strings; only presence is validated, not
// time range or overlap.
type AvailabilitySlot struct {
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=available booked"`
}

type UpsertAvailability struct {
	Date  string             `json:"date" validate:"required,datetime=2006-01-02"`
	Slots []AvailabilitySlot `json:"slots" validate:"required,min=1,dive"`
}
