package requests

type BookAppointment struct {
	TherapistID string `json:"therapistId" validate:"required"`
	Date        string `json:"date" validate:"required"`
}

type AssignAppointment struct {
	StudentID string `json:"studentId" validate:"required"`
	Date      string `json:"date" validate:"required"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=completed cancelled"`
}
