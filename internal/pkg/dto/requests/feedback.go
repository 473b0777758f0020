package requests

type SubmitFeedback struct {
	AppointmentID string `json:"appointmentId" validate:"required"`
	Feedback      string `json:"feedback" validate:"required"`
	Rating        int    `json:"rating" validate:"required,gte=1,lte=5"`
}
