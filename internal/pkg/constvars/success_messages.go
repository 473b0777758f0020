package constvars

const (
	SignupSuccessMessage              = "User created successfully"
	LoginSuccessMessage               = "Login successful"
	LogoutSuccessMessage              = "Logout successful"
	AppointmentBookedSuccessMessage   = "Appointment booked successfully"
	AppointmentAssignedSuccessMessage = "Appointment assigned successfully"
	AppointmentStatusSuccessMessage   = "Appointment status updated successfully"
	AppointmentListSuccessMessage     = "Appointments fetched successfully"
	AvailabilityUpdatedSuccessMessage = "Availability updated successfully"
	AvailabilityFetchedSuccessMessage = "Availability fetched successfully"
	FeedbackSubmittedSuccessMessage   = "Feedback submitted successfully"
	FeedbackFetchedSuccessMessage     = "Feedback fetched successfully"
	StudentsFetchedSuccessMessage     = "Students fetched successfully"
	ChatbotReplySuccessMessage        = "Chatbot replied successfully"
)
