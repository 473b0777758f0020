package constvars

const (
	EmailSendBasicEmailSubjectFormat = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"

	EmailReminderSubject = "Reminder: Your Upcoming Therapy Appointment"

	EmailReminderBodyFormat = `Dear student,

This is a reminder for your upcoming therapy appointment with therapist %s.
Date: %s
Status: %s

Please make sure to attend your appointment.

Regards,
CAPS Management System`
)
