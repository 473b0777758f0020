package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "requestID"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "isClientRequestID"
	CONTEXT_PRINCIPAL_KEY            ContextKey = "principal"
)

// User roles, fixed at signup.
const (
	RoleStudent   = "student"
	RoleTherapist = "therapist"
	RoleAdmin     = "admin"
)

// Appointment lifecycle. Completed and cancelled are terminal.
const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

// Slot statuses within a therapist's daily availability.
const (
	SlotStatusAvailable = "available"
	SlotStatusBooked    = "booked"
)

const (
	DateOnlyFormat = "2006-01-02"
)

// Redis key formats.
const (
	RedisRevokedTokenKeyFormat   = "auth:revoked:%s"
	RedisReminderSentKeyFormat   = "reminder:sent:%s:%s"
	RedisReminderWorkerLockKey   = "reminder:worker:lock"
	RedisRevokedTokenPlaceholder = "revoked"
)
