package constvars

// Validation messages for request payloads, keyed by validator tag.
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"alphanum": "must contain only alphanumeric characters",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of %s",
	"gte":      "must be at least %s",
	"lte":      "must be at most %s",
	"datetime": "must use the format %s",
	"role":     "must be student, therapist or admin",
}

var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"oneof":    true,
	"gte":      true,
	"lte":      true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientUsernameAlreadyExists         = "username already used"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientOnlyStudentsCanBook           = "only students can book appointments"
	ErrClientOnlyTherapistsCanAssign       = "only therapists can assign appointments"
	ErrClientOnlyTherapistsCanSetSlots     = "only therapists can update availability"
	ErrClientOnlyStudentsCanSubmitFeedback = "only students can submit feedback"
	ErrClientInvalidSlotsFormat            = "invalid slots format"
	ErrClientAppointmentNotFoundOrNotOwned = "appointment not found or you did not book this appointment"
	ErrClientAppointmentAlreadyBooked      = "the therapist already has an appointment at this time"
	ErrClientAppointmentStatusFinal        = "the appointment status can no longer change"
	ErrClientFeedbackOnlyAfterCompletion   = "feedback can only be submitted for completed sessions"
	ErrClientFeedbackAlreadySubmitted      = "feedback has already been submitted for this appointment"
	ErrClientFeedbackNotFound              = "feedback not found for this appointment"
	ErrClientFeedbackNotYours              = "you can only view feedback for your own appointments"
	ErrClientAvailabilityNotFound          = "no availability found for this therapist and date"
	ErrClientTherapistNotFound             = "therapist not found"
	ErrClientStudentNotFound               = "student not found"
	ErrClientChatbotMessageRequired        = "message is required"
	ErrClientChatbotUnavailable            = "error communicating with chatbot service"
)

// Error messages for developers
const (
	ErrDevInvalidInput          = "invalid input"
	ErrDevCannotParseJSON       = "cannot parse JSON"
	ErrDevValidationFailed      = "validation failed"
	ErrDevFailedToHashPassword  = "failed to hash password"
	ErrDevInvalidCredentials    = "invalid credentials"
	ErrDevUsernameAlreadyExists = "username already exists"
	ErrDevEmailAlreadyExists    = "email already exists"
	ErrDevUserNotExists         = "user does not exist"
	ErrDevRoleTypeDoesntMatch   = "caller role does not allow this operation"
	ErrDevCannotParseDate       = "cannot parse date"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalid          = "invalid token"
	ErrDevAuthTokenExpired          = "token expired"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthTokenRevoked          = "token revoked"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthTokenInvalidOrExpired = "token invalid or expired"

	// Domain messages
	ErrDevAppointmentNotFound        = "appointment not found"
	ErrDevAppointmentNotOwned        = "appointment does not belong to caller"
	ErrDevAppointmentSlotTaken       = "therapist already booked at this time"
	ErrDevAppointmentStatusTerminal  = "appointment status is terminal"
	ErrDevAppointmentStatusUnknown   = "unknown appointment status"
	ErrDevFeedbackDuplicate          = "feedback already exists for appointment"
	ErrDevFeedbackNotFound           = "feedback not found"
	ErrDevFeedbackBeforeCompletion   = "appointment is not completed yet"
	ErrDevAvailabilityNotFound       = "availability not found"
	ErrDevChatbotEmptyReply          = "chatbot returned an empty reply"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevServerProcess              = "server failed to process"

	// Mongo DB
	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "failed to update document"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevDBStringNotObjectID        = "string is not a valid object id"
	ErrDevDBDuplicateKey             = "duplicate key violation"

	// Redis
	ErrDevRedisGetData       = "failed to get data from redis"
	ErrDevRedisSetData       = "failed to set data to redis"
	ErrDevRedisDeleteData    = "failed to delete data from redis"
	ErrDevRedisSetNX         = "failed to set data with NX to redis"
	ErrDevRedisGetNoData     = "no data found in redis for key %s"

	// RabbitMQ
	ErrDevRabbitMQPublish = "failed to publish message to queue %s"
	ErrDevRabbitMQConsume = "failed to consume messages from queue %s"

	// SMTP
	ErrDevSMTPSendEmail = "failed to send email via %s"

	// HTTP
	ErrDevCreateHTTPRequest = "failed to create HTTP request"
	ErrDevSendHTTPRequest   = "failed to send HTTP request"
	ErrDevDecodeResponse    = "failed to decode upstream response"
)
