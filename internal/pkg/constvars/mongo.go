package constvars

const (
	MongoCollectionUsers          = "users"
	MongoCollectionAppointments   = "appointments"
	MongoCollectionAvailabilities = "availabilities"
	MongoCollectionFeedbacks      = "feedbacks"
)
