package database

import (
	"caps-service/internal/pkg/constvars"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique indexes the service relies on:
//   - users: unique username, unique email
//   - availabilities: one document per (therapistId, date)
//   - feedbacks: one feedback per appointment
//   - appointments: at most one scheduled appointment per (therapistId, date)
//
// The partial appointment index is what makes the double-booking check safe
// under concurrent inserts; the in-usecase pre-check only produces the nicer
// error message.
func EnsureIndexes(ctx context.Context, client *mongo.Client, dbName string) error {
	db := client.Database(dbName)

	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := db.Collection(constvars.MongoCollectionUsers).Indexes().CreateMany(ctx, userIndexes); err != nil {
		return err
	}

	availabilityIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "therapistId", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection(constvars.MongoCollectionAvailabilities).Indexes().CreateOne(ctx, availabilityIndex); err != nil {
		return err
	}

	feedbackIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "appointmentId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection(constvars.MongoCollectionFeedbacks).Indexes().CreateOne(ctx, feedbackIndex); err != nil {
		return err
	}

	appointmentIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "therapistId", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"status": constvars.AppointmentStatusScheduled}),
	}
	if _, err := db.Collection(constvars.MongoCollectionAppointments).Indexes().CreateOne(ctx, appointmentIndex); err != nil {
		return err
	}

	return nil
}
