package availabilities

import (
	"caps-service/internal/app/models"
	"caps-service/internal/pkg/constvars"
	"caps-service/internal/pkg/exceptions"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AvailabilityMongoRepository struct {
	Collection *mongo.Collection
}

func NewAvailabilityMongoRepository(db *mongo.Client, dbName string) AvailabilityRepository {
	return &AvailabilityMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAvailabilities),
	}
}

// Upsert replaces the whole slot list for the (therapistId, date) pair, or
// creates the document when none exists yet. A single atomic command, so two
// concurrent first writes for the same pair cannot both insert.
func (r *AvailabilityMongoRepository) Upsert(ctx context.Context, availabilityModel *models.Availability) (*models.Availability, error) {
	filter := bson.M{
		"therapistId": availabilityModel.TherapistID,
		"date":        availabilityModel.Date,
	}
	update := bson.M{
		"$set": bson.M{"slots": availabilityModel.Slots},
		"$setOnInsert": bson.M{
			"_id":         primitive.NewObjectID().Hex(),
			"therapistId": availabilityModel.TherapistID,
			"date":        availabilityModel.Date,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var updated models.Availability
	if err := r.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated); err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &updated, nil
}

func (r *AvailabilityMongoRepository) FindByTherapistAndDate(ctx context.Context, therapistID string, date time.Time) (*models.Availability, error) {
	var availability models.Availability
	filter := bson.M{
		"therapistId": therapistID,
		"date":        date,
	}
	err := r.Collection.FindOne(ctx, filter).Decode(&availability)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &availability, nil
}
