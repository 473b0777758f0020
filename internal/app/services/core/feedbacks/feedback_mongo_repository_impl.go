package feedbacks

import (
	"caps-service/internal/app/models"
	"caps-service/internal/pkg/constvars"
	"caps-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FeedbackMongoRepository struct {
	Collection *mongo.Collection
}

func NewFeedbackMongoRepository(db *mongo.Client, dbName string) FeedbackRepository {
	return &FeedbackMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionFeedbacks),
	}
}

func (r *FeedbackMongoRepository) CreateFeedback(ctx context.Context, feedbackModel *models.Feedback) (string, error) {
	feedbackModel.ID = primitive.NewObjectID().Hex()
	_, err := r.Collection.InsertOne(ctx, feedbackModel)
	if err != nil {
		// The unique index on appointmentId makes concurrent submissions lose
		// cleanly.
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrFeedbackDuplicate(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return feedbackModel.ID, nil
}

func (r *FeedbackMongoRepository) FindByAppointment(ctx context.Context, appointmentID string) (*models.Feedback, error) {
	var feedback models.Feedback
	err := r.Collection.FindOne(ctx, bson.M{"appointmentId": appointmentID}).Decode(&feedback)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &feedback, nil
}
