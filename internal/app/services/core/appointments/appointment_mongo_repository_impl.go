package appointments

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

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (r *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointmentModel *models.Appointment) (string, error) {
	appointmentModel.ID = primitive.NewObjectID().Hex()
	_, err := r.Collection.InsertOne(ctx, appointmentModel)
	if err != nil {
		// The partial unique index on (therapistId, date) catches concurrent
		// bookings that passed the pre-insert check.
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrAppointmentSlotTaken(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return appointmentModel.ID, nil
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.Collection.FindOne(ctx, bson.M{"_id": appointmentID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindByStudent(ctx context.Context, studentID string) ([]models.Appointment, error) {
	return r.findByFilter(ctx, bson.M{"studentId": studentID})
}

func (r *AppointmentMongoRepository) FindByTherapist(ctx context.Context, therapistID string) ([]models.Appointment, error) {
	return r.findByFilter(ctx, bson.M{"therapistId": therapistID})
}

func (r *AppointmentMongoRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	return r.findByFilter(ctx, bson.M{})
}

func (r *AppointmentMongoRepository) findByFilter(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	sort := options.Find().SetSort(bson.M{"date": 1})
	cursor, err := r.Collection.Find(ctx, filter, sort)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointmentList []models.Appointment
	if err := cursor.All(ctx, &appointmentList); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointmentList, nil
}

func (r *AppointmentMongoRepository) ExistsScheduled(ctx context.Context, therapistID string, date time.Time) (bool, error) {
	filter := bson.M{
		"therapistId": therapistID,
		"date":        date,
		"status":      constvars.AppointmentStatusScheduled,
	}
	count, err := r.Collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, exceptions.ErrMongoDBFindDocument(err)
	}
	return count > 0, nil
}

func (r *AppointmentMongoRepository) UpdateStatus(ctx context.Context, appointmentID, status string) error {
	update := bson.M{"$set": bson.M{"status": status}}
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": appointmentID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) FindScheduledBetween(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	filter := bson.M{
		"status": constvars.AppointmentStatusScheduled,
		"date":   bson.M{"$gte": from, "$lt": to},
	}
	return r.findByFilter(ctx, filter)
}
