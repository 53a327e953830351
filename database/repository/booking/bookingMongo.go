package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"servit/database"
	"servit/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const collectionName = "Bookings"

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

func NewMongoBookingRepo() BookingRepository {
	return &MongoBookingRepo{coll: database.DB().Collection(collectionName)}
}

func (r *MongoBookingRepo) GetAll(ctx context.Context) ([]models.CustomerBookings, error) {
	ctx, cancel := database.NewContext(ctx, 30*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	docs := []models.CustomerBookings{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return docs, nil
}

func (r *MongoBookingRepo) GetByUserID(ctx context.Context, userID string) (*models.CustomerBookings, error) {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	var doc models.CustomerBookings
	if err := r.coll.FindOne(ctx, bson.M{"id": userID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch bookings of user %s: %w", userID, err)
	}
	return &doc, nil
}
