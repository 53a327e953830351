package partnerRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"servit/database"
	"servit/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "partners"

// MongoPartnerRepo implements PartnerRepository using MongoDB.
type MongoPartnerRepo struct {
	coll *mongo.Collection
}

// NewMongoPartnerRepo creates a new instance of PartnerRepository using MongoDB.
func NewMongoPartnerRepo(ctx context.Context) (PartnerRepository, error) {
	repo := &MongoPartnerRepo{coll: database.DB().Collection(collectionName)}
	if err := repo.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	return repo, nil
}

// ensureIndexes creates indexes for fields that are frequently used in queries.
func (r *MongoPartnerRepo) ensureIndexes(ctx context.Context) error {
	ctx, cancel := database.NewContext(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "verificationDetails.verified", Value: 1}, {Key: "verificationDetails.rejected", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create partner indexes: %w", err)
	}
	return nil
}

func (r *MongoPartnerRepo) GetAll(ctx context.Context) ([]models.Partner, error) {
	ctx, cancel := database.NewContext(ctx, 15*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve partners: %w", err)
	}
	defer cursor.Close(ctx)

	partners := []models.Partner{}
	for cursor.Next(ctx) {
		var raw rawPartner
		if err := cursor.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to decode partner: %w", err)
		}
		partners = append(partners, raw.normalize())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate partners: %w", err)
	}
	return partners, nil
}

func (r *MongoPartnerRepo) GetByID(ctx context.Context, id string) (*models.Partner, error) {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	var raw rawPartner
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&raw); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch partner with id %s: %w", id, err)
	}
	partner := raw.normalize()
	return &partner, nil
}

func (r *MongoPartnerRepo) UpdateFields(ctx context.Context, id string, set bson.M, unset []string) error {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		fields := bson.M{}
		for _, f := range unset {
			fields[f] = ""
		}
		update["$unset"] = fields
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update partner with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("partner with id %s: %w", id, database.ErrNotFound)
	}
	return nil
}
