package catalogRepo

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

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

func NewMongoServiceRepo(ctx context.Context) (ServiceRepository, error) {
	repo := &MongoServiceRepo{coll: database.DB().Collection("services")}

	ctx, cancel := database.NewContext(ctx, 10*time.Second)
	defer cancel()
	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "categoryId", Value: 1}, {Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := repo.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return nil, fmt.Errorf("failed to create service indexes: %w", err)
	}
	return repo, nil
}

func serviceKey(categoryID, serviceID string) bson.M {
	return bson.M{"categoryId": categoryID, "id": serviceID}
}

func (r *MongoServiceRepo) GetByCategory(ctx context.Context, categoryID string) ([]models.Service, error) {
	ctx, cancel := database.NewContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"categoryId": categoryID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list services of %s: %w", categoryID, err)
	}
	defer cursor.Close(ctx)

	services := []models.Service{}
	for cursor.Next(ctx) {
		var raw rawService
		if err := cursor.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to decode service: %w", err)
		}
		svc, err := raw.normalize()
		if err != nil {
			return nil, err
		}
		services = append(services, svc)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate services: %w", err)
	}
	return services, nil
}

func (r *MongoServiceRepo) GetByID(ctx context.Context, categoryID, serviceID string) (*models.Service, error) {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	var raw rawService
	if err := r.coll.FindOne(ctx, serviceKey(categoryID, serviceID)).Decode(&raw); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch service %s/%s: %w", categoryID, serviceID, err)
	}
	svc, err := raw.normalize()
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *MongoServiceRepo) Create(ctx context.Context, service *models.Service) error {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	if service.SubServices == nil {
		service.SubServices = []models.SubService{}
	}
	if _, err := r.coll.InsertOne(ctx, service); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("service %s/%s: %w", service.CategoryID, service.ID, database.ErrDuplicateKey)
		}
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

func (r *MongoServiceRepo) UpdateFields(ctx context.Context, categoryID, serviceID string, fields bson.M) (*models.Service, error) {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var raw rawService
	err := r.coll.FindOneAndUpdate(ctx, serviceKey(categoryID, serviceID), bson.M{"$set": fields}, opts).Decode(&raw)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("service %s/%s: %w", categoryID, serviceID, database.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update service %s/%s: %w", categoryID, serviceID, err)
	}
	svc, err := raw.normalize()
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *MongoServiceRepo) ReplaceSubServices(ctx context.Context, categoryID, serviceID string, subs []models.SubService) error {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	if subs == nil {
		subs = []models.SubService{}
	}
	result, err := r.coll.UpdateOne(ctx, serviceKey(categoryID, serviceID), bson.M{"$set": bson.M{"subServices": subs}})
	if err != nil {
		return fmt.Errorf("failed to write sub-services of %s/%s: %w", categoryID, serviceID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("service %s/%s: %w", categoryID, serviceID, database.ErrNotFound)
	}
	return nil
}

func (r *MongoServiceRepo) Delete(ctx context.Context, categoryID, serviceID string) error {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, serviceKey(categoryID, serviceID))
	if err != nil {
		return fmt.Errorf("failed to delete service %s/%s: %w", categoryID, serviceID, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("service %s/%s: %w", categoryID, serviceID, database.ErrNotFound)
	}
	return nil
}
