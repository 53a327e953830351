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

// MongoCategoryRepo implements CategoryRepository using MongoDB.
type MongoCategoryRepo struct {
	coll *mongo.Collection
}

func NewMongoCategoryRepo(ctx context.Context) (CategoryRepository, error) {
	repo := &MongoCategoryRepo{coll: database.DB().Collection("categories")}

	ctx, cancel := database.NewContext(ctx, 10*time.Second)
	defer cancel()
	idx := mongo.IndexModel{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)}
	if _, err := repo.coll.Indexes().CreateOne(ctx, idx); err != nil {
		return nil, fmt.Errorf("failed to create category indexes: %w", err)
	}
	return repo, nil
}

// Upsert merges category fields by id; createdAt is written only on insert.
func (r *MongoCategoryRepo) Upsert(ctx context.Context, category *models.Category) (*models.Category, error) {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"id":       category.ID,
			"category": category.Category,
			"isActive": category.IsActive,
		},
		"$setOnInsert": bson.M{"createdAt": category.CreatedAt},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var saved models.Category
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": category.ID}, update, opts).Decode(&saved); err != nil {
		return nil, fmt.Errorf("failed to upsert category %s: %w", category.ID, err)
	}
	return &saved, nil
}

func (r *MongoCategoryRepo) GetAll(ctx context.Context) ([]models.Category, error) {
	ctx, cancel := database.NewContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer cursor.Close(ctx)

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return categories, nil
}

func (r *MongoCategoryRepo) GetByID(ctx context.Context, id string) (*models.Category, error) {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	var category models.Category
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&category); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch category %s: %w", id, err)
	}
	return &category, nil
}

func (r *MongoCategoryRepo) UpdateFields(ctx context.Context, id string, fields bson.M) (*models.Category, error) {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Category
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": fields}, opts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("category %s: %w", id, database.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update category %s: %w", id, err)
	}
	return &updated, nil
}

func (r *MongoCategoryRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("failed to delete category %s: %w", id, err)
	}
	return nil
}
