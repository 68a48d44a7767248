package childRepo

import (
	"context"
	"fmt"
	"time"

	"vaxportal/database"
	"vaxportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoChildRepo implements ChildRepository using MongoDB.
type MongoChildRepo struct {
	coll *mongo.Collection
}

// NewMongoChildRepo creates a new instance of ChildRepository using MongoDB.
func NewMongoChildRepo() ChildRepository {
	repo := &MongoChildRepo{coll: database.Collection("children")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoChildRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a child profile by its unique ID.
func (r *MongoChildRepo) GetByID(id string) (*models.ChildProfile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var child models.ChildProfile
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&child); err != nil {
		return nil, fmt.Errorf("failed to fetch child profile with id %s: %w", id, err)
	}
	return &child, nil
}

// GetByUser retrieves all child profiles belonging to a parent.
func (r *MongoChildRepo) GetByUser(userID string) ([]models.ChildProfile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch child profiles for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var children []models.ChildProfile
	if err := cursor.All(ctx, &children); err != nil {
		return nil, fmt.Errorf("failed to decode child profiles: %w", err)
	}
	return children, nil
}

// Create inserts a new child profile document.
func (r *MongoChildRepo) Create(child *models.ChildProfile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	child.CreatedAt = now
	child.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, child); err != nil {
		return fmt.Errorf("failed to create child profile: %w", err)
	}
	return nil
}

// Delete removes a child profile document by its ID.
func (r *MongoChildRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete child profile with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("child profile with id %s not found", id)
	}
	return nil
}
