package vaccineRepo

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

// MongoVaccineRepo implements VaccineRepository using MongoDB.
type MongoVaccineRepo struct {
	coll *mongo.Collection
}

// NewMongoVaccineRepo creates a new instance of VaccineRepository using MongoDB.
func NewMongoVaccineRepo() VaccineRepository {
	repo := &MongoVaccineRepo{coll: database.Collection("vaccines")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoVaccineRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetAll retrieves every active catalog entry.
func (r *MongoVaccineRepo) GetAll() ([]models.Vaccine, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vaccine catalog: %w", err)
	}
	defer cursor.Close(ctx)

	var vaccines []models.Vaccine
	if err := cursor.All(ctx, &vaccines); err != nil {
		return nil, fmt.Errorf("failed to decode vaccines: %w", err)
	}
	return vaccines, nil
}

// GetByIDs retrieves active catalog entries for the given IDs. A vaccine
// retired after it was carted is absent from the result, so checkout
// treats it as no longer available.
func (r *MongoVaccineRepo) GetByIDs(ids []string) ([]models.Vaccine, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}, "active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vaccines by ids: %w", err)
	}
	defer cursor.Close(ctx)

	var vaccines []models.Vaccine
	if err := cursor.All(ctx, &vaccines); err != nil {
		return nil, fmt.Errorf("failed to decode vaccines: %w", err)
	}
	return vaccines, nil
}
