package feedbackRepo

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

// MongoFeedbackRepo implements FeedbackRepository using MongoDB.
type MongoFeedbackRepo struct {
	coll *mongo.Collection
}

// NewMongoFeedbackRepo creates a new instance of FeedbackRepository using MongoDB.
func NewMongoFeedbackRepo() FeedbackRepository {
	repo := &MongoFeedbackRepo{coll: database.Collection("feedback")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoFeedbackRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new feedback document.
func (r *MongoFeedbackRepo) Create(fb *models.Feedback) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fb.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, fb); err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

// GetAll retrieves every feedback record, newest first.
func (r *MongoFeedbackRepo) GetAll() ([]models.Feedback, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feedback: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.Feedback
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode feedback: %w", err)
	}
	return records, nil
}

// GetByID retrieves a feedback record by its unique ID.
func (r *MongoFeedbackRepo) GetByID(id string) (*models.Feedback, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var fb models.Feedback
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&fb); err != nil {
		return nil, fmt.Errorf("failed to fetch feedback with id %s: %w", id, err)
	}
	return &fb, nil
}

// SetResponse stores the staff response on a single record.
func (r *MongoFeedbackRepo) SetResponse(id, responderID, response string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"response":    response,
		"respondedBy": responderID,
		"respondedAt": time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to respond to feedback %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("feedback with id %s not found", id)
	}
	return nil
}
