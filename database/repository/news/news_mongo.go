package newsRepo

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

// MongoNewsRepo implements NewsRepository using MongoDB.
type MongoNewsRepo struct {
	coll *mongo.Collection
}

// NewMongoNewsRepo creates a new instance of NewsRepository using MongoDB.
func NewMongoNewsRepo() NewsRepository {
	repo := &MongoNewsRepo{coll: database.Collection("news")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoNewsRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "publishedAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetAll retrieves every article, newest first.
func (r *MongoNewsRepo) GetAll() ([]models.News, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "publishedAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch news: %w", err)
	}
	defer cursor.Close(ctx)

	var articles []models.News
	if err := cursor.All(ctx, &articles); err != nil {
		return nil, fmt.Errorf("failed to decode news: %w", err)
	}
	return articles, nil
}

// GetByID retrieves an article by its unique ID.
func (r *MongoNewsRepo) GetByID(id string) (*models.News, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var article models.News
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&article); err != nil {
		return nil, fmt.Errorf("failed to fetch news article with id %s: %w", id, err)
	}
	return &article, nil
}

// Create inserts a new article document.
func (r *MongoNewsRepo) Create(article *models.News) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if article.PublishedAt.IsZero() {
		article.PublishedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, article); err != nil {
		return fmt.Errorf("failed to create news article: %w", err)
	}
	return nil
}
