package newsRepo

import "vaxportal/models"

// NewsRepository defines data access for news articles.
type NewsRepository interface {
	// GetAll retrieves every article, newest first.
	GetAll() ([]models.News, error)
	// GetByID retrieves an article by its unique ID.
	GetByID(id string) (*models.News, error)
	// Create inserts a new article.
	Create(article *models.News) error
}
