package catalog

import (
	"context"
	"fmt"

	newsRepo "vaxportal/database/repository/news"
	vaccineRepo "vaxportal/database/repository/vaccine"
	"vaxportal/models"
	"vaxportal/services/storage"
	"vaxportal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogService serves the vaccine catalog and news articles, and lets
// staff publish news from the back-office.
type CatalogService interface {
	Vaccines(ctx context.Context) ([]models.Vaccine, error)
	NewsList(ctx context.Context) ([]models.News, error)
	NewsByID(ctx context.Context, id string) (*models.News, error)
	PublishNews(ctx context.Context, article models.News) (*models.News, error)
}

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	VaccineRepo vaccineRepo.VaccineRepository
	NewsRepo    newsRepo.NewsRepository
	Storage     storage.StorageService
}

// Vaccines retrieves the active catalog. Prices here are the only
// authoritative prices the portal serves.
func (s *DefaultCatalogService) Vaccines(ctx context.Context) ([]models.Vaccine, error) {
	return s.VaccineRepo.GetAll()
}

// NewsList retrieves every article with resolved cover URLs.
func (s *DefaultCatalogService) NewsList(ctx context.Context) ([]models.News, error) {
	articles, err := s.NewsRepo.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range articles {
		s.resolveCover(ctx, &articles[i])
	}
	return articles, nil
}

// NewsByID retrieves one article with its resolved cover URL.
func (s *DefaultCatalogService) NewsByID(ctx context.Context, id string) (*models.News, error) {
	article, err := s.NewsRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	s.resolveCover(ctx, article)
	return article, nil
}

// PublishNews creates a new article.
func (s *DefaultCatalogService) PublishNews(ctx context.Context, article models.News) (*models.News, error) {
	if article.Title == "" || article.Content == "" {
		return nil, fmt.Errorf("title and content are required")
	}
	article.ID = uuid.New().String()
	if err := s.NewsRepo.Create(&article); err != nil {
		return nil, err
	}
	s.resolveCover(ctx, &article)
	return &article, nil
}

func (s *DefaultCatalogService) resolveCover(ctx context.Context, article *models.News) {
	if s.Storage == nil || article.CoverImageID == "" {
		return
	}
	url, err := s.Storage.GetDownloadURL(ctx, article.CoverImageID)
	if err != nil {
		utils.GetLogger().Warn("Failed to resolve news cover URL",
			zap.String("newsId", article.ID), zap.Error(err))
		return
	}
	article.CoverURL = url
}
