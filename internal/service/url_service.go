package service

import (
	"context"
	"fmt"

	"shortr/internal/models"
	"shortr/internal/repository"
)

// URLService defines the interface for URL business logic
type URLService interface {
	Shorten(ctx context.Context, url string) (string, error)
	Resolve(ctx context.Context, id string) (string, error)
	Stats(ctx context.Context, id string) (*models.StatsResponse, error)
}

type urlService struct {
	repo    repository.URLRepository
	rootURL string
}

// NewURLService creates a new URL service
func NewURLService(repo repository.URLRepository, rootURL string) URLService {
	return &urlService{repo: repo, rootURL: rootURL}
}

// Shorten returns the full short link for a URL, creating the mapping on
// first submission. Resubmitting the same URL yields the same link; every
// call counts one hit.
func (s *urlService) Shorten(ctx context.Context, url string) (string, error) {
	id, err := s.repo.GetOrCreate(ctx, url)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s", s.rootURL, id), nil
}

// Resolve returns the original URL for an identifier.
func (s *urlService) Resolve(ctx context.Context, id string) (string, error) {
	return s.repo.FindURLByID(ctx, id)
}

// Stats reports the hit counter for an identifier.
func (s *urlService) Stats(ctx context.Context, id string) (*models.StatsResponse, error) {
	u, err := s.repo.Stats(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.StatsResponse{
		ID:       u.ID,
		URL:      u.URL,
		Hits:     u.Hits,
		ShortURL: fmt.Sprintf("%s/%s", s.rootURL, u.ID),
	}, nil
}
