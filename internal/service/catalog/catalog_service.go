package catalog

import (
	"context"
	"time"

	"github.com/explorekashmir/tours/internal/domain"
	"github.com/explorekashmir/tours/internal/repository"
)

type CatalogUseCase interface {
	ListDestinations(ctx context.Context) ([]domain.Destination, error)
	GetDestination(ctx context.Context, id int64) (*domain.Destination, error)
	CreateDestination(ctx context.Context, dest *domain.Destination) error
	ListTours(ctx context.Context, destinationID int64) ([]domain.Tour, error)
	GetTour(ctx context.Context, id int64) (*domain.Tour, error)
	CreateTour(ctx context.Context, tour *domain.Tour) error
}

// TourCache is the subset of the redis cache the catalog needs.
type TourCache interface {
	GetTours(ctx context.Context, destinationID int64) ([]domain.Tour, error)
	SetTours(ctx context.Context, destinationID int64, tours []domain.Tour) error
}

type CatalogService struct {
	destinations repository.DestinationRepository
	tours        repository.TourRepository
	cache        TourCache
	cacheTTL     time.Duration
}

func NewCatalogService(destinations repository.DestinationRepository, tours repository.TourRepository, cache TourCache, cacheTTL time.Duration) *CatalogService {
	return &CatalogService{destinations: destinations, tours: tours, cache: cache, cacheTTL: cacheTTL}
}

func (s *CatalogService) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	return s.destinations.List(ctx)
}

func (s *CatalogService) GetDestination(ctx context.Context, id int64) (*domain.Destination, error) {
	return s.destinations.GetByID(ctx, id)
}

func (s *CatalogService) CreateDestination(ctx context.Context, dest *domain.Destination) error {
	return s.destinations.Create(ctx, dest)
}

func (s *CatalogService) ListTours(ctx context.Context, destinationID int64) ([]domain.Tour, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetTours(ctx, destinationID); err == nil && cached != nil {
			return cached, nil
		}
	}

	tours, err := s.tours.List(ctx, destinationID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetTours(ctx, destinationID, tours)
	}
	return tours, nil
}

func (s *CatalogService) GetTour(ctx context.Context, id int64) (*domain.Tour, error) {
	return s.tours.GetByID(ctx, id)
}

func (s *CatalogService) CreateTour(ctx context.Context, tour *domain.Tour) error {
	if _, err := s.destinations.GetByID(ctx, tour.DestinationID); err != nil {
		return err
	}
	return s.tours.Create(ctx, tour)
}

var _ CatalogUseCase = (*CatalogService)(nil)
