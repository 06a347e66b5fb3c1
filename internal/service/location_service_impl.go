package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shelfwise/shelfwise/internal/domain"
	"github.com/shelfwise/shelfwise/internal/repository"
)

type locationService struct {
	locations repository.LocationRepo
}

// NewLocationService creates a LocationService over the catalog repository.
func NewLocationService(locations repository.LocationRepo) LocationService {
	return &locationService{locations: locations}
}

func (s *locationService) List(ctx context.Context) ([]domain.LocationProfile, error) {
	all, err := s.locations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing locations: %w", err)
	}
	return all, nil
}

func (s *locationService) GetByID(ctx context.Context, id string) (*domain.LocationProfile, error) {
	loc, err := s.locations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("location %s: %w", id, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("loading location %s: %w", id, err)
	}
	return loc, nil
}
