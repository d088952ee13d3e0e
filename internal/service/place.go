package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sivacabs/backend/internal/domain"
	"github.com/sivacabs/backend/internal/repo"
)

// PlaceService implements business logic for Place operations, including the
// autocomplete suggestions used by the trip form.
type PlaceService struct {
	repo repo.PlaceRepo
}

// NewPlaceService constructs a PlaceService backed by the provided PlaceRepo.
func NewPlaceService(r repo.PlaceRepo) *PlaceService {
	return &PlaceService{repo: r}
}

// Create validates and persists a new place.
func (s *PlaceService) Create(ctx context.Context, place domain.Place) (domain.Place, error) {
	if err := validatePlace(&place); err != nil {
		return domain.Place{}, fmt.Errorf("service.PlaceService.Create: %w", err)
	}
	return s.repo.Create(ctx, place)
}

// GetByID returns a single place by ID.
func (s *PlaceService) GetByID(ctx context.Context, id uuid.UUID) (domain.Place, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all places ordered by name.
func (s *PlaceService) List(ctx context.Context) ([]domain.Place, error) {
	return s.repo.List(ctx)
}

// Update validates and updates an existing place.
func (s *PlaceService) Update(ctx context.Context, place domain.Place) (domain.Place, error) {
	if place.ID == uuid.Nil {
		return domain.Place{}, fmt.Errorf("service.PlaceService.Update: %w: id is required", domain.ErrValidation)
	}
	if err := validatePlace(&place); err != nil {
		return domain.Place{}, fmt.Errorf("service.PlaceService.Update: %w", err)
	}
	return s.repo.Update(ctx, place)
}

// Delete removes a place by ID.
func (s *PlaceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Suggest returns the places whose name contains query, case-insensitively.
// An empty or whitespace-only query yields no suggestions — the trip form
// only shows the dropdown once the user has started typing.
// Results keep the repo's name ordering.
func (s *PlaceService) Suggest(ctx context.Context, query string) ([]domain.Place, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, nil
	}

	places, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var matches []domain.Place
	for _, p := range places {
		if strings.Contains(strings.ToLower(p.PlaceName), query) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

// validatePlace checks the business rules shared by Create and Update.
func validatePlace(place *domain.Place) error {
	place.PlaceName = strings.TrimSpace(place.PlaceName)

	switch {
	case place.PlaceName == "":
		return fmt.Errorf("%w: place name is required", domain.ErrValidation)
	case place.DefaultAmount.IsNegative():
		return fmt.Errorf("%w: default amount must not be negative", domain.ErrValidation)
	}
	return nil
}
