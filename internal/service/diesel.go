package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sivacabs/backend/internal/domain"
	"github.com/sivacabs/backend/internal/repo"
)

// DieselService implements business logic for diesel expense operations.
type DieselService struct {
	repo repo.DieselRepo
}

// NewDieselService constructs a DieselService backed by the provided DieselRepo.
func NewDieselService(r repo.DieselRepo) *DieselService {
	return &DieselService{repo: r}
}

// Create validates and persists a new expense.
func (s *DieselService) Create(ctx context.Context, exp domain.DieselExpense) (domain.DieselExpense, error) {
	if err := validateDiesel(exp); err != nil {
		return domain.DieselExpense{}, fmt.Errorf("service.DieselService.Create: %w", err)
	}
	return s.repo.Create(ctx, exp)
}

// GetByID returns a single expense by ID.
func (s *DieselService) GetByID(ctx context.Context, id uuid.UUID) (domain.DieselExpense, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all expenses, most recent first.
func (s *DieselService) List(ctx context.Context) ([]domain.DieselExpense, error) {
	return s.repo.List(ctx)
}

// Update validates and updates an existing expense.
func (s *DieselService) Update(ctx context.Context, exp domain.DieselExpense) (domain.DieselExpense, error) {
	if exp.ID == uuid.Nil {
		return domain.DieselExpense{}, fmt.Errorf("service.DieselService.Update: %w: id is required", domain.ErrValidation)
	}
	if err := validateDiesel(exp); err != nil {
		return domain.DieselExpense{}, fmt.Errorf("service.DieselService.Update: %w", err)
	}
	return s.repo.Update(ctx, exp)
}

// Delete removes an expense by ID.
func (s *DieselService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// validateDiesel checks the business rules shared by Create and Update.
func validateDiesel(exp domain.DieselExpense) error {
	switch {
	case exp.Date.IsZero():
		return fmt.Errorf("%w: date is required", domain.ErrValidation)
	case exp.Amount.IsNegative():
		return fmt.Errorf("%w: amount must not be negative", domain.ErrValidation)
	}
	return nil
}
