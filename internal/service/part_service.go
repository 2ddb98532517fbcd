package service

import (
	"context"
	"fmt"

	domain "rigforge/internal/model"
	"rigforge/pkg/store/mysql"

	"github.com/google/uuid"
)

// PartService handles catalog part business logic
type PartService struct {
	partRepo PartRepo
}

// NewPartService creates a new part service
func NewPartService(partRepo PartRepo) *PartService {
	return &PartService{partRepo: partRepo}
}

// CreatePart creates a new catalog part
func (s *PartService) CreatePart(ctx context.Context, part *domain.Part) (*domain.Part, error) {
	if !part.Category.Valid() {
		return nil, fmt.Errorf("unknown part category: %s", part.Category)
	}
	if part.Name == "" {
		return nil, fmt.Errorf("part name is required")
	}
	if part.ID == "" {
		part.ID = uuid.New().String()
	}

	existing, err := s.partRepo.Get(ctx, part.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing part: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("part with id %s already exists", part.ID)
	}

	if err := s.partRepo.Create(ctx, mysql.FromPartDomain(part)); err != nil {
		return nil, fmt.Errorf("failed to create part: %w", err)
	}
	return part, nil
}

// GetPart retrieves a part by id
func (s *PartService) GetPart(ctx context.Context, partID string) (*domain.Part, error) {
	part, err := s.partRepo.Get(ctx, partID)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, fmt.Errorf("part not found: %s", partID)
	}
	return mysql.ToPartDomain(part), nil
}

// ListParts lists all active parts, optionally filtered by category
func (s *PartService) ListParts(ctx context.Context, category string) ([]*domain.Part, error) {
	if category != "" && !domain.PartCategory(category).Valid() {
		return nil, fmt.Errorf("unknown part category: %s", category)
	}

	if category == "" {
		stored, err := s.partRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		parts := make([]*domain.Part, len(stored))
		for i, p := range stored {
			parts[i] = mysql.ToPartDomain(p)
		}
		return parts, nil
	}

	stored, err := s.partRepo.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	parts := make([]*domain.Part, len(stored))
	for i, p := range stored {
		parts[i] = mysql.ToPartDomain(p)
	}
	return parts, nil
}

// UpdatePart updates an existing part
func (s *PartService) UpdatePart(ctx context.Context, part *domain.Part) (*domain.Part, error) {
	existing, err := s.partRepo.Get(ctx, part.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("part not found: %s", part.ID)
	}

	updated := mysql.FromPartDomain(part)
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	if err := s.partRepo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update part: %w", err)
	}
	return part, nil
}

// DeletePart deletes a part
func (s *PartService) DeletePart(ctx context.Context, partID string) error {
	return s.partRepo.Delete(ctx, partID)
}
