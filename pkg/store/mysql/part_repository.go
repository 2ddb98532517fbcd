package mysql

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rigforge/pkg/store/mysql/model"
)

// PartRepository handles catalog part persistence in MySQL
type PartRepository struct {
	ds *Datastore
}

// NewPartRepository creates a new part repository
func NewPartRepository(ds *Datastore) *PartRepository {
	return &PartRepository{ds: ds}
}

// Create creates a new part
func (r *PartRepository) Create(ctx context.Context, part *model.Part) error {
	return r.ds.DB(ctx).Create(part).Error
}

// Get retrieves a part by its part id
func (r *PartRepository) Get(ctx context.Context, partID string) (*model.Part, error) {
	var part model.Part
	err := r.ds.DB(ctx).Where("part_id = ? AND status != ?", partID, "deleted").First(&part).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get part: %w", err)
	}
	return &part, nil
}

// List lists all active parts
func (r *PartRepository) List(ctx context.Context) ([]*model.Part, error) {
	var parts []*model.Part
	err := r.ds.DB(ctx).Where("status != ?", "deleted").Order("category, name").Find(&parts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list parts: %w", err)
	}
	return parts, nil
}

// ListByCategory lists active parts in a category
func (r *PartRepository) ListByCategory(ctx context.Context, category string) ([]*model.Part, error) {
	var parts []*model.Part
	err := r.ds.DB(ctx).Where("category = ? AND status != ?", category, "deleted").Order("name").Find(&parts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list parts by category: %w", err)
	}
	return parts, nil
}

// Update updates a part
func (r *PartRepository) Update(ctx context.Context, part *model.Part) error {
	return r.ds.DB(ctx).Save(part).Error
}

// Delete soft deletes a part by setting status to 'deleted'
func (r *PartRepository) Delete(ctx context.Context, partID string) error {
	return r.ds.DB(ctx).Model(&model.Part{}).
		Where("part_id = ?", partID).
		Update("status", "deleted").Error
}
