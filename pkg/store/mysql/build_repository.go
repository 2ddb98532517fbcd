package mysql

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"rigforge/pkg/store/mysql/model"
)

// BuildRepository handles saved build persistence in MySQL
type BuildRepository struct {
	ds *Datastore
}

// NewBuildRepository creates a new build repository
func NewBuildRepository(ds *Datastore) *BuildRepository {
	return &BuildRepository{ds: ds}
}

// Create creates a new build
func (r *BuildRepository) Create(ctx context.Context, build *model.Build) error {
	return r.ds.DB(ctx).Create(build).Error
}

// Get retrieves a build by its build id
func (r *BuildRepository) Get(ctx context.Context, buildID string) (*model.Build, error) {
	var build model.Build
	err := r.ds.DB(ctx).Where("build_id = ? AND status != ?", buildID, "deleted").First(&build).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get build: %w", err)
	}
	return &build, nil
}

// List lists all active builds
func (r *BuildRepository) List(ctx context.Context) ([]*model.Build, error) {
	var builds []*model.Build
	err := r.ds.DB(ctx).Where("status != ?", "deleted").Order("updated_at DESC").Find(&builds).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list builds: %w", err)
	}
	return builds, nil
}

// ListStale lists active builds last evaluated against a different catalog
// version. Used by the re-evaluation queue after a catalog change.
func (r *BuildRepository) ListStale(ctx context.Context, catalogVersion string) ([]*model.Build, error) {
	var builds []*model.Build
	err := r.ds.DB(ctx).
		Where("status != ? AND catalog_version != ?", "deleted", catalogVersion).
		Find(&builds).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list stale builds: %w", err)
	}
	return builds, nil
}

// Update updates a build
func (r *BuildRepository) Update(ctx context.Context, build *model.Build) error {
	return r.ds.DB(ctx).Save(build).Error
}

// UpdateEvaluation records the outcome of an evaluation
func (r *BuildRepository) UpdateEvaluation(ctx context.Context, buildID string, score int, compatible bool, catalogVersion string) error {
	now := time.Now()
	return r.ds.DB(ctx).Model(&model.Build{}).
		Where("build_id = ?", buildID).
		Updates(map[string]interface{}{
			"last_score":      score,
			"is_compatible":   compatible,
			"catalog_version": catalogVersion,
			"evaluated_at":    &now,
		}).Error
}

// Delete soft deletes a build by setting status to 'deleted'
func (r *BuildRepository) Delete(ctx context.Context, buildID string) error {
	return r.ds.DB(ctx).Model(&model.Build{}).
		Where("build_id = ?", buildID).
		Update("status", "deleted").Error
}
