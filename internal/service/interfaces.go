package service

import (
	"context"

	"rigforge/pkg/store/mysql/model"
)

// PartRepo is the persistence surface PartService needs. *mysql.PartRepository
// satisfies it; tests substitute fakes.
type PartRepo interface {
	Create(ctx context.Context, part *model.Part) error
	Get(ctx context.Context, partID string) (*model.Part, error)
	List(ctx context.Context) ([]*model.Part, error)
	ListByCategory(ctx context.Context, category string) ([]*model.Part, error)
	Update(ctx context.Context, part *model.Part) error
	Delete(ctx context.Context, partID string) error
}

// BuildRepo is the persistence surface BuildService needs.
type BuildRepo interface {
	Create(ctx context.Context, build *model.Build) error
	Get(ctx context.Context, buildID string) (*model.Build, error)
	List(ctx context.Context) ([]*model.Build, error)
	ListStale(ctx context.Context, catalogVersion string) ([]*model.Build, error)
	Update(ctx context.Context, build *model.Build) error
	UpdateEvaluation(ctx context.Context, buildID string, score int, compatible bool, catalogVersion string) error
	Delete(ctx context.Context, buildID string) error
}

// ReevaluationEnqueuer hands stale builds to the background queue.
type ReevaluationEnqueuer interface {
	EnqueueReevaluation(ctx context.Context, buildID string) error
}
