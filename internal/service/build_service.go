package service

import (
	"context"
	"fmt"
	"time"

	"rigforge/internal/catalog"
	"rigforge/internal/engine"
	"rigforge/internal/evalcache"
	domain "rigforge/internal/model"
	"rigforge/pkg/logger"
	"rigforge/pkg/store/mysql"
	storemodel "rigforge/pkg/store/mysql/model"

	"github.com/google/uuid"
)

// BuildSummary is a saved build together with its last recorded evaluation.
type BuildSummary struct {
	Configuration  *domain.Configuration `json:"configuration"`
	LastScore      int                   `json:"last_score"`
	IsCompatible   bool                  `json:"is_compatible"`
	CatalogVersion string                `json:"catalog_version,omitempty"`
	EvaluatedAt    *time.Time            `json:"evaluated_at,omitempty"`
}

// BuildService handles saved build lifecycle and evaluation
type BuildService struct {
	buildRepo BuildRepo
	cat       catalog.Lookup
	cache     *evalcache.ResultCache
	queue     ReevaluationEnqueuer
}

// NewBuildService creates a new build service. queue may be nil when the
// background re-evaluation worker is disabled.
func NewBuildService(buildRepo BuildRepo, cat catalog.Lookup, cache *evalcache.ResultCache, queue ReevaluationEnqueuer) *BuildService {
	return &BuildService{
		buildRepo: buildRepo,
		cat:       cat,
		cache:     cache,
		queue:     queue,
	}
}

// CreateBuild saves a configuration snapshot and records its initial evaluation
func (s *BuildService) CreateBuild(ctx context.Context, cfg *domain.Configuration) (*BuildSummary, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if cfg.ID == "" {
		cfg.ID = uuid.New().String()
	}

	existing, err := s.buildRepo.Get(ctx, cfg.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing build: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("build with id %s already exists", cfg.ID)
	}

	result, err := s.EvaluateSnapshot(ctx, cfg)
	if err != nil {
		return nil, err
	}

	build := mysql.FromConfigurationDomain(cfg)
	build.LastScore = result.Score
	build.IsCompatible = result.IsCompatible
	build.CatalogVersion = s.cat.Version()
	now := time.Now()
	build.EvaluatedAt = &now

	if err := s.buildRepo.Create(ctx, build); err != nil {
		return nil, fmt.Errorf("failed to create build: %w", err)
	}
	return s.toSummary(build), nil
}

// GetBuild retrieves a saved build by id
func (s *BuildService) GetBuild(ctx context.Context, buildID string) (*BuildSummary, error) {
	build, err := s.buildRepo.Get(ctx, buildID)
	if err != nil {
		return nil, err
	}
	if build == nil {
		return nil, fmt.Errorf("build not found: %s", buildID)
	}
	return s.toSummary(build), nil
}

// ListBuilds lists all active saved builds
func (s *BuildService) ListBuilds(ctx context.Context) ([]*BuildSummary, error) {
	builds, err := s.buildRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]*BuildSummary, len(builds))
	for i, b := range builds {
		summaries[i] = s.toSummary(b)
	}
	return summaries, nil
}

// UpdateBuild replaces the configuration snapshot of a saved build and
// re-evaluates it
func (s *BuildService) UpdateBuild(ctx context.Context, cfg *domain.Configuration) (*BuildSummary, error) {
	if cfg == nil || cfg.ID == "" {
		return nil, fmt.Errorf("build id is required")
	}

	existing, err := s.buildRepo.Get(ctx, cfg.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("build not found: %s", cfg.ID)
	}

	result, err := s.EvaluateSnapshot(ctx, cfg)
	if err != nil {
		return nil, err
	}

	updated := mysql.FromConfigurationDomain(cfg)
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	updated.LastScore = result.Score
	updated.IsCompatible = result.IsCompatible
	updated.CatalogVersion = s.cat.Version()
	now := time.Now()
	updated.EvaluatedAt = &now

	if err := s.buildRepo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update build: %w", err)
	}
	return s.toSummary(updated), nil
}

// DeleteBuild deletes a saved build
func (s *BuildService) DeleteBuild(ctx context.Context, buildID string) error {
	return s.buildRepo.Delete(ctx, buildID)
}

// EvaluateBuild evaluates a saved build against the current catalog
func (s *BuildService) EvaluateBuild(ctx context.Context, buildID string) (*domain.CompatibilityResult, error) {
	build, err := s.buildRepo.Get(ctx, buildID)
	if err != nil {
		return nil, err
	}
	if build == nil {
		return nil, fmt.Errorf("build not found: %s", buildID)
	}
	return s.EvaluateSnapshot(ctx, mysql.ToConfigurationDomain(build))
}

// EvaluateSnapshot evaluates a configuration snapshot, consulting the result
// cache first. Cache misses run the engine and populate the cache.
func (s *BuildService) EvaluateSnapshot(ctx context.Context, cfg *domain.Configuration) (*domain.CompatibilityResult, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}

	key := ""
	if s.cache != nil {
		key = evalcache.Key(cfg, s.cat.Version())
		if key != "" {
			if cached := s.cache.Get(ctx, key); cached != nil {
				return cached, nil
			}
		}
	}

	result, err := engine.Evaluate(cfg, s.cat)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && key != "" {
		s.cache.Set(ctx, key, result)
	}
	return result, nil
}

// ReevaluateBuild re-runs the engine for a saved build and records the
// outcome. Called by the background queue worker after catalog changes.
func (s *BuildService) ReevaluateBuild(ctx context.Context, buildID string) error {
	build, err := s.buildRepo.Get(ctx, buildID)
	if err != nil {
		return err
	}
	if build == nil {
		// deleted since enqueue, nothing to refresh
		logger.InfoCtx(ctx, "skipping re-evaluation of missing build %s", buildID)
		return nil
	}

	result, err := s.EvaluateSnapshot(ctx, mysql.ToConfigurationDomain(build))
	if err != nil {
		return fmt.Errorf("failed to re-evaluate build %s: %w", buildID, err)
	}

	if err := s.buildRepo.UpdateEvaluation(ctx, buildID, result.Score, result.IsCompatible, s.cat.Version()); err != nil {
		return fmt.Errorf("failed to record evaluation for build %s: %w", buildID, err)
	}
	logger.InfoCtx(ctx, "re-evaluated build %s: score=%d compatible=%v", buildID, result.Score, result.IsCompatible)
	return nil
}

// EnqueueStaleReevaluations enqueues a re-evaluation task for every saved
// build last evaluated against an older catalog version. Returns the number
// of builds enqueued.
func (s *BuildService) EnqueueStaleReevaluations(ctx context.Context) (int, error) {
	if s.queue == nil {
		return 0, nil
	}

	stale, err := s.buildRepo.ListStale(ctx, s.cat.Version())
	if err != nil {
		return 0, fmt.Errorf("failed to list stale builds: %w", err)
	}

	enqueued := 0
	for _, build := range stale {
		if err := s.queue.EnqueueReevaluation(ctx, build.BuildID); err != nil {
			logger.ErrorCtx(ctx, "failed to enqueue re-evaluation for build %s: %v", build.BuildID, err)
			continue
		}
		enqueued++
	}
	return enqueued, nil
}

func (s *BuildService) toSummary(build *storemodel.Build) *BuildSummary {
	return &BuildSummary{
		Configuration:  mysql.ToConfigurationDomain(build),
		LastScore:      build.LastScore,
		IsCompatible:   build.IsCompatible,
		CatalogVersion: build.CatalogVersion,
		EvaluatedAt:    build.EvaluatedAt,
	}
}
