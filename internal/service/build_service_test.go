package service

import (
	"context"
	"testing"
	"time"

	"rigforge/internal/catalog"
	"rigforge/internal/evalcache"
	domain "rigforge/internal/model"
	"rigforge/pkg/store/mysql/model"

	"github.com/stretchr/testify/require"
)

func matchedConfig() *domain.Configuration {
	return &domain.Configuration{
		Name: "office box",
		Core: domain.CoreComponents{
			CPU: &domain.Part{
				ID: "cpu-1", Name: "Ryzen 5 9600X", Category: domain.CategoryCPU, Price: 229,
				Specs: domain.PartSpecs{CPU: &domain.CPUSpecs{Socket: "AM5", Cores: 6, PowerConsumption: 105, Tier: "mainstream"}},
			},
			Motherboard: &domain.Part{
				ID: "mb-1", Name: "B650 Tomahawk", Category: domain.CategoryMotherboard, Price: 189,
				Specs: domain.PartSpecs{Motherboard: &domain.MotherboardSpecs{Socket: "AM5", Chipset: "b650", MemoryTypes: []string{"DDR5"}, PowerConsumption: 60}},
			},
			Memory: &domain.Part{
				ID: "mem-1", Name: "32GB DDR5", Category: domain.CategoryMemory, Price: 110,
				Specs: domain.PartSpecs{Memory: &domain.MemorySpecs{Type: "DDR5", CapacityGB: 32, PowerConsumption: 5}},
			},
			PSU: &domain.Part{
				ID: "psu-1", Name: "750W Gold", Category: domain.CategoryPSU, Price: 99,
				Specs: domain.PartSpecs{PSU: &domain.PSUSpecs{Wattage: 750, Length: 160}},
			},
		},
	}
}

func newTestBuildService(repo BuildRepo, queue ReevaluationEnqueuer) *BuildService {
	return NewBuildService(repo, catalog.NewStaticCatalog(), evalcache.NewResultCache(), queue)
}

func TestBuildServiceCreateEvaluatesAndPersists(t *testing.T) {
	ctx := context.Background()
	repo := newFakeBuildRepo()
	svc := newTestBuildService(repo, nil)

	summary, err := svc.CreateBuild(ctx, matchedConfig())
	require.NoError(t, err)
	require.NotEmpty(t, summary.Configuration.ID)
	require.True(t, summary.IsCompatible)
	require.Equal(t, 100, summary.LastScore)
	require.NotNil(t, summary.EvaluatedAt)

	stored, err := repo.Get(ctx, summary.Configuration.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, 100, stored.LastScore)
}

func TestBuildServiceCreateRejectsDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := newFakeBuildRepo()
	svc := newTestBuildService(repo, nil)

	cfg := matchedConfig()
	cfg.ID = "build-1"
	_, err := svc.CreateBuild(ctx, cfg)
	require.NoError(t, err)

	dup := matchedConfig()
	dup.ID = "build-1"
	_, err = svc.CreateBuild(ctx, dup)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")
}

func TestBuildServiceUpdateRefreshesEvaluation(t *testing.T) {
	ctx := context.Background()
	repo := newFakeBuildRepo()
	svc := newTestBuildService(repo, nil)

	cfg := matchedConfig()
	cfg.ID = "build-1"
	_, err := svc.CreateBuild(ctx, cfg)
	require.NoError(t, err)

	// swap in a CPU on the wrong socket
	changed := matchedConfig()
	changed.ID = "build-1"
	changed.Core.CPU.Specs.CPU.Socket = "LGA1700"

	summary, err := svc.UpdateBuild(ctx, changed)
	require.NoError(t, err)
	require.False(t, summary.IsCompatible)
	require.Less(t, summary.LastScore, 100)
}

func TestBuildServiceEvaluateBuildUnknownID(t *testing.T) {
	ctx := context.Background()
	svc := newTestBuildService(newFakeBuildRepo(), nil)

	_, err := svc.EvaluateBuild(ctx, "ghost")
	require.Error(t, err)
	require.Contains(t, err.Error(), "build not found")
}

func TestBuildServiceEvaluateSnapshotUsesCache(t *testing.T) {
	ctx := context.Background()
	cache := evalcache.NewResultCache()
	svc := NewBuildService(newFakeBuildRepo(), catalog.NewStaticCatalog(), cache, nil)

	cfg := matchedConfig()
	first, err := svc.EvaluateSnapshot(ctx, cfg)
	require.NoError(t, err)
	require.Equal(t, 1, cache.Size())

	second, err := svc.EvaluateSnapshot(ctx, cfg)
	require.NoError(t, err)
	require.Equal(t, first.Score, second.Score)
	require.Equal(t, 1, cache.Size())
}

func TestBuildServiceReevaluateRecordsOutcome(t *testing.T) {
	ctx := context.Background()
	repo := newFakeBuildRepo()
	svc := newTestBuildService(repo, nil)

	cfg := matchedConfig()
	cfg.ID = "build-1"
	_, err := svc.CreateBuild(ctx, cfg)
	require.NoError(t, err)

	// simulate a stale evaluation record
	repo.items["build-1"].CatalogVersion = "old-version"
	repo.items["build-1"].LastScore = 0

	require.NoError(t, svc.ReevaluateBuild(ctx, "build-1"))

	stored, err := repo.Get(ctx, "build-1")
	require.NoError(t, err)
	require.Equal(t, 100, stored.LastScore)
	require.NotEqual(t, "old-version", stored.CatalogVersion)
}

func TestBuildServiceReevaluateMissingBuildIsNoop(t *testing.T) {
	ctx := context.Background()
	svc := newTestBuildService(newFakeBuildRepo(), nil)

	require.NoError(t, svc.ReevaluateBuild(ctx, "gone"))
}

func TestBuildServiceEnqueueStaleReevaluations(t *testing.T) {
	ctx := context.Background()
	repo := newFakeBuildRepo()
	queue := &fakeEnqueuer{}
	svc := newTestBuildService(repo, queue)

	fresh := matchedConfig()
	fresh.ID = "build-fresh"
	_, err := svc.CreateBuild(ctx, fresh)
	require.NoError(t, err)

	stale := matchedConfig()
	stale.ID = "build-stale"
	_, err = svc.CreateBuild(ctx, stale)
	require.NoError(t, err)
	repo.items["build-stale"].CatalogVersion = "old-version"

	enqueued, err := svc.EnqueueStaleReevaluations(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, enqueued)
	require.Equal(t, []string{"build-stale"}, queue.enqueued)
}

func TestBuildServiceEnqueueWithoutQueueIsNoop(t *testing.T) {
	ctx := context.Background()
	svc := newTestBuildService(newFakeBuildRepo(), nil)

	enqueued, err := svc.EnqueueStaleReevaluations(ctx)
	require.NoError(t, err)
	require.Zero(t, enqueued)
}

// --- Fakes ---

type fakeBuildRepo struct {
	items map[string]*model.Build
}

func newFakeBuildRepo() *fakeBuildRepo {
	return &fakeBuildRepo{items: make(map[string]*model.Build)}
}

func (f *fakeBuildRepo) Create(ctx context.Context, build *model.Build) error {
	cp := *build
	f.items[build.BuildID] = &cp
	return nil
}

func (f *fakeBuildRepo) Get(ctx context.Context, buildID string) (*model.Build, error) {
	if b, ok := f.items[buildID]; ok && b.Status == "active" {
		cp := *b
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeBuildRepo) List(ctx context.Context) ([]*model.Build, error) {
	var out []*model.Build
	for _, b := range f.items {
		if b.Status == "active" {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeBuildRepo) ListStale(ctx context.Context, catalogVersion string) ([]*model.Build, error) {
	var out []*model.Build
	for _, b := range f.items {
		if b.Status == "active" && b.CatalogVersion != catalogVersion {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeBuildRepo) Update(ctx context.Context, build *model.Build) error {
	cp := *build
	f.items[build.BuildID] = &cp
	return nil
}

func (f *fakeBuildRepo) UpdateEvaluation(ctx context.Context, buildID string, score int, compatible bool, catalogVersion string) error {
	if b, ok := f.items[buildID]; ok {
		b.LastScore = score
		b.IsCompatible = compatible
		b.CatalogVersion = catalogVersion
		now := time.Now()
		b.EvaluatedAt = &now
	}
	return nil
}

func (f *fakeBuildRepo) Delete(ctx context.Context, buildID string) error {
	if b, ok := f.items[buildID]; ok {
		b.Status = "deleted"
	}
	return nil
}

type fakeEnqueuer struct {
	enqueued []string
}

func (f *fakeEnqueuer) EnqueueReevaluation(ctx context.Context, buildID string) error {
	f.enqueued = append(f.enqueued, buildID)
	return nil
}
