package jobs

import (
	"context"
	"time"

	"rigforge/internal/catalog"
	"rigforge/pkg/lock"
	"rigforge/pkg/logger"
)

// StaleBuildEnqueuer sweeps saved builds evaluated against an older catalog
// version into the re-evaluation queue.
type StaleBuildEnqueuer interface {
	EnqueueStaleReevaluations(ctx context.Context) (int, error)
}

// CatalogWatchJob periodically reloads the catalog seed file. When the
// catalog version changes it sweeps stale saved builds into the
// re-evaluation queue so their recorded scores catch up.
type CatalogWatchJob struct {
	cat       *catalog.ReloadableCatalog
	builds    StaleBuildEnqueuer
	sweepLock lock.DistributedLock
	interval  time.Duration
}

// NewCatalogWatchJob creates the catalog watch job. sweepLock keeps multiple
// replicas from sweeping the same stale builds; nil disables coordination.
func NewCatalogWatchJob(cat *catalog.ReloadableCatalog, builds StaleBuildEnqueuer, sweepLock lock.DistributedLock, interval time.Duration) *CatalogWatchJob {
	return &CatalogWatchJob{
		cat:       cat,
		builds:    builds,
		sweepLock: sweepLock,
		interval:  interval,
	}
}

func (j *CatalogWatchJob) Name() string {
	return "catalog_watch"
}

func (j *CatalogWatchJob) Interval() time.Duration {
	return j.interval
}

func (j *CatalogWatchJob) Run(ctx context.Context) error {
	changed, err := j.cat.Reload()
	if err != nil {
		return err
	}

	if j.sweepLock != nil {
		acquired, err := j.sweepLock.TryLock(ctx)
		if err != nil {
			return err
		}
		if !acquired {
			// another replica is sweeping
			return nil
		}
		defer j.sweepLock.Unlock(ctx)
	}

	// Builds evaluated before a restart may also be stale, so the first
	// sweep runs even when the in-process version did not change.
	count, err := j.builds.EnqueueStaleReevaluations(ctx)
	if err != nil {
		return err
	}
	if changed || count > 0 {
		logger.InfoCtx(ctx, "catalog watch: version=%s changed=%v stale_builds_enqueued=%d", j.cat.Version(), changed, count)
	}
	return nil
}
