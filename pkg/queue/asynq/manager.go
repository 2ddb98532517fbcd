package asynq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"rigforge/pkg/config"
	"rigforge/pkg/logger"

	"github.com/hibiken/asynq"
)

const (
	TypeBuildReevaluate = "build:reevaluate"
)

// ReevaluatePayload is the task payload for a build re-evaluation
type ReevaluatePayload struct {
	BuildID string `json:"build_id"`
}

// BuildReevaluator re-runs the compatibility engine for a saved build
type BuildReevaluator interface {
	ReevaluateBuild(ctx context.Context, buildID string) error
}

// Manager queue manager
type Manager struct {
	client *asynq.Client
	server *asynq.Server
	mux    *asynq.ServeMux
}

// NewManager creates queue manager
func NewManager(cfg *config.Config) (*Manager, error) {
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	client := asynq.NewClient(redisOpt)

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: cfg.Queue.Concurrency,
			Queues: map[string]int{
				"default": 10,
			},
			RetryDelayFunc: func(n int, err error, task *asynq.Task) time.Duration {
				return time.Duration(n) * time.Second
			},
		},
	)

	mux := asynq.NewServeMux()

	return &Manager{
		client: client,
		server: server,
		mux:    mux,
	}, nil
}

// EnqueueReevaluation enqueues a re-evaluation task for a saved build. A
// build already waiting in the queue is not enqueued twice.
func (m *Manager) EnqueueReevaluation(ctx context.Context, buildID string) error {
	payload, err := json.Marshal(ReevaluatePayload{BuildID: buildID})
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	task := asynq.NewTask(TypeBuildReevaluate, payload)

	opts := []asynq.Option{
		asynq.TaskID("reevaluate:" + buildID),
		asynq.Timeout(time.Duration(config.GlobalConfig.Queue.TaskTimeout) * time.Second),
		asynq.MaxRetry(config.GlobalConfig.Queue.MaxRetry),
	}

	info, err := m.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			logger.DebugCtx(ctx, "re-evaluation already queued, build_id: %s", buildID)
			return nil
		}
		return fmt.Errorf("failed to enqueue re-evaluation: %w", err)
	}

	logger.InfoCtx(ctx, "re-evaluation enqueued, build_id: %s, queue: %s", buildID, info.Queue)

	return nil
}

// NewReevaluateHandler builds the handler for build re-evaluation tasks
func NewReevaluateHandler(svc BuildReevaluator) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var payload ReevaluatePayload
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			return fmt.Errorf("failed to unmarshal payload: %w", err)
		}
		return svc.ReevaluateBuild(ctx, payload.BuildID)
	}
}

// RegisterHandler registers task handler
func (m *Manager) RegisterHandler(pattern string, handler asynq.Handler) {
	m.mux.Handle(pattern, handler)
}

// Start starts queue processor
func (m *Manager) Start() error {
	logger.InfoCtx(context.Background(), "starting queue server")
	return m.server.Start(m.mux)
}

// Stop stops queue processor
func (m *Manager) Stop() {
	logger.InfoCtx(context.Background(), "stopping queue server")
	m.server.Stop()
	m.server.Shutdown()
}

// Close closes client
func (m *Manager) Close() error {
	return m.client.Close()
}

// GetPendingTaskCount retrieves pending task count
func (m *Manager) GetPendingTaskCount() (int, error) {
	inspector := asynq.NewInspector(asynq.RedisClientOpt{
		Addr:     config.GlobalConfig.Redis.Addr,
		Password: config.GlobalConfig.Redis.Password,
		DB:       config.GlobalConfig.Redis.DB,
	})
	defer inspector.Close()

	stats, err := inspector.GetQueueInfo("default")
	if err != nil {
		return 0, err
	}

	return stats.Pending, nil
}
