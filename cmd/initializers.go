package main

import (
	"fmt"
	"net/http"
	"time"

	"rigforge/app/handler"
	"rigforge/app/router"
	"rigforge/internal/catalog"
	"rigforge/internal/evalcache"
	"rigforge/internal/jobs"
	"rigforge/internal/service"
	"rigforge/pkg/config"
	"rigforge/pkg/lock"
	"rigforge/pkg/logger"
	asynqueue "rigforge/pkg/queue/asynq"
	mysqlstore "rigforge/pkg/store/mysql"
	redisstore "rigforge/pkg/store/redis"

	"github.com/gin-gonic/gin"
)

// initConfig initializes configuration
func (app *Application) initConfig() error {
	if err := config.Init(); err != nil {
		return err
	}
	app.config = config.GlobalConfig
	return nil
}

// initLogger initializes logging
func (app *Application) initLogger() error {
	if err := logger.Init(); err != nil {
		return err
	}
	app.registerCleanup(func() {
		logger.Sync()
	})
	return nil
}

// initMySQL initializes MySQL
func (app *Application) initMySQL() error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		app.config.MySQL.User,
		app.config.MySQL.Password,
		app.config.MySQL.Host,
		app.config.MySQL.Port,
		app.config.MySQL.Database,
	)

	ds, err := mysqlstore.NewDatastore(dsn)
	if err != nil {
		return err
	}

	app.datastore = ds
	app.partRepo = mysqlstore.NewPartRepository(ds)
	app.buildRepo = mysqlstore.NewBuildRepository(ds)
	app.registerCleanup(func() {
		ds.Close()
		logger.InfoCtx(app.ctx, "MySQL connection has been closed")
	})

	return nil
}

// initRedis initializes Redis
func (app *Application) initRedis() error {
	client, err := redisstore.NewRedisClient(app.config)
	if err != nil {
		return err
	}

	app.redisClient = client
	app.registerCleanup(func() {
		client.Close()
		logger.InfoCtx(app.ctx, "Redis connection has been closed")
	})

	return nil
}

// initCatalog loads the physical spec catalog
func (app *Application) initCatalog() error {
	cat, err := catalog.NewReloadableCatalog(app.config.Catalog.SeedPath)
	if err != nil {
		return err
	}

	app.catalog = cat
	logger.InfoCtx(app.ctx, "Catalog loaded, version: %s", cat.Version())
	return nil
}

// initCache initializes the evaluation result cache
func (app *Application) initCache() error {
	ttl := evalcache.DefaultTTL
	if app.config.Cache.TTLSeconds > 0 {
		ttl = time.Duration(app.config.Cache.TTLSeconds) * time.Second
	}

	app.resultCache = evalcache.NewResultCacheWithTTL(ttl).WithRedis(app.redisClient.GetClient())
	return nil
}

// initQueue initializes the re-evaluation queue
func (app *Application) initQueue() error {
	mgr, err := asynqueue.NewManager(app.config)
	if err != nil {
		return err
	}

	app.queueManager = mgr
	app.registerCleanup(func() {
		mgr.Close()
		logger.InfoCtx(app.ctx, "Queue client has been closed")
	})

	return nil
}

// initServices initializes service layer
func (app *Application) initServices() error {
	app.partService = service.NewPartService(app.partRepo)
	app.buildService = service.NewBuildService(app.buildRepo, app.catalog, app.resultCache, app.queueManager)

	// Queue handler needs the build service, so registration happens here
	app.queueManager.RegisterHandler(
		asynqueue.TypeBuildReevaluate,
		asynqueue.NewReevaluateHandler(app.buildService),
	)

	return nil
}

// initJobs registers background jobs
func (app *Application) initJobs() error {
	app.jobsManager = jobs.NewManager(app.ctx)

	if app.config.Catalog.CheckInterval > 0 {
		interval := time.Duration(app.config.Catalog.CheckInterval) * time.Second
		sweepLock := lock.NewRedisDistributedLock(app.redisClient.GetClient(), "rigforge:catalog-sweep")
		app.jobsManager.Register(jobs.NewCatalogWatchJob(app.catalog, app.buildService, sweepLock, interval))
	}

	return nil
}

// initHandlers initializes handler layer
func (app *Application) initHandlers() error {
	app.partHandler = handler.NewPartHandler(app.partService)
	app.buildHandler = handler.NewBuildHandler(app.buildService)
	app.evaluateHandler = handler.NewEvaluateHandler(app.buildService, app.catalog)
	app.liveHandler = handler.NewLiveHandler(app.buildService)
	return nil
}

// initHTTPServer initializes HTTP server
func (app *Application) initHTTPServer() error {
	if app.config.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	app.ginEngine = gin.New()

	r := router.NewRouter(app.partHandler, app.buildHandler, app.evaluateHandler, app.liveHandler)
	r.Setup(app.ginEngine)

	app.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", app.config.Server.Port),
		Handler: app.ginEngine,
	}

	return nil
}
