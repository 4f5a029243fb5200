package app

import (
	"context"
	"log"
	"time"

	"rerank/internal/config"
	"rerank/internal/database"
	"rerank/internal/database/migration"
	dbpostgres "rerank/internal/database/postgres"
	"rerank/internal/infrastructure/cache"
	"rerank/internal/infrastructure/persistence/postgres"
	"rerank/internal/pkg/jwt"
	"rerank/internal/repository"
	"rerank/internal/usecase"
	"rerank/internal/worker"
	"rerank/internal/ws"
)

const (
	bootTimeout       = 30 * time.Second
	mirrorWriteBuffer = 256
	// cachePurgePattern covers every key the usecases write. Store versions
	// restart at boot, so keys from a previous process would collide.
	cachePurgePattern = "rerank:*"
)

// Container owns the long-lived dependencies. Cache, DB and Mirror are nil
// when their backing service is not configured or unreachable.
type Container struct {
	Config config.Config
	Logger *log.Logger

	Store  *repository.MemoryStore
	Cache  *cache.Redis
	DB     database.DB
	Mirror *postgres.CandidateMirror
	Hub    *ws.Hub
	JWT    jwt.Service

	mirrorPool   *worker.Pool
	mirrorCancel context.CancelFunc
	mirrorDone   chan struct{}
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), bootTimeout)
	defer cancel()

	c := &Container{
		Config: cfg,
		Logger: logger,
		Store:  repository.NewMemoryStore(),
		Hub:    ws.NewHub(logger),
	}

	c.initStore(ctx)
	c.initCache(ctx)

	if cfg.AuthEnabled() {
		c.JWT = jwt.NewHMACService(
			cfg.JWT.AccessSecret,
			cfg.JWT.RefreshSecret,
			cfg.JWT.AccessExpiresIn,
			cfg.JWT.RefreshExpiresIn,
		)
	} else {
		logger.Printf("[Auth] recruiter auth not configured, mutating routes are open")
	}

	go c.Hub.Run()
	c.Store.Subscribe(c.Hub.Listener())

	return c, nil
}

// initStore fills the store from the Postgres mirror when one is configured,
// falling back to the built-in seed set.
func (c *Container) initStore(ctx context.Context) {
	if !c.Config.Database.Enabled() {
		c.Store.Seed(repository.SeedCandidates())
		c.Logger.Printf("[Store] seeded in memory, no database configured")
		return
	}

	db, err := dbpostgres.Connect(ctx, c.Config.Database)
	if err != nil {
		c.Logger.Printf("[Store] database unavailable, running in memory only err=%v", err)
		c.Store.Seed(repository.SeedCandidates())
		return
	}

	r := migration.Runner{Dir: c.Config.Database.MigrationsDir, Logger: c.Logger}
	if err := r.Run(ctx, db.SQLDB()); err != nil {
		c.Logger.Printf("[Store] migrations failed, running in memory only err=%v", err)
		_ = db.Close()
		c.Store.Seed(repository.SeedCandidates())
		return
	}

	mirror := postgres.NewCandidateMirror(db, c.Logger)
	cands, resumes, err := mirror.LoadAll(ctx)
	if err != nil {
		c.Logger.Printf("[Store] mirror load failed, running in memory only err=%v", err)
		_ = db.Close()
		c.Store.Seed(repository.SeedCandidates())
		return
	}

	if len(cands) == 0 {
		c.Store.Seed(repository.SeedCandidates())
		cands, resumes = c.Store.Snapshot()
		if err := mirror.ReplaceAll(ctx, cands, resumes); err != nil {
			c.Logger.Printf("[Store] initial mirror write failed err=%v", err)
		}
	} else {
		c.Store.Restore(cands, resumes)
		c.Logger.Printf("[Store] restored from mirror candidates=%d resumes=%d", len(cands), len(resumes))
	}

	c.DB = db
	c.Mirror = mirror
	c.startMirrorWrites()
}

// startMirrorWrites forwards store changes to the mirror through a single
// worker so writes land in mutation order.
func (c *Container) startMirrorWrites() {
	pool := worker.NewPool(1, mirrorWriteBuffer)
	ctx, cancel := context.WithCancel(context.Background())
	results := pool.Run(ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for res := range results {
			if res.Err != nil {
				c.Logger.Printf("[Mirror] write failed task=%s err=%v", res.Name, res.Err)
			}
		}
	}()

	mirror := c.Mirror
	c.Store.Subscribe(func(evt repository.ChangeEvent) {
		err := pool.Submit(string(evt.Kind), func(ctx context.Context) error {
			return mirror.Apply(ctx, evt)
		})
		if err != nil {
			c.Logger.Printf("[Mirror] dropped change kind=%s version=%d err=%v", evt.Kind, evt.Version, err)
		}
	})

	c.mirrorPool = pool
	c.mirrorCancel = cancel
	c.mirrorDone = done
}

func (c *Container) initCache(ctx context.Context) {
	rdb := cache.NewRedis(c.Config.Redis, c.Logger)
	if !rdb.Available() {
		return
	}
	if err := rdb.DeleteByPattern(ctx, cachePurgePattern); err != nil {
		c.Logger.Printf("[Cache] boot purge failed err=%v", err)
	}
	c.Cache = rdb
}

// SearchCache returns the cache as the usecase interface, or a nil interface
// when caching is off.
func (c *Container) SearchCache() usecase.SearchCache {
	if c == nil || c.Cache == nil {
		return nil
	}
	return c.Cache
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	if c.mirrorPool != nil {
		c.mirrorPool.Close()
		select {
		case <-c.mirrorDone:
		case <-time.After(5 * time.Second):
			c.Logger.Printf("[Mirror] pending writes abandoned at shutdown")
		}
		c.mirrorCancel()
	}

	c.Hub.Stop()

	var firstErr error
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			firstErr = err
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
