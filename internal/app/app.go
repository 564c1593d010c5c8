package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/auth"
	config "github.com/DRSN-tech/catalog-backend/internal/cfg"
	v1Http "github.com/DRSN-tech/catalog-backend/internal/delivery/v1/http"
	"github.com/DRSN-tech/catalog-backend/internal/infrastructure/kafka"
	"github.com/DRSN-tech/catalog-backend/internal/infrastructure/storage"
	boltRepo "github.com/DRSN-tech/catalog-backend/internal/repository/bolt"
	cloudinaryRepo "github.com/DRSN-tech/catalog-backend/internal/repository/cloudinary"
	s3Repo "github.com/DRSN-tech/catalog-backend/internal/repository/minio"
	"github.com/DRSN-tech/catalog-backend/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/catalog-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/catalog-backend/internal/repository/redis"
	redisConv "github.com/DRSN-tech/catalog-backend/internal/repository/redis/converter"
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/clients"
	"github.com/DRSN-tech/catalog-backend/pkg/closer"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/DRSN-tech/catalog-backend/pkg/postgres"
	"github.com/DRSN-tech/catalog-backend/pkg/tr"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	startupTimeout  = 10 * time.Second
	shutdownTimeout = 15 * time.Second
	forcedTimeout   = 3 * time.Second
)

// App содержит собранные зависимости и HTTP-сервер каталога.
type App struct {
	cfg        *config.Config
	logger     logger.Logger
	closer     *closer.Closer
	httpServer *v1Http.Server
}

// repositories — хранилище каталога, выбранное конфигурацией.
type repositories struct {
	categories usecase.CategoryRepository
	products   usecase.ProductRepository
	admins     usecase.AdminRepository
	txManager  usecase.TxManager
}

// NewApp собирает приложение. При ошибке уже открытые ресурсы закрываются.
func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	a := &App{cfg: cfg, logger: log, closer: closer.New(log, forcedTimeout)}

	if err := a.init(); err != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if cerr := a.closer.Close(ctx); cerr != nil {
			log.Warnf("cleanup after failed start: %v", cerr)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return a, nil
}

func (a *App) init() error {
	repos, err := a.initRepositories()
	if err != nil {
		return err
	}

	imageRepo, err := a.initImageRepo()
	if err != nil {
		return err
	}

	cleanupCtx, cancelCleanup := context.WithCancel(context.Background())
	imagesInfra := storage.NewImageStorage(imageRepo, a.cfg.Storage, a.logger, cleanupCtx)

	cacheRepo, tokenRepo, err := a.initRedis()
	if err != nil {
		cancelCleanup()
		return err
	}

	publisher, err := a.initPublisher()
	if err != nil {
		cancelCleanup()
		return err
	}

	a.closer.AddFunc("image cleanup context", cancelCleanup)
	a.closer.Add("image cleanup", imagesInfra.WaitForCleanup)

	catalogUC := usecase.NewCatalogUC(
		repos.categories,
		repos.products,
		repos.txManager,
		imagesInfra,
		cacheRepo,
		publisher,
		a.logger,
	)

	authUC := usecase.NewAuthUC(
		repos.admins,
		tokenRepo,
		auth.NewJWTAuthenticator(a.cfg.Auth.JWTSecret, a.cfg.Auth.Issuer, a.cfg.Auth.TokenTTL),
		auth.NewBcryptHasher(a.cfg.Auth.BcryptCost),
		a.logger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()
	if err := authUC.EnsureAdmin(ctx, a.cfg.App.AdminEmail, a.cfg.App.AdminPassword); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, a.cfg.Http, a.logger)
	router.Init(catalogUC, authUC, imagesInfra)

	a.httpServer = v1Http.NewServer(r, a.cfg.Http)
	a.closer.Add("HTTP server", a.httpServer.Stop)

	return nil
}

func (a *App) initRepositories() (*repositories, error) {
	switch a.cfg.App.Backend {
	case config.BackendPostgres:
		db, err := initPGDB(a.logger, a.cfg)
		if err != nil {
			return nil, err
		}
		a.closer.AddFunc("postgres", db.Close)

		return &repositories{
			categories: pgdb.NewCategoryRepo(db.Pool, pgdbConv.NewCategoryConverter()),
			products:   pgdb.NewProductRepo(db.Pool, pgdbConv.NewProductConverter()),
			admins:     pgdb.NewAdminRepo(db.Pool, pgdbConv.NewAdminConverter()),
			txManager:  tr.NewManager(db.Pool, a.logger),
		}, nil

	case config.BackendBolt:
		store, err := boltRepo.Open(a.cfg.Bolt, a.logger)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		a.closer.Add("bbolt", store.Close)
		a.logger.Infof("catalog stored locally in %s", a.cfg.Bolt.Path)

		return &repositories{
			categories: boltRepo.NewCategoryRepo(store),
			products:   boltRepo.NewProductRepo(store),
			admins:     boltRepo.NewAdminRepo(store),
			txManager:  boltRepo.NewTxManager(),
		}, nil
	}

	return nil, e.Wrap(a.cfg.App.Backend, e.ErrUnknownBackend)
}

func (a *App) initImageRepo() (usecase.ImageRepository, error) {
	if a.cfg.Storage.Driver == config.StorageCloudinary {
		cld, err := cloudinaryRepo.NewClient(a.cfg.Storage)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		return cloudinaryRepo.NewImageRepo(cld, a.cfg.Storage), nil
	}

	minioClient, err := clients.NewMinIOClient(a.cfg.Minio)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()
	if err := clients.EnsureBucket(ctx, minioClient, a.cfg.Storage.BucketName); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return s3Repo.NewImageRepo(minioClient, a.cfg.Storage), nil
}

// initRedis подключает кэш и список отозванных токенов. Без Redis кэш
// отключен, а отозванные токены хранятся в памяти процесса.
func (a *App) initRedis() (usecase.CacheRepository, usecase.TokenRepository, error) {
	if !a.cfg.Redis.Enabled {
		a.logger.Infof("REDIS_ADDR is not set, cache disabled")
		return nil, auth.NewMemoryDenylist(), nil
	}

	redisClient := clients.NewRedisClient(a.cfg.Redis)
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()
	if err := redisClient.Ping(ctx); err != nil {
		_ = redisClient.Close()
		return nil, nil, e.Wrap(whereami.WhereAmI(), err)
	}
	a.closer.Add("redis", func(context.Context) error {
		return redisClient.Close()
	})

	cacheRepo := redis.NewCacheRepo(redisClient, redisConv.NewCatalogConverter(), a.cfg.Redis, a.logger)
	return cacheRepo, redis.NewTokenRepo(redisClient), nil
}

func (a *App) initPublisher() (usecase.EventPublisher, error) {
	if !a.cfg.Kafka.Enabled {
		return usecase.NoopPublisher(), nil
	}

	producer, err := kafka.NewProducer(a.logger, a.cfg.Kafka)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	a.closer.Add("kafka producer", func(context.Context) error {
		return producer.Close()
	})

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()
	if err := producer.EnsureTopic(ctx); err != nil {
		a.logger.Warnf("failed to ensure kafka topic %s: %v", a.cfg.Kafka.Topic, err)
	}
	return producer, nil
}

// Run запускает HTTP-сервер и блокируется до сигнала остановки или ошибки сервера.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s (%s backend)", a.cfg.Http.Port, a.cfg.App.Backend)
		errCh <- a.httpServer.Run()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		if appErr != nil {
			a.logger.Errorf(appErr, "HTTP server fatal error")
		}
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.closer.Close(ctx); err != nil {
		a.logger.Errorf(err, "shutdown finished with errors")
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	db, err := postgres.Connect(ctx, cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		db.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
