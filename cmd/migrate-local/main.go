// Команда migrate-local переносит локальный каталог из bbolt в PostgreSQL.
// Ожидает CATALOG_BACKEND=postgres и путь к файлу в BOLT_PATH.
package main

import (
	"context"
	"os"
	"time"

	config "github.com/DRSN-tech/catalog-backend/internal/cfg"
	boltRepo "github.com/DRSN-tech/catalog-backend/internal/repository/bolt"
	"github.com/DRSN-tech/catalog-backend/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/catalog-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/DRSN-tech/catalog-backend/pkg/postgres"
	"github.com/DRSN-tech/catalog-backend/pkg/tr"
	"github.com/jimlawless/whereami"
)

const migrateTimeout = 5 * time.Minute

func main() {
	log := logger.NewZapLogger(config.LoggerOptions())
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}
	if cfg.App.Backend != config.BackendPostgres {
		log.Errorf(e.ErrIncorrectEnvVariable, "CATALOG_BACKEND must be %s, got %s", config.BackendPostgres, cfg.App.Backend)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	if err := run(ctx, cfg, log); err != nil {
		log.Errorf(err, "migration failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	store, err := boltRepo.Open(cfg.Bolt, log)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer func() { _ = store.Close(ctx) }()

	db, err := postgres.Connect(ctx, cfg.Db)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer db.Close()

	if err := db.RunMigrations(log); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	categories, err := boltRepo.NewCategoryRepo(store).List(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	products, err := boltRepo.NewProductRepo(store).List(ctx, usecase.ProductQuery{})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	pgCategories := pgdb.NewCategoryRepo(db.Pool, pgdbConv.NewCategoryConverter())
	pgProducts := pgdb.NewProductRepo(db.Pool, pgdbConv.NewProductConverter())

	// Категории раньше продуктов из-за внешнего ключа category_id.
	err = tr.NewManager(db.Pool, log).Do(ctx, func(ctx context.Context) error {
		for _, c := range categories {
			if err := pgCategories.Create(ctx, c); err != nil {
				return e.Wrap("category "+c.ID, err)
			}
		}
		for _, p := range products {
			if err := pgProducts.Create(ctx, p); err != nil {
				return e.Wrap("product "+p.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	log.Infof("migrated %d categories and %d products from %s", len(categories), len(products), cfg.Bolt.Path)
	return nil
}
